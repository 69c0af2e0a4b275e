package api_test

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/delaneyj/toolbox/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAlgorithmFromText(t *testing.T) {
	cases := map[string]api.HashAlgorithm{
		"md5":       api.MD5,
		"MD_5":      api.MD5,
		"md-5":      api.MD5,
		"SHA-1":     api.SHA1,
		"sha_256":   api.SHA256,
		"SHA224":    api.SHA224,
		"sha-384":   api.SHA384,
		"SHA_512":   api.SHA512,
		"sha3_256":  api.SHA3_256,
		"SHA-3-256": api.SHA3_256,
		"sha_3_256": api.SHA3_256,
		"":          api.NotFound,
		"Md5":       api.NotFound,
		"sha3256":   api.NotFound,
		"whirlpool": api.NotFound,
	}
	for text, want := range cases {
		assert.Equal(t, want, api.HashAlgorithmFromText(text), text)
	}
}

func TestHashAlgorithmStrings(t *testing.T) {
	assert.Equal(t, "MD5", api.MD5.Name())
	assert.Equal(t, "MSD5", api.MD5.UIString())
	assert.Equal(t, "md5", api.MD5.APIString())
	assert.Equal(t, "SHA-3 256", api.SHA3_256.UIString())
	assert.Equal(t, "-", api.None.UIString())
	assert.Equal(t, "", api.NotFound.APIString())

	assert.Equal(t, api.Api(api.None), api.SHA1.DefaultValue())
	assert.Equal(t, api.Api(api.NotFound), api.SHA1.NotFoundValue())
	assert.Len(t, api.SHA1.All(), 9)
	assert.Len(t, api.HashAlgorithms(), 9)
	assert.Equal(t, "NOT_FOUND", api.HashAlgorithm(200).Name())
}

func TestHashAlgorithmFormat(t *testing.T) {
	pretty := "{\n" +
		"  \"name\":\"MD5\",\n" +
		"  \"ui_string\":\"MSD5\",\n" +
		"  \"api_string\":\"md5\"\n" +
		"}"
	compact := `{"name":"MD5","ui_string":"MSD5","api_string":"md5"}`

	for _, f := range api.OutputFormats() {
		got := api.MD5.Format(f)
		if f.Compressed() {
			assert.Equal(t, compact, got, f.String())
		} else {
			assert.Equal(t, pretty, got, f.String())
		}
	}
	assert.Equal(t, compact, api.MD5.String())
}

func TestHashAlgorithmFormatIsJSON(t *testing.T) {
	for _, h := range api.HashAlgorithms() {
		var fields map[string]string
		require.NoError(t, json.Unmarshal([]byte(h.Format(api.Full)), &fields), h.Name())
		assert.Equal(t, h.Name(), fields["name"])
		assert.Equal(t, h.UIString(), fields["ui_string"])
		assert.Equal(t, h.APIString(), fields["api_string"])
		assert.False(t, strings.Contains(h.Format(api.ReducedCompressed), "\n"))
	}
}

func TestHashAlgorithmSum(t *testing.T) {
	vectors := map[api.HashAlgorithm]string{
		api.MD5:      "900150983cd24fb0d6963f7d28e17f72",
		api.SHA1:     "a9993e364706816aba3e25717850c26c9cd0d89d",
		api.SHA224:   "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7",
		api.SHA256:   "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		api.SHA3_256: "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
	}
	for h, want := range vectors {
		sum, err := h.Sum([]byte("abc"))
		require.NoError(t, err, h.Name())
		assert.Equal(t, want, hex.EncodeToString(sum), h.Name())

		sum, n, err := h.SumReader(strings.NewReader("abc"))
		require.NoError(t, err)
		assert.EqualValues(t, 3, n)
		assert.Equal(t, want, hex.EncodeToString(sum))
	}

	sum, err := api.SHA384.Sum(nil)
	require.NoError(t, err)
	assert.Len(t, sum, 48)
	sum, err = api.SHA512.Sum(nil)
	require.NoError(t, err)
	assert.Len(t, sum, 64)
}

func TestHashAlgorithmUnsupported(t *testing.T) {
	for _, h := range []api.HashAlgorithm{api.None, api.NotFound} {
		_, err := h.Sum([]byte("abc"))
		assert.ErrorIs(t, err, api.ErrUnsupportedAlgorithm)
		_, _, err = h.SumReader(strings.NewReader("abc"))
		assert.ErrorIs(t, err, api.ErrUnsupportedAlgorithm)
	}
}

func TestParseOutputFormat(t *testing.T) {
	for _, f := range api.OutputFormats() {
		got, err := api.ParseOutputFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := api.ParseOutputFormat("PRETTY")
	assert.ErrorIs(t, err, api.ErrUnknownOutputFormat)
	assert.Equal(t, "OutputFormat(42)", api.OutputFormat(42).String())
}
