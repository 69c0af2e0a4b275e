package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/delaneyj/toolbox/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteAlgorithmTable(t *testing.T) {
	var buf bytes.Buffer
	writeAlgorithmTable(&buf)
	out := buf.String()
	assert.Contains(t, out, "SHA3_256")
	assert.Contains(t, out, "MSD5")
	assert.Contains(t, out, "32 B")
}

func TestWriteDescriptors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDescriptors(&buf, api.FullCompressed))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(api.HashAlgorithms()))
	assert.Equal(t, api.MD5.String(), lines[0])
}

func TestHashReader(t *testing.T) {
	var buf bytes.Buffer
	err := hashReader(zap.NewNop(), &buf, api.SHA1, "abc.txt", strings.NewReader("abc"))
	require.NoError(t, err)
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d  abc.txt\n", buf.String())

	err = hashReader(zap.NewNop(), &buf, api.NotFound, "-", strings.NewReader("abc"))
	assert.ErrorIs(t, err, api.ErrUnsupportedAlgorithm)
}

func TestParseRadii(t *testing.T) {
	c, err := parseRadii([]string{"3"})
	require.NoError(t, err)
	assert.True(t, c.IsUniform())
	assert.Equal(t, 3.0, c.BottomLeft())

	c, err = parseRadii([]string{"1", "-2", "3", "4"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.TopRight())

	_, err = parseRadii([]string{"1", "2"})
	assert.Error(t, err)
	_, err = parseRadii([]string{"x"})
	assert.Error(t, err)
}
