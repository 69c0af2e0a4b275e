package api

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/sha3"
)

type HashAlgorithm uint8

const (
	MD5 HashAlgorithm = iota
	SHA1
	SHA256
	SHA224
	SHA384
	SHA512
	SHA3_256
	None
	NotFound
)

var ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

type descriptor struct {
	name, ui, api string
	newHash       func() hash.Hash
}

var hashAlgorithms = [...]descriptor{
	MD5:      {"MD5", "MSD5", "md5", md5.New},
	SHA1:     {"SHA1", "SHA1", "sha1", sha1.New},
	SHA256:   {"SHA256", "SHA256", "sha256", sha256.New},
	SHA224:   {"SHA224", "SHA224", "sha224", sha256.New224},
	SHA384:   {"SHA384", "SHA384", "sha384", sha512.New384},
	SHA512:   {"SHA512", "SHA512", "sha512", sha512.New},
	SHA3_256: {"SHA3_256", "SHA-3 256", "sha3_256", sha3.New256},
	None:     {"NONE", "-", "", nil},
	NotFound: {"NOT_FOUND", "", "", nil},
}

var hashAlgorithmAliases = map[string]HashAlgorithm{
	"md5": MD5, "MD5": MD5, "md-5": MD5, "md_5": MD5, "MD-5": MD5, "MD_5": MD5,
	"sha1": SHA1, "SHA1": SHA1, "sha-1": SHA1, "SHA-1": SHA1, "sha_1": SHA1, "SHA_1": SHA1,
	"sha256": SHA256, "SHA256": SHA256, "sha_256": SHA256, "SHA_256": SHA256, "sha-256": SHA256, "SHA-256": SHA256,
	"sha224": SHA224, "SHA224": SHA224, "sha_224": SHA224, "SHA_224": SHA224, "sha-224": SHA224, "SHA-224": SHA224,
	"sha384": SHA384, "SHA384": SHA384, "sha_384": SHA384, "SHA_384": SHA384, "sha-384": SHA384, "SHA-384": SHA384,
	"sha512": SHA512, "SHA512": SHA512, "sha_512": SHA512, "SHA_512": SHA512, "sha-512": SHA512, "SHA-512": SHA512,
	"sha3_256": SHA3_256, "SHA3_256": SHA3_256, "sha-3-256": SHA3_256, "SHA-3-256": SHA3_256, "sha_3_256": SHA3_256, "SHA_3_256": SHA3_256,
}

// HashAlgorithmFromText resolves the usual spellings of an algorithm name.
// Anything else yields NotFound.
func HashAlgorithmFromText(text string) HashAlgorithm {
	if h, ok := hashAlgorithmAliases[text]; ok {
		return h
	}
	return NotFound
}

func HashAlgorithms() []HashAlgorithm {
	all := make([]HashAlgorithm, len(hashAlgorithms))
	for i := range hashAlgorithms {
		all[i] = HashAlgorithm(i)
	}
	return all
}

func (h HashAlgorithm) desc() descriptor {
	if int(h) < len(hashAlgorithms) {
		return hashAlgorithms[h]
	}
	return hashAlgorithms[NotFound]
}

func (h HashAlgorithm) Name() string      { return h.desc().name }
func (h HashAlgorithm) UIString() string  { return h.desc().ui }
func (h HashAlgorithm) APIString() string { return h.desc().api }

func (h HashAlgorithm) DefaultValue() Api  { return None }
func (h HashAlgorithm) NotFoundValue() Api { return NotFound }

func (h HashAlgorithm) All() []Api {
	all := make([]Api, 0, len(hashAlgorithms))
	for _, a := range HashAlgorithms() {
		all = append(all, a)
	}
	return all
}

func (h HashAlgorithm) Format(f OutputFormat) string {
	d := h.desc()
	return renderDescriptor(d.name, d.ui, d.api, !f.Compressed())
}

func (h HashAlgorithm) String() string {
	return h.Format(FullCompressed)
}

func (h HashAlgorithm) New() (hash.Hash, error) {
	d := h.desc()
	if d.newHash == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, d.name)
	}
	return d.newHash(), nil
}

func (h HashAlgorithm) Sum(data []byte) ([]byte, error) {
	hh, err := h.New()
	if err != nil {
		return nil, err
	}
	hh.Write(data)
	return hh.Sum(nil), nil
}

// SumReader hashes everything read from r and reports how many bytes it consumed.
func (h HashAlgorithm) SumReader(r io.Reader) ([]byte, int64, error) {
	hh, err := h.New()
	if err != nil {
		return nil, 0, err
	}
	n, err := io.Copy(hh, r)
	if err != nil {
		return nil, n, fmt.Errorf("hashing with %s: %w", h.Name(), err)
	}
	return hh.Sum(nil), n, nil
}
