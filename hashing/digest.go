package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"
)

// DigestName identifies a one-way hash function by its canonical name.
type DigestName string

const (
	DigestMD5    DigestName = "md5"
	DigestSHA1   DigestName = "sha1"
	DigestSHA224 DigestName = "sha224"
	DigestSHA256 DigestName = "sha256"
	DigestSHA384 DigestName = "sha384"
	DigestSHA512 DigestName = "sha512"
)

// digests maps each supported name to its constructor and output size in bytes.
var digests = map[DigestName]struct {
	fn   func() hash.Hash
	size int
}{
	DigestMD5:    {md5.New, md5.Size},
	DigestSHA1:   {sha1.New, sha1.Size},
	DigestSHA224: {sha256.New224, sha256.Size224},
	DigestSHA256: {sha256.New, sha256.Size},
	DigestSHA384: {sha512.New384, sha512.Size384},
	DigestSHA512: {sha512.New, sha512.Size},
}

// legacyBySize maps the hex length of an unsalted digest to the algorithm
// that produces it.
//
// Length inference is inherently ambiguous: a truncated or corrupted value
// that happens to have one of these lengths is attributed to the wrong
// algorithm and simply fails to verify.  The table is kept as is because
// stored legacy hashes depend on it.
var legacyBySize = map[int]DigestName{
	md5.Size * 2:       DigestMD5,
	sha1.Size * 2:      DigestSHA1,
	sha256.Size224 * 2: DigestSHA224,
	sha256.Size * 2:    DigestSHA256,
	sha512.Size384 * 2: DigestSHA384,
	sha512.Size * 2:    DigestSHA512,
}

// ParseDigest normalises name to a supported [DigestName].
// The comparison is case-insensitive.
func ParseDigest(name string) (DigestName, error) {
	d := DigestName(strings.ToLower(name))
	if _, ok := digests[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return d, nil
}

// ResolveDigest returns the hash constructor for name.
func ResolveDigest(name string) (func() hash.Hash, error) {
	d, err := ParseDigest(name)
	if err != nil {
		return nil, err
	}
	return digests[d].fn, nil
}

// New returns a fresh hash.Hash for d.  It panics if d was not obtained
// from [ParseDigest] or one of the Digest constants.
func (d DigestName) New() hash.Hash {
	e, ok := digests[d]
	if !ok {
		panic(fmt.Sprintf("hashing: unknown digest %q", string(d)))
	}
	return e.fn()
}

// Size returns the digest output size in bytes, or 0 for unknown names.
func (d DigestName) Size() int { return digests[d].size }

// LegacyDigest infers the algorithm of an unsalted hex digest from its
// length.  The second return value is false when no entry matches.
func LegacyDigest(hexLen int) (DigestName, bool) {
	d, ok := legacyBySize[hexLen]
	return d, ok
}
