package hashing

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const pbkdf2Prefix = "pbkdf2"

// Upper bounds on PBKDF2 parameters.  Descriptors are read back from stored
// hashes, so an unbounded value would let a corrupted record exhaust memory
// or CPU during verification.
const (
	MaxPBKDF2Iterations = 2_000_000
	MaxPBKDF2KeyLen     = 1024
)

// PBKDF2Params holds the parameters parsed from a descriptor of the form
//
//	pbkdf2(<iterations>,<keylen>,<digest>)
//
// e.g. "pbkdf2(1000,20,sha512)": 1000 iterations of HMAC-SHA512 producing a
// 20-byte (40 hex character) key.
type PBKDF2Params struct {
	Iterations int
	KeyLen     int
	Digest     DigestName
}

// ParsePBKDF2 parses a PBKDF2 descriptor.  It returns [ErrMalformedPBKDF2]
// when the grammar does not match, either integer is not positive, or either
// exceeds [MaxPBKDF2Iterations] / [MaxPBKDF2KeyLen].  An
// unknown digest name yields an error matching both [ErrMalformedPBKDF2] and
// [ErrUnsupportedAlgorithm].
func ParsePBKDF2(descriptor string) (PBKDF2Params, error) {
	body, ok := strings.CutPrefix(descriptor, pbkdf2Prefix+"(")
	if !ok {
		return PBKDF2Params{}, fmt.Errorf("%w: %q must start with %q",
			ErrMalformedPBKDF2, descriptor, pbkdf2Prefix+"(")
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return PBKDF2Params{}, fmt.Errorf("%w: %q must end with ')'", ErrMalformedPBKDF2, descriptor)
	}
	fields := strings.Split(body, ",")
	if len(fields) != 3 {
		return PBKDF2Params{}, fmt.Errorf("%w: %q must have 3 comma-separated fields, got %d",
			ErrMalformedPBKDF2, descriptor, len(fields))
	}

	iterations, err := boundedInt(fields[0], "iterations", MaxPBKDF2Iterations)
	if err != nil {
		return PBKDF2Params{}, fmt.Errorf("%w: %q: %v", ErrMalformedPBKDF2, descriptor, err)
	}
	keyLen, err := boundedInt(fields[1], "keylen", MaxPBKDF2KeyLen)
	if err != nil {
		return PBKDF2Params{}, fmt.Errorf("%w: %q: %v", ErrMalformedPBKDF2, descriptor, err)
	}
	digest, err := ParseDigest(fields[2])
	if err != nil {
		return PBKDF2Params{}, errors.Join(
			fmt.Errorf("%w: %q", ErrMalformedPBKDF2, descriptor), err)
	}
	return PBKDF2Params{Iterations: iterations, KeyLen: keyLen, Digest: digest}, nil
}

// boundedInt parses a plain decimal integer in [1, limit].
func boundedInt(s, field string, limit int) (int, error) {
	// strconv.Atoi accepts a leading sign; the grammar does not.
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, fmt.Errorf("%s %q is not a decimal integer", field, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a decimal integer", field, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be > 0, got %d", field, n)
	}
	if n > limit {
		return 0, fmt.Errorf("%s must be <= %d, got %d", field, limit, n)
	}
	return n, nil
}

// String renders the canonical descriptor, e.g. "pbkdf2(1000,20,sha512)".
func (p PBKDF2Params) String() string {
	return fmt.Sprintf("%s(%d,%d,%s)", pbkdf2Prefix, p.Iterations, p.KeyLen, p.Digest)
}

// Hex derives KeyLen bytes from text and salt with PBKDF2, using HMAC over
// the configured digest as the pseudorandom function, and returns them
// hex-encoded.
func (p PBKDF2Params) Hex(text, salt []byte) string {
	return hex.EncodeToString(pbkdf2.Key(text, salt, p.Iterations, p.KeyLen, p.Digest.New))
}
