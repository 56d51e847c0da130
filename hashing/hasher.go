package hashing

import (
	"fmt"
	"strings"
)

// Hasher is the interface satisfied by [Crypt].  Callers that only need to
// encode and verify passwords should depend on it rather than the concrete
// type.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded hash string
	// in the descriptor$salt$digest format.
	Make(password string) (string, error)

	// Check verifies that password matches the previously encoded hash.
	// A mismatch or an unparseable hash is reported as (false, nil); an
	// error means the plaintext itself was rejected before hashing.
	Check(password, hash string) (bool, error)

	// NeedsRehash returns true when hash was produced with a different
	// algorithm than the hasher's current configuration, or is a legacy
	// unsalted digest.
	NeedsRehash(hash string) (bool, error)

	// Info extracts metadata from an encoded hash string without verifying it.
	Info(hash string) (HashInfo, error)
}

// Format identifies the shape of a stored hash string.
type Format string

const (
	// FormatStored is the self-describing descriptor$salt$digest form.
	FormatStored Format = "stored"
	// FormatLegacy is a bare hex digest whose algorithm is inferred from its
	// length.
	FormatLegacy Format = "legacy"
)

// HashInfo carries metadata parsed from an encoded hash string.
type HashInfo struct {
	Format    Format
	Algorithm Algorithm
	Salt      string

	// Params holds algorithm parameters:
	//
	//   "digest"     → DigestName
	//   "iterations" → int  (pbkdf2 only)
	//   "key_len"    → int  (pbkdf2 only, bytes)
	Params map[string]any
}

// StoredHash is the canonical persisted representation of a password hash.
type StoredHash struct {
	Descriptor string
	Salt       string
	Digest     string
}

// String renders h as descriptor$salt$digest.
func (h StoredHash) String() string {
	return h.Descriptor + "$" + h.Salt + "$" + h.Digest
}

// ParseStored splits s into its three '$'-delimited fields.  It returns
// [ErrInvalidHash] unless s contains exactly two '$' separators and a
// non-empty descriptor.  The descriptor itself is not validated.
func ParseStored(s string) (StoredHash, error) {
	if strings.Count(s, "$") != 2 {
		return StoredHash{}, fmt.Errorf("%w: expected 2 '$' separators, got %d",
			ErrInvalidHash, strings.Count(s, "$"))
	}
	parts := strings.Split(s, "$")
	if parts[0] == "" {
		return StoredHash{}, fmt.Errorf("%w: empty algorithm descriptor", ErrInvalidHash)
	}
	return StoredHash{Descriptor: parts[0], Salt: parts[1], Digest: parts[2]}, nil
}

// DetectFormat inspects a hash string and reports its [Format].  It is a
// shape check only: a stored hash with an unknown descriptor is still
// reported as [FormatStored].
//
// The second return value is false when the string is neither shape.
func DetectFormat(hash string) (Format, bool) {
	switch n := strings.Count(hash, "$"); {
	case n == 2:
		return FormatStored, true
	case n == 0:
		if _, ok := LegacyDigest(len(hash)); ok {
			return FormatLegacy, true
		}
	}
	return "", false
}

// ParseInfo extracts the [HashInfo] of hash.  Unlike [DetectFormat] it also
// parses the algorithm descriptor.
func ParseInfo(hash string) (HashInfo, error) {
	format, ok := DetectFormat(hash)
	if !ok {
		return HashInfo{}, ErrInvalidHash
	}

	var (
		alg  Algorithm
		salt string
		err  error
	)
	if format == FormatLegacy {
		d, _ := LegacyDigest(len(hash))
		alg, err = ParseAlgorithm(string(d))
	} else {
		var sh StoredHash
		if sh, err = ParseStored(hash); err != nil {
			return HashInfo{}, err
		}
		salt = sh.Salt
		alg, err = ParseAlgorithm(sh.Descriptor)
	}
	if err != nil {
		return HashInfo{}, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}

	params := map[string]any{"digest": alg.Digest}
	if alg.Kind == KindPBKDF2 {
		params["iterations"] = alg.PBKDF2.Iterations
		params["key_len"] = alg.PBKDF2.KeyLen
	}
	return HashInfo{Format: format, Algorithm: alg, Salt: salt, Params: params}, nil
}
