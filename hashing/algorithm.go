package hashing

import (
	"crypto/hmac"
	"encoding/hex"
	"fmt"
	"strings"
)

// Kind discriminates the hashing strategies an [Algorithm] can select.
type Kind int

const (
	// KindDigest hashes text+salt with a plain digest.
	KindDigest Kind = iota + 1
	// KindHMAC computes HMAC(key+salt, text) over a digest.
	KindHMAC
	// KindPBKDF2 derives a key from text with salt as the PBKDF2 salt.
	KindPBKDF2
)

func (k Kind) String() string {
	switch k {
	case KindDigest:
		return "digest"
	case KindHMAC:
		return "hmac"
	case KindPBKDF2:
		return "pbkdf2"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Algorithm is a parsed algorithm descriptor.  A descriptor names either a
// digest ("sha256") or a PBKDF2 descriptor ("pbkdf2(1000,20,sha512)"); HMAC is not
// spelled in descriptors and is selected by [Algorithm.Keyed] when key
// material is present.
//
// Algorithm is a small value type; parse it once and reuse it.
type Algorithm struct {
	Kind   Kind
	Digest DigestName
	// PBKDF2 is only meaningful when Kind is KindPBKDF2.
	PBKDF2 PBKDF2Params

	// descriptor is the text the algorithm was parsed from.  It is written
	// back verbatim into stored hashes so that verification rebuilds exactly
	// the string that was persisted.
	descriptor string
}

// ParseAlgorithm parses descriptor into an [Algorithm].
//
// An empty descriptor yields [ErrMissingAlgorithm].  Descriptors beginning
// with "pbkdf2" are parsed with [ParsePBKDF2]; anything else must be a
// supported digest name.
func ParseAlgorithm(descriptor string) (Algorithm, error) {
	switch {
	case descriptor == "":
		return Algorithm{}, ErrMissingAlgorithm
	case strings.HasPrefix(descriptor, pbkdf2Prefix):
		p, err := ParsePBKDF2(descriptor)
		if err != nil {
			return Algorithm{}, err
		}
		return Algorithm{Kind: KindPBKDF2, Digest: p.Digest, PBKDF2: p, descriptor: descriptor}, nil
	default:
		d, err := ParseDigest(descriptor)
		if err != nil {
			return Algorithm{}, err
		}
		return Algorithm{Kind: KindDigest, Digest: d, descriptor: descriptor}, nil
	}
}

// Keyed returns the algorithm to use with the given key material: a digest
// algorithm becomes HMAC when key is non-empty.  PBKDF2 ignores the key and
// is returned unchanged.
func (a Algorithm) Keyed(key string) Algorithm {
	if a.Kind == KindDigest && key != "" {
		a.Kind = KindHMAC
	}
	return a
}

// String returns the descriptor the algorithm was parsed from.
func (a Algorithm) String() string {
	if a.descriptor != "" {
		return a.descriptor
	}
	if a.Kind == KindPBKDF2 {
		return a.PBKDF2.String()
	}
	return string(a.Digest)
}

// Sum hashes text with key and salt and returns the lowercase hex output.
// All three inputs are hashed as their UTF-8 bytes.
func (a Algorithm) Sum(text, key, salt string) string {
	switch a.Kind {
	case KindPBKDF2:
		return a.PBKDF2.Hex([]byte(text), []byte(salt))
	case KindHMAC:
		mac := hmac.New(a.Digest.New, []byte(key+salt))
		mac.Write([]byte(text))
		return hex.EncodeToString(mac.Sum(nil))
	case KindDigest:
		h := a.Digest.New()
		h.Write([]byte(text + salt))
		return hex.EncodeToString(h.Sum(nil))
	default:
		panic(fmt.Sprintf("hashing: unhandled algorithm kind %v", a.Kind))
	}
}
