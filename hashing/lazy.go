package hashing

import (
	"crypto/subtle"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// LazyHash is a password bound to the [Crypt] that created it.  The hash is
// computed on first use and cached on the instance, so a value that is
// only compared against a stored hash never pays for producing its own.
//
// A LazyHash is meant for a single set-password or check-password
// operation.  It is not safe for concurrent use: callers sharing one across
// goroutines must materialize it once before publishing it.
type LazyHash struct {
	crypt    *Crypt
	password string

	// unchanged marks the Placeholder value: nothing to hash.
	unchanged bool

	salt    string
	hasSalt bool
	crypted string
}

// Unchanged reports whether the LazyHash wraps [Placeholder].
func (l *LazyHash) Unchanged() bool { return l.unchanged }

// Materialize returns the hash in descriptor$salt$digest form, computing it
// on the first call.  An unchanged LazyHash returns "".
func (l *LazyHash) Materialize() (string, error) {
	if l.unchanged || l.crypted != "" {
		return l.crypted, nil
	}
	salt, err := l.instanceSalt()
	if err != nil {
		return "", err
	}
	alg := l.crypt.alg
	digest := alg.Keyed(l.crypt.keyMaterial).Sum(l.password, l.crypt.keyMaterial, salt)
	l.crypted = StoredHash{Descriptor: alg.String(), Salt: salt, Digest: digest}.String()
	return l.crypted, nil
}

// String implements [fmt.Stringer].  It returns "" if the salt could not be
// generated; use [LazyHash.Materialize] to observe that error.
func (l *LazyHash) String() string {
	s, _ := l.Materialize()
	return s
}

// Equal reports whether the wrapped password matches stored.
//
// For a descriptor$salt$digest value the algorithm and salt are taken from
// stored, the password is re-hashed with the configured key material and the
// rebuilt string is compared with stored.  A value without '$' is treated as
// a legacy unsalted digest whose algorithm is inferred from its length.  An
// empty, malformed or unrecognised stored value never matches.
//
// An unchanged LazyHash matches anything: the field was not edited.
func (l *LazyHash) Equal(stored string) bool {
	if l.unchanged {
		return true
	}
	if stored == "" {
		return false
	}
	key := l.crypt.keyMaterial

	var candidate string
	switch format, _ := DetectFormat(stored); format {
	case FormatStored:
		sh, err := ParseStored(stored)
		if err != nil {
			return false
		}
		alg, err := ParseAlgorithm(sh.Descriptor)
		if err != nil {
			return false
		}
		sh.Digest = alg.Keyed(key).Sum(l.password, key, sh.Salt)
		candidate = sh.String()
	case FormatLegacy:
		d, _ := LegacyDigest(len(stored))
		alg := Algorithm{Kind: KindDigest, Digest: d}
		candidate = alg.Keyed(key).Sum(l.password, key, "")
	default:
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1
}

// EqualLazy compares two unmaterialized values without hashing: they are
// equal when bound to the same key and default algorithm and wrapping the
// same password.
func (l *LazyHash) EqualLazy(other *LazyHash) bool {
	if l == other {
		return true
	}
	if other == nil {
		return false
	}
	if l.unchanged || other.unchanged {
		return l.unchanged == other.unchanged
	}
	return l.crypt.opts.Key == other.crypt.opts.Key &&
		l.crypt.alg.String() == other.crypt.alg.String() &&
		l.password == other.password
}

// instanceSalt resolves the salt once per LazyHash.
func (l *LazyHash) instanceSalt() (string, error) {
	if !l.hasSalt {
		s, err := l.crypt.newSalt()
		if err != nil {
			return "", err
		}
		l.salt, l.hasSalt = s, true
	}
	return l.salt, nil
}

// randomSalt returns the last 16 hex characters of a random (version 4)
// UUID read from r.
func randomSalt(r io.Reader) (string, error) {
	u, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return "", fmt.Errorf("hashing: failed to generate salt: %w", err)
	}
	hexID := strings.ReplaceAll(u.String(), "-", "")
	return hexID[len(hexID)-autoSaltLen:], nil
}
