package hashing

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultDigestAlg is the descriptor used when [Options.DigestAlg] is not
	// set through [DefaultOptions].  It names its parameters explicitly so
	// that hashes remain verifiable if the default is changed later.
	DefaultDigestAlg = "pbkdf2(1000,20,sha512)"

	// DefaultMaxLength is the default upper bound on plaintext length, in
	// characters.
	DefaultMaxLength = 1024

	// Placeholder is the value an edit form shows in place of a stored hash.
	// Submitting it back means "field left unchanged": it is never hashed
	// and never compared as a real password.
	Placeholder = "******"

	// autoSaltLen is the number of hex characters in an auto-generated salt.
	autoSaltLen = 16
)

// SaltMode selects how a [Crypt] salts passwords.
type SaltMode int

const (
	// SaltNone hashes without a salt.
	SaltNone SaltMode = iota
	// SaltFixed uses the same configured salt for every password.
	SaltFixed
	// SaltAuto generates a random salt for every [LazyHash].
	SaltAuto
)

// SaltPolicy pairs a [SaltMode] with the fixed salt value, if any.
// Build one with [NoSalt], [FixedSalt] or [AutoSalt].
type SaltPolicy struct {
	Mode  SaltMode
	Value string
}

// NoSalt disables salting.
func NoSalt() SaltPolicy { return SaltPolicy{Mode: SaltNone} }

// FixedSalt salts every password with s.  An empty s is the same as [NoSalt].
func FixedSalt(s string) SaltPolicy {
	if s == "" {
		return NoSalt()
	}
	return SaltPolicy{Mode: SaltFixed, Value: s}
}

// AutoSalt generates a fresh random salt for every hashed password.
func AutoSalt() SaltPolicy { return SaltPolicy{Mode: SaltAuto} }

// ParseSaltPolicy maps a configuration value to a [SaltPolicy]: "" and
// "false" disable salting, "true" selects auto-generated salts, and anything
// else is used as a fixed salt.
func ParseSaltPolicy(s string) SaltPolicy {
	switch strings.ToLower(s) {
	case "", "false":
		return NoSalt()
	case "true":
		return AutoSalt()
	default:
		return FixedSalt(s)
	}
}

// Options configures a [Crypt].
type Options struct {
	// Key is optional key material.  When non-empty, digest algorithms are
	// computed as HMAC.  A key of the form "<descriptor>:<key>" (for example
	// "sha512:secret" or "pbkdf2(1000,64,sha512):secret") also overrides
	// DigestAlg; only the part after the first ':' is used as key material.
	Key string

	// DigestAlg is the default algorithm descriptor.
	// Default: [DefaultDigestAlg].
	DigestAlg string

	// Salt selects how passwords are salted.  Default: [AutoSalt].
	Salt SaltPolicy

	// MinLength and MaxLength bound the plaintext length in characters.
	// They are checked before hashing.  A zero MaxLength means unbounded.
	MinLength int
	MaxLength int

	// Rand is the source of random bytes for auto-generated salts.
	// Default: crypto/rand.Reader.
	Rand io.Reader
}

// DefaultOptions returns Options with a PBKDF2 default algorithm, auto salt
// and a 1024-character maximum length.
func DefaultOptions() Options {
	return Options{
		DigestAlg: DefaultDigestAlg,
		Salt:      AutoSalt(),
		MaxLength: DefaultMaxLength,
	}
}

// Crypt encodes and verifies passwords.  It is the configuration every
// [LazyHash] it creates is bound to.
//
// # Thread safety
//
// Crypt is immutable after construction and safe for concurrent use.  The
// [LazyHash] values it returns are not.
type Crypt struct {
	opts Options

	// alg is the effective default algorithm: the key prefix if present,
	// otherwise opts.DigestAlg.
	alg Algorithm
	// keyMaterial is opts.Key without its algorithm prefix.
	keyMaterial string
}

var _ Hasher = (*Crypt)(nil)

// NewCrypt constructs a Crypt.  Configuration is validated eagerly so that a
// misconfigured algorithm surfaces here rather than as an unverifiable hash:
//   - an unknown digest name yields [ErrUnsupportedAlgorithm];
//   - a malformed PBKDF2 descriptor yields [ErrMalformedPBKDF2];
//   - an empty DigestAlg with no key prefix yields [ErrMissingAlgorithm];
//   - a fixed salt containing '$', a negative length, or MinLength greater
//     than MaxLength yields [ErrInvalidOption].
func NewCrypt(opts Options) (*Crypt, error) {
	descriptor, key := splitKey(opts.Key, opts.DigestAlg)
	alg, err := ParseAlgorithm(descriptor)
	if err != nil {
		return nil, err
	}
	if opts.Salt.Mode == SaltFixed && strings.Contains(opts.Salt.Value, "$") {
		return nil, fmt.Errorf("%w: fixed salt must not contain '$'", ErrInvalidOption)
	}
	if opts.MinLength < 0 || opts.MaxLength < 0 {
		return nil, fmt.Errorf("%w: length bounds must be ≥ 0, got [%d, %d]",
			ErrInvalidOption, opts.MinLength, opts.MaxLength)
	}
	if opts.MaxLength > 0 && opts.MinLength > opts.MaxLength {
		return nil, fmt.Errorf("%w: min length %d exceeds max length %d",
			ErrInvalidOption, opts.MinLength, opts.MaxLength)
	}
	if opts.Rand == nil {
		opts.Rand = rand.Reader
	}
	return &Crypt{opts: opts, alg: alg, keyMaterial: key}, nil
}

// splitKey separates an optional "<descriptor>:" prefix from key.
func splitKey(key, fallback string) (descriptor, material string) {
	if alg, rest, ok := strings.Cut(key, ":"); ok {
		return alg, rest
	}
	return fallback, key
}

// Algorithm returns the effective default algorithm.
func (c *Crypt) Algorithm() Algorithm { return c.alg }

// Options returns the configuration c was built from.
func (c *Crypt) Options() Options { return c.opts }

// Formatter returns the value to display in place of a stored hash.
func (c *Crypt) Formatter() string { return Placeholder }

// New wraps password in a [LazyHash] bound to c.  Nothing is hashed until
// the LazyHash is materialized or compared.
//
// [Placeholder] yields an unchanged LazyHash.  Otherwise the length is
// checked first: an empty password or one shorter than MinLength fails with
// [ErrTooShort], one longer than MaxLength with [ErrTooLong].
func (c *Crypt) New(password string) (*LazyHash, error) {
	if password == Placeholder {
		return &LazyHash{crypt: c, unchanged: true}, nil
	}
	n := utf8.RuneCountInString(password)
	if n == 0 || n < c.opts.MinLength {
		return nil, fmt.Errorf("%w: %d characters, minimum is %d",
			ErrTooShort, n, max(c.opts.MinLength, 1))
	}
	if c.opts.MaxLength > 0 && n > c.opts.MaxLength {
		return nil, fmt.Errorf("%w: %d characters, maximum is %d",
			ErrTooLong, n, c.opts.MaxLength)
	}
	return &LazyHash{crypt: c, password: password}, nil
}

// Make hashes password and returns it in descriptor$salt$digest form.
// [Placeholder] returns "" without hashing.
func (c *Crypt) Make(password string) (string, error) {
	lh, err := c.New(password)
	if err != nil {
		return "", err
	}
	return lh.Materialize()
}

// Check reports whether password matches stored.  The algorithm and salt are
// read from stored, so hashes remain verifiable after the configured default
// changes.  A bare hex digest has its algorithm inferred from its length.
//
// Malformed stored values and mismatches both return (false, nil).  The
// error is non-nil only when password fails the length bounds.
func (c *Crypt) Check(password, stored string) (bool, error) {
	lh, err := c.New(password)
	if err != nil {
		return false, err
	}
	return lh.Equal(stored), nil
}

// Verify is [Crypt.Check] for callers that treat a rejected plaintext as a
// mismatch.
func (c *Crypt) Verify(password, stored string) bool {
	ok, err := c.Check(password, stored)
	return err == nil && ok
}

// NeedsRehash returns true for legacy digests and for stored hashes whose
// descriptor differs from the effective default algorithm.  A stored hash
// whose descriptor does not parse yields [ErrInvalidHash].
func (c *Crypt) NeedsRehash(stored string) (bool, error) {
	format, ok := DetectFormat(stored)
	if !ok {
		return false, ErrInvalidHash
	}
	if format == FormatLegacy {
		return true, nil
	}
	sh, err := ParseStored(stored)
	if err != nil {
		return false, err
	}
	if _, err := ParseAlgorithm(sh.Descriptor); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	return sh.Descriptor != c.alg.String(), nil
}

// Info parses stored without verifying it.
func (c *Crypt) Info(stored string) (HashInfo, error) {
	return ParseInfo(stored)
}

// newSalt returns the salt for a single LazyHash.
func (c *Crypt) newSalt() (string, error) {
	switch c.opts.Salt.Mode {
	case SaltFixed:
		return c.opts.Salt.Value, nil
	case SaltAuto:
		return randomSalt(c.opts.Rand)
	default:
		return "", nil
	}
}
