package hashing_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-pwcrypt/hashing"
)

const fox = "The quick brown fox jumps over the lazy dog"

func TestSimpleHash_Strategies(t *testing.T) {
	tests := []struct {
		name                 string
		text, key, salt, alg string
		want                 string
	}{
		{"plain sha1", "test", "", "", "sha1", "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3"},
		{"plain md5", "test", "", "", "md5", "098f6bcd4621d373cade4e832627b4f6"},
		{"salt is appended", "te", "", "st", "sha1", "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3"},
		{"case-insensitive name", "test", "", "", "SHA1", "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3"},
		{"hmac md5", fox, "key", "", "md5", "80070713463e7749b90c2dc24911e275"},
		{"hmac sha256", fox, "key", "", "sha256", "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8"},
		{"hmac key is key+salt", fox, "ke", "y", "sha256", "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8"},
		{"pbkdf2", "password", "", "salt", "pbkdf2(1,20,sha1)", "0c60c80f961f0e71f3a9b524af6012062fe037a6"},
		{"pbkdf2 ignores key", "password", "ignored", "salt", "pbkdf2(1,20,sha1)", "0c60c80f961f0e71f3a9b524af6012062fe037a6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hashing.SimpleHash(tt.text, tt.key, tt.salt, tt.alg)
			if err != nil {
				t.Fatalf("SimpleHash: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSimpleHash_MissingAlgorithm(t *testing.T) {
	_, err := hashing.SimpleHash("test", "", "", "")
	if !errors.Is(err, hashing.ErrMissingAlgorithm) {
		t.Errorf("expected ErrMissingAlgorithm, got %v", err)
	}
}

func TestSimpleHash_Errors(t *testing.T) {
	_, err := hashing.SimpleHash("test", "", "", "crc32")
	if !errors.Is(err, hashing.ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm, got %v", err)
	}
	_, err = hashing.SimpleHash("test", "", "", "pbkdf2(x)")
	if !errors.Is(err, hashing.ErrMalformedPBKDF2) {
		t.Errorf("expected ErrMalformedPBKDF2, got %v", err)
	}
}

func TestSimpleHash_PBKDF2Deterministic(t *testing.T) {
	const alg = "pbkdf2(1000,20,sha512)"
	a, _ := hashing.SimpleHash("test", "", "salt-a", alg)
	b, _ := hashing.SimpleHash("test", "", "salt-a", alg)
	c, _ := hashing.SimpleHash("test", "", "salt-b", alg)
	if a != b {
		t.Error("identical inputs must produce identical output")
	}
	if a == c {
		t.Error("different salts should produce different output")
	}
	if len(a) != 40 {
		t.Errorf("hex length = %d, want 40", len(a))
	}
}

func TestSimpleHash_UTF8(t *testing.T) {
	// "é" is hashed as its two UTF-8 bytes, so the result must match the
	// digest of the explicit byte string.
	a, _ := hashing.SimpleHash("é", "", "", "sha256")
	b, _ := hashing.SimpleHash("\xc3\xa9", "", "", "sha256")
	if a != b {
		t.Errorf("UTF-8 normalisation mismatch: %s vs %s", a, b)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseAlgorithm
// ──────────────────────────────────────────────────────────────────────────────

func TestParseAlgorithm_Kinds(t *testing.T) {
	a, err := hashing.ParseAlgorithm("sha256")
	if err != nil || a.Kind != hashing.KindDigest || a.Digest != hashing.DigestSHA256 {
		t.Errorf("sha256: %+v, %v", a, err)
	}
	if k := a.Keyed("k").Kind; k != hashing.KindHMAC {
		t.Errorf("Keyed(k).Kind = %v, want hmac", k)
	}
	if k := a.Keyed("").Kind; k != hashing.KindDigest {
		t.Errorf("Keyed(\"\").Kind = %v, want digest", k)
	}

	p, err := hashing.ParseAlgorithm("pbkdf2(10,16,sha256)")
	if err != nil || p.Kind != hashing.KindPBKDF2 || p.PBKDF2.Iterations != 10 {
		t.Errorf("pbkdf2: %+v, %v", p, err)
	}
	if k := p.Keyed("k").Kind; k != hashing.KindPBKDF2 {
		t.Errorf("pbkdf2 Keyed(k).Kind = %v, want pbkdf2", k)
	}
}

func TestParseAlgorithm_KeepsDescriptor(t *testing.T) {
	a, err := hashing.ParseAlgorithm("SHA1")
	if err != nil {
		t.Fatalf("ParseAlgorithm: %v", err)
	}
	if a.String() != "SHA1" {
		t.Errorf("String() = %q, want the descriptor verbatim", a.String())
	}
}
