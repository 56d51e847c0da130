package hashing_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hasbyte1/go-pwcrypt/hashing"
)

func TestParsePBKDF2_Valid(t *testing.T) {
	p, err := hashing.ParsePBKDF2("pbkdf2(1000,20,sha512)")
	if err != nil {
		t.Fatalf("ParsePBKDF2: %v", err)
	}
	want := hashing.PBKDF2Params{Iterations: 1000, KeyLen: 20, Digest: hashing.DigestSHA512}
	if p != want {
		t.Errorf("got %+v, want %+v", p, want)
	}
	if p.String() != "pbkdf2(1000,20,sha512)" {
		t.Errorf("String() = %q", p.String())
	}
}

func TestParsePBKDF2_Malformed(t *testing.T) {
	tests := []string{
		"",
		"pbkdf2",
		"pbkdf2()",
		"pbkdf2(1000,20)",
		"pbkdf2(1000,20,sha512",
		"pbkdf2(1000,20,sha512,extra)",
		"pbkdf2(0,20,sha512)",
		"pbkdf2(1000,0,sha512)",
		"pbkdf2(-1,20,sha512)",
		"pbkdf2(+5,20,sha512)",
		"pbkdf2(abc,20,sha512)",
		"pbkdf2(1000, 20,sha512)",
		"PBKDF2(1000,20,sha512)",
		"pbkdf2(2000001,20,sha512)",
		"pbkdf2(1000,1025,sha512)",
		"pbkdf2(1,9223372036854775807,sha1)",
		"pbkdf2(1,99999999999999999999,sha1)",
	}
	for _, desc := range tests {
		t.Run(desc, func(t *testing.T) {
			_, err := hashing.ParsePBKDF2(desc)
			if !errors.Is(err, hashing.ErrMalformedPBKDF2) {
				t.Errorf("expected ErrMalformedPBKDF2, got %v", err)
			}
		})
	}
}

func TestParsePBKDF2_Bounds(t *testing.T) {
	desc := fmt.Sprintf("pbkdf2(%d,%d,sha1)", hashing.MaxPBKDF2Iterations, hashing.MaxPBKDF2KeyLen)
	p, err := hashing.ParsePBKDF2(desc)
	if err != nil {
		t.Fatalf("ParsePBKDF2(%q): %v", desc, err)
	}
	if p.Iterations != hashing.MaxPBKDF2Iterations || p.KeyLen != hashing.MaxPBKDF2KeyLen {
		t.Errorf("got %+v", p)
	}
}

func TestParsePBKDF2_UnsupportedDigest(t *testing.T) {
	_, err := hashing.ParsePBKDF2("pbkdf2(1000,20,whirlpool)")
	if !errors.Is(err, hashing.ErrMalformedPBKDF2) {
		t.Errorf("expected ErrMalformedPBKDF2, got %v", err)
	}
	if !errors.Is(err, hashing.ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm, got %v", err)
	}
}

// RFC 6070 test vectors for PBKDF2-HMAC-SHA1.
func TestPBKDF2Params_Hex_RFC6070(t *testing.T) {
	tests := []struct {
		iterations int
		want       string
	}{
		{1, "0c60c80f961f0e71f3a9b524af6012062fe037a6"},
		{2, "ea6c014dc72d6f8ccd1ed92ace1d41f0d8de8957"},
		{4096, "4b007901b765489abead49d926f721d065a429c1"},
	}
	for _, tt := range tests {
		p := hashing.PBKDF2Params{Iterations: tt.iterations, KeyLen: 20, Digest: hashing.DigestSHA1}
		if got := p.Hex([]byte("password"), []byte("salt")); got != tt.want {
			t.Errorf("c=%d: got %s, want %s", tt.iterations, got, tt.want)
		}
	}
}

func TestPBKDF2Params_Hex_KeyLen(t *testing.T) {
	p := hashing.PBKDF2Params{Iterations: 1, KeyLen: 64, Digest: hashing.DigestSHA512}
	if got := len(p.Hex([]byte("pw"), nil)); got != 128 {
		t.Errorf("hex length = %d, want 128", got)
	}
}
