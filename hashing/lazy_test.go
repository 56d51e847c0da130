package hashing_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/hasbyte1/go-pwcrypt/hashing"
)

func TestLazyHash_MaterializeCaches(t *testing.T) {
	c := newTestCrypt(t, hashing.Options{DigestAlg: "sha256", Salt: hashing.AutoSalt()})
	lh, err := c.New("secret")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first, err := lh.Materialize()
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	second, _ := lh.Materialize()
	if first != second {
		t.Errorf("materialized value changed: %q then %q", first, second)
	}
	if lh.String() != first {
		t.Errorf("String() = %q, want %q", lh.String(), first)
	}
	if !lh.Equal(first) {
		t.Error("LazyHash should equal its own materialization")
	}
}

func TestLazyHash_AutoSaltFromReader(t *testing.T) {
	// An all-zero reader yields UUID 00000000-0000-4000-8000-000000000000.
	opts := hashing.Options{DigestAlg: "sha1", Salt: hashing.AutoSalt(), Rand: bytes.NewReader(make([]byte, 16))}
	c := newTestCrypt(t, opts)
	stored, err := c.Make("test")
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	want, _ := hashing.SimpleHash("test", "", "8000000000000000", "sha1")
	if stored != "sha1$8000000000000000$"+want {
		t.Errorf("got %q", stored)
	}
}

func TestLazyHash_SaltError(t *testing.T) {
	boom := errors.New("boom")
	c := newTestCrypt(t, hashing.Options{DigestAlg: "sha1", Salt: hashing.AutoSalt(), Rand: iotest.ErrReader(boom)})
	lh, _ := c.New("test")
	if _, err := lh.Materialize(); !errors.Is(err, boom) {
		t.Errorf("expected wrapped reader error, got %v", err)
	}
	if lh.String() != "" {
		t.Errorf("String() = %q, want empty on error", lh.String())
	}
}

func TestLazyHash_CompareDoesNotMaterialize(t *testing.T) {
	// Comparing must not consume randomness: the reader would fail.
	c := newTestCrypt(t, hashing.Options{DigestAlg: "sha1", Salt: hashing.AutoSalt(), Rand: iotest.ErrReader(errors.New("unused"))})
	lh, _ := c.New("test")
	if !lh.Equal("sha1$$a94a8fe5ccb19ba61c4c0873d391e987982fbbd3") {
		t.Error("Equal should verify without materializing")
	}
}

func TestLazyHash_EqualLazy(t *testing.T) {
	opts := hashing.Options{DigestAlg: "sha1", Key: "k", Salt: hashing.AutoSalt(), Rand: rand.Reader}
	c1 := newTestCrypt(t, opts)
	c2 := newTestCrypt(t, opts)
	other := newTestCrypt(t, hashing.Options{DigestAlg: "sha1", Key: "other"})
	otherAlg := newTestCrypt(t, hashing.Options{DigestAlg: "md5", Key: "k"})

	a, _ := c1.New("pw")
	b, _ := c2.New("pw")
	d, _ := c1.New("different")
	e, _ := other.New("pw")
	f, _ := otherAlg.New("pw")
	u, _ := c1.New(hashing.Placeholder)

	tests := []struct {
		name string
		x, y *hashing.LazyHash
		want bool
	}{
		{"self", a, a, true},
		{"same config", a, b, true},
		{"different password", a, d, false},
		{"different key", a, e, false},
		{"different algorithm", a, f, false},
		{"unchanged vs real", u, a, false},
		{"nil", a, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x.EqualLazy(tt.y); got != tt.want {
				t.Errorf("EqualLazy = %v, want %v", got, tt.want)
			}
		})
	}

	// Neither value was hashed: both still compare equal after one is
	// materialized with its own random salt.
	if _, err := a.Materialize(); err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if !a.EqualLazy(b) {
		t.Error("EqualLazy should not depend on materialization")
	}
}

func TestLazyHash_UnchangedMaterializesEmpty(t *testing.T) {
	c := newTestCrypt(t, hashing.DefaultOptions())
	lh, err := c.New(hashing.Placeholder)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s, err := lh.Materialize()
	if err != nil || s != "" {
		t.Errorf("Materialize = %q, %v; want \"\", nil", s, err)
	}
	if !lh.Equal("") {
		t.Error("unchanged LazyHash should match anything")
	}
}
