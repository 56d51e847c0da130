// Package hashing encodes and verifies passwords as self-describing,
// versioned hash strings.
//
// # Architecture
//
// [Crypt] holds the configuration (key material, default algorithm, salt
// policy, length bounds) and implements the [Hasher] interface.  It wraps
// each plaintext in a [LazyHash], which hashes on first use and caches the
// result.  Hash computation goes through [SimpleHash] / [Algorithm.Sum],
// which dispatch on a parsed [Algorithm]: a plain digest, an HMAC over a
// digest, or PBKDF2.
//
// # Quick start
//
//	c, err := hashing.NewCrypt(hashing.DefaultOptions())
//	if err != nil { log.Fatal(err) }
//
//	stored, _ := c.Make("my-secret-password")   // "pbkdf2(1000,20,sha512)$<salt>$<hex>"
//	ok := c.Verify("my-secret-password", stored) // true
//
// # Hash format
//
// Hashes are stored as three '$'-delimited fields:
//
//	<descriptor>$<salt>$<hex-digest>
//
// where descriptor is a digest name (md5, sha1, sha224, sha256, sha384,
// sha512) or pbkdf2(<iterations>,<keylen>,<digest>).  Verification reads the
// algorithm and salt from the stored string, so changing the configured
// default never invalidates existing hashes.
//
// A bare hex digest with no '$' is accepted as a legacy unsalted hash.  Its
// algorithm is inferred from its length (32 → md5, 40 → sha1, 56 → sha224,
// 64 → sha256, 96 → sha384, 128 → sha512).  Length inference cannot tell a
// corrupted value from a genuine one of another algorithm; it is kept for
// compatibility with hashes already in storage.
//
// # Text encoding
//
// Plaintext, key and salt are Go strings and are hashed as their UTF-8
// bytes.  Callers holding text in another encoding must convert it first.
//
// # Cost
//
// Hashing is synchronous and CPU-bound; PBKDF2 with many iterations can take
// noticeable time.  Nothing in this package spawns goroutines or honours
// cancellation.  Callers that need a deadline should run the call in their
// own goroutine.
package hashing
