package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := hashing.NewCrypt(opts)
//	if errors.Is(err, hashing.ErrUnsupportedAlgorithm) {
//	    // the configured digest name is not one of md5..sha512
//	}
var (
	// ErrUnsupportedAlgorithm is returned when a digest name is not one of
	// md5, sha1, sha224, sha256, sha384 or sha512.
	ErrUnsupportedAlgorithm = errors.New("hashing: unsupported digest algorithm")

	// ErrMalformedPBKDF2 is returned when a descriptor starting with "pbkdf2"
	// does not match pbkdf2(<iterations>,<keylen>,<digest>) or carries a
	// non-positive parameter.
	ErrMalformedPBKDF2 = errors.New("hashing: malformed pbkdf2 descriptor")

	// ErrMissingAlgorithm is returned when no algorithm descriptor is given.
	ErrMissingAlgorithm = errors.New("hashing: no algorithm descriptor")

	// ErrTooShort is returned by [Crypt.New] when the plaintext is empty or
	// shorter than the configured minimum length.  No hashing takes place.
	ErrTooShort = errors.New("hashing: password too short")

	// ErrTooLong is returned by [Crypt.New] when the plaintext exceeds the
	// configured maximum length.  No hashing takes place.
	ErrTooLong = errors.New("hashing: password too long")

	// ErrInvalidHash is returned when a stored hash string is neither in the
	// descriptor$salt$digest shape nor a legacy digest of a known length.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range.
	ErrInvalidOption = errors.New("hashing: invalid option value")
)
