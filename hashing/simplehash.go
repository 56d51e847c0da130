package hashing

// SimpleHash hashes text and returns the lowercase hex output, choosing the
// strategy from descriptor and key:
//
//  1. an empty descriptor fails with [ErrMissingAlgorithm];
//  2. a "pbkdf2(...)" descriptor runs PBKDF2 with salt as the PBKDF2 salt
//     (key is not used);
//  3. a non-empty key computes HMAC(key+salt, text) over the named digest;
//  4. otherwise the named digest is computed over text+salt.
//
// Inputs are Go strings and are hashed as their UTF-8 bytes.  The unkeyed,
// unsalted form matches what third-party systems produce for a plain hex
// digest:
//
//	SimpleHash("test", "", "", "sha1") // "a94a8fe5ccb19ba61c4c0873d391e987982fbbd3"
func SimpleHash(text, key, salt, descriptor string) (string, error) {
	alg, err := ParseAlgorithm(descriptor)
	if err != nil {
		return "", err
	}
	return alg.Keyed(key).Sum(text, key, salt), nil
}
