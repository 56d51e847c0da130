package strength

import "math"

// Entropy estimates the unpredictability of password in bits.  It is a
// heuristic, not information-theoretic entropy:
//
//   - the first byte of a class credits the class's full size to the
//     alphabet;
//   - each later byte of an already seen class credits 1 the first time
//     that byte value repeats;
//   - each change of class from the previous byte credits 1.
//
// The result is len(password) * log2(alphabet), rounded to two decimals.
// Bytes are counted, so a multi-byte character contributes once per byte.
func Entropy(password string) float64 {
	var (
		alphabet int
		seen     [numClasses]bool
		repeated [256]bool
		last     = Class(-1)
	)
	for i := 0; i < len(password); i++ {
		b := password[i]
		class := byteClass[b]
		switch {
		case !seen[class]:
			seen[class] = true
			alphabet += class.Size()
		case !repeated[b]:
			repeated[b] = true
			alphabet++
		}
		if class != last {
			alphabet++
			last = class
		}
	}
	bits := float64(len(password)) * math.Log2(float64(max(alphabet, 1)))
	return math.Round(bits*100) / 100
}
