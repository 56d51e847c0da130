package strength

import "fmt"

// Class is one of six mutually exclusive byte classes.
type Class int

const (
	Lower Class = iota
	Upper
	Digit
	Symbol1
	Symbol2
	Other

	numClasses = int(Other) + 1
)

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	symbol1Chars = "!@#$%^&*() "
	symbol2Chars = "~`-_=+[]{}\\|;:'\",.<>?/"
)

// otherSize is the number of distinct bytes in the UTF-8 encodings of code
// points U+0000 to U+00FF: the 128 ASCII bytes, the lead bytes 0xC2 and 0xC3,
// and the 64 continuation bytes.  Scores computed by earlier releases depend
// on this value, so it is not the size of the Other partition (160).
const otherSize = 194

// classSizes is the alphabet size credited the first time a class is seen.
var classSizes = [numClasses]int{
	Lower:   len(lowerChars),
	Upper:   len(upperChars),
	Digit:   len(digitChars),
	Symbol1: len(symbol1Chars),
	Symbol2: len(symbol2Chars),
	Other:   otherSize,
}

var byteClass = buildClassTable()

// buildClassTable assigns every byte to the first class containing it, in
// the order Lower, Upper, Digit, Symbol1, Symbol2, Other.
func buildClassTable() [256]Class {
	var (
		table    [256]Class
		assigned [256]bool
	)
	for _, set := range []struct {
		class Class
		chars string
	}{
		{Lower, lowerChars},
		{Upper, upperChars},
		{Digit, digitChars},
		{Symbol1, symbol1Chars},
		{Symbol2, symbol2Chars},
	} {
		for i := 0; i < len(set.chars); i++ {
			b := set.chars[i]
			if !assigned[b] {
				table[b], assigned[b] = set.class, true
			}
		}
	}
	for b := range table {
		if !assigned[b] {
			table[b], assigned[b] = Other, true
		}
	}
	for b, ok := range assigned {
		if !ok {
			panic(fmt.Sprintf("strength: byte %#x matches no class", b))
		}
	}
	return table
}

func (c Class) String() string {
	switch c {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	case Digit:
		return "digit"
	case Symbol1:
		return "symbol1"
	case Symbol2:
		return "symbol2"
	case Other:
		return "other"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Size returns the number of bytes credited to the alphabet when c first
// appears in a password.
func (c Class) Size() int { return classSizes[c] }

// ClassOf returns the class of b.
func ClassOf(b byte) Class { return byteClass[b] }

// ClassCounts holds the number of bytes of a password in each class.
type ClassCounts [numClasses]int

// Classify counts the bytes of password per class.  Multi-byte UTF-8
// sequences count one Other per byte.
func Classify(password string) ClassCounts {
	var counts ClassCounts
	for i := 0; i < len(password); i++ {
		counts[byteClass[password[i]]]++
	}
	return counts
}

// Get returns the count for class c.
func (cc ClassCounts) Get(c Class) int { return cc[c] }
