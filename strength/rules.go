package strength

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultSpecials is the default set of characters counted as special.
	DefaultSpecials = "~!@#$%^&*()_+-=?<>,.:;{}[]|"

	// DefaultInvalid is the default set of characters a password may never
	// contain.
	DefaultInvalid = ` "`

	// placeholderMin is the number of '*' a password must exceed to be
	// treated as an unchanged edit-form placeholder.
	placeholderMin = 4
)

// Count is an optional per-class requirement.  The zero value disables the
// rule; [Require] demands at least n occurrences and [Forbid] demands none.
type Count struct {
	n   int
	set bool
}

// Require returns a Count demanding at least n occurrences.  Require(0) is
// the same as [Forbid]; a negative n disables the rule.
func Require(n int) Count {
	if n < 0 {
		return Count{}
	}
	return Count{n: n, set: true}
}

// Forbid returns a Count that fails on any occurrence.
func Forbid() Count { return Count{set: true} }

// IsSet reports whether the rule is enabled.
func (c Count) IsSet() bool { return c.set }

// N returns the required minimum; 0 for a forbidding rule.
func (c Count) N() int { return c.n }

// Rules configures [Evaluate].  Every rule is independent and optional.
type Rules struct {
	// MinLength and MaxLength bound the length in characters; 0 disables
	// the bound.
	MinLength int
	MaxLength int

	// Upper, Lower and Digits count ASCII letters and digits.
	Upper  Count
	Lower  Count
	Digits Count

	// Special counts how many distinct characters of Specials appear.
	Special  Count
	Specials string

	// Invalid lists characters that always fail the password, whatever the
	// other rules say.
	Invalid string

	// MinEntropy is the lowest acceptable [Entropy]; 0 disables the check.
	MinEntropy float64
}

// DefaultRules requires at least 8 characters with one uppercase letter,
// one lowercase letter, one digit and one special character.
func DefaultRules() Rules {
	return Rules{
		MinLength: 8,
		Upper:     Require(1),
		Lower:     Require(1),
		Digits:    Require(1),
		Special:   Require(1),
		Specials:  DefaultSpecials,
		Invalid:   DefaultInvalid,
	}
}

// EntropyRules only checks the entropy floor (and the invalid characters).
func EntropyRules(floor float64) Rules {
	return Rules{
		Specials:   DefaultSpecials,
		Invalid:    DefaultInvalid,
		MinEntropy: floor,
	}
}

// RuleName identifies the rule behind a [Failure].
type RuleName string

const (
	RuleEntropy   RuleName = "entropy"
	RuleMinLength RuleName = "min_length"
	RuleMaxLength RuleName = "max_length"
	RuleSpecial   RuleName = "special"
	RuleInvalid   RuleName = "invalid"
	RuleUpper     RuleName = "upper"
	RuleLower     RuleName = "lower"
	RuleDigits    RuleName = "digits"
)

// Failure is a single unmet rule.
type Failure struct {
	Rule    RuleName
	Message string
}

func (f Failure) String() string { return f.Message }

// Unchanged reports whether password is an edit-form placeholder: more than
// four characters, all of them '*'.
func Unchanged(password string) bool {
	return len(password) > placeholderMin && strings.Count(password, "*") == len(password)
}

// Evaluate checks password against rules and returns every failing rule, in
// the order entropy, min length, max length, special, invalid, upper, lower,
// digits.  It returns nil when the password passes or is a placeholder
// (see [Unchanged]).
func Evaluate(password string, rules Rules) []Failure {
	if Unchanged(password) {
		return nil
	}

	var failures []Failure
	fail := func(rule RuleName, format string, args ...any) {
		failures = append(failures, Failure{Rule: rule, Message: fmt.Sprintf(format, args...)})
	}

	if rules.MinEntropy > 0 {
		if have := Entropy(password); have < rules.MinEntropy {
			fail(RuleEntropy, "Password too simple (%s/%s)", formatScore(have), formatBits(rules.MinEntropy))
		}
	}

	length := utf8.RuneCountInString(password)
	if rules.MinLength > 0 && length < rules.MinLength {
		fail(RuleMinLength, "Minimum length is %d", rules.MinLength)
	}
	if rules.MaxLength > 0 && length > rules.MaxLength {
		fail(RuleMaxLength, "Maximum length is %d", rules.MaxLength)
	}

	if rules.Special.IsSet() {
		n := distinctPresent(password, rules.Specials)
		switch {
		case rules.Special.N() > 0 && n < rules.Special.N():
			fail(RuleSpecial, "Must include at least %d of the following: %s", rules.Special.N(), rules.Specials)
		case rules.Special.N() == 0 && n > 0:
			fail(RuleSpecial, "May not contain any of the following: %s", rules.Specials)
		}
	}
	if rules.Invalid != "" && distinctPresent(password, rules.Invalid) > 0 {
		fail(RuleInvalid, "May not contain any of the following: %s", rules.Invalid)
	}

	counts := Classify(password)
	checkCount(counts.Get(Upper), rules.Upper, func(n int) {
		fail(RuleUpper, "Must include at least %d uppercase", n)
	}, func() {
		fail(RuleUpper, "May not include any uppercase letters")
	})
	checkCount(counts.Get(Lower), rules.Lower, func(n int) {
		fail(RuleLower, "Must include at least %d lowercase", n)
	}, func() {
		fail(RuleLower, "May not include any lowercase letters")
	})
	checkCount(counts.Get(Digit), rules.Digits, func(n int) {
		noun := "number"
		if n > 1 {
			noun = "numbers"
		}
		fail(RuleDigits, "Must include at least %d %s", n, noun)
	}, func() {
		fail(RuleDigits, "May not include any numbers")
	})

	return failures
}

// Check is [Evaluate] returning a [*RuleError] when any rule fails.
func Check(password string, rules Rules) error {
	if failures := Evaluate(password, rules); len(failures) > 0 {
		return &RuleError{Failures: failures}
	}
	return nil
}

func checkCount(have int, c Count, tooFew func(n int), forbidden func()) {
	switch {
	case !c.IsSet():
	case c.N() > 0 && have < c.N():
		tooFew(c.N())
	case c.N() == 0 && have > 0:
		forbidden()
	}
}

// distinctPresent counts the characters of set that occur in s.
func distinctPresent(s, set string) int {
	n := 0
	for _, r := range set {
		if strings.ContainsRune(s, r) {
			n++
		}
	}
	return n
}

func formatBits(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatScore renders a measured entropy with at least one decimal, so a
// whole score reads "14.0".
func formatScore(v float64) string {
	s := formatBits(v)
	if !strings.ContainsAny(s, ".eEN") {
		s += ".0"
	}
	return s
}
