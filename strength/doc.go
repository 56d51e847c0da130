// Package strength scores password strength with a character-class entropy
// estimate and a configurable rule set.
//
// Every byte of a password belongs to exactly one [Class]: lowercase,
// uppercase, digit, one of two symbol sets, or other.  [Entropy] turns the
// sequence of classes into a heuristic bit count; [Evaluate] checks length,
// per-class counts, special and invalid characters and an entropy floor, and
// reports every unmet rule at once rather than stopping at the first.
//
//	failures := strength.Evaluate("abc123", strength.DefaultRules())
//	for _, f := range failures {
//	    fmt.Println(f.Message) // "Must include at least 1 of the following: ..."
//	}
//
// A value made only of more than four '*' is an edit-form placeholder and
// passes every rule.
package strength
