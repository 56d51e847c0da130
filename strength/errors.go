package strength

import (
	"errors"
	"strings"
)

// ErrRuleFailure is matched by every [*RuleError]:
//
//	if errors.Is(err, strength.ErrRuleFailure) {
//	    var re *strength.RuleError
//	    errors.As(err, &re) // re.Failures lists every unmet rule
//	}
var ErrRuleFailure = errors.New("strength: password does not meet requirements")

// RuleError carries all the rules a password failed, not just the first.
type RuleError struct {
	Failures []Failure
}

func (e *RuleError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Message
	}
	return ErrRuleFailure.Error() + ": " + strings.Join(msgs, ", ")
}

// Is reports whether target is [ErrRuleFailure].
func (e *RuleError) Is(target error) bool { return target == ErrRuleFailure }
