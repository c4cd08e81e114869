package history

import (
	"fmt"

	"github.com/roach88/pocketcalc/internal/calc"
)

// Entry is one line of the history log.
type Entry struct {
	Seq        int64  `json:"seq"`
	SessionID  string `json:"session_id"`
	Kind       string `json:"kind"`
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// Text renders the entry as "<expression> = <result>".
func (e Entry) Text() string {
	return e.Expression + " = " + e.Result
}

// FromProjection phrases a projection. Seq and SessionID are left for the
// caller to fill in.
func FromProjection(p calc.Projection) Entry {
	return Entry{
		Kind:       p.Kind.String(),
		Expression: Expression(p),
		Result:     calc.FormatNumber(p.Result),
	}
}

// Expression renders the left-hand side of a history line.
func Expression(p calc.Projection) string {
	num := calc.FormatNumber
	switch p.Kind {
	case calc.KindBinary, calc.KindRepeat:
		return fmt.Sprintf("%s %s %s", num(p.A), p.Op, num(p.B))
	case calc.KindPercentBinary:
		return fmt.Sprintf("%s %s %s", num(p.A), p.Op, p.Label)
	case calc.KindPercent:
		return p.Label
	case calc.KindUnary:
		arg := num(p.A)
		if p.Func.Trig() && p.Angle == calc.Degrees {
			arg += "°"
		}
		return fmt.Sprintf("%s(%s)", p.Func, arg)
	default:
		return ""
	}
}
