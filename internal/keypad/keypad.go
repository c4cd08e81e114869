// Package keypad maps key tokens onto calculator transitions.
//
// Tokens are normalized (NFKC, lower case) before lookup, so "×", "x²" and
// "SQRT" resolve the same way as their ASCII spellings.
package keypad

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/pocketcalc/internal/calc"
)

// ErrUnknownKey is returned by Parse for tokens that name no key.
var ErrUnknownKey = errors.New("unknown key")

// Kind identifies a key's role.
type Kind int

// Key kinds.
const (
	KindDigit Kind = iota + 1
	KindDot
	KindOperator
	KindEquals
	KindPercent
	KindSign
	KindBackspace
	KindClear
	KindFunc
	KindAngle
)

// Key is a single key press.
type Key struct {
	Kind  Kind
	Digit int
	Op    calc.Op
	Func  calc.Func
	Angle calc.AngleMode
}

// Digit returns the key for digit d.
func Digit(d int) Key { return Key{Kind: KindDigit, Digit: d} }

// Operator returns the key for op.
func Operator(op calc.Op) Key { return Key{Kind: KindOperator, Op: op} }

// Function returns the key for fn.
func Function(fn calc.Func) Key { return Key{Kind: KindFunc, Func: fn} }

// Common keys.
var (
	Dot       = Key{Kind: KindDot}
	Equals    = Key{Kind: KindEquals}
	Percent   = Key{Kind: KindPercent}
	Sign      = Key{Kind: KindSign}
	Backspace = Key{Kind: KindBackspace}
	Clear     = Key{Kind: KindClear}
)

var opTokens = map[calc.Op]string{
	calc.Add: "+",
	calc.Sub: "-",
	calc.Mul: "*",
	calc.Div: "/",
	calc.Pow: "^",
}

// String returns the canonical token for k. Parse(k.String()) == k.
func (k Key) String() string {
	switch k.Kind {
	case KindDigit:
		return string(rune('0' + k.Digit))
	case KindDot:
		return "."
	case KindOperator:
		return opTokens[k.Op]
	case KindEquals:
		return "="
	case KindPercent:
		return "%"
	case KindSign:
		return "neg"
	case KindBackspace:
		return "bs"
	case KindClear:
		return "c"
	case KindFunc:
		return k.Func.String()
	case KindAngle:
		return k.Angle.String()
	default:
		return "?"
	}
}

var aliases = map[string]Key{
	".":     Dot,
	",":     Dot,
	"+":     Operator(calc.Add),
	"-":     Operator(calc.Sub),
	"−":     Operator(calc.Sub),
	"*":     Operator(calc.Mul),
	"×":     Operator(calc.Mul),
	"/":     Operator(calc.Div),
	"÷":     Operator(calc.Div),
	"^":     Operator(calc.Pow),
	"=":     Equals,
	"enter": Equals,
	"%":     Percent,
	"neg":   Sign,
	"±":     Sign,
	"+/-":   Sign,
	"bs":    Backspace,
	"back":  Backspace,
	"⌫":     Backspace,
	"c":     Clear,
	"ac":    Clear,
	"clear": Clear,
	"sqr":   Function(calc.Square),
	"x2":    Function(calc.Square),
	"sqrt":  Function(calc.Sqrt),
	"√":     Function(calc.Sqrt),
	"recip": Function(calc.Reciprocal),
	"inv":   Function(calc.Reciprocal),
	"1/x":   Function(calc.Reciprocal),
	"exp":   Function(calc.Exp),
	"ln":    Function(calc.Ln),
	"log":   Function(calc.Log10),
	"sin":   Function(calc.Sin),
	"cos":   Function(calc.Cos),
	"tan":   Function(calc.Tan),
	"deg":   {Kind: KindAngle, Angle: calc.Degrees},
	"rad":   {Kind: KindAngle, Angle: calc.Radians},
}

// Parse resolves a single token.
func Parse(token string) (Key, error) {
	t := strings.ToLower(norm.NFKC.String(strings.TrimSpace(token)))
	if len(t) == 1 && t[0] >= '0' && t[0] <= '9' {
		return Digit(int(t[0] - '0')), nil
	}
	if k, ok := aliases[t]; ok {
		return k, nil
	}
	return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, token)
}

// ParseLine resolves whitespace-separated tokens.
func ParseLine(line string) ([]Key, error) {
	fields := strings.Fields(line)
	keys := make([]Key, 0, len(fields))
	for _, f := range fields {
		k, err := Parse(f)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Apply dispatches k onto s. Angle keys leave the state unchanged; the
// caller owns the angle mode.
func Apply(s calc.State, k Key, mode calc.AngleMode) calc.State {
	switch k.Kind {
	case KindDigit:
		return calc.InputDigit(s, k.Digit)
	case KindDot:
		return calc.InputDot(s)
	case KindOperator:
		return calc.SetOperator(s, k.Op)
	case KindEquals:
		return calc.Evaluate(s)
	case KindPercent:
		return calc.Percent(s)
	case KindSign:
		return calc.ToggleSign(s)
	case KindBackspace:
		return calc.Backspace(s)
	case KindClear:
		return calc.ClearAll()
	case KindFunc:
		return calc.Unary(s, k.Func, mode)
	default:
		return s
	}
}

// Preview reports the history-worthy computation k would commit on s, if any.
func Preview(s calc.State, k Key, mode calc.AngleMode) (calc.Projection, bool) {
	switch k.Kind {
	case KindEquals:
		return calc.Preview(s)
	case KindFunc:
		return calc.PreviewUnary(s, k.Func, mode)
	}
	return calc.Projection{}, false
}
