package calc

import "math"

// Func is a scientific unary function.
type Func int

// Unary functions.
const (
	FuncNone Func = iota
	Square
	Sqrt
	Reciprocal
	Exp
	Ln
	Log10
	Sin
	Cos
	Tan
)

var funcNames = map[Func]string{
	Square:     "sqr",
	Sqrt:       "sqrt",
	Reciprocal: "recip",
	Exp:        "exp",
	Ln:         "ln",
	Log10:      "log",
	Sin:        "sin",
	Cos:        "cos",
	Tan:        "tan",
}

func (f Func) String() string {
	return funcNames[f]
}

// Trig reports whether f takes an angle.
func (f Func) Trig() bool {
	return f == Sin || f == Cos || f == Tan
}

// AngleMode selects how trigonometric arguments are read.
type AngleMode int

// Angle modes. Degrees is the zero value.
const (
	Degrees AngleMode = iota
	Radians
)

func (m AngleMode) String() string {
	if m == Radians {
		return "rad"
	}
	return "deg"
}

// ParseAngleMode accepts "deg" or "rad".
func ParseAngleMode(s string) (AngleMode, bool) {
	switch s {
	case "deg":
		return Degrees, true
	case "rad":
		return Radians, true
	}
	return Degrees, false
}

// ApplyFunc evaluates fn at x. Domain errors surface as NaN or ±Inf.
func ApplyFunc(x float64, fn Func, mode AngleMode) float64 {
	if fn.Trig() && mode == Degrees {
		x = x * math.Pi / 180
	}
	switch fn {
	case Square:
		return x * x
	case Sqrt:
		return math.Sqrt(x)
	case Reciprocal:
		if x == 0 {
			return math.Inf(1)
		}
		return 1 / x
	case Exp:
		return math.Exp(x)
	case Ln:
		return math.Log(x)
	case Log10:
		return math.Log10(x)
	case Sin:
		return math.Sin(x)
	case Cos:
		return math.Cos(x)
	case Tan:
		return math.Tan(x)
	default:
		return math.NaN()
	}
}

// PreviewUnary reports what Unary would compute for s.
func PreviewUnary(s State, fn Func, mode AngleMode) (Projection, bool) {
	if s.Err || fn == FuncNone {
		return Projection{}, false
	}
	x := s.resolved()
	return Projection{
		Kind:   KindUnary,
		A:      x,
		Func:   fn,
		Angle:  mode,
		Result: ApplyFunc(x, fn, mode),
	}, true
}

// Unary applies fn to the current value. With no operator pending the result
// behaves like an evaluated result. With an operator pending it becomes the
// second operand: a following operator chains on it, and a digit, dot or
// backspace replaces it rather than editing the formatted text.
func Unary(s State, fn Func, mode AngleMode) State {
	if s.Err {
		return Initial()
	}
	p, ok := PreviewUnary(s, fn, mode)
	if !ok {
		return s
	}
	if !isFinite(p.Result) {
		return errorState()
	}
	s.Display = FormatNumber(p.Result)
	s.Percent = Staged{}
	s.Overwrite = true
	s.Computed = s.Op != OpNone
	if s.Op == OpNone {
		s.Prev = Some(p.Result)
	}
	return s
}
