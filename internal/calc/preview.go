package calc

// Kind discriminates the computations Preview can report.
type Kind int

// Projection kinds.
const (
	KindBinary        Kind = iota + 1 // a op b
	KindPercentBinary                 // a op <staged percent>
	KindPercent                       // <staged percent> on its own
	KindRepeat                        // repeat of the last completed operation
	KindUnary                         // fn(x), see PreviewUnary
)

func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindPercentBinary:
		return "percent_binary"
	case KindPercent:
		return "percent"
	case KindRepeat:
		return "repeat"
	case KindUnary:
		return "unary"
	default:
		return "none"
	}
}

// Projection is a read-only view of the computation a key would commit.
// Result may be non-finite; callers render it with FormatNumber.
type Projection struct {
	Kind   Kind
	A      float64
	B      float64
	Op     Op
	Label  string // staged percent label for KindPercentBinary and KindPercent
	Func   Func   // KindUnary only
	Angle  AngleMode
	Result float64
}

// Preview reports what Evaluate would compute for s. It returns false when
// Evaluate would leave s unchanged or s is in error.
func Preview(s State) (Projection, bool) {
	if s.Err {
		return Projection{}, false
	}
	switch {
	case s.Op != OpNone && s.Percent.Active():
		a, b := s.left(), s.Percent.Value
		return Projection{
			Kind:   KindPercentBinary,
			A:      a,
			B:      b,
			Op:     s.Op,
			Label:  s.Percent.Label,
			Result: Compute(a, b, s.Op),
		}, true
	case s.Percent.Active():
		return Projection{
			Kind:   KindPercent,
			B:      s.Percent.Value,
			Label:  s.Percent.Label,
			Result: s.Percent.Value,
		}, true
	case s.Op != OpNone:
		a, b := s.left(), s.Value()
		return Projection{
			Kind:   KindBinary,
			A:      a,
			B:      b,
			Op:     s.Op,
			Result: Compute(a, b, s.Op),
		}, true
	case s.LastOp != OpNone:
		a := s.Value()
		return Projection{
			Kind:   KindRepeat,
			A:      a,
			B:      s.LastOperand,
			Op:     s.LastOp,
			Result: Compute(a, s.LastOperand, s.LastOp),
		}, true
	}
	return Projection{}, false
}
