package calc

import "strconv"

// MaxDisplayLen is the maximum number of characters digit entry may produce.
const MaxDisplayLen = 16

// Op is a binary operator. The zero value means no operator.
type Op int

// Binary operators.
const (
	OpNone Op = iota
	Add
	Sub
	Mul
	Div
	Pow
)

// String returns the symbol shown to users.
func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "−"
	case Mul:
		return "×"
	case Div:
		return "÷"
	case Pow:
		return "^"
	default:
		return ""
	}
}

// Operand is an optional numeric operand.
type Operand struct {
	Value float64
	Valid bool
}

// Some returns a present operand.
func Some(v float64) Operand {
	return Operand{Value: v, Valid: true}
}

// Staged is a percent value waiting to be used as the right operand.
// Label is what the user sees (e.g. "90%"), Value is the number it stands for.
// A Staged with an empty Label is absent.
type Staged struct {
	Label string
	Value float64
}

// Active reports whether a percent is staged.
func (p Staged) Active() bool {
	return p.Label != ""
}

// Mode is the interpretation mode derived from a State.
type Mode int

// Modes, see package documentation.
const (
	Entering Mode = iota
	OperatorPending
	PercentStaged
	Error
)

func (m Mode) String() string {
	switch m {
	case OperatorPending:
		return "operator_pending"
	case PercentStaged:
		return "percent_staged"
	case Error:
		return "error"
	default:
		return "entering"
	}
}

// State is the complete calculator state. It holds no references, so copies
// are independent and transitions can never alias one another.
type State struct {
	Display   string
	Prev      Operand
	Op        Op
	Overwrite bool

	// Computed marks a function result standing in as the second operand.
	// It chains like a typed operand, but the next edit replaces it.
	Computed bool

	// LastOp and LastOperand are the most recently completed operation,
	// repeated when "=" is pressed with no operator pending.
	LastOp      Op
	LastOperand float64

	Err     bool
	Percent Staged
}

// Initial returns the power-on state.
func Initial() State {
	return State{Display: "0"}
}

// Mode reports which mode the state is in.
func (s State) Mode() Mode {
	switch {
	case s.Err:
		return Error
	case s.Percent.Active():
		return PercentStaged
	case s.Op != OpNone:
		return OperatorPending
	default:
		return Entering
	}
}

// Value parses the display. Unparseable text reads as 0.
func (s State) Value() float64 {
	v, err := strconv.ParseFloat(s.Display, 64)
	if err != nil {
		return 0
	}
	return v
}

// resolved is the current right-hand value: the staged percent if any,
// otherwise the display.
func (s State) resolved() float64 {
	if s.Percent.Active() {
		return s.Percent.Value
	}
	return s.Value()
}

// left is the pending left operand: Prev if present, otherwise the display.
func (s State) left() float64 {
	if s.Prev.Valid {
		return s.Prev.Value
	}
	return s.Value()
}

func errorState() State {
	return State{Display: "Error", Err: true}
}
