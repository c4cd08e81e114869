package calc

import "strings"

// InputDigit handles a digit key. d must be in 0..9; other values are ignored.
func InputDigit(s State, d int) State {
	if s.Err {
		return Initial()
	}
	if d < 0 || d > 9 {
		return s
	}
	digit := string(rune('0' + d))
	if s.Overwrite || s.Display == "0" {
		s.Display = digit
		s.Overwrite = false
		s.Computed = false
		s.Percent = Staged{}
		return s
	}
	if s.Display == "-0" {
		s.Display = "-" + digit
		s.Percent = Staged{}
		return s
	}
	if len(s.Display) >= MaxDisplayLen {
		return s
	}
	s.Display += digit
	s.Percent = Staged{}
	return s
}

// InputDot handles the decimal point key.
func InputDot(s State) State {
	if s.Err {
		return Initial()
	}
	if s.Overwrite {
		s.Display = "0."
		s.Overwrite = false
		s.Computed = false
		s.Percent = Staged{}
		return s
	}
	if strings.Contains(s.Display, ".") || len(s.Display) >= MaxDisplayLen {
		return s
	}
	s.Display += "."
	s.Percent = Staged{}
	return s
}

// SetOperator stages op. When an operator is already pending and a second
// operand has been entered, the pending operation is evaluated first.
func SetOperator(s State, op Op) State {
	if s.Err {
		return Initial()
	}
	if s.Op != OpNone && (!s.Overwrite || s.Computed) {
		a, b := s.left(), s.resolved()
		result := Compute(a, b, s.Op)
		if !isFinite(result) {
			return errorState()
		}
		s.Display = FormatNumber(result)
		s.Prev = Some(result)
		s.LastOp = s.Op
		s.LastOperand = b
	} else {
		s.Prev = Some(s.resolved())
	}
	s.Op = op
	s.Overwrite = true
	s.Computed = false
	s.Percent = Staged{}
	return s
}

// ToggleSign flips the sign of the display. Zero has no sign. A display
// already at MaxDisplayLen cannot take a leading "-".
func ToggleSign(s State) State {
	if s.Err {
		return Initial()
	}
	if s.Display == "0" {
		return s
	}
	if strings.HasPrefix(s.Display, "-") {
		s.Display = s.Display[1:]
		return s
	}
	if len(s.Display) >= MaxDisplayLen {
		return s
	}
	s.Display = "-" + s.Display
	return s
}

// Backspace deletes the last typed character. Right after an operator or a
// result it cancels overwrite mode instead, leaving Prev untouched.
func Backspace(s State) State {
	if s.Err {
		return Initial()
	}
	s.Percent = Staged{}
	if s.Overwrite {
		s.Display = "0"
		s.Overwrite = false
		s.Computed = false
		return s
	}
	d := s.Display
	if len(d) <= 1 || (len(d) == 2 && d[0] == '-') {
		s.Display = "0"
		return s
	}
	s.Display = d[:len(d)-1]
	return s
}

// ClearAll returns the initial state.
func ClearAll() State {
	return Initial()
}

// Evaluate handles "=". See Preview for the cases it distinguishes.
func Evaluate(s State) State {
	if s.Err {
		return Initial()
	}
	p, ok := Preview(s)
	if !ok {
		return s
	}
	if !isFinite(p.Result) {
		return errorState()
	}

	next := s
	next.Display = FormatNumber(p.Result)
	next.Prev = Some(p.Result)
	next.Overwrite = true
	next.Computed = false
	next.Percent = Staged{}
	switch p.Kind {
	case KindBinary, KindPercentBinary:
		next.Op = OpNone
		next.LastOp = p.Op
		next.LastOperand = p.B
	}
	return next
}

// Percent stages the display as a percentage. With + or − pending the
// percentage is taken of the left operand ("add 10%"); with ×, ÷ or ^ pending,
// or nothing pending, it is literal (cur/100). The display text is left alone.
func Percent(s State) State {
	if s.Err {
		return Initial()
	}
	cur := s.Value()
	var value float64
	switch s.Op {
	case Add, Sub:
		value = s.left() * cur / 100
	default:
		value = cur / 100
	}
	if !isFinite(value) {
		return errorState()
	}
	s.Percent = Staged{Label: FormatNumber(cur) + "%", Value: value}
	return s
}
