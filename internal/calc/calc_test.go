package calc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typeDigits enters each digit of ds.
func typeDigits(s State, ds string) State {
	for _, r := range ds {
		if r == '.' {
			s = InputDot(s)
			continue
		}
		s = InputDigit(s, int(r-'0'))
	}
	return s
}

func divideByZero() State {
	s := typeDigits(Initial(), "8")
	s = SetOperator(s, Div)
	s = InputDigit(s, 0)
	return Evaluate(s)
}

func TestInitial(t *testing.T) {
	s := Initial()
	assert.Equal(t, "0", s.Display)
	assert.False(t, s.Prev.Valid)
	assert.Equal(t, OpNone, s.Op)
	assert.False(t, s.Err)
	assert.Equal(t, Entering, s.Mode())
	assert.Equal(t, Initial(), ClearAll())
}

func TestInputDigit_ReplacesLeadingZero(t *testing.T) {
	s := typeDigits(Initial(), "005")
	assert.Equal(t, "5", s.Display)
}

func TestInputDigit_Appends(t *testing.T) {
	s := typeDigits(Initial(), "1234")
	assert.Equal(t, "1234", s.Display)
}

func TestInputDigit_MaxLength(t *testing.T) {
	s := typeDigits(Initial(), strings.Repeat("1", 20))
	assert.Len(t, s.Display, MaxDisplayLen)

	before := s
	after := InputDigit(s, 9)
	assert.Equal(t, before, after, "digit beyond the limit is a no-op")
}

func TestInputDigit_OutOfRangeIgnored(t *testing.T) {
	s := typeDigits(Initial(), "3")
	assert.Equal(t, s, InputDigit(s, 10))
	assert.Equal(t, s, InputDigit(s, -1))
}

func TestInputDot(t *testing.T) {
	t.Run("appends once", func(t *testing.T) {
		s := InputDot(Initial())
		assert.Equal(t, "0.", s.Display)
		s = InputDot(s)
		assert.Equal(t, "0.", s.Display)
		s = typeDigits(s, "5")
		assert.Equal(t, "0.5", s.Display)
	})

	t.Run("starts fresh in overwrite mode", func(t *testing.T) {
		s := typeDigits(Initial(), "12")
		s = SetOperator(s, Add)
		s = InputDot(s)
		assert.Equal(t, "0.", s.Display)
		assert.False(t, s.Overwrite)
	})
}

func TestSetOperator_StagesPrev(t *testing.T) {
	s := typeDigits(Initial(), "7")
	s = SetOperator(s, Add)

	assert.Equal(t, "7", s.Display)
	assert.Equal(t, Some(7), s.Prev)
	assert.Equal(t, Add, s.Op)
	assert.True(t, s.Overwrite)
	assert.Equal(t, OperatorPending, s.Mode())
}

func TestSetOperator_Chaining(t *testing.T) {
	s := typeDigits(Initial(), "7")
	s = SetOperator(s, Add)
	s = typeDigits(s, "3")
	s = SetOperator(s, Mul)

	assert.Equal(t, "10", s.Display)
	assert.Equal(t, Some(10), s.Prev)
	assert.Equal(t, Mul, s.Op)
	assert.True(t, s.Overwrite)
	assert.Equal(t, Add, s.LastOp)
	assert.Equal(t, 3.0, s.LastOperand)

	s = typeDigits(s, "2")
	s = Evaluate(s)
	assert.Equal(t, "20", s.Display)
}

func TestSetOperator_SwitchBeforeSecondOperand(t *testing.T) {
	s := typeDigits(Initial(), "7")
	s = SetOperator(s, Add)
	s = SetOperator(s, Mul)

	assert.Equal(t, "7", s.Display)
	assert.Equal(t, Some(7), s.Prev)
	assert.Equal(t, Mul, s.Op)
	assert.Equal(t, OpNone, s.LastOp, "switching operators computes nothing")

	s = typeDigits(s, "2")
	s = Evaluate(s)
	assert.Equal(t, "14", s.Display)
}

func TestSetOperator_ChainWithStagedPercent(t *testing.T) {
	s := typeDigits(Initial(), "200")
	s = SetOperator(s, Add)
	s = typeDigits(s, "10")
	s = Percent(s)
	s = SetOperator(s, Mul)

	assert.Equal(t, "220", s.Display)
	assert.Equal(t, Some(220), s.Prev)
	assert.Equal(t, Mul, s.Op)
	assert.False(t, s.Percent.Active())
	assert.Equal(t, 20.0, s.LastOperand)
}

func TestSetOperator_ChainToError(t *testing.T) {
	s := typeDigits(Initial(), "5")
	s = SetOperator(s, Div)
	s = typeDigits(s, "0")
	s = SetOperator(s, Add)

	assert.True(t, s.Err)
	assert.Equal(t, "Error", s.Display)
	assert.False(t, s.Prev.Valid)
	assert.Equal(t, OpNone, s.LastOp)
}

func TestToggleSign(t *testing.T) {
	assert.Equal(t, Initial(), ToggleSign(Initial()), "zero has no sign")

	s := typeDigits(Initial(), "5")
	s = ToggleSign(s)
	assert.Equal(t, "-5", s.Display)
	assert.Equal(t, -5.0, s.Value())
	s = ToggleSign(s)
	assert.Equal(t, "5", s.Display)
}

func TestInputDigit_NegativeZero(t *testing.T) {
	s := InputDot(Initial())
	s = ToggleSign(s)
	require.Equal(t, "-0.", s.Display)
	s = Backspace(s)
	require.Equal(t, "-0", s.Display)

	s = InputDigit(s, 5)
	assert.Equal(t, "-5", s.Display)
	assert.Equal(t, -5.0, s.Value())

	assert.Equal(t, "-0", InputDigit(Backspace(ToggleSign(InputDot(Initial()))), 0).Display)
}

func TestToggleSign_FullDisplay(t *testing.T) {
	s := typeDigits(Initial(), strings.Repeat("9", MaxDisplayLen))
	assert.Equal(t, s, ToggleSign(s))
}

func TestBackspace(t *testing.T) {
	cases := []struct {
		name    string
		display string
		want    string
	}{
		{"drops last digit", "123", "12"},
		{"single digit", "7", "0"},
		{"negative single digit", "-7", "0"},
		{"drops point", "4.", "4"},
		{"zero stays zero", "0", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Initial()
			s.Display = tc.display
			assert.Equal(t, tc.want, Backspace(s).Display)
		})
	}
}

func TestBackspace_OverwriteCancels(t *testing.T) {
	s := typeDigits(Initial(), "12")
	s = SetOperator(s, Add)
	s = Backspace(s)

	assert.Equal(t, "0", s.Display)
	assert.False(t, s.Overwrite)
	assert.Equal(t, Some(12), s.Prev, "committed operand is kept")
	assert.Equal(t, Add, s.Op)
}

func TestEvaluate_Binary(t *testing.T) {
	cases := []struct {
		a, b string
		op   Op
		want string
	}{
		{"5", "2", Add, "7"},
		{"5", "2", Sub, "3"},
		{"6", "7", Mul, "42"},
		{"1", "4", Div, "0.25"},
		{"2", "10", Pow, "1024"},
		{"0.1", "0.2", Add, "0.3"},
	}
	for _, tc := range cases {
		t.Run(tc.a+tc.op.String()+tc.b, func(t *testing.T) {
			s := typeDigits(Initial(), tc.a)
			s = SetOperator(s, tc.op)
			s = typeDigits(s, tc.b)
			s = Evaluate(s)
			assert.Equal(t, tc.want, s.Display)
			assert.Equal(t, OpNone, s.Op)
			assert.True(t, s.Overwrite)
			assert.Equal(t, tc.op, s.LastOp)
		})
	}
}

func TestEvaluate_RepeatEquals(t *testing.T) {
	s := typeDigits(Initial(), "5")
	s = SetOperator(s, Add)
	s = typeDigits(s, "2")

	s = Evaluate(s)
	assert.Equal(t, "7", s.Display)

	s = Evaluate(s)
	assert.Equal(t, "9", s.Display)

	s = Evaluate(s)
	assert.Equal(t, "11", s.Display)
}

func TestEvaluate_RepeatUsesNewDisplay(t *testing.T) {
	s := typeDigits(Initial(), "5")
	s = SetOperator(s, Mul)
	s = typeDigits(s, "3")
	s = Evaluate(s)
	require.Equal(t, "15", s.Display)

	s = typeDigits(s, "4")
	s = Evaluate(s)
	assert.Equal(t, "12", s.Display)
}

func TestEvaluate_SecondOperandDefaultsToDisplay(t *testing.T) {
	s := typeDigits(Initial(), "7")
	s = SetOperator(s, Add)
	s = Evaluate(s)
	assert.Equal(t, "14", s.Display)
}

func TestEvaluate_NoOp(t *testing.T) {
	assert.Equal(t, Initial(), Evaluate(Initial()))

	s := typeDigits(Initial(), "42")
	assert.Equal(t, s, Evaluate(s))
}

func TestEvaluate_DivideByZero(t *testing.T) {
	s := divideByZero()

	assert.True(t, s.Err)
	assert.Equal(t, "Error", s.Display)
	assert.Equal(t, Error, s.Mode())
	assert.False(t, s.Prev.Valid)
	assert.Equal(t, OpNone, s.LastOp)
	assert.Equal(t, 0.0, s.LastOperand)
}

func TestPercent_WithAdd(t *testing.T) {
	s := typeDigits(Initial(), "200")
	s = SetOperator(s, Add)
	s = typeDigits(s, "10")
	s = Percent(s)

	assert.Equal(t, "10", s.Display, "display text is unchanged")
	assert.Equal(t, "10%", s.Percent.Label)
	assert.Equal(t, 20.0, s.Percent.Value)
	assert.Equal(t, PercentStaged, s.Mode())

	s = Evaluate(s)
	assert.Equal(t, "220", s.Display)
	assert.False(t, s.Percent.Active())
	assert.Equal(t, Add, s.LastOp)
	assert.Equal(t, 20.0, s.LastOperand)
}

func TestPercent_WithSubtract(t *testing.T) {
	s := typeDigits(Initial(), "200")
	s = SetOperator(s, Sub)
	s = typeDigits(s, "10")
	s = Evaluate(Percent(s))
	assert.Equal(t, "180", s.Display)
}

func TestPercent_WithMultiply(t *testing.T) {
	s := typeDigits(Initial(), "200")
	s = SetOperator(s, Mul)
	s = typeDigits(s, "10")
	s = Percent(s)

	assert.Equal(t, 0.1, s.Percent.Value)

	s = Evaluate(s)
	assert.Equal(t, "20", s.Display)
}

func TestPercent_WithDivide(t *testing.T) {
	s := typeDigits(Initial(), "45")
	s = SetOperator(s, Div)
	s = typeDigits(s, "90")
	s = Evaluate(Percent(s))
	assert.Equal(t, "50", s.Display)
}

func TestPercent_Standalone(t *testing.T) {
	s := typeDigits(Initial(), "50")
	s = Percent(s)
	assert.Equal(t, "50%", s.Percent.Label)
	assert.Equal(t, 0.5, s.Percent.Value)

	s = Evaluate(s)
	assert.Equal(t, "0.5", s.Display)
	assert.True(t, s.Overwrite)
	assert.False(t, s.Percent.Active())
}

func TestPercent_ClearedByDigit(t *testing.T) {
	s := typeDigits(Initial(), "50")
	s = Percent(s)
	s = typeDigits(s, "1")
	assert.False(t, s.Percent.Active())
	assert.Equal(t, "501", s.Display)
}

func TestPercent_RepeatAfterEvaluate(t *testing.T) {
	s := typeDigits(Initial(), "200")
	s = SetOperator(s, Add)
	s = typeDigits(s, "10")
	s = Evaluate(Percent(s))
	require.Equal(t, "220", s.Display)

	s = Evaluate(s)
	assert.Equal(t, "240", s.Display)
}

func TestPercent_StagedThenOperatorWithoutOperand(t *testing.T) {
	s := typeDigits(Initial(), "50")
	s = Percent(s)
	s = SetOperator(s, Add)

	assert.Equal(t, Some(0.5), s.Prev)
	assert.Equal(t, Add, s.Op)
	assert.False(t, s.Percent.Active())
}

func TestErrorResetsOnInput(t *testing.T) {
	inputs := map[string]func(State) State{
		"digit":    func(s State) State { return InputDigit(s, 3) },
		"dot":      InputDot,
		"operator": func(s State) State { return SetOperator(s, Add) },
		"percent":  Percent,
		"sign":     ToggleSign,
		"back":     Backspace,
		"evaluate": Evaluate,
		"unary":    func(s State) State { return Unary(s, Sqrt, Degrees) },
	}
	for name, fn := range inputs {
		t.Run(name, func(t *testing.T) {
			s := divideByZero()
			require.True(t, s.Err)
			assert.Equal(t, Initial(), fn(s))
		})
	}
}

func TestTransitionsDoNotAlias(t *testing.T) {
	s := typeDigits(Initial(), "12")
	next := SetOperator(s, Add)
	assert.Equal(t, OpNone, s.Op)
	assert.Equal(t, "12", s.Display)
	assert.Equal(t, Add, next.Op)
}
