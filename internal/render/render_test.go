package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/roach88/pocketcalc/internal/calc"
)

func TestSeparator(t *testing.T) {
	assert.Equal(t, ".", New(language.English).Separator())
	assert.Equal(t, ",", New(language.German).Separator())
	assert.Equal(t, ",", New(language.French).Separator())
}

func TestDisplay(t *testing.T) {
	de := New(language.German)
	assert.Equal(t, "0,25", de.Display("0.25"))
	assert.Equal(t, "42", de.Display("42"))
	assert.Equal(t, "Error", de.Display("Error"))
	assert.Equal(t, "1,5e+20", de.Display("1.5e+20"))

	en := New(language.English)
	assert.Equal(t, "0.25", en.Display("0.25"))
}

func TestScreen(t *testing.T) {
	r := New(language.German)

	s := calc.Initial()
	s = calc.InputDigit(s, 5)
	s = calc.InputDot(s)
	s = calc.InputDigit(s, 5)
	assert.Equal(t, "5,5", r.Screen(s))

	s = calc.Percent(s)
	assert.Equal(t, "5,5 [5,5%]", r.Screen(s))
}

func TestParse(t *testing.T) {
	r, err := Parse("de-CH")
	require.NoError(t, err)
	assert.Equal(t, "de-CH", r.Tag().String())

	_, err = Parse("not a locale!")
	assert.Error(t, err)
}

func TestText(t *testing.T) {
	de := New(language.German)
	assert.Equal(t, "0,5 + 0,25 = 0,75", de.Text("0.5 + 0.25 = 0.75"))
	assert.Equal(t, "sqrt(9) = 3", de.Text("sqrt(9) = 3"))

	en := New(language.English)
	assert.Equal(t, "0.5 + 0.25 = 0.75", en.Text("0.5 + 0.25 = 0.75"))
}
