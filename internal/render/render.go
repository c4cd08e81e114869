// Package render formats calculator state for a locale.
//
// Only the decimal separator is localized. Digits, grouping and exponent
// notation are shown exactly as the engine produced them.
package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/pocketcalc/internal/calc"
)

// Renderer renders display text for one locale.
type Renderer struct {
	tag       language.Tag
	separator string
}

// New creates a Renderer for tag.
func New(tag language.Tag) *Renderer {
	return &Renderer{tag: tag, separator: decimalSeparator(tag)}
}

// Parse creates a Renderer from a BCP 47 locale string.
func Parse(locale string) (*Renderer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	return New(tag), nil
}

// Tag returns the renderer's locale.
func (r *Renderer) Tag() language.Tag {
	return r.tag
}

// Separator returns the locale's decimal separator.
func (r *Renderer) Separator() string {
	return r.separator
}

// Display localizes the decimal point of display text.
func (r *Renderer) Display(text string) string {
	if r.separator == "." {
		return text
	}
	return strings.Replace(text, ".", r.separator, 1)
}

// Text localizes every decimal point in a line such as a history entry.
func (r *Renderer) Text(line string) string {
	if r.separator == "." {
		return line
	}
	return strings.ReplaceAll(line, ".", r.separator)
}

// Screen renders what the calculator shows for s: the display, followed by
// the staged percent label when one is waiting.
func (r *Renderer) Screen(s calc.State) string {
	out := r.Display(s.Display)
	if s.Percent.Active() {
		out += " [" + r.Display(s.Percent.Label) + "]"
	}
	return out
}

// decimalSeparator asks the locale's number formatting how it writes 1.5
// and returns whatever sits between the digits.
func decimalSeparator(tag language.Tag) string {
	p := message.NewPrinter(tag)
	formatted := []rune(p.Sprintf("%.1f", 1.5))
	start, end := -1, -1
	for i, r := range formatted {
		if unicode.IsDigit(r) {
			continue
		}
		if start < 0 {
			start = i
		}
		end = i + 1
	}
	if start < 0 {
		return "."
	}
	return string(formatted[start:end])
}
