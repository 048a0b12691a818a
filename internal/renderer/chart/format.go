package chart

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter prints axis labels with locale digit grouping.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter for the given BCP 47 locale tag.
// Unknown tags fall back to English.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Format prints v with prec fraction digits.
func (f *Formatter) Format(v float64, prec int) string {
	if prec <= 0 {
		return f.printer.Sprintf("%d", int64(math.Round(v)))
	}
	return f.printer.Sprintf(fmt.Sprintf("%%.%df", prec), v)
}
