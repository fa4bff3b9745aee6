// Package format holds the field-level text conventions of the fiscal
// schema: fixed-precision decimals, digit-only identifiers, timestamp
// layouts and authority-safe text normalization.
package format

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Decimal2 renders a value with two decimal places (monetary fields)
func Decimal2(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Decimal3 renders a value with three decimal places (weights)
func Decimal3(d decimal.Decimal) string {
	return d.StringFixed(3)
}

// Decimal4 renders a value with four decimal places (quantities, unit
// values and high-resolution rates)
func Decimal4(d decimal.Decimal) string {
	return d.StringFixed(4)
}

// Digits strips every non-digit rune (identifiers such as CNPJ, CPF, CEP)
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}

// ZeroPad left-pads s with zeros up to width; longer values pass through
func ZeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Truncate limits s to n runes
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// DateTime renders the schema timestamp layout with the offset taken
// from the value's own location
func DateTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05-07:00")
}

// Date renders the schema date layout
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// RemoveAccents decomposes the text and drops combining marks
func RemoveAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// StripControl removes control characters (tabs and line breaks included),
// required for correction-letter text
func StripControl(s string) string {
	out, _, err := transform.String(runes.Remove(runes.In(unicode.Cc)), s)
	if err != nil {
		return s
	}
	return out
}
