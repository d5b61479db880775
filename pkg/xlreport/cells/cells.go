// Package cells converts raw values into typed cells.
package cells

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/xlreport-go/pkg/xlreport/models"
)

// Encode converts value into a cell of the requested kind.
// A value that does not parse as a number is stored as a string, unchanged.
func Encode(value string, kind models.Kind) models.Cell {
	if kind == models.KindNumber {
		if text, ok := canonicalNumber(value); ok {
			return models.Cell{Text: text, Kind: models.KindNumber}
		}
	}
	return models.Cell{Text: value, Kind: models.KindString}
}

// Value returns the value to hand to the workbook writer:
// float64 for numbers, string otherwise.
func Value(c models.Cell) interface{} {
	if c.Kind == models.KindNumber {
		if f, err := strconv.ParseFloat(c.Text, 64); err == nil {
			return f
		}
	}
	return c.Text
}

// canonicalNumber parses s as a decimal float literal, ignoring surrounding
// white space, and returns its shortest round-trip form.
func canonicalNumber(s string) (string, bool) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(strings.TrimLeft(s, "+-"))
	if strings.HasPrefix(lower, "0x") {
		return "", false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}
