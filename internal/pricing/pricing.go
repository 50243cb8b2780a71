// Package pricing converts between Indian shorthand price strings
// ("1.2cr", "50L", "20k") and absolute rupee amounts.
package pricing

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	Crore = 10_000_000
	Lakh  = 100_000
)

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// ParseShorthand parses a free-text price entry into absolute rupees.
//
// The numeric literal is whatever digits/decimal point the input carries;
// a unit suffix scales it. Unit precedence when several tokens appear is
// crore > lakh > thousand. Returns 0 when no numeric literal can be read.
func ParseShorthand(input string) int64 {
	literal := nonNumeric.ReplaceAllString(input, "")
	n, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0
	}

	lower := strings.ToLower(input)
	switch {
	case strings.Contains(lower, "cr"):
		n *= Crore
	case strings.Contains(lower, "l"):
		n *= Lakh
	case strings.Contains(lower, "k") || strings.Contains(lower, "thousand"):
		n *= 1000
	}
	return int64(math.Round(n))
}

// DisplayPrice formats an absolute rupee amount as localized shorthand:
// "₹1.50 Cr", "₹7.50 L", "₹5.0K" or "₹500".
func DisplayPrice(value int64) string {
	switch {
	case value < 0:
		return "₹0"
	case value >= Crore:
		return fmt.Sprintf("₹%.2f Cr", float64(value)/Crore)
	case value >= Lakh:
		return fmt.Sprintf("₹%.2f L", float64(value)/Lakh)
	case value >= 1000:
		return fmt.Sprintf("₹%.1fK", float64(value)/1000)
	default:
		return fmt.Sprintf("₹%d", value)
	}
}
