package utils

import (
	"fmt"
	"math"
)

// FormatCurrencyINR formats an amount the way the menu and order screens show
// prices, using Indian digit grouping.
// Example: 123456.5 -> "INR 1,23,456.50"
func FormatCurrencyINR(amount float64) string {
	// Round to paise first so .995 carries into the integer part.
	cents := int64(math.Round(amount * 100))
	integer := cents / 100
	decimal := cents % 100

	// First group of three, then pairs (Indian grouping).
	integerStr := fmt.Sprintf("%d", integer%1000)
	remaining := integer / 1000
	if remaining > 0 {
		integerStr = fmt.Sprintf("%03d", integer%1000)
	}
	for remaining > 0 {
		if remaining >= 100 {
			integerStr = fmt.Sprintf("%02d,%s", remaining%100, integerStr)
		} else {
			integerStr = fmt.Sprintf("%d,%s", remaining%100, integerStr)
		}
		remaining = remaining / 100
	}

	if decimal > 0 {
		return fmt.Sprintf("INR %s.%02d", integerStr, decimal)
	}
	return fmt.Sprintf("INR %s", integerStr)
}
