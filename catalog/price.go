package catalog

import (
	"strconv"
	"strings"
	"unicode"
)

// ParsePriceMidpoint derives a numeric midpoint from a free-form display
// price such as "500.000 - 800.000 VNĐ" or "150.000 VNĐ/người". Each side of
// a range is reduced to its digits and the midpoint is the mean of the two
// bounds; a single value is its own midpoint. The function is total: anything
// unparseable yields 0, never an error, so items with odd price strings stay
// searchable instead of being dropped.
func ParsePriceMidpoint(price string) int {
	low, rest, isRange := strings.Cut(price, "-")

	lowValue, lowOK := digitsValue(low)
	if !isRange {
		if !lowOK {
			return 0
		}
		return lowValue
	}

	highValue, highOK := digitsValue(rest)
	switch {
	case lowOK && highOK:
		return (lowValue + highValue) / 2
	case lowOK:
		return lowValue
	case highOK:
		return highValue
	}
	return 0
}

// digitsValue strips every non-digit rune and parses what remains.
func digitsValue(s string) (int, bool) {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}

	value, err := strconv.Atoi(b.String())
	if err != nil {
		// Digit run too long to fit an int.
		return 0, false
	}
	return value, true
}
