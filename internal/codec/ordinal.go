package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// Ordinal returns n followed by its English ordinal suffix.
//
//	Ordinal(1)   // "1st"
//	Ordinal(11)  // "11th"
//	Ordinal(22)  // "22nd"
//	Ordinal(113) // "113th"
func Ordinal(n int) string {
	return strconv.Itoa(n) + ordinalSuffix(n)
}

func ordinalSuffix(n int) string {
	// floor modulo, so negative input still gets a suffix
	m := ((n % 100) + 100) % 100
	if m >= 11 && m <= 13 {
		return "th"
	}
	switch m % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// ParseOrder parses the order field of a release.
func ParseOrder(order string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(order))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrOrderNumber, order)
	}
	return n, nil
}
