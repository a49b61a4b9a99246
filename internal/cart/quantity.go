package cart

import (
	"strconv"
	"strings"
)

const minQuantity = 1

// NormalizeQuantity clamps anything below one up to one.
func NormalizeQuantity(q int) int {
	if q < minQuantity {
		return minQuantity
	}
	return q
}

// ClampQuantity parses free-form quantity input the way a browser's
// parseInt does: optional sign, then leading digits, rest ignored. So
// "2.5" is 2 and "3abc" is 3. No digits, zero and negatives become 1.
func ClampQuantity(raw string) int {
	s := strings.TrimSpace(raw)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsFrom := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsFrom {
		return minQuantity
	}

	// Atoi saturates out-of-range input at the int bounds.
	q, _ := strconv.Atoi(s[:end])
	return NormalizeQuantity(q)
}
