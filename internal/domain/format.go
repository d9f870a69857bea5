package domain

import (
	"math"
	"strconv"
)

// FormatQuantity renders a quantity rounded to two decimals without
// trailing zeros: 10 -> "10", 142.50 -> "142.5", 1/3 -> "0.33".
func FormatQuantity(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
