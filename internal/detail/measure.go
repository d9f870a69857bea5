package detail

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cutsheet/internal/domain"
)

// leadingMeasure reads the numeric prefix of an entered measurement such as
// `1-1/4"`, `3/4"`, `8` or `12" deep`. Mixed numbers may use a dash or a
// space between the whole and the fraction.
func leadingMeasure(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && strings.IndexByte("0123456789.-/ ", s[end]) >= 0 {
		end++
	}
	num := strings.TrimSpace(s[:end])

	neg := strings.HasPrefix(num, "-")
	if neg {
		num = strings.TrimSpace(num[1:])
	}
	if num == "" {
		return 0, false
	}

	whole, frac := num, ""
	if i := strings.IndexAny(num, "- "); i >= 0 {
		whole, frac = num[:i], strings.TrimSpace(num[i+1:])
	} else if strings.Contains(num, "/") {
		whole, frac = "", num
	}

	var v float64
	if whole != "" {
		w, err := strconv.ParseFloat(whole, 64)
		if err != nil {
			return 0, false
		}
		v = w
	}
	if frac != "" {
		n, d, ok := strings.Cut(frac, "/")
		if !ok {
			return 0, false
		}
		num, err1 := strconv.ParseFloat(strings.TrimSpace(n), 64)
		den, err2 := strconv.ParseFloat(strings.TrimSpace(d), 64)
		if err1 != nil || err2 != nil || den == 0 {
			return 0, false
		}
		v += num / den
	}
	if neg {
		v = -v
	}
	return v, true
}

// positiveMeasure rejects a blank, unreadable, zero or negative measurement.
func positiveMeasure(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidDimension, field)
	}
	v, ok := leadingMeasure(s)
	if !ok {
		return fmt.Errorf("%w: %s %q is not a measurement", domain.ErrInvalidDimension, field, s)
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %q", domain.ErrInvalidDimension, field, s)
	}
	return nil
}
