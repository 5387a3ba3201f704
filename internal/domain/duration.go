package domain

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const day = 24 * time.Hour

// ParseDuration reads compact tokens such as "30m", "2h" or "1d".
func ParseDuration(token string) (time.Duration, error) {
	if len(token) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
	}

	var unit time.Duration
	switch token[len(token)-1] {
	case 'm':
		unit = time.Minute
	case 'h':
		unit = time.Hour
	case 'd':
		unit = day
	default:
		return 0, fmt.Errorf("%w: unknown unit in %q", ErrInvalidDuration, token)
	}

	magnitude := token[:len(token)-1]
	if !isDigits(magnitude) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
	}

	value, err := strconv.ParseInt(magnitude, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
	}
	if value > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidDuration, token)
	}

	return time.Duration(value) * unit, nil
}
