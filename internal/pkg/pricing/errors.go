package pricing

import (
	"errors"
	"fmt"
)

// ErrMissingConfig is returned when the fee configuration singleton is
// absent. Fee computations fail loudly instead of assuming defaults,
// since a silent fallback here changes money amounts.
var ErrMissingConfig = errors.New("fee configuration is missing")

// ErrInvalidOrder is returned when an order carries negative, non-finite
// or missing financial fields. Such orders are excluded from aggregation
// and surfaced to the admin, never coerced to zero.
var ErrInvalidOrder = errors.New("invalid order data")

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidOrder, fmt.Sprintf(format, args...))
}
