package stock

import (
	"strconv"
	"strings"

	"github.com/mamadbah2/stocktrack/internal/domain/models"
)

// ValidateOrder checks the structural preconditions of a direct create once
// per order, before any expansion: both the device and payment lists must be
// non-empty. Failure aborts the whole request.
func ValidateOrder(order models.OrderPayload) error {
	if len(order.Device) == 0 {
		return &ValidationError{Message: "Invalid device data"}
	}

	if len(order.Payment) == 0 {
		return &ValidationError{Message: "Invalid payment data"}
	}

	return nil
}

// parseAmount coerces a raw spreadsheet cell to a number.
func parseAmount(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return value, err == nil
}

// parseAmountOrZero coerces a raw cell to a number, defaulting to 0 when the
// cell is empty or not numeric.
func parseAmountOrZero(raw string) float64 {
	value, ok := parseAmount(raw)
	if !ok {
		return 0
	}
	return value
}
