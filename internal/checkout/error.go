package checkout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrCheckoutInFlight    = errors.New("another checkout is already in progress")
	ErrUnknownDeliveryType = errors.New("unknown delivery method")
)

// ValidationError carries per-field messages for a rejected checkout form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "invalid checkout form: " + strings.Join(parts, "; ")
}
