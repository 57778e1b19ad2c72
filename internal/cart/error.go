package cart

import "errors"

var (
	ErrItemNotFound       = errors.New("cart item not found")
	ErrProductUnavailable = errors.New("product is unavailable")
)
