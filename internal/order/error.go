package order

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrOrderFinalized   = errors.New("order status can no longer change")
	ErrCancelNotAllowed = errors.New("order can only be cancelled while pending")
)
