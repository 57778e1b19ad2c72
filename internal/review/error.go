package review

import "errors"

var (
	ErrNotEligible     = errors.New("no shipped or delivered purchase of this product")
	ErrAlreadyReviewed = errors.New("product already reviewed")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)
