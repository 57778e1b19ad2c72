package review

import "time"

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	OrderID   string    `json:"orderId"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	ReviewerName *string `json:"reviewerName,omitempty"`
}

type SubmitInput struct {
	ProductID string  `json:"productId" validate:"required"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Comment   *string `json:"comment,omitempty"`
}

// Eligibility tells a client whether the review form should be offered and
// which order backs the purchase.
type Eligibility struct {
	Eligible bool   `json:"eligible"`
	OrderID  string `json:"orderId,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// ProductReviews is a product's review list with its aggregate rating.
type ProductReviews struct {
	Reviews       []*Review `json:"reviews"`
	AverageRating float64   `json:"averageRating"`
	Count         int       `json:"count"`
}
