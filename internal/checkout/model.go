package checkout

// Input is the checkout form plus the optional buy-now override. When
// ProductID is set the order is built from that single product and the cart
// is left alone; otherwise the user's cart becomes the order.
type Input struct {
	FullName       string  `json:"fullName" validate:"required,min=2"`
	Email          string  `json:"email" validate:"required,email"`
	Phone          string  `json:"phone" validate:"required,min=10"`
	Address        string  `json:"address" validate:"required,min=10"`
	City           string  `json:"city" validate:"required,min=2"`
	State          string  `json:"state" validate:"required,min=2"`
	ZipCode        string  `json:"zipCode" validate:"required,min=5"`
	Country        string  `json:"country" validate:"required,min=2"`
	PaymentMethod  string  `json:"paymentMethod" validate:"required,oneof=cash_on_delivery card upi"`
	DeliveryMethod string  `json:"deliveryMethod" validate:"required,oneof=standard express overnight"`
	Notes          *string `json:"notes,omitempty"`

	ProductID string `json:"productId,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

// BuyNow reports whether the order bypasses the cart.
func (in Input) BuyNow() bool {
	return in.ProductID != ""
}

// Line is one order line priced at submission time.
type Line struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

// ShippingAddress is the jsonb snapshot written onto the order. It embeds
// the full form plus the priced totals so the order is self-describing even
// if products or profiles change later.
type ShippingAddress struct {
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	ZipCode        string  `json:"zipCode"`
	Country        string  `json:"country"`
	PaymentMethod  string  `json:"paymentMethod"`
	DeliveryMethod string  `json:"deliveryMethod"`
	Notes          *string `json:"notes,omitempty"`
	DeliveryFee    float64 `json:"deliveryFee"`
	Subtotal       float64 `json:"subtotal"`
}

// Result is what a successful checkout returns to the client.
type Result struct {
	OrderID     string  `json:"orderId"`
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

// DeliveryFees maps delivery method to its flat fee.
var DeliveryFees = map[string]float64{
	"standard":  50,
	"express":   100,
	"overnight": 200,
}
