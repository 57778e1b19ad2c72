package cart

import "time"

// Item is a cart row joined with the current product record. Price and
// availability always reflect the live catalog, never a stored copy.
type Item struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`

	ProductName    string   `json:"productName"`
	Price          float64  `json:"price"`
	Images         []string `json:"images"`
	InventoryCount int      `json:"inventoryCount"`
	IsActive       bool     `json:"isActive"`
}

// Subtotal is the line amount at the current product price.
func (i *Item) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

type Cart struct {
	Items []*Item `json:"items"`
	Total float64 `json:"total"`
}

type AddItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}
