package product

import "time"

type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	Price          float64   `json:"price"`
	ComparePrice   *float64  `json:"compare_price,omitempty"`
	CategoryID     *string   `json:"category_id,omitempty"`
	CategoryName   *string   `json:"category_name,omitempty"`
	Images         []string  `json:"images"`
	InventoryCount int       `json:"inventory_count"`
	SKU            *string   `json:"sku,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type NewProductInput struct {
	Name           string   `json:"name" validate:"required,min=2"`
	Description    *string  `json:"description"`
	Price          float64  `json:"price" validate:"gte=0"`
	ComparePrice   *float64 `json:"compare_price" validate:"omitempty,gte=0"`
	CategoryID     *string  `json:"category_id"`
	Images         []string `json:"images"`
	InventoryCount int      `json:"inventory_count" validate:"gte=0"`
	SKU            *string  `json:"sku"`
	IsActive       *bool    `json:"is_active"`
}

type UpdateProductInput struct {
	Name           *string  `json:"name" validate:"omitempty,min=2"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	ComparePrice   *float64 `json:"compare_price" validate:"omitempty,gte=0"`
	CategoryID     *string  `json:"category_id"`
	Images         []string `json:"images"`
	InventoryCount *int     `json:"inventory_count" validate:"omitempty,gte=0"`
	SKU            *string  `json:"sku"`
	IsActive       *bool    `json:"is_active"`
}

type SortField string

const (
	SortByName      SortField = "name"
	SortByPrice     SortField = "price"
	SortByCreatedAt SortField = "created_at"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filter holds the conjunctive catalog filters. All fields are optional.
type Filter struct {
	CategoryID *string
	MinPrice   *float64
	MaxPrice   *float64
	Search     *string
}

type Sort struct {
	Field SortField
	Order SortOrder
}
