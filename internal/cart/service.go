package cart

import (
	"context"
	"errors"

	"dukaan-be/internal/logger"
	"dukaan-be/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	GetCart(ctx context.Context, userID string) (*Cart, error)
	AddItem(ctx context.Context, userID string, input AddItemInput) (*Cart, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*Cart, error)
	Clear(ctx context.Context, userID string) error
}

type service struct {
	repo     Repository
	products product.Repository
}

func NewService(repo Repository, products product.Repository) Service {
	return &service{repo: repo, products: products}
}

func (s *service) GetCart(ctx context.Context, userID string) (*Cart, error) {
	items, err := s.repo.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	c := &Cart{Items: items}
	if c.Items == nil {
		c.Items = []*Item{}
	}
	for _, it := range items {
		c.Total += it.Subtotal()
	}

	return c, nil
}

// AddItem verifies the product is live before writing the line. Adding a
// product already in the cart accumulates quantity.
func (s *service) AddItem(ctx context.Context, userID string, input AddItemInput) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
		zap.String("user_id", userID),
		zap.String("product_id", input.ProductID),
	)

	_, err := s.products.GetProductByID(ctx, input.ProductID, true)
	if errors.Is(err, product.ErrProductNotFound) {
		return nil, ErrProductUnavailable
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, userID, input.ProductID, input.Quantity); err != nil {
		log.Error("failed to upsert cart item", zap.Error(err))
		return nil, err
	}

	log.Info("cart item added", zap.Int("quantity", input.Quantity))
	return s.GetCart(ctx, userID)
}

// UpdateQuantity sets the line to an absolute quantity. Zero or negative
// removes the line.
func (s *service) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	if err := s.repo.SetQuantity(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

func (s *service) RemoveItem(ctx context.Context, userID, productID string) (*Cart, error) {
	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

func (s *service) Clear(ctx context.Context, userID string) error {
	return s.repo.Clear(ctx, userID)
}
