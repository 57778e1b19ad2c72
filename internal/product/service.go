package product

import (
	"context"
	"sort"
	"strings"
	"time"

	"dukaan-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetCatalog(ctx context.Context, filter Filter, s Sort) ([]*Product, error)
	GetProductByID(ctx context.Context, productID string) (*Product, error)

	ListAll(ctx context.Context) ([]*Product, error)
	Create(ctx context.Context, input NewProductInput) (*Product, error)
	Update(ctx context.Context, productID string, input UpdateProductInput) (*Product, error)
	Delete(ctx context.Context, productID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetCatalog loads the full active-product set and derives the requested
// view in memory. The catalog is small enough that the whole list is
// fetched per request and filtered here rather than in SQL.
func (s *service) GetCatalog(ctx context.Context, filter Filter, srt Sort) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetCatalog"),
	)

	start := time.Now()

	products, err := s.repo.GetActiveProducts(ctx)
	if err != nil {
		log.Error("failed to fetch catalog",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	view := FilterSort(products, filter, srt)

	log.Info("catalog derived",
		zap.Int("total", len(products)),
		zap.Int("matched", len(view)),
		zap.Duration("duration", time.Since(start)),
	)

	return view, nil
}

// FilterSort applies the conjunctive filters and then orders the result.
// Sorting is stable: products that compare equal keep store iteration order.
func FilterSort(products []*Product, filter Filter, srt Sort) []*Product {
	filtered := make([]*Product, 0, len(products))

	for _, p := range products {
		if filter.CategoryID != nil {
			if p.CategoryID == nil || *p.CategoryID != *filter.CategoryID {
				continue
			}
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.Search != nil && *filter.Search != "" {
			q := strings.ToLower(*filter.Search)
			name := strings.ToLower(p.Name)
			desc := ""
			if p.Description != nil {
				desc = strings.ToLower(*p.Description)
			}
			if !strings.Contains(name, q) && !strings.Contains(desc, q) {
				continue
			}
		}
		filtered = append(filtered, p)
	}

	field := srt.Field
	if field == "" {
		field = SortByCreatedAt
	}
	order := srt.Order
	if order == "" {
		order = SortDesc
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]

		var less bool
		switch field {
		case SortByName:
			less = strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortByPrice:
			less = a.Price < b.Price
		default:
			less = a.CreatedAt.Before(b.CreatedAt)
		}

		if order == SortDesc {
			return !less && !equalOn(a, b, field)
		}
		return less
	})

	return filtered
}

func equalOn(a, b *Product, field SortField) bool {
	switch field {
	case SortByName:
		return strings.EqualFold(a.Name, b.Name)
	case SortByPrice:
		return a.Price == b.Price
	default:
		return a.CreatedAt.Equal(b.CreatedAt)
	}
}

func (s *service) GetProductByID(ctx context.Context, productID string) (*Product, error) {
	return s.repo.GetProductByID(ctx, productID, true)
}

func (s *service) ListAll(ctx context.Context) ([]*Product, error) {
	return s.repo.GetAllProducts(ctx)
}

func (s *service) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	return s.repo.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, productID string, input UpdateProductInput) (*Product, error) {
	return s.repo.Update(ctx, productID, input)
}

func (s *service) Delete(ctx context.Context, productID string) error {
	return s.repo.Delete(ctx, productID)
}
