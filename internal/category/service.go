package category

import "context"

type Service interface {
	List(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, categoryID string) (*Category, error)
	Create(ctx context.Context, input NewCategoryInput) (*Category, error)
	Update(ctx context.Context, categoryID string, input UpdateCategoryInput) (*Category, error)
	Delete(ctx context.Context, categoryID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, categoryID string) (*Category, error) {
	return s.repo.GetByID(ctx, categoryID)
}

func (s *service) Create(ctx context.Context, input NewCategoryInput) (*Category, error) {
	return s.repo.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, categoryID string, input UpdateCategoryInput) (*Category, error) {
	return s.repo.Update(ctx, categoryID, input)
}

func (s *service) Delete(ctx context.Context, categoryID string) error {
	return s.repo.Delete(ctx, categoryID)
}
