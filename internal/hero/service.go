package hero

import "context"

type Service interface {
	ListActive(ctx context.Context) ([]*Section, error)
	ListAll(ctx context.Context) ([]*Section, error)
	Create(ctx context.Context, input NewSectionInput) (*Section, error)
	Update(ctx context.Context, sectionID string, input UpdateSectionInput) (*Section, error)
	ToggleActive(ctx context.Context, sectionID string, active bool) (*Section, error)
	Delete(ctx context.Context, sectionID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListActive(ctx context.Context) ([]*Section, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) ListAll(ctx context.Context) ([]*Section, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Create(ctx context.Context, input NewSectionInput) (*Section, error) {
	return s.repo.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, sectionID string, input UpdateSectionInput) (*Section, error) {
	return s.repo.Update(ctx, sectionID, input)
}

func (s *service) ToggleActive(ctx context.Context, sectionID string, active bool) (*Section, error) {
	return s.repo.Update(ctx, sectionID, UpdateSectionInput{IsActive: &active})
}

func (s *service) Delete(ctx context.Context, sectionID string) error {
	return s.repo.Delete(ctx, sectionID)
}
