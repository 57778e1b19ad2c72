package order

import (
	"context"

	"dukaan-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	ListForUser(ctx context.Context, userID string) ([]*Order, error)
	ListAll(ctx context.Context, status *Status) ([]*Order, error)
	GetForUser(ctx context.Context, userID, orderID string) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error)
	Cancel(ctx context.Context, userID, orderID string) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.List(ctx, ListFilter{UserID: &userID})
}

func (s *service) ListAll(ctx context.Context, status *Status) ([]*Order, error) {
	if status != nil && !ValidStatus(*status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, ListFilter{Status: status})
}

// GetForUser fetches an order and enforces ownership. A foreign order reads
// the same as a missing one.
func (s *service) GetForUser(ctx context.Context, userID, orderID string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// UpdateStatus is the admin transition. Delivered and cancelled orders are
// final.
func (s *service) UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	current, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if current.Status.Terminal() && current.Status != status {
		return nil, ErrOrderFinalized
	}

	o, err := s.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(status)),
	)
	return o, nil
}

// Cancel lets the owner back out of an order that has not started processing.
func (s *service) Cancel(ctx context.Context, userID, orderID string) (*Order, error) {
	o, err := s.GetForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusPending {
		return nil, ErrCancelNotAllowed
	}

	return s.repo.UpdateStatus(ctx, orderID, StatusCancelled)
}
