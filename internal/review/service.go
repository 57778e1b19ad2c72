package review

import (
	"context"

	"dukaan-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	CheckEligibility(ctx context.Context, userID, productID string) (*Eligibility, error)
	Submit(ctx context.Context, userID string, input SubmitInput) (*Review, error)
	ListByProduct(ctx context.Context, productID string) (*ProductReviews, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CheckEligibility answers whether the user may review the product: they
// need a shipped or delivered order containing it and no prior review.
func (s *service) CheckEligibility(ctx context.Context, userID, productID string) (*Eligibility, error) {
	orderID, err := s.repo.FindQualifyingOrder(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if orderID == "" {
		return &Eligibility{Eligible: false, Reason: "no shipped or delivered purchase"}, nil
	}

	reviewed, err := s.repo.HasReview(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return &Eligibility{Eligible: false, Reason: "already reviewed"}, nil
	}

	return &Eligibility{Eligible: true, OrderID: orderID}, nil
}

func (s *service) Submit(ctx context.Context, userID string, input SubmitInput) (*Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubmitReview"),
		zap.String("user_id", userID),
		zap.String("product_id", input.ProductID),
	)

	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	elig, err := s.CheckEligibility(ctx, userID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !elig.Eligible {
		if elig.Reason == "already reviewed" {
			return nil, ErrAlreadyReviewed
		}
		return nil, ErrNotEligible
	}

	rv, err := s.repo.Create(ctx, &Review{
		ProductID: input.ProductID,
		UserID:    userID,
		OrderID:   elig.OrderID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	})
	if err != nil {
		return nil, err
	}

	log.Info("review submitted", zap.Int("rating", input.Rating))
	return rv, nil
}

func (s *service) ListByProduct(ctx context.Context, productID string) (*ProductReviews, error) {
	reviews, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	out := &ProductReviews{Reviews: reviews, Count: len(reviews)}
	if out.Reviews == nil {
		out.Reviews = []*Review{}
	}
	if len(reviews) > 0 {
		var sum int
		for _, rv := range reviews {
			sum += rv.Rating
		}
		out.AverageRating = float64(sum) / float64(len(reviews))
	}

	return out, nil
}
