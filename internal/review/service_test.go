package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindQualifyingOrder(ctx context.Context, userID, productID string) (string, error) {
	args := m.Called(ctx, userID, productID)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) HasReview(ctx context.Context, userID, productID string) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, r *Review) (*Review, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Review), args.Error(1)
}

func (m *MockRepository) ListByProduct(ctx context.Context, productID string) ([]*Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Review), args.Error(1)
}

func TestService_CheckEligibility(t *testing.T) {
	t.Run("Shipped purchase without prior review", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindQualifyingOrder", mock.Anything, "u-1", "p-1").Return("ord-1", nil)
		repo.On("HasReview", mock.Anything, "u-1", "p-1").Return(false, nil)

		svc := NewService(repo)
		elig, err := svc.CheckEligibility(context.Background(), "u-1", "p-1")

		assert.NoError(t, err)
		assert.True(t, elig.Eligible)
		assert.Equal(t, "ord-1", elig.OrderID)
	})

	t.Run("No qualifying order", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindQualifyingOrder", mock.Anything, "u-1", "p-1").Return("", nil)

		svc := NewService(repo)
		elig, err := svc.CheckEligibility(context.Background(), "u-1", "p-1")

		assert.NoError(t, err)
		assert.False(t, elig.Eligible)
		repo.AssertNotCalled(t, "HasReview", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already reviewed", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindQualifyingOrder", mock.Anything, "u-1", "p-1").Return("ord-1", nil)
		repo.On("HasReview", mock.Anything, "u-1", "p-1").Return(true, nil)

		svc := NewService(repo)
		elig, err := svc.CheckEligibility(context.Background(), "u-1", "p-1")

		assert.NoError(t, err)
		assert.False(t, elig.Eligible)
		assert.Equal(t, "already reviewed", elig.Reason)
	})
}

func TestService_Submit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindQualifyingOrder", mock.Anything, "u-1", "p-1").Return("ord-1", nil)
		repo.On("HasReview", mock.Anything, "u-1", "p-1").Return(false, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(r *Review) bool {
			return r.OrderID == "ord-1" && r.Rating == 4
		})).Return(&Review{ID: "rv-1", Rating: 4}, nil)

		svc := NewService(repo)
		rv, err := svc.Submit(context.Background(), "u-1", SubmitInput{ProductID: "p-1", Rating: 4})

		assert.NoError(t, err)
		assert.Equal(t, "rv-1", rv.ID)
	})

	t.Run("Rating out of range", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Submit(context.Background(), "u-1", SubmitInput{ProductID: "p-1", Rating: 6})
		assert.ErrorIs(t, err, ErrInvalidRating)

		_, err = svc.Submit(context.Background(), "u-1", SubmitInput{ProductID: "p-1", Rating: 0})
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("Not eligible", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindQualifyingOrder", mock.Anything, "u-1", "p-1").Return("", nil)

		svc := NewService(repo)
		_, err := svc.Submit(context.Background(), "u-1", SubmitInput{ProductID: "p-1", Rating: 3})

		assert.ErrorIs(t, err, ErrNotEligible)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Racing duplicate maps to already reviewed", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindQualifyingOrder", mock.Anything, "u-1", "p-1").Return("ord-1", nil)
		repo.On("HasReview", mock.Anything, "u-1", "p-1").Return(false, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, ErrAlreadyReviewed)

		svc := NewService(repo)
		_, err := svc.Submit(context.Background(), "u-1", SubmitInput{ProductID: "p-1", Rating: 5})

		assert.ErrorIs(t, err, ErrAlreadyReviewed)
	})
}

func TestService_ListByProduct(t *testing.T) {
	t.Run("Average over ratings", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListByProduct", mock.Anything, "p-1").Return([]*Review{
			{ID: "rv-1", Rating: 5},
			{ID: "rv-2", Rating: 2},
		}, nil)

		svc := NewService(repo)
		out, err := svc.ListByProduct(context.Background(), "p-1")

		assert.NoError(t, err)
		assert.Equal(t, 2, out.Count)
		assert.InDelta(t, 3.5, out.AverageRating, 0.001)
	})

	t.Run("No reviews", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListByProduct", mock.Anything, "p-1").Return([]*Review{}, nil)

		svc := NewService(repo)
		out, err := svc.ListByProduct(context.Background(), "p-1")

		assert.NoError(t, err)
		assert.Zero(t, out.AverageRating)
		assert.NotNil(t, out.Reviews)
	})
}
