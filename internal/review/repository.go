package review

import (
	"context"
	"database/sql"
	"errors"

	"dukaan-be/internal/logger"
	"dukaan-be/internal/user"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	FindQualifyingOrder(ctx context.Context, userID, productID string) (string, error)
	HasReview(ctx context.Context, userID, productID string) (bool, error)
	Create(ctx context.Context, r *Review) (*Review, error)
	ListByProduct(ctx context.Context, productID string) ([]*Review, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// FindQualifyingOrder returns the id of an order of the user that contains
// the product and has reached shipped or delivered. Empty string means no
// qualifying purchase.
func (r *repository) FindQualifyingOrder(ctx context.Context, userID, productID string) (string, error) {
	var orderID string
	err := r.db.QueryRowContext(ctx, `
		SELECT o.id
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.user_id = $1
			AND oi.product_id = $2
			AND o.status IN ('shipped', 'delivered')
		ORDER BY o.created_at DESC
		LIMIT 1
	`, userID, productID).Scan(&orderID)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return orderID, nil
}

func (r *repository) HasReview(ctx context.Context, userID, productID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reviews WHERE user_id = $1 AND product_id = $2
		)
	`, userID, productID).Scan(&exists)

	return exists, err
}

// Create inserts the review. The unique (user_id, product_id) index backs
// the one-review rule even under racing submissions.
func (r *repository) Create(ctx context.Context, rv *Review) (*Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateReview"),
		zap.String("user_id", rv.UserID),
		zap.String("product_id", rv.ProductID),
	)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (product_id, user_id, order_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, rv.ProductID, rv.UserID, rv.OrderID, rv.Rating, rv.Comment).
		Scan(&rv.ID, &rv.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == user.PgUniqueViolation {
			log.Info("duplicate review suppressed")
			return nil, ErrAlreadyReviewed
		}
		log.Error("failed to create review", zap.Error(err))
		return nil, err
	}

	return rv, nil
}

func (r *repository) ListByProduct(ctx context.Context, productID string) ([]*Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT rv.id, rv.product_id, rv.user_id, rv.order_id, rv.rating, rv.comment, rv.created_at,
			pr.full_name
		FROM reviews rv
		LEFT JOIN profiles pr ON pr.user_id = rv.user_id
		WHERE rv.product_id = $1
		ORDER BY rv.created_at DESC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		var rv Review
		err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.OrderID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.ReviewerName)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, &rv)
	}

	return reviews, rows.Err()
}
