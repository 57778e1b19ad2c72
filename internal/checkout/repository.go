package checkout

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"dukaan-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetCartLines(ctx context.Context, userID string) ([]Line, error)
	GetProductLine(ctx context.Context, productID string, quantity int) (*Line, error)
	CreateOrderWithItems(ctx context.Context, userID string, total float64, address ShippingAddress, lines []Line) (string, error)
	ClearCart(ctx context.Context, userID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetCartLines prices the user's cart at the current catalog. Inactive
// products drop out so a delisted item cannot be ordered.
func (r *repository) GetCartLines(ctx context.Context, userID string) ([]Line, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ci.product_id, p.name, p.price, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1 AND p.is_active = TRUE
		ORDER BY ci.created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.ProductID, &l.Name, &l.Price, &l.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}

func (r *repository) GetProductLine(ctx context.Context, productID string, quantity int) (*Line, error) {
	var l Line
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price
		FROM products
		WHERE id = $1 AND is_active = TRUE
	`, productID).Scan(&l.ProductID, &l.Name, &l.Price)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	l.Quantity = quantity
	return &l, nil
}

// CreateOrderWithItems persists the order header and every line in one
// transaction. Either everything lands or nothing does.
func (r *repository) CreateOrderWithItems(ctx context.Context, userID string, total float64, address ShippingAddress, lines []Line) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderWithItems"),
		zap.String("user_id", userID),
	)

	addressJSON, err := json.Marshal(address)
	if err != nil {
		return "", err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return "", err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	var orderID string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, status, total_amount, shipping_address)
		VALUES ($1, 'pending', $2, $3)
		RETURNING id
	`, userID, total, addressJSON).Scan(&orderID)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return "", err
	}

	for _, l := range lines {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
		`, orderID, l.ProductID, l.Quantity, l.Price)
		if err != nil {
			log.Error("failed to insert order item",
				zap.String("product_id", l.ProductID),
				zap.Error(err),
			)
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", zap.Error(err))
		return "", err
	}
	committed = true

	log.Info("order persisted",
		zap.String("order_id", orderID),
		zap.Int("line_count", len(lines)),
	)
	return orderID, nil
}

func (r *repository) ClearCart(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}
