package product

import (
	"context"
	"database/sql"
	"errors"

	"dukaan-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetActiveProducts(ctx context.Context) ([]*Product, error)
	GetAllProducts(ctx context.Context) ([]*Product, error)
	GetProductByID(ctx context.Context, productID string, onlyActive bool) (*Product, error)
	Create(ctx context.Context, input NewProductInput) (*Product, error)
	Update(ctx context.Context, productID string, input UpdateProductInput) (*Product, error)
	Delete(ctx context.Context, productID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	p.id,
	p.name,
	p.description,
	p.price,
	p.compare_price,
	p.category_id,
	c.name,
	p.images,
	p.inventory_count,
	p.sku,
	p.is_active,
	p.created_at,
	p.updated_at
`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.ComparePrice,
		&p.CategoryID,
		&p.CategoryName,
		pq.Array(&p.Images),
		&p.InventoryCount,
		&p.SKU,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetActiveProducts returns the full active catalog with category names,
// newest first. The catalog query layer filters this list in memory.
func (r *repository) GetActiveProducts(ctx context.Context) ([]*Product, error) {
	return r.list(ctx, true)
}

func (r *repository) GetAllProducts(ctx context.Context) ([]*Product, error) {
	return r.list(ctx, false)
}

func (r *repository) list(ctx context.Context, onlyActive bool) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListProducts"),
		zap.Bool("only_active", onlyActive),
	)

	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
	`
	if onlyActive {
		query += " WHERE p.is_active = TRUE"
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("failed to scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}

	return products, nil
}

func (r *repository) GetProductByID(ctx context.Context, productID string, onlyActive bool) (*Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`
	if onlyActive {
		query += " AND p.is_active = TRUE"
	}

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, productID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
		zap.String("name", input.Name),
	)

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	var p Product
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, compare_price, category_id, images, inventory_count, sku, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, name, description, price, compare_price, category_id, images, inventory_count, sku, is_active, created_at, updated_at
	`,
		input.Name, input.Description, input.Price, input.ComparePrice,
		input.CategoryID, pq.Array(images), input.InventoryCount, input.SKU, isActive,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ComparePrice,
		&p.CategoryID, pq.Array(&p.Images), &p.InventoryCount, &p.SKU, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.String("product_id", p.ID))
	return &p, nil
}

func (r *repository) Update(ctx context.Context, productID string, input UpdateProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateProduct"),
		zap.String("product_id", productID),
	)

	// COALESCE keeps existing values when the input field is nil; images are
	// replaced wholesale when provided.
	var imagesArg any
	if input.Images != nil {
		imagesArg = pq.Array(input.Images)
	}

	var p Product
	err := r.db.QueryRowContext(ctx, `
		UPDATE products
		SET name = COALESCE($2, name),
			description = COALESCE($3, description),
			price = COALESCE($4, price),
			compare_price = COALESCE($5, compare_price),
			category_id = COALESCE($6, category_id),
			images = COALESCE($7, images),
			inventory_count = COALESCE($8, inventory_count),
			sku = COALESCE($9, sku),
			is_active = COALESCE($10, is_active),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, price, compare_price, category_id, images, inventory_count, sku, is_active, created_at, updated_at
	`,
		productID, input.Name, input.Description, input.Price, input.ComparePrice,
		input.CategoryID, imagesArg, input.InventoryCount, input.SKU, input.IsActive,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ComparePrice,
		&p.CategoryID, pq.Array(&p.Images), &p.InventoryCount, &p.SKU, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		log.Error("failed to update product", zap.Error(err))
		return nil, err
	}

	return &p, nil
}

func (r *repository) Delete(ctx context.Context, productID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
