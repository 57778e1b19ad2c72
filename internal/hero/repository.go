package hero

import (
	"context"
	"database/sql"
	"errors"

	"dukaan-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	ListActive(ctx context.Context) ([]*Section, error)
	ListAll(ctx context.Context) ([]*Section, error)
	GetByID(ctx context.Context, sectionID string) (*Section, error)
	Create(ctx context.Context, input NewSectionInput) (*Section, error)
	Update(ctx context.Context, sectionID string, input UpdateSectionInput) (*Section, error)
	Delete(ctx context.Context, sectionID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const sectionColumns = `id, title, subtitle, background_image, cta_text, cta_link, order_index, is_active, created_at, updated_at`

func scanSection(row interface{ Scan(...any) error }) (*Section, error) {
	var s Section
	err := row.Scan(
		&s.ID, &s.Title, &s.Subtitle, &s.BackgroundImage,
		&s.CTAText, &s.CTALink, &s.OrderIndex, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) ListActive(ctx context.Context) ([]*Section, error) {
	return r.list(ctx, true)
}

func (r *repository) ListAll(ctx context.Context) ([]*Section, error) {
	return r.list(ctx, false)
}

func (r *repository) list(ctx context.Context, onlyActive bool) ([]*Section, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListHeroSections"),
		zap.Bool("only_active", onlyActive),
	)

	query := `SELECT ` + sectionColumns + ` FROM hero_sections`
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY order_index ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query hero sections", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sections []*Section
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			log.Error("failed to scan hero section row", zap.Error(err))
			return nil, err
		}
		sections = append(sections, s)
	}

	return sections, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, sectionID string) (*Section, error) {
	s, err := scanSection(r.db.QueryRowContext(ctx, `
		SELECT `+sectionColumns+` FROM hero_sections WHERE id = $1
	`, sectionID))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSectionNotFound
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *repository) Create(ctx context.Context, input NewSectionInput) (*Section, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	s, err := scanSection(r.db.QueryRowContext(ctx, `
		INSERT INTO hero_sections (title, subtitle, background_image, cta_text, cta_link, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+sectionColumns+`
	`, input.Title, input.Subtitle, input.BackgroundImage, input.CTAText, input.CTALink, input.OrderIndex, isActive))
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *repository) Update(ctx context.Context, sectionID string, input UpdateSectionInput) (*Section, error) {
	s, err := scanSection(r.db.QueryRowContext(ctx, `
		UPDATE hero_sections
		SET title = COALESCE($2, title),
			subtitle = COALESCE($3, subtitle),
			background_image = COALESCE($4, background_image),
			cta_text = COALESCE($5, cta_text),
			cta_link = COALESCE($6, cta_link),
			order_index = COALESCE($7, order_index),
			is_active = COALESCE($8, is_active),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+sectionColumns+`
	`, sectionID, input.Title, input.Subtitle, input.BackgroundImage,
		input.CTAText, input.CTALink, input.OrderIndex, input.IsActive))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSectionNotFound
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *repository) Delete(ctx context.Context, sectionID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hero_sections WHERE id = $1`, sectionID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSectionNotFound
	}

	return nil
}
