package hero

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var sectionRows = []string{
	"id", "title", "subtitle", "background_image", "cta_text", "cta_link",
	"order_index", "is_active", "created_at", "updated_at",
}

func TestRepository_ListActive(t *testing.T) {
	db, mck, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mck.ExpectQuery("SELECT id, title, subtitle, background_image, cta_text, cta_link(.|\n)*FROM hero_sections(.|\n)*WHERE is_active = TRUE(.|\n)*ORDER BY order_index ASC").
		WillReturnRows(sqlmock.NewRows(sectionRows).
			AddRow("h-1", "Summer Sale", "Up to 50% off", "sale.jpg", "Shop now", "/products", 0, true, now, now).
			AddRow("h-2", "New Arrivals", nil, "new.jpg", nil, nil, 1, true, now, now))

	repo := NewRepository(db)
	sections, err := repo.ListActive(context.Background())

	assert.NoError(t, err)
	assert.Len(t, sections, 2)
	assert.Equal(t, "Summer Sale", sections[0].Title)
	assert.Equal(t, "sale.jpg", sections[0].BackgroundImage)
	assert.Equal(t, "Shop now", *sections[0].CTAText)
	assert.Equal(t, 0, sections[0].OrderIndex)
	assert.Nil(t, sections[1].Subtitle)
	assert.Nil(t, sections[1].CTALink)
	assert.NoError(t, mck.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	t.Run("Toggle active", func(t *testing.T) {
		db, mck, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		now := time.Now()
		active := false
		mck.ExpectQuery("UPDATE hero_sections").
			WithArgs("h-1", nil, nil, nil, nil, nil, nil, false).
			WillReturnRows(sqlmock.NewRows(sectionRows).
				AddRow("h-1", "Summer Sale", nil, "sale.jpg", nil, nil, 0, false, now, now))

		repo := NewRepository(db)
		s, err := repo.Update(context.Background(), "h-1", UpdateSectionInput{IsActive: &active})

		assert.NoError(t, err)
		assert.False(t, s.IsActive)
	})

	t.Run("Missing section", func(t *testing.T) {
		db, mck, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mck.ExpectQuery("UPDATE hero_sections").
			WillReturnRows(sqlmock.NewRows(sectionRows))

		repo := NewRepository(db)
		_, err = repo.Update(context.Background(), "missing", UpdateSectionInput{})

		assert.ErrorIs(t, err, ErrSectionNotFound)
	})
}
