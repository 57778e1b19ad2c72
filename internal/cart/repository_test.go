package cart

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRepository_Upsert(t *testing.T) {
	t.Run("Conflicting line accumulates quantity", func(t *testing.T) {
		db, mck, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		// The conflict clause must add to the stored quantity, not replace
		// it: two adds of 1 leave the line at 2.
		mck.ExpectExec("INSERT INTO cart_items(.|\n)*ON CONFLICT \\(user_id, product_id\\) DO UPDATE(.|\n)*SET quantity = cart_items.quantity \\+ EXCLUDED.quantity").
			WithArgs("u-1", "p-1", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mck.ExpectExec("INSERT INTO cart_items(.|\n)*ON CONFLICT \\(user_id, product_id\\) DO UPDATE(.|\n)*SET quantity = cart_items.quantity \\+ EXCLUDED.quantity").
			WithArgs("u-1", "p-1", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewRepository(db)
		assert.NoError(t, repo.Upsert(context.Background(), "u-1", "p-1", 1))
		assert.NoError(t, repo.Upsert(context.Background(), "u-1", "p-1", 1))
		assert.NoError(t, mck.ExpectationsWereMet())
	})
}

func TestRepository_GetItems(t *testing.T) {
	db, mck, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mck.ExpectQuery("SELECT ci.id, ci.product_id, ci.quantity, ci.created_at(.|\n)*JOIN products p ON p.id = ci.product_id(.|\n)*WHERE ci.user_id = \\$1").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "product_id", "quantity", "created_at",
			"name", "price", "images", "inventory_count", "is_active",
		}).
			AddRow("ci-1", "p-1", 2, now, "Mug", 250.0, "{mug.jpg}", 12, true))

	repo := NewRepository(db)
	items, err := repo.GetItems(context.Background(), "u-1")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, []string{"mug.jpg"}, items[0].Images)
	assert.NoError(t, mck.ExpectationsWereMet())
}

func TestRepository_SetQuantity(t *testing.T) {
	t.Run("Missing line", func(t *testing.T) {
		db, mck, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mck.ExpectExec("UPDATE cart_items(.|\n)*SET quantity = \\$3").
			WithArgs("u-1", "missing", 4).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewRepository(db)
		assert.ErrorIs(t, repo.SetQuantity(context.Background(), "u-1", "missing", 4), ErrItemNotFound)
	})
}
