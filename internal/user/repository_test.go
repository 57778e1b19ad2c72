package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestRepository_CreateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mck, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mck.ExpectQuery("INSERT INTO users").
			WithArgs("ana@example.com", "hashed").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "created_at"}).
				AddRow("u-1", "ana@example.com", time.Now()))

		repo := NewRepository(db)
		u, err := repo.CreateUser(context.Background(), "ana@example.com", "hashed")

		assert.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
		assert.NoError(t, mck.ExpectationsWereMet())
	})

	t.Run("Duplicate email", func(t *testing.T) {
		db, mck, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mck.ExpectQuery("INSERT INTO users").
			WithArgs("dup@example.com", "hashed").
			WillReturnError(&pq.Error{Code: pq.ErrorCode(PgUniqueViolation)})

		repo := NewRepository(db)
		_, err = repo.CreateUser(context.Background(), "dup@example.com", "hashed")

		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestRepository_GetRole(t *testing.T) {
	t.Run("Admin row", func(t *testing.T) {
		db, mck, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mck.ExpectQuery("SELECT role FROM user_roles").
			WithArgs("u-1").
			WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("admin"))

		repo := NewRepository(db)
		role, err := repo.GetRole(context.Background(), "u-1")

		assert.NoError(t, err)
		assert.Equal(t, "admin", role)
	})

	t.Run("No row defaults to customer", func(t *testing.T) {
		db, mck, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mck.ExpectQuery("SELECT role FROM user_roles").
			WithArgs("u-2").
			WillReturnRows(sqlmock.NewRows([]string{"role"}))

		repo := NewRepository(db)
		role, err := repo.GetRole(context.Background(), "u-2")

		assert.NoError(t, err)
		assert.Equal(t, "customer", role)
	})
}

func TestRepository_GetProfile(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, mck, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mck.ExpectQuery("SELECT user_id, email, full_name, phone_number, created_at, updated_at(.|\n)*FROM profiles").
			WithArgs("u-1").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "email", "full_name", "phone_number", "created_at", "updated_at"}).
				AddRow("u-1", "ana@example.com", "Ana", nil, now, now))

		repo := NewRepository(db)
		p, err := repo.GetProfile(context.Background(), "u-1")

		assert.NoError(t, err)
		assert.Equal(t, "Ana", *p.FullName)
		assert.Nil(t, p.PhoneNumber)
	})

	t.Run("Not found", func(t *testing.T) {
		db, mck, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mck.ExpectQuery("FROM profiles").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "email", "full_name", "phone_number", "created_at", "updated_at"}))

		repo := NewRepository(db)
		_, err = repo.GetProfile(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}

func TestRepository_UpsertProfile(t *testing.T) {
	db, mck, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mck.ExpectExec("INSERT INTO profiles(.|\n)*ON CONFLICT \\(user_id\\) DO UPDATE").
		WithArgs("u-1", "ana@example.com", "Ana Perez", "5551234567").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRepository(db)
	err = repo.UpsertProfile(context.Background(), UpsertProfileParams{
		UserID: "u-1", Email: "ana@example.com", FullName: "Ana Perez", PhoneNumber: "5551234567",
	})

	assert.NoError(t, err)
	assert.NoError(t, mck.ExpectationsWereMet())
}
