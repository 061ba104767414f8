package database

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/lightbnb/backend/internal/domain/entities"
	apperrors "github.com/lightbnb/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "name", "email", "password"}

func TestUserAdapter_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the matching user", func(t *testing.T) {
		client, mock := setupMockClient(t)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE \("email" = \$1\) LIMIT \$2`).
			WithArgs("ada@example.com", 1).
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(7), "Ada", "ada@example.com", "x"))

		user, err := NewUserAdapter(client).GetByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, &entities.User{ID: 7, Name: "Ada", Email: "ada@example.com", Password: "x"}, user)
	})

	t.Run("returns nil when no user matches", func(t *testing.T) {
		client, mock := setupMockClient(t)
		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WithArgs("missing@example.com", 1).
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := NewUserAdapter(client).GetByEmail(ctx, "missing@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("ignores columns the struct does not declare", func(t *testing.T) {
		client, mock := setupMockClient(t)
		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows(append(userColumns, "created_at")).
				AddRow(int64(1), "Ada", "ada@example.com", "x", "2024-01-01"))

		user, err := NewUserAdapter(client).GetByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("returns store errors unmodified", func(t *testing.T) {
		client, mock := setupMockClient(t)
		storeErr := &pq.Error{Code: "08006", Message: "connection failure"}
		mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(storeErr)

		user, err := NewUserAdapter(client).GetByEmail(ctx, "ada@example.com")
		assert.Nil(t, user)
		assert.Equal(t, storeErr, err)
	})
}

func TestUserAdapter_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the matching user", func(t *testing.T) {
		client, mock := setupMockClient(t)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE \("id" = \$1\) LIMIT \$2`).
			WithArgs(42, 1).
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(42), "Grace", "grace@example.com", "pw"))

		user, err := NewUserAdapter(client).GetByID(ctx, 42)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Grace", user.Name)
	})

	t.Run("returns nil when no user matches", func(t *testing.T) {
		client, mock := setupMockClient(t)
		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WithArgs(404, 1).
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := NewUserAdapter(client).GetByID(ctx, 404)
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserAdapter_Create(t *testing.T) {
	ctx := context.Background()
	insertSQL := regexp.QuoteMeta(`INSERT INTO "users" ("name", "email", "password") VALUES ($1, $2, $3) RETURNING *`)

	t.Run("returns the inserted row with its generated id", func(t *testing.T) {
		client, mock := setupMockClient(t)
		mock.ExpectQuery(insertSQL).
			WithArgs("Ada", "ada@example.com", "x").
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(1), "Ada", "ada@example.com", "x"))

		user, err := NewUserAdapter(client).Create(ctx, &entities.User{Name: "Ada", Email: "ada@example.com", Password: "x"})
		require.NoError(t, err)
		assert.Equal(t, &entities.User{ID: 1, Name: "Ada", Email: "ada@example.com", Password: "x"}, user)
	})

	t.Run("surfaces duplicate email as the driver error", func(t *testing.T) {
		client, mock := setupMockClient(t)
		dup := &pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "users_email_key"`}
		mock.ExpectQuery(insertSQL).WillReturnError(dup)

		user, err := NewUserAdapter(client).Create(ctx, &entities.User{Name: "Ada", Email: "ada@example.com", Password: "x"})
		assert.Nil(t, user)
		assert.Equal(t, dup, err)
		assert.True(t, apperrors.IsUniqueViolation(err))
	})

	t.Run("rejects a nil user before querying", func(t *testing.T) {
		client, _ := setupMockClient(t)

		user, err := NewUserAdapter(client).Create(ctx, nil)
		assert.Nil(t, user)
		assert.True(t, apperrors.IsValidation(err))
	})
}
