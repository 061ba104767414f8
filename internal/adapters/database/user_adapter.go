package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/lightbnb/backend/internal/domain/entities"
	"github.com/lightbnb/backend/internal/domain/repositories"
	"github.com/lightbnb/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/lightbnb/backend/pkg/errors"
)

// UserAdapter implements the UserRepository interface
type UserAdapter struct {
	adapter
}

// NewUserAdapter creates a new user adapter
func NewUserAdapter(client *postgres.Client, opts ...Option) repositories.UserRepository {
	return &UserAdapter{adapter: newAdapter(client, opts)}
}

// GetByEmail retrieves a user by email
func (a *UserAdapter) GetByEmail(ctx context.Context, email string) (_ *entities.User, err error) {
	ctx, done := a.begin(ctx, "users.get_by_email", "users")
	defer done(&err)

	return a.getOne(ctx, goqu.Ex{"email": email})
}

// GetByID retrieves a user by ID
func (a *UserAdapter) GetByID(ctx context.Context, id int64) (_ *entities.User, err error) {
	ctx, done := a.begin(ctx, "users.get_by_id", "users")
	defer done(&err)

	return a.getOne(ctx, goqu.Ex{"id": id})
}

func (a *UserAdapter) getOne(ctx context.Context, where goqu.Ex) (*entities.User, error) {
	query, args, err := a.db.From("users").
		Prepared(true).
		Where(where).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user query", err)
	}

	user := &entities.User{}
	err = a.client.DB().GetContext(ctx, user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Create inserts a user and returns the stored row with its generated id
func (a *UserAdapter) Create(ctx context.Context, user *entities.User) (_ *entities.User, err error) {
	if user == nil {
		return nil, apperrors.NewValidationError("user is nil")
	}

	ctx, done := a.begin(ctx, "users.create", "users")
	defer done(&err)

	var cols columnSet
	cols.add("name", user.Name)
	cols.add("email", user.Email)
	cols.add("password", user.Password)

	query, args, err := cols.insert(a.db, "users").ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build user insert query", err)
	}

	created := &entities.User{}
	if err := a.client.DB().GetContext(ctx, created, query, args...); err != nil {
		return nil, err
	}

	return created, nil
}
