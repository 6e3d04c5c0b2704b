package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-book-tracker/internal/logger"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
)

const entityUser = "User"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns nil without error when no user matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NULL OR username = $1)
		  AND ($2::VARCHAR IS NULL OR email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logQuery(query, []any{username, email}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(entityUser, OpFind, err)
	}

	return &user, nil
}

type UserWriteRepository struct {
	base
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{base{db: db, txGetter: txGetter}}
}

// Save inserts a user and returns the generated id.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email, role string) (string, error) {
	query := `
		INSERT INTO users (username, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	args := []any{username, email, "***", role}

	var id string
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, username, email, passwordHash, role)

	logger.Log.Debugw("query",
		"sql", logger.OneLine(query),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return "", wrapErr(entityUser, OpCreate, err)
	}
	return id, nil
}
