package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
)

const entityBookshelf = "Bookshelf"

var bookshelfColumns = []interface{}{"id", "user_id", "name", "type"}

// BookshelfRepository stores user bookshelves.
type BookshelfRepository struct {
	base
}

func NewBookshelfRepository(db *sqlx.DB, txGetter TxGetter) *BookshelfRepository {
	return &BookshelfRepository{base{db: db, txGetter: txGetter}}
}

// GetByID returns nil without error when the shelf does not exist.
func (r *BookshelfRepository) GetByID(ctx context.Context, id string) (*models.Bookshelf, error) {
	stmt := builder.From(tableBookshelf).
		Select(bookshelfColumns...).
		Where(goqu.C("id").Eq(id)).
		Prepared(true)

	var shelf models.Bookshelf
	err := getStmt(ctx, r.executor(ctx), &shelf, stmt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(entityBookshelf, OpFind, err)
	}
	return &shelf, nil
}

// FindByUser lists the user's shelves, default shelves first.
func (r *BookshelfRepository) FindByUser(ctx context.Context, userID string) ([]models.Bookshelf, error) {
	stmt := builder.From(tableBookshelf).
		Select(bookshelfColumns...).
		Where(goqu.C("user_id").Eq(userID)).
		Order(goqu.C("type").Asc(), goqu.C("name").Asc()).
		Prepared(true)

	shelves := make([]models.Bookshelf, 0)
	if err := selectStmt(ctx, r.executor(ctx), &shelves, stmt); err != nil {
		return nil, wrapErr(entityBookshelf, OpFind, err)
	}
	return shelves, nil
}

// Create inserts a shelf with a new id.
func (r *BookshelfRepository) Create(ctx context.Context, userID, name, shelfType string) (*models.Bookshelf, error) {
	shelf := models.Bookshelf{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
		Type:   shelfType,
	}

	stmt := builder.Insert(tableBookshelf).
		Cols(bookshelfColumns...).
		Vals(goqu.Vals{shelf.ID, shelf.UserID, shelf.Name, shelf.Type}).
		Prepared(true)
	if _, err := execStmt(ctx, r.executor(ctx), stmt); err != nil {
		return nil, wrapErr(entityBookshelf, OpCreate, err)
	}
	return &shelf, nil
}
