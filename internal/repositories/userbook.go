package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
)

const entityUserBook = "UserBook"

// UserBookRepository persists user books together with their genre and
// collection associations.
type UserBookRepository struct {
	base
}

// NewUserBookRepository creates a UserBookRepository. txGetter may be nil.
func NewUserBookRepository(db *sqlx.DB, txGetter TxGetter) *UserBookRepository {
	return &UserBookRepository{base{db: db, txGetter: txGetter}}
}

// Find returns the user books matching every present filter.
func (r *UserBookRepository) Find(ctx context.Context, filter models.UserBookFilter) ([]models.UserBook, error) {
	userBooks, err := r.find(ctx, r.executor(ctx), filter)
	if err != nil {
		return nil, wrapErr(entityUserBook, OpFind, err)
	}
	return userBooks, nil
}

func (r *UserBookRepository) find(ctx context.Context, q sqlx.QueryerContext, filter models.UserBookFilter) ([]models.UserBook, error) {
	var rows []userBookRow
	if err := selectStmt(ctx, q, &rows, buildFindUserBooksQuery(filter)); err != nil {
		return nil, err
	}
	return mapUserBookRows(rows), nil
}

// FindByID returns nil without error when the user book does not exist.
func (r *UserBookRepository) FindByID(ctx context.Context, id string) (*models.UserBook, error) {
	userBooks, err := r.Find(ctx, models.UserBookFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(userBooks) == 0 {
		return nil, nil
	}
	return &userBooks[0], nil
}

// Count returns the number of user books matching the filter. Page and
// PageSize are ignored.
func (r *UserBookRepository) Count(ctx context.Context, filter models.UserBookFilter) (int, error) {
	var raw sql.NullString
	if err := getStmt(ctx, r.executor(ctx), &raw, buildCountUserBooksQuery(filter)); err != nil {
		return 0, wrapErr(entityUserBook, OpCount, err)
	}

	if !raw.Valid {
		return 0, &RepositoryError{
			Entity:    entityUserBook,
			Operation: OpCount,
			Reason:    "count returned no value",
			Err:       ErrAggregationAnomaly,
		}
	}

	count, err := strconv.Atoi(strings.TrimSpace(raw.String))
	if err != nil {
		return 0, &RepositoryError{
			Entity:    entityUserBook,
			Operation: OpCount,
			Reason:    fmt.Sprintf("count returned %q", raw.String),
			Err:       errors.Join(ErrAggregationAnomaly, err),
		}
	}
	return count, nil
}

// Create inserts the user book and its bridge rows in one transaction and
// returns the re-read aggregate.
func (r *UserBookRepository) Create(ctx context.Context, in models.CreateUserBook) (*models.UserBook, error) {
	id := uuid.NewString()

	err := r.inTx(ctx, func(tx sqlx.ExtContext) error {
		insert := builder.Insert(tableUserBook).
			Cols("id", "bookshelf_id", "book_id", "status", "is_favorite", "image_url").
			Vals(goqu.Vals{id, in.BookshelfID, in.BookID, string(in.Status), in.IsFavorite, valueOrNil(in.ImageURL)}).
			Prepared(true)
		if _, err := execStmt(ctx, tx, insert); err != nil {
			return err
		}

		if err := genreBridge.insert(ctx, tx, id, in.GenreIDs); err != nil {
			return err
		}
		return collectionBridge.insert(ctx, tx, id, in.CollectionIDs)
	})
	if err != nil {
		return nil, wrapErr(entityUserBook, OpCreate, err)
	}

	return r.reload(ctx, id, OpCreate)
}

// Update writes the scalar fields and reconciles genres and collections
// against the desired sets, all in one transaction. A missing user book
// fails before any write.
func (r *UserBookRepository) Update(ctx context.Context, in models.UpdateUserBook) (*models.UserBook, error) {
	err := r.inTx(ctx, func(tx sqlx.ExtContext) error {
		existing, err := r.find(ctx, tx, models.UserBookFilter{ID: &in.ID})
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			return notFound(entityUserBook, OpUpdate, in.ID)
		}
		current := existing[0]

		update := builder.Update(tableUserBook).
			Set(goqu.Record{
				"bookshelf_id": in.BookshelfID,
				"status":       string(in.Status),
				"is_favorite":  in.IsFavorite,
				"image_url":    valueOrNil(in.ImageURL),
			}).
			Where(goqu.C("id").Eq(in.ID)).
			Prepared(true)
		if _, err := execStmt(ctx, tx, update); err != nil {
			return err
		}

		if err := genreBridge.reconcile(ctx, tx, in.ID, current.GenreIDs(), in.GenreIDs); err != nil {
			return err
		}
		return collectionBridge.reconcile(ctx, tx, in.ID, current.CollectionIDs(), in.CollectionIDs)
	})
	if err != nil {
		return nil, wrapErr(entityUserBook, OpUpdate, err)
	}

	return r.reload(ctx, in.ID, OpUpdate)
}

// Delete removes the user book; bridge rows and readings cascade.
func (r *UserBookRepository) Delete(ctx context.Context, id string) error {
	stmt := builder.Delete(tableUserBook).
		Where(goqu.C("id").Eq(id)).
		Prepared(true)

	affected, err := execStmt(ctx, r.executor(ctx), stmt)
	if err != nil {
		return wrapErr(entityUserBook, OpDelete, err)
	}
	if affected == 0 {
		return notFound(entityUserBook, OpDelete, id)
	}
	return nil
}

func (r *UserBookRepository) reload(ctx context.Context, id, operation string) (*models.UserBook, error) {
	userBook, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if userBook == nil {
		return nil, notFound(entityUserBook, operation, id)
	}
	return userBook, nil
}
