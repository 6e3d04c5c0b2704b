package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
)

const entityBookChangeRequest = "BookChangeRequest"

var changeRequestColumns = []interface{}{
	"id", "book_id", "user_id", "status", "created_at",
	"title", "isbn", "publisher", "release_year", "language",
	"translator", "format", "page_count", "image_url",
}

// ChangeRequestRepository stores proposed catalog edits.
type ChangeRequestRepository struct {
	base
}

func NewChangeRequestRepository(db *sqlx.DB, txGetter TxGetter) *ChangeRequestRepository {
	return &ChangeRequestRepository{base{db: db, txGetter: txGetter}}
}

// Create stores a pending request carrying only the given changes.
func (r *ChangeRequestRepository) Create(ctx context.Context, bookID, userID string, changes models.BookChanges) (*models.BookChangeRequest, error) {
	request := models.BookChangeRequest{
		ID:          uuid.NewString(),
		BookID:      bookID,
		UserID:      userID,
		Status:      models.ChangeRequestPending,
		CreatedAt:   time.Now().UTC(),
		BookChanges: changes,
	}

	record := changesRecord(changes)
	record["id"] = request.ID
	record["book_id"] = request.BookID
	record["user_id"] = request.UserID
	record["status"] = request.Status
	record["created_at"] = request.CreatedAt

	stmt := builder.Insert(tableBookChangeRequest).
		Rows(record).
		Prepared(true)
	if _, err := execStmt(ctx, r.executor(ctx), stmt); err != nil {
		return nil, wrapErr(entityBookChangeRequest, OpCreate, err)
	}
	return &request, nil
}

// FindByID returns nil without error when the request does not exist.
func (r *ChangeRequestRepository) FindByID(ctx context.Context, id string) (*models.BookChangeRequest, error) {
	stmt := builder.From(tableBookChangeRequest).
		Select(changeRequestColumns...).
		Where(goqu.C("id").Eq(id)).
		Prepared(true)

	var request models.BookChangeRequest
	err := getStmt(ctx, r.executor(ctx), &request, stmt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(entityBookChangeRequest, OpFind, err)
	}
	return &request, nil
}

// FindByStatus lists requests in the given status, oldest first.
func (r *ChangeRequestRepository) FindByStatus(ctx context.Context, status string) ([]models.BookChangeRequest, error) {
	stmt := builder.From(tableBookChangeRequest).
		Select(changeRequestColumns...).
		Where(goqu.C("status").Eq(status)).
		Order(goqu.C("created_at").Asc()).
		Prepared(true)

	requests := make([]models.BookChangeRequest, 0)
	if err := selectStmt(ctx, r.executor(ctx), &requests, stmt); err != nil {
		return nil, wrapErr(entityBookChangeRequest, OpFind, err)
	}
	return requests, nil
}

// SetStatus moves a request from pending to status. A request that is no
// longer pending is reported as not found.
func (r *ChangeRequestRepository) SetStatus(ctx context.Context, id, status string) error {
	stmt := builder.Update(tableBookChangeRequest).
		Set(goqu.Record{"status": status}).
		Where(
			goqu.C("id").Eq(id),
			goqu.C("status").Eq(models.ChangeRequestPending),
		).
		Prepared(true)

	affected, err := execStmt(ctx, r.executor(ctx), stmt)
	if err != nil {
		return wrapErr(entityBookChangeRequest, OpUpdate, err)
	}
	if affected == 0 {
		return notFound(entityBookChangeRequest, OpUpdate, id)
	}
	return nil
}
