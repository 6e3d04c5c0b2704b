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

const entityReading = "Reading"

var readingColumns = []interface{}{"id", "user_book_id", "started_at", "ended_at", "rating", "comment"}

// ReadingRepository stores read-throughs of user books.
type ReadingRepository struct {
	base
}

func NewReadingRepository(db *sqlx.DB, txGetter TxGetter) *ReadingRepository {
	return &ReadingRepository{base{db: db, txGetter: txGetter}}
}

// Save inserts the reading or overwrites it when the id already exists.
// An empty id gets a new one.
func (r *ReadingRepository) Save(ctx context.Context, reading models.Reading) (*models.Reading, error) {
	if reading.ID == "" {
		reading.ID = uuid.NewString()
	}

	stmt := builder.Insert(tableBookReading).
		Cols(readingColumns...).
		Vals(goqu.Vals{
			reading.ID,
			reading.UserBookID,
			valueOrNil(reading.StartedAt),
			valueOrNil(reading.EndedAt),
			valueOrNil(reading.Rating),
			valueOrNil(reading.Comment),
		}).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"started_at": goqu.L("EXCLUDED.started_at"),
			"ended_at":   goqu.L("EXCLUDED.ended_at"),
			"rating":     goqu.L("EXCLUDED.rating"),
			"comment":    goqu.L("EXCLUDED.comment"),
		}).Where(goqu.T(tableBookReading).Col("user_book_id").Eq(reading.UserBookID))).
		Returning(readingColumns...).
		Prepared(true)

	// A conflicting id owned by another user book updates nothing.
	var saved models.Reading
	err := getStmt(ctx, r.executor(ctx), &saved, stmt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(entityReading, OpSave, reading.ID)
	}
	if err != nil {
		return nil, wrapErr(entityReading, OpSave, err)
	}
	return &saved, nil
}

// Delete removes a reading of the given user book.
func (r *ReadingRepository) Delete(ctx context.Context, userBookID, readingID string) error {
	stmt := builder.Delete(tableBookReading).
		Where(
			goqu.C("id").Eq(readingID),
			goqu.C("user_book_id").Eq(userBookID),
		).
		Prepared(true)

	affected, err := execStmt(ctx, r.executor(ctx), stmt)
	if err != nil {
		return wrapErr(entityReading, OpDelete, err)
	}
	if affected == 0 {
		return notFound(entityReading, OpDelete, readingID)
	}
	return nil
}
