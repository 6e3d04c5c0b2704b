package repositories

import (
	"database/sql"
	"time"

	"github.com/sbilibin2017/gw-book-tracker/internal/models"
)

// userBookRow is one row of the read view: a user book crossed with one
// author, genre, collection and reading. Join columns are NULL when the
// relation is empty.
type userBookRow struct {
	UserBookID       string         `db:"user_book_id"`
	UserBookImageURL sql.NullString `db:"user_book_image_url"`
	Status           string         `db:"status"`
	IsFavorite       bool           `db:"is_favorite"`
	BookshelfID      string         `db:"bookshelf_id"`

	BookID         string         `db:"book_id"`
	Title          string         `db:"title"`
	ISBN           sql.NullString `db:"isbn"`
	Publisher      sql.NullString `db:"publisher"`
	ReleaseYear    sql.NullInt64  `db:"release_year"`
	Language       sql.NullString `db:"language"`
	Translator     sql.NullString `db:"translator"`
	Format         sql.NullString `db:"format"`
	PageCount      sql.NullInt64  `db:"page_count"`
	BookIsApproved bool           `db:"book_is_approved"`
	BookImageURL   sql.NullString `db:"book_image_url"`

	AuthorID         sql.NullString `db:"author_id"`
	AuthorName       sql.NullString `db:"author_name"`
	AuthorIsApproved sql.NullBool   `db:"author_is_approved"`

	GenreID   sql.NullString `db:"genre_id"`
	GenreName sql.NullString `db:"genre_name"`

	CollectionID     sql.NullString `db:"collection_id"`
	CollectionName   sql.NullString `db:"collection_name"`
	CollectionUserID sql.NullString `db:"collection_user_id"`

	ReadingID        sql.NullString `db:"reading_id"`
	ReadingStartedAt sql.NullTime   `db:"reading_started_at"`
	ReadingEndedAt   sql.NullTime   `db:"reading_ended_at"`
	ReadingRating    sql.NullInt64  `db:"reading_rating"`
	ReadingComment   sql.NullString `db:"reading_comment"`
}

type userBookAggregate struct {
	userBook    models.UserBook
	authors     map[string]struct{}
	genres      map[string]struct{}
	collections map[string]struct{}
	readings    map[string]struct{}
}

func newUserBookAggregate(row userBookRow) *userBookAggregate {
	return &userBookAggregate{
		userBook: models.UserBook{
			ID:          row.UserBookID,
			BookshelfID: row.BookshelfID,
			Status:      models.UserBookStatus(row.Status),
			IsFavorite:  row.IsFavorite,
			ImageURL:    nullString(row.UserBookImageURL),
			Book: models.Book{
				ID:          row.BookID,
				Title:       row.Title,
				ISBN:        nullString(row.ISBN),
				Publisher:   nullString(row.Publisher),
				ReleaseYear: nullInt(row.ReleaseYear),
				Language:    nullString(row.Language),
				Translator:  nullString(row.Translator),
				Format:      nullString(row.Format),
				PageCount:   nullInt(row.PageCount),
				IsApproved:  row.BookIsApproved,
				ImageURL:    nullString(row.BookImageURL),
				Authors:     []models.Author{},
			},
			Genres:      []models.Genre{},
			Collections: []models.Collection{},
			Readings:    []models.Reading{},
		},
		authors:     make(map[string]struct{}),
		genres:      make(map[string]struct{}),
		collections: make(map[string]struct{}),
		readings:    make(map[string]struct{}),
	}
}

func (a *userBookAggregate) fold(row userBookRow) {
	ub := &a.userBook

	if row.AuthorID.Valid && !seen(a.authors, row.AuthorID.String) {
		ub.Book.Authors = append(ub.Book.Authors, models.Author{
			ID:         row.AuthorID.String,
			Name:       row.AuthorName.String,
			IsApproved: row.AuthorIsApproved.Bool,
		})
	}
	if row.GenreID.Valid && !seen(a.genres, row.GenreID.String) {
		ub.Genres = append(ub.Genres, models.Genre{
			ID:   row.GenreID.String,
			Name: row.GenreName.String,
		})
	}
	if row.CollectionID.Valid && !seen(a.collections, row.CollectionID.String) {
		ub.Collections = append(ub.Collections, models.Collection{
			ID:     row.CollectionID.String,
			Name:   row.CollectionName.String,
			UserID: row.CollectionUserID.String,
		})
	}
	if row.ReadingID.Valid && !seen(a.readings, row.ReadingID.String) {
		ub.Readings = append(ub.Readings, models.Reading{
			ID:         row.ReadingID.String,
			UserBookID: row.UserBookID,
			StartedAt:  nullTime(row.ReadingStartedAt),
			EndedAt:    nullTime(row.ReadingEndedAt),
			Rating:     nullInt(row.ReadingRating),
			Comment:    nullString(row.ReadingComment),
		})
	}
}

// mapUserBookRows folds the exploded read view back into one aggregate per
// user book id, keeping the order in which ids first appear.
func mapUserBookRows(rows []userBookRow) []models.UserBook {
	order := make([]*userBookAggregate, 0)
	byID := make(map[string]*userBookAggregate)

	for _, row := range rows {
		agg, ok := byID[row.UserBookID]
		if !ok {
			agg = newUserBookAggregate(row)
			byID[row.UserBookID] = agg
			order = append(order, agg)
		}
		agg.fold(row)
	}

	result := make([]models.UserBook, 0, len(order))
	for _, agg := range order {
		result = append(result, agg.userBook)
	}
	return result
}

// seen reports whether id was already in set and records it.
func seen(set map[string]struct{}, id string) bool {
	if _, ok := set[id]; ok {
		return true
	}
	set[id] = struct{}{}
	return false
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}
