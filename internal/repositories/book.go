package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
)

const entityBook = "Book"

var bookColumns = []interface{}{
	"id", "title", "isbn", "publisher", "release_year", "language",
	"translator", "format", "page_count", "is_approved", "image_url",
}

type bookAuthorRow struct {
	BookID string `db:"book_id"`
	models.Author
}

// BookRepository reads and edits the shared catalog.
type BookRepository struct {
	base
}

func NewBookRepository(db *sqlx.DB, txGetter TxGetter) *BookRepository {
	return &BookRepository{base{db: db, txGetter: txGetter}}
}

// FindByID returns nil without error when the book does not exist.
func (r *BookRepository) FindByID(ctx context.Context, id string) (*models.Book, error) {
	stmt := builder.From(tableBook).
		Select(bookColumns...).
		Where(goqu.C("id").Eq(id)).
		Prepared(true)

	var book models.Book
	err := getStmt(ctx, r.executor(ctx), &book, stmt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(entityBook, OpFind, err)
	}

	books := []models.Book{book}
	if err := r.attachAuthors(ctx, books); err != nil {
		return nil, wrapErr(entityBook, OpFind, err)
	}
	return &books[0], nil
}

// Search lists catalog books by case-insensitive title match.
func (r *BookRepository) Search(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	stmt := builder.From(tableBook).
		Select(bookColumns...).
		Order(goqu.C("title").Asc(), goqu.C("id").Asc())
	if filter.Title != nil {
		stmt = stmt.Where(goqu.C("title").ILike(titleSearchWildcard + *filter.Title + titleSearchWildcard))
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		stmt = stmt.Limit(uint(filter.PageSize)).Offset(uint((filter.Page - 1) * filter.PageSize))
	}

	books := make([]models.Book, 0)
	if err := selectStmt(ctx, r.executor(ctx), &books, stmt.Prepared(true)); err != nil {
		return nil, wrapErr(entityBook, OpFind, err)
	}
	if err := r.attachAuthors(ctx, books); err != nil {
		return nil, wrapErr(entityBook, OpFind, err)
	}
	return books, nil
}

func (r *BookRepository) attachAuthors(ctx context.Context, books []models.Book) error {
	if len(books) == 0 {
		return nil
	}

	ids := make([]string, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}

	stmt := builder.From(goqu.T(tableAuthor).As(aliasAuthor)).
		Select(
			col(aliasBooksAuthors, "book_id").As("book_id"),
			col(aliasAuthor, "id").As("id"),
			col(aliasAuthor, "name").As("name"),
			col(aliasAuthor, "is_approved").As("is_approved"),
		).
		Join(
			goqu.T(tableBooksAuthors).As(aliasBooksAuthors),
			goqu.On(col(aliasBooksAuthors, "author_id").Eq(col(aliasAuthor, "id"))),
		).
		Where(col(aliasBooksAuthors, "book_id").In(ids)).
		Order(col(aliasAuthor, "name").Asc()).
		Prepared(true)

	var rows []bookAuthorRow
	if err := selectStmt(ctx, r.executor(ctx), &rows, stmt); err != nil {
		return err
	}

	byBook := make(map[string][]models.Author, len(books))
	for _, row := range rows {
		byBook[row.BookID] = append(byBook[row.BookID], row.Author)
	}
	for i := range books {
		books[i].Authors = byBook[books[i].ID]
		if books[i].Authors == nil {
			books[i].Authors = []models.Author{}
		}
	}
	return nil
}

// ApplyChanges writes every proposed field onto the book.
func (r *BookRepository) ApplyChanges(ctx context.Context, bookID string, changes models.BookChanges) error {
	record := changesRecord(changes)
	if len(record) == 0 {
		return nil
	}

	stmt := builder.Update(tableBook).
		Set(record).
		Where(goqu.C("id").Eq(bookID)).
		Prepared(true)

	affected, err := execStmt(ctx, r.executor(ctx), stmt)
	if err != nil {
		return wrapErr(entityBook, OpUpdate, err)
	}
	if affected == 0 {
		return notFound(entityBook, OpUpdate, bookID)
	}
	return nil
}

func changesRecord(c models.BookChanges) goqu.Record {
	record := goqu.Record{}
	set := func(column string, v any) {
		if v != nil {
			record[column] = v
		}
	}
	set("title", valueOrNil(c.Title))
	set("isbn", valueOrNil(c.ISBN))
	set("publisher", valueOrNil(c.Publisher))
	set("release_year", valueOrNil(c.ReleaseYear))
	set("language", valueOrNil(c.Language))
	set("translator", valueOrNil(c.Translator))
	set("format", valueOrNil(c.Format))
	set("page_count", valueOrNil(c.PageCount))
	set("image_url", valueOrNil(c.ImageURL))
	return record
}
