package repositories

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

const dialectPostgres = "postgres"

var builder = goqu.Dialect(dialectPostgres)

// Storage names of the persisted tables.
const (
	tableUsers               = "users"
	tableBookshelf           = "bookshelf"
	tableBook                = "book"
	tableAuthor              = "author"
	tableBooksAuthors        = "books_authors"
	tableGenre               = "genre"
	tableCollection          = "collection"
	tableUserBook            = "user_book"
	tableUserBookGenres      = "user_book_genres"
	tableUserBookCollections = "user_book_collections"
	tableBookReading         = "book_reading"
	tableBookChangeRequest   = "book_change_request"
)

// valueOrNil turns an optional field into a goqu value, nil rendering as NULL.
func valueOrNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
