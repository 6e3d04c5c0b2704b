package repositories

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
)

// Table aliases of the user book read view.
const (
	aliasUserBook       = "ub"
	aliasBook           = "b"
	aliasBooksAuthors   = "ba"
	aliasAuthor         = "a"
	aliasUserBookGenres = "ubg"
	aliasGenre          = "g"
	aliasUserBookColls  = "ubc"
	aliasCollection     = "c"
	aliasReading        = "r"
	aliasBookshelf      = "bs"
	userBookCountColumn = "count"
	titleSearchWildcard = "%"
)

func col(alias, name string) exp.IdentifierExpression {
	return goqu.T(alias).Col(name)
}

// userBookColumns must match the db tags of userBookRow.
var userBookColumns = []interface{}{
	col(aliasUserBook, "id").As("user_book_id"),
	col(aliasUserBook, "image_url").As("user_book_image_url"),
	col(aliasUserBook, "status").As("status"),
	col(aliasUserBook, "is_favorite").As("is_favorite"),
	col(aliasUserBook, "bookshelf_id").As("bookshelf_id"),

	col(aliasBook, "id").As("book_id"),
	col(aliasBook, "title").As("title"),
	col(aliasBook, "isbn").As("isbn"),
	col(aliasBook, "publisher").As("publisher"),
	col(aliasBook, "release_year").As("release_year"),
	col(aliasBook, "language").As("language"),
	col(aliasBook, "translator").As("translator"),
	col(aliasBook, "format").As("format"),
	col(aliasBook, "page_count").As("page_count"),
	col(aliasBook, "is_approved").As("book_is_approved"),
	col(aliasBook, "image_url").As("book_image_url"),

	col(aliasAuthor, "id").As("author_id"),
	col(aliasAuthor, "name").As("author_name"),
	col(aliasAuthor, "is_approved").As("author_is_approved"),

	col(aliasGenre, "id").As("genre_id"),
	col(aliasGenre, "name").As("genre_name"),

	col(aliasCollection, "id").As("collection_id"),
	col(aliasCollection, "name").As("collection_name"),
	col(aliasCollection, "user_id").As("collection_user_id"),

	col(aliasReading, "id").As("reading_id"),
	col(aliasReading, "started_at").As("reading_started_at"),
	col(aliasReading, "ended_at").As("reading_ended_at"),
	col(aliasReading, "rating").As("reading_rating"),
	col(aliasReading, "comment").As("reading_comment"),
}

// filteredUserBooks returns user_book narrowed by every present filter.
// Joins are added only for the filters that need them.
func filteredUserBooks(f models.UserBookFilter) *goqu.SelectDataset {
	ds := builder.From(goqu.T(tableUserBook).As(aliasUserBook))
	where := make([]exp.Expression, 0)

	if f.ID != nil {
		where = append(where, col(aliasUserBook, "id").Eq(*f.ID))
	}
	if f.BookshelfID != nil {
		where = append(where, col(aliasUserBook, "bookshelf_id").Eq(*f.BookshelfID))
	}
	if f.BookID != nil {
		where = append(where, col(aliasUserBook, "book_id").Eq(*f.BookID))
	}
	if f.Status != nil {
		where = append(where, col(aliasUserBook, "status").Eq(string(*f.Status)))
	}
	if f.Title != nil {
		ds = ds.Join(
			goqu.T(tableBook).As(aliasBook),
			goqu.On(col(aliasBook, "id").Eq(col(aliasUserBook, "book_id"))),
		)
		where = append(where, col(aliasBook, "title").ILike(titleSearchWildcard+*f.Title+titleSearchWildcard))
	}
	if f.UserID != nil {
		// user_book has no user id; it is reached through the shelf.
		ds = ds.Join(
			goqu.T(tableBookshelf).As(aliasBookshelf),
			goqu.On(col(aliasBookshelf, "id").Eq(col(aliasUserBook, "bookshelf_id"))),
		)
		where = append(where, col(aliasBookshelf, "user_id").Eq(*f.UserID))
	}
	if f.CollectionID != nil {
		ds = ds.Join(
			goqu.T(tableUserBookCollections).As(aliasUserBookColls),
			goqu.On(col(aliasUserBookColls, "user_book_id").Eq(col(aliasUserBook, "id"))),
		)
		where = append(where, col(aliasUserBookColls, "collection_id").Eq(*f.CollectionID))
	}
	if len(f.AuthorIDs) > 0 {
		booksByAuthors := builder.From(tableBooksAuthors).
			Select(goqu.T(tableBooksAuthors).Col("book_id")).
			Where(goqu.T(tableBooksAuthors).Col("author_id").In(f.AuthorIDs))
		where = append(where, col(aliasUserBook, "book_id").In(booksByAuthors))
	}

	if len(where) > 0 {
		ds = ds.Where(where...)
	}
	return ds
}

// buildFindUserBooksQuery composes the denormalized read view. Pagination is
// applied to distinct user book ids in a subquery so a page never cuts a
// user book's joined rows apart.
func buildFindUserBooksQuery(f models.UserBookFilter) *goqu.SelectDataset {
	ids := filteredUserBooks(f).
		Select(col(aliasUserBook, "id")).
		Distinct().
		Order(col(aliasUserBook, "id").Asc())
	if f.Paginated() {
		ids = ids.
			Limit(uint(f.PageSize)).
			Offset(uint((f.Page - 1) * f.PageSize))
	}

	authorsOn := []exp.Expression{col(aliasBooksAuthors, "book_id").Eq(col(aliasBook, "id"))}
	if len(f.AuthorIDs) > 0 {
		authorsOn = append(authorsOn, col(aliasBooksAuthors, "author_id").In(f.AuthorIDs))
	}

	return builder.From(goqu.T(tableUserBook).As(aliasUserBook)).
		Select(userBookColumns...).
		Join(
			goqu.T(tableBook).As(aliasBook),
			goqu.On(col(aliasBook, "id").Eq(col(aliasUserBook, "book_id"))),
		).
		LeftJoin(
			goqu.T(tableBooksAuthors).As(aliasBooksAuthors),
			goqu.On(authorsOn...),
		).
		LeftJoin(
			goqu.T(tableAuthor).As(aliasAuthor),
			goqu.On(col(aliasAuthor, "id").Eq(col(aliasBooksAuthors, "author_id"))),
		).
		LeftJoin(
			goqu.T(tableUserBookGenres).As(aliasUserBookGenres),
			goqu.On(col(aliasUserBookGenres, "user_book_id").Eq(col(aliasUserBook, "id"))),
		).
		LeftJoin(
			goqu.T(tableGenre).As(aliasGenre),
			goqu.On(col(aliasGenre, "id").Eq(col(aliasUserBookGenres, "genre_id"))),
		).
		LeftJoin(
			goqu.T(tableUserBookCollections).As(aliasUserBookColls),
			goqu.On(col(aliasUserBookColls, "user_book_id").Eq(col(aliasUserBook, "id"))),
		).
		LeftJoin(
			goqu.T(tableCollection).As(aliasCollection),
			goqu.On(col(aliasCollection, "id").Eq(col(aliasUserBookColls, "collection_id"))),
		).
		LeftJoin(
			goqu.T(tableBookReading).As(aliasReading),
			goqu.On(col(aliasReading, "user_book_id").Eq(col(aliasUserBook, "id"))),
		).
		Where(col(aliasUserBook, "id").In(ids)).
		Order(
			col(aliasUserBook, "id").Asc(),
			col(aliasAuthor, "name").Asc(),
			col(aliasGenre, "name").Asc(),
			col(aliasCollection, "name").Asc(),
			col(aliasReading, "started_at").Asc().NullsLast(),
		).
		Prepared(true)
}

// buildCountUserBooksQuery mirrors the find predicates without the read view joins.
func buildCountUserBooksQuery(f models.UserBookFilter) *goqu.SelectDataset {
	return filteredUserBooks(f).
		Select(goqu.COUNT(goqu.DISTINCT(col(aliasUserBook, "id"))).As(userBookCountColumn)).
		Prepared(true)
}
