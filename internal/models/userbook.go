package models

import "time"

// UserBookStatus is the reading status of a tracked book.
type UserBookStatus string

// Reading statuses
const (
	StatusToRead     UserBookStatus = "toRead"
	StatusInProgress UserBookStatus = "inProgress"
	StatusFinished   UserBookStatus = "finished"
)

// Valid reports whether s is a known status.
func (s UserBookStatus) Valid() bool {
	switch s {
	case StatusToRead, StatusInProgress, StatusFinished:
		return true
	}
	return false
}

// UserBook is a user's tracked instance of a catalog Book.
type UserBook struct {
	ID          string         `json:"id"`
	BookshelfID string         `json:"bookshelfId"`
	Status      UserBookStatus `json:"status"`
	IsFavorite  bool           `json:"isFavorite"`
	ImageURL    *string        `json:"imageUrl,omitempty"`
	Book        Book           `json:"book"`
	Genres      []Genre        `json:"genres"`
	Collections []Collection   `json:"collections"`
	Readings    []Reading      `json:"readings"`
}

// GenreIDs returns the ids of the attached genres in order.
func (ub UserBook) GenreIDs() []string {
	ids := make([]string, 0, len(ub.Genres))
	for _, g := range ub.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

// CollectionIDs returns the ids of the attached collections in order.
func (ub UserBook) CollectionIDs() []string {
	ids := make([]string, 0, len(ub.Collections))
	for _, c := range ub.Collections {
		ids = append(ids, c.ID)
	}
	return ids
}

// Reading is a single read-through of a user book.
type Reading struct {
	ID         string     `json:"id" db:"id"`
	UserBookID string     `json:"userBookId" db:"user_book_id"`
	StartedAt  *time.Time `json:"startedAt,omitempty" db:"started_at"`
	EndedAt    *time.Time `json:"endedAt,omitempty" db:"ended_at"`
	Rating     *int       `json:"rating,omitempty" db:"rating"`
	Comment    *string    `json:"comment,omitempty" db:"comment"`
}

// UserBookFilter holds optional, ANDed predicates for user book lookups.
// Nil fields are not applied.
type UserBookFilter struct {
	ID           *string
	Title        *string
	BookshelfID  *string
	BookID       *string
	UserID       *string
	CollectionID *string
	Status       *UserBookStatus
	AuthorIDs    []string
	Page         int
	PageSize     int
}

// Paginated reports whether both page and page size are set.
func (f UserBookFilter) Paginated() bool {
	return f.Page > 0 && f.PageSize > 0
}

// CreateUserBook is the payload for adding a catalog book to a shelf.
type CreateUserBook struct {
	BookshelfID   string
	BookID        string
	Status        UserBookStatus
	IsFavorite    bool
	ImageURL      *string
	GenreIDs      []string
	CollectionIDs []string
}

// UpdateUserBook is the payload for changing an existing user book.
// GenreIDs and CollectionIDs are the complete desired sets.
type UpdateUserBook struct {
	ID            string
	BookshelfID   string
	Status        UserBookStatus
	IsFavorite    bool
	ImageURL      *string
	GenreIDs      []string
	CollectionIDs []string
}

// UserBookPage is one page of user books with the total match count.
type UserBookPage struct {
	Items []UserBook `json:"items"`
	Total int        `json:"total"`
}
