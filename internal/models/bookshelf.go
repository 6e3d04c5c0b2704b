package models

// Bookshelf types
const (
	BookshelfDefault = "default"
	BookshelfCustom  = "custom"
)

// Bookshelf groups user books and carries the owning user.
type Bookshelf struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"userId" db:"user_id"`
	Name   string `json:"name" db:"name"`
	Type   string `json:"type" db:"type"`
}

// Genre is a tag that can be attached to user books.
type Genre struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Collection is a user-owned tag that can be attached to user books.
type Collection struct {
	ID     string `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	UserID string `json:"userId" db:"user_id"`
}

// DefaultBookshelfNames are created for every new user.
var DefaultBookshelfNames = []string{"Want to read", "Reading", "Read"}
