package models

import "time"

// Change request statuses
const (
	ChangeRequestPending  = "pending"
	ChangeRequestApproved = "approved"
	ChangeRequestDenied   = "denied"
)

// BookChanges holds proposed catalog values. Nil means "no change".
type BookChanges struct {
	Title       *string `json:"title,omitempty" db:"title"`
	ISBN        *string `json:"isbn,omitempty" db:"isbn"`
	Publisher   *string `json:"publisher,omitempty" db:"publisher"`
	ReleaseYear *int    `json:"releaseYear,omitempty" db:"release_year"`
	Language    *string `json:"language,omitempty" db:"language"`
	Translator  *string `json:"translator,omitempty" db:"translator"`
	Format      *string `json:"format,omitempty" db:"format"`
	PageCount   *int    `json:"pageCount,omitempty" db:"page_count"`
	ImageURL    *string `json:"imageUrl,omitempty" db:"image_url"`
}

// Diff keeps only the proposed values that differ from the current book.
func (c BookChanges) Diff(current Book) BookChanges {
	var d BookChanges
	if c.Title != nil && *c.Title != current.Title {
		d.Title = c.Title
	}
	d.ISBN = diffString(c.ISBN, current.ISBN)
	d.Publisher = diffString(c.Publisher, current.Publisher)
	d.ReleaseYear = diffInt(c.ReleaseYear, current.ReleaseYear)
	d.Language = diffString(c.Language, current.Language)
	d.Translator = diffString(c.Translator, current.Translator)
	d.Format = diffString(c.Format, current.Format)
	d.PageCount = diffInt(c.PageCount, current.PageCount)
	d.ImageURL = diffString(c.ImageURL, current.ImageURL)
	return d
}

// IsEmpty reports whether no field is proposed.
func (c BookChanges) IsEmpty() bool {
	return c == BookChanges{}
}

func diffString(proposed, current *string) *string {
	if proposed == nil {
		return nil
	}
	if current != nil && *current == *proposed {
		return nil
	}
	return proposed
}

func diffInt(proposed, current *int) *int {
	if proposed == nil {
		return nil
	}
	if current != nil && *current == *proposed {
		return nil
	}
	return proposed
}

// BookChangeRequest is a user-submitted diff against a catalog book awaiting moderation.
type BookChangeRequest struct {
	ID          string    `json:"id" db:"id"`
	BookID      string    `json:"bookId" db:"book_id"`
	UserID      string    `json:"userId" db:"user_id"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	BookChanges `json:"changes"`
}
