package models

// Book is a catalog-level bibliographic record shared across users.
type Book struct {
	ID          string   `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	ISBN        *string  `json:"isbn,omitempty" db:"isbn"`
	Publisher   *string  `json:"publisher,omitempty" db:"publisher"`
	ReleaseYear *int     `json:"releaseYear,omitempty" db:"release_year"`
	Language    *string  `json:"language,omitempty" db:"language"`
	Translator  *string  `json:"translator,omitempty" db:"translator"`
	Format      *string  `json:"format,omitempty" db:"format"`
	PageCount   *int     `json:"pageCount,omitempty" db:"page_count"`
	IsApproved  bool     `json:"isApproved" db:"is_approved"`
	ImageURL    *string  `json:"imageUrl,omitempty" db:"image_url"`
	Authors     []Author `json:"authors" db:"-"`
}

// Author is a catalog author linked to books through books_authors.
type Author struct {
	ID         string `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	IsApproved bool   `json:"isApproved" db:"is_approved"`
}

// BookFilter narrows catalog searches.
type BookFilter struct {
	Title    *string
	Page     int
	PageSize int
}
