package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-book-tracker/internal/models"
)

//go:generate mockgen -source=library.go -destination=library_mock_test.go -package=handlers

// Librarian defines the shelf, collection and genre operations the handlers need.
type Librarian interface {
	Bookshelves(ctx context.Context, userID string) ([]models.Bookshelf, error)
	CreateBookshelf(ctx context.Context, userID, name string) (*models.Bookshelf, error)
	Collections(ctx context.Context, userID string) ([]models.Collection, error)
	CreateCollection(ctx context.Context, userID, name string) (*models.Collection, error)
	Genres(ctx context.Context) ([]models.Genre, error)
}

// NameRequest is the body for creating a bookshelf or collection
// swagger:model NameRequest
type NameRequest struct {
	// required: true
	// default: Summer reading
	Name string `json:"name" validate:"required,max=100"`
}

// NewListBookshelvesHandler returns an HTTP handler listing the caller's shelves.
// @Summary List bookshelves
// @Tags library
// @Produce json
// @Success 200 {array} models.Bookshelf
// @Security BearerAuth
// @Router /bookshelves [get]
func NewListBookshelvesHandler(svc Librarian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			unauthorized(w)
			return
		}

		shelves, err := svc.Bookshelves(r.Context(), uid)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, shelves)
	}
}

// NewCreateBookshelfHandler returns an HTTP handler creating a custom shelf.
// @Summary Create bookshelf
// @Tags library
// @Accept json
// @Produce json
// @Param request body handlers.NameRequest true "Bookshelf"
// @Success 201 {object} models.Bookshelf
// @Failure 400 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /bookshelves [post]
func NewCreateBookshelfHandler(svc Librarian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			unauthorized(w)
			return
		}

		var req NameRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		shelf, err := svc.CreateBookshelf(r.Context(), uid, req.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, shelf)
	}
}

// NewListCollectionsHandler returns an HTTP handler listing the caller's collections.
// @Summary List collections
// @Tags library
// @Produce json
// @Success 200 {array} models.Collection
// @Security BearerAuth
// @Router /collections [get]
func NewListCollectionsHandler(svc Librarian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			unauthorized(w)
			return
		}

		collections, err := svc.Collections(r.Context(), uid)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, collections)
	}
}

// NewCreateCollectionHandler returns an HTTP handler creating a collection.
// @Summary Create collection
// @Tags library
// @Accept json
// @Produce json
// @Param request body handlers.NameRequest true "Collection"
// @Success 201 {object} models.Collection
// @Failure 400 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /collections [post]
func NewCreateCollectionHandler(svc Librarian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			unauthorized(w)
			return
		}

		var req NameRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		collection, err := svc.CreateCollection(r.Context(), uid, req.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, collection)
	}
}

// NewListGenresHandler returns an HTTP handler listing all genres.
// @Summary List genres
// @Tags library
// @Produce json
// @Success 200 {array} models.Genre
// @Security BearerAuth
// @Router /genres [get]
func NewListGenresHandler(svc Librarian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		genres, err := svc.Genres(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, genres)
	}
}
