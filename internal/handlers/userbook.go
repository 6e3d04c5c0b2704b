package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-book-tracker/internal/models"
)

//go:generate mockgen -source=userbook.go -destination=userbook_mock_test.go -package=handlers

// UserBookManager defines the user book operations the handlers need.
type UserBookManager interface {
	List(ctx context.Context, userID string, filter models.UserBookFilter) (*models.UserBookPage, error)
	Get(ctx context.Context, userID, id string) (*models.UserBook, error)
	Create(ctx context.Context, userID string, in models.CreateUserBook) (*models.UserBook, error)
	Update(ctx context.Context, userID string, in models.UpdateUserBook) (*models.UserBook, error)
	Delete(ctx context.Context, userID, id string) error
}

// UserBookQuery lists the accepted query parameters of the user book list
// swagger:model UserBookQuery
type UserBookQuery struct {
	Title        string   `json:"title" validate:"max=500"`
	BookshelfID  string   `json:"bookshelfId" validate:"omitempty,uuid"`
	BookID       string   `json:"bookId" validate:"omitempty,uuid"`
	CollectionID string   `json:"collectionId" validate:"omitempty,uuid"`
	Status       string   `json:"status" validate:"omitempty,oneof=toRead inProgress finished"`
	AuthorIDs    []string `json:"authorIds" validate:"dive,uuid"`
	Page         int      `json:"page" validate:"gte=0"`
	PageSize     int      `json:"pageSize" validate:"gte=0,lte=100"`
}

// CreateUserBookRequest adds a catalog book to a shelf
// swagger:model CreateUserBookRequest
type CreateUserBookRequest struct {
	BookshelfID   string                `json:"bookshelfId" validate:"required,uuid"`
	BookID        string                `json:"bookId" validate:"required,uuid"`
	Status        models.UserBookStatus `json:"status" validate:"required,oneof=toRead inProgress finished"`
	IsFavorite    bool                  `json:"isFavorite"`
	ImageURL      *string               `json:"imageUrl" validate:"omitempty,url"`
	GenreIDs      []string              `json:"genreIds" validate:"dive,uuid"`
	CollectionIDs []string              `json:"collectionIds" validate:"dive,uuid"`
}

// UpdateUserBookRequest replaces a user book's fields. The id lists are the
// complete desired sets.
// swagger:model UpdateUserBookRequest
type UpdateUserBookRequest struct {
	BookshelfID   string                `json:"bookshelfId" validate:"required,uuid"`
	Status        models.UserBookStatus `json:"status" validate:"required,oneof=toRead inProgress finished"`
	IsFavorite    bool                  `json:"isFavorite"`
	ImageURL      *string               `json:"imageUrl" validate:"omitempty,url"`
	GenreIDs      []string              `json:"genreIds" validate:"dive,uuid"`
	CollectionIDs []string              `json:"collectionIds" validate:"dive,uuid"`
}

func parseUserBookQuery(r *http.Request) (models.UserBookFilter, error) {
	q := r.URL.Query()
	query := UserBookQuery{
		Title:        q.Get("title"),
		BookshelfID:  q.Get("bookshelfId"),
		BookID:       q.Get("bookId"),
		CollectionID: q.Get("collectionId"),
		Status:       q.Get("status"),
	}
	if raw := q.Get("authorIds"); raw != "" {
		query.AuthorIDs = strings.Split(raw, ",")
	}

	var err error
	if query.Page, err = queryInt(r, "page"); err != nil {
		return models.UserBookFilter{}, err
	}
	if query.PageSize, err = queryInt(r, "pageSize"); err != nil {
		return models.UserBookFilter{}, err
	}
	if err := validate.Validate(query); err != nil {
		return models.UserBookFilter{}, err
	}

	filter := models.UserBookFilter{
		Title:        optional(query.Title),
		BookshelfID:  optional(query.BookshelfID),
		BookID:       optional(query.BookID),
		CollectionID: optional(query.CollectionID),
		AuthorIDs:    query.AuthorIDs,
		Page:         query.Page,
		PageSize:     query.PageSize,
	}
	if query.Status != "" {
		status := models.UserBookStatus(query.Status)
		filter.Status = &status
	}
	return filter, nil
}

// NewListUserBooksHandler returns an HTTP handler listing the caller's books.
// @Summary List user books
// @Description Returns one page of the caller's books with the total number of matches. Filters are ANDed.
// @Tags user-books
// @Produce json
// @Param title query string false "Case-insensitive title substring"
// @Param bookshelfId query string false "Bookshelf id"
// @Param bookId query string false "Catalog book id"
// @Param collectionId query string false "Collection id"
// @Param status query string false "toRead, inProgress or finished"
// @Param authorIds query string false "Comma separated author ids"
// @Param page query int false "1-based page"
// @Param pageSize query int false "Page size, at most 100"
// @Success 200 {object} models.UserBookPage
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /user-books [get]
func NewListUserBooksHandler(svc UserBookManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			unauthorized(w)
			return
		}

		filter, err := parseUserBookQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}

		page, err := svc.List(r.Context(), uid, filter)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// NewGetUserBookHandler returns an HTTP handler for one of the caller's books.
// @Summary Get user book
// @Tags user-books
// @Produce json
// @Param id path string true "User book id"
// @Success 200 {object} models.UserBook
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /user-books/{id} [get]
func NewGetUserBookHandler(svc UserBookManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			unauthorized(w)
			return
		}
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		userBook, err := svc.Get(r.Context(), uid, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, userBook)
	}
}

// NewCreateUserBookHandler returns an HTTP handler adding a book to a shelf.
// @Summary Create user book
// @Tags user-books
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserBookRequest true "User book"
// @Success 201 {object} models.UserBook
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse "Bookshelf or collection of another user"
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /user-books [post]
func NewCreateUserBookHandler(svc UserBookManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			unauthorized(w)
			return
		}

		var req CreateUserBookRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		userBook, err := svc.Create(r.Context(), uid, models.CreateUserBook{
			BookshelfID:   req.BookshelfID,
			BookID:        req.BookID,
			Status:        req.Status,
			IsFavorite:    req.IsFavorite,
			ImageURL:      req.ImageURL,
			GenreIDs:      req.GenreIDs,
			CollectionIDs: req.CollectionIDs,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, userBook)
	}
}

// NewUpdateUserBookHandler returns an HTTP handler replacing a user book.
// @Summary Update user book
// @Description Genres and collections are reconciled to exactly the given sets.
// @Tags user-books
// @Accept json
// @Produce json
// @Param id path string true "User book id"
// @Param request body handlers.UpdateUserBookRequest true "User book"
// @Success 200 {object} models.UserBook
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /user-books/{id} [put]
func NewUpdateUserBookHandler(svc UserBookManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			unauthorized(w)
			return
		}
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		var req UpdateUserBookRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		userBook, err := svc.Update(r.Context(), uid, models.UpdateUserBook{
			ID:            id,
			BookshelfID:   req.BookshelfID,
			Status:        req.Status,
			IsFavorite:    req.IsFavorite,
			ImageURL:      req.ImageURL,
			GenreIDs:      req.GenreIDs,
			CollectionIDs: req.CollectionIDs,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, userBook)
	}
}

// NewDeleteUserBookHandler returns an HTTP handler removing a user book.
// @Summary Delete user book
// @Tags user-books
// @Param id path string true "User book id"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /user-books/{id} [delete]
func NewDeleteUserBookHandler(svc UserBookManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			unauthorized(w)
			return
		}
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), uid, id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
