package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-book-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
)

//go:generate mockgen -source=catalog.go -destination=catalog_mock_test.go -package=handlers

// Cataloger defines the catalog and moderation operations the handlers need.
type Cataloger interface {
	GetBook(ctx context.Context, id string) (*models.Book, error)
	SearchBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
	SubmitChange(ctx context.Context, userID, bookID string, proposed models.BookChanges) (*models.BookChangeRequest, error)
	ChangeRequests(ctx context.Context, status string) ([]models.BookChangeRequest, error)
	Approve(ctx context.Context, moderatorID, id string) (*models.BookChangeRequest, error)
	Deny(ctx context.Context, moderatorID, id string) (*models.BookChangeRequest, error)
}

// ChangeRequestBody proposes new catalog values. Omitted fields are left as they are.
// swagger:model ChangeRequestBody
type ChangeRequestBody struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=500"`
	ISBN        *string `json:"isbn" validate:"omitempty,max=32"`
	Publisher   *string `json:"publisher" validate:"omitempty,max=255"`
	ReleaseYear *int    `json:"releaseYear" validate:"omitempty,gte=0,lte=9999"`
	Language    *string `json:"language" validate:"omitempty,max=64"`
	Translator  *string `json:"translator" validate:"omitempty,max=255"`
	Format      *string `json:"format" validate:"omitempty,max=32"`
	PageCount   *int    `json:"pageCount" validate:"omitempty,gte=1"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
}

// NewSearchBooksHandler returns an HTTP handler searching the catalog.
// @Summary Search books
// @Tags catalog
// @Produce json
// @Param title query string false "Case-insensitive title substring"
// @Param page query int false "1-based page"
// @Param pageSize query int false "Page size"
// @Success 200 {array} models.Book
// @Security BearerAuth
// @Router /books [get]
func NewSearchBooksHandler(svc Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := queryInt(r, "page")
		if err != nil {
			writeError(w, err)
			return
		}
		pageSize, err := queryInt(r, "pageSize")
		if err != nil {
			writeError(w, err)
			return
		}

		books, err := svc.SearchBooks(r.Context(), models.BookFilter{
			Title:    optional(r.URL.Query().Get("title")),
			Page:     page,
			PageSize: pageSize,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, books)
	}
}

// NewGetBookHandler returns an HTTP handler for one catalog book.
// @Summary Get book
// @Tags catalog
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} models.Book
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /books/{id} [get]
func NewGetBookHandler(svc Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		book, err := svc.GetBook(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, book)
	}
}

// NewSubmitChangeRequestHandler returns an HTTP handler proposing a catalog edit.
// @Summary Propose book changes
// @Description Stores a pending change request holding only the fields that differ from the current book.
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Book id"
// @Param request body handlers.ChangeRequestBody true "Proposed values"
// @Success 201 {object} models.BookChangeRequest
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or nothing changed"
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /books/{id}/change-requests [post]
func NewSubmitChangeRequestHandler(svc Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			unauthorized(w)
			return
		}
		bookID, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		var req ChangeRequestBody
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		request, err := svc.SubmitChange(r.Context(), uid, bookID, models.BookChanges(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, request)
	}
}

// NewListChangeRequestsHandler returns an HTTP handler listing change requests.
// @Summary List change requests
// @Tags moderation
// @Produce json
// @Param status query string false "pending (default), approved or denied"
// @Success 200 {array} models.BookChangeRequest
// @Failure 403 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /change-requests [get]
func NewListChangeRequestsHandler(svc Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		if status == "" {
			status = models.ChangeRequestPending
		}
		if err := validate.Var(status, "oneof=pending approved denied"); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:  "Invalid request",
				Fields: map[string]string{"status": "must be one of: pending approved denied"},
			})
			return
		}

		requests, err := svc.ChangeRequests(r.Context(), status)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, requests)
	}
}

type moderateFunc func(ctx context.Context, moderatorID, id string) (*models.BookChangeRequest, error)

func moderate(fn moderateFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := jwt.ClaimsFromContext(r.Context())
		if !ok {
			unauthorized(w)
			return
		}
		id, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		request, err := fn(r.Context(), claims.UserID, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, request)
	}
}

// NewApproveChangeRequestHandler returns an HTTP handler approving a change request.
// @Summary Approve change request
// @Description Applies the proposed values to the book.
// @Tags moderation
// @Produce json
// @Param id path string true "Change request id"
// @Success 200 {object} models.BookChangeRequest
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Request is not pending"
// @Security BearerAuth
// @Router /change-requests/{id}/approve [post]
func NewApproveChangeRequestHandler(svc Cataloger) http.HandlerFunc {
	return moderate(svc.Approve)
}

// NewDenyChangeRequestHandler returns an HTTP handler denying a change request.
// @Summary Deny change request
// @Tags moderation
// @Produce json
// @Param id path string true "Change request id"
// @Success 200 {object} models.BookChangeRequest
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Request is not pending"
// @Security BearerAuth
// @Router /change-requests/{id}/deny [post]
func NewDenyChangeRequestHandler(svc Cataloger) http.HandlerFunc {
	return moderate(svc.Deny)
}
