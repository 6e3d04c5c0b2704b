package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-book-tracker/internal/models"
)

//go:generate mockgen -source=reading.go -destination=reading_mock_test.go -package=handlers

// ReadingManager defines the reading operations the handlers need.
type ReadingManager interface {
	Save(ctx context.Context, userID string, reading models.Reading) (*models.Reading, error)
	Delete(ctx context.Context, userID, userBookID, readingID string) error
}

// ReadingRequest records one read-through. Without an id a new reading is created.
// swagger:model ReadingRequest
type ReadingRequest struct {
	ID        string     `json:"id" validate:"omitempty,uuid"`
	StartedAt *time.Time `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt" validate:"omitempty,gtefield=StartedAt"`
	Rating    *int       `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment   *string    `json:"comment" validate:"omitempty,max=2000"`
}

// NewSaveReadingHandler returns an HTTP handler upserting a reading.
// @Summary Save reading
// @Tags readings
// @Accept json
// @Produce json
// @Param id path string true "User book id"
// @Param request body handlers.ReadingRequest true "Reading"
// @Success 200 {object} models.Reading
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /user-books/{id}/readings [put]
func NewSaveReadingHandler(svc ReadingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			unauthorized(w)
			return
		}
		userBookID, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		var req ReadingRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		reading, err := svc.Save(r.Context(), uid, models.Reading{
			ID:         req.ID,
			UserBookID: userBookID,
			StartedAt:  req.StartedAt,
			EndedAt:    req.EndedAt,
			Rating:     req.Rating,
			Comment:    req.Comment,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reading)
	}
}

// NewDeleteReadingHandler returns an HTTP handler removing a reading.
// @Summary Delete reading
// @Tags readings
// @Param id path string true "User book id"
// @Param readingId path string true "Reading id"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse
// @Security BearerAuth
// @Router /user-books/{id}/readings/{readingId} [delete]
func NewDeleteReadingHandler(svc ReadingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			unauthorized(w)
			return
		}
		userBookID, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}
		readingID, err := pathID(r, "readingId")
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), uid, userBookID, readingID); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
