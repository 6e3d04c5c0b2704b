package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-book-tracker/internal/logger"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
	"github.com/sbilibin2017/gw-book-tracker/internal/repositories"
)

//go:generate mockgen -source=reading.go -destination=reading_mock_test.go -package=services

// ReadingStore persists readings.
type ReadingStore interface {
	Save(ctx context.Context, reading models.Reading) (*models.Reading, error)
	Delete(ctx context.Context, userBookID, readingID string) error
}

// ReadingService records read-throughs of the user's books.
type ReadingService struct {
	userBooks UserBookFinder
	store     ReadingStore
}

func NewReadingService(userBooks UserBookFinder, store ReadingStore) *ReadingService {
	return &ReadingService{userBooks: userBooks, store: store}
}

// Save inserts or overwrites a reading of a user book the user owns.
func (s *ReadingService) Save(ctx context.Context, userID string, reading models.Reading) (*models.Reading, error) {
	if _, err := ownedUserBook(ctx, s.userBooks, userID, reading.UserBookID); err != nil {
		return nil, err
	}

	saved, err := s.store.Save(ctx, reading)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrReadingNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to save reading", "user_book_id", reading.UserBookID, "error", err)
		return nil, err
	}
	return saved, nil
}

func (s *ReadingService) Delete(ctx context.Context, userID, userBookID, readingID string) error {
	if _, err := ownedUserBook(ctx, s.userBooks, userID, userBookID); err != nil {
		return err
	}

	err := s.store.Delete(ctx, userBookID, readingID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrReadingNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete reading", "user_book_id", userBookID, "reading_id", readingID, "error", err)
		return err
	}
	return nil
}
