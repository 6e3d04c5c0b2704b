package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-book-tracker/internal/logger"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
	"github.com/sbilibin2017/gw-book-tracker/internal/repositories"
)

//go:generate mockgen -source=catalog.go -destination=catalog_mock_test.go -package=services

// BookStore reads and edits catalog books.
type BookStore interface {
	FindByID(ctx context.Context, id string) (*models.Book, error)
	Search(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
	ApplyChanges(ctx context.Context, bookID string, changes models.BookChanges) error
}

// BookCache caches catalog books
type BookCache interface {
	Get(ctx context.Context, id string) (*models.Book, error)
	Set(ctx context.Context, book models.Book) error
	Invalidate(ctx context.Context, id string) error
}

// ChangeRequestStore persists proposed catalog edits.
type ChangeRequestStore interface {
	Create(ctx context.Context, bookID, userID string, changes models.BookChanges) (*models.BookChangeRequest, error)
	FindByID(ctx context.Context, id string) (*models.BookChangeRequest, error)
	FindByStatus(ctx context.Context, status string) ([]models.BookChangeRequest, error)
	SetStatus(ctx context.Context, id, status string) error
}

// CatalogService serves the shared book catalog and moderates edits to it.
type CatalogService struct {
	books    BookStore
	cache    BookCache
	requests ChangeRequestStore
	events   *ActivityPublisher
}

func NewCatalogService(books BookStore, cache BookCache, requests ChangeRequestStore, events *ActivityPublisher) *CatalogService {
	return &CatalogService{
		books:    books,
		cache:    cache,
		requests: requests,
		events:   events,
	}
}

// GetBook reads through the cache.
func (s *CatalogService) GetBook(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.cache.Get(ctx, id)
	if err == nil {
		return book, nil
	}
	if !errors.Is(err, repositories.ErrCacheMiss) {
		logger.Log.Warnw("book cache unavailable, reading database", "book_id", id, "error", err)
	}

	book, err = s.books.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get book", "book_id", id, "error", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	if err := s.cache.Set(ctx, *book); err != nil {
		logger.Log.Warnw("failed to cache book", "book_id", id, "error", err)
	}
	return book, nil
}

func (s *CatalogService) SearchBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	books, err := s.books.Search(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to search books", "error", err)
	}
	return books, err
}

// SubmitChange stores a pending request with only the fields that differ
// from the current book.
func (s *CatalogService) SubmitChange(ctx context.Context, userID, bookID string, proposed models.BookChanges) (*models.BookChangeRequest, error) {
	book, err := s.books.FindByID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get book", "book_id", bookID, "error", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	diff := proposed.Diff(*book)
	if diff.IsEmpty() {
		return nil, ErrNoChanges
	}

	request, err := s.requests.Create(ctx, bookID, userID, diff)
	if err != nil {
		logger.Log.Errorw("failed to create change request", "book_id", bookID, "user_id", userID, "error", err)
		return nil, err
	}

	s.events.Publish(ctx, userID, models.EntityBookChangeRequest, models.ActionSubmitted, request.ID)
	return request, nil
}

func (s *CatalogService) ChangeRequests(ctx context.Context, status string) ([]models.BookChangeRequest, error) {
	requests, err := s.requests.FindByStatus(ctx, status)
	if err != nil {
		logger.Log.Errorw("failed to list change requests", "status", status, "error", err)
	}
	return requests, err
}

// Approve applies the request to the book and drops the cached copy.
func (s *CatalogService) Approve(ctx context.Context, moderatorID, id string) (*models.BookChangeRequest, error) {
	request, err := s.pendingRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.books.ApplyChanges(ctx, request.BookID, request.BookChanges); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		logger.Log.Errorw("failed to apply change request", "change_request_id", id, "error", err)
		return nil, err
	}

	if err := s.transition(ctx, request, models.ChangeRequestApproved); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, request.BookID); err != nil {
		logger.Log.Warnw("failed to invalidate cached book", "book_id", request.BookID, "error", err)
	}

	s.events.Publish(ctx, moderatorID, models.EntityBookChangeRequest, models.ActionApproved, id)
	return request, nil
}

// Deny closes the request without touching the book.
func (s *CatalogService) Deny(ctx context.Context, moderatorID, id string) (*models.BookChangeRequest, error) {
	request, err := s.pendingRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.transition(ctx, request, models.ChangeRequestDenied); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, moderatorID, models.EntityBookChangeRequest, models.ActionDenied, id)
	return request, nil
}

func (s *CatalogService) pendingRequest(ctx context.Context, id string) (*models.BookChangeRequest, error) {
	request, err := s.requests.FindByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get change request", "change_request_id", id, "error", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrChangeRequestNotFound
	}
	if request.Status != models.ChangeRequestPending {
		return nil, ErrChangeRequestNotPending
	}
	return request, nil
}

// transition fails with ErrChangeRequestNotPending when another moderator got there first.
func (s *CatalogService) transition(ctx context.Context, request *models.BookChangeRequest, status string) error {
	err := s.requests.SetStatus(ctx, request.ID, status)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrChangeRequestNotPending
	}
	if err != nil {
		logger.Log.Errorw("failed to update change request", "change_request_id", request.ID, "error", err)
		return err
	}
	request.Status = status
	return nil
}
