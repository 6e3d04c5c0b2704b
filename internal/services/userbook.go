package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-book-tracker/internal/logger"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
	"github.com/sbilibin2017/gw-book-tracker/internal/repositories"
)

//go:generate mockgen -source=userbook.go -destination=userbook_mock_test.go -package=services

// UserBookFinder looks user books up by filter.
type UserBookFinder interface {
	Find(ctx context.Context, filter models.UserBookFilter) ([]models.UserBook, error)
}

// UserBookStore is the user book persistence used by UserBookService.
type UserBookStore interface {
	UserBookFinder
	Count(ctx context.Context, filter models.UserBookFilter) (int, error)
	Create(ctx context.Context, in models.CreateUserBook) (*models.UserBook, error)
	Update(ctx context.Context, in models.UpdateUserBook) (*models.UserBook, error)
	Delete(ctx context.Context, id string) error
}

// BookshelfReader resolves a shelf for ownership checks.
type BookshelfReader interface {
	GetByID(ctx context.Context, id string) (*models.Bookshelf, error)
}

// CollectionLister lists the collections a user owns.
type CollectionLister interface {
	FindByUser(ctx context.Context, userID string) ([]models.Collection, error)
}

// UserBookService applies ownership rules on top of the user book store.
type UserBookService struct {
	store       UserBookStore
	shelves     BookshelfReader
	collections CollectionLister
	events      *ActivityPublisher
}

func NewUserBookService(store UserBookStore, shelves BookshelfReader, collections CollectionLister, events *ActivityPublisher) *UserBookService {
	return &UserBookService{
		store:       store,
		shelves:     shelves,
		collections: collections,
		events:      events,
	}
}

// List returns one page of the user's books and the total match count.
func (s *UserBookService) List(ctx context.Context, userID string, filter models.UserBookFilter) (*models.UserBookPage, error) {
	filter.UserID = &userID

	items, err := s.store.Find(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to find user books", "user_id", userID, "error", err)
		return nil, err
	}

	total, err := s.store.Count(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to count user books", "user_id", userID, "error", err)
		return nil, err
	}

	return &models.UserBookPage{Items: items, Total: total}, nil
}

// Get returns the user book if it belongs to the user.
func (s *UserBookService) Get(ctx context.Context, userID, id string) (*models.UserBook, error) {
	return ownedUserBook(ctx, s.store, userID, id)
}

// Create adds a catalog book to one of the user's shelves.
func (s *UserBookService) Create(ctx context.Context, userID string, in models.CreateUserBook) (*models.UserBook, error) {
	if err := s.checkTargets(ctx, userID, in.BookshelfID, in.CollectionIDs); err != nil {
		return nil, err
	}

	userBook, err := s.store.Create(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to create user book", "user_id", userID, "book_id", in.BookID, "error", err)
		return nil, err
	}

	s.events.Publish(ctx, userID, models.EntityUserBook, models.ActionCreated, userBook.ID)
	return userBook, nil
}

// Update replaces the user book's fields and tag sets.
func (s *UserBookService) Update(ctx context.Context, userID string, in models.UpdateUserBook) (*models.UserBook, error) {
	if _, err := ownedUserBook(ctx, s.store, userID, in.ID); err != nil {
		return nil, err
	}
	if err := s.checkTargets(ctx, userID, in.BookshelfID, in.CollectionIDs); err != nil {
		return nil, err
	}

	userBook, err := s.store.Update(ctx, in)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserBookNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update user book", "user_id", userID, "user_book_id", in.ID, "error", err)
		return nil, err
	}

	s.events.Publish(ctx, userID, models.EntityUserBook, models.ActionUpdated, userBook.ID)
	return userBook, nil
}

// Delete removes the user book with its readings and tags.
func (s *UserBookService) Delete(ctx context.Context, userID, id string) error {
	if _, err := ownedUserBook(ctx, s.store, userID, id); err != nil {
		return err
	}

	err := s.store.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserBookNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete user book", "user_id", userID, "user_book_id", id, "error", err)
		return err
	}

	s.events.Publish(ctx, userID, models.EntityUserBook, models.ActionDeleted, id)
	return nil
}

func (s *UserBookService) checkTargets(ctx context.Context, userID, bookshelfID string, collectionIDs []string) error {
	shelf, err := s.shelves.GetByID(ctx, bookshelfID)
	if err != nil {
		logger.Log.Errorw("failed to get bookshelf", "bookshelf_id", bookshelfID, "error", err)
		return err
	}
	if shelf == nil {
		return ErrBookshelfNotFound
	}
	if shelf.UserID != userID {
		logger.Log.Warnw("bookshelf belongs to another user", "user_id", userID, "bookshelf_id", bookshelfID)
		return ErrForbidden
	}

	if len(collectionIDs) == 0 {
		return nil
	}
	owned, err := s.collections.FindByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list collections", "user_id", userID, "error", err)
		return err
	}
	ownedIDs := make(map[string]struct{}, len(owned))
	for _, c := range owned {
		ownedIDs[c.ID] = struct{}{}
	}
	for _, id := range collectionIDs {
		if _, ok := ownedIDs[id]; !ok {
			logger.Log.Warnw("collection belongs to another user", "user_id", userID, "collection_id", id)
			return ErrForbidden
		}
	}
	return nil
}

// ownedUserBook hides other users' books behind ErrUserBookNotFound.
func ownedUserBook(ctx context.Context, finder UserBookFinder, userID, id string) (*models.UserBook, error) {
	found, err := finder.Find(ctx, models.UserBookFilter{ID: &id, UserID: &userID})
	if err != nil {
		logger.Log.Errorw("failed to find user book", "user_id", userID, "user_book_id", id, "error", err)
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrUserBookNotFound
	}
	return &found[0], nil
}
