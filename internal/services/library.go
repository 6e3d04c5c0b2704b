package services

import (
	"context"

	"github.com/sbilibin2017/gw-book-tracker/internal/logger"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
)

//go:generate mockgen -source=library.go -destination=library_mock_test.go -package=services

type BookshelfStore interface {
	FindByUser(ctx context.Context, userID string) ([]models.Bookshelf, error)
	Create(ctx context.Context, userID, name, shelfType string) (*models.Bookshelf, error)
}

type CollectionStore interface {
	CollectionLister
	Create(ctx context.Context, userID, name string) (*models.Collection, error)
}

type GenreLister interface {
	FindAll(ctx context.Context) ([]models.Genre, error)
}

// LibraryService manages the shelves, collections and genres user books are sorted by.
type LibraryService struct {
	shelves     BookshelfStore
	collections CollectionStore
	genres      GenreLister
}

func NewLibraryService(shelves BookshelfStore, collections CollectionStore, genres GenreLister) *LibraryService {
	return &LibraryService{shelves: shelves, collections: collections, genres: genres}
}

func (s *LibraryService) Bookshelves(ctx context.Context, userID string) ([]models.Bookshelf, error) {
	shelves, err := s.shelves.FindByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list bookshelves", "user_id", userID, "error", err)
	}
	return shelves, err
}

// CreateBookshelf adds a custom shelf. Default shelves are created at registration only.
func (s *LibraryService) CreateBookshelf(ctx context.Context, userID, name string) (*models.Bookshelf, error) {
	shelf, err := s.shelves.Create(ctx, userID, name, models.BookshelfCustom)
	if err != nil {
		logger.Log.Errorw("failed to create bookshelf", "user_id", userID, "error", err)
	}
	return shelf, err
}

func (s *LibraryService) Collections(ctx context.Context, userID string) ([]models.Collection, error) {
	collections, err := s.collections.FindByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list collections", "user_id", userID, "error", err)
	}
	return collections, err
}

func (s *LibraryService) CreateCollection(ctx context.Context, userID, name string) (*models.Collection, error) {
	collection, err := s.collections.Create(ctx, userID, name)
	if err != nil {
		logger.Log.Errorw("failed to create collection", "user_id", userID, "error", err)
	}
	return collection, err
}

func (s *LibraryService) Genres(ctx context.Context) ([]models.Genre, error) {
	genres, err := s.genres.FindAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list genres", "error", err)
	}
	return genres, err
}
