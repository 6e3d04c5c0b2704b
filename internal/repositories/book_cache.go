package repositories

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-book-tracker/internal/logger"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BookCacheRepository caches catalog books in Redis
type BookCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached books
}

// NewBookCacheRepository creates a new repository instance with the given TTL
func NewBookCacheRepository(client *redis.Client, expiration time.Duration) *BookCacheRepository {
	return &BookCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func bookCacheKey(id string) string {
	return fmt.Sprintf("book:%s", id)
}

// Get returns ErrCacheMiss when the book is not cached
func (r *BookCacheRepository) Get(ctx context.Context, id string) (*models.Book, error) {
	key := bookCacheKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		logger.Log.Debugw("cache miss", "key", key)
		return nil, ErrCacheMiss
	}
	if err != nil {
		logger.Log.Warnw("cache read failed", "key", key, "error", err)
		return nil, err
	}

	var book models.Book
	if err := json.Unmarshal(val, &book); err != nil {
		logger.Log.Warnw("cache entry is corrupt", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("cache hit", "key", key)
	return &book, nil
}

// Set caches the book with expiration
func (r *BookCacheRepository) Set(ctx context.Context, book models.Book) error {
	key := bookCacheKey(book.ID)

	data, err := json.Marshal(book)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("cache write", "key", key, "error", err)
	return err
}

// Invalidate drops the cached book
func (r *BookCacheRepository) Invalidate(ctx context.Context, id string) error {
	key := bookCacheKey(id)
	err := r.client.Del(ctx, key).Err()
	logger.Log.Debugw("cache invalidate", "key", key, "error", err)
	return err
}
