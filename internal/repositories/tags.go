package repositories

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
)

const (
	entityGenre      = "Genre"
	entityCollection = "Collection"
)

// GenreRepository reads the genre dictionary.
type GenreRepository struct {
	base
}

func NewGenreRepository(db *sqlx.DB) *GenreRepository {
	return &GenreRepository{base{db: db}}
}

func (r *GenreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	stmt := builder.From(tableGenre).
		Select("id", "name").
		Order(goqu.C("name").Asc()).
		Prepared(true)

	genres := make([]models.Genre, 0)
	if err := selectStmt(ctx, r.executor(ctx), &genres, stmt); err != nil {
		return nil, wrapErr(entityGenre, OpFind, err)
	}
	return genres, nil
}

// CollectionRepository stores user-owned collections.
type CollectionRepository struct {
	base
}

func NewCollectionRepository(db *sqlx.DB) *CollectionRepository {
	return &CollectionRepository{base{db: db}}
}

func (r *CollectionRepository) FindByUser(ctx context.Context, userID string) ([]models.Collection, error) {
	stmt := builder.From(tableCollection).
		Select("id", "name", "user_id").
		Where(goqu.C("user_id").Eq(userID)).
		Order(goqu.C("name").Asc()).
		Prepared(true)

	collections := make([]models.Collection, 0)
	if err := selectStmt(ctx, r.executor(ctx), &collections, stmt); err != nil {
		return nil, wrapErr(entityCollection, OpFind, err)
	}
	return collections, nil
}

func (r *CollectionRepository) Create(ctx context.Context, userID, name string) (*models.Collection, error) {
	collection := models.Collection{ID: uuid.NewString(), Name: name, UserID: userID}

	stmt := builder.Insert(tableCollection).
		Cols("id", "name", "user_id").
		Vals(goqu.Vals{collection.ID, collection.Name, collection.UserID}).
		Prepared(true)
	if _, err := execStmt(ctx, r.executor(ctx), stmt); err != nil {
		return nil, wrapErr(entityCollection, OpCreate, err)
	}
	return &collection, nil
}
