package services

import (
	"context"

	"github.com/sbilibin2017/gw-book-tracker/internal/logger"
	"github.com/sbilibin2017/gw-book-tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, email, role string) (string, error)
}

// BookshelfCreator creates the default shelves of a new user.
type BookshelfCreator interface {
	Create(ctx context.Context, userID, name, shelfType string) (*models.Bookshelf, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID, role string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	shelves BookshelfCreator
	jwt     JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, shelves BookshelfCreator, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		shelves: shelves,
		jwt:     jwt,
	}
}

// Register registers a new user with the user role and default bookshelves.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) error {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	userID, err := svc.writer.Save(ctx, username, string(hashedPassword), email, models.RoleUser)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	for _, name := range models.DefaultBookshelfNames {
		if _, err := svc.shelves.Create(ctx, userID, name, models.BookshelfDefault); err != nil {
			logger.Log.Errorw("failed to create default bookshelf", "user_id", userID, "name", name, "err", err)
			return err
		}
	}

	return nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
