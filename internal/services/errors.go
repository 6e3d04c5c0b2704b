package services

import "errors"

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrForbidden               = errors.New("forbidden")
	ErrUserBookNotFound        = errors.New("user book not found")
	ErrBookshelfNotFound       = errors.New("bookshelf not found")
	ErrReadingNotFound         = errors.New("reading not found")
	ErrBookNotFound            = errors.New("book not found")
	ErrChangeRequestNotFound   = errors.New("change request not found")
	ErrChangeRequestNotPending = errors.New("change request is not pending")
	ErrNoChanges               = errors.New("no changes to the current book")
)
