package repositories

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is wrapped when the targeted row does not exist.
	ErrNotFound = errors.New("does not exist")
	// ErrAggregationAnomaly is wrapped when an aggregate query returns an unusable scalar.
	ErrAggregationAnomaly = errors.New("unexpected aggregate result")
	// ErrCacheMiss is returned by cache repositories when the key is absent.
	ErrCacheMiss = errors.New("cache miss")
)

// Repository operations used to tag errors.
const (
	OpFind   = "find"
	OpCount  = "count"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpSave   = "save"
)

// RepositoryError carries the entity name, the attempted operation and
// either the underlying cause or a human-readable reason (or both).
type RepositoryError struct {
	Entity    string
	Operation string
	Reason    string
	Err       error
}

func (e *RepositoryError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Entity, e.Operation)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// wrapErr tags err with entity and operation. Errors that already are
// a RepositoryError pass through unchanged.
func wrapErr(entity, operation string, err error) error {
	if err == nil {
		return nil
	}
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return err
	}
	return &RepositoryError{Entity: entity, Operation: operation, Err: err}
}

func notFound(entity, operation, id string) error {
	return &RepositoryError{
		Entity:    entity,
		Operation: operation,
		Reason:    fmt.Sprintf("%s with id %s", entity, id),
		Err:       ErrNotFound,
	}
}
