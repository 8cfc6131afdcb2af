package infra

import (
	"errors"
)

type StoreErrorKind string

type StoreError struct {
	Kind StoreErrorKind
	msg  string
}

func (e StoreError) Error() string {
	return string(e.Kind) + ": " + e.msg
}

func NewStoreErr(kind StoreErrorKind, msg string) error {
	return StoreError{Kind: kind, msg: msg}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound     StoreErrorKind = "NOT_FOUND"
	KindConflict     StoreErrorKind = "CONFLICT"
	KindDuplicateKey StoreErrorKind = "DUPLICATE_KEY"
)
