package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrPlanNotFound      = errors.New("scheduled plan not found")
	ErrLibraryNotFound   = errors.New("library item not found")
	ErrAmbiguousID       = errors.New("id prefix matches more than one item")
	ErrNotDeferrable     = errors.New("only scheduled tasks can be deferred, and only while planning")
	ErrInvalidTransition = errors.New("invalid phase transition")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidSchedule   = errors.New("invalid schedule configuration")
	ErrInvalidCost       = errors.New("cost must not be negative")
	ErrInvalidBackup     = errors.New("invalid backup document")
	ErrUnknownLibrary    = errors.New("unknown library kind")
	ErrConfigExists      = errors.New("config file already exists")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrConfigNil         = errors.New("config is nil")
)

// ImportError describes why a backup document was rejected.
// It wraps ErrInvalidBackup so callers can test with errors.Is.
type ImportError struct {
	Reason string
}

func (e *ImportError) Error() string {
	return "invalid backup document: " + e.Reason
}

func (e *ImportError) Unwrap() error {
	return ErrInvalidBackup
}
