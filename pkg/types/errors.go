package types

import "errors"

// Board operation errors.
var (
	ErrNotFound        = errors.New("entity not found")
	ErrInvalidID       = errors.New("invalid entity ID")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidType     = errors.New("invalid property type")
	ErrTitleImmutable  = errors.New("title property cannot be deleted or retyped")
	ErrNotGroupable    = errors.New("property type cannot group cards")
	ErrDuplicateOption = errors.New("duplicate option value")
)

// ErrFormat reports an import document missing its required top-level
// fields. Import is aborted and current state left untouched.
var ErrFormat = errors.New("document missing schema or records")
