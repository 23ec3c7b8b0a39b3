package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("resource already exists")
	ErrConflict     = errors.New("conflict with current state")
)

// Error asocia un mensaje legible a uno de los errores de dominio.
// errors.Is(err, ErrNotFound) sigue funcionando gracias a Unwrap.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// NotFound construye un ErrNotFound con mensaje propio ("Category not found").
func NotFound(msg string) error { return &Error{kind: ErrNotFound, msg: msg} }

// InvalidInput construye un ErrInvalidInput con mensaje propio.
func InvalidInput(msg string) error { return &Error{kind: ErrInvalidInput, msg: msg} }

// Duplicate construye un ErrDuplicate con mensaje propio.
func Duplicate(msg string) error { return &Error{kind: ErrDuplicate, msg: msg} }

// Conflict construye un ErrConflict con mensaje propio.
func Conflict(msg string) error { return &Error{kind: ErrConflict, msg: msg} }
