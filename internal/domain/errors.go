package domain

import "errors"

var (
	// ErrNotFound is returned when the target row of a read, update, or
	// delete does not exist (or no longer exists).
	ErrNotFound = errors.New("not found")

	// ErrSalaOcupada is returned when an event's time window overlaps an
	// existing event in the same room.
	ErrSalaOcupada = errors.New("la sala ya está ocupada en ese horario")

	// ErrReferenciaInvalida is returned when an insert or update references
	// a catalog id that does not exist.
	ErrReferenciaInvalida = errors.New("una de las categorías seleccionadas no existe")

	// ErrEnUso is returned when a catalog row cannot be deleted because
	// events still reference it.
	ErrEnUso = errors.New("el registro tiene eventos asignados")
)

// ValidationError reports invalid or missing user input. It is mapped to a
// 400 response at the delivery boundary.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError returns a *ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
