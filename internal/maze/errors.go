package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidDefinition is matched by every error returned from Parse.
var ErrInvalidDefinition = errors.New("maze: invalid maze definition")

// Definition error codes.
const (
	CodeEmpty          = "EMPTY"
	CodeNotRectangular = "NOT_RECTANGULAR"
	CodeOpenBoundary   = "OPEN_BOUNDARY"
)

// DefinitionError describes why a maze definition was rejected.
// Row and Col point at the offending cell, or are -1 when not applicable.
type DefinitionError struct {
	Code    string
	Row     int
	Col     int
	Message string
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("maze: [%s] %s", e.Code, e.Message)
	}
	if e.Col < 0 {
		return fmt.Sprintf("maze: [%s] row %d: %s", e.Code, e.Row, e.Message)
	}
	return fmt.Sprintf("maze: [%s] row %d col %d: %s", e.Code, e.Row, e.Col, e.Message)
}

// Is makes errors.Is(err, ErrInvalidDefinition) hold for every DefinitionError.
func (e *DefinitionError) Is(target error) bool {
	return target == ErrInvalidDefinition
}
