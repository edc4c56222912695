package domain

import (
	"errors"
	"fmt"
)

// ErrRecordNotFound is returned when a shop id is not present in the catalog.
var ErrRecordNotFound = errors.New("record not found")

// ErrUnknownTool is returned when a call names a tool that is not registered.
var ErrUnknownTool = errors.New("unknown tool")

// ErrInvalidArguments is returned when call arguments are missing, unknown or mistyped.
var ErrInvalidArguments = errors.New("invalid arguments")

// ErrInvalidCatalog is returned by loaders when the record set breaks an invariant
// (empty or duplicate ids).
var ErrInvalidCatalog = errors.New("invalid catalog")

// NotFoundError reports a lookup miss for a specific shop id.
// Its message is user-facing and is returned verbatim to callers.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Record with id %q not found.", e.ID)
}

// Is makes errors.Is(err, ErrRecordNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}
