package task

import (
	"errors"
	"fmt"
)

// ErrEmptyTitle is returned when a task is created without a title.
var ErrEmptyTitle = errors.New("title required")

// NotFoundError indicates that no task in the collection has the
// requested id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}
