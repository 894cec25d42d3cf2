// Package service defines the backend-agnostic interface for task store
// operations.
package service

import (
	"context"

	"ltask/internal/task"
)

// Store defines the interface for task store operations. Commands never
// open the store file directly: the file-backed implementation lives in
// internal/store, and tests substitute an in-memory fake.
type Store interface {
	// Add appends a new task with a fresh id and returns it.
	// Fails with task.ErrEmptyTitle if the title is blank.
	Add(ctx context.Context, title, description string) (task.Task, error)

	// List returns tasks in store order. Completed tasks are dropped
	// unless includeCompleted is set.
	List(ctx context.Context, includeCompleted bool) ([]task.Task, error)

	// Complete marks the task with the given id completed.
	// Completing an already-completed task is not an error.
	// Fails with *task.NotFoundError if no task has the id.
	Complete(ctx context.Context, id int) error

	// Delete removes the task with the given id.
	// Fails with *task.NotFoundError if no task has the id.
	Delete(ctx context.Context, id int) error
}
