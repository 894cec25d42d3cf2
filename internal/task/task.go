// Package task defines the task record and the pure operations on a task
// collection. Persistence lives in internal/store; nothing here touches
// the filesystem.
package task

import (
	"strings"
)

// Task represents a single to-do item.
//
// The JSON tags fix the store file format: files written by earlier
// versions of this tool must keep loading unchanged.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   Timestamp `json:"created_at"`
}

// New constructs a task with the given id, an empty completed flag, and
// the current time as creation timestamp. The title must contain at
// least one non-whitespace character.
func New(id int, title, description string) (Task, error) {
	if strings.TrimSpace(title) == "" {
		return Task{}, ErrEmptyTitle
	}
	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		CreatedAt:   Now(),
	}, nil
}

// NextID returns the id for a new task: one greater than the largest
// existing id, or 1 for an empty collection. Ids of deleted tasks are
// never reused.
func NextID(tasks []Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// Add appends a new task built per New and returns the updated
// collection together with the task that was added.
func Add(tasks []Task, title, description string) ([]Task, Task, error) {
	t, err := New(NextID(tasks), title, description)
	if err != nil {
		return tasks, Task{}, err
	}
	return append(tasks, t), t, nil
}

// Filter returns tasks in their original order, dropping completed ones
// unless includeCompleted is set.
func Filter(tasks []Task, includeCompleted bool) []Task {
	if includeCompleted {
		return tasks
	}
	var open []Task
	for _, t := range tasks {
		if !t.Completed {
			open = append(open, t)
		}
	}
	return open
}

// Complete marks the task with the given id completed and returns the
// updated collection. Completing an already-completed task is not an
// error; the completed flag never transitions back to false.
func Complete(tasks []Task, id int) ([]Task, error) {
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Completed = true
			return tasks, nil
		}
	}
	return tasks, &NotFoundError{ID: id}
}

// Delete removes the task with the given id and returns the updated
// collection.
func Delete(tasks []Task, id int) ([]Task, error) {
	for i := range tasks {
		if tasks[i].ID == id {
			return append(tasks[:i:i], tasks[i+1:]...), nil
		}
	}
	return tasks, &NotFoundError{ID: id}
}
