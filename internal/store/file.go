package store

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"ltask/internal/task"
)

// File is the file-backed store. Every operation is a fresh
// load-mutate-save cycle; no state is held between calls. Two processes
// writing the same file race with last writer wins; single-process use
// only.
type File struct {
	path   string
	logger *log.Logger
}

// NewFile creates a store backed by the JSON file at path.
func NewFile(path string, logger *log.Logger) *File {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &File{path: path, logger: logger}
}

// Path returns the store file path.
func (f *File) Path() string {
	return f.path
}

// Add appends a new task and rewrites the file.
func (f *File) Add(ctx context.Context, title, description string) (task.Task, error) {
	tasks, err := Load(f.path)
	if err != nil {
		return task.Task{}, err
	}
	tasks, t, err := task.Add(tasks, title, description)
	if err != nil {
		return task.Task{}, err
	}
	if err := Save(f.path, tasks); err != nil {
		return task.Task{}, err
	}
	f.logger.Debug("task added", "id", t.ID, "path", f.path)
	return t, nil
}

// List returns the stored tasks in file order.
func (f *File) List(ctx context.Context, includeCompleted bool) ([]task.Task, error) {
	tasks, err := Load(f.path)
	if err != nil {
		return nil, err
	}
	f.logger.Debug("tasks loaded", "count", len(tasks), "path", f.path)
	return task.Filter(tasks, includeCompleted), nil
}

// Complete marks the task with the given id completed and rewrites the
// file. On a not-found error the file is not written.
func (f *File) Complete(ctx context.Context, id int) error {
	tasks, err := Load(f.path)
	if err != nil {
		return err
	}
	tasks, err = task.Complete(tasks, id)
	if err != nil {
		return err
	}
	if err := Save(f.path, tasks); err != nil {
		return err
	}
	f.logger.Debug("task completed", "id", id, "path", f.path)
	return nil
}

// Delete removes the task with the given id and rewrites the file. On a
// not-found error the file is not written.
func (f *File) Delete(ctx context.Context, id int) error {
	tasks, err := Load(f.path)
	if err != nil {
		return err
	}
	tasks, err = task.Delete(tasks, id)
	if err != nil {
		return err
	}
	if err := Save(f.path, tasks); err != nil {
		return err
	}
	f.logger.Debug("task deleted", "id", id, "path", f.path)
	return nil
}
