// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"ltask/internal/task"
)

// FakeStore is an in-memory implementation of service.Store for testing.
// It applies the same pure collection operations as the file store but
// keeps the tasks in memory, with per-method error injection.
type FakeStore struct {
	mu    sync.Mutex
	tasks []task.Task

	// Error injection for testing
	AddErr      error
	ListErr     error
	CompleteErr error
	DeleteErr   error
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// Seed appends tasks directly, bypassing id assignment.
func (f *FakeStore) Seed(tasks ...task.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, tasks...)
}

// Tasks returns a copy of the current task collection.
func (f *FakeStore) Tasks() []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]task.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// Add implements service.Store.
func (f *FakeStore) Add(ctx context.Context, title, description string) (task.Task, error) {
	if f.AddErr != nil {
		return task.Task{}, f.AddErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	tasks, t, err := task.Add(f.tasks, title, description)
	if err != nil {
		return task.Task{}, err
	}
	f.tasks = tasks
	return t, nil
}

// List implements service.Store.
func (f *FakeStore) List(ctx context.Context, includeCompleted bool) ([]task.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return task.Filter(f.snapshot(), includeCompleted), nil
}

// snapshot copies the tasks without locking; callers hold the mutex.
func (f *FakeStore) snapshot() []task.Task {
	out := make([]task.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// Complete implements service.Store.
func (f *FakeStore) Complete(ctx context.Context, id int) error {
	if f.CompleteErr != nil {
		return f.CompleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	tasks, err := task.Complete(f.tasks, id)
	if err != nil {
		return err
	}
	f.tasks = tasks
	return nil
}

// Delete implements service.Store.
func (f *FakeStore) Delete(ctx context.Context, id int) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	tasks, err := task.Delete(f.tasks, id)
	if err != nil {
		return err
	}
	f.tasks = tasks
	return nil
}
