// Package store implements the file-backed task store: a single JSON
// array file, loaded and rewritten as a unit on every operation.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"ltask/internal/task"
)

const filePerm = 0o644

// schemaJSON describes the array-of-task-objects shape a store file must
// have. Extra keys are allowed so files written by newer versions still
// load.
const schemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "title", "completed", "created_at"],
		"properties": {
			"id": {"type": "integer", "minimum": 1},
			"title": {"type": "string"},
			"description": {"type": "string"},
			"completed": {"type": "boolean"},
			"created_at": {"type": "string"}
		}
	}
}`

var storeSchema = jsonschema.MustCompileString("tasks.schema.json", schemaJSON)

// CorruptError indicates the store file exists but does not hold a valid
// task array. The file is left untouched.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt store file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *CorruptError) Unwrap() error {
	return e.Err
}

// Load reads the task array at path. A missing file is an empty store,
// not an error. A file that exists but is not valid JSON, or whose JSON
// does not match the task-array shape, fails with *CorruptError.
func Load(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &CorruptError{Path: path, Err: err}
	}
	if err := storeSchema.Validate(raw); err != nil {
		return nil, &CorruptError{Path: path, Err: err}
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &CorruptError{Path: path, Err: err}
	}
	return tasks, nil
}

// Save writes the full task array to path, replacing the previous
// contents. The data goes to a temp file in the same directory first and
// is renamed over the target, so a failure mid-write leaves the old file
// intact. The parent directory must already exist.
func Save(path string, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
