package commands

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantID  int
		wantErr string
	}{
		{
			name:   "simple id",
			args:   []string{"1"},
			wantID: 1,
		},
		{
			name:   "multi digit",
			args:   []string{"42"},
			wantID: 42,
		},
		{
			name:    "no args",
			args:    nil,
			wantErr: "task id required",
		},
		{
			name:    "extra arg",
			args:    []string{"1", "2"},
			wantErr: "unexpected argument: 2",
		},
		{
			name:    "not a number",
			args:    []string{"abc"},
			wantErr: "invalid task id: abc",
		},
		{
			name:    "negative",
			args:    []string{"-3"},
			wantErr: "invalid task id: -3",
		},
		{
			name:    "zero",
			args:    []string{"0"},
			wantErr: "invalid task id: 0",
		},
		{
			name:    "trailing garbage",
			args:    []string{"3x"},
			wantErr: "invalid task id: 3x",
		},
		{
			name:    "empty string",
			args:    []string{""},
			wantErr: "invalid task id: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.args)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error %q, got id %d", tt.wantErr, id)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("expected error %q, got %q", tt.wantErr, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Errorf("expected id %d, got %d", tt.wantID, id)
			}
		})
	}
}

func TestParseID_RequiredSentinel(t *testing.T) {
	_, err := ParseID(nil)
	if !errors.Is(err, ErrIDRequired) {
		t.Errorf("expected ErrIDRequired, got %v", err)
	}
}
