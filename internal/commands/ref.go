package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"ltask/internal/exitcode"
)

// ErrIDRequired indicates no task id argument was provided.
var ErrIDRequired = errors.New("task id required")

// ParseID parses the single positional task id argument.
// The id must be a positive decimal integer.
func ParseID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}

	raw := args[0]
	if !isAllDigits(raw) {
		return 0, fmt.Errorf("invalid task id: %s", raw)
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id: %s", raw)
	}
	return id, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// report prints err as a one-line message and returns the failure exit
// code. All handled errors exit 1.
func report(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.Failure
}
