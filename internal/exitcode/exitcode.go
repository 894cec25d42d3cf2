// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// Failure indicates any handled error: bad arguments, unknown id,
	// empty title, corrupt store file.
	Failure = 1
)
