package cli

import "errors"

// Exit codes for adocast.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates the command failed.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates malformed input data (element tree or config).
	ExitDataError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// codedError pairs an error with the process exit code it maps to.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }

func (e *codedError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	return &codedError{code: code, err: err}
}

// ExitCodeFromError maps an error returned by command execution to a process
// exit code. Errors the commands did not classify map to ExitFailure.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var coded *codedError
	if errors.As(err, &coded) {
		return coded.code
	}

	return ExitFailure
}
