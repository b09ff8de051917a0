package cli

// Exit codes, one per exercise so a caller can tell which
// self check failed
const (
	ExitCodeFailure    = 1
	ExitCodeCycles     = 2
	ExitCodeBattleship = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func newExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Message: err.Error()}
}
