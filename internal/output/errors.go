package output

// Exit codes. The CLI contract is deliberately small: anything that isn't
// success or a usage mistake exits 1.
const (
	ExitOK      = 0 // Success
	ExitGeneral = 1 // Operation failure (store error, key not found)
	ExitUsage   = 2 // Invalid usage / bad arguments
)

// CLIError represents a structured error with exit code and optional hint
type CLIError struct {
	ExitCode int
	Message  string
	Hint     string
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return e.Message
}

// NewCLIError creates a new CLIError
func NewCLIError(code int, msg string) *CLIError {
	return &CLIError{
		ExitCode: code,
		Message:  msg,
	}
}

// WithHint adds a user-facing hint to the error
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}
