package errors

// ErrorCode represents a unique error identifier
type ErrorCode int

// Error code ranges allocation:
// 10000-10099: System & Common errors
// 10300-10399: Validation errors
// 10400-10499: Console I/O errors
// 10500-10599: Startup errors

const (
	// Success
	Success ErrorCode = 10000

	// Generic errors (10000-10099)
	InternalError ErrorCode = 10001

	// Validation errors (10300-10399)
	InvalidFormat ErrorCode = 10301
	InvalidValue  ErrorCode = 10302

	// Console I/O errors (10400-10499)
	InputReadFailed   ErrorCode = 10400
	OutputWriteFailed ErrorCode = 10401

	// Startup errors (10500-10599)
	ConfigLoadFailed ErrorCode = 10500
	LoggerInitFailed ErrorCode = 10501
)

// errorMessages maps error codes to their default English messages
var errorMessages = map[ErrorCode]string{
	Success:       "Success",
	InternalError: "Internal error",

	InvalidFormat: "Invalid input. Please enter a valid number.",
	InvalidValue:  "Please enter a positive number.",

	InputReadFailed:   "Failed to read input",
	OutputWriteFailed: "Failed to write output",

	ConfigLoadFailed: "Failed to load config",
	LoggerInitFailed: "Failed to initialize logger",
}

// Message returns the default message for the error code
func (c ErrorCode) Message() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return "Unknown error"
}

// ExitCode returns the process exit status for the error code
func (c ErrorCode) ExitCode() int {
	if c == Success {
		return 0
	}
	return 1
}

// Recoverable reports whether the caller can retry by asking for input again.
func (c ErrorCode) Recoverable() bool {
	return c >= 10300 && c < 10400
}
