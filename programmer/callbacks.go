package programmer

import "time"

// Pipeline phases reported through Progress.
const (
	// PhaseParsing - parsing the configuration text
	PhaseParsing = "parsing"

	// PhaseVerifyingDevice - comparing configuration and device identity
	PhaseVerifyingDevice = "verifying device"

	// PhaseCheckingCapacity - checking available NVM slots
	PhaseCheckingCapacity = "checking capacity"

	// PhaseTransmitting - streaming configuration commands
	PhaseTransmitting = "transmitting"

	// PhaseVerifyingResult - polling completion and slot statuses
	PhaseVerifyingResult = "verifying result"

	// PhaseComplete - pipeline finished successfully
	PhaseComplete = "complete"
)

// Progress contains information about programming progress.
// Passed to ProgressCallback during a write operation.
type Progress struct {
	// Phase is the current pipeline phase
	Phase string

	// CurrentCommand is the number of commands transmitted so far
	CurrentCommand int

	// TotalCommands is the total number of commands in the configuration
	TotalCommands int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// ElapsedTime is the time elapsed since the pipeline started
	ElapsedTime time.Duration
}

// ProgressCallback is called during programming to report progress.
// Implementations should return quickly to avoid blocking the pipeline.
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// programmer. This allows integration with any logging framework.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
