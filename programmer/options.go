package programmer

import "time"

// PollTimeout bounds the programming-status completion poll. The bound
// is part of the device contract and is not configurable.
const PollTimeout = 2 * time.Second

// Config holds the programmer configuration.
type Config struct {
	// ProgressCallback is called during programming to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// Clock supplies the current time for the completion-poll deadline.
	// Defaults to time.Now; injectable for deterministic tests.
	Clock func() time.Time

	// PollInterval is the delay between completion-poll reads. The
	// default of 0 preserves the device's original busy-poll behavior;
	// a small interval trades poll latency for bus quiet.
	PollInterval time.Duration
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Clock: time.Now,
	}
}

// Option is a functional option for configuring the Programmer.
type Option func(*Config)

// WithProgressCallback sets a callback function to track programming progress.
//
// Example:
//
//	prog := programmer.New(dev,
//	    programmer.WithProgressCallback(func(p programmer.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for programmer operations.
//
// Example:
//
//	prog := programmer.New(dev, programmer.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithClock sets the clock used for the completion-poll deadline.
// Intended for tests that need deterministic timeout behavior.
//
// Example:
//
//	prog := programmer.New(dev, programmer.WithClock(fakeClock.Now))
func WithClock(clock func() time.Time) Option {
	return func(c *Config) {
		if clock != nil {
			c.Clock = clock
		}
	}
}

// WithPollInterval sets the delay between completion-poll reads.
// The 2-second deadline and the success predicate are unaffected.
//
// Example:
//
//	prog := programmer.New(dev, programmer.WithPollInterval(10*time.Millisecond))
func WithPollInterval(interval time.Duration) Option {
	return func(c *Config) {
		if interval >= 0 {
			c.PollInterval = interval
		}
	}
}
