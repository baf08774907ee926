package tutor

import "time"

// Config tunes the use cases.
type Config struct {
	// ResourceThreshold is the mistake count a student must exceed before
	// resources are requested. Default: 2.
	ResourceThreshold int

	// Timeout bounds a single completion call. Zero means no deadline.
	Timeout time.Duration
}

// DefaultConfig returns the default use case configuration.
func DefaultConfig() Config {
	return Config{
		ResourceThreshold: 2,
	}
}
