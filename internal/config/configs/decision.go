package configs

import "time"

// Decision tunes the decision pipeline.
type Decision struct {
	// Timeout bounds one decision. Zero disables the deadline.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"100ms"`
	// RecordTimeout bounds writing the impression and outcome after the
	// auction.
	RecordTimeout time.Duration `env:"RECORD_TIMEOUT" envDefault:"2s"`
	// Concurrency caps parallel scoring of candidates.
	Concurrency int `env:"CONCURRENCY" envDefault:"8"`
}
