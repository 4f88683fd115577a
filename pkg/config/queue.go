package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how pending debates are polled, claimed, and driven.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls for and orchestrates debates.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentDebates is the global limit of concurrently running
	// debates across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentDebates int `yaml:"max_concurrent_debates"`

	// PollInterval is the base interval for checking pending debates.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// DebateTimeout is the maximum wall-clock time a debate may run,
	// excluding time spent paused.
	DebateTimeout time.Duration `yaml:"debate_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active debates
	// to pause or complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned debates.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a running debate can go without a
	// heartbeat before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		MaxConcurrentDebates:    8,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		DebateTimeout:           45 * time.Minute,
		GracefulShutdownTimeout: 2 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}
