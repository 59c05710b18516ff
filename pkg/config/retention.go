package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// EventBuffer is how long a terminal run's event stream stays
	// readable before cleanup deletes it.
	EventBuffer time.Duration `yaml:"event_buffer"`

	// ConversationRetention is the maximum age of stored agent
	// conversations before deletion.
	ConversationRetention time.Duration `yaml:"conversation_retention"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventBuffer:           7 * 24 * time.Hour,
		ConversationRetention: 7 * 24 * time.Hour,
		CleanupInterval:       12 * time.Hour,
	}
}
