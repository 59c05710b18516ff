// Package config holds runtime configuration: queue tuning, retention,
// pipeline defaults, and the provider pricing registry from which each
// run's frozen config snapshot is built.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the root runtime configuration for the hadron process.
type Config struct {
	Queue     *QueueConfig
	Retention *RetentionConfig
	Pipeline  *PipelineConfig
}

// Initialize builds the runtime configuration from built-in defaults
// plus environment overrides. Environment loading of .env files is the
// caller's concern (cmd/hadron uses godotenv).
func Initialize() *Config {
	cfg := &Config{
		Queue:     DefaultQueueConfig(),
		Retention: DefaultRetentionConfig(),
		Pipeline:  DefaultPipelineConfig(),
	}
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if n, ok := envInt("WORKER_COUNT"); ok {
		c.Queue.WorkerCount = n
	}
	if n, ok := envInt("MAX_CONCURRENT_RUNS"); ok {
		c.Queue.MaxConcurrentRuns = n
	}
	if v := os.Getenv("WORKSPACE_DIR"); v != "" {
		c.Pipeline.WorkspaceDir = v
	}
	if v := os.Getenv("DEFAULT_MODEL"); v != "" {
		c.Pipeline.DefaultModel = v
	}
	if v := os.Getenv("DELIVERY_STRATEGY"); v != "" {
		c.Pipeline.DeliveryStrategy = v
	}
	if f, ok := envFloat("MAX_COST_USD"); ok {
		c.Pipeline.MaxCostUSD = f
	}
	if d, ok := envDuration("EVENT_RETENTION_BUFFER"); ok {
		c.Retention.EventBuffer = d
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envFloat(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func envDuration(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, false
	}
	return d, true
}
