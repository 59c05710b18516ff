package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CollideNV/hadron/pkg/models"
)

func TestDefaultPipelineConfig(t *testing.T) {
	cfg := DefaultPipelineConfig()

	assert.Equal(t, 3, cfg.MaxVerificationLoops)
	assert.Equal(t, 3, cfg.MaxReviewLoops)
	assert.Equal(t, 5, cfg.MaxTDDIterations)
	assert.Equal(t, 3, cfg.MaxRebaseAttempts)
	assert.Equal(t, 3, cfg.MaxCILoops)
	assert.Equal(t, 10.0, cfg.MaxCostUSD)
	assert.Equal(t, models.DeliverySelfContained, cfg.DeliveryStrategy)
	assert.Equal(t, []string{"gemini", "anthropic"}, cfg.ProviderChain)
}

func TestInitializeAppliesEnvOverrides(t *testing.T) {
	t.Setenv("WORKER_COUNT", "2")
	t.Setenv("MAX_COST_USD", "25.5")
	t.Setenv("EVENT_RETENTION_BUFFER", "48h")
	t.Setenv("DEFAULT_MODEL", "claude-sonnet-4-5")

	cfg := Initialize()

	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 25.5, cfg.Pipeline.MaxCostUSD)
	assert.Equal(t, "48h0m0s", cfg.Retention.EventBuffer.String())
	assert.Equal(t, "claude-sonnet-4-5", cfg.Pipeline.DefaultModel)
}

func TestInitializeIgnoresMalformedEnv(t *testing.T) {
	t.Setenv("WORKER_COUNT", "many")
	t.Setenv("MAX_COST_USD", "lots")

	cfg := Initialize()

	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 10.0, cfg.Pipeline.MaxCostUSD)
}

func TestSnapshotFreezesPricingAndAppliesOverrides(t *testing.T) {
	cfg := DefaultPipelineConfig()

	snap := cfg.Snapshot(&models.RawChangeRequest{Model: "claude-sonnet-4-5"})
	assert.Equal(t, "claude-sonnet-4-5", snap.DefaultModel)

	price, ok := snap.PriceFor("gemini-2.5-pro")
	require.True(t, ok)
	assert.Equal(t, 1.25, price.InputPerMillion)

	// Snapshot pricing is a copy: registry mutations after the freeze
	// must not leak into the run.
	snap.Pricing["gemini-2.5-pro"] = models.ModelPrice{InputPerMillion: 99, OutputPerMillion: 99}
	again := cfg.Snapshot(nil)
	p2, ok := again.PriceFor("gemini-2.5-pro")
	require.True(t, ok)
	assert.Equal(t, 1.25, p2.InputPerMillion)
	assert.Equal(t, cfg.DefaultModel, again.DefaultModel)
}

func TestProviderForModel(t *testing.T) {
	assert.Equal(t, "anthropic", ProviderForModel("claude-haiku-4-5"))
	assert.Equal(t, "gemini", ProviderForModel("gemini-2.5-flash"))
	assert.Empty(t, ProviderForModel("unknown-model"))
}
