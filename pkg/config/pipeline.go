package config

import (
	"github.com/CollideNV/hadron/pkg/models"
)

// PipelineConfig holds the tunables that get frozen into each run's
// config snapshot at trigger time.
type PipelineConfig struct {
	MaxVerificationLoops int     `yaml:"max_verification_loops"`
	MaxReviewLoops       int     `yaml:"max_review_loops"`
	MaxTDDIterations     int     `yaml:"max_tdd_iterations"`
	MaxRebaseAttempts    int     `yaml:"max_rebase_attempts"`
	MaxCILoops           int     `yaml:"max_ci_loops"`
	MaxCostUSD           float64 `yaml:"max_cost_usd"`

	DefaultModel  string   `yaml:"default_model"`
	ExploreModel  string   `yaml:"explore_model"`
	PlanModel     string   `yaml:"plan_model"`
	ProviderChain []string `yaml:"provider_chain"`

	DeliveryStrategy string `yaml:"delivery_strategy"`
	RequireApproval  bool   `yaml:"require_approval"`

	AgentTimeoutSecs int `yaml:"agent_timeout_secs"`
	StageTimeoutSecs int `yaml:"stage_timeout_secs"`
	TestTimeoutSecs  int `yaml:"test_timeout_secs"`

	WorkspaceDir string `yaml:"workspace_dir"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		MaxVerificationLoops: 3,
		MaxReviewLoops:       3,
		MaxTDDIterations:     5,
		MaxRebaseAttempts:    3,
		MaxCILoops:           3,
		MaxCostUSD:           10.0,
		DefaultModel:         "gemini-2.5-pro",
		ProviderChain:        []string{"gemini", "anthropic"},
		DeliveryStrategy:     models.DeliverySelfContained,
		RequireApproval:      false,
		AgentTimeoutSecs:     120,
		StageTimeoutSecs:     1800,
		TestTimeoutSecs:      120,
		WorkspaceDir:         "/var/lib/hadron/workspace",
	}
}

// Snapshot freezes the current pipeline configuration and pricing
// registry into an immutable per-run snapshot, applying any overrides
// the trigger payload carries. Later config or price changes never
// affect a running CR.
func (p *PipelineConfig) Snapshot(raw *models.RawChangeRequest) *models.ConfigSnapshot {
	snap := &models.ConfigSnapshot{
		MaxVerificationLoops: p.MaxVerificationLoops,
		MaxReviewLoops:       p.MaxReviewLoops,
		MaxTDDIterations:     p.MaxTDDIterations,
		MaxRebaseAttempts:    p.MaxRebaseAttempts,
		MaxCILoops:           p.MaxCILoops,
		MaxCostUSD:           p.MaxCostUSD,
		DefaultModel:         p.DefaultModel,
		ExploreModel:         p.ExploreModel,
		PlanModel:            p.PlanModel,
		ProviderChain:        append([]string(nil), p.ProviderChain...),
		Pricing:              PricingTable(),
		DeliveryStrategy:     p.DeliveryStrategy,
		RequireApproval:      p.RequireApproval,
		AgentTimeoutSecs:     p.AgentTimeoutSecs,
		StageTimeoutSecs:     p.StageTimeoutSecs,
		TestTimeoutSecs:      p.TestTimeoutSecs,
		WorkspaceDir:         p.WorkspaceDir,
	}
	if raw != nil && raw.Model != "" {
		snap.DefaultModel = raw.Model
	}
	return snap
}
