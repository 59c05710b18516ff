package models

// ModelPrice is the per-million-token price for one model id.
type ModelPrice struct {
	InputPerMillion  float64 `json:"input_per_million"`
	OutputPerMillion float64 `json:"output_per_million"`
}

// ConfigSnapshot is the runtime configuration frozen into a run at
// trigger time. Later configuration changes never affect running CRs.
type ConfigSnapshot struct {
	// Loop limits (circuit breakers)
	MaxVerificationLoops int `json:"max_verification_loops"`
	MaxReviewLoops       int `json:"max_review_loops"`
	MaxTDDIterations     int `json:"max_tdd_iterations"`
	MaxRebaseAttempts    int `json:"max_rebase_attempts"`
	MaxCILoops           int `json:"max_ci_loops"`

	// Cost circuit breaker
	MaxCostUSD float64 `json:"max_cost_usd"`

	// Models
	DefaultModel  string   `json:"default_model"`
	ExploreModel  string   `json:"explore_model,omitempty"`
	PlanModel     string   `json:"plan_model,omitempty"`
	ProviderChain []string `json:"provider_chain"`

	// Pricing, keyed by model id. Snapshotted so price changes do not
	// retroactively affect running CRs.
	Pricing map[string]ModelPrice `json:"pricing"`

	// Delivery
	DeliveryStrategy string `json:"delivery_strategy"`
	RequireApproval  bool   `json:"require_approval"`

	// Timeouts (seconds)
	AgentTimeoutSecs int `json:"agent_timeout_secs"`
	StageTimeoutSecs int `json:"stage_timeout_secs"`
	TestTimeoutSecs  int `json:"test_timeout_secs"`

	// Workspace root for bare clones and worktrees
	WorkspaceDir string `json:"workspace_dir"`
}

// PriceFor returns the price entry for a model id, or false when the
// model is not in the snapshot's table.
func (c *ConfigSnapshot) PriceFor(modelID string) (ModelPrice, bool) {
	p, ok := c.Pricing[modelID]
	return p, ok
}

// CostOf computes the USD cost of one invocation from the snapshot table.
// Unknown models cost zero; the gap is visible in the cost_update event.
func (c *ConfigSnapshot) CostOf(modelID string, inTok, outTok int64) float64 {
	p, ok := c.Pricing[modelID]
	if !ok {
		return 0
	}
	return float64(inTok)/1_000_000*p.InputPerMillion +
		float64(outTok)/1_000_000*p.OutputPerMillion
}
