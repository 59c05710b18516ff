package models

import "encoding/json"

// Finding severities.
const (
	SeverityCritical = "critical"
	SeverityMajor    = "major"
	SeverityMinor    = "minor"
	SeverityInfo     = "info"
)

// Delivery strategies.
const (
	DeliverySelfContained = "self_contained"
	DeliveryPushAndWait   = "push_and_wait"
	DeliveryPushAndForget = "push_and_forget"
)

// RepoContext describes one repository participating in a change request.
type RepoContext struct {
	RepoURL       string `json:"repo_url"`
	RepoName      string `json:"repo_name"`
	DefaultBranch string `json:"default_branch"`
	WorktreePath  string `json:"worktree_path,omitempty"`
	Conventions   string `json:"conventions,omitempty"` // AGENTS.md or CLAUDE.md contents
	DirectoryTree string `json:"directory_tree,omitempty"`
	Language      string `json:"language"`
	TestCommand   string `json:"test_command"`
}

// BehaviourSpec is the per-repo result of behaviour translation.
type BehaviourSpec struct {
	RepoName  string   `json:"repo_name"`
	SpecFiles []string `json:"spec_files"`
	Summary   string   `json:"summary"`
}

// VerificationResult is the per-repo verifier verdict.
type VerificationResult struct {
	RepoName         string   `json:"repo_name"`
	Verified         bool     `json:"verified"`
	Feedback         string   `json:"feedback,omitempty"`
	MissingScenarios []string `json:"missing_scenarios,omitempty"`
	Issues           []string `json:"issues,omitempty"`
}

// TestRunResult captures one test suite execution.
type TestRunResult struct {
	Command  string `json:"command"`
	Passed   bool   `json:"passed"`
	ExitCode int    `json:"exit_code"`
	Output   string `json:"output,omitempty"`
}

// DevResult is the per-repo outcome of the TDD stage.
type DevResult struct {
	RepoName       string         `json:"repo_name"`
	GeneratedFiles []string       `json:"generated_files"`
	TestResult     *TestRunResult `json:"test_result,omitempty"`
	Iterations     int            `json:"iterations"`
}

// ScopeFlag is a deterministic diff-scope warning emitted before review.
type ScopeFlag struct {
	RepoName string `json:"repo_name"`
	Category string `json:"category"` // config, dependencies, infrastructure
	File     string `json:"file"`
	Message  string `json:"message"`
}

// Finding is one review finding.
type Finding struct {
	RepoName string `json:"repo_name"`
	Severity string `json:"severity"`
	Category string `json:"category"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
	Reviewer string `json:"reviewer"`
}

// Blocking reports whether the finding blocks progression to rebase.
func (f Finding) Blocking() bool {
	return f.Severity == SeverityCritical || f.Severity == SeverityMajor
}

// RebaseOutcome is the per-repo result of the rebase stage.
type RebaseOutcome struct {
	RepoName      string   `json:"repo_name"`
	Clean         bool     `json:"clean"`
	Attempts      int      `json:"attempts"`
	ConflictFiles []string `json:"conflict_files,omitempty"`
	TestResult    *TestRunResult `json:"test_result,omitempty"`
}

// DeliveryResult is the per-repo result of the delivery stage.
type DeliveryResult struct {
	RepoName string `json:"repo_name"`
	Strategy string `json:"strategy"`
	Pushed   bool   `json:"pushed"`
	Verified bool   `json:"verified"`
	PRUrl    string `json:"pr_url,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// ReleaseResult is the per-repo result of the release stage.
type ReleaseResult struct {
	RepoName      string `json:"repo_name"`
	PRDescription string `json:"pr_description"`
	Released      bool   `json:"released"`
}

// ModelCost accumulates token usage and USD cost for one model id.
type ModelCost struct {
	InputTokens  int64   `json:"input_tokens"`
	OutputTokens int64   `json:"output_tokens"`
	CostUSD      float64 `json:"cost_usd"`
}

// CostLedger tracks accumulated cost, per model and aggregated.
type CostLedger struct {
	ByModel      map[string]*ModelCost `json:"by_model"`
	InputTokens  int64                 `json:"input_tokens"`
	OutputTokens int64                 `json:"output_tokens"`
	TotalUSD     float64               `json:"total_usd"`
}

// Add records one agent invocation's usage. Returns the incremental cost.
func (c *CostLedger) Add(modelID string, inTok, outTok int64, usd float64) {
	if c.ByModel == nil {
		c.ByModel = make(map[string]*ModelCost)
	}
	mc := c.ByModel[modelID]
	if mc == nil {
		mc = &ModelCost{}
		c.ByModel[modelID] = mc
	}
	mc.InputTokens += inTok
	mc.OutputTokens += outTok
	mc.CostUSD += usd
	c.InputTokens += inTok
	c.OutputTokens += outTok
	c.TotalUSD += usd
}

// PipelineState is the working payload checkpointed after each node.
// The executor owns it exclusively; fan-out sub-tasks receive a deep
// copy and return deltas that the executor merges at fan-in.
type PipelineState struct {
	// Change request
	CRID    string            `json:"cr_id"`
	Raw     *RawChangeRequest `json:"raw"`
	CR      *StructuredCR     `json:"cr,omitempty"`

	// Repo context
	Repos []RepoContext `json:"repos,omitempty"`

	// Behaviour
	Specs               map[string]*BehaviourSpec      `json:"specs,omitempty"`
	Verifications       map[string]*VerificationResult `json:"verifications,omitempty"`
	Verified            bool                           `json:"verified"`
	ConsistencyFeedback string                         `json:"consistency_feedback,omitempty"`
	VerificationLoops   int                            `json:"verification_loops"`

	// Development
	DevResults map[string]*DevResult `json:"dev_results,omitempty"`

	// Review
	Findings    []Finding   `json:"findings,omitempty"`
	ScopeFlags  []ScopeFlag `json:"scope_flags,omitempty"`
	ReviewLoops int         `json:"review_loops"`
	CILoops     int         `json:"ci_loops"`

	// Rebase. RebaseClean is tri-state: nil means "not attempted yet"
	// and routes the same as true.
	RebaseClean    *bool                     `json:"rebase_clean,omitempty"`
	RebaseOutcomes map[string]*RebaseOutcome `json:"rebase_outcomes,omitempty"`

	// Delivery. AwaitingCI is set when branches were pushed under
	// push_and_wait and no CI verdict has arrived yet.
	DeliveryResults map[string]*DeliveryResult `json:"delivery_results,omitempty"`
	AllVerified     bool                       `json:"all_verified"`
	AwaitingCI      bool                       `json:"awaiting_ci,omitempty"`

	// Release
	Approved       bool                      `json:"approved"`
	ReleaseResults map[string]*ReleaseResult `json:"release_results,omitempty"`

	// Cost
	Cost CostLedger `json:"cost"`

	// Frozen configuration; read-only for the lifetime of the run.
	Config *ConfigSnapshot `json:"config"`

	// Most recently consumed operator instruction, merged into the
	// prompts of subsequent agents.
	InterventionSlot string `json:"intervention_slot,omitempty"`
}

// NewPipelineState builds the initial state for a fresh run.
func NewPipelineState(crID string, raw *RawChangeRequest, cfg *ConfigSnapshot) *PipelineState {
	return &PipelineState{
		CRID:   crID,
		Raw:    raw,
		Config: cfg,
	}
}

// Clone returns a deep copy via JSON round-trip. Checkpoints and fan-out
// snapshots must never alias the executor's live state.
func (s *PipelineState) Clone() (*PipelineState, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out PipelineState
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BlockingFindings returns only critical and major findings.
func (s *PipelineState) BlockingFindings() []Finding {
	var out []Finding
	for _, f := range s.Findings {
		if f.Blocking() {
			out = append(out, f)
		}
	}
	return out
}
