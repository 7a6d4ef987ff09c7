package models

import "time"

// AgentType identifies one of the five pipeline agents.
type AgentType string

const (
	AgentTypeResearch       AgentType = "research"
	AgentTypeWriter         AgentType = "writer"
	AgentTypeSEO            AgentType = "seo"
	AgentTypeQA             AgentType = "qa"
	AgentTypeProjectManager AgentType = "project_manager"
)

// PipelineOrder is the default agent execution order. The QA back-edge to
// the writer is handled by the orchestrator, not encoded here.
var PipelineOrder = []AgentType{
	AgentTypeResearch,
	AgentTypeWriter,
	AgentTypeSEO,
	AgentTypeQA,
	AgentTypeProjectManager,
}

// ValidAgentType reports whether s names a known agent.
func ValidAgentType(s string) bool {
	switch AgentType(s) {
	case AgentTypeResearch, AgentTypeWriter, AgentTypeSEO, AgentTypeQA, AgentTypeProjectManager:
		return true
	}
	return false
}

// JobSettings is the closed per-job configuration record.
type JobSettings struct {
	AutoPost         bool                 `json:"autoPost,omitempty"`
	TargetWordCount  int                  `json:"targetWordCount,omitempty"`
	MaxIterations    int                  `json:"maxIterations,omitempty"`
	Template         string               `json:"template,omitempty"`
	ParentPageID     string               `json:"parentPageId,omitempty"`
	PersonaOverrides map[AgentType]string `json:"personaOverrides,omitempty"`
	SkipAgents       []AgentType          `json:"skipAgents,omitempty"`
	Context          string               `json:"context,omitempty"`
}

// SkipSet returns the skip list as a set for O(1) membership checks.
func (s JobSettings) SkipSet() map[AgentType]bool {
	if len(s.SkipAgents) == 0 {
		return nil
	}
	set := make(map[AgentType]bool, len(s.SkipAgents))
	for _, a := range s.SkipAgents {
		set[a] = true
	}
	return set
}

// CreateJobRequest contains fields for creating a new job.
type CreateJobRequest struct {
	Keyword   string      `json:"keyword"`
	Settings  JobSettings `json:"settings"`
	Priority  int         `json:"priority,omitempty"`
	CreatedBy string      `json:"created_by,omitempty"`
}

// JobFilters contains filtering options for listing jobs.
type JobFilters struct {
	Status         string `json:"status,omitempty"`
	CreatedBy      string `json:"created_by,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`
	OrderBy        string `json:"order_by,omitempty"`
	OrderDirection string `json:"order_direction,omitempty"`
}

// JobPatch carries partial job updates. Nil fields are left untouched.
type JobPatch struct {
	Status            *string
	CurrentAgent      *string
	ClearCurrentAgent bool
	CurrentIteration  *int
	ProgressPercent   *int
	FinalOutput       map[string]interface{}
	PageID            *string
	LastError         *string
	CancelRequested   *bool
	StartedAt         *time.Time
	CompletedAt       *time.Time
	HeartbeatAt       *time.Time
}

// CreateStepRequest contains fields for appending a step to a job.
type CreateStepRequest struct {
	JobID     string                 `json:"job_id"`
	AgentType AgentType              `json:"agent_type"`
	Iteration int                    `json:"iteration"`
	Input     map[string]interface{} `json:"input,omitempty"`
}

// StepPatch carries partial step updates. Nil fields are left untouched.
type StepPatch struct {
	Status           *string
	TokensUsed       *int
	PromptTokens     *int
	CompletionTokens *int
	DurationMs       *int
	Output           map[string]interface{}
	AppendLogs       []string
	ErrorMessage     *string
	StartedAt        *time.Time
	CompletedAt      *time.Time
}

// CreateEvalRequest contains fields for recording a QA evaluation.
type CreateEvalRequest struct {
	JobID              string   `json:"job_id"`
	StepID             string   `json:"step_id"`
	Iteration          int      `json:"iteration"`
	OverallScore       int      `json:"overall_score"`
	ReadabilityScore   int      `json:"readability_score"`
	SEOScore           int      `json:"seo_score"`
	AccuracyScore      int      `json:"accuracy_score"`
	EngagementScore    int      `json:"engagement_score"`
	BrandVoiceScore    int      `json:"brand_voice_score"`
	Passed             bool     `json:"passed"`
	Issues             []Issue  `json:"issues,omitempty"`
	Feedback           string   `json:"feedback,omitempty"`
	FixedIssueIDs      []string `json:"fixed_issue_ids,omitempty"`
	PersistingIssueIDs []string `json:"persisting_issue_ids,omitempty"`
}
