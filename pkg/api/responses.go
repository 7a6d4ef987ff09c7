package api

import (
	"time"

	"github.com/copymill/copymill/ent"
	"github.com/copymill/copymill/pkg/models"
)

// JobResponse is the wire shape for a job.
type JobResponse struct {
	JobID            string                 `json:"jobId"`
	Keyword          string                 `json:"keyword"`
	Status           string                 `json:"status"`
	CurrentAgent     *string                `json:"currentAgent,omitempty"`
	CurrentIteration int                    `json:"currentIteration"`
	MaxIterations    int                    `json:"maxIterations"`
	ProgressPercent  int                    `json:"progressPercent"`
	Priority         int                    `json:"priority"`
	TotalTokensUsed  int                    `json:"totalTokensUsed"`
	EstimatedCostUSD float64                `json:"estimatedCostUsd"`
	Settings         models.JobSettings     `json:"settings"`
	FinalOutput      map[string]interface{} `json:"finalOutput,omitempty"`
	PageID           *string                `json:"pageId,omitempty"`
	LastError        *string                `json:"lastError,omitempty"`
	CancelRequested  bool                   `json:"cancelRequested"`
	CreatedBy        string                 `json:"createdBy,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
	StartedAt        *time.Time             `json:"startedAt,omitempty"`
	CompletedAt      *time.Time             `json:"completedAt,omitempty"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

func toJobResponse(j *ent.Job) JobResponse {
	return JobResponse{
		JobID:            j.ID,
		Keyword:          j.Keyword,
		Status:           string(j.Status),
		CurrentAgent:     j.CurrentAgent,
		CurrentIteration: j.CurrentIteration,
		MaxIterations:    j.MaxIterations,
		ProgressPercent:  j.ProgressPercent,
		Priority:         j.Priority,
		TotalTokensUsed:  j.TotalTokensUsed,
		EstimatedCostUSD: j.EstimatedCostUsd,
		Settings:         j.Settings,
		FinalOutput:      j.FinalOutput,
		PageID:           j.PageID,
		LastError:        j.LastError,
		CancelRequested:  j.CancelRequested,
		CreatedBy:        j.CreatedBy,
		CreatedAt:        j.CreatedAt,
		StartedAt:        j.StartedAt,
		CompletedAt:      j.CompletedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

func toJobResponses(jobs []*ent.Job) []JobResponse {
	out := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		out[i] = toJobResponse(j)
	}
	return out
}

// StepResponse is the wire shape for one pipeline step.
type StepResponse struct {
	StepID           string                 `json:"stepId"`
	AgentType        string                 `json:"agentType"`
	Iteration        int                    `json:"iteration"`
	Status           string                 `json:"status"`
	TokensUsed       int                    `json:"tokensUsed"`
	PromptTokens     int                    `json:"promptTokens"`
	CompletionTokens int                    `json:"completionTokens"`
	DurationMs       *int                   `json:"durationMs,omitempty"`
	Output           map[string]interface{} `json:"output,omitempty"`
	ErrorMessage     *string                `json:"errorMessage,omitempty"`
	StartedAt        *time.Time             `json:"startedAt,omitempty"`
	CompletedAt      *time.Time             `json:"completedAt,omitempty"`
}

func toStepResponses(steps []*ent.JobStep) []StepResponse {
	out := make([]StepResponse, len(steps))
	for i, s := range steps {
		out[i] = StepResponse{
			StepID:           s.ID,
			AgentType:        string(s.AgentType),
			Iteration:        s.Iteration,
			Status:           string(s.Status),
			TokensUsed:       s.TokensUsed,
			PromptTokens:     s.PromptTokens,
			CompletionTokens: s.CompletionTokens,
			DurationMs:       s.DurationMs,
			Output:           s.Output,
			ErrorMessage:     s.ErrorMessage,
			StartedAt:        s.StartedAt,
			CompletedAt:      s.CompletedAt,
		}
	}
	return out
}

// EvalResponse is the wire shape for one QA evaluation.
type EvalResponse struct {
	EvalID             string         `json:"evalId"`
	StepID             string         `json:"stepId"`
	Iteration          int            `json:"iteration"`
	OverallScore       int            `json:"overallScore"`
	ReadabilityScore   int            `json:"readabilityScore"`
	SEOScore           int            `json:"seoScore"`
	AccuracyScore      int            `json:"accuracyScore"`
	EngagementScore    int            `json:"engagementScore"`
	BrandVoiceScore    int            `json:"brandVoiceScore"`
	Passed             bool           `json:"passed"`
	Issues             []models.Issue `json:"issues,omitempty"`
	Feedback           string         `json:"feedback,omitempty"`
	FixedIssueIDs      []string       `json:"fixedIssueIds,omitempty"`
	PersistingIssueIDs []string       `json:"persistingIssueIds,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
}

func toEvalResponses(evals []*ent.JobEval) []EvalResponse {
	out := make([]EvalResponse, len(evals))
	for i, e := range evals {
		out[i] = EvalResponse{
			EvalID:             e.ID,
			StepID:             e.StepID,
			Iteration:          e.Iteration,
			OverallScore:       e.OverallScore,
			ReadabilityScore:   e.ReadabilityScore,
			SEOScore:           e.SeoScore,
			AccuracyScore:      e.AccuracyScore,
			EngagementScore:    e.EngagementScore,
			BrandVoiceScore:    e.BrandVoiceScore,
			Passed:             e.Passed,
			Issues:             e.Issues,
			Feedback:           e.Feedback,
			FixedIssueIDs:      e.FixedIssueIds,
			PersistingIssueIDs: e.PersistingIssueIds,
			CreatedAt:          e.CreatedAt,
		}
	}
	return out
}

// PersonaResponse is the wire shape for a persona. The system prompt is
// included; this is an admin-only surface.
type PersonaResponse struct {
	PersonaID    string    `json:"personaId"`
	AgentType    string    `json:"agentType"`
	Name         string    `json:"name"`
	SystemPrompt string    `json:"systemPrompt"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	Temperature  float64   `json:"temperature"`
	MaxTokens    int       `json:"maxTokens"`
	IsDefault    bool      `json:"isDefault"`
	IsEnabled    bool      `json:"isEnabled"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toPersonaResponse(p *ent.Persona) PersonaResponse {
	return PersonaResponse{
		PersonaID:    p.ID,
		AgentType:    string(p.AgentType),
		Name:         p.Name,
		SystemPrompt: p.SystemPrompt,
		Provider:     p.Provider,
		Model:        p.Model,
		Temperature:  p.Temperature,
		MaxTokens:    p.MaxTokens,
		IsDefault:    p.IsDefault,
		IsEnabled:    p.IsEnabled,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// LogResponse is the wire shape for one system log row.
type LogResponse struct {
	LogID     string                 `json:"logId"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

func toLogResponses(rows []*ent.SystemLog) []LogResponse {
	out := make([]LogResponse, len(rows))
	for i, r := range rows {
		out[i] = LogResponse{
			LogID:     r.ID,
			Level:     string(r.Level),
			Message:   r.Message,
			Data:      r.Data,
			CreatedAt: r.CreatedAt,
		}
	}
	return out
}
