// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/copymill/copymill/ent/job"
	"github.com/copymill/copymill/ent/jobeval"
	"github.com/copymill/copymill/ent/jobstep"
	"github.com/copymill/copymill/ent/persona"
	"github.com/copymill/copymill/ent/schema"
	"github.com/copymill/copymill/ent/systemlog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescKeyword is the schema descriptor for keyword field.
	jobDescKeyword := jobFields[1].Descriptor()
	// job.KeywordValidator is a validator for the "keyword" field. It is called by the builders before save.
	job.KeywordValidator = jobDescKeyword.Validators[0].(func(string) error)
	// jobDescCurrentIteration is the schema descriptor for current_iteration field.
	jobDescCurrentIteration := jobFields[4].Descriptor()
	// job.DefaultCurrentIteration holds the default value on creation for the current_iteration field.
	job.DefaultCurrentIteration = jobDescCurrentIteration.Default.(int)
	// jobDescMaxIterations is the schema descriptor for max_iterations field.
	jobDescMaxIterations := jobFields[5].Descriptor()
	// job.DefaultMaxIterations holds the default value on creation for the max_iterations field.
	job.DefaultMaxIterations = jobDescMaxIterations.Default.(int)
	// jobDescTotalTokensUsed is the schema descriptor for total_tokens_used field.
	jobDescTotalTokensUsed := jobFields[6].Descriptor()
	// job.DefaultTotalTokensUsed holds the default value on creation for the total_tokens_used field.
	job.DefaultTotalTokensUsed = jobDescTotalTokensUsed.Default.(int)
	// jobDescEstimatedCostUsd is the schema descriptor for estimated_cost_usd field.
	jobDescEstimatedCostUsd := jobFields[7].Descriptor()
	// job.DefaultEstimatedCostUsd holds the default value on creation for the estimated_cost_usd field.
	job.DefaultEstimatedCostUsd = jobDescEstimatedCostUsd.Default.(float64)
	// jobDescProgressPercent is the schema descriptor for progress_percent field.
	jobDescProgressPercent := jobFields[8].Descriptor()
	// job.DefaultProgressPercent holds the default value on creation for the progress_percent field.
	job.DefaultProgressPercent = jobDescProgressPercent.Default.(int)
	// jobDescPriority is the schema descriptor for priority field.
	jobDescPriority := jobFields[9].Descriptor()
	// job.DefaultPriority holds the default value on creation for the priority field.
	job.DefaultPriority = jobDescPriority.Default.(int)
	// jobDescCancelRequested is the schema descriptor for cancel_requested field.
	jobDescCancelRequested := jobFields[14].Descriptor()
	// job.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	job.DefaultCancelRequested = jobDescCancelRequested.Default.(bool)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[15].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[18].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobevalFields := schema.JobEval{}.Fields()
	_ = jobevalFields
	// jobevalDescIteration is the schema descriptor for iteration field.
	jobevalDescIteration := jobevalFields[3].Descriptor()
	// jobeval.DefaultIteration holds the default value on creation for the iteration field.
	jobeval.DefaultIteration = jobevalDescIteration.Default.(int)
	// jobevalDescCreatedAt is the schema descriptor for created_at field.
	jobevalDescCreatedAt := jobevalFields[15].Descriptor()
	// jobeval.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobeval.DefaultCreatedAt = jobevalDescCreatedAt.Default.(func() time.Time)
	jobstepFields := schema.JobStep{}.Fields()
	_ = jobstepFields
	// jobstepDescIteration is the schema descriptor for iteration field.
	jobstepDescIteration := jobstepFields[3].Descriptor()
	// jobstep.DefaultIteration holds the default value on creation for the iteration field.
	jobstep.DefaultIteration = jobstepDescIteration.Default.(int)
	// jobstepDescTokensUsed is the schema descriptor for tokens_used field.
	jobstepDescTokensUsed := jobstepFields[5].Descriptor()
	// jobstep.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	jobstep.DefaultTokensUsed = jobstepDescTokensUsed.Default.(int)
	// jobstepDescPromptTokens is the schema descriptor for prompt_tokens field.
	jobstepDescPromptTokens := jobstepFields[6].Descriptor()
	// jobstep.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	jobstep.DefaultPromptTokens = jobstepDescPromptTokens.Default.(int)
	// jobstepDescCompletionTokens is the schema descriptor for completion_tokens field.
	jobstepDescCompletionTokens := jobstepFields[7].Descriptor()
	// jobstep.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	jobstep.DefaultCompletionTokens = jobstepDescCompletionTokens.Default.(int)
	// jobstepDescCreatedAt is the schema descriptor for created_at field.
	jobstepDescCreatedAt := jobstepFields[15].Descriptor()
	// jobstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobstep.DefaultCreatedAt = jobstepDescCreatedAt.Default.(func() time.Time)
	personaFields := schema.Persona{}.Fields()
	_ = personaFields
	// personaDescName is the schema descriptor for name field.
	personaDescName := personaFields[2].Descriptor()
	// persona.NameValidator is a validator for the "name" field. It is called by the builders before save.
	persona.NameValidator = personaDescName.Validators[0].(func(string) error)
	// personaDescTemperature is the schema descriptor for temperature field.
	personaDescTemperature := personaFields[6].Descriptor()
	// persona.DefaultTemperature holds the default value on creation for the temperature field.
	persona.DefaultTemperature = personaDescTemperature.Default.(float64)
	// personaDescMaxTokens is the schema descriptor for max_tokens field.
	personaDescMaxTokens := personaFields[7].Descriptor()
	// persona.DefaultMaxTokens holds the default value on creation for the max_tokens field.
	persona.DefaultMaxTokens = personaDescMaxTokens.Default.(int)
	// personaDescIsDefault is the schema descriptor for is_default field.
	personaDescIsDefault := personaFields[8].Descriptor()
	// persona.DefaultIsDefault holds the default value on creation for the is_default field.
	persona.DefaultIsDefault = personaDescIsDefault.Default.(bool)
	// personaDescIsEnabled is the schema descriptor for is_enabled field.
	personaDescIsEnabled := personaFields[9].Descriptor()
	// persona.DefaultIsEnabled holds the default value on creation for the is_enabled field.
	persona.DefaultIsEnabled = personaDescIsEnabled.Default.(bool)
	// personaDescCreatedAt is the schema descriptor for created_at field.
	personaDescCreatedAt := personaFields[10].Descriptor()
	// persona.DefaultCreatedAt holds the default value on creation for the created_at field.
	persona.DefaultCreatedAt = personaDescCreatedAt.Default.(func() time.Time)
	// personaDescUpdatedAt is the schema descriptor for updated_at field.
	personaDescUpdatedAt := personaFields[11].Descriptor()
	// persona.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	persona.DefaultUpdatedAt = personaDescUpdatedAt.Default.(func() time.Time)
	// persona.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	persona.UpdateDefaultUpdatedAt = personaDescUpdatedAt.UpdateDefault.(func() time.Time)
	systemlogFields := schema.SystemLog{}.Fields()
	_ = systemlogFields
	// systemlogDescCreatedAt is the schema descriptor for created_at field.
	systemlogDescCreatedAt := systemlogFields[6].Descriptor()
	// systemlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	systemlog.DefaultCreatedAt = systemlogDescCreatedAt.Default.(func() time.Time)
}
