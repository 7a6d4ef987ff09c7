package config

// ProviderType defines supported LLM vendors.
type ProviderType string

const (
	// ProviderTypeOpenAI is the OpenAI chat completions API (and compatibles)
	ProviderTypeOpenAI ProviderType = "openai"
	// ProviderTypeAnthropic is the Anthropic messages API
	ProviderTypeAnthropic ProviderType = "anthropic"
)

// IsValid checks if the provider type is valid.
func (t ProviderType) IsValid() bool {
	return t == ProviderTypeOpenAI || t == ProviderTypeAnthropic
}

// StuckJobPolicy defines what the sweeper does with a stuck job.
type StuckJobPolicy string

const (
	// StuckJobPolicyRequeue resets the job to pending for another attempt
	StuckJobPolicyRequeue StuckJobPolicy = "requeue"
	// StuckJobPolicyFail marks the job failed
	StuckJobPolicyFail StuckJobPolicy = "fail"
)

// IsValid checks if the stuck job policy is valid.
func (p StuckJobPolicy) IsValid() bool {
	return p == StuckJobPolicyRequeue || p == StuckJobPolicyFail
}
