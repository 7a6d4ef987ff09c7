package config

// Defaults contains job-level defaults applied when a create request omits
// the corresponding setting.
type Defaults struct {
	// MaxIterations default for the writer/QA feedback loop, bounds [1,10].
	MaxIterations int `yaml:"max_iterations"`

	// TargetWordCount default for new jobs.
	TargetWordCount int `yaml:"target_word_count"`
}

// DefaultDefaults returns the built-in job defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		MaxIterations:   5,
		TargetWordCount: 1500,
	}
}
