package config

import "time"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port the API listens on. Overridden by the PORT environment variable.
	Port int `yaml:"port"`

	// RunnerSecretEnv names the environment variable holding the bearer
	// secret for admin endpoints. The secret itself never lives in YAML.
	RunnerSecretEnv string `yaml:"runner_secret_env"`

	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DefaultServerConfig returns the built-in server defaults. WriteTimeout is
// zero because SSE streams hold response writers open indefinitely.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            8080,
		RunnerSecretEnv: "JOB_RUNNER_SECRET",
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    0,
	}
}
