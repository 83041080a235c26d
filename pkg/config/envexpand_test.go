package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "admin token injected into http section",
			input: "http:\n  admin_token: {{.KITT_ADMIN_TOKEN}}",
			env:   map[string]string{"KITT_ADMIN_TOKEN": "s3cret"},
			want:  "http:\n  admin_token: s3cret",
		},
		{
			name:  "database credentials from environment",
			input: "database:\n  host: {{.KITT_DB_HOST}}\n  port: {{.KITT_DB_PORT}}\n  password: {{.KITT_DB_PASSWORD}}",
			env: map[string]string{
				"KITT_DB_HOST":     "pg.lab.internal",
				"KITT_DB_PORT":     "5432",
				"KITT_DB_PASSWORD": "p@ss$word",
			},
			want: "database:\n  host: pg.lab.internal\n  port: 5432\n  password: p@ss$word",
		},
		{
			name:  "quant filter regex with literal dollar untouched",
			input: `skip_patterns: ["^IQ[0-9].*$", ".*-imat$"]`,
			env:   map[string]string{},
			want:  `skip_patterns: ["^IQ[0-9].*$", ".*-imat$"]`,
		},
		{
			name:  "shell-style ${VAR} is not template syntax",
			input: "ollama_registry_url: ${REGISTRY}",
			env:   map[string]string{"REGISTRY": "https://evil.example"},
			want:  "ollama_registry_url: ${REGISTRY}",
		},
		{
			name:  "missing variable expands to empty",
			input: "discovery:\n  huggingface_token: {{.HF_TOKEN}}",
			env:   map[string]string{},
			want:  "discovery:\n  huggingface_token: ",
		},
		{
			name:  "multiple references in one value",
			input: "addr: {{.KITT_HOST}}:{{.KITT_PORT}}",
			env:   map[string]string{"KITT_HOST": "0.0.0.0", "KITT_PORT": "8080"},
			want:  "addr: 0.0.0.0:8080",
		},
		{
			name:  "content without references is unchanged",
			input: "executor:\n  run_timeout: 30m\n  queue_capacity: 64",
			env:   map[string]string{"UNUSED": "value"},
			want:  "executor:\n  run_timeout: 30m\n  queue_capacity: 64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

// Malformed template syntax must pass through unchanged with no env
// leakage; the YAML parser then reports the actual problem.
func TestExpandEnvMalformedTemplatePassesThrough(t *testing.T) {
	inputs := []string{
		"admin_token: {{.KITT_ADMIN_TOKEN",
		"admin_token: {{",
		"admin_token: {{KITT_ADMIN_TOKEN}}",
		"admin_token: {{.KITT_ADMIN_TOKEN | upper}}",
		"database:\n  password: {{.KITT_DB_PASSWORD\nhttp:\n  addr: :8080",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Setenv("KITT_ADMIN_TOKEN", "must-not-leak")
			t.Setenv("KITT_DB_PASSWORD", "must-not-leak")

			result := ExpandEnv([]byte(input))
			assert.Equal(t, input, string(result))
			assert.NotContains(t, string(result), "must-not-leak")
		})
	}
}

// A kitt.yaml fragment round-trips through expansion into the typed
// server config.
func TestExpandEnvFeedsServerConfig(t *testing.T) {
	t.Setenv("KITT_DB_PASSWORD", "hunter2")
	t.Setenv("KITT_ADMIN_TOKEN", "admin-token")

	input := `
database:
  host: pg.lab.internal
  password: {{.KITT_DB_PASSWORD}}
http:
  addr: ":9090"
  admin_token: {{.KITT_ADMIN_TOKEN}}
discovery:
  huggingface_base_url: https://huggingface.co
`

	var cfg ServerConfig
	require.NoError(t, yaml.Unmarshal(ExpandEnv([]byte(input)), &cfg))
	assert.Equal(t, "hunter2", cfg.Database.Password)
	assert.Equal(t, "admin-token", cfg.HTTP.AdminToken)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "https://huggingface.co", cfg.Discovery.HuggingFaceBaseURL)
}

func TestExpandEnvEmptyInput(t *testing.T) {
	assert.Empty(t, ExpandEnv(nil))
	assert.Empty(t, ExpandEnv([]byte("")))
}
