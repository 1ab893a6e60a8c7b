package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	for _, k := range []string{"ASSISTANT_NAME", "TYPING_DELAY", "STORAGE_DRIVER", "LLM_PROVIDER", "REPORT_SCHEDULE", "LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "Peacey", cfg.AssistantName)
	assert.Equal(t, 650*time.Millisecond, cfg.TypingDelay)
	assert.Equal(t, "jsonl", cfg.StorageDriver)
	assert.Equal(t, "logs/log.jsonl", cfg.StoragePath())
	assert.Equal(t, "0 21 * * *", cfg.ReportSchedule)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ProviderNone, cfg.LLMProvider)
	assert.Equal(t, 20*time.Second, cfg.EscalationTimeout)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("ASSISTANT_NAME", "Ivy")
	t.Setenv("TYPING_DELAY", "0s")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/p.db")
	t.Setenv("ADMIN_USER", "12345")
	t.Setenv("LLM_PROVIDER", "openai")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "Ivy", cfg.AssistantName)
	assert.Equal(t, time.Duration(0), cfg.TypingDelay)
	assert.Equal(t, "/tmp/p.db", cfg.StoragePath())
	assert.Equal(t, int64(12345), cfg.AdminUserID)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string][2]string{
		"negative delay":   {"TYPING_DELAY", "-1s"},
		"bad delay":        {"TYPING_DELAY", "soon"},
		"unknown provider": {"LLM_PROVIDER", "gemini"},
		"bad admin":        {"ADMIN_USER", "root"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}
