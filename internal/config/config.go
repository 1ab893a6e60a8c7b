package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/sirupsen/logrus"
)

type LLMProvider string

const (
	ProviderNone   LLMProvider = ""
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	AdminUserID      int64  `env:"ADMIN_USER"`

	// Assistant
	AssistantName string        `env:"ASSISTANT_NAME" envDefault:"Peacey"`
	CatalogPath   string        `env:"CATALOG_PATH"`
	TypingDelay   time.Duration `env:"TYPING_DELAY" envDefault:"650ms"`

	// Storage
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"jsonl"`
	LogFilePath   string `env:"LOG_FILE_PATH" envDefault:"logs/log.jsonl"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"data/peacey.db"`

	// Reports
	ReportSchedule string `env:"REPORT_SCHEDULE" envDefault:"0 21 * * *"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// LLM escalation for unmatched questions (disabled when empty)
	LLMProvider       LLMProvider   `env:"LLM_PROVIDER"`
	OpenAIAPIKey      string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL     string        `env:"OPENAI_BASE_URL"`
	OpenAIModel       string        `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	YandexOAuthToken  string        `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID    string        `env:"YANDEX_FOLDER_ID"`
	SystemPromptPath  string        `env:"SYSTEM_PROMPT_PATH"`
	EscalationTimeout time.Duration `env:"ESCALATION_TIMEOUT" envDefault:"20s"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`
}

// Parse reads the configuration from the environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.TypingDelay < 0 {
		return nil, fmt.Errorf("parse config: TYPING_DELAY must not be negative, got %s", cfg.TypingDelay)
	}
	switch cfg.LLMProvider {
	case ProviderNone, ProviderOpenAI, ProviderYandex:
	default:
		return nil, fmt.Errorf("parse config: unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
	return cfg, nil
}

func New() *Config {
	cfg, err := Parse()
	if err != nil {
		logrus.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}

// StoragePath returns the file backing the configured storage driver.
func (c *Config) StoragePath() string {
	if c.StorageDriver == "sqlite" {
		return c.SQLitePath
	}
	return c.LogFilePath
}
