package assistant

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"peacey/internal/catalog"
	"peacey/internal/config"
	"peacey/internal/conversation"
	"peacey/internal/intent"
	"peacey/internal/llm"
)

// Assistant bundles the catalog, the rule matcher and the responder hosts should use.
type Assistant struct {
	Name      string
	Catalog   *catalog.Catalog
	Matcher   *intent.Matcher
	Responder conversation.Responder
}

// Build loads the catalog named by the config (or the default one), builds the rule
// table and, when an LLM provider is configured, wraps the matcher in an Escalator.
func Build(cfg *config.Config) (*Assistant, error) {
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		c, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		cat = c
	}

	matcher := intent.NewMatcher(intent.DefaultTable(cat, cfg.AssistantName))
	a := &Assistant{Name: cfg.AssistantName, Catalog: cat, Matcher: matcher, Responder: matcher}

	model := cfg.OpenAIModel
	client, err := llm.NewFactory(cfg).CreateClient(string(cfg.LLMProvider), model)
	if err != nil {
		return nil, fmt.Errorf("create llm client: %w", err)
	}
	if client != nil {
		prompt := readSystemPrompt(cfg.SystemPromptPath)
		if prompt == "" {
			prompt = llm.DefaultSystemPrompt(cfg.AssistantName, cat)
		}
		a.Responder = llm.NewEscalator(matcher, client, prompt, cfg.EscalationTimeout)
		logrus.WithField("provider", cfg.LLMProvider).Info("escalating unmatched questions to llm")
	}
	return a, nil
}

func readSystemPrompt(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Warnf("system prompt file not found or unreadable at %s: %v", path, err)
		return ""
	}
	return string(data)
}
