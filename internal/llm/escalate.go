package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"peacey/internal/catalog"
	"peacey/internal/intent"
)

// EscalationIntent marks replies written by the language model.
const EscalationIntent = "llm.escalation"

// Escalator answers from the rule table and hands unmatched questions to a language
// model. Any model failure falls back to the rule table's reply.
type Escalator struct {
	matcher      *intent.Matcher
	client       Client
	systemPrompt string
	timeout      time.Duration
}

func NewEscalator(matcher *intent.Matcher, client Client, systemPrompt string, timeout time.Duration) *Escalator {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Escalator{matcher: matcher, client: client, systemPrompt: systemPrompt, timeout: timeout}
}

func (e *Escalator) Resolve(input string) intent.Reply {
	reply := e.matcher.Resolve(input)
	if reply.Matched || e.client == nil {
		return reply
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	msgs := []Message{
		{Role: "system", Content: e.systemPrompt},
		{Role: "user", Content: input},
	}
	resp, err := e.client.Generate(ctx, msgs)
	if err != nil {
		logrus.WithField("intent", reply.Intent).Warnf("escalation failed, using rule reply: %v", err)
		return reply
	}
	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return reply
	}
	logrus.WithFields(logrus.Fields{
		"model":  resp.Model,
		"tokens": resp.TotalTokens,
	}).Debug("escalated unmatched question")
	return intent.Reply{Text: text, Intent: EscalationIntent}
}

// DefaultSystemPrompt keeps the model on funeral-service topics and gives it the catalog.
func DefaultSystemPrompt(assistantName string, cat *catalog.Catalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, the compassionate assistant of EternalpEASE, a funeral service provider in Metro Manila. ", assistantName)
	b.WriteString("Answer briefly and gently, only about funeral planning, packages, services, documentation and grief support. ")
	b.WriteString("If the question is unrelated, politely steer the user back to funeral-service topics. ")
	b.WriteString("Never invent prices; use only this catalog:\n")
	for _, p := range cat.Packages {
		fmt.Fprintf(&b, "- %s: %s\n", p.Name, cat.Price(p))
	}
	b.WriteString("Support e-mail: support@eternalpease.com.")
	return b.String()
}
