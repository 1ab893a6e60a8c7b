package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peacey/internal/catalog"
	"peacey/internal/intent"
)

type fakeClient struct {
	resp  Response
	err   error
	calls int
	got   []Message
}

func (f *fakeClient) Generate(ctx context.Context, msgs []Message) (Response, error) {
	f.calls++
	f.got = msgs
	if _, ok := ctx.Deadline(); !ok {
		return Response{}, errors.New("expected a deadline")
	}
	return f.resp, f.err
}

func matcher() *intent.Matcher {
	return intent.NewMatcher(intent.DefaultTable(catalog.Default(), "Peacey"))
}

func TestEscalator_MatchedQuestionsStayOnRules(t *testing.T) {
	fc := &fakeClient{resp: Response{Content: "model"}}
	e := NewEscalator(matcher(), fc, "prompt", time.Second)

	r := e.Resolve("price of package C")
	assert.Equal(t, "packages.price_of", r.Intent)
	assert.Equal(t, 0, fc.calls)
}

func TestEscalator_UnmatchedGoesToModel(t *testing.T) {
	fc := &fakeClient{resp: Response{Content: "  We can help with that.  ", Model: "m"}}
	e := NewEscalator(matcher(), fc, "be kind", time.Second)

	r := e.Resolve("qwerty 12345")
	assert.Equal(t, intent.Reply{Text: "We can help with that.", Intent: EscalationIntent}, r)
	require.Len(t, fc.got, 2)
	assert.Equal(t, Message{Role: "system", Content: "be kind"}, fc.got[0])
	assert.Equal(t, Message{Role: "user", Content: "qwerty 12345"}, fc.got[1])
}

func TestEscalator_FallsBackOnFailure(t *testing.T) {
	m := matcher()
	cases := map[string]*fakeClient{
		"error": {err: errors.New("boom")},
		"empty": {resp: Response{Content: "   "}},
	}
	for name, fc := range cases {
		t.Run(name, func(t *testing.T) {
			e := NewEscalator(m, fc, "", 0)
			assert.Equal(t, m.Resolve("forgot my password"), e.Resolve("forgot my password"))
			assert.Equal(t, 1, fc.calls)
		})
	}
}

func TestEscalator_NilClient(t *testing.T) {
	m := matcher()
	e := NewEscalator(m, nil, "", 0)
	assert.Equal(t, intent.DefaultFallback, e.Resolve("qwerty").Text)
}

func TestDefaultSystemPrompt(t *testing.T) {
	p := DefaultSystemPrompt("Peacey", catalog.Default())
	assert.Contains(t, p, "You are Peacey")
	assert.Contains(t, p, "- Package A: ₱30,000")
	assert.Contains(t, p, "- Package J: ₱250,000")
}
