package history

import (
	"sync"
	"testing"
	"time"

	"peacey/internal/conversation"
	"peacey/internal/intent"
)

type staticResponder struct{}

func (staticResponder) Resolve(input string) intent.Reply {
	return intent.Reply{Text: "ok", Intent: "static", Matched: true}
}

func newManager(created *int) *Manager {
	return NewManager(func(chatID int64) *conversation.Conversation {
		*created++
		return conversation.New(staticResponder{}, "hello", conversation.WithDelay(time.Hour))
	})
}

func TestManagerConversationGetReset(t *testing.T) {
	var created int
	h := newManager(&created)
	defer h.CloseAll()

	userA := int64(1)
	userB := int64(2)

	if got := h.GetAll(userA); got != nil {
		t.Fatalf("expected nil transcript for unknown chat, got %+v", got)
	}

	convA := h.Conversation(userA)
	if h.Conversation(userA) != convA {
		t.Fatalf("expected the same conversation for the same chat")
	}
	if _, err := convA.Submit("hi"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	h.Conversation(userB)
	if created != 2 || h.Len() != 2 {
		t.Fatalf("unexpected sessions: created=%d len=%d", created, h.Len())
	}

	msgsA := h.GetAll(userA)
	if len(msgsA) != 2 || msgsA[1].Content != "hi" {
		t.Fatalf("unexpected A transcript: %+v", msgsA)
	}

	// Ensure copy semantics
	msgsA[0].Content = "mutated"
	if h.GetAll(userA)[0].Content != "hello" {
		t.Fatalf("internal state mutated via returned slice")
	}

	h.Reset(userA)
	if h.GetAll(userA) != nil {
		t.Fatalf("reset did not clear chat A")
	}
	if len(h.GetAll(userB)) != 1 {
		t.Fatalf("reset should not affect other chats")
	}
	if _, err := convA.Submit("again"); err != conversation.ErrClosed {
		t.Fatalf("expected reset conversation to be closed, got %v", err)
	}

	if h.Conversation(userA) == convA || created != 3 {
		t.Fatalf("expected a fresh conversation after reset")
	}
}

func TestManagerConcurrentAccess(t *testing.T) {
	var mu sync.Mutex
	created := 0
	h := NewManager(func(chatID int64) *conversation.Conversation {
		mu.Lock()
		created++
		mu.Unlock()
		return conversation.New(staticResponder{}, "hello")
	})
	defer h.CloseAll()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h.Conversation(int64(i % 5))
		}(i)
	}
	wg.Wait()

	if created != 5 || h.Len() != 5 {
		t.Fatalf("expected 5 conversations, created=%d len=%d", created, h.Len())
	}
	h.CloseAll()
	if h.Len() != 0 {
		t.Fatalf("CloseAll should forget every chat")
	}
}
