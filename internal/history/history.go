package history

import (
	"sync"

	"peacey/internal/conversation"
)

// Factory creates the conversation for a chat seen for the first time.
type Factory func(chatID int64) *conversation.Conversation

// Manager keeps one conversation per chat.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*conversation.Conversation
	factory  Factory
}

func NewManager(factory Factory) *Manager {
	return &Manager{sessions: make(map[int64]*conversation.Conversation), factory: factory}
}

// Conversation returns the chat's conversation, creating it on first use.
func (m *Manager) Conversation(chatID int64) *conversation.Conversation {
	m.mu.RLock()
	c, ok := m.sessions[chatID]
	m.mu.RUnlock()
	if ok {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.sessions[chatID]; ok {
		return c
	}
	c = m.factory(chatID)
	m.sessions[chatID] = c
	return c
}

// Reset closes the chat's conversation; the next message starts a fresh one.
func (m *Manager) Reset(chatID int64) {
	m.mu.Lock()
	c, ok := m.sessions[chatID]
	delete(m.sessions, chatID)
	m.mu.Unlock()
	if ok {
		c.Close()
	}
}

// GetAll returns the chat's transcript, or nil if the chat has no conversation.
func (m *Manager) GetAll(chatID int64) []conversation.Message {
	m.mu.RLock()
	c, ok := m.sessions[chatID]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	return c.Messages()
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CloseAll closes every conversation and forgets them.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[int64]*conversation.Conversation)
	m.mu.Unlock()
	for _, c := range sessions {
		c.Close()
	}
}
