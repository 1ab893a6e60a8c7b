package conversation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"peacey/internal/intent"
)

// DefaultDelay is the cosmetic "assistant is typing" pause before a reply is appended.
const DefaultDelay = 650 * time.Millisecond

var (
	ErrEmptyInput   = errors.New("empty input")
	ErrReplyPending = errors.New("a reply is still pending")
	ErrClosed       = errors.New("conversation closed")
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one entry of a conversation transcript. Intent and Matched describe
// assistant replies produced by a responder.
type Message struct {
	ID      string `json:"id"`
	Sender  Sender `json:"sender"`
	Content string `json:"content"`
	Intent  string `json:"intent,omitempty"`
	Matched bool   `json:"matched,omitempty"`
}

// Responder turns a user utterance into a reply. *intent.Matcher satisfies it.
type Responder interface {
	Resolve(input string) intent.Reply
}

// Greeting is the seed assistant message of every conversation.
func Greeting(name string) string {
	return fmt.Sprintf("Hi, I'm %s – your EternalpEASE assistant! How can I help you today?", name)
}

type Option func(*Conversation)

func WithDelay(d time.Duration) Option {
	return func(c *Conversation) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithOnReply registers a callback invoked after each assistant reply is appended.
// It runs on the timer goroutine, outside the conversation lock.
func WithOnReply(f func(user, reply Message)) Option {
	return func(c *Conversation) { c.onReply = f }
}

// Conversation is an append-only transcript that alternates user and assistant
// messages. At most one reply is pending at a time.
type Conversation struct {
	mu        sync.Mutex
	responder Responder
	delay     time.Duration
	onReply   func(user, reply Message)

	messages []Message
	nextID   int
	timer    *time.Timer
	closed   bool
}

// New starts a conversation seeded with a single assistant greeting.
func New(responder Responder, greeting string, opts ...Option) *Conversation {
	c := &Conversation{
		responder: responder,
		delay:     DefaultDelay,
	}
	for _, o := range opts {
		o(c)
	}
	c.messages = []Message{{ID: c.newID(), Sender: SenderAssistant, Content: greeting}}
	return c
}

func (c *Conversation) newID() string {
	id := strconv.Itoa(c.nextID)
	c.nextID++
	return id
}

// Submit appends the user's message and schedules the assistant reply.
func (c *Conversation) Submit(input string) (Message, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return Message{}, ErrEmptyInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return Message{}, ErrClosed
	}
	if c.timer != nil {
		return Message{}, ErrReplyPending
	}

	user := Message{ID: c.newID(), Sender: SenderUser, Content: text}
	c.messages = append(c.messages, user)
	c.timer = time.AfterFunc(c.delay, func() { c.reply(user) })
	return user, nil
}

func (c *Conversation) reply(user Message) {
	r := c.responder.Resolve(user.Content)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	msg := Message{ID: c.newID(), Sender: SenderAssistant, Content: r.Text, Intent: r.Intent, Matched: r.Matched}
	c.messages = append(c.messages, msg)
	c.timer = nil
	onReply := c.onReply
	c.mu.Unlock()

	if onReply != nil {
		onReply(user, msg)
	}
}

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

func (c *Conversation) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

// Close cancels a pending reply. A reply whose timer already fired is discarded.
func (c *Conversation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
