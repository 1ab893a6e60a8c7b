package conversation

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"peacey/internal/catalog"
	"peacey/internal/intent"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type echoResponder struct{}

func (echoResponder) Resolve(input string) intent.Reply {
	return intent.Reply{Text: "echo: " + input, Intent: "echo", Matched: true}
}

func newTestConversation(t *testing.T, opts ...Option) (*Conversation, <-chan Message) {
	t.Helper()
	replies := make(chan Message, 8)
	opts = append([]Option{
		WithDelay(0),
		WithOnReply(func(_, reply Message) { replies <- reply }),
	}, opts...)
	c := New(echoResponder{}, Greeting("Peacey"), opts...)
	t.Cleanup(c.Close)
	return c, replies
}

func waitReply(t *testing.T, replies <-chan Message) Message {
	t.Helper()
	select {
	case m := <-replies:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reply")
		return Message{}
	}
}

func TestNew_SeedsGreeting(t *testing.T) {
	c := New(echoResponder{}, Greeting("Peacey"))
	defer c.Close()

	msgs := c.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "0", msgs[0].ID)
	assert.Equal(t, SenderAssistant, msgs[0].Sender)
	assert.Equal(t, "Hi, I'm Peacey – your EternalpEASE assistant! How can I help you today?", msgs[0].Content)
	assert.False(t, c.Pending())
}

func TestSubmit_AppendsUserThenReply(t *testing.T) {
	c, replies := newTestConversation(t)

	user, err := c.Submit("  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, SenderUser, user.Sender)
	assert.Equal(t, "hello", user.Content)

	reply := waitReply(t, replies)
	assert.Equal(t, "2", reply.ID)
	assert.Equal(t, "echo: hello", reply.Content)
	assert.Equal(t, "echo", reply.Intent)
	assert.True(t, reply.Matched)

	msgs := c.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, []Sender{SenderAssistant, SenderUser, SenderAssistant},
		[]Sender{msgs[0].Sender, msgs[1].Sender, msgs[2].Sender})
	assert.False(t, c.Pending())
}

func TestSubmit_IDsAreMonotonicAndUnique(t *testing.T) {
	c, replies := newTestConversation(t)
	for i := 0; i < 5; i++ {
		_, err := c.Submit("message " + strconv.Itoa(i))
		require.NoError(t, err)
		waitReply(t, replies)
	}

	msgs := c.Messages()
	require.Len(t, msgs, 11)
	seen := map[string]bool{}
	for i, m := range msgs {
		assert.Equal(t, strconv.Itoa(i), m.ID)
		assert.False(t, seen[m.ID])
		seen[m.ID] = true
	}
}

func TestSubmit_RejectsBlankInput(t *testing.T) {
	c, _ := newTestConversation(t)
	for _, in := range []string{"", "   ", "\n\t"} {
		_, err := c.Submit(in)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
	assert.Len(t, c.Messages(), 1)
}

func TestSubmit_RejectsWhileReplyPending(t *testing.T) {
	c := New(echoResponder{}, Greeting("Peacey"), WithDelay(time.Hour))
	defer c.Close()

	_, err := c.Submit("first")
	require.NoError(t, err)
	assert.True(t, c.Pending())

	_, err = c.Submit("second")
	assert.ErrorIs(t, err, ErrReplyPending)
	assert.Len(t, c.Messages(), 2)
}

func TestClose_DiscardsPendingReply(t *testing.T) {
	var called bool
	var mu sync.Mutex
	c := New(echoResponder{}, Greeting("Peacey"),
		WithDelay(20*time.Millisecond),
		WithOnReply(func(_, _ Message) {
			mu.Lock()
			called = true
			mu.Unlock()
		}),
	)

	_, err := c.Submit("hello")
	require.NoError(t, err)
	c.Close()
	c.Close()

	time.Sleep(60 * time.Millisecond)
	mu.Lock()
	assert.False(t, called)
	mu.Unlock()
	assert.Len(t, c.Messages(), 2)
	assert.False(t, c.Pending())

	_, err = c.Submit("again")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestWithDelay_IgnoresNegative(t *testing.T) {
	c := New(echoResponder{}, "hi", WithDelay(-time.Second))
	defer c.Close()
	assert.Equal(t, DefaultDelay, c.delay)
}

func TestConversation_WithMatcher(t *testing.T) {
	m := intent.NewMatcher(intent.DefaultTable(catalog.Default(), "Peacey"))
	replies := make(chan Message, 1)
	c := New(m, Greeting("Peacey"), WithDelay(0), WithOnReply(func(_, r Message) { replies <- r }))
	defer c.Close()

	_, err := c.Submit("price of package C")
	require.NoError(t, err)
	reply := waitReply(t, replies)
	assert.Contains(t, reply.Content, "₱50,000")
	assert.Equal(t, "packages.price_of", reply.Intent)
}
