package telegram

import (
	"context"
	"sync"
	"time"

	"boxbot/internal/domain/service"
)

// promptSender delivers outgoing prompts to one chat. The bot implements
// it; conversations never touch the Telegram API directly.
type promptSender interface {
	sendPrompt(chatID int64, prompt service.Prompt) error
}

// conversation routes one chat's updates into a single active dialogue.
// The dispatcher owns the inbound side (deliverMessage, deliverChoice);
// the workflow owns the outbound side through the service.Conversation
// interface. At most one conversation exists per chat at a time.
type conversation struct {
	chatID int64
	out    promptSender

	messages chan *service.Incoming
	choices  chan string

	cancelOnce sync.Once
	done       chan struct{}
}

func newConversation(chatID int64, out promptSender) *conversation {
	return &conversation{
		chatID:   chatID,
		out:      out,
		messages: make(chan *service.Incoming, 1),
		choices:  make(chan string, 1),
		done:     make(chan struct{}),
	}
}

// Send delivers a prompt to the user.
func (c *conversation) Send(_ context.Context, prompt service.Prompt) error {
	return c.out.sendPrompt(c.chatID, prompt)
}

// AwaitChoice blocks until the user presses an offered button, the timeout
// expires, or the session is torn down.
func (c *conversation) AwaitChoice(ctx context.Context, timeout time.Duration) (string, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case data := <-c.choices:
		return data, nil
	case <-timer.C:
		return "", service.ErrAwaitTimeout
	case <-c.done:
		return "", service.ErrConversationCancelled
	case <-ctx.Done():
		return "", service.ErrConversationCancelled
	}
}

// AwaitMessage blocks until the user sends any message, the timeout
// expires, or the session is torn down.
func (c *conversation) AwaitMessage(ctx context.Context, timeout time.Duration) (*service.Incoming, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case incoming := <-c.messages:
		return incoming, nil
	case <-timer.C:
		return nil, service.ErrAwaitTimeout
	case <-c.done:
		return nil, service.ErrConversationCancelled
	case <-ctx.Done():
		return nil, service.ErrConversationCancelled
	}
}

// Cancel aborts the session. Safe to call from any goroutine, any number
// of times.
func (c *conversation) Cancel() {
	c.cancelOnce.Do(func() {
		close(c.done)
	})
}

// deliverMessage hands an inbound message to the waiting workflow. The
// buffered channel absorbs one early reply; anything beyond that while no
// wait is active is dropped rather than blocking the dispatcher.
func (c *conversation) deliverMessage(incoming *service.Incoming) {
	select {
	case c.messages <- incoming:
	case <-c.done:
	default:
	}
}

// deliverChoice hands an inbound button press to the waiting workflow.
func (c *conversation) deliverChoice(data string) {
	select {
	case c.choices <- data:
	case <-c.done:
	default:
	}
}
