package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"boxbot/config"
	"boxbot/internal/domain/entity"
	"boxbot/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Telegram.ChoiceTimeout = 200 * time.Millisecond
	cfg.Telegram.InputTimeout = 400 * time.Millisecond
	cfg.Geocheck = &config.GeocheckConfig{
		BoxDegrees: 0.0005,
		Freshness:  2 * time.Minute,
		PickupStatuses: []string{
			string(entity.StatusReadyToPickup),
			string(entity.StatusStackInBoxMachine),
			string(entity.StatusStackInCustomerServicePoint),
			string(entity.StatusPickupReminderSent),
		},
	}

	return cfg
}

// scriptedConversation replays prepared user responses and records every
// outgoing prompt. An exhausted queue behaves like an expired wait.
type scriptedConversation struct {
	sent         []service.Prompt
	messages     []*service.Incoming
	choices      []string
	choiceWaits  []time.Duration
	messageWaits []time.Duration
	cancelled    bool
}

func (c *scriptedConversation) Send(_ context.Context, prompt service.Prompt) error {
	c.sent = append(c.sent, prompt)

	return nil
}

func (c *scriptedConversation) AwaitChoice(_ context.Context, timeout time.Duration) (string, error) {
	c.choiceWaits = append(c.choiceWaits, timeout)
	if len(c.choices) == 0 {
		return "", service.ErrAwaitTimeout
	}

	data := c.choices[0]
	c.choices = c.choices[1:]

	return data, nil
}

func (c *scriptedConversation) AwaitMessage(_ context.Context, timeout time.Duration) (*service.Incoming, error) {
	c.messageWaits = append(c.messageWaits, timeout)
	if len(c.messages) == 0 {
		return nil, service.ErrAwaitTimeout
	}

	incoming := c.messages[0]
	c.messages = c.messages[1:]

	return incoming, nil
}

func (c *scriptedConversation) Cancel() {
	c.cancelled = true
}

func (c *scriptedConversation) texts() []string {
	texts := make([]string, 0, len(c.sent))
	for _, prompt := range c.sent {
		texts = append(texts, prompt.Text)
	}

	return texts
}
