package service

import (
	"context"
	"errors"
	"time"
)

// Conversation wait errors. Timeout and explicit cancellation both
// terminate a dialogue; partial state is discarded either way.
var (
	// ErrAwaitTimeout is returned when the user does not respond within
	// the wait step's deadline.
	ErrAwaitTimeout = errors.New("conversation wait timed out")
	// ErrConversationCancelled is returned when the session was cancelled
	// while a wait was in flight.
	ErrConversationCancelled = errors.New("conversation cancelled")
)

// Choice is one inline option offered to the user.
type Choice struct {
	Label string // Text shown on the button.
	Data  string // Structured callback payload, never re-parsed from rendered text.
}

// Location is a shared geolocation sample.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Prompt is an outgoing conversation message.
type Prompt struct {
	Text            string
	Choices         []Choice // Inline choice buttons, if any.
	RequestLocation bool     // Ask the client to offer a share-location button.
}

// Incoming is a user response received inside a conversation.
type Incoming struct {
	Text     string
	Location *Location // Nil when the message carries no location payload.
}

// Conversation is one bounded dialogue with a single user. Implementations
// route the chat's updates into the active session; every wait has an
// explicit deadline and expiry always terminates the dialogue.
type Conversation interface {
	// Send delivers a prompt to the user.
	Send(ctx context.Context, prompt Prompt) error

	// AwaitChoice blocks until the user presses one of the previously
	// offered choices, returning its Data payload.
	AwaitChoice(ctx context.Context, timeout time.Duration) (string, error)

	// AwaitMessage blocks until the user sends any message.
	AwaitMessage(ctx context.Context, timeout time.Duration) (*Incoming, error)

	// Cancel aborts the session. It is safe to call from any state and
	// never leaves the chat blocked for other commands.
	Cancel()
}
