package usecase

import (
	"context"

	"boxbot/internal/domain/entity"
	"boxbot/internal/domain/service"
)

// ShareResult is the terminal state of one parcel-sharing conversation.
type ShareResult string

const (
	// ShareResultShared means the friend now has access to the parcel.
	ShareResultShared ShareResult = "shared"
	// ShareResultNotShareable means the parcel does not belong to the
	// user and cannot be shared.
	ShareResultNotShareable ShareResult = "not_shareable"
	// ShareResultNoFriends means the upstream API knows no contacts the
	// parcel could be shared with.
	ShareResultNoFriends ShareResult = "no_friends"
	// ShareResultTimedOut means the friend pick deadline expired.
	ShareResultTimedOut ShareResult = "timed_out"
	// ShareResultCancelled means the session was aborted externally.
	ShareResultCancelled ShareResult = "cancelled"
	// ShareResultInvalidInput means the picked choice matched no friend.
	ShareResultInvalidInput ShareResult = "invalid_input"
	// ShareResultFailed means the upstream share call failed.
	ShareResultFailed ShareResult = "failed"
)

// SharingUsecase drives the parcel-sharing dialogue: fetch the parcel,
// list the eligible contacts, let the user pick one and dispatch the
// share upstream. Like the compartment dialogue, every invocation is
// independent and bounded by the choice deadline.
type SharingUsecase interface {
	Share(ctx context.Context, conv service.Conversation, account *entity.Account, shipmentNumber string) (ShareResult, error)
}
