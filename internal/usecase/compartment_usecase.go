package usecase

import (
	"context"

	"boxbot/internal/domain/entity"
	"boxbot/internal/domain/service"
)

// OpenResult is the terminal state of one compartment-open conversation.
// Every result maps to an explicit user-facing message; the dialogue
// never ends silently.
type OpenResult string

const (
	// OpenResultOpened means the compartment was unlocked.
	OpenResultOpened OpenResult = "opened"
	// OpenResultDeclined means the user chose not to open.
	OpenResultDeclined OpenResult = "declined"
	// OpenResultTimedOut means a wait step's deadline expired.
	OpenResultTimedOut OpenResult = "timed_out"
	// OpenResultCancelled means the session was aborted externally.
	OpenResultCancelled OpenResult = "cancelled"
	// OpenResultNotReady means the parcel is not pickup-eligible.
	OpenResultNotReady OpenResult = "not_ready"
	// OpenResultAlreadyDelivered means the parcel was already collected.
	OpenResultAlreadyDelivered OpenResult = "already_delivered"
	// OpenResultInvalidInput means the location reply carried no
	// geolocation payload.
	OpenResultInvalidInput OpenResult = "invalid_input"
	// OpenResultUnlockFailed means the upstream unlock call failed.
	OpenResultUnlockFailed OpenResult = "unlock_failed"
)

// CompartmentUsecase drives the bounded, cancellable compartment-open
// dialogue: request location if required, validate the sample, classify
// proximity, present confirm/decline, invoke the unlock and report the
// outcome. Each invocation is independent; re-running after a timeout or
// cancellation always starts from a fresh parcel fetch.
type CompartmentUsecase interface {
	Open(ctx context.Context, conv service.Conversation, account *entity.Account, shipmentNumber string, parcelType entity.ParcelType) (OpenResult, error)
}
