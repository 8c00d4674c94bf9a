package impl

import (
	domainerrors "boxbot/internal/domain/errors"
	"boxbot/internal/domain/service"
	"boxbot/internal/errors"
)

// translateClientError maps the parcel-machine client sentinels onto the
// application errors whose messages the bot replies with. Anything else
// is wrapped and surfaces as the generic internal-error reply.
func translateClientError(err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrParcelNotFound):
		return domainerrors.ErrParcelNotFound
	case errors.Is(err, service.ErrNotAuthenticated):
		return domainerrors.ErrNotAuthorized
	case errors.Is(err, service.ErrUpstreamAPI):
		return domainerrors.ErrUpstreamFailure
	default:
		return errors.Wrap(err, msg)
	}
}
