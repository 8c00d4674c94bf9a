package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"boxbot/config"
	"boxbot/internal/domain/entity"
	"boxbot/internal/domain/service"
	"boxbot/internal/errors"
	"boxbot/internal/usecase"
)

const (
	msgNotShareable  = "This parcel does not belong to you, cannot share it!"
	msgNoFriends     = "This parcel has no people it can be shared with!"
	msgPickFriend    = "Who do you want to share this parcel with?"
	msgShared        = "Parcel shared!"
	msgShareFailed   = "Not shared, try again!"
	msgShareTimedOut = "Time has run out, please start sharing again!"
)

type sharingService struct {
	client        service.ParcelClient
	consent       usecase.ConsentUsecase
	choiceTimeout time.Duration
	logger        *slog.Logger
}

// NewSharingService creates the parcel-sharing conversation driver.
func NewSharingService(
	client service.ParcelClient,
	consent usecase.ConsentUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SharingUsecase {
	return &sharingService{
		client:        client,
		consent:       consent,
		choiceTimeout: cfg.Telegram.ChoiceTimeout,
		logger:        logger,
	}
}

// Share drives one parcel-sharing dialogue to a terminal state. Only
// parcels the upstream API flags shareable can be shared; tracked and
// received shipments are rejected before any contacts are listed.
func (s *sharingService) Share(ctx context.Context, conv service.Conversation, account *entity.Account, shipmentNumber string) (usecase.ShareResult, error) {
	parcel, err := s.client.FetchParcel(ctx, account.PhoneNumber, shipmentNumber, entity.ParcelTypeParcel)
	if err != nil {
		return "", translateClientError(err, "failed to fetch parcel")
	}

	s.consent.Archive(ctx, account.TelegramID, account.PhoneNumber, parcel)

	if !parcel.Shareable {
		return usecase.ShareResultNotShareable, conv.Send(ctx, service.Prompt{Text: msgNotShareable})
	}

	friends, err := s.client.FetchFriends(ctx, account.PhoneNumber, shipmentNumber)
	if err != nil {
		return "", translateClientError(err, "failed to fetch friends")
	}

	if len(friends) == 0 {
		return usecase.ShareResultNoFriends, conv.Send(ctx, service.Prompt{Text: msgNoFriends})
	}

	choices := make([]service.Choice, 0, len(friends))
	byID := make(map[string]*entity.Friend, len(friends))
	for _, friend := range friends {
		choices = append(choices, service.Choice{
			Label: fmt.Sprintf("%s (%s)", friend.Name, friend.PhoneNumber),
			Data:  friend.ID,
		})
		byID[friend.ID] = friend
	}

	if err := conv.Send(ctx, service.Prompt{Text: msgPickFriend, Choices: choices}); err != nil {
		return "", errors.Wrap(err, "failed to send friend prompt")
	}

	picked, err := conv.AwaitChoice(ctx, s.choiceTimeout)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAwaitTimeout):
			return usecase.ShareResultTimedOut, conv.Send(ctx, service.Prompt{Text: msgShareTimedOut})
		case errors.Is(err, service.ErrConversationCancelled):
			return usecase.ShareResultCancelled, nil
		default:
			return "", errors.Wrap(err, "conversation wait failed")
		}
	}

	friend, ok := byID[picked]
	if !ok {
		return usecase.ShareResultInvalidInput, conv.Send(ctx, service.Prompt{Text: msgShareFailed})
	}

	if err := s.client.Share(ctx, account.PhoneNumber, shipmentNumber, friend.ID); err != nil {
		s.logger.Warn("parcel share failed",
			slog.String("shipmentNumber", shipmentNumber),
			slog.Any("error", err),
		)

		return usecase.ShareResultFailed, conv.Send(ctx, service.Prompt{Text: msgShareFailed})
	}

	return usecase.ShareResultShared, conv.Send(ctx, service.Prompt{Text: msgShared})
}
