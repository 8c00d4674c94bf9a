package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"boxbot/config"
	"boxbot/internal/domain/entity"
	"boxbot/internal/domain/repository"
	"boxbot/internal/domain/service"
	"boxbot/internal/errors"
	"boxbot/internal/usecase"

	"github.com/google/uuid"
)

// Confirm-step callback payloads. Carried as structured choice data,
// never recovered by parsing rendered message text.
const (
	choiceConfirm = "confirm"
	choiceDecline = "decline"
)

const (
	msgLocationPrompt = "Please share your location so I can check whether you are near the parcel machine or not."
	msgNoGeolocation  = "Your message does not contain geolocation, start opening again!"
	msgInRange        = "You are in range. Are you sure to open?"
	msgDeclined       = "Fine, compartment remains closed!"
	msgUnknownChoice  = "Unrecognizable decision made, please start opening the compartment again!"
	msgWaitTimedOut   = "Time has run out, please start opening the compartment again!"
	msgUnlockFailed   = "Could not open the compartment, try again by re-running the command."
	msgDelivered      = "Parcel has been already delivered!"
)

// session is the ephemeral per-invocation dialogue state. It is created
// when the open command fires and discarded on completion, cancellation
// or timeout; it is never persisted.
type session struct {
	conv      service.Conversation
	account   *entity.Account
	subject   *entity.Parcel
	proximity usecase.PolicyOutcome
}

type compartmentService struct {
	client        service.ParcelClient
	accountRepo   repository.AccountRepository
	grouping      usecase.GroupingUsecase
	proximity     usecase.ProximityUsecase
	consent       usecase.ConsentUsecase
	publisher     service.EventPublisher
	choiceTimeout time.Duration
	inputTimeout  time.Duration
	logger        *slog.Logger
}

// NewCompartmentService creates the compartment-open conversation driver.
func NewCompartmentService(
	client service.ParcelClient,
	accountRepo repository.AccountRepository,
	grouping usecase.GroupingUsecase,
	proximity usecase.ProximityUsecase,
	consent usecase.ConsentUsecase,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CompartmentUsecase {
	return &compartmentService{
		client:        client,
		accountRepo:   accountRepo,
		grouping:      grouping,
		proximity:     proximity,
		consent:       consent,
		publisher:     publisher,
		choiceTimeout: cfg.Telegram.ChoiceTimeout,
		inputTimeout:  cfg.Telegram.InputTimeout,
		logger:        logger,
	}
}

// Open drives one compartment-open dialogue to a terminal state. The
// parcel snapshot is always fetched fresh at the start: a stale snapshot
// could permit opening an already collected or status-changed parcel.
func (s *compartmentService) Open(ctx context.Context, conv service.Conversation, account *entity.Account, shipmentNumber string, parcelType entity.ParcelType) (usecase.OpenResult, error) {
	parcel, err := s.client.FetchParcel(ctx, account.PhoneNumber, shipmentNumber, parcelType)
	if err != nil {
		return "", translateClientError(err, "failed to fetch parcel")
	}

	// A satellite compartment cannot be opened on its own; act on the
	// group's main member instead.
	if parcel.InGroup() && !parcel.IsMainMultiCompartment {
		group, err := s.grouping.Resolve(ctx, account.PhoneNumber, parcel)
		if err != nil {
			return "", err
		}
		parcel = group.Representative
	}

	sess := &session{conv: conv, account: account, subject: parcel}

	switch outcome := s.proximity.Decide(parcel, account.Preferences, account.Location, nil, time.Now()); outcome {
	case usecase.PolicyAlreadyDelivered:
		return usecase.OpenResultAlreadyDelivered, s.say(ctx, sess, msgDelivered)

	case usecase.PolicyNotReady:
		text := fmt.Sprintf("Parcel is not ready for pick up! Status: %s", parcel.Status)

		return usecase.OpenResultNotReady, s.say(ctx, sess, text)

	case usecase.PolicySkipCheck:
		sess.proximity = outcome

		return s.awaitConfirm(ctx, sess, skipCheckMessage())

	case usecase.PolicyNeedFreshSample:
		return s.awaitLocation(ctx, sess)

	case usecase.PolicyInRange:
		sess.proximity = outcome

		return s.awaitConfirm(ctx, sess, recentSampleMessage(parcel))

	case usecase.PolicyOutOfRange:
		sess.proximity = outcome

		return s.awaitConfirm(ctx, sess, outOfRangeMessage(parcel))

	default:
		return "", errors.Errorf("unexpected policy outcome: %s", outcome)
	}
}

// awaitLocation prompts for a location share and re-runs the policy with
// the received sample. The sample is persisted before classification so
// later invocations inside the freshness window can reuse it.
func (s *compartmentService) awaitLocation(ctx context.Context, sess *session) (usecase.OpenResult, error) {
	prompt := service.Prompt{Text: msgLocationPrompt, RequestLocation: true}
	if err := sess.conv.Send(ctx, prompt); err != nil {
		return "", errors.Wrap(err, "failed to send location prompt")
	}

	// Sharing a location takes longer than pressing a button, so the
	// message wait runs on the looser input deadline.
	incoming, err := sess.conv.AwaitMessage(ctx, s.inputTimeout)
	if err != nil {
		return s.waitFailure(ctx, sess, err)
	}

	if incoming.Location == nil {
		return usecase.OpenResultInvalidInput, s.say(ctx, sess, msgNoGeolocation)
	}

	sample := incoming.Location
	if err := s.accountRepo.UpdateLocationState(ctx, sess.account.TelegramID, sample.Latitude, sample.Longitude, time.Now()); err != nil {
		return "", errors.Wrap(err, "failed to persist location sample")
	}

	switch outcome := s.proximity.Decide(sess.subject, sess.account.Preferences, sess.account.Location, sample, time.Now()); outcome {
	case usecase.PolicyInRange:
		sess.proximity = outcome

		return s.awaitConfirm(ctx, sess, msgInRange)

	case usecase.PolicyOutOfRange:
		sess.proximity = outcome

		return s.awaitConfirm(ctx, sess, outOfRangeMessage(sess.subject))

	default:
		return "", errors.Errorf("unexpected policy outcome with sample: %s", outcome)
	}
}

// awaitConfirm presents the confirm/decline choice. Proximity is
// advisory: out-of-range sessions reach this step too and may override.
func (s *compartmentService) awaitConfirm(ctx context.Context, sess *session, text string) (usecase.OpenResult, error) {
	prompt := service.Prompt{
		Text: text,
		Choices: []service.Choice{
			{Label: "Yes!", Data: choiceConfirm},
			{Label: "Hell no!", Data: choiceDecline},
		},
	}
	if err := sess.conv.Send(ctx, prompt); err != nil {
		return "", errors.Wrap(err, "failed to send confirm prompt")
	}

	decision, err := sess.conv.AwaitChoice(ctx, s.choiceTimeout)
	if err != nil {
		return s.waitFailure(ctx, sess, err)
	}

	switch decision {
	case choiceConfirm:
		return s.unlock(ctx, sess)
	case choiceDecline:
		return usecase.OpenResultDeclined, s.say(ctx, sess, msgDeclined)
	default:
		return usecase.OpenResultInvalidInput, s.say(ctx, sess, msgUnknownChoice)
	}
}

// unlock invokes the remote unlock exactly once. Failures are reported
// and never retried here; the user retries by re-running the command.
func (s *compartmentService) unlock(ctx context.Context, sess *session) (usecase.OpenResult, error) {
	opened, err := s.client.Unlock(ctx, sess.account.PhoneNumber, sess.subject)
	if err != nil || opened == nil {
		s.logger.Error("compartment unlock failed",
			slog.String("shipmentNumber", sess.subject.ShipmentNumber),
			slog.Any("error", err),
		)

		return usecase.OpenResultUnlockFailed, s.say(ctx, sess, msgUnlockFailed)
	}

	if err := s.say(ctx, sess, openedMessage(opened)); err != nil {
		return "", err
	}

	s.publishOpened(ctx, sess, opened)
	s.consent.Archive(ctx, sess.account.TelegramID, sess.account.PhoneNumber, opened)

	return usecase.OpenResultOpened, nil
}

// waitFailure translates a wait error into a terminal result. Timeout and
// cancellation are equivalent: the session is discarded and nothing
// fetched while waiting is reused.
func (s *compartmentService) waitFailure(ctx context.Context, sess *session, err error) (usecase.OpenResult, error) {
	switch {
	case errors.Is(err, service.ErrAwaitTimeout):
		return usecase.OpenResultTimedOut, s.say(ctx, sess, msgWaitTimedOut)
	case errors.Is(err, service.ErrConversationCancelled):
		return usecase.OpenResultCancelled, nil
	default:
		return "", errors.Wrap(err, "conversation wait failed")
	}
}

func (s *compartmentService) say(ctx context.Context, sess *session, text string) error {
	return sess.conv.Send(ctx, service.Prompt{Text: text})
}

// publishOpened emits the compartment-opened event, best effort.
func (s *compartmentService) publishOpened(ctx context.Context, sess *session, opened *entity.Parcel) {
	machine := ""
	if opened.PickupPoint != nil {
		machine = opened.PickupPoint.Name
	}

	event := &service.CompartmentOpenedEvent{
		RequestID:      uuid.New().String(),
		TelegramID:     sess.account.TelegramID,
		ShipmentNumber: opened.ShipmentNumber,
		Machine:        machine,
		Proximity:      string(sess.proximity),
		OpenedAt:       time.Now(),
	}

	if err := s.publisher.PublishCompartmentOpened(ctx, event); err != nil {
		s.logger.Warn("failed to publish compartment-opened event",
			slog.String("shipmentNumber", opened.ShipmentNumber),
			slog.Any("error", err),
		)
	}
}

func skipCheckMessage() string {
	return "You have location checking off and this parcel is in your default parcel machine, skipping! " +
		"You can turn location checking on by sending:\n`/setgeocheck on`\n\nAre you sure to open?"
}

func recentSampleMessage(parcel *entity.Parcel) string {
	return fmt.Sprintf(
		"Less than 2 minutes have passed since your last confirmed location, "+
			"you were in range of **%s** parcel machine, assuming you still are and "+
			"skipping location verification.\nAre you sure to open?",
		parcel.PickupPoint.Name,
	)
}

// outOfRangeMessage carries the pickup point's full address and
// description so the user can self-verify before overriding the warning.
func outOfRangeMessage(parcel *entity.Parcel) string {
	point := parcel.PickupPoint

	return fmt.Sprintf(
		"Your location is outside the range that is allowed to open this parcel machine. "+
			"Confirm that you are standing nearby, there is the description:"+
			"\n\n**Name: %s**"+
			"\n**Address: %s %s, %s %s**"+
			"\n**Description: %s**\n\n"+
			"Do you still want me to open it for you?",
		point.Name, point.PostCode, point.City, point.Street, point.BuildingNumber, point.Description,
	)
}

func openedMessage(parcel *entity.Parcel) string {
	loc := parcel.CompartmentLocation
	if loc == nil {
		return "Compartment opened!"
	}

	return fmt.Sprintf(
		"Compartment opened!\nLocation:\n   Side: %s\n   Row: %s\n   Column: %s",
		loc.Side, loc.Row, loc.Column,
	)
}
