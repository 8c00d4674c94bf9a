// Package telegram implements the chat transport: command dispatch, the
// per-chat conversation registry and outgoing message rendering.
package telegram

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"boxbot/config"
	"boxbot/internal/delivery"
	"boxbot/internal/domain/entity"
	domainerrors "boxbot/internal/domain/errors"
	"boxbot/internal/domain/service"
	"boxbot/internal/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgBusy            = "Finish or /cancel the ongoing operation first!"
	msgCancelled       = "Cancelled!"
	msgNothingToCancel = "Nothing to cancel!"
	msgBadPhoneNumber  = "Phone number must be 9 digits, like /init 123456789"
	msgNoShipment      = "Provide a shipment number, like /parcel 123456789012345678901234"
	msgConsentUsage    = "Send /consent yes if you agree to data collection, or /consent no if you refuse."
	msgOnOffUsage      = "Say on or off, like /setgeocheck off"
	msgNoMachine       = "Provide a machine name, like /setmachine KRA01M"
	msgNoDeviceToken   = "Provide a device token, like /register_device <token>"
	msgSaved           = "Saved!"
)

// NewBotAPI creates the Telegram API client.
func NewBotAPI(cfg *config.Config) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Telegram bot API")
	}

	return api, nil
}

// BotParams holds dependencies for the bot, injected by Fx
type BotParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	API      *tgbotapi.BotAPI
	Accounts usecase.AccountUsecase
	Parcels  usecase.ParcelUsecase
	Consent  usecase.ConsentUsecase
	Opener   usecase.CompartmentUsecase
	Sharer   usecase.SharingUsecase
}

type bot struct {
	cfg      *config.Config
	logger   *slog.Logger
	api      *tgbotapi.BotAPI
	accounts usecase.AccountUsecase
	parcels  usecase.ParcelUsecase
	consent  usecase.ConsentUsecase
	opener   usecase.CompartmentUsecase
	sharer   usecase.SharingUsecase

	mu       sync.Mutex
	sessions map[int64]*conversation
}

// NewBot creates the long-polling Telegram delivery.
func NewBot(params BotParams) (delivery.Delivery, error) {
	b := &bot{
		cfg:      params.Config,
		logger:   params.Logger,
		api:      params.API,
		accounts: params.Accounts,
		parcels:  params.Parcels,
		consent:  params.Consent,
		opener:   params.Opener,
		sharer:   params.Sharer,
		sessions: make(map[int64]*conversation),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			b.api.StopReceivingUpdates()
			b.cancelAllSessions()

			return nil
		},
	})

	return b, nil
}

// Serve runs the long-polling update loop until the context is cancelled.
func (b *bot) Serve(ctx context.Context) error {
	b.logger.Info("Starting Telegram bot",
		slog.String("username", b.api.Self.UserName),
	)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = b.cfg.Telegram.PollTimeout

	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			// Each update is handled on its own goroutine: a chat mid
			// conversation must not block commands from other chats.
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("update handler panicked", slog.Any("panic", r))
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.IsCommand() && msg.Command() == "cancel" {
		if session := b.session(chatID); session != nil {
			session.Cancel()
			b.reply(chatID, msgCancelled)
		} else {
			b.reply(chatID, msgNothingToCancel)
		}

		return
	}

	// A chat with an active conversation feeds its replies (text or
	// location) into the waiting workflow instead of the dispatcher.
	if session := b.session(chatID); session != nil && !msg.IsCommand() {
		incoming := &service.Incoming{Text: msg.Text}
		if msg.Location != nil {
			incoming.Location = &service.Location{
				Latitude:  msg.Location.Latitude,
				Longitude: msg.Location.Longitude,
			}
		}
		session.deliverMessage(incoming)

		return
	}

	if !msg.IsCommand() {
		return
	}

	b.dispatchCommand(ctx, msg)
}

func (b *bot) dispatchCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	args := strings.TrimSpace(msg.CommandArguments())

	switch msg.Command() {
	case "start":
		b.reply(chatID, welcomeMessage)
	case "init":
		b.handleInit(ctx, chatID, args)
	case "consent":
		b.handleConsent(ctx, chatID, args)
	case "pending":
		b.handlePending(ctx, chatID)
	case "delivered":
		b.handleDelivered(ctx, chatID)
	case "parcel":
		b.handleParcel(ctx, chatID, args)
	case "open":
		b.handleOpen(ctx, chatID, args)
	case "share":
		b.handleShare(ctx, chatID, args)
	case "qr":
		b.handleQR(ctx, chatID, args)
	case "opencode":
		b.handleOpenCode(ctx, chatID, args)
	case "setgeocheck":
		b.handleToggle(ctx, chatID, args, b.accounts.SetGeocheck)
	case "notifications":
		b.handleToggle(ctx, chatID, args, b.accounts.SetNotifications)
	case "setmachine":
		b.handleSetMachine(ctx, chatID, args)
	case "register_device":
		b.handleRegisterDevice(ctx, chatID, args)
	}
}

func (b *bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.logger.Warn("failed to answer callback", slog.Any("error", err))
	}

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	// Button payloads are structured data, never re-parsed display text.
	action, shipmentNumber, found := strings.Cut(cb.Data, ":")
	if found {
		switch action {
		case "open":
			b.handleOpen(ctx, chatID, shipmentNumber)

			return
		case "share":
			b.handleShare(ctx, chatID, shipmentNumber)

			return
		case "qr":
			b.handleQR(ctx, chatID, shipmentNumber)

			return
		case "code":
			b.handleOpenCode(ctx, chatID, shipmentNumber)

			return
		}
	}

	// Anything else belongs to the chat's active conversation.
	if session := b.session(chatID); session != nil {
		session.deliverChoice(cb.Data)
	}
}

func (b *bot) handleInit(ctx context.Context, chatID int64, args string) {
	phoneNumber := strings.TrimSpace(args)
	if len(phoneNumber) != 9 || !isDigits(phoneNumber) {
		b.reply(chatID, msgBadPhoneNumber)

		return
	}

	if _, err := b.accounts.Register(ctx, chatID, phoneNumber); err != nil {
		b.replyError(chatID, err)

		return
	}

	b.reply(chatID, "Phone number linked! Remember to set your consent with /consent yes or /consent no.")
}

func (b *bot) handleConsent(ctx context.Context, chatID int64, args string) {
	var granted bool
	switch strings.ToLower(strings.TrimSpace(args)) {
	case "yes":
		granted = true
	case "no":
		granted = false
	default:
		b.reply(chatID, msgConsentUsage)

		return
	}

	if err := b.consent.Set(ctx, chatID, granted); err != nil {
		b.replyError(chatID, err)

		return
	}

	b.reply(chatID, "Consent saved!")
}

func (b *bot) handlePending(ctx context.Context, chatID int64) {
	account, ok := b.requireAccount(ctx, chatID)
	if !ok {
		return
	}

	groups, err := b.parcels.ListPending(ctx, account)
	if err != nil {
		b.replyError(chatID, err)

		return
	}

	for _, group := range groups {
		b.replyWithKeyboard(chatID, groupMessage(group), parcelButtons(group.Representative))
	}
}

func (b *bot) handleDelivered(ctx context.Context, chatID int64) {
	account, ok := b.requireAccount(ctx, chatID)
	if !ok {
		return
	}

	parcels, err := b.parcels.ListDelivered(ctx, account)
	if err != nil {
		b.replyError(chatID, err)

		return
	}

	for _, parcel := range parcels {
		b.reply(chatID, deliveredMessage(parcel))
	}
}

func (b *bot) handleParcel(ctx context.Context, chatID int64, args string) {
	shipmentNumber, ok := b.requireShipment(chatID, args)
	if !ok {
		return
	}
	account, ok := b.requireAccount(ctx, chatID)
	if !ok {
		return
	}

	group, err := b.parcels.Get(ctx, account, shipmentNumber)
	if err != nil {
		b.replyError(chatID, err)

		return
	}

	b.replyWithKeyboard(chatID, groupMessage(group), parcelButtons(group.Representative))
}

func (b *bot) handleOpen(ctx context.Context, chatID int64, args string) {
	shipmentNumber, ok := b.requireShipment(chatID, args)
	if !ok {
		return
	}
	account, ok := b.requireAccount(ctx, chatID)
	if !ok {
		return
	}

	session, ok := b.startSession(chatID)
	if !ok {
		b.reply(chatID, msgBusy)

		return
	}
	defer b.endSession(chatID, session)

	result, err := b.opener.Open(ctx, session, account, shipmentNumber, entity.ParcelTypeParcel)
	if err != nil {
		b.replyError(chatID, err)

		return
	}

	b.logger.Info("open conversation finished",
		slog.Int64("chatID", chatID),
		slog.String("shipmentNumber", shipmentNumber),
		slog.String("result", string(result)),
	)
}

func (b *bot) handleShare(ctx context.Context, chatID int64, args string) {
	shipmentNumber, ok := b.requireShipment(chatID, args)
	if !ok {
		return
	}
	account, ok := b.requireAccount(ctx, chatID)
	if !ok {
		return
	}

	session, ok := b.startSession(chatID)
	if !ok {
		b.reply(chatID, msgBusy)

		return
	}
	defer b.endSession(chatID, session)

	result, err := b.sharer.Share(ctx, session, account, shipmentNumber)
	if err != nil {
		b.replyError(chatID, err)

		return
	}

	b.logger.Info("share conversation finished",
		slog.Int64("chatID", chatID),
		slog.String("shipmentNumber", shipmentNumber),
		slog.String("result", string(result)),
	)
}

func (b *bot) handleQR(ctx context.Context, chatID int64, args string) {
	shipmentNumber, ok := b.requireShipment(chatID, args)
	if !ok {
		return
	}
	account, ok := b.requireAccount(ctx, chatID)
	if !ok {
		return
	}

	image, err := b.parcels.PickupQR(ctx, account, shipmentNumber)
	if err != nil {
		b.replyError(chatID, err)

		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
		Name:  shipmentNumber + ".png",
		Bytes: image,
	})
	if _, err := b.api.Send(photo); err != nil {
		b.logger.Warn("failed to send QR photo", slog.Any("error", err))
	}
}

func (b *bot) handleOpenCode(ctx context.Context, chatID int64, args string) {
	shipmentNumber, ok := b.requireShipment(chatID, args)
	if !ok {
		return
	}
	account, ok := b.requireAccount(ctx, chatID)
	if !ok {
		return
	}

	code, err := b.parcels.OpenCode(ctx, account, shipmentNumber)
	if err != nil {
		b.replyError(chatID, err)

		return
	}

	b.reply(chatID, "Open code: `"+code+"`")
}

func (b *bot) handleToggle(ctx context.Context, chatID int64, args string, set func(context.Context, int64, bool) error) {
	var enabled bool
	switch strings.ToLower(strings.TrimSpace(args)) {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		b.reply(chatID, msgOnOffUsage)

		return
	}

	if err := set(ctx, chatID, enabled); err != nil {
		b.replyError(chatID, err)

		return
	}

	b.reply(chatID, msgSaved)
}

func (b *bot) handleSetMachine(ctx context.Context, chatID int64, args string) {
	machine := strings.TrimSpace(args)
	if machine == "" {
		b.reply(chatID, msgNoMachine)

		return
	}

	if err := b.accounts.SetDefaultMachine(ctx, chatID, machine); err != nil {
		b.replyError(chatID, err)

		return
	}

	b.reply(chatID, msgSaved)
}

func (b *bot) handleRegisterDevice(ctx context.Context, chatID int64, args string) {
	token := strings.TrimSpace(args)
	if token == "" {
		b.reply(chatID, msgNoDeviceToken)

		return
	}

	if err := b.accounts.RegisterDevice(ctx, chatID, token); err != nil {
		b.replyError(chatID, err)

		return
	}

	b.reply(chatID, "Device registered!")
}

// requireAccount loads the account and enforces the consent gate shared by
// every parcel command.
func (b *bot) requireAccount(ctx context.Context, chatID int64) (*entity.Account, bool) {
	account, err := b.accounts.Get(ctx, chatID)
	if err != nil {
		b.replyError(chatID, err)

		return nil, false
	}

	if err := b.consent.Require(ctx, chatID); err != nil {
		b.replyError(chatID, err)

		return nil, false
	}

	return account, true
}

func (b *bot) requireShipment(chatID int64, args string) (string, bool) {
	shipmentNumber := strings.TrimSpace(args)
	if shipmentNumber == "" {
		b.reply(chatID, msgNoShipment)

		return "", false
	}

	return shipmentNumber, true
}

// --- session registry ---

func (b *bot) session(chatID int64) *conversation {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.sessions[chatID]
}

// startSession registers a new conversation for the chat. It fails when
// one is already active: a chat runs at most one dialogue at a time.
func (b *bot) startSession(chatID int64) (*conversation, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.sessions[chatID]; exists {
		return nil, false
	}

	session := newConversation(chatID, b)
	b.sessions[chatID] = session

	return session, true
}

func (b *bot) endSession(chatID int64, session *conversation) {
	session.Cancel()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sessions[chatID] == session {
		delete(b.sessions, chatID)
	}
}

func (b *bot) cancelAllSessions() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for chatID, session := range b.sessions {
		session.Cancel()
		delete(b.sessions, chatID)
	}
}

// --- outgoing messages ---

// sendPrompt implements promptSender for active conversations.
func (b *bot) sendPrompt(chatID int64, prompt service.Prompt) error {
	msg := tgbotapi.NewMessage(chatID, prompt.Text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	switch {
	case prompt.RequestLocation:
		msg.ReplyMarkup = tgbotapi.NewOneTimeReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButtonLocation("Send location"),
			),
		)
	case len(prompt.Choices) > 0:
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(prompt.Choices))
		for _, choice := range prompt.Choices {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(choice.Label, choice.Data))
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(buttons)
	default:
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	}

	if _, err := b.api.Send(msg); err != nil {
		return errors.Wrap(err, "failed to send prompt")
	}

	return nil
}

func (b *bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("failed to send message",
			slog.Int64("chatID", chatID),
			slog.Any("error", err),
		)
	}
}

func (b *bot) replyWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard

	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("failed to send message",
			slog.Int64("chatID", chatID),
			slog.Any("error", err),
		)
	}
}

// replyError maps an application error to its user-facing message. Errors
// without one get the generic internal-error reply; the real cause goes to
// the log, never to the chat.
func (b *bot) replyError(chatID int64, err error) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		b.reply(chatID, appErr.Message())

		return
	}

	b.logger.Error("command failed",
		slog.Int64("chatID", chatID),
		slog.Any("error", err),
	)
	b.reply(chatID, domainerrors.ErrInternalError.Message())
}

func parcelButtons(parcel *entity.Parcel) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Open Compartment", "open:"+parcel.ShipmentNumber),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("QR Code", "qr:"+parcel.ShipmentNumber),
			tgbotapi.NewInlineKeyboardButtonData("Open Code", "code:"+parcel.ShipmentNumber),
		),
	}

	// Only the parcel's owner sees the share button.
	if parcel.Shareable {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Share", "share:"+parcel.ShipmentNumber),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
