package telegram

import (
	"context"
	"log/slog"
	"time"

	"boxbot/config"
	"boxbot/internal/delivery"
	"boxbot/internal/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
)

// NotifierParams holds dependencies for the arrival notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	API      *tgbotapi.BotAPI
	Notifier usecase.NotifierUsecase
}

// notifier periodically scans for freshly arrived parcels and announces
// them in chat. Push delivery to companion devices is handled inside the
// usecase; this delivery only owns the chat channel.
type notifier struct {
	cfg      *config.Config
	logger   *slog.Logger
	api      *tgbotapi.BotAPI
	arrivals usecase.NotifierUsecase
}

// NewNotifier creates the parcel-arrival notifier delivery.
func NewNotifier(params NotifierParams) delivery.Delivery {
	return &notifier{
		cfg:      params.Config,
		logger:   params.Logger,
		api:      params.API,
		arrivals: params.Notifier,
	}
}

// Serve runs the arrival scan loop until the context is cancelled.
func (n *notifier) Serve(ctx context.Context) error {
	if n.cfg.Notifier == nil || !n.cfg.Notifier.Enabled {
		n.logger.Info("Arrival notifier disabled")
		<-ctx.Done()

		return nil
	}

	interval := n.cfg.Notifier.Interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	n.logger.Info("Starting arrival notifier", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n.scan(ctx)
		}
	}
}

func (n *notifier) scan(ctx context.Context) {
	arrivals, err := n.arrivals.DetectArrivals(ctx)
	if err != nil {
		n.logger.Warn("arrival scan failed", slog.Any("error", err))

		return
	}

	for _, arrival := range arrivals {
		msg := tgbotapi.NewMessage(arrival.Account.TelegramID, arrivalMessage(arrival.Parcel))
		msg.ParseMode = tgbotapi.ModeMarkdown
		msg.ReplyMarkup = parcelButtons(arrival.Parcel)

		if _, err := n.api.Send(msg); err != nil {
			n.logger.Warn("failed to announce arrival",
				slog.Int64("telegramID", arrival.Account.TelegramID),
				slog.Any("error", err),
			)
		}
	}
}
