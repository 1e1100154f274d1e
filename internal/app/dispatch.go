package app

import (
	"context"
	"errors"
	"time"

	"github.com/hyeonlee/tansu/internal/command"
	"github.com/hyeonlee/tansu/internal/models"
	"github.com/hyeonlee/tansu/internal/services/ledger"
)

// pollDelay is the pause between dispatch iterations. The Telegram long poll
// already blocks for most of the interval; this only spaces out retries.
const pollDelay = 2 * time.Second

// RunDispatcher is the main command loop. It polls for messages, parses each
// into a command, executes it, and replies. Every failure is converted to a
// log line or a user-visible message — nothing aborts the loop.
func (a *App) RunDispatcher(ctx context.Context) {
	a.Logger.Info().Msg("Dispatcher started")

	for {
		select {
		case <-ctx.Done():
			a.Logger.Info().Msg("Dispatcher stopped")
			return
		default:
		}

		texts, err := a.Telegram.Poll(ctx)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			a.Logger.Warn().Err(err).Msg("Update poll failed, retrying")
			sleepCtx(ctx, pollDelay)
			continue
		}

		for _, text := range texts {
			reply := a.handleMessage(ctx, text)
			if reply == "" {
				continue
			}
			if err := a.Telegram.Send(ctx, reply); err != nil {
				a.Logger.Warn().Err(err).Msg("Reply delivery failed")
			}
		}

		sleepCtx(ctx, pollDelay)
	}
}

// handleMessage executes one chat message end to end and returns the reply.
func (a *App) handleMessage(ctx context.Context, text string) string {
	cmd, err := command.Parse(text)
	if err != nil {
		a.Logger.Debug().Str("text", text).Err(err).Msg("Rejected message")
		return "Commands: report | news | buy <symbol> <qty> <price> | sell <symbol> <qty> <price>"
	}

	switch cmd.Kind {
	case models.CommandReport:
		rep, err := a.ReportService.BuildReport(ctx)
		if err != nil {
			a.Logger.Error().Err(err).Msg("Report build failed")
			return "Report failed: " + err.Error()
		}
		return a.ReportService.RenderReport(rep)

	case models.CommandNews:
		digest, err := a.NewsService.Digest(ctx)
		if err != nil {
			a.Logger.Error().Err(err).Msg("News digest failed")
			return "News digest failed: " + err.Error()
		}
		return digest

	case models.CommandTrade:
		msg, err := a.LedgerService.ApplyTrade(ctx, cmd.Trade)
		if err != nil {
			// Trade-level failures are expected user errors; report them
			// verbatim and leave the ledger untouched.
			if errors.Is(err, ledger.ErrUnknownHolding) ||
				errors.Is(err, ledger.ErrInsufficientQuantity) ||
				errors.Is(err, ledger.ErrInvalidTrade) {
				return "Trade rejected: " + err.Error()
			}
			a.Logger.Error().Err(err).Msg("Trade failed")
			return "Trade failed: " + err.Error()
		}
		return msg

	default:
		return ""
	}
}

// sleepCtx sleeps for d or until ctx is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
