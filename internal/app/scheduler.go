package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// seoulLocation pins the briefing schedule to Korean market time.
var seoulLocation = mustLoadLocation("Asia/Seoul")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// KST has no DST; a fixed zone is a safe fallback for minimal containers.
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// StartBriefingScheduler registers the daily morning briefing and starts the
// cron runner. Returns a stop function; returns a no-op when disabled.
func (a *App) StartBriefingScheduler(ctx context.Context) (func(), error) {
	if !a.Config.Briefing.Enabled {
		return func() {}, nil
	}

	c := cron.New(cron.WithLocation(seoulLocation))
	_, err := c.AddFunc(a.Config.Briefing.Cron, func() {
		a.sendBriefing(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid briefing cron %q: %w", a.Config.Briefing.Cron, err)
	}

	c.Start()
	a.Logger.Info().Str("cron", a.Config.Briefing.Cron).Msg("Briefing scheduler started")

	return func() { <-c.Stop().Done() }, nil
}

// sendBriefing pushes the morning market briefing: FX rate, KOSPI level, and
// the news digest. Each section degrades independently.
func (a *App) sendBriefing(ctx context.Context) {
	start := time.Now()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[Morning Briefing — %s]\n",
		time.Now().In(seoulLocation).Format("2006-01-02 15:04")))

	if rate, err := a.NaverClient.GetUSDKRW(ctx); err != nil {
		a.Logger.Warn().Err(err).Msg("Briefing: exchange rate unavailable")
	} else {
		sb.WriteString(fmt.Sprintf("💵 USD/KRW: %.2f\n", rate))
	}

	if kospi, err := a.NaverClient.GetKOSPI(ctx); err != nil {
		a.Logger.Warn().Err(err).Msg("Briefing: KOSPI unavailable")
	} else {
		sb.WriteString(fmt.Sprintf("📉 KOSPI: %.2f\n", kospi))
	}

	if digest, err := a.NewsService.Digest(ctx); err != nil {
		a.Logger.Warn().Err(err).Msg("Briefing: news digest unavailable")
	} else {
		sb.WriteString("\n")
		sb.WriteString(digest)
	}

	if err := a.Telegram.Send(ctx, sb.String()); err != nil {
		a.Logger.Warn().Err(err).Msg("Briefing delivery failed")
		return
	}

	a.Logger.Info().Dur("elapsed", time.Since(start)).Msg("Briefing sent")
}
