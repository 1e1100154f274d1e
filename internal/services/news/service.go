// Package news assembles the market news digest.
package news

import (
	"context"
	"fmt"
	"strings"

	"github.com/hyeonlee/tansu/internal/common"
	"github.com/hyeonlee/tansu/internal/interfaces"
)

const headlineLimit = 5

// Service implements NewsService: top economy headlines, optionally condensed
// by a summarizer.
type Service struct {
	headlines  interfaces.NewsProvider
	summarizer interfaces.Summarizer // nil disables summarization
	logger     *common.Logger
}

// NewService creates a news service. summarizer may be nil, in which case the
// digest is the raw headline list.
func NewService(headlines interfaces.NewsProvider, summarizer interfaces.Summarizer, logger *common.Logger) *Service {
	return &Service{
		headlines:  headlines,
		summarizer: summarizer,
		logger:     logger,
	}
}

// Digest fetches headlines and returns a briefing block. Summarizer failures
// degrade to the plain headline list rather than failing the digest.
func (s *Service) Digest(ctx context.Context) (string, error) {
	items, err := s.headlines.TopHeadlines(ctx, headlineLimit)
	if err != nil {
		return "", fmt.Errorf("failed to fetch headlines: %w", err)
	}
	if len(items) == 0 {
		return "No headlines available right now.", nil
	}

	var sb strings.Builder
	sb.WriteString("[Market News]\n")
	for i, h := range items {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, h))
	}

	if s.summarizer != nil {
		summary, err := s.summarizer.Summarize(ctx, items)
		if err != nil {
			s.logger.Warn().Err(err).Msg("News summarization failed, sending headlines only")
		} else if summary != "" {
			sb.WriteString("\n")
			sb.WriteString(summary)
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}
