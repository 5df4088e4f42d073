package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"exusiai.dev/shufflestat/internal/app/appconfig"
	"exusiai.dev/shufflestat/internal/core/accesspattern"
	"exusiai.dev/shufflestat/internal/model"
	"exusiai.dev/shufflestat/internal/pkg/cache"
	"exusiai.dev/shufflestat/internal/pkg/observability"
)

const IngestKindAccessPattern = "access_pattern"

type AccessPatternSummary struct {
	accesspattern.Summary
	RatioDisplay string                   `json:"ratioDisplay"`
	Sequence     *accesspattern.Breakdown `json:"sequence,omitempty"`
	IngestedAt   *time.Time               `json:"ingestedAt,omitempty"`
}

type accessPatternSnapshot struct {
	counters   accesspattern.Counters
	sequence   *accesspattern.Breakdown
	ingestedAt time.Time
}

type AccessPattern struct {
	snapshotTTL time.Duration
	latest      *cache.Singular[*accessPatternSnapshot]
}

func NewAccessPattern(conf *appconfig.Config) *AccessPattern {
	return &AccessPattern{
		snapshotTTL: conf.SnapshotTTL,
		latest:      cache.NewSingular[*accessPatternSnapshot]("access_pattern#current"),
	}
}

// Ingest replaces the latest access-pattern response and returns its summary.
func (s *AccessPattern) Ingest(ctx context.Context, resp *model.AccessPatternResponse) (*AccessPatternSummary, error) {
	if resp == nil {
		resp = &model.AccessPatternResponse{}
	}
	snapshot := &accessPatternSnapshot{
		counters:   accesspattern.FromResponse(resp),
		ingestedAt: time.Now(),
	}
	if len(resp.AccessSequence) > 0 {
		b := accesspattern.SequenceBreakdown(resp.AccessSequence)
		snapshot.sequence = &b
	}
	s.latest.Set(snapshot, s.snapshotTTL)

	observability.Ingest.WithLabelValues(IngestKindAccessPattern).Inc()
	log.Info().
		Str("evt.name", "access_pattern.ingest").
		Int64("real", snapshot.counters.Real).
		Int64("dummy", snapshot.counters.Dummy).
		Msg("ingested access pattern")

	return summaryOf(snapshot), nil
}

// Summary summarizes the latest ingested response. With nothing ingested every
// counter is zero.
func (s *AccessPattern) Summary(ctx context.Context) (*AccessPatternSummary, error) {
	snapshot, err := s.latest.Get()
	if errors.Is(err, cache.ErrNotFound) {
		return summaryOf(&accessPatternSnapshot{}), nil
	} else if err != nil {
		return nil, err
	}

	return summaryOf(snapshot), nil
}

func summaryOf(snapshot *accessPatternSnapshot) *AccessPatternSummary {
	summary := accesspattern.Summarize(snapshot.counters)
	result := &AccessPatternSummary{
		Summary:      summary,
		RatioDisplay: summary.RatioDisplay(),
		Sequence:     snapshot.sequence,
	}
	if !snapshot.ingestedAt.IsZero() {
		t := snapshot.ingestedAt
		result.IngestedAt = &t
	}
	return result
}
