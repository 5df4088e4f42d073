package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"exusiai.dev/shufflestat/internal/app/appconfig"
	"exusiai.dev/shufflestat/internal/core/distribution"
	"exusiai.dev/shufflestat/internal/model"
	"exusiai.dev/shufflestat/internal/model/types"
	"exusiai.dev/shufflestat/internal/pkg/apierr"
	"exusiai.dev/shufflestat/internal/pkg/cache"
	"exusiai.dev/shufflestat/internal/pkg/observability"
)

const IngestKindShuffle = "shuffle"

// ShuffleSnapshot is the latest ingested shuffle-statistics response.
type ShuffleSnapshot struct {
	Table        *distribution.Table
	ShuffledOnce []string
	Fingerprint  uint64
	IngestedAt   time.Time
}

type Distribution struct {
	snapshotTTL time.Duration

	// mu serializes snapshot replacement with the chart cache purge
	mu       sync.Mutex
	snapshot *cache.Singular[*ShuffleSnapshot]
	charts   *lru.Cache[string, *distribution.ChartModel]
	builds   singleflight.Group
}

func NewDistribution(conf *appconfig.Config) (*Distribution, error) {
	charts, err := lru.New[string, *distribution.ChartModel](conf.ChartCacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chart cache")
	}

	s := &Distribution{
		snapshotTTL: conf.SnapshotTTL,
		snapshot:    cache.NewSingular[*ShuffleSnapshot]("shuffle#current"),
		charts:      charts,
	}
	s.snapshot.OnEvicted(func(*ShuffleSnapshot) {
		s.charts.Purge()
	})

	return s, nil
}

// Ingest replaces the current snapshot with resp. The previous snapshot and every
// chart model derived from any payload are dropped.
func (s *Distribution) Ingest(ctx context.Context, resp *model.ShuffleStatsResponse) (*types.IngestResult, error) {
	if resp.Failed() {
		return nil, apierr.ErrUpstreamFailed.Msg("the shuffle service reported a failure: %s", resp.Error)
	}

	table, err := distribution.NewTable(resp.Frequencies)
	if err != nil {
		return nil, apierr.FromCore(err)
	}

	snapshot := &ShuffleSnapshot{
		Table:        table,
		ShuffledOnce: append([]string(nil), resp.ShuffledOnce...),
		Fingerprint:  fingerprint(resp.Frequencies),
		IngestedAt:   time.Now(),
	}

	s.mu.Lock()
	s.snapshot.Set(snapshot, s.snapshotTTL)
	s.charts.Purge()
	s.mu.Unlock()

	observability.Ingest.WithLabelValues(IngestKindShuffle).Inc()
	observability.SnapshotObservations.WithLabelValues().Set(float64(table.Len()))
	log.Info().
		Str("evt.name", "shuffle.ingest").
		Int("observations", table.Len()).
		Int("positions", len(table.Positions())).
		Int("tokens", len(snapshot.ShuffledOnce)).
		Str("fingerprint", strconv.FormatUint(snapshot.Fingerprint, 16)).
		Msg("ingested shuffle statistics")

	return &types.IngestResult{
		Observations: table.Len(),
		Positions:    len(table.Positions()),
		Tokens:       len(snapshot.ShuffledOnce),
	}, nil
}

// Current returns the current snapshot, or an EMPTY_INPUT error when nothing has
// been ingested or the last snapshot expired.
func (s *Distribution) Current() (*ShuffleSnapshot, error) {
	snapshot, err := s.snapshot.Get()
	if errors.Is(err, cache.ErrNotFound) {
		return nil, apierr.ErrEmptyInput.Msg("no shuffle statistics have been ingested yet")
	}
	return snapshot, err
}

// CurrentChart builds the chart model of the current snapshot.
func (s *Distribution) CurrentChart(ctx context.Context, params types.ChartParams) (*distribution.ChartModel, error) {
	snapshot, err := s.Current()
	if err != nil {
		return nil, err
	}

	return s.cachedBuild(ctx, snapshot.Fingerprint, params, func() (*distribution.Table, error) {
		return snapshot.Table, nil
	})
}

// Chart builds the chart model of observations without touching the current snapshot.
func (s *Distribution) Chart(ctx context.Context, observations []model.FrequencyObservation, params types.ChartParams) (*distribution.ChartModel, error) {
	return s.cachedBuild(ctx, fingerprint(observations), params, func() (*distribution.Table, error) {
		return distribution.NewTable(observations)
	})
}

func (s *Distribution) cachedBuild(ctx context.Context, fp uint64, params types.ChartParams, table func() (*distribution.Table, error)) (*distribution.ChartModel, error) {
	key := chartCacheKey(fp, params)
	if chart, ok := s.charts.Get(key); ok {
		observability.ChartCache.WithLabelValues("hit").Inc()
		return chart, nil
	}
	observability.ChartCache.WithLabelValues("miss").Inc()

	ch := s.builds.DoChan(key, func() (interface{}, error) {
		t, err := table()
		if err != nil {
			return nil, err
		}

		mode := distribution.ModeOf(params.UsePercentage, params.ShowRelative)
		timer := prometheus.NewTimer(observability.ChartBuildDuration.WithLabelValues(mode.String()))
		chart, err := distribution.BuildFromTable(t, params.K, mode)
		timer.ObserveDuration()
		if err != nil {
			return nil, err
		}

		s.charts.Add(key, chart)
		return chart, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, apierr.FromCore(res.Err)
		}
		return res.Val.(*distribution.ChartModel), nil
	}
}
