package distribution

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"

	"exusiai.dev/shufflestat/internal/core/coreerr"
	"exusiai.dev/shufflestat/internal/model"
)

const (
	// RelativeUpperBound is the fixed value-axis bound in relative mode.
	RelativeUpperBound = 100

	// DomainHeadroom scales the largest displayed value into the axis bound.
	DomainHeadroom = 1.1
)

// RankValue is the value displayed for the element ranked Rank at a position.
type RankValue struct {
	Rank      int     `json:"rank"`
	Element   string  `json:"element"`
	Frequency float64 `json:"frequency"`
	Value     float64 `json:"value"`
}

// ChartRow holds one position's ranked values. Values has exactly
// min(k, distinct elements at the position) entries.
type ChartRow struct {
	Position int         `json:"position"`
	Label    string      `json:"label"`
	Total    float64     `json:"total"`
	Values   []RankValue `json:"values"`
}

// AxisDomain is the shared value-axis range [Lower, Upper].
type AxisDomain struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// SeriesMeta describes the legend entry of one rank.
type SeriesMeta struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ChartModel struct {
	K         int          `json:"k"`
	Mode      Mode         `json:"mode"`
	AxisLabel string       `json:"axisLabel"`
	Rows      []ChartRow   `json:"rows"`
	Series    []SeriesMeta `json:"series"`
	Domain    AxisDomain   `json:"domain"`
}

// Empty reports whether the model has no positions to display.
func (m *ChartModel) Empty() bool {
	return len(m.Rows) == 0
}

// BuildChartModel builds the per-position Top-K chart model of observations.
// Nothing is cached: every call recomputes from scratch.
func BuildChartModel(observations []model.FrequencyObservation, k int, usePercentage, showRelative bool) (*ChartModel, error) {
	if k <= 0 {
		return nil, errors.Wrapf(coreerr.ErrInvalidParameter, "k must be positive, got %d", k)
	}
	table, err := NewTable(observations)
	if err != nil {
		return nil, err
	}
	return BuildFromTable(table, k, ModeOf(usePercentage, showRelative))
}

// BuildFromTable is BuildChartModel over an already constructed table.
func BuildFromTable(table *Table, k int, mode Mode) (*ChartModel, error) {
	if k <= 0 {
		return nil, errors.Wrapf(coreerr.ErrInvalidParameter, "k must be positive, got %d", k)
	}

	positions := table.Positions()
	rows := make([]ChartRow, 0, len(positions))
	width := 0
	for _, position := range positions {
		series, err := table.SeriesAt(position, k)
		if err != nil {
			return nil, err
		}

		row := ChartRow{
			Position: position,
			Label:    PositionLabel(position),
			Total:    series.Total,
			Values:   make([]RankValue, 0, len(series.Entries)),
		}
		for rank, entry := range series.Entries {
			row.Values = append(row.Values, RankValue{
				Rank:      rank,
				Element:   entry.Element,
				Frequency: entry.Frequency,
				Value:     Normalize(entry.Frequency, series.Total, mode),
			})
		}
		width = max(width, len(row.Values))
		rows = append(rows, row)
	}

	return &ChartModel{
		K:         k,
		Mode:      mode,
		AxisLabel: mode.AxisLabel(),
		Rows:      rows,
		Series:    buildSeries(width, k),
		Domain:    ComputeDomain(rows, mode),
	}, nil
}

// ComputeDomain scans every displayed value of every row. Relative mode is fixed
// to [0, 100]; otherwise the upper bound is ceil(max * 1.1), with max = 0 when
// there are no values.
func ComputeDomain(rows []ChartRow, mode Mode) AxisDomain {
	if mode == ModeRelative {
		return AxisDomain{Lower: 0, Upper: RelativeUpperBound}
	}

	maxValue := 0.0
	for _, row := range rows {
		for _, v := range row.Values {
			if v.Value > maxValue {
				maxValue = v.Value
			}
		}
	}
	return AxisDomain{Lower: 0, Upper: math.Ceil(maxValue * DomainHeadroom)}
}

func PositionLabel(position int) string {
	return fmt.Sprintf("Position %d", position)
}

// buildSeries spreads legend hues over k, the way the bars are colored, but only
// emits the ranks some row populates.
func buildSeries(width, k int) []SeriesMeta {
	series := make([]SeriesMeta, 0, width)
	for rank := 0; rank < width; rank++ {
		hue := strconv.FormatFloat(float64(rank*360)/float64(k), 'f', -1, 64)
		series = append(series, SeriesMeta{
			Rank:  rank,
			Name:  fmt.Sprintf("Top %d", rank+1),
			Color: fmt.Sprintf("hsl(%s, 70%%, 50%%)", hue),
		})
	}
	return series
}
