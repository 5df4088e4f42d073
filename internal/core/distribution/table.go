package distribution

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"exusiai.dev/shufflestat/internal/core/coreerr"
	"exusiai.dev/shufflestat/internal/model"
)

// Entry is the frequency of one element at one position.
type Entry struct {
	Element   string  `json:"element"`
	Frequency float64 `json:"frequency"`
}

// Table maps (position, element) to frequency. It is an immutable snapshot of one
// shuffle-statistics response.
type Table struct {
	positions []int
	entries   map[int][]Entry
	size      int
}

type pairKey struct {
	position int
	element  string
}

// NewTable groups observations by position. When the same (position, element)
// pair is observed more than once, only the last observation in input order is
// kept, at its own place in the sequence. An empty input yields an empty table.
func NewTable(observations []model.FrequencyObservation) (*Table, error) {
	for i, o := range observations {
		if err := validateObservation(o); err != nil {
			return nil, errors.Wrapf(err, "observation #%d", i)
		}
	}

	// UniqBy keeps the first occurrence, so run it over the reversed input to keep
	// the last one, then restore input order. Reverse works in place.
	reversed := lo.Reverse(append([]model.FrequencyObservation(nil), observations...))
	kept := lo.Reverse(lo.UniqBy(reversed, func(o model.FrequencyObservation) pairKey {
		return pairKey{o.Position, o.Element}
	}))

	grouped := lo.GroupBy(kept, func(o model.FrequencyObservation) int {
		return o.Position
	})
	entries := lo.MapValues(grouped, func(group []model.FrequencyObservation, _ int) []Entry {
		return lo.Map(group, func(o model.FrequencyObservation, _ int) Entry {
			return Entry{Element: o.Element, Frequency: o.Frequency}
		})
	})
	positions := maps.Keys(entries)
	slices.Sort(positions)

	return &Table{positions: positions, entries: entries, size: len(kept)}, nil
}

func validateObservation(o model.FrequencyObservation) error {
	if o.Position < 0 {
		return errors.Wrapf(coreerr.ErrInvalidParameter, "position must be non-negative, got %d", o.Position)
	}
	if math.IsNaN(o.Frequency) || o.Frequency < 0 || o.Frequency > 1 {
		return errors.Wrapf(coreerr.ErrInvalidParameter, "frequency of %q at position %d must be within [0, 1], got %v", o.Element, o.Position, o.Frequency)
	}
	return nil
}

// Positions returns the distinct positions in ascending order.
func (t *Table) Positions() []int {
	return append([]int(nil), t.positions...)
}

// EntriesAt returns the entries observed at position, in input order.
func (t *Table) EntriesAt(position int) []Entry {
	return append([]Entry(nil), t.entries[position]...)
}

// Len is the number of distinct (position, element) pairs.
func (t *Table) Len() int {
	return t.size
}

// Empty reports whether the table holds no data.
func (t *Table) Empty() bool {
	return t.size == 0
}

// PositionSeries is the Top-K selection at one position together with the sum of
// the selected frequencies.
type PositionSeries struct {
	Position int
	Entries  []Entry
	Total    float64
}

// SeriesAt selects the Top-K entries at position.
func (t *Table) SeriesAt(position, k int) (*PositionSeries, error) {
	selected, err := SelectTopK(t.entries[position], k)
	if err != nil {
		return nil, err
	}
	return &PositionSeries{
		Position: position,
		Entries:  selected,
		Total: lo.SumBy(selected, func(e Entry) float64 {
			return e.Frequency
		}),
	}, nil
}

// TotalFrequencyAt is the sum of frequencies of the Top-K entries at position,
// not of every entry observed there. Relative normalization divides by it.
func (t *Table) TotalFrequencyAt(position, k int) (float64, error) {
	series, err := t.SeriesAt(position, k)
	if err != nil {
		return 0, err
	}
	return series.Total, nil
}
