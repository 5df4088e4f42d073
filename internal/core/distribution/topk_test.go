package distribution

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/shufflestat/internal/core/coreerr"
)

func TestSelectTopK(t *testing.T) {
	entries := []Entry{{"a", 0.1}, {"b", 0.4}, {"c", 0.2}, {"d", 0.3}}

	got, err := SelectTopK(entries, 2)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"b", 0.4}, {"d", 0.3}}, got)

	// input is left untouched
	assert.Equal(t, []Entry{{"a", 0.1}, {"b", 0.4}, {"c", 0.2}, {"d", 0.3}}, entries)
}

func TestSelectTopKNoPadding(t *testing.T) {
	got, err := SelectTopK([]Entry{{"a", 0.1}, {"b", 0.9}}, 5)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"b", 0.9}, {"a", 0.1}}, got)

	got, err = SelectTopK(nil, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectTopKStableOnTies(t *testing.T) {
	entries := []Entry{{"x", 0.2}, {"y", 0.5}, {"z", 0.2}, {"w", 0.5}, {"v", 0.2}}

	got, err := SelectTopK(entries, 4)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"y", 0.5}, {"w", 0.5}, {"x", 0.2}, {"z", 0.2}}, got)
}

func TestSelectTopKInvalidK(t *testing.T) {
	for _, k := range []int{0, -1} {
		_, err := SelectTopK([]Entry{{"a", 1}}, k)
		assert.True(t, errors.Is(err, coreerr.ErrInvalidParameter), "k=%d", k)
	}
}

func TestSelectTopKProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		n := r.Intn(30)
		entries := make([]Entry, n)
		for i := range entries {
			// coarse buckets so that ties are frequent
			entries[i] = Entry{Element: string(rune('a' + i)), Frequency: float64(r.Intn(5)) / 4}
		}
		k := 1 + r.Intn(10)

		got, err := SelectTopK(entries, k)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), k)
		assert.Equal(t, min(k, n), len(got))

		order := make(map[string]int, n)
		for i, e := range entries {
			order[e.Element] = i
		}
		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			require.GreaterOrEqual(t, prev.Frequency, cur.Frequency)
			if prev.Frequency == cur.Frequency {
				require.Less(t, order[prev.Element], order[cur.Element], "ties must keep input order")
			}
		}
	}
}
