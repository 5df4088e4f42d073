package distribution

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"exusiai.dev/shufflestat/internal/core/coreerr"
)

// SelectTopK returns the k most frequent entries, most frequent first. Equal
// frequencies keep their relative input order. Fewer than k entries are returned
// as-is, without padding. entries is not modified.
func SelectTopK(entries []Entry, k int) ([]Entry, error) {
	if k <= 0 {
		return nil, errors.Wrapf(coreerr.ErrInvalidParameter, "k must be positive, got %d", k)
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) bool {
		return a.Frequency > b.Frequency
	})

	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted, nil
}
