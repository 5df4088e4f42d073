package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"exusiai.dev/shufflestat/internal/core/permutation"
	"exusiai.dev/shufflestat/internal/pkg/apierr"
)

type Export struct {
	DistributionService *Distribution
}

func NewExport(distributionService *Distribution) *Export {
	return &Export{
		DistributionService: distributionService,
	}
}

// CurrentPermutation exports the shuffledOnce permutation of the current snapshot.
func (s *Export) CurrentPermutation(ctx context.Context) (*permutation.Export, error) {
	snapshot, err := s.DistributionService.Current()
	if err != nil {
		return nil, err
	}

	export, err := permutation.ExportCSV(snapshot.ShuffledOnce)
	if err != nil {
		return nil, apierr.FromCore(err)
	}

	if len(export.Ambiguous) > 0 {
		log.Warn().
			Str("evt.name", "permutation.export.ambiguous").
			Int("count", len(export.Ambiguous)).
			Str("first", export.Ambiguous[0].Token).
			Msg("exported permutation contains tokens that do not split into exactly one key and value")
	}

	return export, nil
}
