package types

import (
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/shufflestat/internal/model"
)

// ChartRequest asks for a chart model over the given frequencies instead of the
// currently ingested snapshot. Unset fields fall back to the same defaults as the
// query-string variant.
type ChartRequest struct {
	Frequencies   []model.FrequencyObservation `json:"frequencies" validate:"dive"`
	K             null.Int                     `json:"k"`
	UsePercentage null.Bool                    `json:"usePercentage"`
	ShowRelative  null.Bool                    `json:"showRelative"`
}

// ChartParams are the resolved chart parameters. K is bounded here, at the
// boundary, and nowhere else.
type ChartParams struct {
	K             int  `json:"k" validate:"min=1,max=100000"`
	UsePercentage bool `json:"usePercentage"`
	ShowRelative  bool `json:"showRelative"`
}

// IngestResult acknowledges an ingested payload.
type IngestResult struct {
	Observations int `json:"observations"`
	Positions    int `json:"positions"`
	Tokens       int `json:"tokens"`
}
