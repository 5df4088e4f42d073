package model

import "gopkg.in/guregu/null.v3"

// FrequencyObservation is how often Element landed at Position, normalized to the
// number of runs executed by the producing shuffle service.
type FrequencyObservation struct {
	Position  int     `json:"position" validate:"gte=0"`
	Element   string  `json:"element"`
	Frequency float64 `json:"frequency" validate:"gte=0,lte=1"`
}

// ShuffleStatsResponse is the shuffle-statistics payload. Success and Error are
// only present when the payload arrives in the producer's envelope.
type ShuffleStatsResponse struct {
	Success      null.Bool              `json:"success"`
	Error        string                 `json:"error,omitempty"`
	Frequencies  []FrequencyObservation `json:"frequencies" validate:"dive"`
	ShuffledOnce []string               `json:"shuffledOnce"`
}

// Failed reports whether the producer flagged the payload as unsuccessful.
func (r *ShuffleStatsResponse) Failed() bool {
	return r.Success.Valid && !r.Success.Bool
}
