package model

import "gopkg.in/guregu/null.v3"

const (
	AccessTypeReal  = "real"
	AccessTypeDummy = "dummy"
)

// AccessPatternResponse is the access-pattern payload. Field names follow the
// producing service's wire contract. Counters may be missing.
type AccessPatternResponse struct {
	TotalAccesses  null.Int        `json:"total_accesses"`
	RealAccesses   null.Int        `json:"real_accesses"`
	DummyAccesses  null.Int        `json:"dummy_accesses"`
	AccessSequence []*AccessRecord `json:"access_sequence,omitempty" validate:"omitempty,max=1000,dive"`
}

// AccessRecord is one recorded memory access of the oblivious shuffle.
type AccessRecord struct {
	Timestamp float64 `json:"timestamp"`
	Index     int     `json:"index" validate:"gte=0"`
	Type      string  `json:"type" validate:"oneof=real dummy"`
}
