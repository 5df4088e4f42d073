// Package accesspattern summarizes how many dummy memory accesses the oblivious
// shuffle injected to hide the real ones.
package accesspattern

import (
	"strconv"

	"exusiai.dev/shufflestat/internal/model"
)

// RatioPrecision is the number of decimals the obfuscation ratio is displayed with.
const RatioPrecision = 2

// Counters are the access counters of one response. They are assumed to be
// non-negative; Total is not required to equal Real+Dummy.
type Counters struct {
	Total int64
	Real  int64
	Dummy int64
}

type Summary struct {
	TotalAccesses    int64   `json:"totalAccesses"`
	RealAccesses     int64   `json:"realAccesses"`
	DummyAccesses    int64   `json:"dummyAccesses"`
	ObfuscationRatio float64 `json:"obfuscationRatio"`
}

// Summarize derives the obfuscation ratio dummy/max(real, 1). A zero real count
// divides by one rather than producing Inf or NaN.
func Summarize(c Counters) Summary {
	return Summary{
		TotalAccesses:    c.Total,
		RealAccesses:     c.Real,
		DummyAccesses:    c.Dummy,
		ObfuscationRatio: float64(c.Dummy) / float64(max(c.Real, 1)),
	}
}

// RatioDisplay renders the obfuscation ratio with two decimals.
func (s Summary) RatioDisplay() string {
	return strconv.FormatFloat(s.ObfuscationRatio, 'f', RatioPrecision, 64)
}

// FromResponse reads counters off the wire, treating missing or negative values as 0.
func FromResponse(resp *model.AccessPatternResponse) Counters {
	if resp == nil {
		return Counters{}
	}
	return Counters{
		Total: nonNegative(resp.TotalAccesses.ValueOrZero()),
		Real:  nonNegative(resp.RealAccesses.ValueOrZero()),
		Dummy: nonNegative(resp.DummyAccesses.ValueOrZero()),
	}
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// Average folds the counters of several runs into per-run means, truncating like
// the producing service does. No runs yields zero counters.
func Average(runs []Counters) Counters {
	if len(runs) == 0 {
		return Counters{}
	}
	var sum Counters
	for _, r := range runs {
		sum.Total += r.Total
		sum.Real += r.Real
		sum.Dummy += r.Dummy
	}
	n := int64(len(runs))
	return Counters{
		Total: sum.Total / n,
		Real:  sum.Real / n,
		Dummy: sum.Dummy / n,
	}
}

// Breakdown counts the recorded accesses by type.
type Breakdown struct {
	Real    int `json:"real"`
	Dummy   int `json:"dummy"`
	Unknown int `json:"unknown"`
}

func SequenceBreakdown(sequence []*model.AccessRecord) Breakdown {
	var b Breakdown
	for _, r := range sequence {
		if r == nil {
			continue
		}
		switch r.Type {
		case model.AccessTypeReal:
			b.Real++
		case model.AccessTypeDummy:
			b.Dummy++
		default:
			b.Unknown++
		}
	}
	return b
}
