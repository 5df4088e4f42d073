package accesspattern

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"

	"exusiai.dev/shufflestat/internal/model"
)

func TestSummarizeRatio(t *testing.T) {
	cases := []struct {
		name        string
		real, dummy int64
		want        float64
	}{
		{"no real accesses floors denominator", 0, 5, 5.0},
		{"no dummy accesses", 10, 0, 0.0},
		{"nothing at all", 0, 0, 0.0},
		{"typical", 12, 30, 2.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Summarize(Counters{Total: c.real + c.dummy, Real: c.real, Dummy: c.dummy})
			assert.False(t, math.IsNaN(s.ObfuscationRatio) || math.IsInf(s.ObfuscationRatio, 0))
			assert.Equal(t, c.want, s.ObfuscationRatio)
		})
	}
}

func TestSummarizeKeepsMismatchedTotal(t *testing.T) {
	s := Summarize(Counters{Total: 7, Real: 10, Dummy: 20})
	assert.Equal(t, Summary{TotalAccesses: 7, RealAccesses: 10, DummyAccesses: 20, ObfuscationRatio: 2}, s)
}

func TestRatioDisplay(t *testing.T) {
	assert.Equal(t, "5.00", Summarize(Counters{Dummy: 5}).RatioDisplay())
	assert.Equal(t, "0.33", Summarize(Counters{Real: 3, Dummy: 1}).RatioDisplay())
	assert.Equal(t, "0.67", Summarize(Counters{Real: 3, Dummy: 2}).RatioDisplay())
}

func TestFromResponse(t *testing.T) {
	assert.Equal(t, Counters{}, FromResponse(nil))
	assert.Equal(t, Counters{}, FromResponse(&model.AccessPatternResponse{}))
	assert.Equal(t, Counters{Total: 9, Real: 0, Dummy: 6}, FromResponse(&model.AccessPatternResponse{
		TotalAccesses: null.IntFrom(9),
		RealAccesses:  null.IntFrom(-3),
		DummyAccesses: null.IntFrom(6),
	}))
}

func TestAverage(t *testing.T) {
	assert.Equal(t, Counters{}, Average(nil))
	assert.Equal(t, Counters{Total: 15, Real: 2, Dummy: 12}, Average([]Counters{
		{Total: 14, Real: 2, Dummy: 12},
		{Total: 17, Real: 3, Dummy: 13},
	}))
}

func TestSequenceBreakdown(t *testing.T) {
	b := SequenceBreakdown([]*model.AccessRecord{
		{Index: 0, Type: model.AccessTypeReal},
		{Index: 3, Type: model.AccessTypeDummy},
		{Index: 1, Type: model.AccessTypeDummy},
		nil,
		{Index: 2, Type: "other"},
	})
	assert.Equal(t, Breakdown{Real: 1, Dummy: 2, Unknown: 1}, b)
}
