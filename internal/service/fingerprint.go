package service

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"

	"exusiai.dev/shufflestat/internal/constant"
	"exusiai.dev/shufflestat/internal/model"
	"exusiai.dev/shufflestat/internal/model/types"
)

// fingerprint hashes observations in input order. Reordering the input changes
// the fingerprint, as it may change the tie order of the built chart.
func fingerprint(observations []model.FrequencyObservation) uint64 {
	h := xxh3.New()
	var buf [8]byte
	for _, o := range observations {
		binary.LittleEndian.PutUint64(buf[:], uint64(o.Position))
		_, _ = h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(len(o.Element)))
		_, _ = h.Write(buf[:])
		_, _ = h.WriteString(o.Element)
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(o.Frequency))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

func chartCacheKey(fp uint64, params types.ChartParams) string {
	return strings.Join([]string{
		strconv.FormatUint(fp, 16),
		strconv.Itoa(params.K),
		strconv.FormatBool(params.UsePercentage),
		strconv.FormatBool(params.ShowRelative),
	}, constant.CacheSep)
}
