package distribution

import (
	"math"
	"strconv"
)

// DisplayPrecision is the number of decimals every displayed value is rounded to.
const DisplayPrecision = 4

// Mode selects how a raw frequency is displayed.
type Mode int

const (
	// ModeAbsolute displays the frequency unmodified.
	ModeAbsolute Mode = iota
	// ModePercentage displays frequency*100.
	ModePercentage
	// ModeRelative displays the frequency as a share of the displayed Top-K total.
	ModeRelative
)

// ModeOf resolves the two display toggles. showRelative takes precedence.
func ModeOf(usePercentage, showRelative bool) Mode {
	switch {
	case showRelative:
		return ModeRelative
	case usePercentage:
		return ModePercentage
	default:
		return ModeAbsolute
	}
}

func (m Mode) String() string {
	switch m {
	case ModeRelative:
		return "relative"
	case ModePercentage:
		return "percentage"
	default:
		return "absolute"
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Unit is the suffix appended to displayed values.
func (m Mode) Unit() string {
	if m == ModeAbsolute {
		return ""
	}
	return "%"
}

// AxisLabel is the value-axis caption for the mode.
func (m Mode) AxisLabel() string {
	switch m {
	case ModeRelative:
		return "Relative frequency (%)"
	case ModePercentage:
		return "Frequency (%)"
	default:
		return "Frequency"
	}
}

// Round rounds v to n decimals, half away from zero.
func Round(v float64, n int) float64 {
	pow := math.Pow10(n)
	return math.Round(v*pow) / pow
}

// Normalize converts frequency into its displayed value. total is the Top-K
// total of the frequency's position and only matters in relative mode, where a
// zero total yields 0.
func Normalize(frequency, total float64, mode Mode) float64 {
	var v float64
	switch mode {
	case ModeRelative:
		if total == 0 {
			return 0
		}
		v = frequency / total * 100
	case ModePercentage:
		v = frequency * 100
	default:
		v = frequency
	}
	return Round(v, DisplayPrecision)
}

// FormatValue renders a displayed value the way chart tooltips show it.
func FormatValue(v float64, mode Mode) string {
	return strconv.FormatFloat(v, 'f', DisplayPrecision, 64) + mode.Unit()
}
