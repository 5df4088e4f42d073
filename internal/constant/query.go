package constant

const (
	// MinTopK and MaxTopK bound K wherever it enters the service.
	MinTopK = 1
	MaxTopK = 100000

	// DefaultUsePercentage and DefaultShowRelative are the display toggles a chart
	// request gets when it leaves them unset.
	DefaultUsePercentage = true
	DefaultShowRelative  = false

	CacheSep = "|"
)
