package constant

const (
	ServiceName = "shufflestat"

	EnvPrefix = "shufflestat"
)
