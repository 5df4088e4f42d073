package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-Shufflestat-Request-ID"

	// AmbiguousTokensHeader carries the number of exported permutation tokens whose
	// key or value could not be split unambiguously.
	AmbiguousTokensHeader = "X-Shufflestat-Ambiguous-Tokens"
)
