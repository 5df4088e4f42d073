package appconfig

import (
	"time"

	"exusiai.dev/shufflestat/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving normal service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9010"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// LogMaxSizeMB is the size in megabytes a log file grows to before it gets rotated.
	LogMaxSizeMB int `split_words:"true" default:"100"`

	// LogMaxBackups is the number of rotated log files to retain.
	LogMaxBackups int `split_words:"true" default:"5"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// BodyLimit is the maximum accepted request body size in bytes. Shuffle-statistics payloads
	// grow with positions x elements, so this is well above fiber's 4MiB default.
	BodyLimit int `split_words:"true" default:"16777216"`

	// DefaultTopK is the K used by chart requests that do not specify one.
	DefaultTopK int `split_words:"true" default:"5"`

	// ChartCacheSize is the number of chart models kept in the LRU chart cache.
	ChartCacheSize int `split_words:"true" default:"256"`

	// SnapshotTTL is how long an ingested payload stays current. Zero keeps it until it is replaced.
	SnapshotTTL time.Duration `split_words:"true" default:"0"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
