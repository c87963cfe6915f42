package appconfig

import (
	"time"

	"sumstats.dev/explorer/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving normal service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9010"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of a rotated log file mirroring stdout. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// LogFileMaxSizeMB is the size at which LogFile is rotated.
	LogFileMaxSizeMB int `split_words:"true" default:"100"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic.
	DevMode bool `split_words:"true"`

	// DataPath locates the summary statistics table: a local path, or s3://bucket/key.
	// Files ending in .xlsx are read as workbooks, anything else as CSV.
	DataPath string `required:"true" split_words:"true"`

	// S3Region is the region of the bucket named by DataPath.
	S3Region string `split_words:"true" default:"us-east-1"`

	// S3Endpoint overrides the S3 endpoint, e.g. for S3-compatible stores. Path-style addressing is used when set.
	S3Endpoint string `split_words:"true"`

	// S3AccessKey and S3SecretKey are static credentials. When empty the default AWS credential chain is used.
	S3AccessKey string `split_words:"true"`
	S3SecretKey string `split_words:"true"`

	// S3FetchAttempts is the number of attempts to fetch DataPath from S3.
	S3FetchAttempts uint `split_words:"true" default:"3"`

	// ViewCacheTTL is how long a computed view is memoized. Zero disables memoization.
	ViewCacheTTL time.Duration `split_words:"true" default:"10m"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: otlp, stdout (for debug).
	TracingExporters []string `split_words:"true" default:"otlp"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
