// Package constants provides shared constants for the cosmo-calculators application.
package constants

import "time"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 paisa)
	CurrencyTolerance = 0.01

	// DefaultCompoundingFrequency is the compounding frequency a cleared
	// compound interest panel falls back to (annual)
	DefaultCompoundingFrequency = 1

	// MaxScheduleYears bounds the duration a period-by-period schedule is
	// generated for
	MaxScheduleYears = 100
)

// Presentation constants
const (
	// CurrencySymbol prefixes every rendered amount
	CurrencySymbol = "₹"

	// YearsSuffix follows a rendered period
	YearsSuffix = "Years"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Dispatch constants
const (
	// DefaultDebounceDelay is the quiet period after the last field change
	// before a calculator group is re-evaluated
	DefaultDebounceDelay = 500 * time.Millisecond
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix namespaces environment overrides of the CLI configuration
	EnvPrefix = "COSMO"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultRateLimitRequests is the number of requests a client may make per window
	DefaultRateLimitRequests = 120

	// DefaultRateLimitWindow is the rate limiting refill window
	DefaultRateLimitWindow = time.Minute

	// GracefulShutdownTimeout bounds how long serve waits for in-flight requests
	GracefulShutdownTimeout = 10 * time.Second
)
