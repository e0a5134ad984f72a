// Package constants provides shared constants for the parcel-projection application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// Million is the divisor used to report values in millions
	Million = 1_000_000.0
)

// Projection calibration defaults. These reproduce the values the site has
// always published and are overridable through the projection config block.
const (
	// DefaultUFConversion converts one UF into local currency
	DefaultUFConversion = 35000.0

	// DefaultBaseInvestment is the capital required for the calibration scenario
	DefaultBaseInvestment = 960_000_000.0

	// DefaultCalibrationParcels is the parcel count the base investment refers to
	DefaultCalibrationParcels = 100

	// DefaultHorizonMonths is the NPV horizon
	DefaultHorizonMonths = 60

	// DefaultOperatorShare is the operator's share of gross income
	DefaultOperatorShare = 0.20

	// DefaultInvestorShare is the investor's share of the operator profit
	DefaultInvestorShare = 0.10

	// DefaultLegacyIRR is returned for parcel counts outside the lookup table
	DefaultLegacyIRR = 40.0

	// DefaultIRRUFBase is the UF value the lookup table was tuned for
	DefaultIRRUFBase = 0.01

	// DefaultIRRUFSensitivity is the IRR points added per UF above the base
	DefaultIRRUFSensitivity = 500.0
)

// IRR modes
const (
	// IRRModeLegacy reproduces the published lookup table
	IRRModeLegacy = "legacy"

	// IRRModeSolved solves the NPV-zero equation numerically
	IRRModeSolved = "solved"
)

// Root finder defaults
const (
	// DefaultSolverTolerance is the bracket width at which bisection stops
	DefaultSolverTolerance = 1e-12

	// DefaultSolverMaxIterations bounds the bisection loop
	DefaultSolverMaxIterations = 200
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum JSON request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown
	DefaultShutdownTimeoutSeconds = 10
)

// Validation constants
const (
	// ShareTolerance is the tolerance for comparing configured profit shares
	ShareTolerance = 1e-9
)
