// Package constants provides shared constants for the property24-to-obsidian application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Bond defaults; rates are annual percentages.
const (
	// DefaultInterestRate is the assumed prime-linked bond rate
	DefaultInterestRate = 10.75

	// DefaultTermYears is the standard residential bond term
	DefaultTermYears = 20
)

// Once-off cost rates, as percentages of the purchase price or bond amount.
const (
	// DepositRate is the assumed deposit, as a percentage of the purchase price
	DepositRate = 10.0

	// BondRegistrationRate applies to the bond amount
	BondRegistrationRate = 1.0

	// TransferCostsRate applies to the purchase price
	TransferCostsRate = 1.0

	// AttorneyFeesRate applies to the purchase price
	AttorneyFeesRate = 0.5

	// BondOriginationRate applies to the bond amount
	BondOriginationRate = 0.5

	// MovingCostsRate applies to the purchase price
	MovingCostsRate = 0.2

	// SecuritySetupRate applies to the purchase price
	SecuritySetupRate = 0.5

	// ImmediateRepairsRate applies to the purchase price
	ImmediateRepairsRate = 1.0
)

// Monthly cost rates and clamp bounds.
const (
	// InsuranceRate is the annual homeowner insurance rate on the bond amount
	InsuranceRate = 0.3

	// MaintenanceRate is the annual maintenance provision on the purchase price
	MaintenanceRate = 1.0

	// UtilitiesRate is the monthly utilities estimate on the purchase price
	UtilitiesRate = 0.1

	// UtilitiesFloor is the minimum monthly utilities estimate in Rand
	UtilitiesFloor = 1500.0

	// UtilitiesCeiling is the maximum monthly utilities estimate in Rand
	UtilitiesCeiling = 3500.0

	// SecurityRate is the monthly security estimate on the purchase price
	SecurityRate = 0.02

	// SecurityFloor is the minimum monthly security estimate in Rand
	SecurityFloor = 300.0

	// SecurityCeiling is the maximum monthly security estimate in Rand
	SecurityCeiling = 800.0
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// VaultDirEnvVar is the environment variable consulted when no vault
	// directory is configured
	VaultDirEnvVar = "OBSIDIAN_VAULT_DIR"
)

// Scraper constants
const (
	// DefaultUserAgent is sent with scraping requests; Property24 rejects
	// requests without a browser user agent
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// DefaultScrapeTimeoutSeconds bounds a single listing fetch
	DefaultScrapeTimeoutSeconds = 30

	// DefaultSource is the listing source recorded in generated notes
	DefaultSource = "Property24"
)

// Note constants
const (
	// NoteTimestampLayout is the timestamp format used in note frontmatter and footers
	NoteTimestampLayout = "2006-01-02 15:04:05"

	// DefaultVaultFolder is used for any missing location segment in the
	// province/city/suburb hierarchy
	DefaultVaultFolder = "Unsorted"

	// MaxFilenameBaseLength caps the sanitized listing name used in filenames
	MaxFilenameBaseLength = 50
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the estimate API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodyBytes is the default maximum request body size (64 KB)
	DefaultMaxBodyBytes int64 = 64 * 1024
)
