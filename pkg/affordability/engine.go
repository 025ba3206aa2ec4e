package affordability

import (
	"go.uber.org/zap"

	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/constants"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/mathutil"
)

// Config holds the tunable parameters of the estimation engine. Rates are
// percentages; the tax table and bond assumptions change over time so all
// of them are injectable rather than hardcoded.
type Config struct {
	Brackets     BracketTable
	InterestRate float64
	TermYears    int

	DepositRate          float64
	BondRegistrationRate float64
	TransferCostsRate    float64
	AttorneyFeesRate     float64
	BondOriginationRate  float64
	MovingCostsRate      float64
	SecuritySetupRate    float64
	ImmediateRepairsRate float64

	InsuranceRate   float64
	MaintenanceRate float64

	UtilitiesRate    float64
	UtilitiesFloor   float64
	UtilitiesCeiling float64
	SecurityRate     float64
	SecurityFloor    float64
	SecurityCeiling  float64

	// ExcludeUtilities and ExcludeSecurity drop the corresponding estimated
	// line items from the monthly breakdown.
	ExcludeUtilities bool
	ExcludeSecurity  bool
}

// DefaultConfig returns the engine configuration with the current default
// tax table, bond assumptions, and cost rates.
func DefaultConfig() Config {
	return Config{
		Brackets:             DefaultBracketTable(),
		InterestRate:         constants.DefaultInterestRate,
		TermYears:            constants.DefaultTermYears,
		DepositRate:          constants.DepositRate,
		BondRegistrationRate: constants.BondRegistrationRate,
		TransferCostsRate:    constants.TransferCostsRate,
		AttorneyFeesRate:     constants.AttorneyFeesRate,
		BondOriginationRate:  constants.BondOriginationRate,
		MovingCostsRate:      constants.MovingCostsRate,
		SecuritySetupRate:    constants.SecuritySetupRate,
		ImmediateRepairsRate: constants.ImmediateRepairsRate,
		InsuranceRate:        constants.InsuranceRate,
		MaintenanceRate:      constants.MaintenanceRate,
		UtilitiesRate:        constants.UtilitiesRate,
		UtilitiesFloor:       constants.UtilitiesFloor,
		UtilitiesCeiling:     constants.UtilitiesCeiling,
		SecurityRate:         constants.SecurityRate,
		SecurityFloor:        constants.SecurityFloor,
		SecurityCeiling:      constants.SecurityCeiling,
	}
}

// OnceOffBreakdown itemizes the once-off acquisition costs. Total is the
// sum of the nine itemized fields; GrandTotal additionally includes the
// purchase price itself.
type OnceOffBreakdown struct {
	Deposit          float64 `json:"deposit"`
	TransferDuty     float64 `json:"transfer_duty"`
	BondRegistration float64 `json:"bond_registration"`
	TransferCosts    float64 `json:"transfer_costs"`
	AttorneyFees     float64 `json:"attorney_fees"`
	BondOrigination  float64 `json:"bond_origination"`
	MovingCosts      float64 `json:"moving_costs"`
	SecuritySetup    float64 `json:"security_setup"`
	ImmediateRepairs float64 `json:"immediate_repairs"`
	Total            float64 `json:"total"`
	GrandTotal       float64 `json:"grand_total"`
}

// MonthlyBreakdown itemizes the recurring monthly costs of ownership.
// Total is the sum of the itemized fields.
type MonthlyBreakdown struct {
	BondPayment float64 `json:"bond_payment"`
	Levies      float64 `json:"levies"`
	RatesTaxes  float64 `json:"rates_taxes"`
	Insurance   float64 `json:"insurance"`
	Maintenance float64 `json:"maintenance"`
	Utilities   float64 `json:"utilities"`
	Security    float64 `json:"security"`
	Total       float64 `json:"total"`
}

// Estimate bundles the full affordability picture for one listing.
type Estimate struct {
	Price      float64          `json:"price"`
	Deposit    float64          `json:"deposit"`
	BondAmount float64          `json:"bond_amount"`
	OnceOff    OnceOffBreakdown `json:"once_off"`
	Monthly    MonthlyBreakdown `json:"monthly"`
}

// Engine computes affordability estimates for property listings. All
// methods are pure functions over their inputs; an Engine may be shared
// across goroutines.
type Engine struct {
	cfg    Config
	logger *zap.Logger
}

// NewEngine creates an estimation engine. If logger is nil a no-op logger
// is used.
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Deposit returns the assumed deposit for a purchase price.
func (e *Engine) Deposit(price float64) float64 {
	if price <= 0 {
		return 0
	}
	return mathutil.ApplyPercentage(price, e.cfg.DepositRate)
}

// BondAmount returns the financed portion of a purchase price, i.e. the
// price less the assumed deposit.
func (e *Engine) BondAmount(price float64) float64 {
	if price <= 0 {
		return 0
	}
	return price - e.Deposit(price)
}

// OnceOffCosts itemizes the once-off acquisition costs for a purchase
// price. No rounding is applied; formatting happens at display time.
func (e *Engine) OnceOffCosts(price float64) OnceOffBreakdown {
	if price <= 0 {
		e.logger.Debug("non-positive price, once-off costs default to zero",
			zap.String("op", "affordability.OnceOffCosts"),
			zap.Float64("price", price),
		)
		return OnceOffBreakdown{}
	}

	bondAmount := e.BondAmount(price)

	breakdown := OnceOffBreakdown{
		Deposit:          e.Deposit(price),
		TransferDuty:     TransferDuty(e.cfg.Brackets, price),
		BondRegistration: mathutil.ApplyPercentage(bondAmount, e.cfg.BondRegistrationRate),
		TransferCosts:    mathutil.ApplyPercentage(price, e.cfg.TransferCostsRate),
		AttorneyFees:     mathutil.ApplyPercentage(price, e.cfg.AttorneyFeesRate),
		BondOrigination:  mathutil.ApplyPercentage(bondAmount, e.cfg.BondOriginationRate),
		MovingCosts:      mathutil.ApplyPercentage(price, e.cfg.MovingCostsRate),
		SecuritySetup:    mathutil.ApplyPercentage(price, e.cfg.SecuritySetupRate),
		ImmediateRepairs: mathutil.ApplyPercentage(price, e.cfg.ImmediateRepairsRate),
	}
	breakdown.Total = breakdown.Deposit + breakdown.TransferDuty + breakdown.BondRegistration +
		breakdown.TransferCosts + breakdown.AttorneyFees + breakdown.BondOrigination +
		breakdown.MovingCosts + breakdown.SecuritySetup + breakdown.ImmediateRepairs
	breakdown.GrandTotal = price + breakdown.Total

	return breakdown
}

// MonthlyCosts itemizes the recurring monthly costs for a listing. Levies
// and rates are passed through as given; callers normalize scraped strings
// with the numeric package first. Utilities and security are clamped to
// their configured bounds after the raw percentage is computed.
func (e *Engine) MonthlyCosts(bondAmount, levies, ratesTaxes, price float64) MonthlyBreakdown {
	breakdown := MonthlyBreakdown{
		BondPayment: MonthlyBondPayment(bondAmount, e.cfg.InterestRate, e.cfg.TermYears),
		Levies:      levies,
		RatesTaxes:  ratesTaxes,
		Insurance:   mathutil.ApplyPercentage(bondAmount, e.cfg.InsuranceRate) / constants.MonthsPerYear,
		Maintenance: mathutil.ApplyPercentage(price, e.cfg.MaintenanceRate) / constants.MonthsPerYear,
	}

	if !e.cfg.ExcludeUtilities {
		raw := mathutil.ApplyPercentage(price, e.cfg.UtilitiesRate)
		breakdown.Utilities = mathutil.Clamp(raw, e.cfg.UtilitiesFloor, e.cfg.UtilitiesCeiling)
	}
	if !e.cfg.ExcludeSecurity {
		raw := mathutil.ApplyPercentage(price, e.cfg.SecurityRate)
		breakdown.Security = mathutil.Clamp(raw, e.cfg.SecurityFloor, e.cfg.SecurityCeiling)
	}

	breakdown.Total = breakdown.BondPayment + breakdown.Levies + breakdown.RatesTaxes +
		breakdown.Insurance + breakdown.Maintenance + breakdown.Utilities + breakdown.Security

	return breakdown
}

// EstimateCosts computes the full affordability picture for a purchase
// price along with the scraped monthly levies and rates.
func (e *Engine) EstimateCosts(price, levies, ratesTaxes float64) Estimate {
	if price <= 0 {
		e.logger.Warn("listing has no usable price, estimate defaults to zero",
			zap.String("op", "affordability.EstimateCosts"),
		)
	}
	bondAmount := e.BondAmount(price)
	return Estimate{
		Price:      price,
		Deposit:    e.Deposit(price),
		BondAmount: bondAmount,
		OnceOff:    e.OnceOffCosts(price),
		Monthly:    e.MonthlyCosts(bondAmount, levies, ratesTaxes, price),
	}
}
