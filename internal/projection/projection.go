// Package projection computes the investor-facing financial projection for a
// parcel development: monthly income split, net present value, internal rate
// of return and payback period.
package projection

import (
	"fmt"
	"math"

	"github.com/iwvelando/parcel-projection/pkg/constants"
	"github.com/iwvelando/parcel-projection/pkg/mathutil"
	"go.uber.org/zap"
)

// WarningConfigurationDrift marks outputs produced from static or
// uncalibrated constants.
const WarningConfigurationDrift = "configuration_drift"

// Input holds the parameters of a single projection.
type Input struct {
	ParcelCount               int
	UFValue                   float64
	ParcelArea                int
	DiscountRateAnnualPercent float64
}

// Warning flags an output that should not be read at face value.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result holds the computed projection.
type Result struct {
	NetPresentValueMillions     float64
	InternalRateOfReturnPercent float64
	PaybackMonths               int
	MonthlyGrossIncome          float64
	MonthlyOperatorProfit       float64
	MonthlyInvestorProfit       float64
	MonthlyNetCashFlow          float64
	AdjustedInvestment          float64
	IRRMode                     IRRMode
	IRRSolve                    *SolveSummary
	Warnings                    []Warning
}

// Calculator evaluates projections against a fixed calibration. It holds no
// mutable state and is safe for concurrent use.
type Calculator struct {
	logger *zap.Logger
	params Params
}

// NewCalculator validates params and returns a Calculator.
func NewCalculator(logger *zap.Logger, params Params) (*Calculator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid projection parameters: %w", err)
	}
	return &Calculator{logger: logger, params: params.normalize()}, nil
}

// Calculate runs a projection with the historical calibration and the legacy
// IRR lookup.
func Calculate(in Input) (Result, error) {
	calc, err := NewCalculator(nil, DefaultParams())
	if err != nil {
		return Result{}, err
	}
	return calc.Calculate(in, IRRModeLegacy)
}

// Params returns the calibration in use.
func (c *Calculator) Params() Params {
	return c.params
}

// Calculate computes the projection for in. An empty mode uses the
// calculator's default mode.
func (c *Calculator) Calculate(in Input, mode IRRMode) (Result, error) {
	if err := c.validateInput(in); err != nil {
		return Result{}, err
	}
	if mode == "" {
		mode = c.params.DefaultIRRMode
	}
	if mode != IRRModeLegacy && mode != IRRModeSolved {
		return Result{}, fmt.Errorf("unknown irr mode %q", mode)
	}

	flows, err := c.monthlyFlows(in)
	if err != nil {
		return Result{}, err
	}
	investment := c.adjustedInvestment(in.ParcelCount)
	payback, err := paybackMonths(investment, flows.net)
	if err != nil {
		return Result{}, err
	}

	monthlyRate := mathutil.PercentToFraction(in.DiscountRateAnnualPercent) / constants.MonthsPerYear
	npvSum := presentValue(flows.net, monthlyRate, c.params.HorizonMonths)

	result := Result{
		NetPresentValueMillions: mathutil.RoundHalfUp((npvSum - investment) / constants.Million),
		PaybackMonths:           payback,
		MonthlyGrossIncome:      flows.gross,
		MonthlyOperatorProfit:   flows.operator,
		MonthlyInvestorProfit:   flows.investor,
		MonthlyNetCashFlow:      flows.net,
		AdjustedInvestment:      investment,
		IRRMode:                 mode,
	}

	if c.params.UFConversion == constants.DefaultUFConversion {
		result.Warnings = append(result.Warnings, Warning{
			Code:    WarningConfigurationDrift,
			Message: fmt.Sprintf("UF conversion uses the static factor %.0f rather than a live rate", c.params.UFConversion),
		})
	}

	switch mode {
	case IRRModeLegacy:
		rate, calibrated := c.params.legacyRate(in.ParcelCount)
		result.InternalRateOfReturnPercent = rate + mathutil.RoundHalfUp((in.UFValue-c.params.IRRUFBase)*c.params.IRRUFSensitivity)
		if !calibrated {
			result.Warnings = append(result.Warnings, Warning{
				Code:    WarningConfigurationDrift,
				Message: fmt.Sprintf("IRR lookup is not calibrated for %d parcels; reporting default rate %.0f", in.ParcelCount, c.params.IRRDefault),
			})
		}
	case IRRModeSolved:
		summary := c.solveIRR(flows.net, investment)
		result.IRRSolve = &summary
		result.InternalRateOfReturnPercent = summary.AnnualPercent
		if !summary.Converged {
			result.Warnings = append(result.Warnings, Warning{
				Code:    WarningConfigurationDrift,
				Message: fmt.Sprintf("IRR solve did not converge after %d iterations", summary.Iterations),
			})
		}
	}

	c.logger.Debug("projection computed",
		zap.String("op", "projection.Calculate"),
		zap.Int("parcelCount", in.ParcelCount),
		zap.String("irrMode", string(mode)),
		zap.Float64("npvMillions", result.NetPresentValueMillions),
		zap.Int("paybackMonths", result.PaybackMonths),
	)

	return result, nil
}

func (c *Calculator) validateInput(in Input) error {
	if in.ParcelCount <= 0 {
		return invalid("parcelCount", fmt.Sprintf("must be a positive integer, got %d", in.ParcelCount))
	}
	if in.ParcelArea <= 0 {
		return invalid("parcelArea", fmt.Sprintf("must be a positive integer, got %d", in.ParcelArea))
	}
	if !mathutil.IsFinite(in.UFValue) || in.UFValue < 0 {
		return invalid("ufValue", fmt.Sprintf("must be a non-negative number, got %v", in.UFValue))
	}
	if !mathutil.IsFinite(in.DiscountRateAnnualPercent) || in.DiscountRateAnnualPercent < 0 {
		return invalid("discountRateAnnualPercent", fmt.Sprintf("must be a non-negative number, got %v", in.DiscountRateAnnualPercent))
	}
	return nil
}

type monthlyFlows struct {
	gross    float64
	operator float64
	investor float64
	net      float64
}

// monthlyFlows splits the monthly gross income. The net flow must be positive
// and the gross income summed over the horizon must stay finite, which keeps
// every cumulative figure derived from it finite too.
func (c *Calculator) monthlyFlows(in Input) (monthlyFlows, error) {
	totalArea := float64(in.ParcelCount) * float64(in.ParcelArea)
	gross := totalArea * in.UFValue * c.params.UFConversion
	operator := c.params.OperatorShare * gross
	investor := c.params.InvestorShare * operator
	flows := monthlyFlows{
		gross:    gross,
		operator: operator,
		investor: investor,
		net:      operator - investor,
	}

	if !mathutil.IsFinite(flows.net) || flows.net <= 0 {
		return monthlyFlows{}, &DivergentPaybackError{MonthlyNetCashFlow: flows.net}
	}
	if total := gross * float64(c.params.HorizonMonths); !mathutil.IsFinite(total) {
		return monthlyFlows{}, &RangeError{Quantity: "horizon gross income", Value: total}
	}
	return flows, nil
}

// maxPaybackMonths bounds the reported payback period so it fits an int32.
const maxPaybackMonths = math.MaxInt32

// paybackMonths is the number of whole months of net flow needed to recover
// investment.
func paybackMonths(investment, net float64) (int, error) {
	months := investment / net
	if !mathutil.IsFinite(months) || months > maxPaybackMonths {
		return 0, &RangeError{Quantity: "payback months", Value: months}
	}
	return mathutil.CeilInt(months), nil
}

func (c *Calculator) adjustedInvestment(parcels int) float64 {
	scaleFactor := float64(parcels) / float64(c.params.CalibrationParcels)
	return c.params.BaseInvestment * scaleFactor
}

// presentValue discounts a constant monthly flow received at the end of
// months 1..months.
func presentValue(flow, monthlyRate float64, months int) float64 {
	var sum float64
	for i := 1; i <= months; i++ {
		sum += flow / math.Pow(1+monthlyRate, float64(i))
	}
	return sum
}
