package projection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iwvelando/parcel-projection/pkg/constants"
)

// IRRMode selects how the internal rate of return is produced.
type IRRMode string

const (
	// IRRModeLegacy reproduces the published lookup table keyed on parcel count.
	IRRModeLegacy IRRMode = constants.IRRModeLegacy

	// IRRModeSolved finds the rate at which the projected NPV is zero.
	IRRModeSolved IRRMode = constants.IRRModeSolved
)

// ParseIRRMode canonicalizes a user-supplied mode. An empty value yields an
// empty mode, which the calculator resolves to its configured default.
func ParseIRRMode(value string) (IRRMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return "", nil
	case constants.IRRModeLegacy, "lookup":
		return IRRModeLegacy, nil
	case constants.IRRModeSolved, "solve", "real":
		return IRRModeSolved, nil
	default:
		return "", fmt.Errorf("unknown irr mode %q: expected %s or %s", value, constants.IRRModeLegacy, constants.IRRModeSolved)
	}
}

// IRRPoint is one entry of the legacy IRR lookup table.
type IRRPoint struct {
	Parcels int     `yaml:"parcels" mapstructure:"parcels"`
	Rate    float64 `yaml:"rate" mapstructure:"rate"`
}

// Params holds the calibration constants of the projection.
type Params struct {
	UFConversion       float64
	BaseInvestment     float64
	CalibrationParcels int
	HorizonMonths      int
	OperatorShare      float64
	InvestorShare      float64

	IRRTable         []IRRPoint
	IRRDefault       float64
	IRRUFBase        float64
	IRRUFSensitivity float64
	DefaultIRRMode   IRRMode

	SolverTolerance     float64
	SolverMaxIterations int
}

// DefaultIRRTable returns the lookup table the site has always published.
func DefaultIRRTable() []IRRPoint {
	return []IRRPoint{
		{Parcels: 100, Rate: 40},
		{Parcels: 200, Rate: 50},
		{Parcels: 300, Rate: 60},
		{Parcels: 400, Rate: 65},
	}
}

// DefaultParams returns the historical calibration.
func DefaultParams() Params {
	return Params{
		UFConversion:        constants.DefaultUFConversion,
		BaseInvestment:      constants.DefaultBaseInvestment,
		CalibrationParcels:  constants.DefaultCalibrationParcels,
		HorizonMonths:       constants.DefaultHorizonMonths,
		OperatorShare:       constants.DefaultOperatorShare,
		InvestorShare:       constants.DefaultInvestorShare,
		IRRTable:            DefaultIRRTable(),
		IRRDefault:          constants.DefaultLegacyIRR,
		IRRUFBase:           constants.DefaultIRRUFBase,
		IRRUFSensitivity:    constants.DefaultIRRUFSensitivity,
		DefaultIRRMode:      IRRModeLegacy,
		SolverTolerance:     constants.DefaultSolverTolerance,
		SolverMaxIterations: constants.DefaultSolverMaxIterations,
	}
}

// Validate checks that the calibration can produce finite results.
func (p Params) Validate() error {
	if p.UFConversion <= 0 {
		return fmt.Errorf("ufConversion must be positive, got %v", p.UFConversion)
	}
	if p.BaseInvestment <= 0 {
		return fmt.Errorf("baseInvestment must be positive, got %v", p.BaseInvestment)
	}
	if p.CalibrationParcels <= 0 {
		return fmt.Errorf("calibrationParcels must be positive, got %d", p.CalibrationParcels)
	}
	if p.HorizonMonths <= 0 {
		return fmt.Errorf("horizonMonths must be positive, got %d", p.HorizonMonths)
	}
	if p.OperatorShare < 0 || p.OperatorShare > 1 {
		return fmt.Errorf("operatorShare must be within [0, 1], got %v", p.OperatorShare)
	}
	if p.InvestorShare < 0 || p.InvestorShare > 1 {
		return fmt.Errorf("investorShare must be within [0, 1], got %v", p.InvestorShare)
	}
	seen := make(map[int]struct{}, len(p.IRRTable))
	for _, point := range p.IRRTable {
		if point.Parcels <= 0 {
			return fmt.Errorf("irr table entry has non-positive parcel count %d", point.Parcels)
		}
		if _, dup := seen[point.Parcels]; dup {
			return fmt.Errorf("irr table has duplicate parcel count %d", point.Parcels)
		}
		seen[point.Parcels] = struct{}{}
	}
	switch p.DefaultIRRMode {
	case "", IRRModeLegacy, IRRModeSolved:
	default:
		return fmt.Errorf("unknown default irr mode %q", p.DefaultIRRMode)
	}
	if p.SolverTolerance < 0 {
		return fmt.Errorf("solverTolerance must not be negative, got %v", p.SolverTolerance)
	}
	if p.SolverMaxIterations < 0 {
		return fmt.Errorf("solverMaxIterations must not be negative, got %d", p.SolverMaxIterations)
	}
	return nil
}

// normalize fills zero-valued solver and mode settings with defaults.
func (p Params) normalize() Params {
	if p.DefaultIRRMode == "" {
		p.DefaultIRRMode = IRRModeLegacy
	}
	if p.SolverTolerance == 0 {
		p.SolverTolerance = constants.DefaultSolverTolerance
	}
	if p.SolverMaxIterations == 0 {
		p.SolverMaxIterations = constants.DefaultSolverMaxIterations
	}
	table := append([]IRRPoint(nil), p.IRRTable...)
	sort.Slice(table, func(i, j int) bool { return table[i].Parcels < table[j].Parcels })
	p.IRRTable = table
	return p
}

// legacyRate returns the table rate for an exact parcel count.
func (p Params) legacyRate(parcels int) (float64, bool) {
	for _, point := range p.IRRTable {
		if point.Parcels == parcels {
			return point.Rate, true
		}
	}
	return p.IRRDefault, false
}
