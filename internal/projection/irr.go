package projection

import (
	"math"

	"github.com/iwvelando/parcel-projection/pkg/constants"
	"github.com/iwvelando/parcel-projection/pkg/mathutil"
	"go.uber.org/zap"
)

const (
	// Rates at or below -100% per month make the discount factor undefined.
	solverLowerBound   = -0.99
	solverInitialUpper = 1.0
	solverUpperLimit   = 1e6
)

// SolveSummary describes a numerical IRR solve.
type SolveSummary struct {
	MonthlyRate   float64 `json:"monthlyRate"`
	AnnualPercent float64 `json:"annualPercent"`
	Residual      float64 `json:"residual"`
	Iterations    int     `json:"iterations"`
	Converged     bool    `json:"converged"`
}

// solveIRR finds the monthly rate r at which the horizon's discounted net
// flows equal the investment, by bisection. The NPV of a constant positive
// flow is strictly decreasing in r, so a sign change brackets the only root.
func (c *Calculator) solveIRR(netFlow, investment float64) SolveSummary {
	npvAt := func(rate float64) float64 {
		return presentValue(netFlow, rate, c.params.HorizonMonths) - investment
	}

	lower := solverLowerBound
	upper := solverInitialUpper
	for npvAt(upper) > 0 {
		if upper >= solverUpperLimit {
			return SolveSummary{MonthlyRate: upper, Residual: npvAt(upper)}
		}
		lower = upper
		upper *= 2
	}

	iterations := 0
	mid := lower + (upper-lower)/2
	residual := npvAt(mid)
	for iterations < c.params.SolverMaxIterations && math.Abs(upper-lower) > c.params.SolverTolerance {
		mid = lower + (upper-lower)/2
		residual = npvAt(mid)
		iterations++
		if residual == 0 {
			break
		}
		if residual > 0 {
			if mid == lower {
				break
			}
			lower = mid
		} else {
			if mid == upper {
				break
			}
			upper = mid
		}
	}

	converged := residual == 0 || math.Abs(upper-lower) <= c.params.SolverTolerance
	annual := (math.Pow(1+mid, constants.MonthsPerYear) - 1) * constants.PercentageMultiplier

	c.logger.Debug("irr solved",
		zap.String("op", "projection.solveIRR"),
		zap.Float64("monthlyRate", mid),
		zap.Int("iterations", iterations),
		zap.Bool("converged", converged),
	)

	return SolveSummary{
		MonthlyRate:   mid,
		AnnualPercent: mathutil.RoundTo(annual, 2),
		Residual:      residual,
		Iterations:    iterations,
		Converged:     converged,
	}
}
