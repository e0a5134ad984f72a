package projection

import (
	"math"

	"github.com/iwvelando/parcel-projection/pkg/constants"
	"github.com/iwvelando/parcel-projection/pkg/mathutil"
)

// MonthlyFlow is one month of the projected cash flow.
type MonthlyFlow struct {
	Month                  int     `json:"month"`
	NetCashFlow            float64 `json:"netCashFlow"`
	DiscountFactor         float64 `json:"discountFactor"`
	PresentValue           float64 `json:"presentValue"`
	CumulativeNetCashFlow  float64 `json:"cumulativeNetCashFlow"`
	CumulativePresentValue float64 `json:"cumulativePresentValue"`
	// Position is the undiscounted cumulative flow net of the investment.
	Position float64 `json:"position"`
}

// AnnualFlow aggregates twelve months of projected cash flow. The final year
// is shorter when the horizon is not a multiple of twelve.
type AnnualFlow struct {
	Year                   int     `json:"year"`
	Months                 int     `json:"months"`
	GrossIncome            float64 `json:"grossIncome"`
	OperatorProfit         float64 `json:"operatorProfit"`
	InvestorProfit         float64 `json:"investorProfit"`
	NetCashFlow            float64 `json:"netCashFlow"`
	PresentValue           float64 `json:"presentValue"`
	CumulativePresentValue float64 `json:"cumulativePresentValue"`
}

// Schedule is the month-by-month view behind a projection.
type Schedule struct {
	Investment             float64       `json:"investment"`
	MonthlyRate            float64       `json:"monthlyRate"`
	Months                 []MonthlyFlow `json:"months"`
	Years                  []AnnualFlow  `json:"years"`
	NPV                    float64       `json:"npv"`
	PaybackMonth           int           `json:"paybackMonth"`
	DiscountedPaybackMonth int           `json:"discountedPaybackMonth"`
}

// Schedule expands in into its monthly and annual cash flows over the
// horizon. PaybackMonth and DiscountedPaybackMonth are zero when the
// investment is not recovered within the horizon.
func (c *Calculator) Schedule(in Input) (Schedule, error) {
	if err := c.validateInput(in); err != nil {
		return Schedule{}, err
	}
	flows, err := c.monthlyFlows(in)
	if err != nil {
		return Schedule{}, err
	}

	investment := c.adjustedInvestment(in.ParcelCount)
	if _, err := paybackMonths(investment, flows.net); err != nil {
		return Schedule{}, err
	}
	monthlyRate := mathutil.PercentToFraction(in.DiscountRateAnnualPercent) / constants.MonthsPerYear

	sched := Schedule{
		Investment:  investment,
		MonthlyRate: monthlyRate,
		Months:      make([]MonthlyFlow, 0, c.params.HorizonMonths),
	}

	var cumulativeNet, cumulativePV float64
	var year *AnnualFlow
	for month := 1; month <= c.params.HorizonMonths; month++ {
		factor := 1 / math.Pow(1+monthlyRate, float64(month))
		pv := flows.net * factor
		cumulativeNet += flows.net
		cumulativePV += pv

		sched.Months = append(sched.Months, MonthlyFlow{
			Month:                  month,
			NetCashFlow:            flows.net,
			DiscountFactor:         factor,
			PresentValue:           pv,
			CumulativeNetCashFlow:  cumulativeNet,
			CumulativePresentValue: cumulativePV,
			Position:               cumulativeNet - investment,
		})

		if sched.PaybackMonth == 0 && cumulativeNet >= investment {
			sched.PaybackMonth = month
		}
		if sched.DiscountedPaybackMonth == 0 && cumulativePV >= investment {
			sched.DiscountedPaybackMonth = month
		}

		if (month-1)%constants.MonthsPerYear == 0 {
			sched.Years = append(sched.Years, AnnualFlow{Year: len(sched.Years) + 1})
			year = &sched.Years[len(sched.Years)-1]
		}
		year.Months++
		year.GrossIncome += flows.gross
		year.OperatorProfit += flows.operator
		year.InvestorProfit += flows.investor
		year.NetCashFlow += flows.net
		year.PresentValue += pv
		year.CumulativePresentValue = cumulativePV
	}

	sched.NPV = cumulativePV - investment
	return sched, nil
}
