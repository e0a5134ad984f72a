package validation

import (
	"fmt"

	"github.com/iwvelando/parcel-projection/pkg/constants"
	"github.com/iwvelando/parcel-projection/pkg/mathutil"
)

// ValidateShares returns warnings for profit shares that depart from the
// published split. Zero means unset and is not reported. Shares within
// ShareTolerance of the published values count as equal.
func ValidateShares(operatorShare, investorShare float64) []string {
	var warnings []string

	if operatorShare != 0 && !mathutil.WithinTolerance(operatorShare, constants.DefaultOperatorShare, constants.ShareTolerance) {
		warnings = append(warnings, fmt.Sprintf(
			"projection.operatorShare %.4f differs from the published %.2f",
			operatorShare, constants.DefaultOperatorShare))
	}
	if investorShare != 0 && !mathutil.WithinTolerance(investorShare, constants.DefaultInvestorShare, constants.ShareTolerance) {
		warnings = append(warnings, fmt.Sprintf(
			"projection.investorShare %.4f differs from the published %.2f",
			investorShare, constants.DefaultInvestorShare))
	}
	if operatorShare == 1 && investorShare == 1 {
		warnings = append(warnings, "operator and investor shares of 1 leave no net cash flow; every projection will fail")
	}

	return warnings
}
