package config

import (
	"fmt"

	"github.com/iwvelando/parcel-projection/internal/projection"
	"github.com/iwvelando/parcel-projection/pkg/constants"
	"github.com/iwvelando/parcel-projection/pkg/validation"
)

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard errors are reported by ProjectionParams.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
		warnings = append(warnings, fmt.Sprintf("logging.level: %v", err))
	}
	if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
		warnings = append(warnings, fmt.Sprintf("logging.format: %v", err))
	}

	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, fmt.Sprintf("output format ignored: %v", err))
		}
	}

	p := c.Projection
	if p.UFConversion == 0 || p.UFConversion == constants.DefaultUFConversion {
		warnings = append(warnings, fmt.Sprintf(
			"projection.ufConversion uses the static factor %.0f; results drift as the UF moves",
			constants.DefaultUFConversion))
	}
	if len(p.IRRTable) == 0 {
		mode, err := projection.ParseIRRMode(p.IRRMode)
		if err == nil && mode != projection.IRRModeSolved {
			warnings = append(warnings,
				"legacy IRR lookup is only calibrated for 100, 200, 300 and 400 parcels; other counts report the default rate")
		}
	}

	warnings = append(warnings, validation.ValidateShares(p.OperatorShare, p.InvestorShare)...)

	if p.HorizonMonths != 0 && p.HorizonMonths%constants.MonthsPerYear != 0 {
		warnings = append(warnings, fmt.Sprintf(
			"projection.horizonMonths %d is not a whole number of years; the last annual bucket is partial",
			p.HorizonMonths))
	}

	for i, station := range c.Stations {
		if err := station.Validate(); err != nil {
			warnings = append(warnings, fmt.Sprintf("station %d is invalid and will be rejected: %v", i+1, err))
		}
	}

	return warnings
}
