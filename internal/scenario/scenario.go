// Package scenario implements the investment simulator shown next to each
// project: a fixed table of return rates per project and scenario applied to
// an investment amount.
package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownProject is returned for a project key not in the tables.
	ErrUnknownProject = errors.New("unknown project")

	// ErrUnknownScenario is returned for a scenario key the project lacks.
	ErrUnknownScenario = errors.New("unknown scenario")

	// ErrInvalidAmount is returned for a zero or negative investment.
	ErrInvalidAmount = errors.New("investment must be positive")
)

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// Rates are the table figures for one project and scenario.
type Rates struct {
	Project       string
	Scenario      string
	ROI           decimal.Decimal
	TIR           decimal.Decimal
	VANMultiplier decimal.Decimal
	PaybackMonths int
}

// Simulation is the result of applying Rates to an investment.
type Simulation struct {
	Rates
	ProjectName     string
	Investment      decimal.Decimal
	AnnualReturn    decimal.Decimal
	MonthlyReturn   decimal.Decimal
	NetPresentValue decimal.Decimal
	NetGain         decimal.Decimal
}

// ProjectInfo describes a simulator project and the scenarios it offers.
type ProjectInfo struct {
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	Scenarios []string `json:"scenarios"`
}

// Projects lists the simulator projects in display order.
func Projects() []ProjectInfo {
	infos := make([]ProjectInfo, 0, len(projects))
	for _, p := range projects {
		info := ProjectInfo{Key: p.key, Name: p.name}
		for _, r := range p.scenarios {
			info.Scenarios = append(info.Scenarios, r.scenario)
		}
		infos = append(infos, info)
	}
	return infos
}

// Scenarios lists the scenario keys in display order.
func Scenarios() []string {
	return []string{ScenarioConservative, ScenarioModerate, ScenarioOptimistic}
}

// Lookup returns the rates for a project and scenario. Keys are matched
// case-insensitively.
func Lookup(projectKey, scenarioKey string) (Rates, error) {
	p, err := findProject(projectKey)
	if err != nil {
		return Rates{}, err
	}
	key := normalizeKey(scenarioKey)
	for _, r := range p.scenarios {
		if r.scenario == key {
			return Rates{
				Project:       p.key,
				Scenario:      r.scenario,
				ROI:           decimal.RequireFromString(r.roi),
				TIR:           decimal.RequireFromString(r.tir),
				VANMultiplier: decimal.RequireFromString(r.vanMultiplier),
				PaybackMonths: r.paybackMonths,
			}, nil
		}
	}
	return Rates{}, fmt.Errorf("%w: %q", ErrUnknownScenario, scenarioKey)
}

// Simulate applies the rates of a project and scenario to investment.
// Currency outputs are rounded to two decimals.
func Simulate(projectKey, scenarioKey string, investment decimal.Decimal) (Simulation, error) {
	if !investment.IsPositive() {
		return Simulation{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, investment.String())
	}
	rates, err := Lookup(projectKey, scenarioKey)
	if err != nil {
		return Simulation{}, err
	}
	p, _ := findProject(projectKey)

	annual := investment.Mul(rates.ROI).Div(hundred)
	npv := investment.Mul(rates.VANMultiplier)

	return Simulation{
		Rates:           rates,
		ProjectName:     p.name,
		Investment:      investment,
		AnnualReturn:    annual.Round(2),
		MonthlyReturn:   annual.Div(monthsInYear).Round(2),
		NetPresentValue: npv.Round(2),
		NetGain:         npv.Sub(investment).Round(2),
	}, nil
}

func findProject(key string) (project, error) {
	normalized := normalizeKey(key)
	for _, p := range projects {
		if p.key == normalized {
			return p, nil
		}
	}
	return project{}, fmt.Errorf("%w: %q", ErrUnknownProject, key)
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
