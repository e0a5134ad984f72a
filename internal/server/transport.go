package server

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/iwvelando/parcel-projection/internal/projection"
	"github.com/iwvelando/parcel-projection/internal/scenario"
	"github.com/shopspring/decimal"
)

// Wire names of the projection request fields.
const (
	fieldParcelCount  = "terrenos"
	fieldUFValue      = "ufValue"
	fieldParcelArea   = "superficie"
	fieldDiscountRate = "vanRate"
	fieldIRRMode      = "irrMode"
)

// wireFieldNames maps domain field names onto the names clients send.
var wireFieldNames = map[string]string{
	"parcelCount":               fieldParcelCount,
	"ufValue":                   fieldUFValue,
	"parcelArea":                fieldParcelArea,
	"discountRateAnnualPercent": fieldDiscountRate,
}

func wireField(domain string) string {
	if name, ok := wireFieldNames[domain]; ok {
		return name
	}
	return domain
}

// projectionRequest is the body of the projection endpoints. Pointers
// distinguish a missing field from a zero value.
type projectionRequest struct {
	Terrenos   *float64 `json:"terrenos"`
	UFValue    *float64 `json:"ufValue"`
	Superficie *float64 `json:"superficie"`
	VanRate    *float64 `json:"vanRate"`
	IRRMode    string   `json:"irrMode,omitempty"`
}

// fieldError is a transport-level validation failure on a wire field.
type fieldError struct {
	field  string
	reason string
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("%s %s", e.field, e.reason)
}

// toInput maps the wire request onto a projection.Input.
func (r projectionRequest) toInput() (projection.Input, error) {
	parcels, err := requiredInt(fieldParcelCount, r.Terrenos)
	if err != nil {
		return projection.Input{}, err
	}
	area, err := requiredInt(fieldParcelArea, r.Superficie)
	if err != nil {
		return projection.Input{}, err
	}
	if r.UFValue == nil {
		return projection.Input{}, &fieldError{field: fieldUFValue, reason: "is required"}
	}
	if r.VanRate == nil {
		return projection.Input{}, &fieldError{field: fieldDiscountRate, reason: "is required"}
	}
	return projection.Input{
		ParcelCount:               parcels,
		UFValue:                   *r.UFValue,
		ParcelArea:                area,
		DiscountRateAnnualPercent: *r.VanRate,
	}, nil
}

func requiredInt(field string, value *float64) (int, error) {
	if value == nil {
		return 0, &fieldError{field: field, reason: "is required"}
	}
	v := *value
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, &fieldError{field: field, reason: "must be an integer"}
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, &fieldError{field: field, reason: "is out of range"}
	}
	return int(v), nil
}

type projectionResponse struct {
	VAN                      float64                  `json:"van"`
	TIR                      float64                  `json:"tir"`
	Payback                  int                      `json:"payback"`
	MonthlyGross             float64                  `json:"monthlyGross"`
	MonthlyInversionesProfit float64                  `json:"monthlyInversionesProfit"`
	MonthlyInvestorProfit    float64                  `json:"monthlyInvestorProfit"`
	MonthlyNetFlow           float64                  `json:"monthlyNetFlow"`
	IRRMode                  string                   `json:"irrMode"`
	IRRSolve                 *projection.SolveSummary `json:"irrSolve,omitempty"`
	Warnings                 []projection.Warning     `json:"warnings,omitempty"`
}

func newProjectionResponse(result projection.Result) projectionResponse {
	return projectionResponse{
		VAN:                      result.NetPresentValueMillions,
		TIR:                      result.InternalRateOfReturnPercent,
		Payback:                  result.PaybackMonths,
		MonthlyGross:             result.MonthlyGrossIncome,
		MonthlyInversionesProfit: result.MonthlyOperatorProfit,
		MonthlyInvestorProfit:    result.MonthlyInvestorProfit,
		MonthlyNetFlow:           result.MonthlyNetCashFlow,
		IRRMode:                  string(result.IRRMode),
		IRRSolve:                 result.IRRSolve,
		Warnings:                 result.Warnings,
	}
}

type simulationRequest struct {
	Project    string      `json:"project"`
	Scenario   string      `json:"scenario"`
	Investment json.Number `json:"investment"`
}

type simulationResponse struct {
	Project         string          `json:"project"`
	ProjectName     string          `json:"projectName"`
	Scenario        string          `json:"scenario"`
	Investment      decimal.Decimal `json:"investment"`
	ROI             decimal.Decimal `json:"roi"`
	TIR             decimal.Decimal `json:"tir"`
	VANMultiplier   decimal.Decimal `json:"vanMultiplier"`
	PaybackMonths   int             `json:"payback"`
	AnnualReturn    decimal.Decimal `json:"annualReturn"`
	MonthlyReturn   decimal.Decimal `json:"monthlyReturn"`
	NetPresentValue decimal.Decimal `json:"van"`
	NetGain         decimal.Decimal `json:"netGain"`
}

func newSimulationResponse(sim scenario.Simulation) simulationResponse {
	return simulationResponse{
		Project:         sim.Project,
		ProjectName:     sim.ProjectName,
		Scenario:        sim.Scenario,
		Investment:      sim.Investment,
		ROI:             sim.ROI,
		TIR:             sim.TIR,
		VANMultiplier:   sim.VANMultiplier,
		PaybackMonths:   sim.PaybackMonths,
		AnnualReturn:    sim.AnnualReturn,
		MonthlyReturn:   sim.MonthlyReturn,
		NetPresentValue: sim.NetPresentValue,
		NetGain:         sim.NetGain,
	}
}

type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Error   string `json:"error,omitempty"`
}
