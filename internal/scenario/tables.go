package scenario

// Project keys.
const (
	ProjectLandParcels      = "land-parcels"
	ProjectChargingStations = "charging-stations"
	ProjectMixedPortfolio   = "mixed-portfolio"
)

// Scenario keys.
const (
	ScenarioConservative = "conservative"
	ScenarioModerate     = "moderate"
	ScenarioOptimistic   = "optimistic"
)

type project struct {
	key       string
	name      string
	scenarios []row
}

// row holds one scenario's rates. The values in projects are placeholders
// until the published tables are available and must not be quoted as sourced
// figures. Rates are percentages kept as strings so they convert to decimal
// without binary rounding.
type row struct {
	scenario      string
	roi           string
	tir           string
	vanMultiplier string
	paybackMonths int
}

var projects = []project{
	{
		key:  ProjectLandParcels,
		name: "Terrenos industriales",
		scenarios: []row{
			{ScenarioConservative, "18", "22", "1.35", 36},
			{ScenarioModerate, "24", "28", "1.60", 30},
			{ScenarioOptimistic, "32", "36", "1.95", 24},
		},
	},
	{
		key:  ProjectChargingStations,
		name: "Estaciones de carga",
		scenarios: []row{
			{ScenarioConservative, "15", "19", "1.25", 42},
			{ScenarioModerate, "21", "25", "1.50", 34},
			{ScenarioOptimistic, "28", "33", "1.85", 26},
		},
	},
	{
		key:  ProjectMixedPortfolio,
		name: "Portafolio mixto",
		scenarios: []row{
			{ScenarioConservative, "16.5", "20.5", "1.30", 38},
			{ScenarioModerate, "22.5", "26.5", "1.55", 32},
			{ScenarioOptimistic, "30", "34.5", "1.90", 25},
		},
	},
}
