package projection

import "testing"

func TestParseIRRMode(t *testing.T) {
	tests := []struct {
		input     string
		expected  IRRMode
		expectErr bool
	}{
		{"", "", false},
		{"legacy", IRRModeLegacy, false},
		{" Lookup ", IRRModeLegacy, false},
		{"solved", IRRModeSolved, false},
		{"REAL", IRRModeSolved, false},
		{"newton", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseIRRMode(tt.input)
			if (err != nil) != tt.expectErr {
				t.Fatalf("ParseIRRMode(%q) error = %v, expectErr %v", tt.input, err, tt.expectErr)
			}
			if mode != tt.expected {
				t.Errorf("ParseIRRMode(%q) = %q, expected %q", tt.input, mode, tt.expected)
			}
		})
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Params)
		expectErr bool
	}{
		{"defaults", func(p *Params) {}, false},
		{"zero conversion", func(p *Params) { p.UFConversion = 0 }, true},
		{"negative investment", func(p *Params) { p.BaseInvestment = -1 }, true},
		{"zero calibration parcels", func(p *Params) { p.CalibrationParcels = 0 }, true},
		{"zero horizon", func(p *Params) { p.HorizonMonths = 0 }, true},
		{"operator share above one", func(p *Params) { p.OperatorShare = 1.2 }, true},
		{"negative investor share", func(p *Params) { p.InvestorShare = -0.1 }, true},
		{"duplicate table entry", func(p *Params) { p.IRRTable = append(p.IRRTable, IRRPoint{Parcels: 100, Rate: 1}) }, true},
		{"non-positive table entry", func(p *Params) { p.IRRTable = []IRRPoint{{Parcels: 0, Rate: 1}} }, true},
		{"unknown default mode", func(p *Params) { p.DefaultIRRMode = "newton" }, true},
		{"empty default mode", func(p *Params) { p.DefaultIRRMode = "" }, false},
		{"negative tolerance", func(p *Params) { p.SolverTolerance = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultParams()
			tt.mutate(&params)
			err := params.Validate()
			if (err != nil) != tt.expectErr {
				t.Errorf("Validate() error = %v, expectErr %v", err, tt.expectErr)
			}
		})
	}
}

func TestNewCalculatorRejectsInvalidParams(t *testing.T) {
	params := DefaultParams()
	params.HorizonMonths = -1
	if _, err := NewCalculator(nil, params); err == nil {
		t.Fatal("expected error for invalid params")
	}
}

func TestNormalizeSortsTable(t *testing.T) {
	params := DefaultParams()
	params.IRRTable = []IRRPoint{{Parcels: 400, Rate: 65}, {Parcels: 100, Rate: 40}}
	params.SolverTolerance = 0
	params.SolverMaxIterations = 0

	calc, err := NewCalculator(nil, params)
	if err != nil {
		t.Fatalf("NewCalculator() error = %v", err)
	}
	got := calc.Params()
	if got.IRRTable[0].Parcels != 100 || got.IRRTable[1].Parcels != 400 {
		t.Errorf("table not sorted: %+v", got.IRRTable)
	}
	if got.SolverTolerance == 0 || got.SolverMaxIterations == 0 {
		t.Errorf("solver defaults not applied: %+v", got)
	}

	rate, ok := got.legacyRate(400)
	if !ok || rate != 65 {
		t.Errorf("legacyRate(400) = %v, %v", rate, ok)
	}
	rate, ok = got.legacyRate(250)
	if ok || rate != got.IRRDefault {
		t.Errorf("legacyRate(250) = %v, %v; expected default", rate, ok)
	}
}
