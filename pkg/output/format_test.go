package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/iwvelando/parcel-projection/internal/projection"
	"go.uber.org/zap"
)

func sampleProjection(t *testing.T) (projection.Result, projection.Schedule) {
	t.Helper()
	calc, err := projection.NewCalculator(zap.NewNop(), projection.DefaultParams())
	if err != nil {
		t.Fatalf("NewCalculator() error = %v", err)
	}
	in := projection.Input{ParcelCount: 100, UFValue: 0.01, ParcelArea: 10000, DiscountRateAnnualPercent: 15}
	result, err := calc.Calculate(in, projection.IRRModeLegacy)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	sched, err := calc.Schedule(in)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	return result, sched
}

func TestPrettyFormat(t *testing.T) {
	result, sched := sampleProjection(t)

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, result, sched); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	expected := []string{
		"--- Projection ---",
		"$350.000.000",
		"$63.000.000",
		"1.688 MM",
		"IRR (legacy):",
		"40,00%",
		"16 months",
		"warning: UF conversion uses the static factor 35000",
		"--- Annual cash flow ---",
		"Year | Months | Net cash flow | Present value | Cumulative PV",
		"$756.000.000",
		"--- Monthly cash flow ---",
		"<- payback",
		"<- discounted payback",
	}
	for _, fragment := range expected {
		if !strings.Contains(output, fragment) {
			t.Errorf("PrettyFormat output missing %q", fragment)
		}
	}
}

func TestCsvFormat(t *testing.T) {
	_, sched := sampleProjection(t)

	var buf bytes.Buffer
	if err := CsvFormat(&buf, sched); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV output: %v", err)
	}
	if len(records) != 61 {
		t.Fatalf("expected header plus 60 rows, got %d", len(records))
	}
	if records[0][0] != "month" || records[0][6] != "position" {
		t.Errorf("unexpected header %v", records[0])
	}
	if records[1][0] != "1" || records[1][1] != "63000000.00" {
		t.Errorf("unexpected first row %v", records[1])
	}
	if records[60][4] != "3780000000.00" {
		t.Errorf("unexpected cumulative net in last row %v", records[60])
	}
}
