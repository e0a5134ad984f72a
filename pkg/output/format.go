// Package output provides utilities for formatting and displaying projection results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/parcel-projection/internal/projection"
	"github.com/iwvelando/parcel-projection/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable summary followed by the annual and
// monthly cash flow tables.
func PrettyFormat(w io.Writer, result projection.Result, sched projection.Schedule) error {
	p := message.NewPrinter(language.English)

	lines := []struct {
		label string
		value string
	}{
		{"Monthly gross income", format.Pesos(result.MonthlyGrossIncome)},
		{"Monthly operator profit", format.Pesos(result.MonthlyOperatorProfit)},
		{"Monthly investor profit", format.Pesos(result.MonthlyInvestorProfit)},
		{"Monthly net cash flow", format.Pesos(result.MonthlyNetCashFlow)},
		{"Investment", format.Pesos(result.AdjustedInvestment)},
		{"NPV", format.Millions(result.NetPresentValueMillions)},
		{"IRR (" + string(result.IRRMode) + ")", format.Percent(result.InternalRateOfReturnPercent)},
		{"Payback", strconv.Itoa(result.PaybackMonths) + " months"},
	}

	if _, err := fmt.Fprintf(w, "--- Projection ---\n"); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := p.Fprintf(w, "%-26s %s\n", line.label+":", line.value); err != nil {
			return err
		}
	}
	for _, warning := range result.Warnings {
		if _, err := p.Fprintf(w, "warning: %s\n", warning.Message); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n--- Annual cash flow ---\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Year | Months | Net cash flow | Present value | Cumulative PV\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "____ | ______ | _____________ | _____________ | _____________\n"); err != nil {
		return err
	}
	for _, year := range sched.Years {
		if _, err := p.Fprintf(w, "%4d | %6d | %s | %s | %s\n",
			year.Year, year.Months,
			format.Pesos(year.NetCashFlow),
			format.Pesos(year.PresentValue),
			format.Pesos(year.CumulativePresentValue),
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n--- Monthly cash flow ---\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Month | Discount factor | Present value | Cumulative PV | Position\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "_____ | _______________ | _____________ | _____________ | ________\n"); err != nil {
		return err
	}
	for _, month := range sched.Months {
		marker := ""
		if month.Month == sched.PaybackMonth {
			marker = " <- payback"
		}
		if month.Month == sched.DiscountedPaybackMonth {
			marker += " <- discounted payback"
		}
		if _, err := p.Fprintf(w, "%5d | %15.6f | %s | %s | %s%s\n",
			month.Month, month.DiscountFactor,
			format.Pesos(month.PresentValue),
			format.Pesos(month.CumulativePresentValue),
			format.Pesos(month.Position),
			marker,
		); err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat writes the monthly schedule in comma-separated value format.
func CsvFormat(w io.Writer, sched projection.Schedule) error {
	writer := csv.NewWriter(w)
	header := []string{"month", "net cash flow", "discount factor", "present value", "cumulative net cash flow", "cumulative present value", "position"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, month := range sched.Months {
		record := []string{
			strconv.Itoa(month.Month),
			formatFloat(month.NetCashFlow, 2),
			formatFloat(month.DiscountFactor, 8),
			formatFloat(month.PresentValue, 2),
			formatFloat(month.CumulativeNetCashFlow, 2),
			formatFloat(month.CumulativePresentValue, 2),
			formatFloat(month.Position, 2),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(value float64, places int) string {
	return strconv.FormatFloat(value, 'f', places, 64)
}
