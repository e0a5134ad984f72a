// Package format renders amounts the way they are published on the site:
// Chilean pesos with dot thousands separators and comma decimals.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale is the locale every amount is rendered in.
var Locale = language.MustParse("es-CL")

var printer = message.NewPrinter(Locale)

// Pesos returns a whole-peso currency string with thousands separators
// (e.g., "-$1.234.567").
func Pesos(amount float64) string {
	rounded := math.Round(amount)
	formatted := wholeNumber(math.Abs(rounded))
	if rounded < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Millions returns an amount already expressed in millions, e.g. "1.688 MM".
func Millions(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + wholeNumber(math.Abs(amount)) + " MM"
}

// Percent returns a percentage with two decimals and a decimal comma
// (e.g., "110,62%").
func Percent(value float64) string {
	return Decimal(value, 2) + "%"
}

// Decimal renders value with the given number of decimals, a decimal comma
// and dot thousands separators.
func Decimal(value float64, places int) string {
	sign := ""
	if value < 0 {
		sign = "-"
	}
	return sign + printer.Sprint(number.Decimal(math.Abs(value), number.Scale(places)))
}

func wholeNumber(value float64) string {
	return printer.Sprint(number.Decimal(value, number.Scale(0)))
}
