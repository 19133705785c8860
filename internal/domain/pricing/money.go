package pricing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.AmericanEnglish)

// Round2 rounds to 2 decimal places, half away from zero on the cent
// boundary. It is applied once at each aggregation boundary (per line, per
// quote) rather than at every intermediate step, so floating-point drift
// does not compound across many small sizes.
//
// Round2(Round2(x)) == Round2(x).
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FormatMoney renders a display-only currency string with digit grouping,
// e.g. "$1,234.50" or "-$3.40". Never use the result in comparisons or
// stored values.
func FormatMoney(v float64) string {
	v = Round2(v)
	if v < 0 {
		return moneyPrinter.Sprintf("-$%.2f", -v)
	}
	return moneyPrinter.Sprintf("$%.2f", v)
}
