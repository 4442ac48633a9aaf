package cart

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// FormatGBP renders an amount the way the shop displays prices, e.g. "£42.50".
// x/text separates symbol and amount with a space, which the shop never shows.
func FormatGBP(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	s := fmt.Sprintf("%v", currency.Symbol(currency.GBP.Amount(f)))
	return strings.Replace(s, " ", "", 1)
}
