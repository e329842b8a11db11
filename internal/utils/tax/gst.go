package tax

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Amount returns the GST charged on a taxable amount at a flat percentage
// rate, rounded to two places.
func Amount(taxable, ratePercent decimal.Decimal) decimal.Decimal {
	return taxable.Mul(ratePercent).Div(hundred).Round(2)
}

// Gross returns the taxable amount with GST added on top.
func Gross(taxable, ratePercent decimal.Decimal) decimal.Decimal {
	return taxable.Add(Amount(taxable, ratePercent))
}
