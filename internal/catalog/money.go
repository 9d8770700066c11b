package catalog

import "github.com/shopspring/decimal"

const Currency = "₹"

// FormatPrice renders an amount the way the summary shows it: ₹150.00
func FormatPrice(d decimal.Decimal) string {
	return Currency + d.StringFixed(2)
}

// FormatAddOn renders a topping surcharge: +₹80.00
func FormatAddOn(d decimal.Decimal) string {
	return "+" + FormatPrice(d)
}
