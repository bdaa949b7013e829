package domain

import "github.com/shopspring/decimal"

// minorUnitExponents lists currencies whose minor unit is not 1/100.
var minorUnitExponents = map[string]int32{
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"BHD": 3,
	"KWD": 3,
	"TND": 3,
}

// MinorUnitExponent returns the number of decimal places of currency.
func MinorUnitExponent(currency string) int32 {
	if exp, ok := minorUnitExponents[currency]; ok {
		return exp
	}
	return 2
}

// FormatMinor renders an amount in minor units as a decimal string, e.g. 1050 USD -> "10.50".
func FormatMinor(amount int64, currency string) string {
	exp := MinorUnitExponent(currency)
	return decimal.New(amount, -exp).StringFixed(exp)
}
