package services

import "github.com/shopspring/decimal"

var memberDiscount = decimal.RequireFromString("0.9")

// MemberPrice returns the price shown to members: the explicit member price
// when one is set, otherwise a flat 10% off the base price. A zero member
// price counts as unset. No rounding is applied beyond decimal precision.
func MemberPrice(basePrice decimal.Decimal, memberPrice *decimal.Decimal) decimal.Decimal {
	if memberPrice != nil && !memberPrice.IsZero() {
		return *memberPrice
	}
	return basePrice.Mul(memberDiscount)
}
