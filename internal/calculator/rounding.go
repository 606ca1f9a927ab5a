package calculator

import "github.com/shopspring/decimal"

const (
	moneyPlaces = 2
	ratioPlaces = 4
)

var hundred = decimal.NewFromInt(100)

// roundMoney rounds half away from zero, matching HALF_UP on both signs.
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// percentOf returns part/base as a percentage. The ratio is rounded to four
// places before scaling so results agree with the stored numeric(10,2)
// values.
func percentOf(part, base decimal.Decimal) decimal.Decimal {
	return part.DivRound(base, ratioPlaces).Mul(hundred).Round(moneyPlaces)
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
