package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// ParseMoney builds Money from the decimal string and ISO code used by the
// commerce platform.
func ParseMoney(amount, code string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("amount[%s] is not valid: %w", amount, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Money{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}
	return Money{Amount: d, Currency: unit}, nil
}

// Scale is the number of minor-unit digits of the currency: 2 for USD, 0 for
// JPY, 3 for KWD. Money without a currency uses 2.
func (m Money) Scale() int32 {
	if m.Currency == (currency.Unit{}) {
		return 2
	}
	scale, _ := currency.Standard.Rounding(m.Currency)
	return int32(scale)
}

// MinorUnits converts to the currency's minor unit, e.g. 22.50 USD -> 2250
// and 1200 JPY -> 1200.
func (m Money) MinorUnits() int64 {
	return m.Amount.Shift(m.Scale()).Round(0).IntPart()
}

// String renders the amount at the currency's scale followed by the ISO code.
func (m Money) String() string {
	return m.Amount.StringFixed(m.Scale()) + " " + m.Currency.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"amount":%q,"currencyCode":%q}`, m.Amount.StringFixed(m.Scale()), m.Currency.String())), nil
}
