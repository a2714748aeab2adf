package valueobjects

import "fmt"

// DefaultCurrency is used when no currency is supplied.
const DefaultCurrency = "BRL"

// Money holds a price as an integer amount of cents, avoiding floating
// point drift in stored values.
type Money struct {
	amountInCents int64
	currency      string
}

func NewMoney(amountInCents int64, currency string) (Money, error) {
	if amountInCents < 0 {
		return Money{}, fmt.Errorf("amount cannot be negative: %d", amountInCents)
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{amountInCents: amountInCents, currency: currency}, nil
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	return m.currency
}

// Amount returns the value in currency units for display and for
// provider APIs that expect decimal prices.
func (m Money) Amount() float64 {
	return float64(m.amountInCents) / 100
}

func (m Money) IsPositive() bool {
	return m.amountInCents > 0
}

func (m Money) Equals(other Money) bool {
	return m.amountInCents == other.amountInCents && m.currency == other.currency
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.Amount(), m.currency)
}
