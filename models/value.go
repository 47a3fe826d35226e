package models

import "github.com/shopspring/decimal"

// ResolvedValue is the normalized outcome of a resolution: the price of one
// asset unit in fiat, or an address balance in asset units. Amounts are
// decimal so balance sums never pick up binary-float drift.
type ResolvedValue struct {
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit"`
}
