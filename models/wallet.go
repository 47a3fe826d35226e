package models

import "github.com/shopspring/decimal"

// WalletEntry is one asset/address pair parsed from a wallet file. Input
// order is preserved all the way into the report.
type WalletEntry struct {
	Asset   string `json:"asset"`
	Address string `json:"address"`
}

// Aggregation stage at which an entry failed.
const (
	StageBalance = "balance"
	StagePrice   = "price"
)

// LineItem is one successfully resolved wallet entry. Price and
// ConvertedValue are nil when price resolution failed for an otherwise
// successful balance.
type LineItem struct {
	Asset          string           `json:"asset"`
	Address        string           `json:"address"`
	Balance        ResolvedValue    `json:"balance"`
	Price          *ResolvedValue   `json:"price,omitempty"`
	ConvertedValue *decimal.Decimal `json:"converted_value,omitempty"`
}

// EntryFailure records why one wallet entry could not be fully resolved.
type EntryFailure struct {
	Entry WalletEntry `json:"entry"`
	Stage string      `json:"stage"`
	Err   error       `json:"-"`
}

// WalletReport is the result of one wallet aggregation. LineItems keeps the
// wallet file order; Total sums every available converted value. A report
// is always returned, partial failures are listed rather than aborting.
type WalletReport struct {
	LineItems []LineItem      `json:"line_items"`
	Total     decimal.Decimal `json:"total"`
	Fiat      string          `json:"fiat"`
	Failures  []EntryFailure  `json:"failures"`
}
