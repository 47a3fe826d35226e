package models

import "strings"

// assetIDs maps common ticker symbols to the canonical ids the upstream
// APIs key on (CoinGecko ids double as Blockchair chain names).
var assetIDs = map[string]string{
	"btc":  "bitcoin",
	"ltc":  "litecoin",
	"doge": "dogecoin",
	"eth":  "ethereum",
	"usdt": "tether",
}

// CanonicalAsset lowercases a symbol and resolves ticker aliases so that
// equivalent spellings share one cache key.
func CanonicalAsset(symbol string) string {
	s := strings.ToLower(strings.TrimSpace(symbol))
	if id, ok := assetIDs[s]; ok {
		return id
	}
	return s
}

// CanonicalFiat lowercases a fiat symbol.
func CanonicalFiat(symbol string) string {
	return strings.ToLower(strings.TrimSpace(symbol))
}

type OpKind string

const (
	OpPrice   OpKind = "price"
	OpBalance OpKind = "balance"
)

// Query identifies what is being resolved. Implementations carry canonical
// fields: two queries are equal iff their cache keys are equal.
type Query interface {
	Kind() OpKind
	CacheKey() string
}

// PriceQuery asks for the current spot price of one asset unit in fiat.
type PriceQuery struct {
	Asset string `json:"asset"`
	Fiat  string `json:"fiat"`
}

func NewPriceQuery(asset, fiat string) PriceQuery {
	return PriceQuery{Asset: CanonicalAsset(asset), Fiat: CanonicalFiat(fiat)}
}

func (q PriceQuery) Kind() OpKind { return OpPrice }

func (q PriceQuery) CacheKey() string { return "price:" + q.Asset + ":" + q.Fiat }

// BalanceQuery asks for the confirmed balance of an address on a chain.
type BalanceQuery struct {
	Asset   string `json:"asset"`
	Address string `json:"address"`
}

func NewBalanceQuery(asset, address string) BalanceQuery {
	return BalanceQuery{Asset: CanonicalAsset(asset), Address: strings.TrimSpace(address)}
}

func (q BalanceQuery) Kind() OpKind { return OpBalance }

func (q BalanceQuery) CacheKey() string { return "balance:" + q.Asset + ":" + q.Address }
