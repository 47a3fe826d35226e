package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinwagon/models"
)

// stubResolver routes balance queries by address and price queries by
// asset, with optional per-address latency to exercise the fan-out.
type stubResolver struct {
	balances map[string]string // address -> asset amount
	prices   map[string]string // asset -> fiat price
	delays   map[string]time.Duration
}

func (s *stubResolver) Resolve(_ context.Context, q models.Query) (models.ResolvedValue, error) {
	switch query := q.(type) {
	case models.BalanceQuery:
		if d, ok := s.delays[query.Address]; ok {
			time.Sleep(d)
		}
		amount, ok := s.balances[query.Address]
		if !ok {
			return models.ResolvedValue{}, &models.AggregateFailure{Attempts: []*models.ProviderFailure{
				{Provider: "stub", Cause: models.CauseNotFound},
			}}
		}
		return models.ResolvedValue{Amount: decimal.RequireFromString(amount), Unit: query.Asset}, nil
	case models.PriceQuery:
		price, ok := s.prices[query.Asset]
		if !ok {
			return models.ResolvedValue{}, &models.AggregateFailure{Attempts: []*models.ProviderFailure{
				{Provider: "stub", Cause: models.CauseTransient},
			}}
		}
		return models.ResolvedValue{Amount: decimal.RequireFromString(price), Unit: query.Fiat}, nil
	}
	return models.ResolvedValue{}, &models.InvalidQueryError{Reason: "unknown query kind"}
}

func TestWalletBalancePartialFailure(t *testing.T) {
	svc := NewWalletService(&stubResolver{
		balances: map[string]string{"validAddr1": "1.5"},
		prices:   map[string]string{"bitcoin": "67234.50"},
	})

	entries := []models.WalletEntry{
		{Asset: "bitcoin", Address: "validAddr1"},
		{Asset: "bitcoin", Address: "unknownAddr"},
	}
	report := svc.WalletBalance(context.Background(), entries, "usd")

	require.Len(t, report.LineItems, 1)
	assert.Equal(t, "validAddr1", report.LineItems[0].Address)

	require.Len(t, report.Failures, 1)
	assert.Equal(t, "unknownAddr", report.Failures[0].Entry.Address)
	assert.Equal(t, models.StageBalance, report.Failures[0].Stage)

	assert.True(t, report.Total.Equal(decimal.RequireFromString("100851.75")),
		"total reflects only the successful contribution, got %s", report.Total)
}

func TestWalletBalanceDecimalAccumulation(t *testing.T) {
	svc := NewWalletService(&stubResolver{
		balances: map[string]string{"a": "0.1", "b": "0.2", "c": "0.00000001"},
		prices:   map[string]string{"bitcoin": "2"},
	})

	entries := []models.WalletEntry{
		{Asset: "bitcoin", Address: "a"},
		{Asset: "bitcoin", Address: "b"},
		{Asset: "bitcoin", Address: "c"},
	}
	report := svc.WalletBalance(context.Background(), entries, "usd")

	require.Empty(t, report.Failures)
	assert.True(t, report.Total.Equal(decimal.RequireFromString("0.60000002")),
		"no binary-float drift allowed, got %s", report.Total)
}

func TestWalletBalancePreservesInputOrder(t *testing.T) {
	svc := NewWalletService(&stubResolver{
		balances: map[string]string{"slow": "1", "mid": "2", "fast": "3"},
		prices:   map[string]string{"bitcoin": "10"},
		delays: map[string]time.Duration{
			"slow": 60 * time.Millisecond,
			"mid":  30 * time.Millisecond,
		},
	})

	entries := []models.WalletEntry{
		{Asset: "bitcoin", Address: "slow"},
		{Asset: "bitcoin", Address: "mid"},
		{Asset: "bitcoin", Address: "fast"},
	}
	report := svc.WalletBalance(context.Background(), entries, "usd")

	require.Len(t, report.LineItems, 3)
	assert.Equal(t, "slow", report.LineItems[0].Address)
	assert.Equal(t, "mid", report.LineItems[1].Address)
	assert.Equal(t, "fast", report.LineItems[2].Address)
}

func TestWalletBalancePriceFailureKeepsBalance(t *testing.T) {
	svc := NewWalletService(&stubResolver{
		balances: map[string]string{"addrA": "1.5"},
		prices:   map[string]string{},
	})

	entries := []models.WalletEntry{{Asset: "bitcoin", Address: "addrA"}}
	report := svc.WalletBalance(context.Background(), entries, "usd")

	require.Len(t, report.LineItems, 1)
	item := report.LineItems[0]
	assert.True(t, item.Balance.Amount.Equal(decimal.RequireFromString("1.5")))
	assert.Nil(t, item.ConvertedValue, "conversion is unavailable without a price")

	require.Len(t, report.Failures, 1)
	assert.Equal(t, models.StagePrice, report.Failures[0].Stage)
	assert.True(t, report.Total.IsZero())
}

func TestWalletBalanceEmptyEntries(t *testing.T) {
	svc := NewWalletService(&stubResolver{})

	report := svc.WalletBalance(context.Background(), nil, "usd")

	assert.Empty(t, report.LineItems)
	assert.Empty(t, report.Failures)
	assert.True(t, report.Total.IsZero())
	assert.Equal(t, "usd", report.Fiat)
}
