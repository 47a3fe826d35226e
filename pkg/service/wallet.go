package service

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"coinwagon/models"
)

// maxFanOut bounds how many wallet entries are resolved at once so a large
// wallet file does not hammer the upstream providers.
const maxFanOut = 4

type WalletService struct {
	resolver Resolver
}

func NewWalletService(resolver Resolver) *WalletService {
	return &WalletService{resolver: resolver}
}

type entryResult struct {
	item     *models.LineItem
	failures []models.EntryFailure
}

// WalletBalance resolves every entry's balance and its fiat conversion,
// accumulating a decimal total. Entries are resolved concurrently but the
// report keeps input order. One entry failing never aborts the batch: the
// report always comes back with whatever succeeded plus an explicit failure
// list.
func (s *WalletService) WalletBalance(ctx context.Context, entries []models.WalletEntry, fiat string) *models.WalletReport {
	results := make([]entryResult, len(entries))
	sem := make(chan struct{}, maxFanOut)
	var wg sync.WaitGroup

	for i, entry := range entries {
		wg.Add(1)
		go func(i int, entry models.WalletEntry) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = s.resolveEntry(ctx, entry, fiat)
		}(i, entry)
	}
	wg.Wait()

	report := &models.WalletReport{Fiat: models.CanonicalFiat(fiat), Total: decimal.Zero}
	for _, r := range results {
		if r.item != nil {
			report.LineItems = append(report.LineItems, *r.item)
			if r.item.ConvertedValue != nil {
				report.Total = report.Total.Add(*r.item.ConvertedValue)
			}
		}
		report.Failures = append(report.Failures, r.failures...)
	}
	return report
}

func (s *WalletService) resolveEntry(ctx context.Context, entry models.WalletEntry, fiat string) entryResult {
	balanceQuery := models.NewBalanceQuery(entry.Asset, entry.Address)

	balance, err := s.resolver.Resolve(ctx, balanceQuery)
	if err != nil {
		logrus.WithFields(logrus.Fields{"asset": entry.Asset, "address": entry.Address}).
			Debugf("balance resolution failed: %v", err)
		return entryResult{failures: []models.EntryFailure{{Entry: entry, Stage: models.StageBalance, Err: err}}}
	}

	item := &models.LineItem{
		Asset:   balanceQuery.Asset,
		Address: balanceQuery.Address,
		Balance: balance,
	}

	price, err := s.resolver.Resolve(ctx, models.NewPriceQuery(entry.Asset, fiat))
	if err != nil {
		// Balance stands on its own; only the conversion is unavailable.
		logrus.WithFields(logrus.Fields{"asset": entry.Asset, "fiat": fiat}).
			Debugf("price resolution failed: %v", err)
		return entryResult{
			item:     item,
			failures: []models.EntryFailure{{Entry: entry, Stage: models.StagePrice, Err: err}},
		}
	}

	converted := balance.Amount.Mul(price.Amount)
	item.Price = &price
	item.ConvertedValue = &converted
	return entryResult{item: item}
}
