package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"coinwagon/internal/address"
	"coinwagon/models"
	"coinwagon/pkg/cache"
	"coinwagon/pkg/provider"
)

// Engine resolves queries cache-first and, on a miss, through the ordered
// provider chain for the query's operation kind. The cache instance is
// owned here and shared by every caller holding the engine.
type Engine struct {
	cache  *cache.Cache
	chains map[models.OpKind]*provider.Chain
	flight *keyLock
}

func New(c *cache.Cache, prices, balances *provider.Chain) *Engine {
	return &Engine{
		cache: c,
		chains: map[models.OpKind]*provider.Chain{
			models.OpPrice:   prices,
			models.OpBalance: balances,
		},
		flight: newKeyLock(),
	}
}

// Resolve validates the query, consults the cache and falls back to the
// provider chain. Concurrent resolves of the same cold key are collapsed
// into one upstream fetch: losers of the race block on the key lock, then
// find the winner's value in the cache.
func (e *Engine) Resolve(ctx context.Context, q models.Query) (models.ResolvedValue, error) {
	if err := validate(q); err != nil {
		return models.ResolvedValue{}, err
	}

	key := q.CacheKey()
	if value, ok := e.cache.Get(key); ok {
		logrus.WithField("key", key).Debug("cache hit")
		return value, nil
	}
	logrus.WithField("key", key).Debug("cache miss")

	lock := e.flight.get(key)
	lock.Lock()
	defer lock.Unlock()

	if value, ok := e.cache.Get(key); ok {
		logrus.WithField("key", key).Debug("cache hit after in-flight fetch")
		return value, nil
	}

	value, err := e.chains[q.Kind()].Execute(ctx, q)
	if err != nil {
		return models.ResolvedValue{}, err
	}

	e.cache.Put(key, value)
	stats := e.cache.Stats()
	logrus.WithFields(logrus.Fields{"key": key, "entries": stats.Entries, "hits": stats.Hits, "misses": stats.Misses}).
		Debug("cached resolved value")
	return value, nil
}

// validate fails fast on malformed symbols and addresses, before any
// network call.
func validate(q models.Query) error {
	switch query := q.(type) {
	case models.PriceQuery:
		if !address.ValidSymbol(query.Asset) {
			return &models.InvalidQueryError{Reason: fmt.Sprintf("bad asset symbol %q", query.Asset)}
		}
		if !address.ValidSymbol(query.Fiat) {
			return &models.InvalidQueryError{Reason: fmt.Sprintf("bad fiat symbol %q", query.Fiat)}
		}
	case models.BalanceQuery:
		if !address.ValidSymbol(query.Asset) {
			return &models.InvalidQueryError{Reason: fmt.Sprintf("bad asset symbol %q", query.Asset)}
		}
		if err := address.ValidateAddress(query.Asset, query.Address); err != nil {
			return &models.InvalidQueryError{Reason: err.Error()}
		}
	default:
		return &models.InvalidQueryError{Reason: fmt.Sprintf("unknown query kind %s", q.Kind())}
	}
	return nil
}
