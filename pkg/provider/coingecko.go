package provider

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"coinwagon/models"
)

const coinGeckoName = "coingecko"

// CoinGecko resolves spot prices via the /simple/price endpoint. The demo
// API key is optional and sent as a header when configured.
type CoinGecko struct {
	client *resty.Client
	apiKey string
}

func NewCoinGecko(baseURL, apiKey string, timeout time.Duration) *CoinGecko {
	return &CoinGecko{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
		apiKey: apiKey,
	}
}

func (c *CoinGecko) Name() string { return coinGeckoName }

func (c *CoinGecko) Supports(q models.Query) bool { return q.Kind() == models.OpPrice }

func (c *CoinGecko) Fetch(ctx context.Context, q models.Query) (models.ResolvedValue, error) {
	pq, ok := q.(models.PriceQuery)
	if !ok {
		return models.ResolvedValue{}, failure(coinGeckoName, models.CauseUnsupported, errors.Errorf("cannot serve %s queries", q.Kind()))
	}

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"ids":           pq.Asset,
			"vs_currencies": pq.Fiat,
		}).
		// json.Number hands the literal to decimal parsing untouched; the
		// decimal keeps the exponent and rendering pads fiat back to two
		// places.
		SetResult(map[string]map[string]json.Number{})
	if c.apiKey != "" {
		req.SetHeader("x-cg-demo-api-key", c.apiKey)
	}

	resp, err := req.Get("/api/v3/simple/price")
	if err != nil {
		return models.ResolvedValue{}, failure(coinGeckoName, models.CauseTransient, err)
	}
	if resp.IsError() {
		return models.ResolvedValue{}, statusFailure(coinGeckoName, resp.StatusCode())
	}

	data := *resp.Result().(*map[string]map[string]json.Number)
	num, ok := data[pq.Asset][pq.Fiat]
	if !ok {
		return models.ResolvedValue{}, failure(coinGeckoName, models.CauseNotFound, errors.Errorf("no price for %s/%s in response", pq.Asset, pq.Fiat))
	}

	amount, err := decimal.NewFromString(num.String())
	if err != nil {
		return models.ResolvedValue{}, failure(coinGeckoName, models.CauseMalformed, errors.Wrap(err, "parse price"))
	}

	return models.ResolvedValue{Amount: amount, Unit: pq.Fiat}, nil
}
