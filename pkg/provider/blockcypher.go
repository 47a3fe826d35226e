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

const blockCypherName = "blockcypher"

// BlockCypher resolves confirmed bitcoin balances. It only speaks the BTC
// main chain, so it declares itself unsupported for everything else and the
// chain falls straight through to Blockchair.
type BlockCypher struct {
	client *resty.Client
}

func NewBlockCypher(baseURL string, timeout time.Duration) *BlockCypher {
	return &BlockCypher{client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout)}
}

func (b *BlockCypher) Name() string { return blockCypherName }

func (b *BlockCypher) Supports(q models.Query) bool {
	bq, ok := q.(models.BalanceQuery)
	return ok && bq.Asset == "bitcoin"
}

type blockCypherBalance struct {
	Balance json.Number `json:"balance"`
}

func (b *BlockCypher) Fetch(ctx context.Context, q models.Query) (models.ResolvedValue, error) {
	bq, ok := q.(models.BalanceQuery)
	if !ok || bq.Asset != "bitcoin" {
		return models.ResolvedValue{}, failure(blockCypherName, models.CauseUnsupported, errors.New("only bitcoin balances"))
	}

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(blockCypherBalance{}).
		SetPathParam("address", bq.Address).
		Get("/v1/btc/main/addrs/{address}/balance")
	if err != nil {
		return models.ResolvedValue{}, failure(blockCypherName, models.CauseTransient, err)
	}
	if resp.IsError() {
		return models.ResolvedValue{}, statusFailure(blockCypherName, resp.StatusCode())
	}

	body := resp.Result().(*blockCypherBalance)
	if body.Balance == "" {
		return models.ResolvedValue{}, failure(blockCypherName, models.CauseMalformed, errors.New("no balance field in response"))
	}

	sats, err := decimal.NewFromString(body.Balance.String())
	if err != nil {
		return models.ResolvedValue{}, failure(blockCypherName, models.CauseMalformed, errors.Wrap(err, "parse balance"))
	}

	return models.ResolvedValue{Amount: sats.Shift(-decimalsFor(bq.Asset)), Unit: bq.Asset}, nil
}
