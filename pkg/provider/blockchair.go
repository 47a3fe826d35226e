package provider

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"coinwagon/models"
)

const blockchairName = "blockchair"

// errNoAddressData means the dashboard answered but carries no entry for
// the requested address.
var errNoAddressData = errors.New("no data for address")

// Blockchair resolves balances for any chain it indexes; the canonical
// asset id doubles as the chain segment of the dashboard URL.
type Blockchair struct {
	client *resty.Client
}

func NewBlockchair(baseURL string, timeout time.Duration) *Blockchair {
	return &Blockchair{client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout)}
}

func (b *Blockchair) Name() string { return blockchairName }

func (b *Blockchair) Supports(q models.Query) bool {
	_, ok := q.(models.BalanceQuery)
	return ok
}

func (b *Blockchair) Fetch(ctx context.Context, q models.Query) (models.ResolvedValue, error) {
	bq, ok := q.(models.BalanceQuery)
	if !ok {
		return models.ResolvedValue{}, failure(blockchairName, models.CauseUnsupported, errors.Errorf("cannot serve %s queries", q.Kind()))
	}

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParams(map[string]string{"chain": bq.Asset, "address": bq.Address}).
		Get("/{chain}/dashboards/address/{address}")
	if err != nil {
		return models.ResolvedValue{}, failure(blockchairName, models.CauseTransient, err)
	}
	if resp.IsError() {
		return models.ResolvedValue{}, statusFailure(blockchairName, resp.StatusCode())
	}

	raw, err := extractBalance(resp.Body(), bq.Address)
	if errors.Is(err, errNoAddressData) {
		return models.ResolvedValue{}, failure(blockchairName, models.CauseNotFound, err)
	}
	if err != nil {
		logrus.WithField("provider", blockchairName).Debugf("unparseable response body: %s", resp.Body())
		return models.ResolvedValue{}, failure(blockchairName, models.CauseMalformed, err)
	}

	units, err := decimal.NewFromString(raw.String())
	if err != nil {
		return models.ResolvedValue{}, failure(blockchairName, models.CauseMalformed, errors.Wrap(err, "parse balance"))
	}

	return models.ResolvedValue{Amount: units.Shift(-decimalsFor(bq.Asset)), Unit: bq.Asset}, nil
}

// extractBalance probes the dashboard shapes Blockchair is known to return:
// data.<address>.address.balance, then data.<address>.balance, then a
// top-level balance field.
func extractBalance(body []byte, address string) (json.Number, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return "", errors.Wrap(err, "decode response")
	}

	if rawData, ok := top["data"]; ok {
		var data map[string]json.RawMessage
		if err := json.Unmarshal(rawData, &data); err != nil {
			return "", errors.Wrap(err, "decode data object")
		}
		addrData, ok := data[address]
		if !ok {
			return "", errors.Wrap(errNoAddressData, address)
		}

		var inner map[string]json.RawMessage
		if err := json.Unmarshal(addrData, &inner); err != nil {
			return "", errors.Wrap(err, "decode address object")
		}
		if rawAddr, ok := inner["address"]; ok {
			var addrObj struct {
				Balance *json.Number `json:"balance"`
			}
			if err := json.Unmarshal(rawAddr, &addrObj); err == nil && addrObj.Balance != nil {
				return *addrObj.Balance, nil
			}
		}
		if rawBal, ok := inner["balance"]; ok {
			var n json.Number
			if err := json.Unmarshal(rawBal, &n); err == nil {
				return n, nil
			}
		}
		return "", errors.New("no balance in address data")
	}

	if rawBal, ok := top["balance"]; ok {
		var n json.Number
		if err := json.Unmarshal(rawBal, &n); err == nil {
			return n, nil
		}
	}
	return "", errors.New("no balance in response")
}
