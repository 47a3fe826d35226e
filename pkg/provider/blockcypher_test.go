package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinwagon/models"
)

func TestBlockCypherFetchBalance(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"address":"addrA","balance":150000000,"final_balance":150000000}`))
	}))
	defer srv.Close()

	bc := NewBlockCypher(srv.URL, time.Second)
	got, err := bc.Fetch(context.Background(), models.NewBalanceQuery("bitcoin", "addrA"))
	require.NoError(t, err)

	assert.Equal(t, "/v1/btc/main/addrs/addrA/balance", gotPath)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("1.5")), "satoshis are scaled to BTC")
	assert.Equal(t, "bitcoin", got.Unit)
}

func TestBlockCypherUnknownAddress(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusNotFound, `{"error":"not found"}`))
	defer srv.Close()

	bc := NewBlockCypher(srv.URL, time.Second)
	_, err := bc.Fetch(context.Background(), models.NewBalanceQuery("bitcoin", "addrA"))

	var pf *models.ProviderFailure
	require.ErrorAs(t, err, &pf)
	assert.Equal(t, models.CauseNotFound, pf.Cause)
}

func TestBlockCypherMissingBalanceField(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK, `{"address":"addrA"}`))
	defer srv.Close()

	bc := NewBlockCypher(srv.URL, time.Second)
	_, err := bc.Fetch(context.Background(), models.NewBalanceQuery("bitcoin", "addrA"))

	var pf *models.ProviderFailure
	require.ErrorAs(t, err, &pf)
	assert.Equal(t, models.CauseMalformed, pf.Cause)
}

func TestBlockCypherOnlySupportsBitcoin(t *testing.T) {
	bc := NewBlockCypher("http://unused", time.Second)

	assert.True(t, bc.Supports(models.NewBalanceQuery("bitcoin", "addrA")))
	assert.True(t, bc.Supports(models.NewBalanceQuery("btc", "addrA")), "ticker alias canonicalizes to bitcoin")
	assert.False(t, bc.Supports(models.NewBalanceQuery("litecoin", "addrA")))
	assert.False(t, bc.Supports(models.NewPriceQuery("bitcoin", "usd")))
}
