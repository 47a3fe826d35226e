package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinwagon/models"
	"coinwagon/pkg/service"
)

type stubPrices struct{}

func (stubPrices) CurrentPrice(_ context.Context, asset, fiat string) (models.ResolvedValue, error) {
	if asset == "" || models.CanonicalAsset(asset) == "nonsensecoin" {
		return models.ResolvedValue{}, &models.InvalidQueryError{Reason: "bad asset"}
	}
	return models.ResolvedValue{Amount: decimal.RequireFromString("67234.50"), Unit: models.CanonicalFiat(fiat)}, nil
}

type stubBalances struct{}

func (stubBalances) AddressBalance(_ context.Context, asset, addr string) (models.ResolvedValue, error) {
	return models.ResolvedValue{}, &models.AggregateFailure{Attempts: []*models.ProviderFailure{
		{Provider: "stub", Cause: models.CauseTransient},
	}}
}

type stubWallet struct{}

func (stubWallet) WalletBalance(_ context.Context, entries []models.WalletEntry, fiat string) *models.WalletReport {
	return &models.WalletReport{Fiat: models.CanonicalFiat(fiat), Total: decimal.Zero}
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{Prices: stubPrices{}, Balances: stubBalances{}, Wallet: stubWallet{}})
	return h.InitRoutes()
}

func TestCurrentPriceEndpoint(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/price/bitcoin/usd", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"67234.5`)
	assert.Contains(t, w.Body.String(), `"unit":"usd"`)
}

func TestCurrentPriceEndpointInvalidQuery(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/price/nonsensecoin/usd", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddressBalanceEndpointUpstreamFailure(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/balance/bitcoin/addrA", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestWalletBalanceEndpointRejectsBadBody(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/wallet-balance", strings.NewReader(`{"fiat":"usd"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWalletBalanceEndpoint(t *testing.T) {
	router := testRouter()

	body := `{"entries":[{"asset":"bitcoin","address":"addrA"}],"fiat":"usd"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/wallet-balance", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fiat":"usd"`)
}
