package provider

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"coinwagon/models"
)

// Provider executes a single upstream request for one query and returns a
// normalized value or a typed *models.ProviderFailure. Providers never
// retry internally; trying the next provider is the chain's job.
type Provider interface {
	Name() string
	// Supports reports whether this provider can serve the query at all.
	// Unsupported providers are skipped by the chain without being counted
	// as an attempt.
	Supports(q models.Query) bool
	Fetch(ctx context.Context, q models.Query) (models.ResolvedValue, error)
}

func failure(name string, cause models.FailureCause, err error) *models.ProviderFailure {
	return &models.ProviderFailure{Provider: name, Cause: cause, Err: err}
}

// statusFailure maps an HTTP error status onto a failure cause: rate limits
// and 5xx are transient, 404 means the provider does not know the subject,
// anything else is an unexpected response.
func statusFailure(name string, status int) *models.ProviderFailure {
	switch {
	case status == http.StatusTooManyRequests || status >= 500:
		return failure(name, models.CauseTransient, errors.Errorf("status %d", status))
	case status == http.StatusNotFound:
		return failure(name, models.CauseNotFound, errors.Errorf("status %d", status))
	default:
		return failure(name, models.CauseMalformed, errors.Errorf("unexpected status %d", status))
	}
}

// decimalsFor returns the scale of the base unit balances are reported in:
// wei for EVM chains, satoshis for bitcoin-family chains.
func decimalsFor(asset string) int32 {
	if asset == "ethereum" {
		return 18
	}
	return 8
}
