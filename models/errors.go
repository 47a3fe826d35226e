package models

import (
	"fmt"
	"strings"
)

// FailureCause classifies one provider failure so the fallback chain can
// decide what to do with it.
type FailureCause string

const (
	// CauseTransient covers network errors, timeouts, 5xx and rate limits.
	CauseTransient FailureCause = "transient"
	// CauseNotFound means the address or asset is unknown to this provider.
	CauseNotFound FailureCause = "not_found"
	// CauseMalformed means the response shape was not what we expect.
	CauseMalformed FailureCause = "malformed"
	// CauseUnsupported means the provider cannot serve this query type at all.
	CauseUnsupported FailureCause = "unsupported"
)

// ProviderFailure is the typed outcome of one failed provider call.
type ProviderFailure struct {
	Provider string
	Cause    FailureCause
	Err      error
}

func (f *ProviderFailure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Provider, f.Cause, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Provider, f.Cause)
}

func (f *ProviderFailure) Unwrap() error { return f.Err }

// AggregateFailure is returned when every provider in a chain failed.
// Attempts preserves the order in which providers were tried.
type AggregateFailure struct {
	Attempts []*ProviderFailure
}

func (f *AggregateFailure) Error() string {
	if len(f.Attempts) == 0 {
		return "no provider can serve this query"
	}
	parts := make([]string, 0, len(f.Attempts))
	for _, a := range f.Attempts {
		parts = append(parts, a.Error())
	}
	return "all providers failed: " + strings.Join(parts, "; ")
}

// InvalidQueryError reports malformed input detected before any network
// call. Resolution with an invalid query has zero side effects.
type InvalidQueryError struct {
	Reason string
}

func (e *InvalidQueryError) Error() string { return "invalid query: " + e.Reason }

// WalletFileError reports an unreadable or malformed wallet file. It is
// fatal to the whole wallet-balance call, unlike per-entry failures.
type WalletFileError struct {
	Path string
	Err  error
}

func (e *WalletFileError) Error() string { return fmt.Sprintf("wallet file %s: %v", e.Path, e.Err) }

func (e *WalletFileError) Unwrap() error { return e.Err }
