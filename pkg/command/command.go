package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"coinwagon/models"
	"coinwagon/pkg/service"
	"coinwagon/pkg/utils"
	"coinwagon/pkg/walletfile"
)

// Command names accepted at the dispatch boundary.
const (
	CurrentPrice   = "current-price"
	AddressBalance = "address-balance"
	WalletBalance  = "wallet-balance"
)

const verboseFlag = "--verbose"

// Fiat amounts keep at least two fractional places; asset amounts trim to
// their natural scale.
const (
	fiatMinPlaces  = 2
	assetMinPlaces = 0
)

// UsageError marks bad caller input (unknown command, wrong argument
// count) as opposed to runtime failures, so the host can branch on "my
// input was wrong" vs "the request could not be completed".
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Runner adapts the string-based command convention onto the typed service
// operations.
type Runner struct {
	services *service.Service
}

func NewRunner(services *service.Service) *Runner {
	return &Runner{services: services}
}

// Run dispatches one command and returns its formatted output. The
// --verbose flag raises the log level for this call only; it never changes
// the returned string.
func (r *Runner) Run(ctx context.Context, command string, args []string) (string, error) {
	args, verbose := stripVerbose(args)
	if verbose {
		prev := logrus.GetLevel()
		logrus.SetLevel(logrus.DebugLevel)
		defer logrus.SetLevel(prev)
	}

	switch command {
	case CurrentPrice:
		if len(args) != 2 {
			return "", &UsageError{Msg: fmt.Sprintf("%s expects <asset> <fiat>, got %d arguments", CurrentPrice, len(args))}
		}
		return r.currentPrice(ctx, args[0], args[1])
	case AddressBalance:
		if len(args) != 2 {
			return "", &UsageError{Msg: fmt.Sprintf("%s expects <asset> <address>, got %d arguments", AddressBalance, len(args))}
		}
		return r.addressBalance(ctx, args[0], args[1])
	case WalletBalance:
		if len(args) != 2 {
			return "", &UsageError{Msg: fmt.Sprintf("%s expects <wallet-file> <fiat>, got %d arguments", WalletBalance, len(args))}
		}
		return r.walletBalance(ctx, args[0], args[1])
	default:
		return "", &UsageError{Msg: fmt.Sprintf("unknown command %q", command)}
	}
}

func (r *Runner) currentPrice(ctx context.Context, asset, fiat string) (string, error) {
	price, err := r.services.CurrentPrice(ctx, asset, fiat)
	if err != nil {
		return "", errors.Wrapf(err, "price %s/%s", asset, fiat)
	}
	return utils.FormatAmount(price.Amount, fiatMinPlaces) + " " + strings.ToUpper(price.Unit), nil
}

func (r *Runner) addressBalance(ctx context.Context, asset, addr string) (string, error) {
	balance, err := r.services.AddressBalance(ctx, asset, addr)
	if err != nil {
		return "", errors.Wrapf(err, "balance of %s", addr)
	}
	return utils.FormatAmount(balance.Amount, assetMinPlaces) + " " + strings.ToUpper(balance.Unit), nil
}

func (r *Runner) walletBalance(ctx context.Context, path, fiat string) (string, error) {
	entries, err := walletfile.Load(path)
	if err != nil {
		return "", err
	}

	report := r.services.WalletBalance(ctx, entries, fiat)
	return renderReport(report), nil
}

// renderReport lays out one line per item, failure lines, and the total.
func renderReport(report *models.WalletReport) string {
	upperFiat := strings.ToUpper(report.Fiat)

	var b strings.Builder
	for _, item := range report.LineItems {
		upperAsset := strings.ToUpper(item.Asset)
		if item.ConvertedValue != nil {
			fmt.Fprintf(&b, "%s: %s %s = %s %s\n",
				upperAsset,
				utils.FormatAmount(item.Balance.Amount, assetMinPlaces), upperAsset,
				utils.FormatAmount(*item.ConvertedValue, fiatMinPlaces), upperFiat)
		} else {
			fmt.Fprintf(&b, "%s: %s %s = unavailable\n",
				upperAsset,
				utils.FormatAmount(item.Balance.Amount, assetMinPlaces), upperAsset)
		}
	}
	for _, f := range report.Failures {
		fmt.Fprintf(&b, "Failed %s (%s,%s): %v\n", f.Stage, f.Entry.Asset, f.Entry.Address, f.Err)
	}
	fmt.Fprintf(&b, "Total: %s %s", utils.FormatAmount(report.Total, fiatMinPlaces), upperFiat)
	return b.String()
}

// stripVerbose filters the --verbose flag out of args wherever it appears.
func stripVerbose(args []string) ([]string, bool) {
	out := make([]string, 0, len(args))
	verbose := false
	for _, a := range args {
		if a == verboseFlag {
			verbose = true
			continue
		}
		out = append(out, a)
	}
	return out, verbose
}
