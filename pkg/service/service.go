package service

import (
	"context"

	"coinwagon/models"
	"coinwagon/pkg/engine"
)

// Resolver is the slice of the engine the services consume.
type Resolver interface {
	Resolve(ctx context.Context, q models.Query) (models.ResolvedValue, error)
}

type Prices interface {
	CurrentPrice(ctx context.Context, asset, fiat string) (models.ResolvedValue, error)
}

type Balances interface {
	AddressBalance(ctx context.Context, asset, addr string) (models.ResolvedValue, error)
}

type Wallet interface {
	WalletBalance(ctx context.Context, entries []models.WalletEntry, fiat string) *models.WalletReport
}

type Service struct {
	Prices
	Balances
	Wallet
}

func NewService(eng *engine.Engine) *Service {
	return &Service{
		Prices:   NewPriceService(eng),
		Balances: NewBalanceService(eng),
		Wallet:   NewWalletService(eng),
	}
}
