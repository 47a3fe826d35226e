package service

import (
	"context"

	"coinwagon/models"
)

type BalanceService struct {
	resolver Resolver
}

func NewBalanceService(resolver Resolver) *BalanceService {
	return &BalanceService{resolver: resolver}
}

// AddressBalance resolves the confirmed balance of one address.
func (s *BalanceService) AddressBalance(ctx context.Context, asset, addr string) (models.ResolvedValue, error) {
	return s.resolver.Resolve(ctx, models.NewBalanceQuery(asset, addr))
}
