package service

import (
	"context"

	"coinwagon/models"
)

type PriceService struct {
	resolver Resolver
}

func NewPriceService(resolver Resolver) *PriceService {
	return &PriceService{resolver: resolver}
}

// CurrentPrice resolves the spot price of one asset unit in fiat.
func (s *PriceService) CurrentPrice(ctx context.Context, asset, fiat string) (models.ResolvedValue, error) {
	return s.resolver.Resolve(ctx, models.NewPriceQuery(asset, fiat))
}
