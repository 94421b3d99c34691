package service

import (
	"context"
	"math/big"

	"github.com/SudheerKondamuri/dex-amm/internal/service/dto"
	"github.com/SudheerKondamuri/dex-amm/internal/service/validate"
)

// Quote validates the request and prices a swap against the pool's current
// reserves without side effects.
func (s *PoolService) Quote(_ context.Context, req dto.QuoteRequest) (*big.Int, error) {
	if err := validate.QuoteRequestValidate(req); err != nil {
		return nil, err
	}
	return s.pool.Quote(req.AssetIn, req.AmountIn)
}

// Price returns the fixed-point price of asset A denominated in asset B.
func (s *PoolService) Price(_ context.Context) (*big.Int, error) {
	return s.pool.GetPrice()
}

// Reserves returns a snapshot of the pool's funding state.
func (s *PoolService) Reserves(_ context.Context) (dto.ReservesResponse, error) {
	assetA, assetB := s.pool.Assets()
	reserveA, reserveB := s.pool.Reserves()
	return dto.ReservesResponse{
		AssetA:         assetA,
		AssetB:         assetB,
		ReserveA:       reserveA,
		ReserveB:       reserveB,
		TotalLiquidity: s.pool.TotalLiquidity(),
	}, nil
}
