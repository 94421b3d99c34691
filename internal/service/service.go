package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/SudheerKondamuri/dex-amm/internal/service/dto"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// PoolState is the read-only view of the pool engine the query service
// needs. *pool.Pool satisfies it.
type PoolState interface {
	// Assets returns the pair's asset identifiers.
	Assets() (common.Address, common.Address)

	// Reserves returns copies of the current reserves.
	Reserves() (*big.Int, *big.Int)

	// TotalLiquidity returns a copy of the outstanding share total.
	TotalLiquidity() *big.Int

	// GetPrice returns the fixed-point price of asset A in asset B.
	GetPrice() (*big.Int, error)

	// Quote prices a swap against current reserves without side effects.
	Quote(assetIn common.Address, amountIn *big.Int) (*big.Int, error)
}

// Service represents the interface for the read-only query surface.
type Service interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (*big.Int, error)
	Price(ctx context.Context) (*big.Int, error)
	Reserves(ctx context.Context) (dto.ReservesResponse, error)
}

// PoolService implements Service over a pool engine.
type PoolService struct {
	pool PoolState
}

// NewPoolService creates a PoolService.
func NewPoolService(p PoolState) *PoolService {
	return &PoolService{pool: p}
}
