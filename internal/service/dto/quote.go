package dto

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// QuoteRequest represents a request for a side-effect-free swap quote.
type QuoteRequest struct {
	AssetIn  common.Address
	AmountIn *big.Int
}

// ReservesResponse is a snapshot of the pool's funding state.
type ReservesResponse struct {
	AssetA         common.Address
	AssetB         common.Address
	ReserveA       *big.Int
	ReserveB       *big.Int
	TotalLiquidity *big.Int
}
