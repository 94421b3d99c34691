package dto

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// QuoteRequest represents a parsed HTTP request for the /quote endpoint.
type QuoteRequest struct {
	AssetIn  common.Address
	AmountIn *big.Int
}

// ReservesResponse is the JSON body of the /reserves endpoint. Quantities
// are decimal strings so arbitrary-precision values survive the wire.
type ReservesResponse struct {
	AssetA         string `json:"asset_a"`
	AssetB         string `json:"asset_b"`
	ReserveA       string `json:"reserve_a"`
	ReserveB       string `json:"reserve_b"`
	TotalLiquidity string `json:"total_liquidity"`
}
