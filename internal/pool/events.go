package pool

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// LiquidityAddedEvent is emitted once per successful AddLiquidity call.
type LiquidityAddedEvent struct {
	Provider        common.Address
	AmountA         *big.Int
	AmountB         *big.Int
	LiquidityMinted *big.Int
}

// LiquidityRemovedEvent is emitted once per successful RemoveLiquidity call.
type LiquidityRemovedEvent struct {
	Provider        common.Address
	AmountA         *big.Int
	AmountB         *big.Int
	LiquidityBurned *big.Int
}

// SwapEvent is emitted once per successful Swap call.
type SwapEvent struct {
	Trader    common.Address
	AssetIn   common.Address
	AssetOut  common.Address
	AmountIn  *big.Int
	AmountOut *big.Int
}

// Sink receives pool events. Delivery is fire-and-forget: events are emitted
// only after the operation has fully succeeded, never on failure. A sink is
// invoked with the pool's lock held and must not call back into the pool.
type Sink interface {
	OnLiquidityAdded(ev LiquidityAddedEvent)
	OnLiquidityRemoved(ev LiquidityRemovedEvent)
	OnSwap(ev SwapEvent)
}
