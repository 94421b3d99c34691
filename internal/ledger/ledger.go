package ledger

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=ledger.go -destination=mock/ledger.go -package=mock

// Ledger defines the abstraction for moving one asset in and out of the
// pool's custody. One instance serves exactly one asset; authorization of
// the debited party happens out-of-band.
type Ledger interface {
	// Pull moves amount from the holder's custody into the pool's custody.
	Pull(ctx context.Context, from common.Address, amount *big.Int) error

	// Push moves amount from the pool's custody to the holder.
	Push(ctx context.Context, to common.Address, amount *big.Int) error

	// BalanceOf returns the holder's current balance.
	BalanceOf(holder common.Address) *big.Int
}
