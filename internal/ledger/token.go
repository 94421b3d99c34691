package ledger

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/SudheerKondamuri/dex-amm/internal/apperrors"
)

// TokenLedger is an in-memory fungible-token ledger implementing Ledger.
// The pool custody account is fixed at construction; Pull and Push always
// move value against it.
type TokenLedger struct {
	mu       sync.Mutex
	pool     common.Address
	balances map[common.Address]*big.Int
}

// NewTokenLedger creates an empty ledger whose custody side is pool.
func NewTokenLedger(pool common.Address) *TokenLedger {
	return &TokenLedger{
		pool:     pool,
		balances: make(map[common.Address]*big.Int),
	}
}

// Mint credits amount to the holder. Used to fund accounts in tests and in
// the demo server; a real deployment replaces this ledger entirely.
func (l *TokenLedger) Mint(holder common.Address, amount *big.Int) {
	if amount == nil || amount.Sign() <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.credit(holder, amount)
}

// Pull moves amount from the holder's custody into the pool's custody.
func (l *TokenLedger) Pull(_ context.Context, from common.Address, amount *big.Int) error {
	return l.transfer(from, l.pool, amount)
}

// Push moves amount from the pool's custody to the holder.
func (l *TokenLedger) Push(_ context.Context, to common.Address, amount *big.Int) error {
	return l.transfer(l.pool, to, amount)
}

// BalanceOf returns a copy of the holder's current balance.
func (l *TokenLedger) BalanceOf(holder common.Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok := l.balances[holder]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

func (l *TokenLedger) transfer(from, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return errors.Wrap(apperrors.ErrTransferFailed, "negative amount")
	}
	if amount.Sign() == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.balances[from]
	if !ok || b.Cmp(amount) < 0 {
		return errors.Wrapf(apperrors.ErrTransferFailed, "balance of %s below %s", from.Hex(), amount.String())
	}

	b.Sub(b, amount)
	if b.Sign() == 0 {
		delete(l.balances, from)
	}
	l.credit(to, amount)
	return nil
}

// credit must be called with the mutex held.
func (l *TokenLedger) credit(holder common.Address, amount *big.Int) {
	if b, ok := l.balances[holder]; ok {
		b.Add(b, amount)
		return
	}
	l.balances[holder] = new(big.Int).Set(amount)
}
