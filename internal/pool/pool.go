// Package pool implements a constant-product automated market maker for a
// single trading pair. The pool owns its reserves, the total-liquidity
// counter and the per-provider share ledger; value moves through two
// injected asset ledgers, one per asset.
//
// Every state-changing operation runs under a single mutex held for the full
// duration of the call, including the external ledger transfers. On top of
// that, RemoveLiquidity and Swap mutate all internal state before performing
// the outbound transfer, so a collaborator observing the pool mid-operation
// sees already-consistent, already-decremented state.
package pool

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/SudheerKondamuri/dex-amm/internal/apperrors"
	"github.com/SudheerKondamuri/dex-amm/internal/cpmm"
	"github.com/SudheerKondamuri/dex-amm/internal/ledger"
)

// Pool is a constant-product AMM over one asset pair.
type Pool struct {
	assetA common.Address
	assetB common.Address

	ledgerA ledger.Ledger
	ledgerB ledger.Ledger

	mu             sync.Mutex
	reserveA       *big.Int
	reserveB       *big.Int
	totalLiquidity *big.Int
	shares         map[common.Address]*big.Int

	sink   Sink
	logger *zap.Logger
}

// Option configures optional pool collaborators.
type Option func(*Pool)

// WithSink attaches an event sink to the pool.
func WithSink(s Sink) Option {
	return func(p *Pool) { p.sink = s }
}

// WithLogger attaches a structured logger to the pool.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates an empty pool for the given pair. The two asset identifiers
// are immutable; ledgerA and ledgerB move the corresponding asset in and out
// of the pool's custody.
func New(assetA, assetB common.Address, ledgerA, ledgerB ledger.Ledger, opts ...Option) (*Pool, error) {
	if assetA == assetB {
		return nil, errors.New("pool assets must differ")
	}
	if ledgerA == nil || ledgerB == nil {
		return nil, errors.New("both asset ledgers are required")
	}

	p := &Pool{
		assetA:         assetA,
		assetB:         assetB,
		ledgerA:        ledgerA,
		ledgerB:        ledgerB,
		reserveA:       new(big.Int),
		reserveB:       new(big.Int),
		totalLiquidity: new(big.Int),
		shares:         make(map[common.Address]*big.Int),
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// AddLiquidity deposits amountA and amountB from the provider and mints
// liquidity shares in return.
//
// The first deposit into an empty pool sets the price ratio unilaterally and
// mints Isqrt(amountA*amountB) shares. Later deposits must match the current
// reserve ratio within integer-rounding tolerance and mint proportionally to
// amountA against reserveA, rounding down.
func (p *Pool) AddLiquidity(ctx context.Context, provider common.Address, amountA, amountB *big.Int) (*big.Int, error) {
	if !positive(amountA) || !positive(amountB) {
		return nil, errors.Wrap(apperrors.ErrInvalidAmounts, "both deposit amounts must be positive")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var minted *big.Int
	if p.totalLiquidity.Sign() == 0 {
		minted = cpmm.Isqrt(new(big.Int).Mul(amountA, amountB))
	} else {
		if err := p.checkRatio(amountA, amountB); err != nil {
			return nil, err
		}
		minted = new(big.Int).Mul(amountA, p.totalLiquidity)
		minted.Quo(minted, p.reserveA)
	}
	if minted.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidityMinted, "deposit rounds down to zero shares")
	}

	// Pull both deposits before touching state; a failed second pull refunds
	// the first so a rejected deposit leaves no partial transfer behind.
	if err := p.ledgerA.Pull(ctx, provider, amountA); err != nil {
		return nil, errors.Wrapf(apperrors.ErrTransferFailed, "pull asset A: %v", err)
	}
	if err := p.ledgerB.Pull(ctx, provider, amountB); err != nil {
		if rerr := p.ledgerA.Push(ctx, provider, amountA); rerr != nil {
			p.logger.Error("refund of asset A failed after asset B pull failure",
				zap.String("provider", provider.Hex()),
				zap.String("amount_a", amountA.String()),
				zap.Error(rerr))
			err = multierr.Append(err, rerr)
		}
		return nil, errors.Wrapf(apperrors.ErrTransferFailed, "pull asset B: %v", err)
	}

	p.reserveA.Add(p.reserveA, amountA)
	p.reserveB.Add(p.reserveB, amountB)
	p.totalLiquidity.Add(p.totalLiquidity, minted)
	p.creditShares(provider, minted)

	p.logger.Debug("liquidity added",
		zap.String("provider", provider.Hex()),
		zap.String("amount_a", amountA.String()),
		zap.String("amount_b", amountB.String()),
		zap.String("minted", minted.String()))

	if p.sink != nil {
		p.sink.OnLiquidityAdded(LiquidityAddedEvent{
			Provider:        provider,
			AmountA:         new(big.Int).Set(amountA),
			AmountB:         new(big.Int).Set(amountB),
			LiquidityMinted: new(big.Int).Set(minted),
		})
	}
	return new(big.Int).Set(minted), nil
}

// RemoveLiquidity burns the provider's liquidity shares and pays out the
// proportional part of both reserves, rounding down on each side.
//
// Internal state is fully decremented before either outbound push; a failed
// push restores the pre-call state so a failed withdrawal has no net effect.
func (p *Pool) RemoveLiquidity(ctx context.Context, provider common.Address, liquidity *big.Int) (*big.Int, *big.Int, error) {
	if !positive(liquidity) {
		return nil, nil, errors.Wrap(apperrors.ErrInvalidAmount, "liquidity to burn must be positive")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bal, ok := p.shares[provider]
	if !ok || bal.Cmp(liquidity) < 0 {
		return nil, nil, errors.Wrap(apperrors.ErrInsufficientLiquidityBalance, "burn exceeds recorded share")
	}

	amountA := new(big.Int).Mul(liquidity, p.reserveA)
	amountA.Quo(amountA, p.totalLiquidity)
	amountB := new(big.Int).Mul(liquidity, p.reserveB)
	amountB.Quo(amountB, p.totalLiquidity)

	// Effects before interactions.
	p.debitShares(provider, liquidity)
	p.totalLiquidity.Sub(p.totalLiquidity, liquidity)
	p.reserveA.Sub(p.reserveA, amountA)
	p.reserveB.Sub(p.reserveB, amountB)

	restore := func() {
		p.creditShares(provider, liquidity)
		p.totalLiquidity.Add(p.totalLiquidity, liquidity)
		p.reserveA.Add(p.reserveA, amountA)
		p.reserveB.Add(p.reserveB, amountB)
	}

	if err := p.ledgerA.Push(ctx, provider, amountA); err != nil {
		restore()
		return nil, nil, errors.Wrapf(apperrors.ErrTransferFailed, "push asset A: %v", err)
	}
	if err := p.ledgerB.Push(ctx, provider, amountB); err != nil {
		if rerr := p.ledgerA.Pull(ctx, provider, amountA); rerr != nil {
			p.logger.Error("reclaim of asset A failed after asset B push failure",
				zap.String("provider", provider.Hex()),
				zap.String("amount_a", amountA.String()),
				zap.Error(rerr))
			err = multierr.Append(err, rerr)
		}
		restore()
		return nil, nil, errors.Wrapf(apperrors.ErrTransferFailed, "push asset B: %v", err)
	}

	p.logger.Debug("liquidity removed",
		zap.String("provider", provider.Hex()),
		zap.String("amount_a", amountA.String()),
		zap.String("amount_b", amountB.String()),
		zap.String("burned", liquidity.String()))

	if p.sink != nil {
		p.sink.OnLiquidityRemoved(LiquidityRemovedEvent{
			Provider:        provider,
			AmountA:         new(big.Int).Set(amountA),
			AmountB:         new(big.Int).Set(amountB),
			LiquidityBurned: new(big.Int).Set(liquidity),
		})
	}
	return amountA, amountB, nil
}

// Swap trades amountIn of assetIn for the other asset of the pair, priced by
// the constant-product formula with the 0.3% fee retained in the pool.
func (p *Pool) Swap(ctx context.Context, trader, assetIn common.Address, amountIn *big.Int) (*big.Int, error) {
	if !positive(amountIn) {
		return nil, errors.Wrap(apperrors.ErrInsufficientInputAmount, "swap input must be positive")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var (
		ledgerIn, ledgerOut   ledger.Ledger
		reserveIn, reserveOut *big.Int
		assetOut              common.Address
	)
	switch assetIn {
	case p.assetA:
		ledgerIn, ledgerOut = p.ledgerA, p.ledgerB
		reserveIn, reserveOut = p.reserveA, p.reserveB
		assetOut = p.assetB
	case p.assetB:
		ledgerIn, ledgerOut = p.ledgerB, p.ledgerA
		reserveIn, reserveOut = p.reserveB, p.reserveA
		assetOut = p.assetA
	default:
		return nil, errors.Wrapf(apperrors.ErrUnknownAsset, "asset %s is not in the pair", assetIn.Hex())
	}

	if reserveIn.Sign() == 0 || reserveOut.Sign() == 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "cannot swap against an empty pool")
	}

	amountOut, ok := cpmm.GetAmountOut(amountIn, reserveIn, reserveOut)
	if !ok {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "no output for given input")
	}

	if err := ledgerIn.Pull(ctx, trader, amountIn); err != nil {
		return nil, errors.Wrapf(apperrors.ErrTransferFailed, "pull %s: %v", assetIn.Hex(), err)
	}

	// Effects before the outbound interaction.
	reserveIn.Add(reserveIn, amountIn)
	reserveOut.Sub(reserveOut, amountOut)

	if err := ledgerOut.Push(ctx, trader, amountOut); err != nil {
		reserveIn.Sub(reserveIn, amountIn)
		reserveOut.Add(reserveOut, amountOut)
		if rerr := ledgerIn.Push(ctx, trader, amountIn); rerr != nil {
			p.logger.Error("refund of swap input failed after output push failure",
				zap.String("trader", trader.Hex()),
				zap.String("amount_in", amountIn.String()),
				zap.Error(rerr))
			err = multierr.Append(err, rerr)
		}
		return nil, errors.Wrapf(apperrors.ErrTransferFailed, "push %s: %v", assetOut.Hex(), err)
	}

	p.logger.Debug("swap executed",
		zap.String("trader", trader.Hex()),
		zap.String("asset_in", assetIn.Hex()),
		zap.String("amount_in", amountIn.String()),
		zap.String("amount_out", amountOut.String()))

	if p.sink != nil {
		p.sink.OnSwap(SwapEvent{
			Trader:    trader,
			AssetIn:   assetIn,
			AssetOut:  assetOut,
			AmountIn:  new(big.Int).Set(amountIn),
			AmountOut: new(big.Int).Set(amountOut),
		})
	}
	return amountOut, nil
}

// GetPrice returns the price of asset A denominated in asset B as an
// 18-decimal fixed-point value.
func (p *Pool) GetPrice() (*big.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	price, ok := cpmm.Price(p.reserveA, p.reserveB)
	if !ok {
		return nil, errors.Wrap(apperrors.ErrZeroReserves, "pool is empty")
	}
	return price, nil
}

// Quote prices a swap of amountIn of assetIn against the current reserves
// without any side effects.
func (p *Pool) Quote(assetIn common.Address, amountIn *big.Int) (*big.Int, error) {
	if !positive(amountIn) {
		return nil, errors.Wrap(apperrors.ErrInsufficientInputAmount, "swap input must be positive")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var reserveIn, reserveOut *big.Int
	switch assetIn {
	case p.assetA:
		reserveIn, reserveOut = p.reserveA, p.reserveB
	case p.assetB:
		reserveIn, reserveOut = p.reserveB, p.reserveA
	default:
		return nil, errors.Wrapf(apperrors.ErrUnknownAsset, "asset %s is not in the pair", assetIn.Hex())
	}

	out, ok := cpmm.GetAmountOut(amountIn, reserveIn, reserveOut)
	if !ok {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "cannot quote against an empty pool")
	}
	return out, nil
}

// Assets returns the pair's immutable asset identifiers.
func (p *Pool) Assets() (common.Address, common.Address) {
	return p.assetA, p.assetB
}

// Reserves returns copies of the current reserves.
func (p *Pool) Reserves() (*big.Int, *big.Int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return new(big.Int).Set(p.reserveA), new(big.Int).Set(p.reserveB)
}

// TotalLiquidity returns a copy of the outstanding liquidity share total.
func (p *Pool) TotalLiquidity() *big.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return new(big.Int).Set(p.totalLiquidity)
}

// LiquidityOf returns a copy of the provider's share balance; zero for
// unknown providers.
func (p *Pool) LiquidityOf(provider common.Address) *big.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if bal, ok := p.shares[provider]; ok {
		return new(big.Int).Set(bal)
	}
	return new(big.Int)
}

// checkRatio rejects a non-initial deposit whose two amounts do not match
// the current reserve ratio. Exact matching would reject every caller whose
// amountB came from integer division, so the cross products may differ by
// less than one reserve unit on either side. Must be called with the mutex
// held and non-empty reserves.
func (p *Pool) checkRatio(amountA, amountB *big.Int) error {
	lhs := new(big.Int).Mul(amountA, p.reserveB)
	rhs := new(big.Int).Mul(amountB, p.reserveA)
	diff := lhs.Sub(lhs, rhs)
	diff.Abs(diff)

	tolerance := p.reserveA
	if p.reserveB.Cmp(tolerance) > 0 {
		tolerance = p.reserveB
	}
	if diff.Cmp(tolerance) >= 0 {
		return errors.Wrap(apperrors.ErrRatioMismatch, "deposit does not match current reserve ratio")
	}
	return nil
}

// creditShares must be called with the mutex held.
func (p *Pool) creditShares(provider common.Address, amount *big.Int) {
	if bal, ok := p.shares[provider]; ok {
		bal.Add(bal, amount)
		return
	}
	p.shares[provider] = new(big.Int).Set(amount)
}

// debitShares must be called with the mutex held; zero balances are removed
// so a fully withdrawn provider is indistinguishable from one that never
// contributed.
func (p *Pool) debitShares(provider common.Address, amount *big.Int) {
	bal := p.shares[provider]
	bal.Sub(bal, amount)
	if bal.Sign() == 0 {
		delete(p.shares, provider)
	}
}

func positive(v *big.Int) bool {
	return v != nil && v.Sign() > 0
}
