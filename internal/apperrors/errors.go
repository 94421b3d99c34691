package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidAmounts is returned when a liquidity deposit carries a
	// non-positive amount on either side.
	ErrInvalidAmounts = errors.New("invalid amounts")

	// ErrInvalidAmount is returned when a liquidity withdrawal requests a
	// non-positive share amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientLiquidityMinted is returned when a deposit is so small
	// that it rounds down to zero liquidity shares.
	ErrInsufficientLiquidityMinted = errors.New("insufficient liquidity minted")

	// ErrInsufficientLiquidityBalance is returned when a provider tries to
	// burn more liquidity than their recorded share.
	ErrInsufficientLiquidityBalance = errors.New("insufficient liquidity balance")

	// ErrInsufficientInputAmount is returned when a swap input is non-positive.
	ErrInsufficientInputAmount = errors.New("insufficient input amount")

	// ErrInsufficientLiquidity is returned when the pool does not have enough
	// reserves to satisfy the requested swap.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrZeroReserves is returned when a price is requested from an empty pool.
	ErrZeroReserves = errors.New("zero reserves")

	// ErrTransferFailed is returned when the asset ledger could not complete
	// a pull or push. The engine never retries.
	ErrTransferFailed = errors.New("transfer failed")

	// ErrRatioMismatch is returned when a non-initial deposit does not match
	// the pool's current reserve ratio within integer-rounding tolerance.
	ErrRatioMismatch = errors.New("ratio mismatch")

	// ErrUnknownAsset is returned when a swap names an asset that is not one
	// of the pool's pair.
	ErrUnknownAsset = errors.New("unknown asset")
)
