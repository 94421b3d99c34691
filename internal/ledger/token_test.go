package ledger

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/SudheerKondamuri/dex-amm/internal/apperrors"
)

func TestTokenLedger(t *testing.T) {
	t.Parallel()

	poolAddr := common.HexToAddress("0x0000000000000000000000000000000000001337")
	alice := common.HexToAddress("0x000000000000000000000000000000000000a11c")
	bob := common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	ctx := context.Background()

	t.Run("mint and balance", func(t *testing.T) {
		t.Parallel()

		l := NewTokenLedger(poolAddr)
		l.Mint(alice, big.NewInt(100))
		l.Mint(alice, big.NewInt(50))
		require.Equal(t, big.NewInt(150), l.BalanceOf(alice))
		require.Equal(t, big.NewInt(0), l.BalanceOf(bob))
	})

	t.Run("pull moves funds into pool custody", func(t *testing.T) {
		t.Parallel()

		l := NewTokenLedger(poolAddr)
		l.Mint(alice, big.NewInt(100))
		require.NoError(t, l.Pull(ctx, alice, big.NewInt(60)))
		require.Equal(t, big.NewInt(40), l.BalanceOf(alice))
		require.Equal(t, big.NewInt(60), l.BalanceOf(poolAddr))
	})

	t.Run("push moves funds out of pool custody", func(t *testing.T) {
		t.Parallel()

		l := NewTokenLedger(poolAddr)
		l.Mint(alice, big.NewInt(100))
		require.NoError(t, l.Pull(ctx, alice, big.NewInt(100)))
		require.NoError(t, l.Push(ctx, bob, big.NewInt(30)))
		require.Equal(t, big.NewInt(30), l.BalanceOf(bob))
		require.Equal(t, big.NewInt(70), l.BalanceOf(poolAddr))
	})

	t.Run("pull exceeding balance fails", func(t *testing.T) {
		t.Parallel()

		l := NewTokenLedger(poolAddr)
		l.Mint(alice, big.NewInt(10))
		err := l.Pull(ctx, alice, big.NewInt(11))
		require.Error(t, err)
		require.True(t, errors.Is(err, apperrors.ErrTransferFailed))
		require.Equal(t, big.NewInt(10), l.BalanceOf(alice))
	})

	t.Run("push from empty custody fails", func(t *testing.T) {
		t.Parallel()

		l := NewTokenLedger(poolAddr)
		err := l.Push(ctx, bob, big.NewInt(1))
		require.Error(t, err)
		require.True(t, errors.Is(err, apperrors.ErrTransferFailed))
	})

	t.Run("zero transfer is a no-op", func(t *testing.T) {
		t.Parallel()

		l := NewTokenLedger(poolAddr)
		require.NoError(t, l.Pull(ctx, alice, big.NewInt(0)))
		require.NoError(t, l.Push(ctx, bob, new(big.Int)))
	})

	t.Run("negative transfer fails", func(t *testing.T) {
		t.Parallel()

		l := NewTokenLedger(poolAddr)
		l.Mint(alice, big.NewInt(10))
		err := l.Pull(ctx, alice, big.NewInt(-5))
		require.True(t, errors.Is(err, apperrors.ErrTransferFailed))
	})

	t.Run("balance copy is independent", func(t *testing.T) {
		t.Parallel()

		l := NewTokenLedger(poolAddr)
		l.Mint(alice, big.NewInt(10))
		b := l.BalanceOf(alice)
		b.SetInt64(999)
		require.Equal(t, big.NewInt(10), l.BalanceOf(alice))
	})
}
