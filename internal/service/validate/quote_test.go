package validate

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/SudheerKondamuri/dex-amm/internal/apperrors"
	"github.com/SudheerKondamuri/dex-amm/internal/service/dto"
)

func TestQuoteRequestValidate(t *testing.T) {
	t.Parallel()

	assetIn := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		err := QuoteRequestValidate(dto.QuoteRequest{AssetIn: assetIn, AmountIn: big.NewInt(1)})
		require.NoError(t, err)
	})

	t.Run("empty asset", func(t *testing.T) {
		t.Parallel()
		err := QuoteRequestValidate(dto.QuoteRequest{AmountIn: big.NewInt(1)})
		require.True(t, errors.Is(err, apperrors.ErrUnknownAsset))
	})

	t.Run("nil amount", func(t *testing.T) {
		t.Parallel()
		err := QuoteRequestValidate(dto.QuoteRequest{AssetIn: assetIn})
		require.True(t, errors.Is(err, apperrors.ErrInsufficientInputAmount))
	})

	t.Run("zero amount", func(t *testing.T) {
		t.Parallel()
		err := QuoteRequestValidate(dto.QuoteRequest{AssetIn: assetIn, AmountIn: new(big.Int)})
		require.True(t, errors.Is(err, apperrors.ErrInsufficientInputAmount))
	})

	t.Run("negative amount", func(t *testing.T) {
		t.Parallel()
		err := QuoteRequestValidate(dto.QuoteRequest{AssetIn: assetIn, AmountIn: big.NewInt(-5)})
		require.True(t, errors.Is(err, apperrors.ErrInsufficientInputAmount))
	})
}
