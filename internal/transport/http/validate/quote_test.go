package validate

import (
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestQuoteRequestValidate(t *testing.T) {
	t.Parallel()

	asset := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/quote?asset_in="+asset.Hex()+"&amount_in=1000", nil)
		req, code, err := QuoteRequestValidate(r)
		require.NoError(t, err)
		require.Zero(t, code)
		require.Equal(t, asset, req.AssetIn)
		require.Equal(t, big.NewInt(1000), req.AmountIn)
	})

	t.Run("missing asset", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/quote?amount_in=1000", nil)
		_, code, err := QuoteRequestValidate(r)
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("missing amount", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/quote?asset_in="+asset.Hex(), nil)
		_, code, err := QuoteRequestValidate(r)
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("bad address", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/quote?asset_in=0x123&amount_in=1000", nil)
		_, code, err := QuoteRequestValidate(r)
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("non-numeric amount", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/quote?asset_in="+asset.Hex()+"&amount_in=ten", nil)
		_, code, err := QuoteRequestValidate(r)
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/quote?asset_in="+asset.Hex()+"&amount_in=0", nil)
		_, code, err := QuoteRequestValidate(r)
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, code)
	})
}
