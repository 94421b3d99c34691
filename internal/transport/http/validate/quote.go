package validate

import (
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/SudheerKondamuri/dex-amm/internal/transport/http/dto"
)

// QuoteRequestValidate validates a /quote request and returns the dto.
func QuoteRequestValidate(r *http.Request) (*dto.QuoteRequest, int, error) {
	q := r.URL.Query()
	asset := q.Get("asset_in")
	amt := q.Get("amount_in")
	if asset == "" || amt == "" {
		return nil, http.StatusBadRequest, errors.New("missing params")
	}
	if !common.IsHexAddress(asset) {
		return nil, http.StatusBadRequest, errors.New("bad address format")
	}
	a, ok := new(big.Int).SetString(amt, 10)
	if !ok || a.Sign() <= 0 {
		return nil, http.StatusBadRequest, errors.New("bad amount_in")
	}
	return &dto.QuoteRequest{
		AssetIn:  common.HexToAddress(asset),
		AmountIn: a,
	}, 0, nil
}
