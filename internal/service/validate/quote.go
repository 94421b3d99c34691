package validate

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/SudheerKondamuri/dex-amm/internal/apperrors"
	"github.com/SudheerKondamuri/dex-amm/internal/service/dto"
)

// QuoteRequestValidate validates a business-logic quote request.
func QuoteRequestValidate(req dto.QuoteRequest) error {
	var zeroAddress = common.Address{}

	if req.AssetIn == zeroAddress {
		return errors.Wrap(apperrors.ErrUnknownAsset, "asset cannot be empty")
	}

	if req.AmountIn == nil || req.AmountIn.Sign() <= 0 {
		return errors.Wrap(apperrors.ErrInsufficientInputAmount, "input amount cannot be zero or negative")
	}

	return nil
}
