package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/SudheerKondamuri/dex-amm/internal/apperrors"
	svcdto "github.com/SudheerKondamuri/dex-amm/internal/service/dto"
	"github.com/SudheerKondamuri/dex-amm/internal/transport/http/dto"
	"github.com/SudheerKondamuri/dex-amm/internal/transport/http/validate"
)

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.QuoteRequestValidate(r)
	if err != nil {
		if code == 0 {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	out, err := s.svc.Quote(ctx, svcdto.QuoteRequest{
		AssetIn:  req.AssetIn,
		AmountIn: req.AmountIn,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(out.String())); err != nil {
		s.logger.Warn("quote write error", zap.Error(err))
	}
}

func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	price, err := s.svc.Price(ctx)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(price.String())); err != nil {
		s.logger.Warn("price write error", zap.Error(err))
	}
}

func (s *Server) handleReserves(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	snap, err := s.svc.Reserves(ctx)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	resp := dto.ReservesResponse{
		AssetA:         snap.AssetA.Hex(),
		AssetB:         snap.AssetB.Hex(),
		ReserveA:       snap.ReserveA.String(),
		ReserveB:       snap.ReserveB.String(),
		TotalLiquidity: snap.TotalLiquidity.String(),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Warn("reserves write error", zap.Error(err))
	}
}

// writeError maps engine failures onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnknownAsset),
		errors.Is(err, apperrors.ErrInsufficientInputAmount),
		errors.Is(err, apperrors.ErrInsufficientLiquidity),
		errors.Is(err, apperrors.ErrZeroReserves):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
