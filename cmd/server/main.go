package main

import (
	"context"
	"log"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/SudheerKondamuri/dex-amm/internal/config"
	"github.com/SudheerKondamuri/dex-amm/internal/ledger"
	"github.com/SudheerKondamuri/dex-amm/internal/pool"
	"github.com/SudheerKondamuri/dex-amm/internal/service"
	transporthttp "github.com/SudheerKondamuri/dex-amm/internal/transport/http"
)

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg := config.Load(path)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap.NewProduction: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	poolAccount := common.HexToAddress(cfg.PoolAccount)
	ledgerA := ledger.NewTokenLedger(poolAccount)
	ledgerB := ledger.NewTokenLedger(poolAccount)

	p, err := pool.New(
		common.HexToAddress(cfg.AssetA),
		common.HexToAddress(cfg.AssetB),
		ledgerA,
		ledgerB,
		pool.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("pool.New failed", zap.Error(err))
	}

	if cfg.Seed != nil {
		seedPool(p, ledgerA, ledgerB, cfg.Seed, logger)
	}

	svc := service.NewPoolService(p)
	srv, err := transporthttp.NewServer(svc, cfg, logger)
	if err != nil {
		logger.Fatal("transporthttp.NewServer failed", zap.Error(err))
	}

	if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Fatal("srv.ListenAndServe failed", zap.Error(err))
	}
}

// seedPool mints the configured amounts to the seed provider and deposits
// them so the query surface has something to quote against.
func seedPool(p *pool.Pool, ledgerA, ledgerB *ledger.TokenLedger, seed *config.SeedLiquidity, logger *zap.Logger) {
	if !common.IsHexAddress(seed.Provider) {
		logger.Fatal("seed provider must be a valid hex address", zap.String("provider", seed.Provider))
	}
	provider := common.HexToAddress(seed.Provider)

	amountA, okA := new(big.Int).SetString(seed.AmountA, 10)
	amountB, okB := new(big.Int).SetString(seed.AmountB, 10)
	if !okA || !okB {
		logger.Fatal("seed amounts must be decimal integers",
			zap.String("amount_a", seed.AmountA),
			zap.String("amount_b", seed.AmountB))
	}

	ledgerA.Mint(provider, amountA)
	ledgerB.Mint(provider, amountB)

	minted, err := p.AddLiquidity(context.Background(), provider, amountA, amountB)
	if err != nil {
		logger.Fatal("seed deposit failed", zap.Error(err))
	}
	logger.Info("pool seeded",
		zap.String("provider", provider.Hex()),
		zap.String("amount_a", amountA.String()),
		zap.String("amount_b", amountB.String()),
		zap.String("minted", minted.String()))
}
