package config

import (
	"log"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

// SeedLiquidity optionally funds the demo pool at startup: the provider is
// minted both amounts on the in-memory ledgers and deposits them.
type SeedLiquidity struct {
	Provider string `yaml:"provider"`
	AmountA  string `yaml:"amount_a"`
	AmountB  string `yaml:"amount_b"`
}

// Config holds application configuration loaded from file.
type Config struct {
	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`

	AssetA      string `yaml:"asset_a"`
	AssetB      string `yaml:"asset_b"`
	PoolAccount string `yaml:"pool_account"`

	Seed *SeedLiquidity `yaml:"seed_liquidity"`
}

// Load reads the config from a YAML file path.
// Fails fatally if config is invalid or file is missing.
func Load(path string) *Config {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open config file: os.Open: %v", err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			log.Printf("failed to close config file: f.Close: %v", err)
		}
	}(f)

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		log.Fatalf("failed to parse config file: decoder.Decode: %v", err)
	}

	// Fallbacks
	const defaultTimeout = 5 * time.Second
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":1337"
	}
	if cfg.GraceTimeout == 0 {
		cfg.GraceTimeout = defaultTimeout
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = defaultTimeout
	}

	if !common.IsHexAddress(cfg.AssetA) || !common.IsHexAddress(cfg.AssetB) {
		log.Fatalf("asset_a and asset_b must be valid hex addresses")
	}
	if common.HexToAddress(cfg.AssetA) == common.HexToAddress(cfg.AssetB) {
		log.Fatalf("asset_a and asset_b must differ")
	}
	if !common.IsHexAddress(cfg.PoolAccount) {
		log.Fatalf("pool_account must be a valid hex address")
	}

	return &cfg
}
