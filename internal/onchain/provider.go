// =============================
// File: internal/onchain/provider.go
// =============================
package onchain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/jonboulle/clockwork"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/pump-sdk/internal/blockchain/solbc"
	"github.com/rovshanmuradov/pump-sdk/internal/dex/pumpfun"
	"github.com/rovshanmuradov/pump-sdk/internal/incentives"
	"github.com/rovshanmuradov/pump-sdk/internal/utils/logger"
	"github.com/rovshanmuradov/pump-sdk/internal/utils/metrics"
)

// AccountSource is the read-only RPC surface the provider needs.
// *solbc.Client implements it.
type AccountSource interface {
	GetAccountInfo(ctx context.Context, pubkey solana.PublicKey) (*solbc.Account, error)
	GetMultipleAccounts(ctx context.Context, pubkeys []solana.PublicKey) ([]*solbc.Account, error)
	GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64) (uint64, error)
}

// DefaultCacheTTL applies when Options.CacheTTL is zero.
const DefaultCacheTTL = 30 * time.Second

// cache keys
const (
	keyGlobal    = "global"
	keyFeeConfig = "fee_config"
)

// Options configures a Provider.
type Options struct {
	CacheTTL time.Duration
	Clock    clockwork.Clock
	Metrics  *metrics.Collector
}

// Provider fetches and decodes Pump accounts. Global and FeeConfig change
// rarely and are cached; per-mint and per-user accounts are always fetched.
type Provider struct {
	src     AccountSource
	cache   *cache.Cache
	calc    *incentives.Calculator
	logger  *logger.Logger
	metrics *metrics.Collector
}

// NewProvider создаёт провайдер поверх источника аккаунтов.
func NewProvider(src AccountSource, opts Options, logger *logger.Logger) *Provider {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Provider{
		src:     src,
		cache:   cache.New(ttl, 2*ttl),
		calc:    incentives.NewCalculator(opts.Clock),
		logger:  logger.Named("onchain"),
		metrics: opts.Metrics,
	}
}

// InvalidateCache drops cached Global and FeeConfig.
func (p *Provider) InvalidateCache() {
	p.cache.Flush()
}

// fetchOptional returns nil data for an absent account.
func (p *Provider) fetchOptional(ctx context.Context, address solana.PublicKey) (*solbc.Account, error) {
	acc, err := p.src.GetAccountInfo(ctx, address)
	if errors.Is(err, solbc.ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// FetchGlobal returns the Pump Global account.
func (p *Provider) FetchGlobal(ctx context.Context) (*pumpfun.Global, error) {
	if v, ok := p.cache.Get(keyGlobal); ok {
		p.metrics.RecordCache(keyGlobal, true)
		return v.(*pumpfun.Global), nil
	}
	p.metrics.RecordCache(keyGlobal, false)

	address, err := pumpfun.GlobalPDA()
	if err != nil {
		return nil, err
	}
	acc, err := p.src.GetAccountInfo(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch global account: %w", err)
	}
	global, err := pumpfun.DecodeGlobal(acc.Data)
	if err != nil {
		return nil, err
	}

	p.cache.SetDefault(keyGlobal, global)
	p.logger.Debug("Global account fetched",
		zap.Uint64("fee_bps", global.FeeBasisPoints),
		zap.Uint64("creator_fee_bps", global.CreatorFeeBasisPoints))
	return global, nil
}

// FetchFeeConfig returns the Pump FeeConfig, or nil when the fee program
// has no config for Pump. Absence is cached as well.
func (p *Provider) FetchFeeConfig(ctx context.Context) (*pumpfun.FeeConfig, error) {
	if v, ok := p.cache.Get(keyFeeConfig); ok {
		p.metrics.RecordCache(keyFeeConfig, true)
		return v.(*pumpfun.FeeConfig), nil
	}
	p.metrics.RecordCache(keyFeeConfig, false)

	address, err := pumpfun.FeeConfigPDA()
	if err != nil {
		return nil, err
	}
	acc, err := p.fetchOptional(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fee config: %w", err)
	}

	var feeConfig *pumpfun.FeeConfig
	if acc != nil {
		if feeConfig, err = pumpfun.DecodeFeeConfig(acc.Data); err != nil {
			return nil, err
		}
	} else {
		p.logger.Debug("Fee config not found, flat fees from Global apply")
	}

	p.cache.SetDefault(keyFeeConfig, feeConfig)
	return feeConfig, nil
}

// FetchBondingCurve returns the curve of mint. A mint without a curve
// account yields a fresh curve, quoted from Global's initial reserves.
func (p *Provider) FetchBondingCurve(ctx context.Context, mint solana.PublicKey) (pumpfun.CurveState, error) {
	address, err := pumpfun.BondingCurvePDA(mint)
	if err != nil {
		return pumpfun.CurveState{}, err
	}
	acc, err := p.fetchOptional(ctx, address)
	if err != nil {
		return pumpfun.CurveState{}, fmt.Errorf("failed to fetch bonding curve: %w", err)
	}
	if acc == nil {
		return pumpfun.FreshCurve(), nil
	}
	bc, err := pumpfun.DecodeBondingCurve(acc.Data)
	if err != nil {
		return pumpfun.CurveState{}, err
	}
	return pumpfun.ExistingCurve(*bc), nil
}

// IsGraduated reports whether the canonical AMM pool of mint exists.
func (p *Provider) IsGraduated(ctx context.Context, mint solana.PublicKey) (bool, error) {
	pool, err := pumpfun.CanonicalPoolPDA(mint)
	if err != nil {
		return false, err
	}
	acc, err := p.fetchOptional(ctx, pool)
	if err != nil {
		return false, fmt.Errorf("failed to fetch canonical pool: %w", err)
	}
	return acc != nil, nil
}

// rentExemptBalance returns lamports above the rent-exempt minimum of acc.
func (p *Provider) rentExemptBalance(ctx context.Context, acc *solbc.Account) (uint64, error) {
	if acc == nil {
		return 0, nil
	}
	rent, err := p.src.GetMinimumBalanceForRentExemption(ctx, uint64(len(acc.Data)))
	if err != nil {
		return 0, fmt.Errorf("failed to fetch rent exemption: %w", err)
	}
	if acc.Lamports < rent {
		return 0, nil
	}
	return acc.Lamports - rent, nil
}
