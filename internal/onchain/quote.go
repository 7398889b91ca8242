// internal/onchain/quote.go
package onchain

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rovshanmuradov/pump-sdk/internal/dex/pumpfun"
)

// QuoteState is everything a quote for one mint needs.
type QuoteState struct {
	Mint      solana.PublicKey
	Global    *pumpfun.Global
	FeeConfig *pumpfun.FeeConfig
	Curve     pumpfun.CurveState

	// MintSupply is nil until the mint exists.
	MintSupply *uint64
}

// Params builds quote parameters for amount.
func (s *QuoteState) Params(amount uint64) pumpfun.QuoteParams {
	return pumpfun.QuoteParams{
		Global:     s.Global,
		FeeConfig:  s.FeeConfig,
		Curve:      s.Curve,
		MintSupply: s.MintSupply,
		Amount:     amount,
	}
}

// FetchQuoteState загружает Global, FeeConfig, кривую и supply параллельно.
func (p *Provider) FetchQuoteState(ctx context.Context, mint solana.PublicKey) (*QuoteState, error) {
	state := &QuoteState{Mint: mint}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		state.Global, err = p.FetchGlobal(gctx)
		return err
	})
	g.Go(func() (err error) {
		state.FeeConfig, err = p.FetchFeeConfig(gctx)
		return err
	})
	g.Go(func() (err error) {
		state.Curve, err = p.FetchBondingCurve(gctx, mint)
		return err
	})
	g.Go(func() (err error) {
		state.MintSupply, err = p.FetchMintSupply(gctx, mint)
		return err
	})

	if err := g.Wait(); err != nil {
		p.logger.WithMint(mint).Debug("FetchQuoteState failed", zap.Error(err))
		return nil, err
	}
	return state, nil
}

// FetchBondingCurveSummary возвращает сводку по кривой: market cap, прогресс и цены.
func (p *Provider) FetchBondingCurveSummary(ctx context.Context, mint solana.PublicKey) (pumpfun.BondingCurveSummary, error) {
	state, err := p.FetchQuoteState(ctx, mint)
	if err != nil {
		return pumpfun.BondingCurveSummary{}, err
	}
	summary, err := pumpfun.GetBondingCurveSummary(state.Params(0))
	p.metrics.RecordQuote("summary", err == nil)
	return summary, err
}

// FetchGraduationProgress returns the graduation progress of mint.
func (p *Provider) FetchGraduationProgress(ctx context.Context, mint solana.PublicKey) (pumpfun.GraduationProgress, error) {
	state, err := p.FetchQuoteState(ctx, mint)
	if err != nil {
		return pumpfun.GraduationProgress{}, err
	}
	bc, ok := state.Curve.Curve()
	if !ok {
		bc = pumpfun.NewBondingCurve(state.Global)
	}
	return pumpfun.GetGraduationProgress(state.Global, bc), nil
}
