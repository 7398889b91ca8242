// internal/dex/pumpfun/token_calc.go
package pumpfun

import (
	"github.com/holiman/uint256"
)

const (
	// LamportsPerSol scales spot prices.
	LamportsPerSol uint64 = 1_000_000_000
	// OneToken is one whole Pump token (6 decimals) in raw units.
	OneToken uint64 = 1_000_000
)

// PriceImpact describes how a trade moves the spot price.
type PriceImpact struct {
	PriceBefore uint64
	PriceAfter  uint64
	// ImpactBps is positive when the trade moves the price against the trader.
	ImpactBps    int64
	OutputAmount uint64
}

// TokenPrice is the cost of buying and the proceeds of selling one whole token.
type TokenPrice struct {
	BuyPricePerToken  uint64
	SellPricePerToken uint64
	MarketCap         *uint256.Int
	IsGraduated       bool
}

// BondingCurveSummary combines market cap, progress and prices of a curve.
type BondingCurveSummary struct {
	MarketCap            *uint256.Int
	ProgressBps          uint64
	IsGraduated          bool
	BuyPricePerToken     uint64
	SellPricePerToken    uint64
	RealSolReserves      uint64
	RealTokenReserves    uint64
	VirtualSolReserves   uint64
	VirtualTokenReserves uint64
}

// SpotPrice returns vSol * 1e9 / vToken, or 0 for a drained curve.
func SpotPrice(virtualSolReserves, virtualTokenReserves uint64) (uint64, error) {
	if virtualTokenReserves == 0 {
		return 0, nil
	}
	return MulDiv(virtualSolReserves, LamportsPerSol, virtualTokenReserves)
}

// impactBps returns (to - from) * 10000 / from.
func impactBps(from, to uint64) (int64, error) {
	if from == 0 {
		return 0, nil
	}
	if to >= from {
		v, err := MulDiv(to-from, BasisPointsDenominator, from)
		if err != nil {
			return 0, err
		}
		return int64(v), nil
	}
	v, err := MulDiv(from-to, BasisPointsDenominator, from)
	if err != nil {
		return 0, err
	}
	return -int64(v), nil
}

// CalculateBuyPriceImpact quotes a buy of p.Amount lamports and the price move
// it causes. The whole budget is assumed to enter the SOL reserve.
func CalculateBuyPriceImpact(p QuoteParams) (PriceImpact, error) {
	rc, err := p.resolve()
	if err != nil {
		return PriceImpact{}, err
	}
	before, err := SpotPrice(rc.curve.VirtualSolReserves, rc.curve.VirtualTokenReserves)
	if err != nil {
		return PriceImpact{}, err
	}

	tokens, err := GetBuyTokenAmountFromSolAmount(p)
	if err != nil {
		return PriceImpact{}, err
	}

	newSol, err := checkedAdd(rc.curve.VirtualSolReserves, p.Amount)
	if err != nil {
		return PriceImpact{}, err
	}
	newToken, err := checkedSub(rc.curve.VirtualTokenReserves, tokens)
	if err != nil {
		return PriceImpact{}, err
	}
	after, err := SpotPrice(newSol, newToken)
	if err != nil {
		return PriceImpact{}, err
	}

	impact, err := impactBps(before, after)
	if err != nil {
		return PriceImpact{}, err
	}
	return PriceImpact{PriceBefore: before, PriceAfter: after, ImpactBps: impact, OutputAmount: tokens}, nil
}

// CalculateSellPriceImpact quotes a sell of p.Amount tokens and the price move
// it causes. A price drop is reported as positive ImpactBps.
func CalculateSellPriceImpact(p QuoteParams) (PriceImpact, error) {
	rc, err := p.resolveSell()
	if err != nil {
		return PriceImpact{}, err
	}
	before, err := SpotPrice(rc.curve.VirtualSolReserves, rc.curve.VirtualTokenReserves)
	if err != nil {
		return PriceImpact{}, err
	}

	sol, err := GetSellSolAmountFromTokenAmount(p)
	if err != nil {
		return PriceImpact{}, err
	}

	newSol, err := checkedSub(rc.curve.VirtualSolReserves, sol)
	if err != nil {
		return PriceImpact{}, err
	}
	newToken, err := checkedAdd(rc.curve.VirtualTokenReserves, p.Amount)
	if err != nil {
		return PriceImpact{}, err
	}
	after, err := SpotPrice(newSol, newToken)
	if err != nil {
		return PriceImpact{}, err
	}

	// Для продажи падение цены возвращается положительным числом
	impact, err := impactBps(before, after)
	if err != nil {
		return PriceImpact{}, err
	}
	return PriceImpact{PriceBefore: before, PriceAfter: after, ImpactBps: -impact, OutputAmount: sol}, nil
}

// GetTokenPrice returns the buy and sell price of one whole token and the
// market cap at p.MintSupply. Graduated curves report zero prices, a migrated
// curve with drained reserves also reports a zero market cap.
func GetTokenPrice(p QuoteParams) (TokenPrice, error) {
	rc, err := p.resolveSell()
	if err != nil {
		return TokenPrice{}, err
	}

	price := TokenPrice{IsGraduated: rc.curve.Complete, MarketCap: new(uint256.Int)}
	if rc.curve.VirtualTokenReserves != 0 {
		price.MarketCap, err = BondingCurveMarketCap(rc.mintSupply, rc.curve.VirtualSolReserves, rc.curve.VirtualTokenReserves)
		if err != nil {
			return TokenPrice{}, err
		}
	}
	if rc.curve.Complete {
		return price, nil
	}

	// Покупка и продажа считаются по одной и той же кривой
	if !rc.isNew {
		p.MintSupply = &rc.mintSupply
	}
	p.Amount = OneToken
	if price.BuyPricePerToken, err = GetBuySolAmountFromTokenAmount(p); err != nil {
		return TokenPrice{}, err
	}
	if price.SellPricePerToken, err = GetSellSolAmountFromTokenAmount(p); err != nil {
		return TokenPrice{}, err
	}
	return price, nil
}

// GetBondingCurveSummary returns the combined view of a curve.
func GetBondingCurveSummary(p QuoteParams) (BondingCurveSummary, error) {
	rc, err := p.resolveSell()
	if err != nil {
		return BondingCurveSummary{}, err
	}
	price, err := GetTokenPrice(p)
	if err != nil {
		return BondingCurveSummary{}, err
	}
	progress := GetGraduationProgress(p.Global, rc.curve)

	return BondingCurveSummary{
		MarketCap:            price.MarketCap,
		ProgressBps:          progress.ProgressBps,
		IsGraduated:          progress.IsGraduated,
		BuyPricePerToken:     price.BuyPricePerToken,
		SellPricePerToken:    price.SellPricePerToken,
		RealSolReserves:      rc.curve.RealSolReserves,
		RealTokenReserves:    rc.curve.RealTokenReserves,
		VirtualSolReserves:   rc.curve.VirtualSolReserves,
		VirtualTokenReserves: rc.curve.VirtualTokenReserves,
	}, nil
}
