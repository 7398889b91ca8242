// =============================
// File: internal/dex/pumpfun/fees.go
// =============================
package pumpfun

import (
	"github.com/holiman/uint256"
)

// OneBillionSupply is the mint supply used for market-cap fee tiers of
// non-mayhem coins: 1e9 tokens with 6 decimals.
const OneBillionSupply uint64 = 1_000_000_000_000_000

// FeeBps is the resolved protocol/creator fee rate pair.
type FeeBps struct {
	ProtocolFeeBps uint64
	CreatorFeeBps  uint64
}

// FeeParams is the input of the fee-tier resolver.
type FeeParams struct {
	Global               *Global
	FeeConfig            *FeeConfig
	MintSupply           uint64
	VirtualSolReserves   uint64
	VirtualTokenReserves uint64
	IsMayhemMode         bool
}

// FeeAmounts holds per-component fees, each rounded up on its own.
type FeeAmounts struct {
	Protocol uint64
	Creator  uint64
}

// Total returns the summed fee.
func (f FeeAmounts) Total() (uint64, error) {
	return checkedAdd(f.Protocol, f.Creator)
}

// BondingCurveMarketCap returns vSol * mintSupply / vToken in 256-bit width.
func BondingCurveMarketCap(mintSupply, virtualSolReserves, virtualTokenReserves uint64) (*uint256.Int, error) {
	if virtualTokenReserves == 0 {
		return nil, ErrDivisionByZero
	}
	mc := new(uint256.Int).Mul(u256(virtualSolReserves), u256(mintSupply))
	return mc.Div(mc, u256(virtualTokenReserves)), nil
}

// CalculateFeeTier picks the fees of the highest tier whose threshold does not
// exceed marketCap. Below the first threshold the first tier applies.
func CalculateFeeTier(tiers []FeeTier, marketCap *uint256.Int) Fees {
	if len(tiers) == 0 {
		return Fees{}
	}
	first := tiers[0]
	if marketCap.Lt(first.Threshold()) {
		return first.Fees
	}
	for i := len(tiers) - 1; i >= 0; i-- {
		if !marketCap.Lt(tiers[i].Threshold()) {
			return tiers[i].Fees
		}
	}
	return first.Fees
}

// ComputeFeesBps resolves the protocol and creator fee rates for a curve.
func ComputeFeesBps(p FeeParams) (FeeBps, error) {
	if p.Global == nil {
		return FeeBps{}, ErrNilGlobal
	}

	supply := p.MintSupply
	if !p.IsMayhemMode {
		supply = OneBillionSupply
	}
	marketCap, err := BondingCurveMarketCap(supply, p.VirtualSolReserves, p.VirtualTokenReserves)
	if err != nil {
		return FeeBps{}, err
	}

	if p.FeeConfig == nil {
		return FeeBps{
			ProtocolFeeBps: p.Global.FeeBasisPoints,
			CreatorFeeBps:  p.Global.CreatorFeeBasisPoints,
		}, nil
	}

	fees := p.FeeConfig.FlatFees
	if len(p.FeeConfig.FeeTiers) > 0 {
		fees = CalculateFeeTier(p.FeeConfig.FeeTiers, marketCap)
	}
	return FeeBps{ProtocolFeeBps: fees.ProtocolFeeBps, CreatorFeeBps: fees.CreatorFeeBps}, nil
}

// chargesCreatorFee reports whether the creator component applies.
// New curves always pay it because the creator is set at creation.
func chargesCreatorFee(bc BondingCurve, isNew bool) bool {
	return isNew || bc.HasCreator()
}

// totalFeeBps sums the applicable fee rates.
func totalFeeBps(bps FeeBps, creatorApplies bool) (uint64, error) {
	if !creatorApplies {
		return bps.ProtocolFeeBps, nil
	}
	return checkedAdd(bps.ProtocolFeeBps, bps.CreatorFeeBps)
}

// feeAmounts applies each rate to amount independently.
func feeAmounts(amount uint64, bps FeeBps, creatorApplies bool) (FeeAmounts, error) {
	protocol, err := ApplyFeeBps(amount, bps.ProtocolFeeBps)
	if err != nil {
		return FeeAmounts{}, err
	}
	var creator uint64
	if creatorApplies {
		creator, err = ApplyFeeBps(amount, bps.CreatorFeeBps)
		if err != nil {
			return FeeAmounts{}, err
		}
	}
	return FeeAmounts{Protocol: protocol, Creator: creator}, nil
}

// GetFee returns the fees charged on amount for a trade against bc.
func GetFee(global *Global, feeConfig *FeeConfig, mintSupply uint64, bc BondingCurve, amount uint64, isNew bool) (FeeAmounts, error) {
	bps, err := ComputeFeesBps(FeeParams{
		Global:               global,
		FeeConfig:            feeConfig,
		MintSupply:           mintSupply,
		VirtualSolReserves:   bc.VirtualSolReserves,
		VirtualTokenReserves: bc.VirtualTokenReserves,
		IsMayhemMode:         bc.IsMayhemMode,
	})
	if err != nil {
		return FeeAmounts{}, err
	}
	return feeAmounts(amount, bps, chargesCreatorFee(bc, isNew))
}
