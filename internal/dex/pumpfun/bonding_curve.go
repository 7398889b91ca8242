// ==============================================
// File: internal/dex/pumpfun/bonding_curve.go
// ==============================================
package pumpfun

// CurveState is either an existing on-chain curve or a fresh curve that has
// not been created yet.
type CurveState struct {
	curve *BondingCurve
}

// ExistingCurve wraps a fetched bonding curve.
func ExistingCurve(bc BondingCurve) CurveState {
	return CurveState{curve: &bc}
}

// FreshCurve represents a curve that does not exist on chain yet.
func FreshCurve() CurveState {
	return CurveState{}
}

// IsFresh reports whether the state describes a not-yet-created curve.
func (s CurveState) IsFresh() bool {
	return s.curve == nil
}

// Curve returns the wrapped curve and false for a fresh state.
func (s CurveState) Curve() (BondingCurve, bool) {
	if s.curve == nil {
		return BondingCurve{}, false
	}
	return *s.curve, true
}

// NewBondingCurve builds the curve a new mint starts with.
func NewBondingCurve(global *Global) BondingCurve {
	return BondingCurve{
		VirtualTokenReserves: global.InitialVirtualTokenReserves,
		VirtualSolReserves:   global.InitialVirtualSolReserves,
		RealTokenReserves:    global.InitialRealTokenReserves,
		RealSolReserves:      0,
		TokenTotalSupply:     global.TokenTotalSupply,
		Complete:             false,
		IsMayhemMode:         global.MayhemModeEnabled,
	}
}

// QuoteParams is the shared input of the quote functions. Buy quotes treat a
// fresh Curve or a nil MintSupply as a not-yet-created curve and price against
// NewBondingCurve(Global). Sell quotes keep an existing curve and fall back to
// its TokenTotalSupply when MintSupply is nil.
type QuoteParams struct {
	Global     *Global
	FeeConfig  *FeeConfig
	Curve      CurveState
	MintSupply *uint64
	Amount     uint64
}

// resolvedCurve is the curve a quote is computed on.
type resolvedCurve struct {
	curve      BondingCurve
	mintSupply uint64
	isNew      bool
}

func (p QuoteParams) resolve() (resolvedCurve, error) {
	if p.Global == nil {
		return resolvedCurve{}, ErrNilGlobal
	}
	bc, ok := p.Curve.Curve()
	if !ok || p.MintSupply == nil {
		return resolvedCurve{
			curve:      NewBondingCurve(p.Global),
			mintSupply: p.Global.TokenTotalSupply,
			isNew:      true,
		}, nil
	}
	return resolvedCurve{curve: bc, mintSupply: *p.MintSupply}, nil
}

// resolveSell never replaces reserves the caller supplied.
func (p QuoteParams) resolveSell() (resolvedCurve, error) {
	if p.Global == nil {
		return resolvedCurve{}, ErrNilGlobal
	}
	bc, ok := p.Curve.Curve()
	if !ok {
		return resolvedCurve{
			curve:      NewBondingCurve(p.Global),
			mintSupply: p.Global.TokenTotalSupply,
			isNew:      true,
		}, nil
	}
	supply := bc.TokenTotalSupply
	if p.MintSupply != nil {
		supply = *p.MintSupply
	}
	return resolvedCurve{curve: bc, mintSupply: supply}, nil
}

func (r resolvedCurve) feeBps(p QuoteParams) (FeeBps, error) {
	return ComputeFeesBps(FeeParams{
		Global:               p.Global,
		FeeConfig:            p.FeeConfig,
		MintSupply:           r.mintSupply,
		VirtualSolReserves:   r.curve.VirtualSolReserves,
		VirtualTokenReserves: r.curve.VirtualTokenReserves,
		IsMayhemMode:         r.curve.IsMayhemMode,
	})
}

// prepare resolves the curve and reports whether the quote is trivially zero.
func (p QuoteParams) prepare(sell bool) (resolvedCurve, bool, error) {
	if p.Amount == 0 {
		return resolvedCurve{}, true, nil
	}
	resolve := p.resolve
	if sell {
		resolve = p.resolveSell
	}
	rc, err := resolve()
	if err != nil {
		return resolvedCurve{}, false, err
	}
	// Мигрированная кривая: резервы обнулены
	if rc.curve.VirtualTokenReserves == 0 {
		return rc, true, nil
	}
	if rc.curve.Complete {
		return rc, false, ErrCurveComplete
	}
	return rc, false, nil
}

// GetBuyTokenAmountFromSolAmount returns the tokens a fee-inclusive SOL budget buys.
func GetBuyTokenAmountFromSolAmount(p QuoteParams) (uint64, error) {
	rc, zero, err := p.prepare(false)
	if err != nil || zero {
		return 0, err
	}

	bps, err := rc.feeBps(p)
	if err != nil {
		return 0, err
	}
	total, err := totalFeeBps(bps, chargesCreatorFee(rc.curve, rc.isNew))
	if err != nil {
		return 0, err
	}

	// Шаг 1: снимаем комиссию с бюджета
	denominator, err := checkedAdd(total, BasisPointsDenominator)
	if err != nil {
		return 0, err
	}
	inputAmount, err := MulDiv(p.Amount-1, BasisPointsDenominator, denominator)
	if err != nil {
		return 0, err
	}

	// Шаг 2: constant product
	solSide, err := checkedAdd(rc.curve.VirtualSolReserves, inputAmount)
	if err != nil {
		return 0, err
	}
	tokens, err := MulDiv(inputAmount, rc.curve.VirtualTokenReserves, solSide)
	if err != nil {
		return 0, err
	}

	return min(tokens, rc.curve.RealTokenReserves), nil
}

// GetBuySolAmountFromTokenAmount returns the fee-inclusive SOL cost of buying
// amount tokens, capped at the real token reserves.
func GetBuySolAmountFromTokenAmount(p QuoteParams) (uint64, error) {
	rc, zero, err := p.prepare(false)
	if err != nil || zero {
		return 0, err
	}

	minAmount := min(p.Amount, rc.curve.RealTokenReserves)
	tokenSide, err := checkedSub(rc.curve.VirtualTokenReserves, minAmount)
	if err != nil {
		return 0, err
	}
	solCost, err := MulDiv(minAmount, rc.curve.VirtualSolReserves, tokenSide)
	if err != nil {
		return 0, err
	}
	solCost++

	fees, err := GetFee(p.Global, p.FeeConfig, rc.mintSupply, rc.curve, solCost, rc.isNew)
	if err != nil {
		return 0, err
	}
	fee, err := fees.Total()
	if err != nil {
		return 0, err
	}
	return checkedAdd(solCost, fee)
}

// GetSellSolAmountFromTokenAmount returns the SOL received for selling amount
// tokens, net of fees.
func GetSellSolAmountFromTokenAmount(p QuoteParams) (uint64, error) {
	rc, zero, err := p.prepare(true)
	if err != nil || zero {
		return 0, err
	}

	tokenSide, err := checkedAdd(rc.curve.VirtualTokenReserves, p.Amount)
	if err != nil {
		return 0, err
	}
	gross, err := MulDiv(p.Amount, rc.curve.VirtualSolReserves, tokenSide)
	if err != nil {
		return 0, err
	}

	fees, err := GetFee(p.Global, p.FeeConfig, rc.mintSupply, rc.curve, gross, false)
	if err != nil {
		return 0, err
	}
	fee, err := fees.Total()
	if err != nil {
		return 0, err
	}
	return checkedSub(gross, fee)
}
