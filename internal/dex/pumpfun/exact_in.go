// =============================
// File: internal/dex/pumpfun/exact_in.go
// =============================
package pumpfun

// ExactSolInQuote is the breakdown of a buy with a fixed lamport budget.
// NetSol + ProtocolFee + CreatorFee never exceeds SpendableSolIn.
type ExactSolInQuote struct {
	SpendableSolIn uint64
	NetSol         uint64
	ProtocolFee    uint64
	CreatorFee     uint64
	TokensOut      uint64
}

// ExactSolInCost is the budget required to receive a token amount.
type ExactSolInCost struct {
	Tokens         uint64
	NetSol         uint64
	SpendableSolIn uint64
}

// BuyExactSolIn quotes a buy that spends at most p.Amount lamports, fees included.
func BuyExactSolIn(p QuoteParams) (ExactSolInQuote, error) {
	quote := ExactSolInQuote{SpendableSolIn: p.Amount}

	rc, zero, err := p.prepare(false)
	if err != nil || zero {
		return quote, err
	}

	bps, err := rc.feeBps(p)
	if err != nil {
		return quote, err
	}
	creatorApplies := chargesCreatorFee(rc.curve, rc.isNew)
	total, err := totalFeeBps(bps, creatorApplies)
	if err != nil {
		return quote, err
	}

	// Шаг 1: netSol = floor(spendable * 10000 / (10000 + totalBps))
	denominator, err := checkedAdd(BasisPointsDenominator, total)
	if err != nil {
		return quote, err
	}
	netSol, err := MulDiv(p.Amount, BasisPointsDenominator, denominator)
	if err != nil {
		return quote, err
	}

	// Шаг 2: комиссии считаются по каждой компоненте отдельно
	fees, err := feeAmounts(netSol, bps, creatorApplies)
	if err != nil {
		return quote, err
	}
	feeTotal, err := fees.Total()
	if err != nil {
		return quote, err
	}

	// Шаг 3: округление вверх может вывести за бюджет, срезаем перебор
	spent, err := checkedAdd(netSol, feeTotal)
	if err != nil {
		return quote, err
	}
	if spent > p.Amount {
		// netSol - (spent - amount) == amount - fees
		if feeTotal > p.Amount {
			return quote, ErrOverflow
		}
		netSol = p.Amount - feeTotal
	}

	quote.NetSol = netSol
	quote.ProtocolFee = fees.Protocol
	quote.CreatorFee = fees.Creator

	// Шаг 4: tokens = floor((netSol-1) * vToken / (vSol + netSol - 1))
	if netSol <= 1 {
		return quote, nil
	}
	solSide, err := checkedAdd(rc.curve.VirtualSolReserves, netSol-1)
	if err != nil {
		return quote, err
	}
	tokens, err := MulDiv(netSol-1, rc.curve.VirtualTokenReserves, solSide)
	if err != nil {
		return quote, err
	}
	quote.TokensOut = min(tokens, rc.curve.RealTokenReserves)
	return quote, nil
}

// RequiredSolForTokens returns the budget BuyExactSolIn needs so that the
// on-chain instruction delivers at least p.Amount tokens.
func RequiredSolForTokens(p QuoteParams) (ExactSolInCost, error) {
	cost := ExactSolInCost{Tokens: p.Amount}

	rc, zero, err := p.prepare(false)
	if err != nil || zero {
		return cost, err
	}

	bps, err := rc.feeBps(p)
	if err != nil {
		return cost, err
	}
	total, err := totalFeeBps(bps, chargesCreatorFee(rc.curve, rc.isNew))
	if err != nil {
		return cost, err
	}

	tokenSide, err := checkedSub(rc.curve.VirtualTokenReserves, p.Amount)
	if err != nil {
		return cost, err
	}
	netSol, err := MulDivCeil(p.Amount, rc.curve.VirtualSolReserves, tokenSide)
	if err != nil {
		return cost, err
	}
	netSol, err = checkedAdd(netSol, 1)
	if err != nil {
		return cost, err
	}

	multiplier, err := checkedAdd(BasisPointsDenominator, total)
	if err != nil {
		return cost, err
	}
	spendable, err := MulDivCeil(netSol, multiplier, BasisPointsDenominator)
	if err != nil {
		return cost, err
	}

	cost.NetSol = netSol
	cost.SpendableSolIn = spendable
	return cost, nil
}
