// Package pumpfun implements the off-chain pricing engine of the Pump bonding-curve program.
//
// All arithmetic is integer-exact and mirrors the on-chain program, so quotes
// computed here match what the program charges or pays out. Nothing in this
// package performs I/O; account bytes are fetched elsewhere and decoded here.
//
// This package provides:
//   - Fixed-point helpers (CeilDiv, ApplyFeeBps, MulDiv).
//   - The fee-tier resolver (ComputeFeesBps, CalculateFeeTier).
//   - Buy and sell quotes, including quotes against a curve that does not exist yet.
//   - Exact-spend buys (BuyExactSolIn) and their inverse (RequiredSolForTokens).
//   - Fee recipient selection behind an injectable IndexSource.
//   - Analytics: spot price, price impact, graduation progress and curve summaries.
//   - Decoders for Global, BondingCurve, FeeConfig and the volume accumulators.
//
// Detailed information can be found in the respective source files:
//   - math.go: fixed-point helpers.
//   - fees.go: market cap and fee tiers.
//   - bonding_curve.go: CurveState and the three quote functions.
//   - exact_in.go: budget-constrained buys.
//   - recipient.go: fee recipient selection.
//   - token_calc.go: prices, impact and summaries.
//   - graduate.go: graduation progress.
//   - slippage.go: slippage bounds for instruction arguments.
//   - accounts.go, types.go: account layouts and decoding.
//   - config.go: program IDs and PDA helpers.
//
// Usage example:
//
//	supply := mintSupply
//	tokens, err := pumpfun.GetBuyTokenAmountFromSolAmount(pumpfun.QuoteParams{
//	    Global:     global,
//	    FeeConfig:  feeConfig,
//	    Curve:      pumpfun.ExistingCurve(*curve),
//	    MintSupply: &supply,
//	    Amount:     100_000_000, // 0.1 SOL
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
package pumpfun
