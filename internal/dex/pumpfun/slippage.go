// =============================
// File: internal/dex/pumpfun/slippage.go
// =============================
package pumpfun

import "math"

// slippageScale: slippage is applied in tenths of a percent, 1000 == 100%.
const slippageScale uint64 = 1000

// slippageTenths converts a percentage (1.0 = 1%) to whole tenths, rounding down.
// The float input is converted once, everything after is integer math.
func slippageTenths(slippagePercent float64) (uint64, error) {
	if math.IsNaN(slippagePercent) || math.IsInf(slippagePercent, 0) || slippagePercent < 0 {
		return 0, ErrInvalidSlippage
	}
	tenths := math.Floor(slippagePercent * 10)
	if tenths > float64(slippageScale) {
		return 0, ErrInvalidSlippage
	}
	return uint64(tenths), nil
}

// BuyAmountWithSlippage returns the max SOL cost for a buy: sol + sol*tenths/1000.
func BuyAmountWithSlippage(sol uint64, slippagePercent float64) (uint64, error) {
	tenths, err := slippageTenths(slippagePercent)
	if err != nil {
		return 0, err
	}
	extra, err := MulDiv(sol, tenths, slippageScale)
	if err != nil {
		return 0, err
	}
	return checkedAdd(sol, extra)
}

// SellAmountWithSlippage returns the min SOL output for a sell: sol - sol*tenths/1000.
func SellAmountWithSlippage(sol uint64, slippagePercent float64) (uint64, error) {
	tenths, err := slippageTenths(slippagePercent)
	if err != nil {
		return 0, err
	}
	cut, err := MulDiv(sol, tenths, slippageScale)
	if err != nil {
		return 0, err
	}
	return sol - cut, nil
}
