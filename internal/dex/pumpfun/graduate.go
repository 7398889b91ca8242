// ==============================================
// File: internal/dex/pumpfun/graduate.go
// ==============================================
package pumpfun

import (
	"github.com/gagliardetto/solana-go"
)

// GraduationProgress reports how far a curve is from migrating to the AMM.
// A curve graduates once all real tokens are sold.
type GraduationProgress struct {
	// ProgressBps is 0..10000.
	ProgressBps     uint64
	IsGraduated     bool
	TokensRemaining uint64
	TokensTotal     uint64
	SolAccumulated  uint64
}

// GetGraduationProgress computes progress as sold / initial real token reserves.
func GetGraduationProgress(global *Global, bc BondingCurve) GraduationProgress {
	if bc.Complete {
		return GraduationProgress{
			ProgressBps:    BasisPointsDenominator,
			IsGraduated:    true,
			TokensTotal:    global.InitialRealTokenReserves,
			SolAccumulated: bc.RealSolReserves,
		}
	}

	initialReal := global.InitialRealTokenReserves
	if initialReal == 0 {
		return GraduationProgress{}
	}

	var sold uint64
	if initialReal > bc.RealTokenReserves {
		sold = initialReal - bc.RealTokenReserves
	}
	// sold <= initialReal, результат не превышает 10000
	progress, _ := MulDiv(sold, BasisPointsDenominator, initialReal)

	return GraduationProgress{
		ProgressBps:     progress,
		TokensRemaining: bc.RealTokenReserves,
		TokensTotal:     initialReal,
		SolAccumulated:  bc.RealSolReserves,
	}
}

// RequirePoolForGraduated fails when a graduated curve is used without its AMM pool.
func RequirePoolForGraduated(mint solana.PublicKey, bc BondingCurve, pool *solana.PublicKey) error {
	if bc.Complete && (pool == nil || pool.IsZero()) {
		return &PoolRequiredForGraduatedError{Mint: mint.String()}
	}
	return nil
}
