// =============================
// File: internal/feesharing/distribute.go
// =============================
package feesharing

import (
	"errors"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/pump-sdk/internal/dex/pumpfun"
)

// Payout is the amount one shareholder receives.
type Payout struct {
	Address solana.PublicKey
	Amount  uint64
}

// Distribution is the split of a creator vault balance.
// Remainder is the rounding dust that stays in the vault for the next run.
type Distribution struct {
	Payouts     []Payout
	Distributed uint64
	Remainder   uint64
}

// Distribute splits vaultBalance by share: floor(balance * shareBps / 10000).
func Distribute(cfg *SharingConfig, vaultBalance uint64) (Distribution, error) {
	if cfg == nil {
		return Distribution{}, &SharingConfigNotFoundError{}
	}
	if !cfg.IsActive() {
		return Distribution{}, ErrSharingPaused
	}
	if err := ValidateShareholders(cfg.Shareholders); err != nil {
		return Distribution{}, err
	}

	dist := Distribution{Payouts: make([]Payout, 0, len(cfg.Shareholders))}
	for _, sh := range cfg.Shareholders {
		amount, err := pumpfun.MulDiv(vaultBalance, uint64(sh.ShareBps), pumpfun.BasisPointsDenominator)
		if err != nil {
			if errors.Is(err, pumpfun.ErrOverflow) {
				return Distribution{}, &ShareCalculationOverflowError{}
			}
			return Distribution{}, err
		}
		dist.Payouts = append(dist.Payouts, Payout{Address: sh.Address, Amount: amount})
		dist.Distributed += amount
	}
	// Сумма долей равна 10000, поэтому Distributed <= vaultBalance
	dist.Remainder = vaultBalance - dist.Distributed
	return dist, nil
}

// MinimumDistributableFee reports whether the vault holds enough to run a
// distribution. minimumRequired comes from the fee program.
func MinimumDistributableFee(cfg *SharingConfig, vaultBalance, minimumRequired uint64) (pumpfun.MinimumDistributableFeeEvent, error) {
	ev := pumpfun.MinimumDistributableFeeEvent{
		MinimumRequired:   minimumRequired,
		DistributableFees: vaultBalance,
	}
	if cfg == nil {
		return ev, &SharingConfigNotFoundError{}
	}
	if err := ValidateShareholders(cfg.Shareholders); err != nil {
		return ev, err
	}
	ev.CanDistribute = cfg.IsActive() && vaultBalance > 0 && vaultBalance >= minimumRequired
	return ev, nil
}
