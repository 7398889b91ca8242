// internal/onchain/incentives.go
package onchain

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/pump-sdk/internal/dex/pumpfun"
	"github.com/rovshanmuradov/pump-sdk/internal/incentives"
)

type pdaPair struct {
	global func() (solana.PublicKey, error)
	user   func(solana.PublicKey) (solana.PublicKey, error)
}

var (
	pumpAccumulators = pdaPair{global: pumpfun.GlobalVolumeAccumulatorPDA, user: pumpfun.UserVolumeAccumulatorPDA}
	ammAccumulators  = pdaPair{global: pumpfun.AmmGlobalVolumeAccumulatorPDA, user: pumpfun.AmmUserVolumeAccumulatorPDA}
)

func (p *Provider) fetchAccumulators(ctx context.Context, pdas pdaPair, user solana.PublicKey) (incentives.ProgramAccounts, error) {
	globalAddress, err := pdas.global()
	if err != nil {
		return incentives.ProgramAccounts{}, err
	}
	userAddress, err := pdas.user(user)
	if err != nil {
		return incentives.ProgramAccounts{}, err
	}

	accs, err := p.src.GetMultipleAccounts(ctx, []solana.PublicKey{globalAddress, userAddress})
	if err != nil {
		return incentives.ProgramAccounts{}, fmt.Errorf("failed to fetch volume accumulators: %w", err)
	}

	var out incentives.ProgramAccounts
	if accs[0] != nil {
		if out.Global, err = pumpfun.DecodeGlobalVolumeAccumulator(accs[0].Data); err != nil {
			return incentives.ProgramAccounts{}, err
		}
	}
	if accs[1] != nil {
		if out.User, err = pumpfun.DecodeUserVolumeAccumulator(accs[1].Data); err != nil {
			return incentives.ProgramAccounts{}, err
		}
	}
	return out, nil
}

// FetchVolumeAccumulators returns the bonding-curve program accumulators of user.
// Missing accounts are nil.
func (p *Provider) FetchVolumeAccumulators(ctx context.Context, user solana.PublicKey) (incentives.ProgramAccounts, error) {
	return p.fetchAccumulators(ctx, pumpAccumulators, user)
}

// FetchAmmVolumeAccumulators returns the AMM program accumulators of user.
func (p *Provider) FetchAmmVolumeAccumulators(ctx context.Context, user solana.PublicKey) (incentives.ProgramAccounts, error) {
	return p.fetchAccumulators(ctx, ammAccumulators, user)
}

func (p *Provider) bothAccumulators(ctx context.Context, user solana.PublicKey) (incentives.ProgramAccounts, incentives.ProgramAccounts, error) {
	pump, err := p.FetchVolumeAccumulators(ctx, user)
	if err != nil {
		return incentives.ProgramAccounts{}, incentives.ProgramAccounts{}, err
	}
	amm, err := p.FetchAmmVolumeAccumulators(ctx, user)
	if err != nil {
		return incentives.ProgramAccounts{}, incentives.ProgramAccounts{}, err
	}
	return pump, amm, nil
}

// GetTotalUnclaimedTokens returns PUMP tokens user can claim from the bonding-curve program.
func (p *Provider) GetTotalUnclaimedTokens(ctx context.Context, user solana.PublicKey) (uint64, error) {
	accs, err := p.FetchVolumeAccumulators(ctx, user)
	if err != nil {
		return 0, err
	}
	return p.calc.Unclaimed(accs)
}

// GetTotalUnclaimedTokensBothPrograms sums claimable tokens of both programs.
func (p *Provider) GetTotalUnclaimedTokensBothPrograms(ctx context.Context, user solana.PublicKey) (uint64, error) {
	pump, amm, err := p.bothAccumulators(ctx, user)
	if err != nil {
		return 0, err
	}
	return p.calc.Unclaimed(pump, amm)
}

// GetCurrentDayTokens returns tokens user has earned so far today in the bonding-curve program.
func (p *Provider) GetCurrentDayTokens(ctx context.Context, user solana.PublicKey) (uint64, error) {
	accs, err := p.FetchVolumeAccumulators(ctx, user)
	if err != nil {
		return 0, err
	}
	return p.calc.CurrentDay(accs)
}

// GetCurrentDayTokensBothPrograms sums today's tokens of both programs.
func (p *Provider) GetCurrentDayTokensBothPrograms(ctx context.Context, user solana.PublicKey) (uint64, error) {
	pump, amm, err := p.bothAccumulators(ctx, user)
	if err != nil {
		return 0, err
	}
	return p.calc.CurrentDay(pump, amm)
}

// FetchUserVolumeTotalStats sums the stored volume ledgers of both programs.
func (p *Provider) FetchUserVolumeTotalStats(ctx context.Context, user solana.PublicKey) (incentives.UserStats, error) {
	pump, amm, err := p.bothAccumulators(ctx, user)
	if err != nil {
		return incentives.UserStats{}, err
	}
	return incentives.TotalStats(pump.User, amm.User)
}
