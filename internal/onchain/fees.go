// =============================
// File: internal/onchain/fees.go
// =============================
package onchain

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/pump-sdk/internal/dex/pumpfun"
	"github.com/rovshanmuradov/pump-sdk/internal/feesharing"
)

// GetCreatorVaultBalance returns the withdrawable lamports of creator's vault
// in the bonding-curve program: balance above the rent-exempt minimum, 0 if absent.
func (p *Provider) GetCreatorVaultBalance(ctx context.Context, creator solana.PublicKey) (uint64, error) {
	vault, err := pumpfun.CreatorVaultPDA(creator)
	if err != nil {
		return 0, err
	}
	acc, err := p.fetchOptional(ctx, vault)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch creator vault: %w", err)
	}
	return p.rentExemptBalance(ctx, acc)
}

// ammCreatorVaultATA is the WSOL token account the AMM accrues creator fees into.
func ammCreatorVaultATA(creator solana.PublicKey) (solana.PublicKey, error) {
	authority, err := pumpfun.AmmCreatorVaultPDA(creator)
	if err != nil {
		return solana.PublicKey{}, err
	}
	ata, _, err := solana.FindAssociatedTokenAddress(authority, solana.WrappedSol)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive AMM creator vault ATA: %w", err)
	}
	return ata, nil
}

// GetAmmCreatorVaultBalance returns the WSOL amount accrued for creator in the AMM.
func (p *Provider) GetAmmCreatorVaultBalance(ctx context.Context, creator solana.PublicKey) (uint64, error) {
	ata, err := ammCreatorVaultATA(creator)
	if err != nil {
		return 0, err
	}
	acc, err := p.fetchOptional(ctx, ata)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch AMM creator vault: %w", err)
	}
	if acc == nil {
		return 0, nil
	}
	return readU64At(acc.Data, tokenAmountOffset)
}

// GetCreatorVaultBalanceBothPrograms sums creator fees pending in both programs.
func (p *Provider) GetCreatorVaultBalanceBothPrograms(ctx context.Context, creator solana.PublicKey) (uint64, error) {
	pump, err := p.GetCreatorVaultBalance(ctx, creator)
	if err != nil {
		return 0, err
	}
	amm, err := p.GetAmmCreatorVaultBalance(ctx, creator)
	if err != nil {
		return 0, err
	}
	total := pump + amm
	if total < pump {
		return 0, pumpfun.ErrOverflow
	}
	return total, nil
}

// FetchSharingConfig returns the fee sharing config of mint, or nil if none exists.
func (p *Provider) FetchSharingConfig(ctx context.Context, mint solana.PublicKey) (*feesharing.SharingConfig, error) {
	address, err := pumpfun.SharingConfigPDA(mint)
	if err != nil {
		return nil, err
	}
	acc, err := p.fetchOptional(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sharing config: %w", err)
	}
	if acc == nil {
		return nil, nil
	}
	return feesharing.DecodeSharingConfig(acc.Data)
}

// MinimumDistributableFeeResult is the distribution readiness of a shared-fee coin.
type MinimumDistributableFeeResult struct {
	pumpfun.MinimumDistributableFeeEvent
	IsGraduated bool
}

// MinimumDistributableFee reports whether the creator fees of mint can be
// distributed to its shareholders.
//
// The sharing config PDA is the coin creator, so its vaults hold the fees.
// For a graduated coin the AMM vault is counted too, as it is consolidated
// into the bonding-curve vault before distribution. The minimum is the
// rent-exempt balance of a system account.
func (p *Provider) MinimumDistributableFee(ctx context.Context, mint solana.PublicKey) (MinimumDistributableFeeResult, error) {
	sharingAddress, err := pumpfun.SharingConfigPDA(mint)
	if err != nil {
		return MinimumDistributableFeeResult{}, err
	}
	pool, err := pumpfun.CanonicalPoolPDA(mint)
	if err != nil {
		return MinimumDistributableFeeResult{}, err
	}
	ammVault, err := ammCreatorVaultATA(sharingAddress)
	if err != nil {
		return MinimumDistributableFeeResult{}, err
	}

	// Шаг 1: sharing config, пул и AMM vault одним запросом
	accs, err := p.src.GetMultipleAccounts(ctx, []solana.PublicKey{sharingAddress, pool, ammVault})
	if err != nil {
		return MinimumDistributableFeeResult{}, fmt.Errorf("failed to fetch sharing accounts: %w", err)
	}
	if accs[0] == nil {
		return MinimumDistributableFeeResult{}, &feesharing.SharingConfigNotFoundError{Mint: mint.String()}
	}
	cfg, err := feesharing.DecodeSharingConfig(accs[0].Data)
	if err != nil {
		return MinimumDistributableFeeResult{}, err
	}
	isGraduated := accs[1] != nil

	// Шаг 2: баланс vault в bonding-curve программе
	balance, err := p.GetCreatorVaultBalance(ctx, sharingAddress)
	if err != nil {
		return MinimumDistributableFeeResult{}, err
	}

	// Шаг 3: для мигрировавших монет добавляем WSOL из AMM
	if isGraduated && accs[2] != nil {
		amm, err := readU64At(accs[2].Data, tokenAmountOffset)
		if err != nil {
			return MinimumDistributableFeeResult{}, err
		}
		if balance+amm < balance {
			return MinimumDistributableFeeResult{}, pumpfun.ErrOverflow
		}
		balance += amm
	}

	minimum, err := p.src.GetMinimumBalanceForRentExemption(ctx, 0)
	if err != nil {
		return MinimumDistributableFeeResult{}, fmt.Errorf("failed to fetch rent exemption: %w", err)
	}

	ev, err := feesharing.MinimumDistributableFee(cfg, balance, minimum)
	if err != nil {
		return MinimumDistributableFeeResult{}, err
	}
	p.logger.WithMint(mint).Debug("Minimum distributable fee computed",
		zap.Uint64("distributable", ev.DistributableFees),
		zap.Bool("can_distribute", ev.CanDistribute),
		zap.Bool("graduated", isGraduated))
	return MinimumDistributableFeeResult{MinimumDistributableFeeEvent: ev, IsGraduated: isGraduated}, nil
}
