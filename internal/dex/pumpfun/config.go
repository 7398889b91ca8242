// =============================
// File: internal/dex/pumpfun/config.go
// =============================
package pumpfun

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Known Pump protocol addresses
var (
	// Program ID for the Pump bonding-curve program
	PumpProgramID = solana.MustPublicKeyFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")

	// Program ID for the Pump AMM (graduation target)
	PumpAmmProgramID = solana.MustPublicKeyFromBase58("pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA")

	// Program ID for the fee program (fee tiers and creator fee sharing)
	PumpFeeProgramID = solana.MustPublicKeyFromBase58("pfeeUxB6jkeY1Hxd7CsFCAjcbHA9rWtchMGdZ6VojVZ")

	// Program ID for the mayhem-mode program
	MayhemProgramID = solana.MustPublicKeyFromBase58("MAyhSmzXzV1pTf7LsNkrNwkWKTo4ougAJ1PPg47MD4e")

	// PUMP token mint used for volume incentives
	PumpTokenMint = solana.MustPublicKeyFromBase58("pumpCmXqMfrsAkQ5r49WcJnRayYRqmXz6ae8H7H9Dfn")

	// Event authority for the Pump program
	PumpEventAuthority = solana.MustPublicKeyFromBase58("Ce6TQqeHC9p8KetsN6JsjHK7UTZk7nasjjnr7XxXp9F1")
)

const (
	// BondingCurveNewSize is the size of a bonding curve account after the creator extension.
	BondingCurveNewSize = 151

	// MaxShareholders is the upper bound of a fee sharing table.
	MaxShareholders = 10

	// CanonicalPoolIndex is the index of the canonical AMM pool a curve migrates to.
	CanonicalPoolIndex uint16 = 0
)

// PDA seeds
const (
	SeedGlobal                  = "global"
	SeedBondingCurve            = "bonding-curve"
	SeedCreatorVault            = "creator-vault"
	SeedAmmCreatorVault         = "creator_vault"
	SeedGlobalVolumeAccumulator = "global_volume_accumulator"
	SeedUserVolumeAccumulator   = "user_volume_accumulator"
	SeedFeeConfig               = "fee_config"
	SeedSharingConfig           = "sharing-config"
	SeedPoolAuthority           = "pool-authority"
	SeedPool                    = "pool"
	SeedEventAuthority          = "__event_authority"
)

func findPDA(programID solana.PublicKey, what string, seeds ...[]byte) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(seeds, programID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive %s: %w", what, err)
	}
	return addr, nil
}

// GlobalPDA returns the address of the Pump Global account.
func GlobalPDA() (solana.PublicKey, error) {
	return findPDA(PumpProgramID, "global account", []byte(SeedGlobal))
}

// BondingCurvePDA returns the bonding curve address of a mint.
func BondingCurvePDA(mint solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(PumpProgramID, "bonding curve", []byte(SeedBondingCurve), mint.Bytes())
}

// CreatorVaultPDA returns the creator vault accruing a creator's bonding-curve fees.
func CreatorVaultPDA(creator solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(PumpProgramID, "creator vault", []byte(SeedCreatorVault), creator.Bytes())
}

// AmmCreatorVaultPDA returns the creator vault on the AMM side.
func AmmCreatorVaultPDA(creator solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(PumpAmmProgramID, "amm creator vault", []byte(SeedAmmCreatorVault), creator.Bytes())
}

// GlobalVolumeAccumulatorPDA returns the global volume accumulator of the Pump program.
func GlobalVolumeAccumulatorPDA() (solana.PublicKey, error) {
	return findPDA(PumpProgramID, "global volume accumulator", []byte(SeedGlobalVolumeAccumulator))
}

// AmmGlobalVolumeAccumulatorPDA returns the global volume accumulator of the AMM program.
func AmmGlobalVolumeAccumulatorPDA() (solana.PublicKey, error) {
	return findPDA(PumpAmmProgramID, "amm global volume accumulator", []byte(SeedGlobalVolumeAccumulator))
}

// UserVolumeAccumulatorPDA returns a user's volume accumulator of the Pump program.
func UserVolumeAccumulatorPDA(user solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(PumpProgramID, "user volume accumulator", []byte(SeedUserVolumeAccumulator), user.Bytes())
}

// AmmUserVolumeAccumulatorPDA returns a user's volume accumulator of the AMM program.
func AmmUserVolumeAccumulatorPDA(user solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(PumpAmmProgramID, "amm user volume accumulator", []byte(SeedUserVolumeAccumulator), user.Bytes())
}

// FeeConfigPDA returns the fee-tier config owned by the fee program for the Pump program.
func FeeConfigPDA() (solana.PublicKey, error) {
	return findPDA(PumpFeeProgramID, "fee config", []byte(SeedFeeConfig), PumpProgramID.Bytes())
}

// SharingConfigPDA returns the creator fee sharing config of a mint.
func SharingConfigPDA(mint solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(PumpFeeProgramID, "sharing config", []byte(SeedSharingConfig), mint.Bytes())
}

// PoolAuthorityPDA returns the authority that creates the canonical AMM pool of a mint.
func PoolAuthorityPDA(mint solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(PumpProgramID, "pool authority", []byte(SeedPoolAuthority), mint.Bytes())
}

// CanonicalPoolPDA returns the AMM pool a graduated mint trades in (quote mint is WSOL).
func CanonicalPoolPDA(mint solana.PublicKey) (solana.PublicKey, error) {
	authority, err := PoolAuthorityPDA(mint)
	if err != nil {
		return solana.PublicKey{}, err
	}
	index := make([]byte, 2)
	binary.LittleEndian.PutUint16(index, CanonicalPoolIndex)
	return findPDA(PumpAmmProgramID, "canonical pool",
		[]byte(SeedPool), index, authority.Bytes(), mint.Bytes(), solana.WrappedSol.Bytes())
}

// EventAuthorityPDA returns the Anchor event authority of a program.
func EventAuthorityPDA(programID solana.PublicKey) (solana.PublicKey, error) {
	return findPDA(programID, "event authority", []byte(SeedEventAuthority))
}
