// =============================
// File: internal/dex/pumpfun/types.go
// =============================
package pumpfun

import (
	"encoding/binary"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/holiman/uint256"
)

// FeeRecipientSlots is the number of alternate fee recipients stored in Global.
const FeeRecipientSlots = 7

// Global represents the protocol-wide Pump configuration account.
type Global struct {
	Initialized                 bool
	Authority                   solana.PublicKey
	FeeRecipient                solana.PublicKey
	InitialVirtualTokenReserves uint64
	InitialVirtualSolReserves   uint64
	InitialRealTokenReserves    uint64
	TokenTotalSupply            uint64
	FeeBasisPoints              uint64
	WithdrawAuthority           solana.PublicKey
	EnableMigrate               bool
	PoolMigrationFee            uint64
	CreatorFeeBasisPoints       uint64
	FeeRecipients               [FeeRecipientSlots]solana.PublicKey
	SetCreatorAuthority         solana.PublicKey
	AdminSetCreatorAuthority    solana.PublicKey
	CreateV2Enabled             bool
	WhitelistPDA                solana.PublicKey
	ReservedFeeRecipient        solana.PublicKey
	MayhemModeEnabled           bool
	ReservedFeeRecipients       [FeeRecipientSlots]solana.PublicKey
	CashbackEnabled             bool
}

// BondingCurve is the per-mint curve state.
type BondingCurve struct {
	VirtualTokenReserves uint64
	VirtualSolReserves   uint64
	RealTokenReserves    uint64
	RealSolReserves      uint64
	TokenTotalSupply     uint64
	Complete             bool
	// Creator is the zero key when unset.
	Creator        solana.PublicKey
	IsMayhemMode   bool
	IsCashbackCoin bool
}

// HasCreator reports whether a creator has been set on the curve.
func (bc BondingCurve) HasCreator() bool {
	return !bc.Creator.IsZero()
}

// Fees is a fee triple in basis points.
type Fees struct {
	LpFeeBps       uint64
	ProtocolFeeBps uint64
	CreatorFeeBps  uint64
}

// FeeTier applies Fees from MarketCapLamportsThreshold upwards.
type FeeTier struct {
	MarketCapLamportsThreshold bin.Uint128
	Fees                       Fees
}

// Threshold returns the tier threshold as a 256-bit integer.
func (t FeeTier) Threshold() *uint256.Int {
	return &uint256.Int{t.MarketCapLamportsThreshold.Lo, t.MarketCapLamportsThreshold.Hi, 0, 0}
}

// NewFeeTier builds a tier whose threshold fits in 64 bits.
func NewFeeTier(threshold uint64, fees Fees) FeeTier {
	return FeeTier{
		MarketCapLamportsThreshold: bin.Uint128{Lo: threshold, Endianness: binary.LittleEndian},
		Fees:                       fees,
	}
}

// FeeConfig is the fee program's tier table for the Pump program.
// FeeTiers are sorted ascending by threshold.
type FeeConfig struct {
	Bump     uint8
	Admin    solana.PublicKey
	FlatFees Fees
	FeeTiers []FeeTier
}

// GlobalVolumeAccumulator keeps the per-day volume window of the incentive program.
type GlobalVolumeAccumulator struct {
	StartTime        int64
	EndTime          int64
	SecondsInADay    int64
	Mint             solana.PublicKey
	TotalTokenSupply [VolumeWindowDays]uint64
	SolVolumes       [VolumeWindowDays]uint64
}

// VolumeWindowDays is the length of the incentive day window.
const VolumeWindowDays = 30

// UserVolumeAccumulator keeps a user's trading volume and incentive balances.
type UserVolumeAccumulator struct {
	User                 solana.PublicKey
	NeedsClaim           bool
	TotalUnclaimedTokens uint64
	TotalClaimedTokens   uint64
	CurrentSolVolume     uint64
	LastUpdateTimestamp  int64
}

// MinimumDistributableFeeEvent is the return data of the minimum distributable fee instruction.
type MinimumDistributableFeeEvent struct {
	MinimumRequired   uint64
	DistributableFees uint64
	CanDistribute     bool
}
