// =============================
// File: internal/dex/pumpfun/accounts.go
// =============================
package pumpfun

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Anchor account names used to derive discriminators
const (
	AccountGlobal                  = "Global"
	AccountBondingCurve            = "BondingCurve"
	AccountFeeConfig               = "FeeConfig"
	AccountSharingConfig           = "SharingConfig"
	AccountGlobalVolumeAccumulator = "GlobalVolumeAccumulator"
	AccountUserVolumeAccumulator   = "UserVolumeAccumulator"
)

// DiscriminatorSize is the length of the Anchor account prefix.
const DiscriminatorSize = 8

// AccountDiscriminator returns sha256("account:<name>")[:8].
func AccountDiscriminator(name string) [DiscriminatorSize]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var out [DiscriminatorSize]byte
	copy(out[:], sum[:DiscriminatorSize])
	return out
}

// NewAccountReader checks the discriminator of data and returns a reader
// positioned right after it.
func NewAccountReader(name string, data []byte) (*AccountReader, error) {
	if len(data) < DiscriminatorSize {
		return nil, &AccountDecodeError{Account: name, Err: fmt.Errorf("data too short: %d bytes", len(data))}
	}
	want := AccountDiscriminator(name)
	if !bytes.Equal(data[:DiscriminatorSize], want[:]) {
		return nil, &AccountDecodeError{Account: name, Err: ErrInvalidDiscriminator}
	}
	return &AccountReader{name: name, dec: bin.NewBorshDecoder(data[DiscriminatorSize:])}, nil
}

// AccountReader reads borsh fields in order and keeps the first error.
type AccountReader struct {
	name string
	dec  *bin.Decoder
	err  error
}

// Err returns the first read error wrapped as AccountDecodeError.
func (r *AccountReader) Err() error {
	if r.err == nil {
		return nil
	}
	return &AccountDecodeError{Account: r.name, Err: r.err}
}

// Remaining reports how many bytes are left.
func (r *AccountReader) Remaining() int {
	if r.err != nil {
		return 0
	}
	return r.dec.Remaining()
}

func (r *AccountReader) Bool() bool {
	if r.err != nil {
		return false
	}
	v, err := r.dec.ReadBool()
	r.err = err
	return v
}

func (r *AccountReader) U8() uint8 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadUint8()
	r.err = err
	return v
}

func (r *AccountReader) U16() uint16 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadUint16(binary.LittleEndian)
	r.err = err
	return v
}

func (r *AccountReader) U32() uint32 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadUint32(binary.LittleEndian)
	r.err = err
	return v
}

func (r *AccountReader) U64() uint64 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadUint64(binary.LittleEndian)
	r.err = err
	return v
}

func (r *AccountReader) I64() int64 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadInt64(binary.LittleEndian)
	r.err = err
	return v
}

func (r *AccountReader) U128() bin.Uint128 {
	if r.err != nil {
		return bin.Uint128{}
	}
	v, err := r.dec.ReadUint128(binary.LittleEndian)
	r.err = err
	return v
}

func (r *AccountReader) PublicKey() solana.PublicKey {
	if r.err != nil {
		return solana.PublicKey{}
	}
	b, err := r.dec.ReadNBytes(solana.PublicKeyLength)
	if err != nil {
		r.err = err
		return solana.PublicKey{}
	}
	return solana.PublicKeyFromBytes(b)
}

// Len reads a borsh vector length and rejects values above max.
func (r *AccountReader) Len(max int) int {
	n := r.U32()
	if r.err == nil && int(n) > max {
		r.err = fmt.Errorf("vector length %d exceeds %d", n, max)
		return 0
	}
	return int(n)
}

func (r *AccountReader) fees() Fees {
	return Fees{
		LpFeeBps:       r.U64(),
		ProtocolFeeBps: r.U64(),
		CreatorFeeBps:  r.U64(),
	}
}

// DecodeGlobal decodes the Pump Global account.
func DecodeGlobal(data []byte) (*Global, error) {
	r, err := NewAccountReader(AccountGlobal, data)
	if err != nil {
		return nil, err
	}

	g := &Global{}
	g.Initialized = r.Bool()
	g.Authority = r.PublicKey()
	g.FeeRecipient = r.PublicKey()
	g.InitialVirtualTokenReserves = r.U64()
	g.InitialVirtualSolReserves = r.U64()
	g.InitialRealTokenReserves = r.U64()
	g.TokenTotalSupply = r.U64()
	g.FeeBasisPoints = r.U64()
	g.WithdrawAuthority = r.PublicKey()
	g.EnableMigrate = r.Bool()
	g.PoolMigrationFee = r.U64()
	g.CreatorFeeBasisPoints = r.U64()
	for i := range g.FeeRecipients {
		g.FeeRecipients[i] = r.PublicKey()
	}
	g.SetCreatorAuthority = r.PublicKey()
	g.AdminSetCreatorAuthority = r.PublicKey()
	g.CreateV2Enabled = r.Bool()
	g.WhitelistPDA = r.PublicKey()
	g.ReservedFeeRecipient = r.PublicKey()
	g.MayhemModeEnabled = r.Bool()
	for i := range g.ReservedFeeRecipients {
		g.ReservedFeeRecipients[i] = r.PublicKey()
	}
	// Флаг cashback добавлен позже, старые аккаунты его не содержат
	if r.Remaining() > 0 {
		g.CashbackEnabled = r.Bool()
	}

	if err := r.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// DecodeBondingCurve decodes a bonding curve account. Accounts created before
// the creator extension are shorter; missing trailing fields keep zero values.
func DecodeBondingCurve(data []byte) (*BondingCurve, error) {
	r, err := NewAccountReader(AccountBondingCurve, data)
	if err != nil {
		return nil, err
	}

	bc := &BondingCurve{}
	bc.VirtualTokenReserves = r.U64()
	bc.VirtualSolReserves = r.U64()
	bc.RealTokenReserves = r.U64()
	bc.RealSolReserves = r.U64()
	bc.TokenTotalSupply = r.U64()
	bc.Complete = r.Bool()
	if r.Remaining() >= solana.PublicKeyLength {
		bc.Creator = r.PublicKey()
	}
	if r.Remaining() > 0 {
		bc.IsMayhemMode = r.Bool()
	}
	if r.Remaining() > 0 {
		bc.IsCashbackCoin = r.Bool()
	}

	if err := r.Err(); err != nil {
		return nil, err
	}
	return bc, nil
}

// maxFeeTiers bounds the tier vector so corrupted data cannot force a large allocation.
const maxFeeTiers = 64

// DecodeFeeConfig decodes the fee program's FeeConfig account.
func DecodeFeeConfig(data []byte) (*FeeConfig, error) {
	r, err := NewAccountReader(AccountFeeConfig, data)
	if err != nil {
		return nil, err
	}

	fc := &FeeConfig{}
	fc.Bump = r.U8()
	fc.Admin = r.PublicKey()
	fc.FlatFees = r.fees()
	n := r.Len(maxFeeTiers)
	fc.FeeTiers = make([]FeeTier, 0, n)
	for i := 0; i < n && r.err == nil; i++ {
		fc.FeeTiers = append(fc.FeeTiers, FeeTier{
			MarketCapLamportsThreshold: r.U128(),
			Fees:                       r.fees(),
		})
	}

	if err := r.Err(); err != nil {
		return nil, err
	}
	return fc, nil
}

// DecodeGlobalVolumeAccumulator decodes the incentive program's global window.
func DecodeGlobalVolumeAccumulator(data []byte) (*GlobalVolumeAccumulator, error) {
	r, err := NewAccountReader(AccountGlobalVolumeAccumulator, data)
	if err != nil {
		return nil, err
	}

	acc := &GlobalVolumeAccumulator{}
	acc.StartTime = r.I64()
	acc.EndTime = r.I64()
	acc.SecondsInADay = r.I64()
	acc.Mint = r.PublicKey()
	for i := range acc.TotalTokenSupply {
		acc.TotalTokenSupply[i] = r.U64()
	}
	for i := range acc.SolVolumes {
		acc.SolVolumes[i] = r.U64()
	}

	if err := r.Err(); err != nil {
		return nil, err
	}
	return acc, nil
}

// DecodeUserVolumeAccumulator decodes a user's volume accumulator.
func DecodeUserVolumeAccumulator(data []byte) (*UserVolumeAccumulator, error) {
	r, err := NewAccountReader(AccountUserVolumeAccumulator, data)
	if err != nil {
		return nil, err
	}

	acc := &UserVolumeAccumulator{}
	acc.User = r.PublicKey()
	acc.NeedsClaim = r.Bool()
	acc.TotalUnclaimedTokens = r.U64()
	acc.TotalClaimedTokens = r.U64()
	acc.CurrentSolVolume = r.U64()
	acc.LastUpdateTimestamp = r.I64()

	if err := r.Err(); err != nil {
		return nil, err
	}
	return acc, nil
}

// DecodeMinimumDistributableFee decodes the return data of the
// getMinimumDistributableFee instruction (no discriminator).
func DecodeMinimumDistributableFee(data []byte) (*MinimumDistributableFeeEvent, error) {
	r := &AccountReader{name: "MinimumDistributableFeeEvent", dec: bin.NewBorshDecoder(data)}
	ev := &MinimumDistributableFeeEvent{
		MinimumRequired:   r.U64(),
		DistributableFees: r.U64(),
		CanDistribute:     r.Bool(),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return ev, nil
}
