package onchain

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/pump-sdk/internal/blockchain/solbc"
	"github.com/rovshanmuradov/pump-sdk/internal/dex/pumpfun"
	"github.com/rovshanmuradov/pump-sdk/internal/feesharing"
)

// fakeSource: источник аккаунтов в памяти, считает обращения к каждому адресу
type fakeSource struct {
	mu       sync.Mutex
	accounts map[solana.PublicKey]*solbc.Account
	calls    map[solana.PublicKey]int
	err      error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		accounts: make(map[solana.PublicKey]*solbc.Account),
		calls:    make(map[solana.PublicKey]int),
	}
}

func (f *fakeSource) put(address solana.PublicKey, lamports uint64, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[address] = &solbc.Account{Address: address, Lamports: lamports, Data: data}
}

func (f *fakeSource) callsTo(address solana.PublicKey) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[address]
}

func (f *fakeSource) GetAccountInfo(_ context.Context, pubkey solana.PublicKey) (*solbc.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[pubkey]++
	if f.err != nil {
		return nil, f.err
	}
	acc, ok := f.accounts[pubkey]
	if !ok {
		return nil, solbc.ErrAccountNotFound
	}
	return acc, nil
}

func (f *fakeSource) GetMultipleAccounts(_ context.Context, pubkeys []solana.PublicKey) ([]*solbc.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*solbc.Account, len(pubkeys))
	for i, pk := range pubkeys {
		f.calls[pk]++
		out[i] = f.accounts[pk]
	}
	return out, nil
}

// GetMinimumBalanceForRentExemption follows the mainnet rent formula.
func (f *fakeSource) GetMinimumBalanceForRentExemption(_ context.Context, dataSize uint64) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return (128 + dataSize) * 6_960, nil
}

var errNodeDown = errors.New("node down")

const rentZeroData uint64 = 890_880

// Значения mainnet Global
func testGlobal() *pumpfun.Global {
	return &pumpfun.Global{
		Initialized:                 true,
		InitialVirtualTokenReserves: 1_073_000_000_000_000,
		InitialVirtualSolReserves:   30_000_000_000,
		InitialRealTokenReserves:    793_100_000_000_000,
		TokenTotalSupply:            1_000_000_000_000_000,
		FeeBasisPoints:              95,
		CreatorFeeBasisPoints:       5,
	}
}

// borsh собирает данные аккаунта поле за полем
type borsh struct {
	buf []byte
}

func newBorsh(account string) *borsh {
	d := pumpfun.AccountDiscriminator(account)
	return &borsh{buf: append([]byte{}, d[:]...)}
}

func (b *borsh) bool(v bool) *borsh {
	if v {
		b.buf = append(b.buf, 1)
	} else {
		b.buf = append(b.buf, 0)
	}
	return b
}

func (b *borsh) u8(v uint8) *borsh {
	b.buf = append(b.buf, v)
	return b
}

func (b *borsh) u16(v uint16) *borsh {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
	return b
}

func (b *borsh) u32(v uint32) *borsh {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
	return b
}

func (b *borsh) u64(v uint64) *borsh {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, v)
	return b
}

func (b *borsh) i64(v int64) *borsh {
	return b.u64(uint64(v))
}

func (b *borsh) key(k solana.PublicKey) *borsh {
	b.buf = append(b.buf, k.Bytes()...)
	return b
}

func (b *borsh) keys(n int) *borsh {
	for i := 0; i < n; i++ {
		b.key(solana.PublicKey{})
	}
	return b
}

func encodeGlobal(g *pumpfun.Global) []byte {
	b := newBorsh(pumpfun.AccountGlobal).
		bool(g.Initialized).key(g.Authority).key(g.FeeRecipient).
		u64(g.InitialVirtualTokenReserves).u64(g.InitialVirtualSolReserves).
		u64(g.InitialRealTokenReserves).u64(g.TokenTotalSupply).u64(g.FeeBasisPoints).
		key(g.WithdrawAuthority).bool(g.EnableMigrate).u64(g.PoolMigrationFee).u64(g.CreatorFeeBasisPoints).
		keys(pumpfun.FeeRecipientSlots).
		key(g.SetCreatorAuthority).key(g.AdminSetCreatorAuthority).bool(g.CreateV2Enabled).
		key(g.WhitelistPDA).key(g.ReservedFeeRecipient).bool(g.MayhemModeEnabled).
		keys(pumpfun.FeeRecipientSlots)
	return b.buf
}

func encodeBondingCurve(bc pumpfun.BondingCurve) []byte {
	return newBorsh(pumpfun.AccountBondingCurve).
		u64(bc.VirtualTokenReserves).u64(bc.VirtualSolReserves).
		u64(bc.RealTokenReserves).u64(bc.RealSolReserves).
		u64(bc.TokenTotalSupply).bool(bc.Complete).
		key(bc.Creator).bool(bc.IsMayhemMode).bool(bc.IsCashbackCoin).buf
}

func encodeFeeConfig(fc *pumpfun.FeeConfig) []byte {
	b := newBorsh(pumpfun.AccountFeeConfig).u8(fc.Bump).key(fc.Admin).
		u64(fc.FlatFees.LpFeeBps).u64(fc.FlatFees.ProtocolFeeBps).u64(fc.FlatFees.CreatorFeeBps).
		u32(uint32(len(fc.FeeTiers)))
	for _, tier := range fc.FeeTiers {
		b.u64(tier.MarketCapLamportsThreshold.Lo).u64(tier.MarketCapLamportsThreshold.Hi).
			u64(tier.Fees.LpFeeBps).u64(tier.Fees.ProtocolFeeBps).u64(tier.Fees.CreatorFeeBps)
	}
	return b.buf
}

func encodeSharingConfig(mint solana.PublicKey, status feesharing.ConfigStatus, shareholders []feesharing.Shareholder) []byte {
	b := newBorsh(pumpfun.AccountSharingConfig).u8(255).u8(1).u8(uint8(status)).
		key(mint).key(solana.PublicKey{}).bool(false).u32(uint32(len(shareholders)))
	for _, sh := range shareholders {
		b.key(sh.Address).u16(sh.ShareBps)
	}
	return b.buf
}

func encodeGlobalAccumulator(acc *pumpfun.GlobalVolumeAccumulator) []byte {
	b := newBorsh(pumpfun.AccountGlobalVolumeAccumulator).
		i64(acc.StartTime).i64(acc.EndTime).i64(acc.SecondsInADay).key(acc.Mint)
	for _, v := range acc.TotalTokenSupply {
		b.u64(v)
	}
	for _, v := range acc.SolVolumes {
		b.u64(v)
	}
	return b.buf
}

func encodeUserAccumulator(acc *pumpfun.UserVolumeAccumulator) []byte {
	return newBorsh(pumpfun.AccountUserVolumeAccumulator).
		key(acc.User).bool(acc.NeedsClaim).u64(acc.TotalUnclaimedTokens).
		u64(acc.TotalClaimedTokens).u64(acc.CurrentSolVolume).i64(acc.LastUpdateTimestamp).buf
}

// splMint returns an 82-byte SPL mint with the given supply.
func splMint(supply uint64) []byte {
	data := make([]byte, 82)
	binary.LittleEndian.PutUint64(data[36:], supply)
	data[44] = 6
	data[45] = 1
	return data
}

// splTokenAccount returns a 165-byte SPL token account holding amount.
func splTokenAccount(mint, owner solana.PublicKey, amount uint64) []byte {
	data := make([]byte, 165)
	copy(data[0:], mint.Bytes())
	copy(data[32:], owner.Bytes())
	binary.LittleEndian.PutUint64(data[64:], amount)
	return data
}
