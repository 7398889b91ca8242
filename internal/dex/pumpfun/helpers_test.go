package pumpfun

import (
	"github.com/gagliardetto/solana-go"
)

// Значения mainnet Global на момент написания тестов
const (
	testInitialVirtualTokens uint64 = 1_073_000_000_000_000
	testInitialVirtualSol    uint64 = 30_000_000_000
	testInitialRealTokens    uint64 = 793_100_000_000_000
	testTokenTotalSupply     uint64 = 1_000_000_000_000_000
)

var testCreator = solana.MustPublicKeyFromBase58("7VtfL8fvgNfhz17qKRMjzQEXgbdpnHHHQRh54R9jP2RJ")

func testGlobal() *Global {
	return &Global{
		Initialized:                 true,
		InitialVirtualTokenReserves: testInitialVirtualTokens,
		InitialVirtualSolReserves:   testInitialVirtualSol,
		InitialRealTokenReserves:    testInitialRealTokens,
		TokenTotalSupply:            testTokenTotalSupply,
		FeeBasisPoints:              95,
		CreatorFeeBasisPoints:       5,
	}
}

// testCurve returns the initial curve with the given creator.
func testCurve(creator solana.PublicKey) BondingCurve {
	bc := NewBondingCurve(testGlobal())
	bc.Creator = creator
	return bc
}

func supplyPtr(v uint64) *uint64 {
	return &v
}

// testTieredFeeConfig: A below 20 SOL market cap, B from 20 SOL, C from 50 SOL.
func testTieredFeeConfig() *FeeConfig {
	return &FeeConfig{
		FlatFees: Fees{ProtocolFeeBps: 1, CreatorFeeBps: 1},
		FeeTiers: []FeeTier{
			NewFeeTier(0, Fees{ProtocolFeeBps: 95, CreatorFeeBps: 30}),
			NewFeeTier(20_000_000_000, Fees{ProtocolFeeBps: 93, CreatorFeeBps: 30}),
			NewFeeTier(50_000_000_000, Fees{ProtocolFeeBps: 70, CreatorFeeBps: 20}),
		},
	}
}
