// internal/app/format.go
package app

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

const (
	solDecimals   = 9
	tokenDecimals = 6
)

func fromRaw(v uint64, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), -decimals)
}

// FormatSOL prints lamports as SOL.
func FormatSOL(lamports uint64) string {
	return fromRaw(lamports, solDecimals).String() + " SOL"
}

// FormatTokens prints raw token units as whole tokens.
func FormatTokens(amount uint64) string {
	return fromRaw(amount, tokenDecimals).String()
}

// FormatMarketCap prints a 128-bit lamport market cap as SOL.
func FormatMarketCap(mc *uint256.Int) string {
	if mc == nil {
		return "0 SOL"
	}
	return decimal.NewFromBigInt(mc.ToBig(), -solDecimals).String() + " SOL"
}

// FormatBps prints basis points as a percentage.
func FormatBps(bps int64) string {
	return decimal.New(bps, -2).String() + "%"
}

// ParseAmount переводит человекочитаемое количество в целые единицы с decimals знаками.
func ParseAmount(s string, decimals int32) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("invalid amount %q: negative", s)
	}
	raw := d.Shift(decimals)
	if !raw.Equal(raw.Truncate(0)) {
		return 0, fmt.Errorf("invalid amount %q: more than %d decimals", s, decimals)
	}
	bi := raw.BigInt()
	if !bi.IsUint64() {
		return 0, fmt.Errorf("invalid amount %q: out of range", s)
	}
	return bi.Uint64(), nil
}
