// =============================
// File: internal/dex/pumpfun/math.go
// =============================
package pumpfun

import (
	"math/bits"

	"github.com/holiman/uint256"
)

// BasisPointsDenominator is 100% expressed in basis points.
const BasisPointsDenominator uint64 = 10_000

func u256(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

// CeilDiv returns ⌈a/b⌉ computed as (a + b - 1) / b.
func CeilDiv(a, b *uint256.Int) (*uint256.Int, error) {
	if b.IsZero() {
		return nil, ErrDivisionByZero
	}
	n, overflow := new(uint256.Int).AddOverflow(a, new(uint256.Int).SubUint64(b, 1))
	if overflow {
		return nil, ErrOverflow
	}
	return n.Div(n, b), nil
}

// ApplyFeeBps returns ceilDiv(amount*bps, 10000). The product is formed in
// 256-bit width so it cannot wrap.
func ApplyFeeBps(amount, bps uint64) (uint64, error) {
	product := new(uint256.Int).Mul(u256(amount), u256(bps))
	fee, err := CeilDiv(product, u256(BasisPointsDenominator))
	if err != nil {
		return 0, err
	}
	return toUint64(fee)
}

// MulDiv returns floor(a*b/c).
func MulDiv(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, ErrDivisionByZero
	}
	q := new(uint256.Int).Mul(u256(a), u256(b))
	return toUint64(q.Div(q, u256(c)))
}

// MulDivCeil returns ⌈a*b/c⌉.
func MulDivCeil(a, b, c uint64) (uint64, error) {
	q, err := CeilDiv(new(uint256.Int).Mul(u256(a), u256(b)), u256(c))
	if err != nil {
		return 0, err
	}
	return toUint64(q)
}

func toUint64(v *uint256.Int) (uint64, error) {
	if !v.IsUint64() {
		return 0, ErrOverflow
	}
	return v.Uint64(), nil
}

func checkedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

func checkedSub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, ErrOverflow
	}
	return diff, nil
}
