// =============================
// File: internal/dex/pumpfun/errors.go
// =============================
package pumpfun

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero возникает, когда знаменатель формулы равен нулю
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow возникает, когда результат не помещается в u64 (или вычитание уходит ниже нуля)
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrCurveComplete возникает при попытке котировки по завершённой bonding curve
	ErrCurveComplete = errors.New("bonding curve is complete, trading moved to the AMM pool")

	// ErrInvalidDiscriminator возникает, если первые 8 байт аккаунта не совпадают с ожидаемыми
	ErrInvalidDiscriminator = errors.New("invalid account discriminator")

	// ErrInvalidSlippage возникает при отрицательном или слишком большом проскальзывании
	ErrInvalidSlippage = errors.New("invalid slippage")

	// ErrNilGlobal возникает, если Global не передан в расчёт
	ErrNilGlobal = errors.New("global config is required")
)

// PoolRequiredForGraduatedError is returned when an operation needs the AMM pool
// of a graduated coin and none was supplied.
type PoolRequiredForGraduatedError struct {
	Mint string
}

func (e *PoolRequiredForGraduatedError) Error() string {
	if e.Mint == "" {
		return "Pool parameter is required for graduated coins (bondingCurve.complete = true)"
	}
	return fmt.Sprintf("Pool parameter is required for graduated coins (bondingCurve.complete = true): mint %s", e.Mint)
}

// AccountDecodeError wraps a failure to decode a named on-chain account.
type AccountDecodeError struct {
	Account string
	Err     error
}

func (e *AccountDecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s account: %v", e.Account, e.Err)
}

func (e *AccountDecodeError) Unwrap() error {
	return e.Err
}
