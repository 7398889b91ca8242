// =============================
// File: internal/feesharing/validate.go
// =============================
package feesharing

import (
	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/pump-sdk/internal/dex/pumpfun"
)

// ValidateShareholders checks a new shareholder table. The whole table is
// checked before anything is returned, no partial result exists.
func ValidateShareholders(shareholders []Shareholder) error {
	if len(shareholders) == 0 {
		return &NoShareholdersError{}
	}
	if len(shareholders) > pumpfun.MaxShareholders {
		return &TooManyShareholdersError{Count: len(shareholders), Max: pumpfun.MaxShareholders}
	}

	var total uint64
	seen := make(map[solana.PublicKey]struct{}, len(shareholders))
	var duplicate *solana.PublicKey
	for i := range shareholders {
		sh := shareholders[i]
		if sh.ShareBps == 0 {
			return &ZeroShareError{Address: sh.Address.String()}
		}
		// Сумма копится в uint64, переполнение u16 отлавливает проверка total ниже
		total += uint64(sh.ShareBps)
		if _, ok := seen[sh.Address]; ok && duplicate == nil {
			duplicate = &shareholders[i].Address
		}
		seen[sh.Address] = struct{}{}
	}

	if total != pumpfun.BasisPointsDenominator {
		return &InvalidShareTotalError{Total: total}
	}
	if duplicate != nil {
		return &DuplicateShareholderError{Address: duplicate.String()}
	}
	return nil
}

// UpdateFeeShares returns a copy of current with the shareholder table
// replaced by next. current is never modified.
func UpdateFeeShares(current *SharingConfig, next []Shareholder) (*SharingConfig, error) {
	if err := ValidateShareholders(next); err != nil {
		return nil, err
	}

	updated := &SharingConfig{}
	if current != nil {
		*updated = *current
	}
	updated.Shareholders = append([]Shareholder(nil), next...)
	return updated, nil
}
