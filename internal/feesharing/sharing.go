// =============================
// File: internal/feesharing/sharing.go
// =============================
package feesharing

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/rovshanmuradov/pump-sdk/internal/dex/pumpfun"
)

// ConfigStatus is the on-chain status enum of a sharing config.
type ConfigStatus uint8

const (
	ConfigStatusPaused ConfigStatus = iota
	ConfigStatusActive
)

func (s ConfigStatus) String() string {
	switch s {
	case ConfigStatusPaused:
		return "paused"
	case ConfigStatusActive:
		return "active"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Shareholder is one entry of the creator fee split.
type Shareholder struct {
	Address  solana.PublicKey
	ShareBps uint16
}

// SharingConfig is the fee program account that splits a coin's creator fees.
type SharingConfig struct {
	Bump         uint8
	Version      uint8
	Status       ConfigStatus
	Mint         solana.PublicKey
	Admin        solana.PublicKey
	AdminRevoked bool
	Shareholders []Shareholder
}

// IsActive reports whether fees can be distributed.
func (c *SharingConfig) IsActive() bool {
	return c.Status == ConfigStatusActive
}

// DecodeSharingConfig decodes a SharingConfig account.
func DecodeSharingConfig(data []byte) (*SharingConfig, error) {
	r, err := pumpfun.NewAccountReader(pumpfun.AccountSharingConfig, data)
	if err != nil {
		return nil, err
	}

	cfg := &SharingConfig{}
	cfg.Bump = r.U8()
	cfg.Version = r.U8()
	cfg.Status = ConfigStatus(r.U8())
	cfg.Mint = r.PublicKey()
	cfg.Admin = r.PublicKey()
	cfg.AdminRevoked = r.Bool()
	// Аккаунт может хранить больше записей, чем разрешено при обновлении
	n := r.Len(4 * pumpfun.MaxShareholders)
	cfg.Shareholders = make([]Shareholder, 0, n)
	for i := 0; i < n; i++ {
		sh := Shareholder{Address: r.PublicKey(), ShareBps: r.U16()}
		if r.Err() != nil {
			break
		}
		cfg.Shareholders = append(cfg.Shareholders, sh)
	}

	if err := r.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsCreatorUsingSharingConfig reports whether creator fees of mint are routed
// through its sharing config, i.e. the curve or pool creator is the config PDA.
func IsCreatorUsingSharingConfig(mint, creator solana.PublicKey) (bool, error) {
	pda, err := pumpfun.SharingConfigPDA(mint)
	if err != nil {
		return false, err
	}
	return pda.Equals(creator), nil
}
