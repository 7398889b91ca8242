// internal/onchain/token.go
package onchain

import (
	"context"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// SPL Token layouts: mint supply follows the 36-byte COption<Pubkey> authority,
// a token account amount follows mint and owner.
const (
	mintSupplyOffset  = 36
	tokenAmountOffset = 64
	splFieldLength    = 8
)

func readU64At(data []byte, offset int) (uint64, error) {
	if len(data) < offset+splFieldLength {
		return 0, fmt.Errorf("token account too short: %d bytes", len(data))
	}
	return bin.NewBinDecoder(data[offset:]).ReadUint64(binary.LittleEndian)
}

// FetchMintSupply returns the current supply of mint, or nil if the mint does not exist yet.
func (p *Provider) FetchMintSupply(ctx context.Context, mint solana.PublicKey) (*uint64, error) {
	acc, err := p.fetchOptional(ctx, mint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mint: %w", err)
	}
	if acc == nil {
		return nil, nil
	}
	supply, err := readU64At(acc.Data, mintSupplyOffset)
	if err != nil {
		return nil, err
	}
	return &supply, nil
}

// GetTokenBalance returns the raw balance of user's associated token account, 0 if it does not exist.
func (p *Provider) GetTokenBalance(ctx context.Context, mint, user solana.PublicKey) (uint64, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(user, mint)
	if err != nil {
		return 0, err
	}
	acc, err := p.fetchOptional(ctx, ata)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch token account: %w", err)
	}
	if acc == nil {
		return 0, nil
	}
	return readU64At(acc.Data, tokenAmountOffset)
}
