// =============================
// File: internal/dex/pumpfun/recipient.go
// =============================
package pumpfun

import (
	"math/rand/v2"

	"github.com/gagliardetto/solana-go"
)

// IndexSource picks an index in [0, n).
type IndexSource interface {
	IntN(n int) int
}

// NewIndexSource returns a PCG-backed source. Equal seeds give equal sequences.
func NewIndexSource(seed1, seed2 uint64) IndexSource {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// defaultSource uses the runtime-seeded global generator.
type defaultSource struct{}

func (defaultSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultIndexSource is the production source.
var DefaultIndexSource IndexSource = defaultSource{}

// CurrentFeeRecipients is the static fee recipient set, used when Global is not at hand.
var CurrentFeeRecipients = []solana.PublicKey{
	solana.MustPublicKeyFromBase58("62qc2CNXwrYqQScmEdiZFFAnJR262PxWEuNQtxfafNgV"),
	solana.MustPublicKeyFromBase58("7VtfL8fvgNfhz17qKRMjzQEXgbdpnHHHQRh54R9jP2RJ"),
	solana.MustPublicKeyFromBase58("7hTckgnGnLQR6sdH7YkqFTAA7VwTfYFaZ6EhEsU3saCX"),
	solana.MustPublicKeyFromBase58("9rPYyANsfQZw3DnDmKE3YCQF5E8oD89UXoHn9JFEhJUz"),
	solana.MustPublicKeyFromBase58("AVmoTthdrX6tKt4nDjco2D775W2YK3sDhxPcMmzUAmTY"),
	solana.MustPublicKeyFromBase58("CebN5WGQ4jvEPvsVU4EoHEpgzq1VV7AbicfhtW4xC9iM"),
	solana.MustPublicKeyFromBase58("FWsW1xNtWscwNmKv6wVsU1iTzRN6wmmk3MjxRP5tT7hz"),
	solana.MustPublicKeyFromBase58("G5UZAVbAf46s7cKWoyKu8kYTip9DGTpbLZ2qa9Aq69dP"),
}

// FeeRecipientCandidates returns the recipient set for the given mode:
// the reserved recipients in mayhem mode, the regular ones otherwise.
// A nil global has no candidates.
func FeeRecipientCandidates(global *Global, mayhemMode bool) []solana.PublicKey {
	if global == nil {
		return nil
	}
	out := make([]solana.PublicKey, 0, FeeRecipientSlots+1)
	if mayhemMode {
		out = append(out, global.ReservedFeeRecipient)
		return append(out, global.ReservedFeeRecipients[:]...)
	}
	out = append(out, global.FeeRecipient)
	return append(out, global.FeeRecipients[:]...)
}

// SelectFeeRecipient picks a fee recipient uniformly from the candidate set.
func SelectFeeRecipient(global *Global, mayhemMode bool, src IndexSource) (solana.PublicKey, error) {
	if global == nil {
		return solana.PublicKey{}, ErrNilGlobal
	}
	if src == nil {
		src = DefaultIndexSource
	}
	candidates := FeeRecipientCandidates(global, mayhemMode)
	return candidates[src.IntN(len(candidates))], nil
}

// StaticFeeRecipient picks from CurrentFeeRecipients.
func StaticFeeRecipient(src IndexSource) solana.PublicKey {
	if src == nil {
		src = DefaultIndexSource
	}
	return CurrentFeeRecipients[src.IntN(len(CurrentFeeRecipients))]
}
