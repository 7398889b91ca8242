// =============================
// File: internal/app/commands.go
// =============================
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/pump-sdk/internal/dex/pumpfun"
	"github.com/rovshanmuradov/pump-sdk/internal/onchain"
)

// Command names
const (
	CmdBuy           = "buy"
	CmdBuyExact      = "buy-exact"
	CmdSell          = "sell"
	CmdSummary       = "summary"
	CmdCreatorVault  = "creator-vault"
	CmdUnclaimed     = "unclaimed"
	CmdDistributable = "distributable"
)

// ErrUnknownCommand возникает при неизвестном имени команды
var ErrUnknownCommand = errors.New("unknown command")

// Command is one CLI request.
type Command struct {
	Name     string
	Mint     string
	User     string
	Creator  string
	Amount   string
	Slippage float64
}

// Validate проверяет обязательные параметры команды
func (c Command) Validate() error {
	switch c.Name {
	case CmdBuy, CmdBuyExact, CmdSell:
		if c.Mint == "" {
			return fmt.Errorf("%s: --mint is required", c.Name)
		}
		if c.Amount == "" {
			return fmt.Errorf("%s: --amount is required", c.Name)
		}
	case CmdSummary, CmdDistributable:
		if c.Mint == "" {
			return fmt.Errorf("%s: --mint is required", c.Name)
		}
	case CmdCreatorVault:
		if c.Creator == "" {
			return fmt.Errorf("%s: --creator is required", c.Name)
		}
	case CmdUnclaimed:
		if c.User == "" {
			return fmt.Errorf("%s: --user is required", c.Name)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, c.Name)
	}
	return nil
}

// Execute runs cmd against the provider and writes a human-readable report to out.
func Execute(ctx context.Context, p *onchain.Provider, cmd Command, out io.Writer, logger *zap.Logger) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	logger.Debug("Executing command", zap.String("command", cmd.Name))

	switch cmd.Name {
	case CmdBuy:
		return runBuy(ctx, p, cmd, out)
	case CmdBuyExact:
		return runBuyExact(ctx, p, cmd, out)
	case CmdSell:
		return runSell(ctx, p, cmd, out)
	case CmdSummary:
		return runSummary(ctx, p, cmd, out)
	case CmdCreatorVault:
		return runCreatorVault(ctx, p, cmd, out)
	case CmdUnclaimed:
		return runUnclaimed(ctx, p, cmd, out)
	default:
		return runDistributable(ctx, p, cmd, out)
	}
}

func parseKey(what, s string) (solana.PublicKey, error) {
	pk, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid %s address: %w", what, err)
	}
	return pk, nil
}

func loadQuote(ctx context.Context, p *onchain.Provider, cmd Command, decimals int32) (*onchain.QuoteState, uint64, error) {
	mint, err := parseKey("mint", cmd.Mint)
	if err != nil {
		return nil, 0, err
	}
	amount, err := ParseAmount(cmd.Amount, decimals)
	if err != nil {
		return nil, 0, err
	}
	state, err := p.FetchQuoteState(ctx, mint)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch quote state: %w", err)
	}
	return state, amount, nil
}

func runBuy(ctx context.Context, p *onchain.Provider, cmd Command, out io.Writer) error {
	state, lamports, err := loadQuote(ctx, p, cmd, solDecimals)
	if err != nil {
		return err
	}
	impact, err := pumpfun.CalculateBuyPriceImpact(state.Params(lamports))
	if err != nil {
		return fmt.Errorf("failed to quote buy: %w", err)
	}
	maxCost, err := pumpfun.BuyAmountWithSlippage(lamports, cmd.Slippage)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Buy %s\n", FormatSOL(lamports))
	fmt.Fprintf(out, "  tokens out:    %s\n", FormatTokens(impact.OutputAmount))
	fmt.Fprintf(out, "  max sol cost:  %s\n", FormatSOL(maxCost))
	fmt.Fprintf(out, "  price impact:  %s\n", FormatBps(impact.ImpactBps))
	return nil
}

func runBuyExact(ctx context.Context, p *onchain.Provider, cmd Command, out io.Writer) error {
	state, lamports, err := loadQuote(ctx, p, cmd, solDecimals)
	if err != nil {
		return err
	}
	q, err := pumpfun.BuyExactSolIn(state.Params(lamports))
	if err != nil {
		return fmt.Errorf("failed to quote exact-in buy: %w", err)
	}

	fmt.Fprintf(out, "Spend %s\n", FormatSOL(lamports))
	fmt.Fprintf(out, "  tokens out:    %s\n", FormatTokens(q.TokensOut))
	fmt.Fprintf(out, "  net sol:       %s\n", FormatSOL(q.NetSol))
	fmt.Fprintf(out, "  protocol fee:  %s\n", FormatSOL(q.ProtocolFee))
	fmt.Fprintf(out, "  creator fee:   %s\n", FormatSOL(q.CreatorFee))
	return nil
}

func runSell(ctx context.Context, p *onchain.Provider, cmd Command, out io.Writer) error {
	state, tokens, err := loadQuote(ctx, p, cmd, tokenDecimals)
	if err != nil {
		return err
	}
	impact, err := pumpfun.CalculateSellPriceImpact(state.Params(tokens))
	if err != nil {
		return fmt.Errorf("failed to quote sell: %w", err)
	}
	minOut, err := pumpfun.SellAmountWithSlippage(impact.OutputAmount, cmd.Slippage)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Sell %s tokens\n", FormatTokens(tokens))
	fmt.Fprintf(out, "  sol out:       %s\n", FormatSOL(impact.OutputAmount))
	fmt.Fprintf(out, "  min sol out:   %s\n", FormatSOL(minOut))
	fmt.Fprintf(out, "  price impact:  %s\n", FormatBps(impact.ImpactBps))
	return nil
}

func runSummary(ctx context.Context, p *onchain.Provider, cmd Command, out io.Writer) error {
	mint, err := parseKey("mint", cmd.Mint)
	if err != nil {
		return err
	}
	s, err := p.FetchBondingCurveSummary(ctx, mint)
	if err != nil {
		return fmt.Errorf("failed to fetch summary: %w", err)
	}

	fmt.Fprintf(out, "Mint %s\n", mint)
	fmt.Fprintf(out, "  market cap:    %s\n", FormatMarketCap(s.MarketCap))
	fmt.Fprintf(out, "  progress:      %s\n", FormatBps(int64(s.ProgressBps)))
	fmt.Fprintf(out, "  graduated:     %t\n", s.IsGraduated)
	fmt.Fprintf(out, "  buy / token:   %s\n", FormatSOL(s.BuyPricePerToken))
	fmt.Fprintf(out, "  sell / token:  %s\n", FormatSOL(s.SellPricePerToken))
	fmt.Fprintf(out, "  real sol:      %s\n", FormatSOL(s.RealSolReserves))
	fmt.Fprintf(out, "  real tokens:   %s\n", FormatTokens(s.RealTokenReserves))
	return nil
}

func runCreatorVault(ctx context.Context, p *onchain.Provider, cmd Command, out io.Writer) error {
	creator, err := parseKey("creator", cmd.Creator)
	if err != nil {
		return err
	}
	pump, err := p.GetCreatorVaultBalance(ctx, creator)
	if err != nil {
		return err
	}
	total, err := p.GetCreatorVaultBalanceBothPrograms(ctx, creator)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Creator %s\n", creator)
	fmt.Fprintf(out, "  bonding curve: %s\n", FormatSOL(pump))
	fmt.Fprintf(out, "  total:         %s\n", FormatSOL(total))
	return nil
}

func runUnclaimed(ctx context.Context, p *onchain.Provider, cmd Command, out io.Writer) error {
	user, err := parseKey("user", cmd.User)
	if err != nil {
		return err
	}
	unclaimed, err := p.GetTotalUnclaimedTokensBothPrograms(ctx, user)
	if err != nil {
		return err
	}
	today, err := p.GetCurrentDayTokensBothPrograms(ctx, user)
	if err != nil {
		return err
	}
	stats, err := p.FetchUserVolumeTotalStats(ctx, user)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "User %s\n", user)
	fmt.Fprintf(out, "  unclaimed:     %s PUMP\n", FormatTokens(unclaimed))
	fmt.Fprintf(out, "  today:         %s PUMP\n", FormatTokens(today))
	fmt.Fprintf(out, "  claimed:       %s PUMP\n", FormatTokens(stats.TotalClaimedTokens))
	fmt.Fprintf(out, "  volume:        %s\n", FormatSOL(stats.CurrentSolVolume))
	return nil
}

func runDistributable(ctx context.Context, p *onchain.Provider, cmd Command, out io.Writer) error {
	mint, err := parseKey("mint", cmd.Mint)
	if err != nil {
		return err
	}
	res, err := p.MinimumDistributableFee(ctx, mint)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Mint %s\n", mint)
	fmt.Fprintf(out, "  distributable: %s\n", FormatSOL(res.DistributableFees))
	fmt.Fprintf(out, "  minimum:       %s\n", FormatSOL(res.MinimumRequired))
	fmt.Fprintf(out, "  distributable now: %t\n", res.CanDistribute)
	fmt.Fprintf(out, "  graduated:     %t\n", res.IsGraduated)
	return nil
}
