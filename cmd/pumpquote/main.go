// ====================================
// File: cmd/pumpquote/main.go
// ====================================
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/pump-sdk/internal/app"
	"github.com/rovshanmuradov/pump-sdk/internal/config"
	"github.com/rovshanmuradov/pump-sdk/internal/utils/logger"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pumpquote [flags] <command>\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  %-14s quote a buy of --amount SOL\n", app.CmdBuy)
	fmt.Fprintf(os.Stderr, "  %-14s quote spending exactly --amount SOL, fees included\n", app.CmdBuyExact)
	fmt.Fprintf(os.Stderr, "  %-14s quote a sell of --amount tokens\n", app.CmdSell)
	fmt.Fprintf(os.Stderr, "  %-14s market cap, progress and prices of --mint\n", app.CmdSummary)
	fmt.Fprintf(os.Stderr, "  %-14s pending creator fees of --creator\n", app.CmdCreatorVault)
	fmt.Fprintf(os.Stderr, "  %-14s PUMP incentives of --user\n", app.CmdUnclaimed)
	fmt.Fprintf(os.Stderr, "  %-14s fee sharing readiness of --mint\n\n", app.CmdDistributable)
	fmt.Fprintf(os.Stderr, "Flags:\n")
	pflag.PrintDefaults()
}

func main() {
	var (
		configPath string
		cmd        app.Command
	)
	pflag.StringVarP(&configPath, "config", "c", "configs/config.json", "path to config file")
	pflag.StringVarP(&cmd.Mint, "mint", "m", "", "token mint address")
	pflag.StringVarP(&cmd.Amount, "amount", "a", "", "SOL amount for buys, token amount for sells")
	pflag.StringVar(&cmd.User, "user", "", "user wallet address")
	pflag.StringVar(&cmd.Creator, "creator", "", "coin creator address")
	pflag.Float64VarP(&cmd.Slippage, "slippage", "s", 1, "slippage in percent")
	pflag.Usage = usage
	pflag.Parse()

	if pflag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	cmd.Name = pflag.Arg(0)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logCfg := logger.DefaultConfig()
	logCfg.LogFile = cfg.LogFile
	logCfg.Debug = cfg.DebugLogging
	log, err := logger.New(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	runner, err := app.NewRunner(cfg, log.WithComponent("pumpquote"), os.Stdout)
	if err != nil {
		log.Fatal("Failed to initialize", zap.Error(err))
	}

	if err := runner.Run(context.Background(), cmd); err != nil {
		log.LogError("Command failed", err, zap.String("command", cmd.Name))
		log.Sync()
		os.Exit(1)
	}
}
