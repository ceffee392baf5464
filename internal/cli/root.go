package cli

import (
	"fmt"
	"os"

	"token-recovery-dapp/config"
	"token-recovery-dapp/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfgPath string
	debug   bool
}

// NewRootCmd builds the dapp command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "dapp",
		Short:         "Token recovery dApp client",
		Long:          `dapp keeps a wallet session alive against the local wallet bridge and serves the token recovery dApp API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.cfgPath, "config", "", "config file (default is ./config.yaml or ./config/config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newServeCmd(opts),
		newPreferenceCmd(opts),
		newOctasCmd(),
	)
	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// load reads .env (best effort), the config and builds the logger.
func (o *rootOptions) load() (*config.Config, zerolog.Logger, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("loading config: %w", err)
	}
	if o.debug {
		cfg.Log.Level = "debug"
	}
	return cfg, logger.New(cfg.Log.Level, cfg.Log.Pretty), nil
}
