package cli

import (
	"fmt"

	"token-recovery-dapp/internal/adapter/storage/memory"
	redisStorage "token-recovery-dapp/internal/adapter/storage/redis"
	"token-recovery-dapp/internal/core/ports"
	"token-recovery-dapp/internal/service"

	"github.com/spf13/cobra"
)

func newPreferenceCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preference",
		Short: "Inspect the stored wallet preference",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the last connected wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, closeFn, err := opts.preferenceStore(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			name, ok := prefs.Get(cmd.Context(), service.LastWalletKey)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no wallet stored")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the last connected wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, closeFn, err := opts.preferenceStore(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			prefs.Remove(cmd.Context(), service.LastWalletKey)
			fmt.Fprintln(cmd.OutOrStdout(), "wallet preference cleared")
			return nil
		},
	})

	return cmd
}

// preferenceStore opens the configured backend. The memory backend only
// lives inside a running daemon, so it always reads empty here.
func (o *rootOptions) preferenceStore(cmd *cobra.Command) (ports.PreferenceStore, func(), error) {
	cfg, log, err := o.load()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Preference.Backend != "redis" {
		log.Warn().Str("backend", cfg.Preference.Backend).Msg("preference backend is process-local")
		return service.NewPreferenceStore(memory.NewKVStore(), cfg.Preference.Prefix, log), func() {}, nil
	}

	rdb, err := redisStorage.NewClient(cmd.Context(), cfg.Redis, log)
	if err != nil {
		return nil, nil, err
	}
	prefs := service.NewPreferenceStore(redisStorage.NewKVStore(rdb), cfg.Preference.Prefix, log)
	return prefs, func() { _ = rdb.Close() }, nil
}
