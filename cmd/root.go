package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/woojoong88/atomix/cmd/config"
	"github.com/woojoong88/atomix/cmd/queues"
	"github.com/woojoong88/atomix/pkg/client"
	"github.com/woojoong88/atomix/pkg/log"
)

func NewCmd(c client.Client, vip *viper.Viper) *cobra.Command {
	var (
		cfg     = &config.Config{}
		cfgFile string
	)

	cmd := &cobra.Command{
		Use:   "atomix",
		Short: "Atomix primitives client",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == cobra.ShellCompRequestCmd {
				parseCompletionFlags(cmd, args)
			}

			if err := config.Read(vip, cfgFile); err != nil {
				return err
			}

			if err := cfg.Parse(vip); err != nil {
				return err
			}

			logger, err := log.New(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			if cfg.Username != "" {
				c.SetBasicAuth(cfg.Username, cfg.Password)
			}

			if cfg.Token != "" {
				c.SetBearerToken(cfg.Token)
			}

			c.SetTimeout(cfg.Timeout)

			slog.Debug("using server", "server", cfg.Server)
			return c.Setup(cfg.Server)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// Flags
	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default \"atomix.yaml\")")
	cfg.Bind(cmd.PersistentFlags(), vip)

	// Add Subcommands
	cmd.AddCommand(queues.NewCmds(c)...)

	// Set default output
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	return cmd
}

// parseCompletionFlags applies the persistent flags of a shell completion
// request, cobra does not parse flags for the request command.
func parseCompletionFlags(cmd *cobra.Command, args []string) {
	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.ParseErrorsAllowlist.UnknownFlags = true
	flags.Usage = func() {}
	flags.AddFlagSet(cmd.Root().PersistentFlags())

	_ = flags.Parse(args)
}

func Execute() {
	if err := NewCmd(client.New(), viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
