package main

import (
	"fmt"
	"os"

	"github.com/fzft/go-intset/cmd"
	"github.com/fzft/go-intset/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configFile string
	raw        bool
	noRaw      bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "intset-cli [flags] [command [arg ...]]",
		Short: "Interactive shell for hash-table backed integer sets",
		Long: `intset-cli manipulates named sets of integers.

With a command on the command line it runs that command and exits.
Otherwise it reads commands from stdin, with line editing and history
when stdin is a terminal. Type HELP for the command list.`,
		Version:       versionString(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return run(c, opts, args)
		},
	}

	flags := root.Flags()
	// flags stop at the first command word so that "add s -1" works
	flags.SetInterspersed(false)
	flags.StringVar(&opts.configFile, "config", "", "rc file (default $HOME/.intsetclirc)")
	flags.BoolVar(&opts.raw, "raw", false, "use raw formatting for replies")
	flags.BoolVar(&opts.noRaw, "no-raw", false, "force formatted output even when stdout is not a tty")
	flags.String("output", "", "reply format: standard, raw or resp")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Bool("debug-checks", false, "verify hash table invariants after every mutation")
	flags.String("history", "", "history file")

	return root
}

func run(c *cobra.Command, opts *rootOptions, args []string) error {
	config, err := cmd.LoadConfig(opts.configFile, c.Flags())
	if err != nil {
		return err
	}
	switch {
	case opts.raw:
		config.Output = "raw"
	case opts.noRaw:
		config.Output = "standard"
	}

	if err := log.InitLogger(config.LogLevel); err != nil {
		return err
	}
	defer func() {
		_ = log.Logger.Sync()
	}()

	cli, err := cmd.NewCli(config, c.OutOrStdout(), log.Logger)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return cli.Print(cli.Exec(args))
	}
	return cli.Run(c.InOrStdin())
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Logger.Error("intset-cli failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
