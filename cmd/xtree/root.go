package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benz9527/xtree/internal/config"
	"github.com/benz9527/xtree/internal/wordtree"
	"github.com/benz9527/xtree/xlog"
)

// app is shared by the sub commands once the root pre-run loaded it.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  xlog.XLogger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "xtree",
		Short:         "Ordered trees over text input",
		Long:          `xtree loads the lines or the words of the input into a red-black tree (or a plain binary search tree) to sort, count and inspect them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Logger(xlog.WithXLoggerWriter(cmd.ErrOrStderr()))
			a.logger.Debug("[xtree] config loaded",
				zap.String("cmd", cmd.Name()),
				zap.String("kind", cfg.Tree.Kind),
				zap.Bool("desc", cfg.Tree.Desc),
			)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.logger == nil {
				return nil
			}
			_ = a.logger.Sync()
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./.xtree.yaml or $HOME/.xtree.yaml)")
	flags.String("log-level", config.DefaultLogLevel, "log level: DEBUG, INFO, WARN or ERROR")
	flags.String("log-encoder", config.DefaultLogEncoder, "log encoder: json or text")
	flags.String("kind", config.DefaultTreeKind, "tree kind: rbtree or bst")
	flags.Bool("borrow-succ", false, "remove by borrowing the in-order successor")

	rootCmd.AddCommand(a.sortCmd())
	rootCmd.AddCommand(a.shapeCmd())
	rootCmd.AddCommand(a.statsCmd())
	rootCmd.AddCommand(a.countCmd())
	return rootCmd
}

// readLines fails only if nothing could be read.
func (a *app) readLines(cmd *cobra.Command, args []string) ([]string, error) {
	lines, err := wordtree.ReadLines(cmd.InOrStdin(), args...)
	if err != nil {
		if len(lines) == 0 {
			return nil, err
		}
		a.logger.Error(err, "[xtree] skipped unreadable input")
	}
	return lines, nil
}

func (a *app) readWords(cmd *cobra.Command, args []string) ([]string, error) {
	lines, err := a.readLines(cmd, args)
	if err != nil {
		return nil, err
	}
	return wordtree.Words(lines), nil
}
