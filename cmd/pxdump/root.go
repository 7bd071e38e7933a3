package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagVerbose  bool
	flagQuiet    bool
	flagJSON     bool
	flagPassword string
	flagEncoding string

	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pxdump",
		Short:         "Inspect and dump legacy Paradox .DB tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger()
		},
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log decode steps to stderr")
	root.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress warnings")
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON instead of a table")
	root.PersistentFlags().StringVar(&flagPassword, "password", "", "table password, if encrypted")
	root.PersistentFlags().StringVar(&flagEncoding, "encoding", "", "codepage label override")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newDumpCmd())

	return root
}

func initLogger() error {
	cfg := zap.NewProductionConfig()
	if flagVerbose {
		cfg = zap.NewDevelopmentConfig()
	}
	if flagQuiet {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func printVerbose(msg string, fields ...zap.Field) {
	if flagVerbose && logger != nil {
		logger.Info(msg, fields...)
	}
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, "pxdump:", err)
}

func checkArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one .DB path, got %d", len(args))
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}
