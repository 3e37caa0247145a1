package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/version"
)

var (
	dataDir     string
	archivePath string
	debug       bool
	logger      = zap.NewNop()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vendetta",
		Short: "Vendetta combat and mission calculator",
		Long: `Resolves attacks and espionage missions between two players,
computes travel plans and keeps an archive of battle reports.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(debug)
			if err != nil {
				return err
			}
			logger = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "data", "Path to data directory")
	rootCmd.PersistentFlags().StringVar(&archivePath, "archive", "", "Path to the report archive database")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log debugging information")

	rootCmd.AddCommand(cmdRun())
	rootCmd.AddCommand(cmdTravel())
	rootCmd.AddCommand(cmdUnits())
	rootCmd.AddCommand(cmdArchive())
	rootCmd.AddCommand(cmdVersion())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger logs to stderr so tables on stdout stay clean
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = !debug
	return cfg.Build()
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display the engine version",
		Run: func(cmd *cobra.Command, args []string) {
			if showBuildInfo {
				fmt.Println(version.Version().String())
				return
			}
			fmt.Println(version.Version().Core())
		},
	}
	cmd.Flags().BoolVar(&showBuildInfo, "build-info", false, "Show build information")
	return cmd
}
