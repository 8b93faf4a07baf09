package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quantumforge/qasmgen/logger"
)

var (
	cfgFile string
	cfg     *Config
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "qasmgen",
		Short:   "qasmgen - OpenQASM 2.0 circuit generator",
		Long:    "qasmgen builds quantum circuits from YAML descriptions and lowers them into OpenQASM 2.0 programs.",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			var err error
			cfg, err = loadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			if cfg.Verbose && level > zerolog.DebugLevel {
				level = zerolog.DebugLevel
			}
			logger.SetLevel(level)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./qasmgen.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace|debug|info|warn|error)")

	rootCmd.AddCommand(newEmitCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}
