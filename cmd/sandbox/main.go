// Sandbox runs grui screens on an OpenGL window or inside a terminal.
//
// Usage:
//
//	sandbox [command] [flags]
//
// Without a command the backend named by the config file is used. See
// 'sandbox --help' for the available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hubastard/grui/engine/core"
	"github.com/hubastard/grui/engine/logging"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags, resolved into cfg before any command runs.
var (
	configPath string
	layoutPath string
	logLevel   string

	cfg core.Config
)

var rootCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Run grui screens",
	Long: `Run an immediate-mode grui screen.

The screen is either the built-in sign-in demo or a declarative YAML layout
given with --layout. Settings come from an optional YAML config file and can
be overridden with flags.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Backend == core.BackendTerm {
			return runTerm(cmd, args)
		}
		return runGL(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "grui.yaml", "Config file (YAML); a missing file means defaults")
	rootCmd.PersistentFlags().StringVar(&layoutPath, "layout", "", `Declarative layout file ("hello" for the embedded demo)`)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// setup loads the config file, applies flag overrides and starts logging.
// Flags win over GRUI_LOG_LEVEL, which wins over the config file.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := core.LoadConfig(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if cmd.Flags().Changed("layout") {
		cfg.Layout = layoutPath
	}
	level := cfg.LogLevel
	if env := os.Getenv(logging.LogLevelEnvVar); env != "" {
		level = env
	}
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}
	return nil
}
