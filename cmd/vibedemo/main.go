// Command vibedemo runs the scripted vibe-coding desktop demo in the
// terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vibedemo/internal/config"
	"vibedemo/internal/demo"
	"vibedemo/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	variant    string
	theme      string
	verbose    bool
	noMouse    bool

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger

	// Set by -ldflags at release time.
	version = "dev"
)

// skipConfig marks commands that must run without a valid config.
const skipConfig = "skip-config"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vibedemo",
	Short: "A scripted, click-through vibe coding demo",
	Long: `vibedemo plays a fixed product walkthrough on a simulated desktop:
type "vibe" in the terminal, pick a project and experience, wait for the
environment, then ask the Cursor agent for a change and watch the browser.

Nothing is real: no commands run, no AI is called, nothing is saved.

Run without arguments to start the interactive desktop.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = zap.NewNop()
		if cmd.Annotations[skipConfig] == "true" {
			return nil
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := applyFlagOverrides(loaded, cmd.Flags()); err != nil {
			return err
		}
		cfg = loaded

		if err := logging.Initialize(cfg.Logging.Options()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logging.Get(logging.CategoryBoot)
		logger.Info("config resolved",
			zap.String("path", configPath),
			zap.String("variant", cfg.Variant),
			zap.String("theme", cfg.Theme))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Close(); err != nil {
			return fmt.Errorf("failed to close logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive desktop
		return runDesktop(cmd.Context())
	},
}

// applyFlagOverrides layers explicitly set flags over the loaded config.
func applyFlagOverrides(c *config.Config, flags *pflag.FlagSet) error {
	if flags.Changed("variant") {
		c.Variant = variant
	}
	if flags.Changed("theme") {
		c.Theme = theme
	}
	if flags.Changed("no-mouse") && noMouse {
		c.Mouse = false
	}
	if verbose {
		c.Logging.Enabled = true
		c.Logging.Level = "debug"
	}
	return c.Validate()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file path")
	rootCmd.PersistentFlags().StringVar(&variant, "variant", "", "Demo variant: classic or guided (overrides config)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "Color theme: auto, light or dark (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to the configured log file")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable clickable regions")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// scriptFromConfig builds the active script from the resolved config.
func scriptFromConfig() (demo.Script, error) {
	script, err := cfg.DemoScript()
	if err != nil {
		return demo.Script{}, fmt.Errorf("failed to build script: %w", err)
	}
	return script, nil
}
