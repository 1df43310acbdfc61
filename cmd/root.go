package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brainit/fastpath/internal/config"
	"github.com/brainit/fastpath/internal/logging"
	"github.com/brainit/fastpath/internal/ui/theme"
)

var rootCmd = &cobra.Command{
	Use:   "fastpath",
	Short: "Find the right next step for your business",
	Long: "BrainIT Fast Path asks a few questions about your business and recommends\n" +
		"where to start: a free prototype, a pro work session, or a basic AI setup.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Loaded by setup before any command runs.
var (
	cfg        config.Config
	cfgPath    string
	cfgDefault bool
	logger     *zap.Logger
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (overrides FASTPATH_CONFIG env var)")
	pf.String("log-file", "", "Write structured logs to this file")
	pf.Bool("debug", false, "Enable debug logging")

	f := rootCmd.Flags()
	f.String("theme", "", "Color theme: dark or light")
	f.String("boolean-style", "", "Yes/no rendering: checkbox or yesno")
	f.String("industry", "", "Open the quiz for this industry directly")
	f.Bool("no-splash", false, "Skip the welcome splash")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// setup resolves configuration (flag, env, file, defaults) and opens the
// logger. Flags win over env vars, which win over the file.
func setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	flagPath, _ := cmd.Flags().GetString("config")
	path, explicit, err := config.ResolvePath(flagPath)
	if err != nil {
		return err
	}
	loaded, err := config.LoadOrDefault(path, explicit)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if err := config.ApplyEnv(&loaded, os.Getenv); err != nil {
		return err
	}
	if err := applyFlags(cmd, &loaded); err != nil {
		return err
	}

	cfg = loaded
	cfgPath = path
	_, statErr := os.Stat(path)
	cfgDefault = errors.Is(statErr, os.ErrNotExist)

	theme.Use(theme.ByName(cfg.UI.Theme))

	logger, err = logging.New(logging.Options{File: cfg.Log.File, Debug: cfg.Log.Debug})
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		zap.String("path", path),
		zap.Bool("defaults", cfgDefault),
		zap.String("command", cmd.Name()))
	return nil
}

func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("log-file") {
		c.Log.File, _ = flags.GetString("log-file")
	}
	if flags.Changed("debug") {
		c.Log.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("theme") {
		v, _ := flags.GetString("theme")
		c.UI.Theme = strings.ToLower(v)
	}
	if flags.Changed("boolean-style") {
		v, _ := flags.GetString("boolean-style")
		c.UI.BooleanStyle = strings.ToLower(v)
	}
	if flags.Changed("no-splash") {
		c.UI.SkipSplash, _ = flags.GetBool("no-splash")
	}
	return config.Validate(c)
}
