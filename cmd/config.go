package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brainit/fastpath/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate configuration",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a config file",
	Long:  "Validate a config file against the schema and its semantic rules.\nDefaults to the resolved config path.",
	Args:  cobra.MaximumNArgs(1),
	// Replaces the root setup: the file under validation must not be loaded
	// (or rejected) before RunE reports on it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return resolveOnly(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgPath
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := config.Load(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if cfgDefault {
			fmt.Fprintf(out, "# %s not found, showing defaults\n", cfgPath)
		} else {
			fmt.Fprintf(out, "# %s\n", cfgPath)
		}
		_, err = out.Write(data)
		return err
	},
}

// resolveOnly finds the config path without loading it.
func resolveOnly(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	flagPath, _ := cmd.Flags().GetString("config")
	path, _, err := config.ResolvePath(flagPath)
	if err != nil {
		return err
	}
	cfg = config.Default()
	cfgPath = path
	logger = zap.NewNop()
	return nil
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
}
