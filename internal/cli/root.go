// Package cli provides the command-line interface for sqlalias.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/sqlalias/internal/cli/commands"
	"github.com/coregx/sqlalias/internal/cli/config"
	"github.com/coregx/sqlalias/internal/cli/output"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sqlalias",
		Short: "Generate short aliases for SQL tables and columns",
		Long: `sqlalias generates short, deterministic aliases for SQL identifiers.

Table aliases are built from the consonant skeletons of the words in a
table name and are distinct within one set of tables. Column aliases join
a table alias and a column name and fit the identifier length limit of the
target database.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfgFile, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cmd.SetContext(config.WithContext(cmd.Context(), cfg))

			if cfg.Verbose && cfg.ConfigFile != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", cfg.ConfigFile)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	// Global persistent flags
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sqlalias.yaml)")
	rootCmd.PersistentFlags().StringP("dialect", "d", "", "Target SQL dialect (see 'sqlalias dialects')")
	rootCmd.PersistentFlags().Int("max-length", 0, "Maximum column alias length, 0 for unlimited (default: dialect limit)")
	rootCmd.PersistentFlags().Int("rounds", 0, "Alias-growing rounds before the numeric fallback (default 5)")
	rootCmd.PersistentFlags().Bool("strict", false, "Accept plain SQL identifiers only")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (text|json|yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewShortenCommand())
	rootCmd.AddCommand(commands.NewTablesCommand())
	rootCmd.AddCommand(commands.NewColumnsCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
