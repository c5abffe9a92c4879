// Package commands implements the sqlalias subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/sqlalias"
	"github.com/coregx/sqlalias/internal/cli/config"
	"github.com/coregx/sqlalias/internal/cli/output"
)

// newAliaser builds an Aliaser from the configuration stored in the
// command context, logging to the command's error stream.
func newAliaser(cmd *cobra.Command) (*sqlalias.Aliaser, error) {
	cfg := config.FromContext(cmd.Context())
	log := sqlalias.NewTextLogger(cmd.ErrOrStderr(), cfg.LogLevel())

	opts := append(cfg.Options(), sqlalias.WithLogger(log))
	a, err := sqlalias.NewAliaser(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to configure aliaser: %w", err)
	}
	return a, nil
}

// render writes r to the command output in the configured format.
func render(cmd *cobra.Command, r output.Result) error {
	f, err := output.ParseFormat(config.FromContext(cmd.Context()).Output)
	if err != nil {
		return err
	}
	return output.Render(cmd.OutOrStdout(), f, r)
}
