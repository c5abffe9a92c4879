package commands

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/coregx/sqlalias/internal/cli/output"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tables NAME...",
		Short: "Compute distinct aliases for a set of tables",
		Long: `Compute one alias per table name. Aliases are distinct within the set
and do not depend on the order the names are given in.`,
		Example: `  sqlalias tables t_paysys t_payment_method t_order
  sqlalias tables client contract order --rounds 3 -o yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAliaser(cmd)
			if err != nil {
				return err
			}

			aliases, err := a.Tables(cmd.Context(), args)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(aliases))
			for name := range aliases {
				names = append(names, name)
			}
			sort.Strings(names)

			r := output.Result{Header: []string{"TABLE", "ALIAS"}}
			for _, name := range names {
				r.Rows = append(r.Rows, []string{name, aliases[name]})
			}
			return render(cmd, r)
		},
	}
}
