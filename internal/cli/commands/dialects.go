package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coregx/sqlalias"
	"github.com/coregx/sqlalias/internal/cli/output"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported SQL dialects",
		Long:  `List every dialect name accepted by --dialect with its identifier length limit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := output.Result{Header: []string{"NAME", "MAX LENGTH", "QUOTED"}}
			for _, name := range sqlalias.DialectNames() {
				d, err := sqlalias.LookupDialect(name)
				if err != nil {
					return err
				}
				limit := "unlimited"
				if n := d.MaxIdentifierLength(); n > 0 {
					limit = strconv.Itoa(n)
				}
				r.Rows = append(r.Rows, []string{name, limit, d.QuoteIdentifier("alias")})
			}
			return render(cmd, r)
		},
	}
}
