package commands

import (
	"github.com/spf13/cobra"

	"github.com/coregx/sqlalias"
	"github.com/coregx/sqlalias/internal/cli/output"
)

// NewShortenCommand creates the shorten command.
func NewShortenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shorten WORD...",
		Short: "Show the consonant skeleton of words",
		Long: `Reduce each word to the consonant skeleton used to build aliases.

Words are lowercased first. "id" is kept as is.`,
		Example: `  sqlalias shorten payment method paysys
  sqlalias shorten hidden --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := output.Result{Header: []string{"WORD", "SHORT"}}
			for _, w := range args {
				r.Rows = append(r.Rows, []string{w, sqlalias.Shorten(w)})
			}
			return render(cmd, r)
		},
	}
}
