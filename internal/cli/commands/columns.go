package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/coregx/sqlalias"
	"github.com/coregx/sqlalias/internal/cli/output"
)

// pairFile is the layout of a --file pairs document:
//
//	pairs:
//	  - table: t_client
//	    column: name
type pairFile struct {
	Pairs []struct {
		Table  string `yaml:"table"`
		Column string `yaml:"column"`
	} `yaml:"pairs"`
}

// NewColumnsCommand creates the columns command.
func NewColumnsCommand() *cobra.Command {
	var pairsPath string

	cmd := &cobra.Command{
		Use:   "columns [TABLE.COLUMN...]",
		Short: "Compute aliases for table columns",
		Long: `Compute one alias per (table, column) pair, in input order.

Pairs are given as TABLE.COLUMN arguments, read from a YAML file with
--file, or both; file pairs come first. Aliases longer than the maximum
length are truncated and end with the pair's 1-based position.`,
		Example: `  sqlalias columns t_client.name t_payment_method.paysys_id --max-length 12
  sqlalias columns --file pairs.yaml --dialect oracle`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pairs []sqlalias.Pair
			if pairsPath != "" {
				filePairs, err := readPairsFile(pairsPath)
				if err != nil {
					return err
				}
				pairs = append(pairs, filePairs...)
			}
			for _, arg := range args {
				p, err := parsePair(arg)
				if err != nil {
					return err
				}
				pairs = append(pairs, p)
			}
			if len(pairs) == 0 {
				return fmt.Errorf("no column pairs given: pass TABLE.COLUMN arguments or --file")
			}

			a, err := newAliaser(cmd)
			if err != nil {
				return err
			}
			aliases, err := a.Columns(cmd.Context(), pairs)
			if err != nil {
				return err
			}

			r := output.Result{Header: []string{"TABLE", "COLUMN", "ALIAS"}}
			for i, p := range pairs {
				r.Rows = append(r.Rows, []string{p.Table, p.Column, aliases[i]})
			}
			return render(cmd, r)
		},
	}

	cmd.Flags().StringVarP(&pairsPath, "file", "f", "", "YAML file with a list of table/column pairs")

	return cmd
}

// parsePair splits "table.column" at the last dot.
func parsePair(s string) (sqlalias.Pair, error) {
	i := strings.LastIndexByte(s, '.')
	if i <= 0 || i == len(s)-1 {
		return sqlalias.Pair{}, fmt.Errorf("invalid column pair %q: want TABLE.COLUMN", s)
	}
	return sqlalias.Pair{Table: s[:i], Column: s[i+1:]}, nil
}

func readPairsFile(path string) ([]sqlalias.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pairs file: %w", err)
	}
	defer f.Close()

	var doc pairFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse pairs file %s: %w", path, err)
	}

	pairs := make([]sqlalias.Pair, len(doc.Pairs))
	for i, p := range doc.Pairs {
		if p.Table == "" || p.Column == "" {
			return nil, fmt.Errorf("pairs file %s: entry %d needs both table and column", path, i+1)
		}
		pairs[i] = sqlalias.Pair{Table: p.Table, Column: p.Column}
	}
	return pairs, nil
}
