package core

import "fmt"

// Pair identifies one column of one table.
type Pair struct {
	Table  string
	Column string
}

// String returns the pair as "table.column".
func (p Pair) String() string {
	return p.Table + "." + p.Column
}

// distinctTables returns the table names of pairs in first-seen order.
func distinctTables(pairs []Pair) []string {
	seen := make(map[string]struct{}, len(pairs))
	tbls := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p.Table]; ok {
			continue
		}
		seen[p.Table] = struct{}{}
		tbls = append(tbls, p.Table)
	}
	return tbls
}

// ColumnAliases returns one alias per pair, in input order.
//
// Table aliases are computed over the distinct tables of pairs; each pair
// then becomes BuildAlias(tableAlias, column, maxLen, i) where i is the
// pair's 1-based position. The position only shows up in an alias when
// truncation is needed.
//
//	ColumnAliases([]Pair{{"t_client", "name"}, {"t_payment_method", "paysys_id"}}, 12)
//	// ["c_name", "pm_paysys_id"]
func ColumnAliases(pairs []Pair, maxLen int) ([]string, error) {
	return ColumnAliasesFor(TableAliases(distinctTables(pairs)), pairs, maxLen)
}

// ColumnAliasesFor is like ColumnAliases but uses a caller-supplied
// table alias mapping. It returns ErrEmptyTableSet when pairs is not
// empty but tableAliases is, and ErrUnknownTable when a pair's table has
// no entry in tableAliases.
func ColumnAliasesFor(tableAliases map[string]string, pairs []Pair, maxLen int) ([]string, error) {
	if len(pairs) > 0 && len(tableAliases) == 0 {
		return nil, ErrEmptyTableSet
	}

	out := make([]string, len(pairs))
	for i, p := range pairs {
		tblAlias, ok := tableAliases[p.Table]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTable, p.Table)
		}
		alias, err := BuildAlias(tblAlias, p.Column, maxLen, i+1)
		if err != nil {
			return nil, WrapError(err, fmt.Sprintf("alias for %s", p))
		}
		out[i] = alias
	}
	return out, nil
}
