package core

import (
	"maps"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/sqlalias/internal/words"
)

// DefaultRounds is the number of alias-building rounds run before the
// numeric fallback is applied to tables that still collide.
const DefaultRounds = 5

// tableResolution is the outcome of one table alias computation.
type tableResolution struct {
	aliases  map[string]string
	rounds   int      // rounds actually run
	fallback []string // sorted tables that received a numeric suffix
}

// clone returns a deep copy of r.
func (r tableResolution) clone() tableResolution {
	return tableResolution{
		aliases:  maps.Clone(r.aliases),
		rounds:   r.rounds,
		fallback: slices.Clone(r.fallback),
	}
}

// TableAliases assigns each table name a distinct alias.
//
// Every table starts with the first letter of each shortened main word.
// Tables whose aliases collide grow their earliest word that is not yet
// fully used by one letter per round. Tables still colliding after
// DefaultRounds rounds get "_" and their 1-based rank in the sorted list
// of colliding names appended. Duplicate names collapse and the result
// does not depend on input order.
func TableAliases(names []string) map[string]string {
	return resolveTableAliases(names, DefaultRounds).aliases
}

func resolveTableAliases(names []string, rounds int) tableResolution {
	if rounds < 1 {
		rounds = 1
	}

	tblWords := make(map[string][]string, len(names))
	wordPos := make(map[string][]int, len(names))
	for _, name := range names {
		if _, seen := tblWords[name]; seen {
			continue
		}
		short := words.ShortenAll(words.MainWords(name))
		pos := make([]int, len(short))
		for i := range pos {
			pos[i] = 1
		}
		tblWords[name] = short
		wordPos[name] = pos
	}

	var confl []string
	for round := 0; round < rounds; round++ {
		if round > 0 {
			growWordPositions(confl, tblWords, wordPos)
		}
		aliases := buildTableAliases(tblWords, wordPos)
		confl = conflicts(aliases)
		if len(confl) == 0 {
			return tableResolution{aliases: aliases, rounds: round + 1}
		}
	}

	return tableResolution{
		aliases:  fallbackTableAliases(confl, tblWords, wordPos),
		rounds:   rounds,
		fallback: confl,
	}
}

// buildTableAliases concatenates, per table, the first wordPos[i]
// characters of every shortened word.
func buildTableAliases(tblWords map[string][]string, wordPos map[string][]int) map[string]string {
	out := make(map[string]string, len(tblWords))
	for tbl, ws := range tblWords {
		pos := wordPos[tbl]
		var b strings.Builder
		for i, w := range ws {
			b.WriteString(w[:min(pos[i], len(w))])
		}
		out[tbl] = b.String()
	}
	return out
}

// conflicts returns the sorted names of all tables whose alias is shared
// with at least one other table.
func conflicts(aliases map[string]string) []string {
	byAlias := make(map[string][]string, len(aliases))
	for tbl, alias := range aliases {
		byAlias[alias] = append(byAlias[alias], tbl)
	}

	var out []string
	for _, tbls := range byAlias {
		if len(tbls) > 1 {
			out = append(out, tbls...)
		}
	}
	sort.Strings(out)
	return out
}

// growWordPositions advances, for every conflicting table, the first word
// position that has not reached the length of its word. Fully expanded
// tables are left as they are.
func growWordPositions(confl []string, tblWords map[string][]string, wordPos map[string][]int) {
	for _, tbl := range confl {
		pos := wordPos[tbl]
		for i, w := range tblWords[tbl] {
			if pos[i] < len(w) {
				pos[i]++
				break
			}
		}
	}
}

// fallbackTableAliases rebuilds the aliases from the current positions and
// appends "_<rank>" to every conflicting table, rank being its 1-based
// index in the sorted conflict list.
func fallbackTableAliases(confl []string, tblWords map[string][]string, wordPos map[string][]int) map[string]string {
	out := buildTableAliases(tblWords, wordPos)

	sorted := append([]string(nil), confl...)
	sort.Strings(sorted)
	for i, tbl := range sorted {
		out[tbl] += "_" + strconv.Itoa(i+1)
	}
	return out
}
