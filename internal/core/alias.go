package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coregx/sqlalias/internal/words"
)

// BuildAlias joins a table short form and a column name as "tbl_col".
//
// When the joined string is longer than maxLen it is cut from the right,
// leaving room for "_" followed by cnt, and the suffix is appended:
//
//	BuildAlias("t_client", "name", 13, 1)  // "t_client_name"
//	BuildAlias("t_client", "name", 12, 1)  // "t_client_n_1"
//	BuildAlias("t_client", "name", 12, 12) // "t_client__12"
//
// The whole "tbl_col" string is truncated, not the column part alone.
// A maxLen that cannot hold one character plus the suffix is rejected
// with ErrMaxLenTooSmall, a negative cnt with ErrInvalidCounter.
func BuildAlias(tbl, col string, maxLen, cnt int) (string, error) {
	if cnt < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidCounter, cnt)
	}
	suffix := strconv.Itoa(cnt)
	if maxLen < len(suffix)+2 {
		return "", fmt.Errorf("%w: %d cannot hold counter %d", ErrMaxLenTooSmall, maxLen, cnt)
	}

	joined := tbl + "_" + col
	if len(joined) <= maxLen {
		return joined, nil
	}
	return joined[:maxLen-len(suffix)-1] + "_" + suffix, nil
}

// WordAlias builds an alias from the shortened main words of both
// identifiers, each joined with "_", and then applies BuildAlias.
//
//	WordAlias("t_payment_method", "paysys_id", 20, 1) // "pymnt_mtd_pyss_id"
func WordAlias(tbl, col string, maxLen, cnt int) (string, error) {
	return BuildAlias(shortForm(tbl), shortForm(col), maxLen, cnt)
}

func shortForm(ident string) string {
	return strings.Join(words.ShortenAll(words.MainWords(ident)), "_")
}
