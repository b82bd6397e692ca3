package base

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns s into an ILIKE pattern matching any value that
// contains s literally. Wildcards in s are escaped with a backslash.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// ILikeAny matches rows where any of the columns contains s,
// case-insensitively. Columns may be casts such as "id::text".
func ILikeAny(s string, columns ...string) squirrel.Sqlizer {
	pattern := ContainsPattern(s)
	or := make(squirrel.Or, len(columns))
	for i, col := range columns {
		or[i] = squirrel.Expr(col+` ILIKE ? ESCAPE '\'`, pattern)
	}
	return or
}
