package repository

import (
	"fmt"
	"strings"
)

// Op is a comparison operator usable in a Cond.
type Op string

const (
	OpEq      Op = "="
	OpNe      Op = "<>"
	OpGt      Op = ">"
	OpGe      Op = ">="
	OpLt      Op = "<"
	OpLe      Op = "<="
	OpLike    Op = "LIKE"
	OpIsNull  Op = "IS NULL"
	OpNotNull Op = "IS NOT NULL"
)

// Cond is a single column/operator/value predicate. Conds compose
// conjunctively and compile to a parameterized WHERE clause, so filtering
// always happens in the store, never in memory.
type Cond struct {
	Column string
	Op     Op
	Value  any
}

func Eq(column string, value any) Cond { return Cond{Column: column, Op: OpEq, Value: value} }
func Ne(column string, value any) Cond { return Cond{Column: column, Op: OpNe, Value: value} }
func Gt(column string, value any) Cond { return Cond{Column: column, Op: OpGt, Value: value} }
func Ge(column string, value any) Cond { return Cond{Column: column, Op: OpGe, Value: value} }
func Lt(column string, value any) Cond { return Cond{Column: column, Op: OpLt, Value: value} }
func Le(column string, value any) Cond { return Cond{Column: column, Op: OpLe, Value: value} }

// Like matches against a SQL LIKE pattern. Matching is case-insensitive
// under the schema's utf8mb4 collation.
func Like(column, pattern string) Cond { return Cond{Column: column, Op: OpLike, Value: pattern} }

func IsNull(column string) Cond  { return Cond{Column: column, Op: OpIsNull} }
func NotNull(column string) Cond { return Cond{Column: column, Op: OpNotNull} }

// whereClause compiles conds into " WHERE ..." plus its arguments.
// Returns an empty string for an empty cond list.
func whereClause(conds []Cond) (string, []any) {
	if len(conds) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(conds))
	args := make([]any, 0, len(conds))
	for _, c := range conds {
		switch c.Op {
		case OpIsNull, OpNotNull:
			parts = append(parts, fmt.Sprintf("%s %s", c.Column, c.Op))
		default:
			parts = append(parts, fmt.Sprintf("%s %s ?", c.Column, c.Op))
			args = append(args, c.Value)
		}
	}

	return " WHERE " + strings.Join(parts, " AND "), args
}

// orderClause resolves a sort key through the allow-list and returns an
// " ORDER BY ..." clause. Unrecognized keys fall back to the identity
// column ascending.
func orderClause(sortable map[string]string, idColumn, sortBy string, descending bool) string {
	column, ok := sortable[strings.ToLower(strings.TrimSpace(sortBy))]
	if !ok {
		return " ORDER BY " + idColumn + " ASC"
	}

	dir := "ASC"
	if descending {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", column, dir)
}

// pageClause returns a " LIMIT ... OFFSET ..." clause for a 1-based page
// index. Out-of-range inputs are clamped to page 1 / size 1.
func pageClause(page, pageSize int) string {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", pageSize, (page-1)*pageSize)
}
