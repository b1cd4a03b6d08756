// Package querybuilder renders the small set of Postgres statements the
// repositories need, numbering placeholders as $1..$n in the order values appear.
package querybuilder

import (
	"errors"
	"strconv"
	"strings"
)

// binder collects positional arguments while SQL is written.
type binder struct {
	sql  strings.Builder
	args []any
}

func (b *binder) write(parts ...string) {
	for _, p := range parts {
		b.sql.WriteString(p)
	}
}

// bind appends value as the next argument and writes its placeholder.
func (b *binder) bind(value any) {
	if e, ok := value.(expr); ok {
		e.render(b)
		return
	}
	b.args = append(b.args, value)
	b.sql.WriteString("$" + strconv.Itoa(len(b.args)))
}

func (b *binder) where(conds []Condition) {
	for i, c := range conds {
		if i == 0 {
			b.write(" WHERE ")
		} else {
			b.write(" AND ")
		}
		c.render(b)
	}
}

func (b *binder) list(keyword string, parts []string) {
	if len(parts) > 0 {
		b.write(keyword, strings.Join(parts, ", "))
	}
}

func (b *binder) result() (string, []any, error) {
	return b.sql.String(), b.args, nil
}

// Condition is one predicate of a WHERE clause. Conditions are ANDed.
type Condition interface {
	render(b *binder)
}

type comparison struct {
	column, op string
	value      any
}

func (c comparison) render(b *binder) {
	b.write(c.column, " ", c.op, " ")
	b.bind(c.value)
}

func Eq(column string, value any) Condition  { return comparison{column, "=", value} }
func Gte(column string, value any) Condition { return comparison{column, ">=", value} }
func Lt(column string, value any) Condition  { return comparison{column, "<", value} }

// expr is raw SQL whose ? marks take the next placeholders.
type expr struct {
	sql  string
	args []any
}

// Expr embeds raw SQL as a condition; each ? is bound to the next arg.
func Expr(sql string, args ...any) Condition {
	return expr{sql: sql, args: args}
}

func (e expr) render(b *binder) {
	rest := e.sql
	for _, arg := range e.args {
		i := strings.IndexByte(rest, '?')
		if i < 0 {
			break
		}
		b.write(rest[:i])
		b.bind(arg)
		rest = rest[i+1:]
	}
	b.write(rest)
}

type SelectBuilder struct {
	columns []string
	from    string
	joins   []string
	conds   []Condition
	groupBy []string
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: columns}
}

func (s *SelectBuilder) From(table string) *SelectBuilder {
	s.from = strings.TrimSpace(table)
	return s
}

// Join takes the whole clause, e.g. "JOIN players p ON p.id = g.player_id".
func (s *SelectBuilder) Join(clause string) *SelectBuilder {
	s.joins = append(s.joins, clause)
	return s
}

func (s *SelectBuilder) Where(conds ...Condition) *SelectBuilder {
	s.conds = append(s.conds, conds...)
	return s
}

func (s *SelectBuilder) GroupBy(columns ...string) *SelectBuilder {
	s.groupBy = append(s.groupBy, columns...)
	return s
}

func (s *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	s.orderBy = append(s.orderBy, terms...)
	return s
}

// Limit of zero or less means no LIMIT clause.
func (s *SelectBuilder) Limit(n int) *SelectBuilder {
	s.limit = n
	return s
}

func (s *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(s.columns) == 0:
		return "", nil, errors.New("select: no columns")
	case s.from == "":
		return "", nil, errors.New("select: no table")
	}

	var b binder
	b.write("SELECT ", strings.Join(s.columns, ", "), " FROM ", s.from)
	for _, j := range s.joins {
		b.write(" ", j)
	}
	b.where(s.conds)
	b.list(" GROUP BY ", s.groupBy)
	b.list(" ORDER BY ", s.orderBy)
	if s.limit > 0 {
		b.write(" LIMIT ", strconv.Itoa(s.limit))
	}
	return b.result()
}

type InsertBuilder struct {
	table     string
	columns   []string
	values    []any
	returning string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: strings.TrimSpace(table)}
}

func (i *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	i.columns = columns
	return i
}

// Values sets the single row to insert.
func (i *InsertBuilder) Values(values ...any) *InsertBuilder {
	i.values = values
	return i
}

// Suffix appends trailing SQL such as "RETURNING id".
func (i *InsertBuilder) Suffix(sql string) *InsertBuilder {
	i.returning = strings.TrimSpace(sql)
	return i
}

func (i *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case i.table == "":
		return "", nil, errors.New("insert: no table")
	case len(i.columns) == 0:
		return "", nil, errors.New("insert: no columns")
	case len(i.values) != len(i.columns):
		return "", nil, errors.New("insert: got " + strconv.Itoa(len(i.values)) +
			" values for " + strconv.Itoa(len(i.columns)) + " columns")
	}

	var b binder
	b.write("INSERT INTO ", i.table, " (", strings.Join(i.columns, ", "), ") VALUES (")
	for n, v := range i.values {
		if n > 0 {
			b.write(", ")
		}
		b.bind(v)
	}
	b.write(")")
	if i.returning != "" {
		b.write(" ", i.returning)
	}
	return b.result()
}

type assignment struct {
	column string
	value  any
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	conds []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: strings.TrimSpace(table)}
}

func (u *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	u.sets = append(u.sets, assignment{column, value})
	return u
}

// SetExpr assigns raw SQL, e.g. SetExpr("total_goals", "total_goals + ?", n).
func (u *UpdateBuilder) SetExpr(column, sql string, args ...any) *UpdateBuilder {
	u.sets = append(u.sets, assignment{column, expr{sql: sql, args: args}})
	return u
}

func (u *UpdateBuilder) Where(conds ...Condition) *UpdateBuilder {
	u.conds = append(u.conds, conds...)
	return u
}

// ToSQL refuses to build an UPDATE without a WHERE clause.
func (u *UpdateBuilder) ToSQL() (string, []any, error) {
	switch {
	case u.table == "":
		return "", nil, errors.New("update: no table")
	case len(u.sets) == 0:
		return "", nil, errors.New("update: nothing to set")
	case len(u.conds) == 0:
		return "", nil, errors.New("update: missing where")
	}

	var b binder
	b.write("UPDATE ", u.table, " SET ")
	for n, s := range u.sets {
		if n > 0 {
			b.write(", ")
		}
		b.write(s.column, " = ")
		b.bind(s.value)
	}
	b.where(u.conds)
	return b.result()
}
