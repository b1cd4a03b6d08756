package querybuilder

import (
	"errors"
	"reflect"
	"slices"
	"strings"
)

// InsertModel builds a single-row INSERT from a struct's `db` tags. Columns
// tagged `,omitinsert` (serial ids, defaults) are left to the database.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	v := reflect.Indirect(reflect.ValueOf(model))
	if v.Kind() != reflect.Struct {
		return "", nil, errors.New("insert model: want a struct or pointer to struct")
	}

	var (
		columns []string
		values  []any
	)
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("db"), ",")
		if name == "" || name == "-" || slices.Contains(strings.Split(opts, ","), "omitinsert") {
			continue
		}
		columns = append(columns, name)
		values = append(values, v.Field(i).Interface())
	}
	if len(columns) == 0 {
		return "", nil, errors.New("insert model: no db columns")
	}

	return InsertInto(table).Columns(columns...).Values(values...).Suffix(suffix).ToSQL()
}
