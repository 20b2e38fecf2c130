package repository

import (
	"fmt"
	"reflect"
	"strings"
)

// sparseField pairs a column with an optional (pointer) value. Absent
// fields are excluded from the generated UPDATE so untouched columns
// keep their stored values.
type sparseField struct {
	column string
	value  any
}

// buildSparseUpdate assembles a partial UPDATE for the present fields.
// Returns an empty query when the patch carries no fields.
func buildSparseUpdate(table, id string, fields []sparseField) (string, []any) {
	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)

	for _, f := range fields {
		if isAbsent(f.value) {
			continue
		}
		args = append(args, f.value)
		sets = append(sets, fmt.Sprintf("%s=$%d", f.column, len(args)))
	}
	if len(sets) == 0 {
		return "", nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s, updated_at=NOW() WHERE id=$%d",
		table, strings.Join(sets, ", "), len(args))
	return query, args
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
