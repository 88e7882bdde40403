// Package sqlutil holds the shared partial-update statement compiler used by
// every mutable entity's update path.
package sqlutil

import (
	"fmt"
	"sort"
	"strings"

	apperrors "messhall/internal/errors"
)

// CompileUpdate turns a sparse set of logical field changes into a SET
// fragment plus its bind arguments. fieldMap is an allow-list mapping logical
// field names to storage columns; a change whose key is absent from the map
// is rejected so callers can never reach an unlisted column. A key present
// with a nil value means "set the column to NULL".
//
// The fragment looks like "comments = ?, to_go = ?" with args in matching
// order. Assignments are emitted in sorted logical-name order so the output
// is deterministic. The caller appends the row identifier as the final bind
// argument of the full UPDATE statement.
func CompileUpdate(changes map[string]any, fieldMap map[string]string) (string, []any, error) {
	if len(changes) == 0 {
		return "", nil, apperrors.NewValidationError("no fields to update")
	}

	names := make([]string, 0, len(changes))
	for name := range changes {
		column, ok := fieldMap[name]
		if !ok || column == "" {
			return "", nil, apperrors.NewValidationError(
				fmt.Sprintf("unknown field: %s", name),
				apperrors.ValidationDetail{Field: name, Message: "field is not updatable"},
			)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	assignments := make([]string, 0, len(names))
	args := make([]any, 0, len(names))
	for _, name := range names {
		assignments = append(assignments, fieldMap[name]+" = ?")
		args = append(args, changes[name])
	}

	return strings.Join(assignments, ", "), args, nil
}
