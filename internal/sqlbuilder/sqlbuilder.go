// Package sqlbuilder assembles PostgreSQL statements whose positional
// placeholders are numbered from the argument list they are bound to.
package sqlbuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Marker is the token replaced by a positional placeholder in Clause fragments.
const Marker = "?"

// ErrMarkerCount is returned when a fragment's markers do not match its values.
var ErrMarkerCount = errors.New("placeholder marker count does not match values")

// Query accumulates SQL text together with its positional arguments.
type Query struct {
	text strings.Builder
	args []any
}

// New starts a query with the given base text.
func New(base string) *Query {
	q := &Query{}
	q.text.WriteString(base)
	return q
}

// Bind appends value to the argument list and returns the placeholder that
// references it. The index is always derived after the append.
func (q *Query) Bind(value any) string {
	q.args = append(q.args, value)
	return "$" + strconv.Itoa(len(q.args))
}

// Write appends raw SQL text that binds no values.
func (q *Query) Write(sql string) *Query {
	q.text.WriteString(sql)
	return q
}

// Clause appends fragment, replacing each Marker from left to right with a
// placeholder bound to the corresponding value.
func (q *Query) Clause(fragment string, values ...any) error {
	if n := strings.Count(fragment, Marker); n != len(values) {
		return fmt.Errorf("%w: %q has %d markers, got %d values", ErrMarkerCount, fragment, n, len(values))
	}

	parts := strings.Split(fragment, Marker)
	q.text.WriteString(parts[0])
	for i, value := range values {
		q.text.WriteString(q.Bind(value))
		q.text.WriteString(parts[i+1])
	}
	return nil
}

// SQL returns the assembled statement text.
func (q *Query) SQL() string {
	return q.text.String()
}

// Args returns a copy of the bound arguments in placeholder order.
func (q *Query) Args() []any {
	return append([]any(nil), q.args...)
}

// Len reports how many arguments are bound.
func (q *Query) Len() int {
	return len(q.args)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE/ILIKE wildcards so value matches literally.
func EscapeLike(value string) string {
	return likeEscaper.Replace(value)
}

// Contains builds an ILIKE pattern matching value anywhere in the column.
func Contains(value string) string {
	return "%" + EscapeLike(value) + "%"
}
