// Package schema holds the table and column names of the catalog database so
// that repositories never spell an identifier twice.
package schema

import "strings"

// List joins column names into a SELECT/RETURNING list, qualifying each with
// alias when alias is not empty.
func List(alias string, columns []string) string {
	if alias == "" {
		return strings.Join(columns, ", ")
	}

	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}
