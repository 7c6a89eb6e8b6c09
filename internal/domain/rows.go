package domain

import (
	"fmt"
	"strings"
)

// Rows is the tabular result of one analytical query. It is ephemeral:
// produced by the executor, checked by the result-size guard, serialized
// into the answer prompt, and never persisted.
type Rows struct {
	Columns []string
	Records [][]any
}

// Serialize renders the result as a compact text table for prompt
// embedding and token measurement. One header line, one line per record,
// pipe-separated values.
func (r Rows) Serialize() string {
	if len(r.Columns) == 0 && len(r.Records) == 0 {
		return "(no rows)"
	}
	var b strings.Builder
	b.WriteString(strings.Join(r.Columns, " | "))
	for _, rec := range r.Records {
		b.WriteByte('\n')
		for i, v := range rec {
			if i > 0 {
				b.WriteString(" | ")
			}
			if v == nil {
				b.WriteString("NULL")
				continue
			}
			fmt.Fprintf(&b, "%v", v)
		}
	}
	return b.String()
}
