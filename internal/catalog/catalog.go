// Package catalog holds the static schema catalogs for the analytical
// store: one Table per analytical table, with typed, documented columns.
// Prompt builders render these into schema text blocks; nothing here talks
// to the database.
package catalog

import (
	"fmt"
	"strings"
)

// Column describes one analytical column for prompt embedding.
type Column struct {
	Name string
	Type string
	// Doc explains semantics the model needs to query the column correctly.
	Doc string
	// Enum lists the allowed values for closed-domain columns.
	Enum []string
}

// Table is an immutable schema catalog for one analytical table.
type Table struct {
	Name        string
	Description string
	Columns     []Column
}

// Render produces the schema text block embedded in synthesis prompts:
// one line per column, with semantics and value domains inline.
func (t Table) Render() string {
	var b strings.Builder
	for _, c := range t.Columns {
		b.WriteString(c.Name)
		b.WriteString(" (")
		b.WriteString(c.Type)
		b.WriteString(")")
		if c.Doc != "" {
			b.WriteString(" - ")
			b.WriteString(c.Doc)
		}
		if len(c.Enum) > 0 {
			fmt.Fprintf(&b, " Possible values: [%s].", strings.Join(c.Enum, ", "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// HasColumn reports whether the catalog declares the named column.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

// ColumnNames returns the declared column names in catalog order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Season defaults shared by every catalog's prompt rules.
const (
	DefaultSeason     = 2024
	DefaultSeasonType = 1 // regular season
)

// SeasonTypeDoc is the season-type legend reproduced in several catalogs.
const SeasonTypeDoc = "(1=Regular Season, 2=Preseason, 3=Postseason, 4=Offseason, 5=AllStar). The default season type is 1."
