package table

import (
	"fmt"

	stringpool "github.com/ajitpratap0/tabular/pkg/strings"
)

// Render returns a fixed human-readable layout for inspection: header names
// tab-separated, a line of per-header underline markers matching each
// header's character length, then one line per row with each cell's literal
// form wrapped in brackets. The output carries no round-trip guarantee.
func (t *Table) Render() string {
	builder := stringpool.GetBuilder(stringpool.Medium)
	defer stringpool.PutBuilder(builder, stringpool.Medium)

	for i, name := range t.header {
		if i > 0 {
			builder.WriteByte('\t')
		}
		builder.WriteString(name)
	}
	builder.WriteByte('\n')

	for i, name := range t.header {
		if i > 0 {
			builder.WriteByte('\t')
		}
		for range name {
			builder.WriteByte('-')
		}
	}
	builder.WriteByte('\n')

	for r := 0; r < t.rows; r++ {
		for c := 0; c < t.columns; c++ {
			if c > 0 {
				builder.WriteByte('\t')
			}
			builder.WriteByte('[')
			builder.WriteString(display(t.data[r*t.columns+c]))
			builder.WriteByte(']')
		}
		builder.WriteByte('\n')
	}

	return stringpool.Clone(builder.String())
}

// String implements fmt.Stringer using the debug layout.
func (t *Table) String() string {
	return t.Render()
}

// Literal returns a textual constructor call sufficient to reconstruct an
// equal table: the header sequence plus the complete flattened data sequence.
// It is a serialization aid, not a storage format.
func (t *Table) Literal() string {
	builder := stringpool.GetBuilder(stringpool.Large)
	defer stringpool.PutBuilder(builder, stringpool.Large)

	builder.WriteString("table.New(\n\t[]string{")
	for i, name := range t.header {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(fmt.Sprintf("%q", name))
	}
	builder.WriteString("},\n\t[]interface{}{")
	for i, v := range t.data {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(literal(v))
	}
	builder.WriteString("},\n)")

	return stringpool.Clone(builder.String())
}

// literal renders one cell for reconstruction: strings quoted, the default
// sentinel by name, everything else in Go default form.
func literal(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", c)
	case novalue:
		return "table.NoValue"
	default:
		return fmt.Sprintf("%v", c)
	}
}

// display renders one cell for inspection: strings quoted, the default
// sentinel as "none".
func display(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", c)
	default:
		return fmt.Sprintf("%v", c)
	}
}
