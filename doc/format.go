package doc

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// FormatAll writes the whole reference as a table.
func FormatAll(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Usage", "Description"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, e := range Entries() {
		table.Append([]string{string(e.Kind), e.Signature, e.Doc})
	}
	table.Render()
}

// FormatEntry formats a single entry for terminal display.
func FormatEntry(e Entry) string {
	var sb strings.Builder
	sb.WriteString(e.Signature)
	sb.WriteString("  (")
	sb.WriteString(string(e.Kind))
	sb.WriteString(")\n")
	if e.Doc != "" {
		sb.WriteString("    ")
		sb.WriteString(strings.ReplaceAll(e.Doc, "\n", "\n    "))
		sb.WriteString("\n")
	}
	return sb.String()
}
