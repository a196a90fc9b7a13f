// AngelaMos | 2026
// export.go

package lead

import (
	"strings"
	"time"
)

const exportHeader = "Name,Email,Phone,Source Link,Date"

// ExportCSV renders leads as comma-separated text with a fixed column
// order. The header row is bare; every data field is double-quoted
// regardless of content, which is the contract downstream spreadsheet
// imports rely on. Embedded quotes are doubled per RFC 4180. Rows are
// newline-joined with no trailing newline.
func ExportCSV(rows []WithSource) []byte {
	var b strings.Builder

	b.WriteString(exportHeader)

	for i := range rows {
		r := &rows[i]
		b.WriteByte('\n')
		writeRow(&b, []string{
			r.Name,
			r.Email,
			r.Phone,
			r.SourceTitle,
			r.CapturedAt.UTC().Format(time.RFC3339),
		})
	}

	return []byte(b.String())
}

// ExportFilename encodes the export date, e.g. leads_export_2026-09-01.csv.
func ExportFilename(now time.Time) string {
	return "leads_export_" + now.UTC().Format("2006-01-02") + ".csv"
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}
