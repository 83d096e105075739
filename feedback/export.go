// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feedback

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/party-feedback/models"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

var csvHeader = []string{
	"ID", "Submitted At", "Name", "Department",
	"Food", "Venue", "Decor", "Photobooth", "Giveaways", "Emcees", "Games",
	"Dept Presentations", "Raffle", "Loyalty Awards", "Comment",
}

// ExportFilename returns the download name for an export taken at t
func ExportFilename(format string, t time.Time) string {
	return fmt.Sprintf("christmas-party-feedback-%s.%s", t.UTC().Format("2006-01-02"), format)
}

// WriteCSV writes one row per record. Free-text columns are always quoted
// with embedded quotes doubled, which encoding/csv does not do for values
// that need no quoting.
func WriteCSV(w io.Writer, records []models.ReportRecord) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(strings.Join(csvHeader, ","))
	bw.WriteByte('\n')

	for _, r := range records {
		fields := []string{
			strconv.FormatInt(r.ID, 10),
			quoteCSV(r.SubmittedAt.UTC().Format(time.RFC3339)),
			quoteCSV(r.Name),
			quoteCSV(r.Department),
		}
		for _, c := range models.Categories {
			fields = append(fields, strconv.Itoa(r.Ratings.Get(c)))
		}
		fields = append(fields, quoteCSV(r.Comment))

		bw.WriteString(strings.Join(fields, ","))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteJSON writes the full report, indented
func WriteJSON(w io.Writer, report models.ReportResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
