package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dyluth/nib/pkg/notebook"
)

// FormatTable writes cells as a formatted table to the provided writer.
// Columns: ID, KIND, TAGS, LINES, and the first source line (truncated).
// Returns the number of cells formatted.
func FormatTable(w io.Writer, cells []notebook.NotebookCell, source string) int {
	if len(cells) == 0 {
		fmt.Fprintf(w, "No cells found in '%s'\n", source)
		return 0
	}

	fmt.Fprintf(w, "Cells in '%s':\n\n", source)

	fmt.Fprintf(w, "%-24s %-8s %-20s %-5s %s\n",
		"ID", "KIND", "TAGS", "LINES", "FIRST LINE")
	fmt.Fprintf(w, "%-24s %-8s %-20s %-5s %s\n",
		"------------------------", "--------", "--------------------", "-----", "----------------------------------------")

	for _, entry := range cells {
		src := notebook.SourceOf(entry.Cell)
		fmt.Fprintf(w, "%-24s %-8s %-20s %-5d %s\n",
			formatID(entry.ID),
			kindOf(entry.Cell),
			formatTags(notebook.TagsOf(entry.Cell)),
			len(src),
			formatFirstLine(src),
		)
	}

	countMsg := "cell"
	if len(cells) != 1 {
		countMsg = "cells"
	}
	fmt.Fprintf(w, "\n%d %s found\n", len(cells), countMsg)

	return len(cells)
}

// cellRecord is the JSONL projection of one cell.
type cellRecord struct {
	ID        string   `json:"id"`
	Kind      string   `json:"kind"`
	Tags      []string `json:"tags"`
	Lines     int      `json:"lines"`
	FirstLine string   `json:"first_line"`
}

// FormatJSONL writes cells as line-delimited JSON (JSONL) to the provided
// writer, one cell per line. This format is ideal for processing with
// tools like jq.
func FormatJSONL(w io.Writer, cells []notebook.NotebookCell) error {
	for _, entry := range cells {
		src := notebook.SourceOf(entry.Cell)
		record := cellRecord{
			ID:    entry.ID,
			Kind:  kindOf(entry.Cell),
			Tags:  notebook.TagsOf(entry.Cell),
			Lines: len(src),
		}
		if record.Tags == nil {
			record.Tags = []string{}
		}
		if len(src) > 0 {
			record.FirstLine = src[0]
		}

		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal cell to JSON: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", string(data)); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}
	return nil
}

// formatID truncates long cell ids for compact display.
func formatID(id string) string {
	if len(id) > 24 {
		return id[:21] + "..."
	}
	return id
}

// formatTags joins tags for table display. No tags shows as "-".
func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	joined := strings.Join(tags, ",")
	if len(joined) > 20 {
		return joined[:17] + "..."
	}
	return joined
}

// formatFirstLine truncates the first source line to 40 characters for
// table display. Cells without source show "-". Embedded newlines stop
// the preview at the first line break.
func formatFirstLine(source []string) string {
	if len(source) == 0 {
		return "-"
	}
	line := source[0]
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "-"
	}
	if len(line) > 40 {
		return line[:37] + "..."
	}
	return line
}
