// Package report formats and filters notebook cells for CLI display.
package report

import (
	"path/filepath"

	"github.com/dyluth/nib/pkg/notebook"
)

// Cell kinds as reported to the user.
const (
	KindMarkdown = "markdown"
	KindCode     = "code"
)

// Criteria defines filtering criteria for cells.
// All filters are ANDed together - a cell must match ALL criteria to pass.
type Criteria struct {
	TagGlob string // Glob pattern matched against each tag, empty = no filter
	Kind    string // KindMarkdown or KindCode, empty = no filter
}

// Matches returns true if the cell matches all filter criteria.
// Empty criteria values are treated as "match all" for that criterion.
func (c *Criteria) Matches(entry notebook.NotebookCell) bool {
	if c.Kind != "" && kindOf(entry.Cell) != c.Kind {
		return false
	}

	// Tag filtering - the glob must match at least one of the cell's tags
	if c.TagGlob != "" {
		matched := false
		for _, tag := range notebook.TagsOf(entry.Cell) {
			if ok, err := filepath.Match(c.TagGlob, tag); err == nil && ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// HasFilters returns true if any filters are active.
func (c *Criteria) HasFilters() bool {
	return c.TagGlob != "" || c.Kind != ""
}

// Filter returns the cells matching the criteria, preserving document order.
func Filter(cells []notebook.NotebookCell, criteria Criteria) []notebook.NotebookCell {
	if !criteria.HasFilters() {
		return cells
	}
	matched := []notebook.NotebookCell{}
	for _, entry := range cells {
		if criteria.Matches(entry) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// kindOf names the cell variant for display and filtering.
func kindOf(c notebook.Cell) string {
	if _, ok := c.(notebook.CodeCell); ok {
		return KindCode
	}
	return KindMarkdown
}
