package notebook

import "strings"

// Infer returns a copy of n with every cell id normalized and the title
// rederived from cell content. Decode applies it exactly once before
// returning; callers constructing a Notebook by hand must apply it
// themselves if they need the id contract to hold.
//
// Id inference: a cell whose decoded id is empty gets NormalizeID of its
// first source line (or of "" when the cell has no source). A cell with an
// explicit id is not trusted verbatim - the given id is re-normalized.
//
// Title inference: an empty title is replaced with the first cell's first
// source line, whitespace-trimmed. A non-empty title is replaced with the
// empty string. Discarding an explicitly supplied title is deliberate,
// faithfully matching the wire format's observed behavior.
func Infer(n Notebook) Notebook {
	cells := make([]NotebookCell, len(n.Cells))
	for i, entry := range n.Cells {
		id := entry.ID
		if id == "" {
			id = firstSourceLine(entry.Cell)
		}
		cells[i] = NotebookCell{ID: NormalizeID(id), Cell: entry.Cell}
	}

	title := ""
	if n.Title == "" && len(cells) > 0 {
		title = strings.TrimSpace(firstSourceLine(cells[0].Cell))
	}

	return Notebook{
		Title:   title,
		Kernel:  n.Kernel,
		Authors: n.Authors,
		Cells:   cells,
	}
}

// firstSourceLine returns the cell's first source line, or "" when the
// cell has no source.
func firstSourceLine(c Cell) string {
	if src := SourceOf(c); len(src) > 0 {
		return src[0]
	}
	return ""
}
