package notebook

// Notebook is the root document: a title, the name of the execution kernel,
// an ordered list of authors, and the cells in document order.
//
// A Notebook produced by Decode has already been through Infer, so its cell
// ids satisfy the id contract and its title is derived from content. A
// Notebook built directly by a caller carries whatever the caller put in it
// until the caller runs Infer.
type Notebook struct {
	Title   string
	Kernel  string
	Authors []string
	Cells   []NotebookCell
}

// NotebookCell pairs a cell with its identifier. Order within
// Notebook.Cells is document order and is preserved through decode/encode.
type NotebookCell struct {
	ID   string
	Cell Cell
}

// Cell is a closed two-variant union: MarkdownCell or CodeCell.
// The marker method is unexported, so no other type can implement Cell;
// consumers match the two variants exhaustively with a type switch.
type Cell interface {
	isCell()
}

// MarkdownCell is a prose cell: tags plus source lines.
type MarkdownCell struct {
	Tags   []string // insertion order preserved, duplicates permitted
	Source []string // text lines; elements may contain embedded newlines
}

// CodeCell is an executable cell: tags, source lines, and the captured
// standard-output fragments of a previous execution.
type CodeCell struct {
	Tags    []string
	Source  []string
	Outputs []string // plain stdout text only; richer output types are out of scope
}

func (MarkdownCell) isCell() {}
func (CodeCell) isCell()     {}

// SourceOf returns the cell's source lines regardless of variant.
func SourceOf(c Cell) []string {
	switch c := c.(type) {
	case MarkdownCell:
		return c.Source
	case CodeCell:
		return c.Source
	}
	return nil
}

// TagsOf returns the cell's tags regardless of variant.
func TagsOf(c Cell) []string {
	switch c := c.(type) {
	case MarkdownCell:
		return c.Tags
	case CodeCell:
		return c.Tags
	}
	return nil
}
