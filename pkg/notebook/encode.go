package notebook

import (
	"bytes"
	"encoding/json"
	"strings"
)

// nbformat version stamped on every encoded notebook.
const (
	NBFormat      = 4
	NBFormatMinor = 5
)

// Wire shapes for the canonical output. Struct field order fixes the JSON
// key order, which is what makes Encode byte-for-byte deterministic.
type encNotebook struct {
	Metadata      encMetadata    `json:"metadata"`
	NBFormat      int            `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
	Cells         []encCellEntry `json:"cells"`
}

type encMetadata struct {
	KernelInfo encKernelInfo `json:"kernel_info"`
}

type encKernelInfo struct {
	Name string `json:"name"`
}

type encCellEntry struct {
	CellID string  `json:"cell_id"`
	Cell   encCell `json:"cell"`
}

type encCell struct {
	Metadata encCellMetadata `json:"metadata"`
	Source   []string        `json:"source"`
	// Present for code cells only, including empty ones; nil means markdown.
	Outputs *[]encOutput `json:"outputs,omitempty"`
}

type encCellMetadata struct {
	// Empty tags change the output shape: metadata serializes as {} rather
	// than {"tags": []}.
	Tags []string `json:"tags,omitempty"`
}

type encOutput struct {
	OutputType string `json:"output_type"`
	Name       string `json:"name"`
	Text       string `json:"text"`
}

// Encode renders a Notebook as canonical nbformat-compatible JSON. It is
// total over the data model and never fails.
//
// The output object holds, in order: metadata.kernel_info.name, nbformat,
// nbformat_minor, cells. Each output string of a code cell becomes a
// {"output_type": "stream", "name": "stdout", "text": ...} object - richer
// output metadata from a true Jupyter file is not representable here. The
// result uses 2-space indentation, escapes no HTML characters, and carries
// no trailing newline.
func Encode(n Notebook) string {
	doc := encNotebook{
		Metadata:      encMetadata{KernelInfo: encKernelInfo{Name: n.Kernel}},
		NBFormat:      NBFormat,
		NBFormatMinor: NBFormatMinor,
		Cells:         make([]encCellEntry, len(n.Cells)),
	}
	for i, entry := range n.Cells {
		doc.Cells[i] = encCellEntry{CellID: entry.ID, Cell: encodeCell(entry.Cell)}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	// The value graph is plain structs, strings and slices; marshalling
	// cannot fail.
	_ = enc.Encode(doc)
	return strings.TrimSuffix(buf.String(), "\n")
}

func encodeCell(c Cell) encCell {
	switch c := c.(type) {
	case MarkdownCell:
		return encCell{
			Metadata: encCellMetadata{Tags: c.Tags},
			Source:   nonNil(c.Source),
		}
	case CodeCell:
		outputs := make([]encOutput, len(c.Outputs))
		for i, text := range c.Outputs {
			outputs[i] = encOutput{OutputType: "stream", Name: "stdout", Text: text}
		}
		return encCell{
			Metadata: encCellMetadata{Tags: c.Tags},
			Source:   nonNil(c.Source),
			Outputs:  &outputs,
		}
	}
	// Cell is sealed; the two cases above are exhaustive.
	return encCell{Source: []string{}}
}

// nonNil keeps a caller-built nil slice from serializing as null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
