package notebook

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultKernel is the kernel name assumed when the input does not supply one.
const DefaultKernel = "python3"

// DecodeError is the only error kind Decode returns. It is raised for input
// that is not syntactically valid JSON, or whose top-level value is not a
// JSON object. Every other schema deviation - a missing optional field, a
// field of the wrong shape, a malformed nested value - is recovered locally
// by substituting the documented default and never surfaces to the caller.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode notebook: %v", e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode parses JSON text into a Notebook.
//
// The top-level fields title, kernel, authors and cells are all optional,
// with defaults "", "python3", [] and [] respectively; a field that is
// present but has the wrong shape silently takes its default. Each cells
// entry is {cell_id?, cell} where the inner cell payload is required: a
// single entry missing or mangling its payload fails the whole cells list
// back to [] - the list decodes all-or-nothing, never partially.
//
// Decode always applies Infer before returning, so every cell id in the
// result matches ^[a-z0-9_-]{1,64}$ and the title is content-derived.
func Decode(text string) (Notebook, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return Notebook{}, &DecodeError{Err: err}
	}
	if fields == nil {
		// json.Unmarshal accepts a bare null; the schema requires an object.
		return Notebook{}, &DecodeError{Err: errors.New("top-level value must be a JSON object")}
	}

	n := Notebook{
		Title:   stringOr(fields["title"], ""),
		Kernel:  stringOr(fields["kernel"], DefaultKernel),
		Authors: stringListOr(fields["authors"]),
		Cells:   cellsOr(fields["cells"]),
	}
	return Infer(n), nil
}

// stringOr decodes raw as a JSON string, falling back when the field is
// absent or is not a string.
func stringOr(raw json.RawMessage, fallback string) string {
	var s string
	if raw == nil || json.Unmarshal(raw, &s) != nil {
		return fallback
	}
	return s
}

// stringListOr decodes raw as a list of strings. Absent, malformed or null
// input all fall back to the empty list; a non-string element fails the
// whole list, not just that element.
func stringListOr(raw json.RawMessage) []string {
	var list []string
	if raw == nil || json.Unmarshal(raw, &list) != nil || list == nil {
		return []string{}
	}
	return list
}

// cellsOr decodes the cells field all-or-nothing: any single entry that
// fails (typically by lacking its required cell payload) collapses the
// whole list to the default empty sequence.
func cellsOr(raw json.RawMessage) []NotebookCell {
	var entries []rawCellEntry
	if raw == nil || json.Unmarshal(raw, &entries) != nil {
		return []NotebookCell{}
	}
	cells := make([]NotebookCell, len(entries))
	for i, e := range entries {
		cells[i] = NotebookCell{ID: e.id, Cell: e.cell}
	}
	return cells
}

// rawCellEntry decodes one {cell_id?, cell} entry. The inner cell payload
// is the one field the schema declares required: its absence is an error
// rather than a default.
type rawCellEntry struct {
	id   string
	cell Cell
}

func (e *rawCellEntry) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	payload, ok := fields["cell"]
	if !ok {
		return errors.New("cell entry missing required cell payload")
	}
	cell, err := decodeCell(payload)
	if err != nil {
		return err
	}
	e.id = stringOr(fields["cell_id"], "")
	e.cell = cell
	return nil
}

// decodeCell decodes a cell payload. The payload must be a JSON object;
// its fields are all optional and individually tolerant. Any cell_type
// other than exactly "code" is treated as markdown.
func decodeCell(raw json.RawMessage) (Cell, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("cell payload must be a JSON object")
	}

	tags := tagsOr(fields["metadata"])
	source := stringListOr(fields["source"])

	if stringOr(fields["cell_type"], "markdown") == "code" {
		return CodeCell{Tags: tags, Source: source, Outputs: outputsOr(fields["outputs"])}, nil
	}
	return MarkdownCell{Tags: tags, Source: source}, nil
}

// tagsOr extracts metadata.tags, defaulting to the empty list when the
// metadata object or its tags field is absent or malformed.
func tagsOr(raw json.RawMessage) []string {
	var meta struct {
		Tags json.RawMessage `json:"tags"`
	}
	if raw == nil || json.Unmarshal(raw, &meta) != nil {
		return []string{}
	}
	return stringListOr(meta.Tags)
}

// outputsOr decodes a code cell's outputs all-or-nothing: every element
// must supply a text string, and one failing element collapses the whole
// list to the default empty sequence.
func outputsOr(raw json.RawMessage) []string {
	var outs []rawOutput
	if raw == nil || json.Unmarshal(raw, &outs) != nil {
		return []string{}
	}
	texts := make([]string, len(outs))
	for i, o := range outs {
		texts[i] = o.text
	}
	return texts
}

// rawOutput decodes one output element, requiring a text string field.
// Extra fields (output_type, name, ...) are ignored.
type rawOutput struct {
	text string
}

func (o *rawOutput) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	raw, ok := fields["text"]
	if !ok {
		return errors.New("output element missing required text field")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return err
	}
	o.text = s
	return nil
}
