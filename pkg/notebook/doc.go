// Package notebook converts between an in-memory notebook document model
// and a JSON serialization compatible with the Jupyter notebook format.
//
// # Overview
//
// The package is a pure value pipeline: Decode parses JSON text into a
// Notebook, tolerating missing or malformed optional fields by substituting
// well-defined defaults, and Encode renders a Notebook back to canonical,
// deterministic JSON. Between the two sits an inference pass that assigns
// every cell a stable, URL/filesystem-safe identifier and derives the
// notebook title from cell content.
//
// # Core Concepts
//
// A Notebook is the root document: a title, a kernel name, an ordered list
// of authors, and an ordered list of cells. Document order is significant
// and preserved through a decode/encode round trip.
//
// A Cell is one of two closed variants: MarkdownCell (tags + source lines)
// or CodeCell (tags + source lines + captured stdout fragments). The
// variants are matched exhaustively everywhere; there is no third shape.
//
// Cell ids are produced by NormalizeID, which maps any string onto the
// charset ^[a-z0-9_-]{1,64}$. Decode always runs Infer before returning,
// so every decoded notebook satisfies the id contract by construction.
// Notebooks built directly by a caller are not normalized automatically;
// call Infer yourself if you need the same guarantees.
//
// # Usage Example
//
//	import "github.com/dyluth/nib/pkg/notebook"
//
//	nb, err := notebook.Decode(input)
//	if err != nil {
//		// err is always a *notebook.DecodeError: the input was not
//		// syntactically valid JSON, or not a JSON object at the top level.
//		return err
//	}
//
//	// Every cell id now matches ^[a-z0-9_-]{1,64}$.
//	for _, entry := range nb.Cells {
//		fmt.Println(entry.ID, notebook.SourceOf(entry.Cell))
//	}
//
//	// Canonical nbformat-compatible output, byte-for-byte deterministic.
//	out := notebook.Encode(nb)
//
// # Design Principles
//
//   - Purity: every function is a pure function over immutable values; the
//     package performs no I/O, keeps no mutable state, and is safe for
//     concurrent use without synchronization
//   - Tolerance on input: a malformed optional field falls back to its
//     default silently; errors are reserved for unparseable input
//   - Determinism on output: fixed key order, 2-space indentation, no
//     dependence on map iteration order or locale
package notebook
