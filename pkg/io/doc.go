// Package io provides JSON import and export for generated puzzles.
//
// # Overview
//
// This package serializes puzzles to and from a simple JSON format. The
// format is designed for:
//
//   - Handing a generated puzzle to renderers in a separate invocation
//   - Integration with external tools that consume puzzle data
//   - Caching of generated puzzles for faster re-rendering
//   - Round-trip preservation: generate, export, and re-import identically
//
// # JSON Format
//
// The format has a required "words" array plus optional extras:
//
//	{
//	  "words": [
//	    {"word": "CROSS", "clue": "Traverse", "row": 0, "col": 0,
//	     "direction": "across", "number": 1},
//	    {"word": "ROAD", "clue": "Street", "row": 0, "col": 1,
//	     "direction": "down", "number": 2}
//	  ],
//	  "unplaced": ["ZEBRA"],
//	  "grid": [[{"letter": "C", "number": 1}, null, ...], ...]
//	}
//
// The "grid" array is a dense row-major projection included on export for
// consumers that want cell data without replaying placements. On import it
// is ignored: the grid is rebuilt from the word placements, which are the
// authoritative representation.
//
// # Import
//
// Use [ImportJSON] to read a puzzle from a file path, or [ReadJSON] to read
// from any io.Reader. Both validate that the placements are mutually
// consistent (no two words claiming different letters for the same cell).
//
// # Export
//
// Use [ExportJSON] to write a puzzle to a file, or [WriteJSON] to write to
// any io.Writer. [Marshal] returns the encoded bytes directly for callers
// that store or transmit puzzles rather than writing files.
package io
