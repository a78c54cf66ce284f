// Package decode turns a traversal Sequence into readable text under a
// script table, extracts steganographically hidden texts, and inverts the
// mapping for synthetic encoding.
//
// What:
//
//   - Decode walks a Sequence left to right: a mapped code emits its glyph;
//     a code the table marks combining merges into the preceding base
//     grapheme; an unmapped code emits the table placeholder and bumps the
//     unknown counter instead of failing.
//   - Result carries the NFC-normalized text, the unknown-code count (the
//     caller's decode-confidence signal) and the user-perceived grapheme
//     count.
//   - Hidden runs two fully independent (pattern, table) pipelines over
//     one grid concurrently and returns both texts — the steganographic
//     property of the Bhoovalaya in one call.
//   - Codes / EncodeGrid invert the mapping: text → codes → a grid whose
//     decode under the same pattern and table reproduces the text.
//
// Why:
//
//   - An incomplete script table is a fact of life for this material; a
//     partial, placeholder-marked decode with an honest gap count serves a
//     researcher far better than an abort.
//
// Complexity:
//
//   - Decode:     O(len(sequence)).
//   - Hidden:     two O(Cells) pipelines on an errgroup.
//   - Codes:      O(len(text) × longest glyph).
//   - EncodeGrid: O(Cells).
//
// Errors:
//
//   - ErrNilTable: Decode/Codes called without a table.
//   - ErrUnencodable: Codes met a grapheme the table cannot express.
//   - ErrTooLong: EncodeGrid got more than 729 codes.
//   - Integrity and range errors from traverse/bandha/chakra propagate
//     unmodified through Hidden and EncodeGrid.
package decode
