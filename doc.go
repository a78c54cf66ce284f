// Package bhoovalaya reconstructs the hidden verses of the Siri Bhoovalaya —
// texts encoded as numbers in a fixed 27×27 grid (the Chakra) and recovered
// by walking the grid in named geometric orders (the Bandhas).
//
// 🚀 What is bhoovalaya?
//
//	A small, deterministic decode engine that brings together:
//		• Chakra: the validated 27×27 grid of codes 1..64
//		• Bandhas: Chakra-Bandh (concentric rings), Navamaank-Bandh
//		  (by-nines blocks/bands), Sarvatobhadra-Bandh (diagonal sweep)
//		• Traversal: pattern-ordered extraction of the 729-code sequence
//		• Scripts: Kannada, Sanskrit and Prakrit tables with table-driven
//		  combining signs (virama, anusvāra, visarga)
//		• Steganography: the same grid read under two Bandhas yields two
//		  independent texts
//
// ✨ Why choose bhoovalaya?
//
//   - Deterministic – every traversal is a verified permutation of all 729 cells
//   - Pure – no I/O, no global state; grids and tables are immutable once built
//   - Extensible – new Bandhas and script tables register by name, the
//     engine never changes
//   - Honest about gaps – an incomplete table yields placeholders and an
//     unknown-code count, never a silent truncation
//
// Everything is organized under five subpackages:
//
//	chakra/   — Grid and Coord primitives with shape and range validation
//	bandha/   — traversal patterns, permutation verifier, name-keyed registry
//	traverse/ — drives a Bandha over a Chakra into a numeric Sequence
//	script/   — per-script code→glyph tables, YAML specs, registry
//	decode/   — sequence→text decoding, hidden-text extraction, inverse encode
//
// Quick sketch:
//
//	grid ──(bandha order)──► 729 codes ──(script table)──► text
//	  └───(second bandha)──► 729 codes ──(script table)──► hidden text
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/bhoovalaya
package bhoovalaya
