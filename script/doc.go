// Package script maps the numeric codes of the Chakra to glyphs of a
// target Indic script, with table-driven combining rules.
//
// What:
//
//   - Spec is the plain, serializable description of one script: name,
//     code→glyph entries, the set of combining codes, and a placeholder
//     for unmapped codes. Specs parse from YAML documents (ParseSpec), so
//     a new script is a new document, never new code.
//   - Table is the validated, immutable runtime form: forward code→glyph
//     lookup, the combining predicate the decoder consults for its
//     base-vs-modifier tie-break, a reverse glyph→code index for
//     synthetic encoding, and coverage reporting (Missing/Complete).
//   - Builtins: Kannada, SanskritDevanagari, PrakritDevanagari — the
//     three traditional 64-code tables.
//   - Registry is the name-keyed catalog, preloaded with the builtins.
//
// Why:
//
//   - Whether code 62 is a letter or a vowel sign applied to the previous
//     letter differs per script; hard-coding that in the decoder would
//     close the set of scripts. Here it is data.
//
// Errors:
//
//   - ErrBadSpec: a spec that cannot form a coherent table (empty name,
//     code outside [1,64], empty glyph, combining code with no glyph).
//   - ErrUnknownScript / ErrDuplicateScript: registry lookup/registration.
//
// A code missing from a table is NOT an error here: the decoder substitutes
// the table's placeholder and counts the gap, because partially transcribed
// tables are the normal condition of this material.
package script
