// Package nucleotide defines the four-letter RNA alphabet used by rnaenum
// and the pairing rule between its letters.
//
// What:
//
//   - Symbol: one of A, C, G, U. The zero value is Invalid and marks an
//     unrecognized letter; downstream packages reject it.
//   - Compatible: the Watson–Crick pairing relation (A–U, C–G). It is
//     symmetric and never reflexive.
//   - Parse / MustParse: case-insensitive text → []Symbol, whitespace ignored.
//   - Format: []Symbol → upper-case text.
//
// Errors:
//
//   - ErrUnknownSymbol  a rune outside the alphabet was found during Parse.
//
// Complexity: every function is O(n) in the input length; Compatible is O(1).
package nucleotide
