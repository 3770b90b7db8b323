// Package mask implements the separator pattern language used to join
// word pairs: parsing of mask strings into element trees and exhaustive
// expansion of those trees into concrete separator strings.
// Invariants:
//   - Scanning is left to right; the two-rune markers "?d" and "?^" win
//     over single-rune literals, and '{' opens a group.
//   - A '-' reverses a group only when it directly follows the group's
//     closing '}'; anywhere else it is a literal.
//   - An unmatched '}' is a literal; an unmatched '{' is a parse error.
//   - Expansion order is canonical: branches keep their left-to-right
//     order and every digit slot fans out '0'..'9' ascending.
//   - Expansion is pure. No state survives a call, duplicates are kept,
//     and equal masks always yield identical output sequences.
package mask
