// Package match splits identifiers into words and finds close matches among
// known names.
//
// Key functions:
//   - Words: splits snake_case, kebab-case and CamelCase identifiers
//   - Distance: computes edit distance between strings
//   - Closest: ranks known names by similarity for "did you mean" hints
package match
