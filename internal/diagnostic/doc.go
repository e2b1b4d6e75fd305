// Package diagnostic provides structured warnings and errors for the
// bindings generator, plus the fatal invariant error raised when code
// generation reaches a combination the interface model rules out.
//
// Key capabilities:
//   - Unknown or duplicate declaration reports with source paths
//   - Literal/type mismatch errors found while loading
//   - InvariantError, the panic value for impossible renderings
package diagnostic
