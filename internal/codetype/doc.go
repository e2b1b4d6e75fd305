// Package codetype renders component interface types into C# source text.
//
// Every type is realized by a CodeType, obtained from a Resolver:
//   - TypeLabel: the C# surface syntax ("DateTime?", "Dictionary<string, int[]>")
//   - CanonicalName: a stable, collision-free identifier used to key
//     generated helpers ("OptionalTimestamp", "DictionaryStringSequenceInt32")
//   - Literal: the rendering of a default or constant value
//   - DefaultValue: the rendering used when no explicit value is supplied
//
// This package implements the compound realizers (optional, sequence, map)
// and the fixed-identity realizers (timestamp, duration). Nested types are
// always rendered by asking the injected Resolver again, so the realizers
// hold no state beyond the wrapped types.
package codetype
