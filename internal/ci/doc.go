// Package ci provides the component interface model consumed by the bindings
// generator, together with a YAML loader for interface descriptions.
//
// Key types:
//   - Type: a node of the abstract type tree (primitive, timestamp, duration,
//     optional, sequence, map, or a named enum/record/object)
//   - Literal: a default or constant value attached to a typed position
//   - ComponentInterface: the declarations of one component
//
// Type expressions use a small syntax:
//
//	i32
//	optional<timestamp>
//	sequence<optional<string>>
//	map<string, sequence<duration>>
//	todo_entry            (a name declared in the same interface)
package ci
