// Package gen renders C# bindings for a component interface.
//
// Every type label, literal and default comes from the code oracle. Compound
// types get one FfiConverter helper class each, keyed by canonical name, so a
// shape used in many places is emitted once. Helpers are ordered after the
// helpers they call. Output is rendered with text/template and is
// deterministic for a given interface and configuration.
//
// Leaf converters (primitives, timestamps, durations, user types) and the
// BigEndianStream type come from the runtime support file shipped alongside
// the generated bindings.
package gen
