package ci

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// InterfaceFile is the root of a YAML interface description.
type InterfaceFile struct {
	// Namespace names the component; it seeds the generated namespace.
	Namespace string `yaml:"namespace"`
	// Records are plain value types.
	Records []RecordYAML `yaml:"records,omitempty"`
	// Enums are flat enumerations.
	Enums []EnumYAML `yaml:"enums,omitempty"`
	// Objects are reference types with constructors and methods.
	Objects []ObjectYAML `yaml:"objects,omitempty"`
	// Functions are top-level functions.
	Functions []FunctionYAML `yaml:"functions,omitempty"`
}

// RecordYAML is a record declaration.
type RecordYAML struct {
	Name   string      `yaml:"name"`
	Doc    string      `yaml:"doc,omitempty"`
	Fields []FieldYAML `yaml:"fields,omitempty"`
}

// FieldYAML is a record field or function argument.
type FieldYAML struct {
	Name    string       `yaml:"name"`
	Type    string       `yaml:"type"`
	Default *LiteralYAML `yaml:"default,omitempty"`
}

// EnumYAML is an enum declaration.
type EnumYAML struct {
	Name     string   `yaml:"name"`
	Doc      string   `yaml:"doc,omitempty"`
	Variants []string `yaml:"variants"`
}

// ObjectYAML is an object declaration.
type ObjectYAML struct {
	Name         string         `yaml:"name"`
	Doc          string         `yaml:"doc,omitempty"`
	Constructors []FunctionYAML `yaml:"constructors,omitempty"`
	Methods      []FunctionYAML `yaml:"methods,omitempty"`
}

// FunctionYAML is a function, method or constructor declaration.
type FunctionYAML struct {
	Name    string      `yaml:"name"`
	Doc     string      `yaml:"doc,omitempty"`
	Args    []FieldYAML `yaml:"args,omitempty"`
	Returns string      `yaml:"returns,omitempty"`
}

// LiteralYAML is a literal as written in YAML. It supports either a bare keyword
// ("none", "empty_sequence", "empty_map") or a single-key mapping:
//
//	default: none
//	default: {some: default}
//	default: {some: {int: 3}}
//	default: {uint: 255, radix: hex}
//	default: {enum: high}
type LiteralYAML struct {
	Keyword string    `yaml:"-"`
	Some    *SomeYAML `yaml:"some,omitempty"`
	Bool    *bool     `yaml:"bool,omitempty"`
	String  *string   `yaml:"string,omitempty"`
	Int     *int64    `yaml:"int,omitempty"`
	UInt    *uint64   `yaml:"uint,omitempty"`
	Float   *string   `yaml:"float,omitempty"`
	Enum    *string   `yaml:"enum,omitempty"`
	Radix   string    `yaml:"radix,omitempty"`
}

// literalFields is LiteralYAML without its custom unmarshaler.
type literalFields LiteralYAML

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *LiteralYAML) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		l.Keyword = node.Value

		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: literal must be a keyword or a mapping", node.Line)
	}

	var fields literalFields
	if err := node.Decode(&fields); err != nil {
		return err
	}

	*l = LiteralYAML(fields)

	return nil
}

// SomeYAML is the payload of a "some" literal: the keyword "default" or a nested literal.
type SomeYAML struct {
	UseDefault bool
	Literal    *LiteralYAML
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *SomeYAML) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Value == "default" {
		s.UseDefault = true

		return nil
	}

	var inner LiteralYAML
	if err := node.Decode(&inner); err != nil {
		return err
	}

	s.Literal = &inner

	return nil
}

var errAmbiguousLiteral = errors.New("literal must set exactly one value")

// set returns the number of value keys present.
func (l *LiteralYAML) set() int {
	n := 0
	if l.Keyword != "" {
		n++
	}

	for _, present := range []bool{
		l.Some != nil, l.Bool != nil, l.String != nil, l.Int != nil,
		l.UInt != nil, l.Float != nil, l.Enum != nil,
	} {
		if present {
			n++
		}
	}

	return n
}
