package ci

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// keywords maps type expression keywords to kinds.
var keywords = map[string]Kind{
	"i8":        KindInt8,
	"u8":        KindUInt8,
	"i16":       KindInt16,
	"u16":       KindUInt16,
	"i32":       KindInt32,
	"u32":       KindUInt32,
	"i64":       KindInt64,
	"u64":       KindUInt64,
	"f32":       KindFloat32,
	"f64":       KindFloat64,
	"bool":      KindBoolean,
	"string":    KindString,
	"bytes":     KindBytes,
	"timestamp": KindTimestamp,
	"duration":  KindDuration,
	"optional":  KindOptional,
	"sequence":  KindSequence,
	"map":       KindMap,
}

func keywordOf(k Kind) string {
	for kw, kind := range keywords {
		if kind == k {
			return kw
		}
	}

	return ""
}

var (
	// ErrEmptyTypeExpr is returned when parsing a blank type expression.
	ErrEmptyTypeExpr = errors.New("empty type expression")
	// ErrUnknownType is returned when a name is neither a keyword nor declared.
	ErrUnknownType = errors.New("unknown type")
)

// UnknownTypeError reports a name that is neither a keyword nor declared.
// It matches ErrUnknownType with errors.Is.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownType, e.Name)
}

// Is reports whether target is ErrUnknownType.
func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// NameLookup resolves a declared name to the kind of its declaration.
type NameLookup func(name string) (Kind, bool)

// ParseType parses a type expression such as "map<string, sequence<duration>>".
// Names that are not keywords are resolved with lookup; a nil lookup rejects them.
func ParseType(expr string, lookup NameLookup) (Type, error) {
	p := &typeParser{src: expr, lookup: lookup}

	p.skipSpace()

	if p.eof() {
		return Type{}, ErrEmptyTypeExpr
	}

	t, err := p.parseType()
	if err != nil {
		return Type{}, fmt.Errorf("parsing type %q: %w", expr, err)
	}

	p.skipSpace()

	if !p.eof() {
		return Type{}, fmt.Errorf("parsing type %q: unexpected %q at offset %d", expr, p.src[p.pos:], p.pos)
	}

	return t, nil
}

// MustParseType is like ParseType but panics on error. Intended for tests and fixtures.
func MustParseType(expr string) Type {
	t, err := ParseType(expr, nil)
	if err != nil {
		panic(err)
	}

	return t
}

type typeParser struct {
	src    string
	pos    int
	lookup NameLookup
}

func (p *typeParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *typeParser) skipSpace() {
	for !p.eof() && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *typeParser) ident() string {
	start := p.pos
	for !p.eof() {
		c := rune(p.src[p.pos])
		if c != '_' && !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			break
		}

		p.pos++
	}

	return p.src[start:p.pos]
}

func (p *typeParser) expect(c byte) error {
	p.skipSpace()

	if p.eof() {
		return fmt.Errorf("expected %q, found end of input", c)
	}

	if p.src[p.pos] != c {
		return fmt.Errorf("expected %q at offset %d, found %q", c, p.pos, p.src[p.pos])
	}

	p.pos++

	return nil
}

func (p *typeParser) parseType() (Type, error) {
	p.skipSpace()

	name := p.ident()
	if name == "" {
		if p.eof() {
			return Type{}, errors.New("expected type name, found end of input")
		}

		return Type{}, fmt.Errorf("expected type name at offset %d", p.pos)
	}

	kind, ok := keywords[strings.ToLower(name)]
	if !ok {
		return p.named(name)
	}

	switch kind {
	case KindOptional, KindSequence:
		args, err := p.parseArgs(1)
		if err != nil {
			return Type{}, fmt.Errorf("%s: %w", name, err)
		}

		if kind == KindOptional {
			return Optional(args[0]), nil
		}

		return Sequence(args[0]), nil

	case KindMap:
		args, err := p.parseArgs(2)
		if err != nil {
			return Type{}, fmt.Errorf("%s: %w", name, err)
		}

		return Map(args[0], args[1]), nil

	default:
		return Primitive(kind), nil
	}
}

func (p *typeParser) parseArgs(n int) ([]Type, error) {
	if err := p.expect('<'); err != nil {
		return nil, err
	}

	args := make([]Type, 0, n)

	for i := range n {
		if i > 0 {
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}

		arg, err := p.parseType()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	if err := p.expect('>'); err != nil {
		return nil, err
	}

	return args, nil
}

func (p *typeParser) named(name string) (Type, error) {
	if p.lookup == nil {
		return Type{}, &UnknownTypeError{Name: name}
	}

	kind, ok := p.lookup(name)
	if !ok {
		return Type{}, &UnknownTypeError{Name: name}
	}

	return Type{Kind: kind, Name: name}, nil
}
