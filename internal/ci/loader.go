package ci

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"os"
	"regexp"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"cs-bindgen/internal/diagnostic"
	"cs-bindgen/internal/match"
)

// LoadFile loads and parses a YAML interface description from the given path.
// Diagnostics with error severity are reported as the returned error.
func LoadFile(path string) (*ComponentInterface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read interface file %s: %w", path, err)
	}

	c, diags, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse parses YAML data into a ComponentInterface.
// The returned error covers malformed YAML only; problems with the declarations
// themselves are collected in the diagnostics.
func Parse(data []byte) (*ComponentInterface, diagnostic.Diagnostics, error) {
	var f InterfaceFile

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("failed to parse interface YAML: %w", err)
	}

	c, diags := Build(&f)

	return c, diags, nil
}

// Build converts a decoded InterfaceFile into a ComponentInterface.
func Build(f *InterfaceFile) (*ComponentInterface, diagnostic.Diagnostics) {
	b := &builder{ci: NewComponentInterface(f.Namespace), folded: make(map[string]string)}

	if f.Namespace == "" {
		b.diags.AddError(diagnostic.CodeMissingName, "interface has no namespace", "", "namespace")
	}

	b.declare(f)

	for i, r := range f.Records {
		b.ci.Records[i].Fields = b.fields("record "+r.Name, "fields", r.Fields)
	}

	for i, o := range f.Objects {
		decl := "object " + o.Name
		b.ci.Objects[i].Constructors = b.functions(decl, "constructors", o.Constructors)
		b.ci.Objects[i].Methods = b.functions(decl, "methods", o.Methods)
	}

	b.ci.Functions = b.functions("", "functions", f.Functions)

	return b.ci, b.diags
}

type builder struct {
	ci     *ComponentInterface
	diags  diagnostic.Diagnostics
	seen   []string
	folded map[string]string // folded name -> declared name
}

// declare registers every named declaration so that members can refer to
// declarations appearing later in the file.
func (b *builder) declare(f *InterfaceFile) {
	for i, r := range f.Records {
		b.claim(r.Name, "record", fmt.Sprintf("records[%d]", i))
		b.ci.Records = append(b.ci.Records, RecordDecl{Name: r.Name, Doc: r.Doc})
	}

	for i, e := range f.Enums {
		b.claim(e.Name, "enum", fmt.Sprintf("enums[%d]", i))

		if len(e.Variants) == 0 {
			b.diags.AddWarning(diagnostic.CodeEmptyEnum, "enum has no variants", "enum "+e.Name, "variants")
		}

		variants := make(map[string]string, len(e.Variants))
		for j, v := range e.Variants {
			b.unique(variants, v, "variant", "enum "+e.Name, fmt.Sprintf("variants[%d]", j))
		}

		b.ci.Enums = append(b.ci.Enums, EnumDecl{Name: e.Name, Doc: e.Doc, Variants: slices.Clone(e.Variants)})
	}

	for i, o := range f.Objects {
		b.claim(o.Name, "object", fmt.Sprintf("objects[%d]", i))
		b.ci.Objects = append(b.ci.Objects, ObjectDecl{Name: o.Name, Doc: o.Doc})
	}
}

func (b *builder) claim(name, what, path string) {
	if name == "" {
		b.diags.AddError(diagnostic.CodeMissingName, what+" without a name", "", path)
		return
	}

	if _, ok := keywords[name]; ok {
		b.diags.AddError(diagnostic.CodeDuplicateName,
			fmt.Sprintf("%s %q shadows a builtin type", what, name), "", path)

		return
	}

	if b.unique(b.folded, name, what, "", path) {
		b.seen = append(b.seen, name)
	}
}

// unique records name in names under its folded form. Names that differ only in
// case or separators map to the same C# identifier and are reported as duplicates.
func (b *builder) unique(names map[string]string, name, what, decl, path string) bool {
	key := match.Fold(name)

	prev, ok := names[key]
	if !ok {
		names[key] = name
		return true
	}

	msg := fmt.Sprintf("%s %q is declared more than once", what, name)
	if prev != name {
		msg = fmt.Sprintf("%s %q has the same C# name as %q", what, name, prev)
	}

	b.diags.AddError(diagnostic.CodeDuplicateName, msg, decl, path)

	return false
}

func (b *builder) parseType(expr, decl, path string) (Type, bool) {
	t, err := ParseType(expr, b.ci.Lookup)
	if err == nil {
		return t, true
	}

	var unknown *UnknownTypeError
	if errors.As(err, &unknown) {
		b.diags.AddError(diagnostic.CodeUnknownType, err.Error(), decl, path,
			match.Closest(unknown.Name, b.typeNames())...)

		return Type{}, false
	}

	b.diags.AddError(diagnostic.CodeTypeSyntax, err.Error(), decl, path)

	return Type{}, false
}

// typeNames lists every name a type expression may refer to.
func (b *builder) typeNames() []string {
	names := slices.Sorted(maps.Keys(keywords))

	return append(names, b.seen...)
}

// fields converts record fields or function arguments. Once a member declares a
// default, every member after it must declare one too.
func (b *builder) fields(decl, path string, in []FieldYAML) []FieldDecl {
	out := make([]FieldDecl, 0, len(in))
	names := make(map[string]string, len(in))
	defaulted := ""

	for _, f := range in {
		fieldPath := path + "." + f.Name
		if f.Name == "" {
			b.diags.AddError(diagnostic.CodeMissingName, "member without a name", decl, path)
			continue
		}

		if !b.unique(names, f.Name, "member", decl, fieldPath) {
			continue
		}

		if f.Default != nil {
			defaulted = f.Name
		} else if defaulted != "" {
			b.diags.AddError(diagnostic.CodeDefaultOrder,
				fmt.Sprintf("member %q has no default but follows %q, which has one", f.Name, defaulted),
				decl, fieldPath)
		}

		t, ok := b.parseType(f.Type, decl, fieldPath)
		if !ok {
			continue
		}

		field := FieldDecl{Name: f.Name, Type: t}

		if f.Default != nil {
			lit, code, err := b.literal(f.Default, t)
			if err != nil {
				b.diags.AddError(code, err.Error(), decl, fieldPath+".default")
				continue
			}

			if writtenInOctal(lit) {
				b.diags.AddInfo(diagnostic.CodeOctalLiteral, "octal literal is written in decimal", decl, fieldPath+".default")
			}

			field.Default = &lit
		}

		out = append(out, field)
	}

	return out
}

func (b *builder) functions(decl, path string, in []FunctionYAML) []FunctionDecl {
	out := make([]FunctionDecl, 0, len(in))

	for i, f := range in {
		if f.Name == "" {
			b.diags.AddError(diagnostic.CodeMissingName, "function without a name", decl, fmt.Sprintf("%s[%d]", path, i))
			continue
		}

		fnPath := path + "." + f.Name
		fn := FunctionDecl{
			Name: f.Name,
			Doc:  f.Doc,
			Args: b.fields(decl, fnPath+".args", f.Args),
		}

		if f.Returns != "" {
			t, ok := b.parseType(f.Returns, decl, fnPath+".returns")
			if !ok {
				continue
			}

			fn.Returns = &t
		}

		out = append(out, fn)
	}

	return out
}

// literal converts a YAML literal checked against the type of its position.
// On failure it also returns the diagnostic code to report.
func (b *builder) literal(l *LiteralYAML, t Type) (Literal, string, error) {
	if l.set() != 1 {
		return Literal{}, diagnostic.CodeLiteralSyntax, errAmbiguousLiteral
	}

	mismatch := func(what string) (Literal, string, error) {
		return Literal{}, diagnostic.CodeLiteralMismatch,
			fmt.Errorf("%s literal is not valid for type %s", what, t)
	}

	switch {
	case l.Keyword != "":
		return b.keywordLiteral(l.Keyword, t)

	case l.Some != nil:
		if t.Kind != KindOptional {
			return mismatch("some")
		}

		if l.Some.UseDefault {
			return SomeDefault(), "", nil
		}

		inner, code, err := b.literal(l.Some.Literal, *t.Inner)
		if err != nil {
			return Literal{}, code, err
		}

		return Some(inner), "", nil

	case l.Bool != nil:
		if t.Kind != KindBoolean {
			return mismatch("bool")
		}

		return Bool(*l.Bool), "", nil

	case l.String != nil:
		if t.Kind != KindString {
			return mismatch("string")
		}

		return String(*l.String), "", nil

	case l.Int != nil, l.UInt != nil:
		return b.integerLiteral(l, t)

	case l.Float != nil:
		if !t.Kind.IsFloat() {
			return mismatch("float")
		}

		return floatLiteral(*l.Float, t)

	default:
		if t.Kind != KindEnum {
			return mismatch("enum")
		}

		decl := b.ci.GetEnum(t.Name)
		if decl == nil || !slices.Contains(decl.Variants, *l.Enum) {
			err := fmt.Errorf("enum %s has no variant %q", t.Name, *l.Enum)
			if decl != nil {
				if hint := match.Closest(*l.Enum, decl.Variants); len(hint) > 0 {
					err = fmt.Errorf("%w (did you mean %q?)", err, hint[0])
				}
			}

			return Literal{}, diagnostic.CodeLiteralMismatch, err
		}

		return EnumVariant(*l.Enum, t), "", nil
	}
}

func (b *builder) keywordLiteral(keyword string, t Type) (Literal, string, error) {
	var (
		lit Literal
		ok  bool
	)

	switch keyword {
	case "none":
		lit, ok = None(), t.Kind == KindOptional
	case "empty_sequence":
		lit, ok = EmptySequence(), t.Kind == KindOptional || t.Kind == KindSequence
	case "empty_map":
		lit, ok = EmptyMap(), t.Kind == KindOptional || t.Kind == KindMap
	default:
		return Literal{}, diagnostic.CodeLiteralSyntax, fmt.Errorf("unknown literal keyword %q", keyword)
	}

	if !ok {
		return Literal{}, diagnostic.CodeLiteralMismatch,
			fmt.Errorf("%s literal is not valid for type %s", keyword, t)
	}

	return lit, "", nil
}

func (b *builder) integerLiteral(l *LiteralYAML, t Type) (Literal, string, error) {
	if !t.Kind.IsInteger() {
		return Literal{}, diagnostic.CodeLiteralMismatch, fmt.Errorf("integer literal is not valid for type %s", t)
	}

	radix, err := parseRadix(l.Radix)
	if err != nil {
		return Literal{}, diagnostic.CodeLiteralSyntax, err
	}

	lo, hi := integerRange(t.Kind)

	if t.Kind.IsSigned() {
		if l.UInt != nil {
			if *l.UInt > uint64(hi) {
				return Literal{}, diagnostic.CodeLiteralMismatch, fmt.Errorf("%d overflows %s", *l.UInt, t)
			}

			return Int(int64(*l.UInt), radix, t), "", nil
		}

		if *l.Int < lo || *l.Int > int64(hi) {
			return Literal{}, diagnostic.CodeLiteralMismatch, fmt.Errorf("%d overflows %s", *l.Int, t)
		}

		return Int(*l.Int, radix, t), "", nil
	}

	var v uint64
	if l.Int != nil {
		if *l.Int < 0 {
			return Literal{}, diagnostic.CodeLiteralMismatch, fmt.Errorf("negative literal %d for unsigned type %s", *l.Int, t)
		}

		v = uint64(*l.Int)
	} else {
		v = *l.UInt
	}

	if v > hi {
		return Literal{}, diagnostic.CodeLiteralMismatch, fmt.Errorf("%d overflows %s", v, t)
	}

	return UInt(v, radix, t), "", nil
}

// writtenInOctal reports whether lit, or the value it wraps, is an octal integer.
func writtenInOctal(lit Literal) bool {
	for lit.Kind == LiteralSome && !lit.Default.UseTypeDefault() {
		lit = *lit.Default.Literal
	}

	return (lit.Kind == LiteralInt || lit.Kind == LiteralUInt) && lit.Radix == RadixOctal
}

// integerRange returns the bounds of an integer kind. The lower bound is zero
// for unsigned kinds.
func integerRange(k Kind) (int64, uint64) {
	switch k {
	case KindInt8:
		return math.MinInt8, math.MaxInt8
	case KindInt16:
		return math.MinInt16, math.MaxInt16
	case KindInt32:
		return math.MinInt32, math.MaxInt32
	case KindInt64:
		return math.MinInt64, math.MaxInt64
	case KindUInt8:
		return 0, math.MaxUint8
	case KindUInt16:
		return 0, math.MaxUint16
	case KindUInt32:
		return 0, math.MaxUint32
	default:
		return 0, math.MaxUint64
	}
}

// decimalFloat matches the float forms C# accepts as a real literal body.
var decimalFloat = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?$`)

func floatLiteral(text string, t Type) (Literal, string, error) {
	if !decimalFloat.MatchString(text) {
		return Literal{}, diagnostic.CodeLiteralSyntax, fmt.Errorf("invalid float literal %q", text)
	}

	bits := 64
	if t.Kind == KindFloat32 {
		bits = 32
	}

	if _, err := strconv.ParseFloat(text, bits); err != nil {
		return Literal{}, diagnostic.CodeLiteralMismatch, fmt.Errorf("%s overflows %s", text, t)
	}

	return Float(text, t), "", nil
}

func parseRadix(s string) (Radix, error) {
	switch s {
	case "", "decimal":
		return RadixDecimal, nil
	case "hex":
		return RadixHexadecimal, nil
	case "octal":
		return RadixOctal, nil
	default:
		return 0, fmt.Errorf("unknown radix %q", s)
	}
}
