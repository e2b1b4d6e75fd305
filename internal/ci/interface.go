package ci

// ComponentInterface holds the declarations of one component.
type ComponentInterface struct {
	Namespace string
	Records   []RecordDecl
	Enums     []EnumDecl
	Objects   []ObjectDecl
	Functions []FunctionDecl
}

// RecordDecl declares a record (a plain value type with named fields).
type RecordDecl struct {
	Name   string
	Doc    string
	Fields []FieldDecl
}

// FieldDecl is a record field or a function argument.
type FieldDecl struct {
	Name    string
	Type    Type
	Default *Literal // nil when no default is declared
}

// EnumDecl declares a flat enum.
type EnumDecl struct {
	Name     string
	Doc      string
	Variants []string
}

// ObjectDecl declares an object with constructors and methods.
type ObjectDecl struct {
	Name         string
	Doc          string
	Constructors []FunctionDecl
	Methods      []FunctionDecl
}

// FunctionDecl declares a function, method or constructor.
type FunctionDecl struct {
	Name    string
	Doc     string
	Args    []FieldDecl
	Returns *Type // nil for functions without a return value
}

// NewComponentInterface creates an empty interface for the given namespace.
func NewComponentInterface(namespace string) *ComponentInterface {
	return &ComponentInterface{Namespace: namespace}
}

// Lookup returns the kind of the declaration with the given name.
func (c *ComponentInterface) Lookup(name string) (Kind, bool) {
	for _, r := range c.Records {
		if r.Name == name {
			return KindRecord, true
		}
	}

	for _, e := range c.Enums {
		if e.Name == name {
			return KindEnum, true
		}
	}

	for _, o := range c.Objects {
		if o.Name == name {
			return KindObject, true
		}
	}

	return 0, false
}

// GetEnum returns the enum declaration with the given name, or nil if not found.
func (c *ComponentInterface) GetEnum(name string) *EnumDecl {
	for i := range c.Enums {
		if c.Enums[i].Name == name {
			return &c.Enums[i]
		}
	}

	return nil
}

// IterTypes calls fn for every type reachable from the interface's declarations,
// including nested types, in declaration order. A type may be visited more than once.
func (c *ComponentInterface) IterTypes(fn func(Type)) {
	var walk func(t Type)
	walk = func(t Type) {
		fn(t)

		for _, child := range t.Children() {
			walk(child)
		}
	}

	walkFunc := func(f FunctionDecl) {
		for _, a := range f.Args {
			walk(a.Type)
		}

		if f.Returns != nil {
			walk(*f.Returns)
		}
	}

	for _, r := range c.Records {
		walk(Record(r.Name))

		for _, f := range r.Fields {
			walk(f.Type)
		}
	}

	for _, e := range c.Enums {
		walk(Enum(e.Name))
	}

	for _, o := range c.Objects {
		walk(Object(o.Name))

		for _, ctor := range o.Constructors {
			walkFunc(ctor)
		}

		for _, m := range o.Methods {
			walkFunc(m)
		}
	}

	for _, f := range c.Functions {
		walkFunc(f)
	}
}
