package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cs-bindgen/internal/ci"
	"cs-bindgen/internal/config"
	"cs-bindgen/internal/diagnostic"
	"cs-bindgen/internal/oracle"
)

// ErrOutputFileConflict is returned when several interfaces would be written to one file.
var ErrOutputFileConflict = errors.New("output file conflict")

// Generator generates C# bindings for component interfaces.
type Generator struct {
	config config.Config
	oracle *oracle.CodeOracle
}

// GeneratedFile represents a generated C# source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "todolist.cs").
	Filename string
	// Content is the generated source.
	Content []byte
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(cfg config.Config) *Generator {
	return &Generator{config: cfg, oracle: oracle.New()}
}

// Generate renders the bindings for one interface.
//
// A literal that cannot be rendered for its type panics with
// *diagnostic.InvariantError; loaded interfaces never contain one.
func (g *Generator) Generate(c *ci.ComponentInterface) (*GeneratedFile, error) {
	helpers, err := collectHelpers(g.oracle, c)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", c.Namespace, err)
	}

	data := g.buildTemplateData(c)
	data.Helpers = helpers

	var buf bytes.Buffer
	if err := bindingsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", c.Namespace, err)
	}

	return &GeneratedFile{
		Filename: g.filename(c),
		Content:  tidy(buf.Bytes()),
	}, nil
}

// GenerateAll renders several interfaces concurrently. Results keep the input order.
func (g *Generator) GenerateAll(ctx context.Context, interfaces []*ci.ComponentInterface) ([]GeneratedFile, error) {
	if g.config.OutputFile != "" && len(interfaces) > 1 {
		return nil, fmt.Errorf("%w: output_file %q set for %d interfaces",
			ErrOutputFileConflict, g.config.OutputFile, len(interfaces))
	}

	files := make([]GeneratedFile, len(interfaces))
	fatal := make([]*diagnostic.InvariantError, len(interfaces))

	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, c := range interfaces {
		eg.Go(func() error {
			// Invariant violations are re-raised on the calling goroutine.
			defer func() {
				if r := recover(); r != nil {
					ie, ok := r.(*diagnostic.InvariantError)
					if !ok {
						panic(r)
					}

					fatal[i] = ie
				}
			}()

			if err := ectx.Err(); err != nil {
				return err
			}

			file, err := g.Generate(c)
			if err != nil {
				return err
			}

			files[i] = *file

			return nil
		})
	}

	err := eg.Wait()

	for _, ie := range fatal {
		if ie != nil {
			panic(ie)
		}
	}

	if err != nil {
		return nil, err
	}

	seen := make(map[string]string, len(files))
	for i, f := range files {
		if prev, dup := seen[f.Filename]; dup {
			return nil, fmt.Errorf("%w: %s and %s both write %s",
				ErrOutputFileConflict, prev, interfaces[i].Namespace, f.Filename)
		}

		seen[f.Filename] = interfaces[i].Namespace
	}

	return files, nil
}

func (g *Generator) filename(c *ci.ComponentInterface) string {
	if g.config.OutputFile != "" {
		return g.config.OutputFile
	}

	return c.Namespace + ".cs"
}

func (g *Generator) namespace(c *ci.ComponentInterface) string {
	if g.config.Namespace != "" {
		return g.config.Namespace
	}

	return "uniffi." + c.Namespace
}

func (g *Generator) className(c *ci.ComponentInterface) string {
	if g.config.ClassName != "" {
		return g.config.ClassName
	}

	return oracle.ClassName(c.Namespace) + "Methods"
}

func (g *Generator) buildTemplateData(c *ci.ComponentInterface) *templateData {
	data := &templateData{
		Namespace: g.namespace(c),
		ClassName: g.className(c),
		Access:    g.config.AccessModifier,
		Comments:  g.config.GenerateComments,
	}

	for _, e := range c.Enums {
		ed := enumData{Name: oracle.ClassName(e.Name), Doc: e.Doc}
		for _, v := range e.Variants {
			ed.Variants = append(ed.Variants, oracle.EnumVariantName(v))
		}

		data.Enums = append(data.Enums, ed)
	}

	for _, r := range c.Records {
		rd := recordData{Name: oracle.ClassName(r.Name), Doc: r.Doc}
		for _, f := range r.Fields {
			arg := g.arg(c, f)
			arg.Name = oracle.ClassName(f.Name)
			rd.Fields = append(rd.Fields, arg)
		}

		data.Records = append(data.Records, rd)
	}

	for _, o := range c.Objects {
		od := objectData{
			Name:      oracle.ClassName(o.Name),
			Interface: "I" + oracle.ClassName(o.Name),
			Doc:       o.Doc,
		}

		for _, ctor := range o.Constructors {
			od.Constructors = append(od.Constructors, g.function(c, ctor))
		}

		for _, m := range o.Methods {
			od.Methods = append(od.Methods, g.function(c, m))
		}

		data.Objects = append(data.Objects, od)
	}

	for _, f := range c.Functions {
		data.Functions = append(data.Functions, g.function(c, f))
	}

	return data
}

func (g *Generator) function(c *ci.ComponentInterface, f ci.FunctionDecl) functionData {
	fd := functionData{
		Name:    oracle.FunctionName(f.Name),
		Doc:     f.Doc,
		Returns: "void",
	}

	if f.Returns != nil {
		fd.Returns = g.oracle.TypeLabel(*f.Returns, c)
	}

	for _, a := range f.Args {
		fd.Args = append(fd.Args, g.arg(c, a))
	}

	return fd
}

func (g *Generator) arg(c *ci.ComponentInterface, f ci.FieldDecl) argData {
	ct := g.oracle.Find(f.Type)

	a := argData{
		Name: oracle.VarName(f.Name),
		Type: ct.TypeLabel(c),
	}

	if f.Default != nil {
		a.Default = ct.Literal(*f.Default, c)
	}

	return a
}
