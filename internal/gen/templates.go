package gen

import "text/template"

// templateData holds everything the bindings template needs.
type templateData struct {
	Namespace string
	ClassName string
	Access    string
	Comments  bool
	Enums     []enumData
	Records   []recordData
	Objects   []objectData
	Functions []functionData
	Helpers   []helperData
}

type enumData struct {
	Name     string
	Doc      string
	Variants []string
}

type recordData struct {
	Name   string
	Doc    string
	Fields []argData
}

type objectData struct {
	Name         string
	Interface    string
	Doc          string
	Constructors []functionData
	Methods      []functionData
}

type functionData struct {
	Name    string
	Doc     string
	Returns string // "void" when nothing is returned
	Args    []argData
}

// argData is a record field or a function argument.
type argData struct {
	Name    string
	Type    string
	Default string // empty when no default is declared
}

var templateFuncs = template.FuncMap{
	"last": func(i, n int) bool { return i == n-1 },
	"docOf": func(enabled bool, doc string) string {
		if !enabled {
			return ""
		}

		return doc
	},
}

var bindingsTemplate = template.Must(template.New("bindings").Funcs(templateFuncs).Parse(`// <auto-generated>
// This file was generated by cs-bindgen. Do not edit.
// </auto-generated>

#nullable enable

using System;
using System.Collections.Generic;

namespace {{.Namespace}};
{{range .Enums}}
{{if and $.Comments .Doc}}/// <summary>{{.Doc}}</summary>
{{end}}{{$.Access}} enum {{.Name}} : int {
{{range .Variants}}    {{.}},
{{end}}}
{{end}}{{range .Records}}
{{if and $.Comments .Doc}}/// <summary>{{.Doc}}</summary>
{{end}}{{$.Access}} record {{.Name}}(
{{- $n := len .Fields}}{{range $i, $f := .Fields}}
    {{$f.Type}} {{$f.Name}}{{if $f.Default}} = {{$f.Default}}{{end}}{{if not (last $i $n)}},{{end}}
{{- end}}
);
{{end}}{{range .Objects}}
{{if and $.Comments .Doc}}/// <summary>{{.Doc}}</summary>
{{end}}{{$.Access}} interface {{.Interface}} : IDisposable {
{{range .Methods}}    {{template "signature" .}};
{{end}}}
{{end}}
{{$.Access}} static partial class {{.ClassName}} {
{{- range .Objects}}{{$obj := .}}{{range .Constructors}}
{{template "doc" (docOf $.Comments .Doc)}}    public static partial {{$obj.Interface}} {{$obj.Name}}{{.Name}}({{template "args" .Args}});
{{end}}{{end}}
{{- range .Functions}}
{{template "doc" (docOf $.Comments .Doc)}}    public static partial {{template "signature" .}};
{{end}}}
{{range .Helpers}}
{{template "helper" .}}{{end}}
{{- define "signature"}}{{.Returns}} {{.Name}}({{template "args" .Args}}){{end}}
{{- define "args"}}{{$n := len .}}{{range $i, $a := .}}{{$a.Type}} {{$a.Name}}{{if $a.Default}} = {{$a.Default}}{{end}}{{if not (last $i $n)}}, {{end}}{{end}}{{end}}
{{- define "doc"}}{{if .}}    /// <summary>{{.}}</summary>
{{end}}{{end}}
{{- define "helper"}}class {{.Class}} : FfiConverterRustBuffer<{{.Label}}> {
    public static {{.Class}} INSTANCE = new {{.Class}}();
{{if eq .Kind "Optional"}}
    public override {{.Label}} Read(BigEndianStream stream) {
        if (stream.ReadByte() == 0) {
            return null;
        }
        return {{.Inner}}.INSTANCE.Read(stream);
    }

    public override int AllocationSize({{.Label}} value) {
        if (value == null) {
            return 1;
        }
        return 1 + {{.Inner}}.INSTANCE.AllocationSize(({{.InnerLabel}})value);
    }

    public override void Write({{.Label}} value, BigEndianStream stream) {
        if (value == null) {
            stream.WriteByte(0);
            return;
        }
        stream.WriteByte(1);
        {{.Inner}}.INSTANCE.Write(({{.InnerLabel}})value, stream);
    }
{{else if eq .Kind "Sequence"}}
    public override {{.Label}} Read(BigEndianStream stream) {
        var length = stream.ReadInt();
        var result = new List<{{.InnerLabel}}>(length);
        for (int i = 0; i < length; i++) {
            result.Add({{.Inner}}.INSTANCE.Read(stream));
        }
        return result.ToArray();
    }

    public override int AllocationSize({{.Label}} value) {
        var size = 4;
        foreach (var item in value) {
            size += {{.Inner}}.INSTANCE.AllocationSize(item);
        }
        return size;
    }

    public override void Write({{.Label}} value, BigEndianStream stream) {
        stream.WriteInt(value.Length);
        foreach (var item in value) {
            {{.Inner}}.INSTANCE.Write(item, stream);
        }
    }
{{else}}
    public override {{.Label}} Read(BigEndianStream stream) {
        var length = stream.ReadInt();
        var result = new {{.Label}}(length);
        for (int i = 0; i < length; i++) {
            var key = {{.Key}}.INSTANCE.Read(stream);
            result[key] = {{.Inner}}.INSTANCE.Read(stream);
        }
        return result;
    }

    public override int AllocationSize({{.Label}} value) {
        var size = 4;
        foreach (var entry in value) {
            size += {{.Key}}.INSTANCE.AllocationSize(entry.Key);
            size += {{.Inner}}.INSTANCE.AllocationSize(entry.Value);
        }
        return size;
    }

    public override void Write({{.Label}} value, BigEndianStream stream) {
        stream.WriteInt(value.Count);
        foreach (var entry in value) {
            {{.Key}}.INSTANCE.Write(entry.Key, stream);
            {{.Inner}}.INSTANCE.Write(entry.Value, stream);
        }
    }
{{end}}}
{{end}}`))
