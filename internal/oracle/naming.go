package oracle

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cs-bindgen/internal/match"
)

// ClassName returns the UpperCamelCase C# name for an interface identifier.
func ClassName(s string) string {
	// Casers are stateful and must not be shared between goroutines.
	title := cases.Title(language.Und, cases.NoLower)

	var sb strings.Builder
	for _, w := range match.Words(s) {
		sb.WriteString(title.String(w))
	}

	return sb.String()
}

// FunctionName returns the C# method name; methods are UpperCamelCase too.
func FunctionName(s string) string {
	return ClassName(s)
}

// VarName returns the lowerCamelCase C# name for arguments and locals.
func VarName(s string) string {
	name := ClassName(s)
	if name == "" {
		return ""
	}

	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])

	return escapeKeyword(string(runes))
}

// EnumVariantName returns the C# name of an enum member.
func EnumVariantName(s string) string {
	return ClassName(s)
}

var csharpKeywords = map[string]struct{}{
	"abstract": {}, "as": {}, "base": {}, "bool": {}, "break": {}, "byte": {}, "case": {},
	"catch": {}, "char": {}, "checked": {}, "class": {}, "const": {}, "continue": {},
	"decimal": {}, "default": {}, "delegate": {}, "do": {}, "double": {}, "else": {},
	"enum": {}, "event": {}, "explicit": {}, "extern": {}, "false": {}, "finally": {},
	"fixed": {}, "float": {}, "for": {}, "foreach": {}, "goto": {}, "if": {}, "implicit": {},
	"in": {}, "int": {}, "interface": {}, "internal": {}, "is": {}, "lock": {}, "long": {},
	"namespace": {}, "new": {}, "null": {}, "object": {}, "operator": {}, "out": {},
	"override": {}, "params": {}, "private": {}, "protected": {}, "public": {},
	"readonly": {}, "ref": {}, "return": {}, "sbyte": {}, "sealed": {}, "short": {},
	"sizeof": {}, "stackalloc": {}, "static": {}, "string": {}, "struct": {}, "switch": {},
	"this": {}, "throw": {}, "true": {}, "try": {}, "typeof": {}, "uint": {}, "ulong": {},
	"unchecked": {}, "unsafe": {}, "ushort": {}, "using": {}, "virtual": {}, "void": {},
	"volatile": {}, "while": {},
}

func escapeKeyword(name string) string {
	if _, ok := csharpKeywords[name]; ok {
		return "@" + name
	}

	return name
}
