package gen_test

import (
	"fmt"
	"strings"

	"cs-bindgen/internal/ci"
	"cs-bindgen/internal/config"
	"cs-bindgen/internal/gen"
)

func ExampleGenerator_Generate() {
	ret := ci.Optional(ci.Timestamp())

	c := ci.NewComponentInterface("demo")
	c.Functions = []ci.FunctionDecl{{
		Name:    "last_seen",
		Args:    []ci.FieldDecl{{Name: "user", Type: ci.Primitive(ci.KindString)}},
		Returns: &ret,
	}}

	file, err := gen.NewGenerator(config.DefaultConfig()).Generate(c)
	if err != nil {
		panic(err)
	}

	fmt.Println(file.Filename)

	for _, line := range strings.Split(string(file.Content), "\n") {
		if strings.Contains(line, "partial") || strings.HasPrefix(line, "class ") {
			fmt.Println(line)
		}
	}
	// Output:
	// demo.cs
	// internal static partial class DemoMethods {
	//     public static partial DateTime? LastSeen(string user);
	// class FfiConverterOptionalTimestamp : FfiConverterRustBuffer<DateTime?> {
}
