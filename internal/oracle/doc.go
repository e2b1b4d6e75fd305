// Package oracle resolves component interface types to their C# code types
// and names generated identifiers.
//
// CodeOracle is the codetype.Resolver used by the generator. It handles
// primitives, byte buffers and named declarations itself and hands compound,
// timestamp and duration types to package codetype.
package oracle
