// Package golang implements the Go backend.
//
// Every module becomes one Go package holding a single file. The import
// path of module "include/base" is Config.Package + "/include/base" and the
// package name is taken from the module's "go.package" meta value, or from
// the last element of its name.
//
// # Generated Code Structure
//
// For each declaration of a module, in emission order:
//
//   - struct: a Go struct, a Serialize method and a DeserializeX function
//   - enum: a sealed interface, one struct per variant holding Payload,
//     a Serialize method per variant and a DeserializeX function
//   - new_type: a named type (or a struct wrapper holding Value) with
//     Serialize and DeserializeX
//   - const: a typed const block and a name keyed table of the values
//   - virtual: an interface of GetX accessors implemented by the structs
//     extending it
//
// Generated code depends on the standard library, shopspring/decimal and
// the specgen runtime package only.
package golang
