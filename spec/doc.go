// Package spec is the intermediate representation of a specgen schema.
//
// A compilation is a set of modules. Each module owns an ordered list of
// declarations and may import other modules under a local alias:
//
//	base := spec.NewModule("base").Add(
//		spec.NewNewType("Id", spec.Int64()),
//	)
//	m := spec.NewModule("example").Import("base", "base").Add(
//		spec.NewStruct("User",
//			spec.Required("id", spec.ImportRef("base", "Id")),
//			spec.OptionalField("name", spec.String()),
//			spec.OptionalField("friends", spec.List(spec.Reference("User"))),
//		),
//	)
//
// Declarations are structs, virtual structs (field sets other structs
// extend), tagged unions, newtypes and const groups. Types form a closed
// set: bool, sized integers, f64, bigint, decimal, string, bytes, json,
// list, string keyed map, optional and references to declarations.
//
// The IR is built once per run, linked by the resolver (which binds every
// [Ref] to its [Decl]) and is read-only afterwards.
package spec
