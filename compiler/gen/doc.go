// Package gen drives code generation from a linked module graph.
//
// A Generator fans out over the modules of a resolve.Graph and asks every
// configured Backend for the artifacts of each module:
//
//	spec files (load)
//	        ↓
//	   spec.Module IR
//	        ↓
//	   resolve.Graph (linked, ordered)
//	        ↓
//	   Backend.GenModule (golang, jsonschema)
//	        ↓
//	   rendered files (written all at once)
//
// Backends read the encoding rule table of package encoding, so every
// target agrees on the wire shape of every type. Configuration follows the
// functional options pattern:
//
//	cfg, err := gen.NewConfig(
//		gen.WithTarget("./model"),
//		gen.WithPackage("github.com/org/project/model"),
//	)
package gen
