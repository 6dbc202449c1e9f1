// Package integration exercises the code generated for testdata/spec
// against the codecs. The model packages are committed generated output.
package integration

//go:generate go run ../../cmd/specgen generate --out model --package github.com/syssam/specgen/internal/integration/model --backend go testdata/spec/example.yaml
