package load

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// File is the decoded form of a spec file, shared by every format.
type File struct {
	Desc     string                       `yaml:"desc" json:"desc"`
	Includes []*Include                   `yaml:"includes" json:"includes"`
	Meta     map[string]map[string]string `yaml:"meta" json:"meta"`
	Models   []*ModelDef                  `yaml:"models" json:"models"`
}

// Include imports the spec file at Path under Namespace. Relative paths
// are resolved against the directory of the including file.
type Include struct {
	Path       string            `yaml:"path" json:"path"`
	Namespace  string            `yaml:"namespace" json:"namespace"`
	Attributes map[string]string `yaml:"attributes" json:"attributes"`
}

// ModelDef is a top-level declaration.
type ModelDef struct {
	Name       string            `yaml:"name" json:"name"`
	Type       ModelType         `yaml:"type" json:"type"`
	Desc       string            `yaml:"desc" json:"desc"`
	Attributes map[string]string `yaml:"attributes" json:"attributes"`
}

// ModelType holds the kind specific part of a model. Name selects the kind:
// struct, virtual, enum, new_type or const.
type ModelType struct {
	Name string `yaml:"name" json:"name"`

	// struct and virtual.
	Extend string      `yaml:"extend" json:"extend"`
	Fields []*FieldDef `yaml:"fields" json:"fields"`

	// enum.
	Variants   []*VariantDef `yaml:"variants" json:"variants"`
	TagKey     string        `yaml:"tag_key" json:"tag_key"`
	PayloadKey string        `yaml:"payload_key" json:"payload_key"`

	// new_type.
	InnerType *TypeDef `yaml:"inner_type" json:"inner_type"`

	// const.
	ValueType string           `yaml:"value_type" json:"value_type"`
	Values    []*ConstValueDef `yaml:"values" json:"values"`
}

// FieldDef is a struct field. Fields are optional unless Required is set.
type FieldDef struct {
	Name       string            `yaml:"name" json:"name"`
	Type       *TypeDef          `yaml:"type" json:"type"`
	Desc       string            `yaml:"desc" json:"desc"`
	Attributes map[string]string `yaml:"attributes" json:"attributes"`
	Required   bool              `yaml:"required" json:"required"`
}

// VariantDef is an enum variant. A variant without payload type or fields
// is void.
type VariantDef struct {
	Name          string      `yaml:"name" json:"name"`
	PayloadType   *TypeDef    `yaml:"payload_type" json:"payload_type"`
	PayloadFields []*FieldDef `yaml:"payload_fields" json:"payload_fields"`
	Desc          string      `yaml:"desc" json:"desc"`
}

// ConstValueDef is a named literal of a const model.
type ConstValueDef struct {
	Name  string     `yaml:"name" json:"name"`
	Value ConstValue `yaml:"value" json:"value"`
	Desc  string     `yaml:"desc" json:"desc"`
}

// TypeDef is a type written either as a string expression, e.g.
// "list[optional[i8]]", or as an object, e.g. {name: list, item_type: i8}.
type TypeDef struct {
	Name      string   `yaml:"name" json:"name"`
	ItemType  *TypeDef `yaml:"item_type" json:"item_type"`
	ValueType *TypeDef `yaml:"value_type" json:"value_type"`
	Namespace string   `yaml:"namespace" json:"namespace"`
	Target    string   `yaml:"target" json:"target"`

	// Expr is the string form, when the type is written as one.
	Expr string `yaml:"-" json:"-"`
}

// typeDef has the fields of TypeDef without its unmarshal methods.
type typeDef TypeDef

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TypeDef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&t.Expr)
	}
	return value.Decode((*typeDef)(t))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TypeDef) UnmarshalJSON(data []byte) error {
	if data = bytes.TrimSpace(data); len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &t.Expr)
	}
	return json.Unmarshal(data, (*typeDef)(t))
}

// ConstValue is the literal of a const binding: an integer or a string.
type ConstValue struct {
	Value any
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ConstValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: const value must be an integer or a string", value.Line)
	}
	switch value.Tag {
	case "!!int":
		var i int64
		if err := value.Decode(&i); err != nil {
			return err
		}
		c.Value = i
	case "!!str":
		c.Value = value.Value
	default:
		return fmt.Errorf("line %d: const value %q must be an integer or a string", value.Line, value.Value)
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ConstValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.Value = s
		return nil
	}
	i, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("const value %s must be an integer or a string", data)
	}
	c.Value = i
	return nil
}
