/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package codegen reads declarative shape schemas and generates the Go types
// that implement them on top of the shape runtime.
//
// A schema document lists enums and shapes. Every shape becomes a struct with
// pointer fields, fluent setters, a Walk method and one-line forwards to the
// shape runtime for encoding, equality, hashing, rendering, cloning and
// validation. Shapes of kind input and output are grouped per operation and
// registered in an operation table.
//
//	schemaVersion: 1.0.0
//	package: types
//	enums:
//	  - name: TrainingJobStatus
//	    values: [InProgress, Completed, Failed, Stopping, Stopped]
//	shapes:
//	  - name: Tag
//	    kind: structure
//	    fields:
//	      - {name: Key, kind: string, required: true, length: {min: 1, max: 128}}
//	      - {name: Value, kind: string, required: true, length: {max: 256}}
package codegen

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dxsage/dxcore/model/semver"
)

// SupportedVersion is the newest schema format this package reads. Documents
// with the same major version and a version not newer than this one are
// accepted.
var SupportedVersion = semver.Version{Major: 1}

// ShapeKind tells what a shape is generated for.
type ShapeKind string

const (
	// ShapeStructure is a nested structure used by other shapes.
	ShapeStructure ShapeKind = "structure"

	// ShapeInput is the request of an operation.
	ShapeInput ShapeKind = "input"

	// ShapeOutput is the response of an operation.
	ShapeOutput ShapeKind = "output"
)

// Document is one schema file. All shapes of a document are generated into a
// single Go package.
type Document struct {
	SchemaVersion semver.Version `yaml:"schemaVersion"`

	// Package is the name of the generated Go package.
	Package string `yaml:"package"`

	// TargetPrefix is prepended to operation names to form the wire target,
	// for example "SageMaker" gives "SageMaker.CreateTrainingJob".
	TargetPrefix string `yaml:"targetPrefix,omitempty"`

	// Imports maps a qualifier used in refs such as "types.Tag" to the import
	// path of the package that defines the referenced type.
	Imports map[string]string `yaml:"imports,omitempty"`

	Enums  []Enum  `yaml:"enums,omitempty"`
	Shapes []Shape `yaml:"shapes,omitempty"`
}

// Enum is an open string enumeration.
type Enum struct {
	Name   string   `yaml:"name"`
	Doc    string   `yaml:"doc,omitempty"`
	Values []string `yaml:"values"`
}

// Shape is a structure, or the input or output of an operation.
type Shape struct {
	Name      string    `yaml:"name"`
	Doc       string    `yaml:"doc,omitempty"`
	Kind      ShapeKind `yaml:"kind"`
	Operation string    `yaml:"operation,omitempty"`
	Fields    []Field   `yaml:"fields,omitempty"`
}

// Field is one member of a shape. Name is both the wire name and the Go
// field name.
type Field struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`

	// Ref names the enum or structure of an enum or structure field, or of
	// the elements of a list. It is either local ("Tag") or qualified by an
	// entry of Document.Imports ("types.Tag").
	Ref string `yaml:"ref,omitempty"`

	// Member is the element kind of a list (string, enum or structure) or the
	// value kind of a map (string).
	Member Kind `yaml:"member,omitempty"`

	Doc string `yaml:"doc,omitempty"`

	Required         bool `yaml:"required,omitempty"`
	Sensitive        bool `yaml:"sensitive,omitempty"`
	IdempotencyToken bool `yaml:"idempotencyToken,omitempty"`

	// Length bounds string length, in characters. On lists it applies to each
	// element and on maps to each value.
	Length *Bounds `yaml:"length,omitempty"`

	// Pattern is a regular expression the whole string must match.
	Pattern string `yaml:"pattern,omitempty"`

	// Range bounds a long or double.
	Range *Bounds `yaml:"range,omitempty"`

	// Items bounds the number of elements of a list or map.
	Items *Bounds `yaml:"items,omitempty"`

	// Format names a well-known string format; see Formats.
	Format string `yaml:"format,omitempty"`
}

// Bounds is an inclusive interval with optional ends.
type Bounds struct {
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}

// Operation pairs the input and output shapes declared for one operation.
type Operation struct {
	Name   string
	Input  *Shape
	Output *Shape
}

// Load reads and validates the schema document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a schema document. Unknown keys are rejected so
// that a misspelt constraint does not silently disappear.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Lookup returns the local shape named name.
func (d *Document) Lookup(name string) (*Shape, bool) {
	for i := range d.Shapes {
		if d.Shapes[i].Name == name {
			return &d.Shapes[i], true
		}
	}
	return nil, false
}

// Structures returns the shapes of kind structure in declared order.
func (d *Document) Structures() []*Shape {
	var out []*Shape
	for i := range d.Shapes {
		if d.Shapes[i].Kind == ShapeStructure {
			out = append(out, &d.Shapes[i])
		}
	}
	return out
}

// Operations returns the operations of the document sorted by name.
func (d *Document) Operations() []Operation {
	byName := map[string]*Operation{}
	for i := range d.Shapes {
		s := &d.Shapes[i]
		if s.Kind != ShapeInput && s.Kind != ShapeOutput {
			continue
		}
		op, ok := byName[s.Operation]
		if !ok {
			op = &Operation{Name: s.Operation}
			byName[s.Operation] = op
		}
		if s.Kind == ShapeInput {
			op.Input = s
		} else {
			op.Output = s
		}
	}

	out := make([]Operation, 0, len(byName))
	for _, op := range byName {
		out = append(out, *op)
	}
	slices.SortFunc(out, func(a, b Operation) int { return cmp.Compare(a.Name, b.Name) })
	return out
}
