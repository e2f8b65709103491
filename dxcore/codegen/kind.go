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

package codegen

import (
	"github.com/go-json-experiment/json"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxsage/dxcore/errors"
	"dirpx.dev/dxsage/dxcore/model"
)

// Kind is the semantic kind of a schema field. It decides the Go type of the
// generated field and the Walker method that presents it.
//
// The zero value is not a valid kind; a field that omits its kind fails
// document validation.
type Kind int

const (
	// KindString is a UTF-8 string, generated as *string.
	KindString Kind = iota + 1

	// KindLong is a 64-bit integer, generated as *int64.
	KindLong

	// KindDouble is a double-precision float, generated as *float64.
	KindDouble

	// KindBoolean is generated as *bool.
	KindBoolean

	// KindTimestamp is an instant, generated as *time.Time and carried as
	// epoch seconds on the wire.
	KindTimestamp

	// KindEnum is an open string enumeration named by the field's ref.
	KindEnum

	// KindStructure is a nested shape named by the field's ref, generated as
	// a pointer to the shape.
	KindStructure

	// KindList is an ordered list whose element kind is given by member:
	// string, enum or structure.
	KindList

	// KindMap is a string to string map.
	KindMap
)

// String constants for Kind values as written in schema documents.
const (
	KindStringStr    = "string"
	KindLongStr      = "long"
	KindDoubleStr    = "double"
	KindBooleanStr   = "boolean"
	KindTimestampStr = "timestamp"
	KindEnumStr      = "enum"
	KindStructureStr = "structure"
	KindListStr      = "list"
	KindMapStr       = "map"
)

var kindNames = map[Kind]string{
	KindString:    KindStringStr,
	KindLong:      KindLongStr,
	KindDouble:    KindDoubleStr,
	KindBoolean:   KindBooleanStr,
	KindTimestamp: KindTimestampStr,
	KindEnum:      KindEnumStr,
	KindStructure: KindStructureStr,
	KindList:      KindListStr,
	KindMap:       KindMapStr,
}

// ParseKind converts the textual kind used in schema documents into a Kind.
// "integer" and "int" are accepted for long, "float" for double and "bool"
// for boolean.
func ParseKind(s string) (Kind, error) {
	switch s {
	case KindStringStr:
		return KindString, nil
	case KindLongStr, "integer", "int":
		return KindLong, nil
	case KindDoubleStr, "float":
		return KindDouble, nil
	case KindBooleanStr, "bool":
		return KindBoolean, nil
	case KindTimestampStr:
		return KindTimestamp, nil
	case KindEnumStr:
		return KindEnum, nil
	case KindStructureStr:
		return KindStructure, nil
	case KindListStr:
		return KindList, nil
	case KindMapStr:
		return KindMap, nil
	default:
		return 0, &errors.ParseError{Type: "Kind", Value: s}
	}
}

// String returns the canonical name of k, or "unknown".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether k is one of the defined constants.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Scalar reports whether k is presented by a single-value Walker method.
func (k Kind) Scalar() bool {
	switch k {
	case KindString, KindLong, KindDouble, KindBoolean, KindTimestamp:
		return true
	}
	return false
}

// TypeName returns "Kind".
func (k Kind) TypeName() string {
	return "Kind"
}

// Redacted returns the same value as String.
func (k Kind) Redacted() string {
	return k.String()
}

// IsZero reports whether k is unset.
func (k Kind) IsZero() bool {
	return k == 0
}

// Equal reports whether other is a Kind (or non-nil *Kind) with the same
// value.
func (k Kind) Equal(other any) bool {
	switch v := other.(type) {
	case Kind:
		return k == v
	case *Kind:
		return v != nil && k == *v
	default:
		return false
	}
}

// Validate returns a *errors.ValidationError when k is not a defined kind.
func (k Kind) Validate() error {
	if !k.Valid() {
		return &errors.ValidationError{Type: "Kind", Rule: "enum", Reason: "invalid value", Value: int(k)}
	}
	return nil
}

// MarshalJSON encodes k as its canonical name.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return json.Marshal(k.String())
}

// UnmarshalJSON accepts the textual form only.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (k Kind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

var _ model.Model = (*Kind)(nil)
