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

// Package shape is the reflection-free runtime behind every generated API
// shape.
//
// A shape is a Go struct generated from the service model. Besides its
// fields, the generator emits a single Walk method that presents each field,
// in declared order, to a Walker together with the field's wire name and its
// constraints:
//
//	func (s *Tag) Walk(w shape.Walker) {
//	    w.String("Key", &s.Key, shape.Required, shape.Length(1, 128))
//	    w.String("Value", &s.Value, shape.MaxLength(256))
//	}
//
// Everything else a shape can do is implemented once in this package as a
// Walker: the JSON encoder and decoder, the YAML codec, structural equality,
// hashing, rendering, deep copy, validation and idempotency-token filling.
// Generated methods are one-line forwards into these functions.
//
// # Field representation
//
// Scalars are pointers and nil means unset. Enums are string types and ""
// means unset. Lists and maps are unset when nil and present-but-empty when
// non-nil with no elements; the two states are kept apart by every operation
// in this package, including the wire encoding (omitted key versus "[]").
//
// # Enums
//
// Enum types are open: any literal can be stored, so values introduced by the
// service after this client was generated survive a decode/encode round trip.
// Known and ParseEnum give checked access, and the Strict decode mode and the
// StrictEnums validation option reject unknown literals when a caller wants
// that.
package shape

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"dirpx.dev/dxsage/dxcore/errors"
)

// Shape is implemented by every generated API shape.
type Shape interface {
	// TypeName returns the shape name from the service model.
	TypeName() string

	// Walk presents every field to w in declared order.
	Walk(w Walker)
}

// Walker visits the fields of a shape.
//
// Every method receives the wire name of the field, a pointer to the field
// storage and the field's options. Implementations may read or replace the
// value behind the pointer.
type Walker interface {
	String(name string, v **string, opts ...Option)
	Int64(name string, v **int64, opts ...Option)
	Float64(name string, v **float64, opts ...Option)
	Bool(name string, v **bool, opts ...Option)
	Time(name string, v **time.Time, opts ...Option)
	Enum(name string, v EnumRef, opts ...Option)
	EnumList(name string, v EnumListRef, opts ...Option)
	StringList(name string, v *[]string, opts ...Option)
	StringMap(name string, v *map[string]string, opts ...Option)
	Struct(name string, v StructRef, opts ...Option)
	StructList(name string, v ListRef, opts ...Option)
}

// NopWalker implements Walker with methods that do nothing. Embed it to
// implement walkers that only care about some field kinds.
type NopWalker struct{}

func (NopWalker) String(string, **string, ...Option)              {}
func (NopWalker) Int64(string, **int64, ...Option)                {}
func (NopWalker) Float64(string, **float64, ...Option)            {}
func (NopWalker) Bool(string, **bool, ...Option)                  {}
func (NopWalker) Time(string, **time.Time, ...Option)             {}
func (NopWalker) Enum(string, EnumRef, ...Option)                 {}
func (NopWalker) EnumList(string, EnumListRef, ...Option)         {}
func (NopWalker) StringList(string, *[]string, ...Option)         {}
func (NopWalker) StringMap(string, *map[string]string, ...Option) {}
func (NopWalker) Struct(string, StructRef, ...Option)             {}
func (NopWalker) StructList(string, ListRef, ...Option)           {}

// Enum is the constraint satisfied by generated enum types.
type Enum[E any] interface {
	~string
	Values() []E
}

// EnumRef gives untyped access to an enum field.
type EnumRef interface {
	Get() string
	Set(s string)
	Known(s string) bool
	Values() []string
}

// EnumListRef gives untyped access to a list-of-enum field. Get returns nil
// for an unset list; Set(nil) unsets it.
type EnumListRef interface {
	Get() []string
	Set(list []string)
	Known(s string) bool
	Values() []string
}

// StructRef gives untyped access to a nested structure field.
type StructRef interface {
	// Get returns the nested shape, or nil when the field is unset.
	Get() Shape

	// Ensure allocates the nested shape when unset and returns it.
	Ensure() Shape

	// Clear unsets the field.
	Clear()
}

// ListRef gives untyped access to a list-of-structures field.
type ListRef interface {
	// IsNil reports whether the list is unset.
	IsNil() bool

	Len() int

	// At returns the element at index i. The element is addressed in place.
	At(i int) Shape

	// Reset replaces the list with n zero elements, or unsets it when n < 0.
	Reset(n int)
}

// EnumOf binds an enum field.
func EnumOf[E Enum[E]](p *E) EnumRef { return enumRef[E]{p: p} }

// EnumsOf binds a list-of-enum field.
func EnumsOf[E Enum[E]](p *[]E) EnumListRef { return enumListRef[E]{p: p} }

// StructOf binds a nested structure field.
func StructOf[T any, P interface {
	*T
	Shape
}](p **T) StructRef {
	return structRef[T, P]{p: p}
}

// ListOf binds a list-of-structures field.
func ListOf[T any, P interface {
	*T
	Shape
}](p *[]T) ListRef {
	return listRef[T, P]{p: p}
}

// Known reports whether e is one of the values known to this client.
func Known[E Enum[E]](e E) bool {
	return slices.Contains(e.Values(), e)
}

// ParseEnum converts s to E, returning a *errors.ParseError when s is not one
// of the known values.
func ParseEnum[E Enum[E]](s string) (E, error) {
	e := E(s)
	if !Known(e) {
		return "", &errors.ParseError{Type: enumTypeName(e), Value: s}
	}
	return e, nil
}

func enumTypeName(v any) string {
	name := fmt.Sprintf("%T", v)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

type enumRef[E Enum[E]] struct{ p *E }

func (r enumRef[E]) Get() string         { return string(*r.p) }
func (r enumRef[E]) Set(s string)        { *r.p = E(s) }
func (r enumRef[E]) Known(s string) bool { return Known(E(s)) }
func (r enumRef[E]) Values() []string    { return enumValues[E]() }

type enumListRef[E Enum[E]] struct{ p *[]E }

func (r enumListRef[E]) Get() []string {
	if *r.p == nil {
		return nil
	}
	out := make([]string, len(*r.p))
	for i, e := range *r.p {
		out[i] = string(e)
	}
	return out
}

func (r enumListRef[E]) Set(list []string) {
	if list == nil {
		*r.p = nil
		return
	}
	out := make([]E, len(list))
	for i, s := range list {
		out[i] = E(s)
	}
	*r.p = out
}

func (r enumListRef[E]) Known(s string) bool { return Known(E(s)) }
func (r enumListRef[E]) Values() []string    { return enumValues[E]() }

func enumValues[E Enum[E]]() []string {
	var zero E
	values := zero.Values()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

type structRef[T any, P interface {
	*T
	Shape
}] struct{ p **T }

func (r structRef[T, P]) Get() Shape {
	if *r.p == nil {
		return nil
	}
	return P(*r.p)
}

func (r structRef[T, P]) Ensure() Shape {
	if *r.p == nil {
		*r.p = new(T)
	}
	return P(*r.p)
}

func (r structRef[T, P]) Clear() { *r.p = nil }

type listRef[T any, P interface {
	*T
	Shape
}] struct{ p *[]T }

func (r listRef[T, P]) IsNil() bool    { return *r.p == nil }
func (r listRef[T, P]) Len() int       { return len(*r.p) }
func (r listRef[T, P]) At(i int) Shape { return P(&(*r.p)[i]) }

func (r listRef[T, P]) Reset(n int) {
	if n < 0 {
		*r.p = nil
		return
	}
	*r.p = make([]T, n)
}
