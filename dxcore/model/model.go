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

// Package model defines the contracts that dxsage value types MUST implement
// and a set of generic helpers built on top of them.
//
// Two families of types implement these contracts. Generated API shapes
// (request inputs, response outputs and the nested structures they embed)
// implement Model, Hashable, Comparable and Cloneable through the shape
// runtime. Hand-written value types such as arn.ARN, semver.Version and
// shape.DecodeMode implement Model directly.
//
// The contracts prioritize predictable wire behavior and safe diagnostics.
// Validation reports every violated constraint instead of the first one.
// Serialization round-trips JSON and YAML without losing the difference
// between an unset field and an empty one. Loggable keeps sensitive values
// such as presigned URLs out of logs.
//
// Model instances are short-lived values owned by a single request or
// response. They are not safe for concurrent mutation; concurrent reads of an
// instance that is no longer being modified are safe.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining the fundamental contracts required
// for dxsage value types. Any type implementing Model gains support for
// validation, JSON and YAML serialization, safe logging, type identification
// and zero-value detection, and can be used with the generic helpers in this
// package.
//
// Example implementation:
//
//	type Region string
//
//	func (r Region) Validate() error {
//	    if r == "" {
//	        return &errors.ValidationError{Type: "Region", Rule: "required", Reason: "must be set"}
//	    }
//	    return nil
//	}
//
//	func (r Region) TypeName() string { return "Region" }
//	func (r Region) IsZero() bool     { return r == "" }
//	func (r Region) Redacted() string { return string(r) }
//	func (r Region) String() string   { return string(r) }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Region)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST check every constraint attached to the type (required
// fields, length, pattern and numeric ranges, nested values) and return nil
// if and only if the instance is valid. When several constraints are
// violated the returned error SHOULD aggregate all of them so that callers can
// fix a request in one pass; errors.ValidationErrors flattens such an error.
//
// Validate MUST be fast, deterministic and free of side effects. It MUST NOT
// mutate the receiver.
//
// Validation is never performed implicitly by setters. Callers invoke it at
// boundaries: before sending a request (sagemaker.EncodeRequest does this),
// and after decoding untrusted input.
type Validatable interface {
	Validate() error
}

// Serializable combines the JSON and YAML marshaling contracts.
//
// Implementations MUST round-trip: unmarshaling the output of marshal yields
// a value equal to the original. For API shapes this includes the difference
// between an unset list (key omitted) and an empty list (key present with
// "[]"), and enum literals unknown to this client.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that can be represented as strings
// in logs and diagnostics.
//
// String returns the complete representation and MAY include sensitive
// values. Redacted returns the same representation with sensitive values
// masked and SHOULD be used for anything written to logs. Neither format
// carries a compatibility guarantee.
type Loggable interface {
	// Redacted returns a representation with sensitive values masked.
	Redacted() string

	// String returns the complete representation.
	String() string
}

// Identifiable defines the contract for types that expose a canonical type
// name. For API shapes the name equals the shape name in the service model
// (for example "CreateTrainingJobInput" or "ResourceConfig").
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// hold no data. For API shapes IsZero reports whether every field is unset.
type ZeroCheckable interface {
	IsZero() bool
}

// Hashable defines the contract for types that expose a structural hash.
//
// Hash MUST be consistent with equality: two values that are equal according
// to their Equal method MUST produce the same hash. The hash is deterministic
// for a given type and field set but is not stable across releases and MUST
// NOT be persisted.
type Hashable interface {
	Hash() uint64
}

// Comparable defines the contract for types that support structural equality
// with other instances of the same type.
//
// Equal MUST be reflexive, symmetric and transitive. For pointer receivers a
// nil receiver is equal only to a nil argument.
type Comparable[T any] interface {
	Equal(other T) bool
}

// Cloneable defines the contract for types that can produce deep copies.
//
// The returned value MUST share no mutable state with the receiver, and MUST
// be equal to it according to Comparable when both are implemented.
type Cloneable[T any] interface {
	Clone() T
}
