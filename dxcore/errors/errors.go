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

// Package errors provides the error types shared by every dxsage package.
//
// The types are plain value carriers with stable message formats. They are
// returned by the shape runtime when decoding or validating API shapes, by the
// enum-like types (DecodeMode, codegen.Kind) when parsing textual input, and by
// the schema loader used by the code generator.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into an enum-like type fails, including
//     the checked conversion of a raw literal into an API enum.
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//
//   - UnmarshalError
//     Returned when a wire payload cannot be decoded into a shape. Reason
//     names the offending field path.
//
//   - ValidationError
//     Returned when a field violates one of its constraints. Field carries the
//     full path (for example "InputDataConfig[0].ChannelName"), Rule the
//     violated constraint and Value the offending value.
//
// Aggregated validation failures can be flattened with ValidationErrors:
//
//	if err := in.Validate(); err != nil {
//	    for _, ve := range errors.ValidationErrors(err) {
//	        fmt.Println(ve.Field, ve.Rule)
//	    }
//	}
package errors

import (
	stderrors "errors"
	"strconv"
)

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example "DecodeMode" or
// "TrainingJobStatus"), and Value contains the exact string that could not be
// interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed.
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxsage: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxsage: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, for example an
// int-backed enum that was converted from an arbitrary integer.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxsage: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "dxsage: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the raw
// payload (callers MAY redact it before logging), and Reason provides a
// human-readable description of what went wrong. For API shapes Reason starts
// with the field path, for example "field TrainingJobStatus: unknown enum
// value \"Paused\"".
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxsage: cannot unmarshal {Type}: {Reason}"
//
// Data is not included in the message.
func (e *UnmarshalError) Error() string {
	return "dxsage: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the shape that was validated (the outermost shape when the
// violation sits in a nested structure), Field the path of the offending
// field, Rule the violated constraint and Value the offending value. Rule is
// one of "required", "length", "pattern", "range", "items", "enum" or the name
// of a format check such as "arn". Value is nil when the field is unset and
// "[REDACTED]" when the field is sensitive.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the path of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Rule names the violated constraint.
	Rule string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxsage: invalid {Type}.{Field}: {Reason} ({Rule})" (when Field is specified)
//	"dxsage: invalid {Type}: {Reason}" (when Field is empty)
//
// The rule suffix is omitted when Rule is empty.
func (e *ValidationError) Error() string {
	msg := "dxsage: invalid " + e.Type
	if e.Field != "" {
		msg += "." + e.Field
	}
	msg += ": " + e.Reason
	if e.Rule != "" {
		msg += " (" + e.Rule + ")"
	}
	return msg
}

// ValidationErrors returns every *ValidationError contained in err, following
// both single and multi-error wrapping. It returns nil when err is nil or
// contains no validation errors.
func ValidationErrors(err error) []*ValidationError {
	var out []*ValidationError
	var walk func(error)
	walk = func(err error) {
		if err == nil {
			return
		}
		if ve, ok := err.(*ValidationError); ok {
			out = append(out, ve)
			return
		}
		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range u.Unwrap() {
				walk(e)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)
	return out
}

// IsValidation reports whether err contains at least one *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}
