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

// Package arn models resource identifiers of the form
//
//	arn:partition:service:region:account-id:resource
//
// The resource part may itself contain ':' and '/' separators, for example
// "training-job/my-job" or "notebook-instance/nb:1". Region and account are
// empty for global services such as IAM:
//
//	arn:aws:iam::123456789012:role/SageMakerRole
//
// ARN implements model.Model. ValidateString has the signature expected by
// shape.Format so that generated shapes can constrain plain string fields to
// well-formed identifiers.
package arn

import (
	"regexp"
	"strings"

	"github.com/go-json-experiment/json"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxsage/dxcore/errors"
	"dirpx.dev/dxsage/dxcore/model"
)

const (
	// Prefix is the literal first section of every identifier.
	Prefix = "arn"

	// sections is the number of ':' separated sections, counting the
	// resource as one.
	sections = 6

	// accountVisible is how many trailing account digits Redacted keeps.
	accountVisible = 4
)

var (
	partitionRegexp = regexp.MustCompile(`^aws(?:-[a-z]+)*$`)
	serviceRegexp   = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	regionRegexp    = regexp.MustCompile(`^[a-z]{2}(?:-[a-z]+)+-[0-9]+$`)
	accountRegexp   = regexp.MustCompile(`^[0-9]{12}$`)
)

// Compile-time check that ARN implements model.Model interface.
var _ model.Model = (*ARN)(nil)

// ARN is a parsed resource identifier. The zero value represents "no
// identifier" and is valid.
type ARN struct {
	Partition string
	Service   string
	Region    string
	AccountID string
	Resource  string
}

// Parse splits s into its sections and validates the result. It returns an
// *errors.ParseError when s does not have six sections or does not start with
// "arn", and the validation error otherwise.
func Parse(s string) (ARN, error) {
	parts := strings.SplitN(s, ":", sections)
	if len(parts) != sections || parts[0] != Prefix {
		return ARN{}, &errors.ParseError{Type: "ARN", Value: s}
	}
	a := ARN{
		Partition: parts[1],
		Service:   parts[2],
		Region:    parts[3],
		AccountID: parts[4],
		Resource:  parts[5],
	}
	if err := a.Validate(); err != nil {
		return ARN{}, err
	}
	return a, nil
}

// MustParse is like Parse but panics on error. It is meant for constants in
// tests and examples.
func MustParse(s string) ARN {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// ValidateString reports whether s is a well-formed identifier.
func ValidateString(s string) error {
	_, err := Parse(s)
	return err
}

// String returns the canonical textual form, or "" for the zero value.
func (a ARN) String() string {
	if a.IsZero() {
		return ""
	}
	return strings.Join([]string{Prefix, a.Partition, a.Service, a.Region, a.AccountID, a.Resource}, ":")
}

// Redacted returns the textual form with all but the last four digits of the
// account masked.
func (a ARN) Redacted() string {
	if a.IsZero() {
		return ""
	}
	b := a
	if n := len(b.AccountID); n > accountVisible {
		b.AccountID = strings.Repeat("*", n-accountVisible) + b.AccountID[n-accountVisible:]
	}
	return b.String()
}

// TypeName returns "ARN".
func (a ARN) TypeName() string {
	return "ARN"
}

// IsZero reports whether every section is empty.
func (a ARN) IsZero() bool {
	return a == ARN{}
}

// Equal reports whether a and other name the same resource.
func (a ARN) Equal(other ARN) bool {
	return a == other
}

// ResourceType returns the part of the resource before the first '/' or ':',
// or "" when the resource has no such separator.
func (a ARN) ResourceType() string {
	if i := strings.IndexAny(a.Resource, "/:"); i >= 0 {
		return a.Resource[:i]
	}
	return ""
}

// ResourceName returns the part of the resource after the first '/' or ':',
// or the whole resource when there is no separator.
func (a ARN) ResourceName() string {
	if i := strings.IndexAny(a.Resource, "/:"); i >= 0 {
		return a.Resource[i+1:]
	}
	return a.Resource
}

// Validate checks every section. The zero value is valid.
func (a ARN) Validate() error {
	if a.IsZero() {
		return nil
	}
	switch {
	case !partitionRegexp.MatchString(a.Partition):
		return a.invalid("Partition", a.Partition, "must look like aws or aws-<suffix>")
	case !serviceRegexp.MatchString(a.Service):
		return a.invalid("Service", a.Service, "must be a lowercase service namespace")
	case a.Region != "" && !regionRegexp.MatchString(a.Region):
		return a.invalid("Region", a.Region, "must be empty or a region code such as us-east-1")
	case a.AccountID != "" && !accountRegexp.MatchString(a.AccountID):
		return a.invalid("AccountID", a.AccountID, "must be empty or 12 digits")
	case a.Resource == "":
		return a.invalid("Resource", a.Resource, "must not be empty")
	}
	return nil
}

func (a ARN) invalid(field, value, reason string) error {
	return &errors.ValidationError{Type: "ARN", Field: field, Rule: "arn", Reason: reason, Value: value}
}

// MarshalJSON encodes the identifier as a JSON string. Invalid identifiers
// are rejected.
func (a ARN) MarshalJSON() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes a JSON string. The empty string yields the zero
// value.
func (a *ARN) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "ARN", Data: data, Reason: err.Error()}
	}
	return a.set(s, data)
}

// MarshalYAML encodes the identifier as a YAML string.
func (a ARN) MarshalYAML() (any, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a.String(), nil
}

// UnmarshalYAML decodes a YAML scalar.
func (a *ARN) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "ARN", Data: []byte(node.Value), Reason: err.Error()}
	}
	return a.set(s, []byte(node.Value))
}

func (a *ARN) set(s string, data []byte) error {
	if s == "" {
		*a = ARN{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return &errors.UnmarshalError{Type: "ARN", Data: data, Reason: err.Error()}
	}
	*a = parsed
	return nil
}
