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

// Package semver provides the Version value used to stamp schema documents.
//
// Schema documents declare the version of the document format they were
// written for. The generator accepts any document whose major version matches
// the one it understands, so minor additions to the format stay compatible
// with older documents.
package semver

import (
	"cmp"
	"fmt"
	"strings"

	bsemver "github.com/blang/semver/v4"
	"github.com/go-json-experiment/json"
	"gopkg.in/yaml.v3"

	dxerrors "dirpx.dev/dxsage/dxcore/errors"
	"dirpx.dev/dxsage/dxcore/model"
)

// Compile-time check that Version implements model.Model interface.
var _ model.Model = (*Version)(nil)

// Version is a Semantic Versioning 2.0.0 version:
// Major.Minor.Patch[-Prerelease][+Metadata].
//
// Parsing, validation and precedence are delegated to
// github.com/blang/semver/v4. The zero value is 0.0.0 and stands for "not
// declared".
type Version struct {
	Major int
	Minor int
	Patch int

	// Prerelease holds dot-separated identifiers after '-', for example
	// "rc.1". A version with a prerelease has lower precedence than the same
	// version without one.
	Prerelease string

	// Metadata holds dot-separated build identifiers after '+'. It does not
	// take part in precedence.
	Metadata string
}

// ParseVersion parses s, tolerating a leading "v".
//
//	ParseVersion("1.2.3")         -> Version{Major: 1, Minor: 2, Patch: 3}
//	ParseVersion("v1.0.0-rc.1")   -> Version{1, 0, 0, "rc.1", ""}
//	ParseVersion("1.0.0+exp.sha") -> Version{1, 0, 0, "", "exp.sha"}
func ParseVersion(s string) (Version, error) {
	bv, err := bsemver.Parse(strings.TrimPrefix(s, "v"))
	if err != nil {
		return Version{}, &dxerrors.ParseError{Type: "Version", Value: s}
	}
	return fromBlang(bv), nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical form without a "v" prefix.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

// Redacted returns the same value as String.
func (v Version) Redacted() string {
	return v.String()
}

// TypeName returns "Version".
func (v Version) TypeName() string {
	return "Version"
}

func (v Version) toBlang() (bsemver.Version, error) {
	return bsemver.Parse(v.String())
}

func fromBlang(bv bsemver.Version) Version {
	var pre []string
	for _, p := range bv.Pre {
		pre = append(pre, p.String())
	}
	return Version{
		Major:      int(bv.Major),
		Minor:      int(bv.Minor),
		Patch:      int(bv.Patch),
		Prerelease: strings.Join(pre, "."),
		Metadata:   strings.Join(bv.Build, "."),
	}
}

// Validate reports negative components and malformed prerelease or metadata
// identifiers as *errors.ValidationError.
func (v Version) Validate() error {
	for _, c := range []struct {
		field string
		value int
	}{{"Major", v.Major}, {"Minor", v.Minor}, {"Patch", v.Patch}} {
		if c.value < 0 {
			return &dxerrors.ValidationError{
				Type: "Version", Field: c.field, Rule: "range",
				Reason: "must be non-negative", Value: c.value,
			}
		}
	}
	if _, err := v.toBlang(); err != nil {
		return &dxerrors.ValidationError{Type: "Version", Rule: "semver", Reason: err.Error(), Value: v.String()}
	}
	return nil
}

// IsZero reports whether v is exactly 0.0.0 with no prerelease or metadata.
func (v Version) IsZero() bool {
	return v == Version{}
}

// Compare returns -1, 0 or +1 depending on the SemVer precedence of v
// relative to other. Build metadata is ignored. Invalid versions are ordered
// by their numeric core only.
func (v Version) Compare(other Version) int {
	a, errA := v.toBlang()
	b, errB := other.toBlang()
	if errA == nil && errB == nil {
		return a.Compare(b)
	}
	return cmp.Or(
		cmp.Compare(v.Major, other.Major),
		cmp.Compare(v.Minor, other.Minor),
		cmp.Compare(v.Patch, other.Patch),
	)
}

// Less reports whether v has lower precedence than other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports whether v and other have the same precedence, so
// 1.0.0+a equals 1.0.0+b.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Greater reports whether v has higher precedence than other.
func (v Version) Greater(other Version) bool {
	return v.Compare(other) > 0
}

// Compatible reports whether a document stamped with doc can be read by a
// reader that supports v: the majors must match and doc must not be newer
// than v.
func (v Version) Compatible(doc Version) bool {
	return v.Major == doc.Major && !doc.Greater(v)
}

// MarshalJSON encodes v as a JSON string after validating it.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a JSON string such as "1.2.3" or "v1.2.3".
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes v as a string scalar after validating it.
func (v Version) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML decodes a scalar. Unquoted values such as 1.0 that YAML would
// otherwise read as numbers are taken from the node text.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &dxerrors.UnmarshalError{Type: "Version", Data: []byte(node.Value), Reason: "expected a scalar"}
	}
	parsed, err := ParseVersion(node.Value)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
