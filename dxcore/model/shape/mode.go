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

package shape

import (
	"github.com/go-json-experiment/json"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxsage/dxcore/errors"
	"dirpx.dev/dxsage/dxcore/model"
)

// DecodeMode controls how strictly a wire payload is interpreted.
//
// The service model evolves independently of this client: new enum literals
// and new response members appear without notice. Lenient decoding keeps
// working across such changes, which is what an SDK needs. Strict decoding is
// for tests and tooling that want to notice when the client has fallen behind
// the service.
type DecodeMode int

const (
	// Lenient stores unknown enum literals as-is and ignores unknown members.
	// It is the zero value and the mode used by UnmarshalJSON.
	Lenient DecodeMode = iota

	// Strict rejects unknown enum literals and unknown members with an
	// *errors.UnmarshalError.
	Strict
)

// Compile-time check that DecodeMode implements model.Model interface.
var _ model.Model = (*DecodeMode)(nil)

// String constants for DecodeMode values used in configuration, flags and
// payloads.
const (
	LenientStr = "lenient"
	StrictStr  = "strict"
)

// String returns the canonical string representation of the mode, or
// "unknown" for values outside the defined constants.
func (m DecodeMode) String() string {
	switch m {
	case Lenient:
		return LenientStr
	case Strict:
		return StrictStr
	default:
		return "unknown"
	}
}

// ParseDecodeMode converts a textual representation into a DecodeMode.
// Accepted inputs are the canonical lowercase names and their capitalized and
// uppercase variants.
func ParseDecodeMode(str string) (DecodeMode, error) {
	switch str {
	case LenientStr, "Lenient", "LENIENT":
		return Lenient, nil
	case StrictStr, "Strict", "STRICT":
		return Strict, nil
	default:
		return Lenient, &errors.ParseError{Type: "DecodeMode", Value: str}
	}
}

// Valid reports whether m is one of the defined constants.
func (m DecodeMode) Valid() bool {
	return m == Lenient || m == Strict
}

// MarshalJSON implements json.Marshaler. The mode is encoded as its
// canonical string.
func (m DecodeMode) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return nil, &errors.MarshalError{Type: "DecodeMode", Value: int(m)}
	}
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Both the string form and the
// numeric form are accepted.
func (m *DecodeMode) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "DecodeMode", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "DecodeMode", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseDecodeMode(str)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "DecodeMode", Data: data, Reason: err.Error()}
	}
	if !DecodeMode(i).Valid() {
		return &errors.UnmarshalError{Type: "DecodeMode", Data: data, Reason: "invalid numeric value"}
	}
	*m = DecodeMode(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler, which lets viper and pflag
// treat the mode as a plain string.
func (m DecodeMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, &errors.MarshalError{Type: "DecodeMode", Value: int(m)}
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *DecodeMode) UnmarshalText(text []byte) error {
	parsed, err := ParseDecodeMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// TypeName returns "DecodeMode".
func (m DecodeMode) TypeName() string {
	return "DecodeMode"
}

// Redacted returns the same value as String; a mode carries no sensitive data.
func (m DecodeMode) Redacted() string {
	return m.String()
}

// IsZero reports whether m is Lenient.
func (m DecodeMode) IsZero() bool {
	return m == Lenient
}

// Equal reports whether other is a DecodeMode (or non-nil *DecodeMode) with
// the same value.
func (m DecodeMode) Equal(other any) bool {
	switch v := other.(type) {
	case DecodeMode:
		return m == v
	case *DecodeMode:
		if v == nil {
			return false
		}
		return m == *v
	default:
		return false
	}
}

// Validate returns an error when m is not one of the defined constants.
func (m DecodeMode) Validate() error {
	if !m.Valid() {
		return &errors.ValidationError{Type: "DecodeMode", Reason: "invalid value", Value: int(m)}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m DecodeMode) MarshalYAML() (any, error) {
	if !m.Valid() {
		return nil, &errors.MarshalError{Type: "DecodeMode", Value: int(m)}
	}
	return m.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *DecodeMode) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "DecodeMode", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseDecodeMode(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
