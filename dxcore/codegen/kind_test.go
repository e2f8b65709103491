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
	"testing"

	"github.com/go-json-experiment/json"
	"gopkg.in/yaml.v3"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{"string", KindString, "string"},
		{"long", KindLong, "long"},
		{"double", KindDouble, "double"},
		{"boolean", KindBoolean, "boolean"},
		{"timestamp", KindTimestamp, "timestamp"},
		{"enum", KindEnum, "enum"},
		{"structure", KindStructure, "structure"},
		{"list", KindList, "list"},
		{"map", KindMap, "map"},
		{"zero", Kind(0), "unknown"},
		{"out of range", Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"string", KindString, false},
		{"long", KindLong, false},
		{"integer", KindLong, false},
		{"int", KindLong, false},
		{"double", KindDouble, false},
		{"float", KindDouble, false},
		{"boolean", KindBoolean, false},
		{"bool", KindBoolean, false},
		{"timestamp", KindTimestamp, false},
		{"enum", KindEnum, false},
		{"structure", KindStructure, false},
		{"list", KindList, false},
		{"map", KindMap, false},

		{"", 0, true},
		{"String", 0, true},
		{"blob", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKind_Model(t *testing.T) {
	if !KindMap.Valid() || Kind(0).Valid() || Kind(10).Valid() {
		t.Error("Valid() disagrees with the defined constants")
	}
	if !Kind(0).IsZero() || KindString.IsZero() {
		t.Error("only the zero kind reports IsZero")
	}
	if KindList.TypeName() != "Kind" || KindList.Redacted() != "list" {
		t.Error("unexpected TypeName or Redacted")
	}
	if err := KindEnum.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if err := Kind(42).Validate(); err == nil {
		t.Error("Validate() of invalid kind should fail")
	}
	if !KindEnum.Equal(KindEnum) || KindEnum.Equal(KindList) || KindEnum.Equal("enum") {
		t.Error("Equal() mismatch")
	}
	k := KindEnum
	var nilKind *Kind
	if !KindEnum.Equal(&k) || KindEnum.Equal(nilKind) {
		t.Error("Equal() with pointers mismatch")
	}
	if !KindString.Scalar() || !KindTimestamp.Scalar() || KindEnum.Scalar() || KindList.Scalar() {
		t.Error("Scalar() mismatch")
	}
}

func TestKind_Encoding(t *testing.T) {
	type field struct {
		Kind Kind `json:"kind" yaml:"kind"`
	}

	data, err := json.Marshal(field{Kind: KindTimestamp})
	if err != nil || string(data) != `{"kind":"timestamp"}` {
		t.Fatalf("json.Marshal() = %s, %v", data, err)
	}
	var got field
	if err := json.Unmarshal([]byte(`{"kind":"integer"}`), &got); err != nil || got.Kind != KindLong {
		t.Errorf("json.Unmarshal() = %v, %v", got.Kind, err)
	}
	if err := json.Unmarshal([]byte(`{"kind":3}`), &got); err == nil {
		t.Error("json.Unmarshal() of a number should fail")
	}

	out, err := yaml.Marshal(field{Kind: KindMap})
	if err != nil || string(out) != "kind: map\n" {
		t.Fatalf("yaml.Marshal() = %q, %v", out, err)
	}
	if err := yaml.Unmarshal([]byte("kind: bool\n"), &got); err != nil || got.Kind != KindBoolean {
		t.Errorf("yaml.Unmarshal() = %v, %v", got.Kind, err)
	}
	if err := yaml.Unmarshal([]byte("kind: blob\n"), &got); err == nil {
		t.Error("yaml.Unmarshal() of unknown kind should fail")
	}

	text, err := KindDouble.MarshalText()
	if err != nil || string(text) != "double" {
		t.Errorf("MarshalText() = %s, %v", text, err)
	}
	var k Kind
	if err := k.UnmarshalText([]byte("float")); err != nil || k != KindDouble {
		t.Errorf("UnmarshalText() = %v, %v", k, err)
	}

	for name, fn := range map[string]func() error{
		"json": func() error { _, err := Kind(0).MarshalJSON(); return err },
		"yaml": func() error { _, err := Kind(0).MarshalYAML(); return err },
		"text": func() error { _, err := Kind(0).MarshalText(); return err },
	} {
		if fn() == nil {
			t.Errorf("%s marshal of the zero kind should fail", name)
		}
	}
}
