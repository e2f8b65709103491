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
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/go-json-experiment/json/jsontext"
)

// MarshalJSON encodes s as a compact JSON object. Fields are written in
// declared order and unset fields are skipped entirely; empty lists and maps
// are written as [] and {}. Timestamps are written as epoch seconds.
func MarshalJSON(s Shape) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Encode writes the JSON encoding of s to w.
func Encode(w io.Writer, s Shape) error {
	e := &encoder{enc: jsontext.NewEncoder(w)}
	e.object(s)
	if e.err != nil {
		return fmt.Errorf("dxsage: cannot marshal %s: %w", s.TypeName(), e.err)
	}
	return nil
}

type encoder struct {
	enc *jsontext.Encoder
	err error
}

func (e *encoder) token(t jsontext.Token) {
	if e.err == nil {
		e.err = e.enc.WriteToken(t)
	}
}

func (e *encoder) value(v jsontext.Value) {
	if e.err == nil {
		e.err = e.enc.WriteValue(v)
	}
}

func (e *encoder) object(s Shape) {
	e.token(jsontext.BeginObject)
	s.Walk(e)
	e.token(jsontext.EndObject)
}

func (e *encoder) String(name string, v **string, _ ...Option) {
	if *v == nil {
		return
	}
	e.token(jsontext.String(name))
	e.token(jsontext.String(**v))
}

func (e *encoder) Int64(name string, v **int64, _ ...Option) {
	if *v == nil {
		return
	}
	e.token(jsontext.String(name))
	e.token(jsontext.Int(**v))
}

func (e *encoder) Float64(name string, v **float64, _ ...Option) {
	if *v == nil {
		return
	}
	e.token(jsontext.String(name))
	e.token(jsontext.Float(**v))
}

func (e *encoder) Bool(name string, v **bool, _ ...Option) {
	if *v == nil {
		return
	}
	e.token(jsontext.String(name))
	e.token(jsontext.Bool(**v))
}

func (e *encoder) Time(name string, v **time.Time, _ ...Option) {
	if *v == nil {
		return
	}
	e.token(jsontext.String(name))
	e.value(jsontext.Value(FormatEpoch(**v)))
}

func (e *encoder) Enum(name string, v EnumRef, _ ...Option) {
	s := v.Get()
	if s == "" {
		return
	}
	e.token(jsontext.String(name))
	e.token(jsontext.String(s))
}

func (e *encoder) EnumList(name string, v EnumListRef, _ ...Option) {
	list := v.Get()
	e.strings(name, list)
}

func (e *encoder) StringList(name string, v *[]string, _ ...Option) {
	e.strings(name, *v)
}

func (e *encoder) strings(name string, list []string) {
	if list == nil {
		return
	}
	e.token(jsontext.String(name))
	e.token(jsontext.BeginArray)
	for _, s := range list {
		e.token(jsontext.String(s))
	}
	e.token(jsontext.EndArray)
}

func (e *encoder) StringMap(name string, v *map[string]string, _ ...Option) {
	m := *v
	if m == nil {
		return
	}
	e.token(jsontext.String(name))
	e.token(jsontext.BeginObject)
	for _, k := range sortedKeys(m) {
		e.token(jsontext.String(k))
		e.token(jsontext.String(m[k]))
	}
	e.token(jsontext.EndObject)
}

func (e *encoder) Struct(name string, v StructRef, _ ...Option) {
	s := v.Get()
	if s == nil {
		return
	}
	e.token(jsontext.String(name))
	e.object(s)
}

func (e *encoder) StructList(name string, v ListRef, _ ...Option) {
	if v.IsNil() {
		return
	}
	e.token(jsontext.String(name))
	e.token(jsontext.BeginArray)
	for i := range v.Len() {
		e.object(v.At(i))
	}
	e.token(jsontext.EndArray)
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
