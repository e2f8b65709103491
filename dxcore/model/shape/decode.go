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
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"dirpx.dev/dxsage/dxcore/errors"
)

// UnmarshalJSON decodes data into s in Lenient mode.
func UnmarshalJSON(data []byte, s Shape) error {
	return Decode(data, s, Lenient)
}

// Decode decodes the JSON object in data into s.
//
// Decoding replaces every field of s: members absent from data, or present
// with a null value, leave the field unset. Timestamps are accepted as epoch
// seconds (integer or fractional) or as ISO-8601 strings. Enum literals are
// stored as received; in Strict mode unknown literals and unknown members are
// rejected. The first problem stops decoding and is reported as an
// *errors.UnmarshalError naming the field path.
func Decode(data []byte, s Shape, mode DecodeMode) error {
	st := &decodeState{mode: mode}
	st.object(data, s, "")
	if st.err != "" {
		return &errors.UnmarshalError{Type: s.TypeName(), Data: data, Reason: st.err}
	}
	return nil
}

type decodeState struct {
	mode DecodeMode
	err  string
}

func (st *decodeState) fail(path, format string, args ...any) {
	if st.err == "" {
		st.err = "field " + path + ": " + fmt.Sprintf(format, args...)
	}
}

func (st *decodeState) object(data []byte, s Shape, path string) {
	var members map[string]jsontext.Value
	if err := json.Unmarshal(data, &members); err != nil {
		if path == "" {
			st.err = err.Error()
		} else {
			st.fail(path, "expected object")
		}
		return
	}
	d := &decoder{st: st, members: members, prefix: path}
	if path != "" {
		d.prefix += "."
	}
	s.Walk(d)
	if st.mode == Strict && st.err == "" {
		for _, name := range slices.Sorted(maps.Keys(members)) {
			if _, ok := d.seen[name]; !ok {
				st.fail(d.prefix+name, "unknown member")
				return
			}
		}
	}
}

type decoder struct {
	st      *decodeState
	members map[string]jsontext.Value
	prefix  string
	seen    map[string]struct{}
}

// lookup returns the raw member value, or false when the member is absent,
// null, or decoding already failed.
func (d *decoder) lookup(name string) (jsontext.Value, bool) {
	if d.st.err != "" {
		return nil, false
	}
	if d.st.mode == Strict {
		if d.seen == nil {
			d.seen = make(map[string]struct{}, len(d.members))
		}
		d.seen[name] = struct{}{}
	}
	raw, ok := d.members[name]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

func isNull(raw jsontext.Value) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func (d *decoder) String(name string, v **string, _ ...Option) {
	*v = nil
	raw, ok := d.lookup(name)
	if !ok {
		return
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		d.st.fail(d.prefix+name, "expected string")
		return
	}
	*v = &s
}

func (d *decoder) Int64(name string, v **int64, _ ...Option) {
	*v = nil
	raw, ok := d.lookup(name)
	if !ok {
		return
	}
	n, ok := parseInteger(raw)
	if !ok {
		d.st.fail(d.prefix+name, "expected 64-bit integer")
		return
	}
	*v = &n
}

// parseInteger accepts a JSON number whose exact value is an integer in the
// int64 range, whatever its notation: 100, 100.0 and 1e2 are one value.
func parseInteger(raw jsontext.Value) (int64, bool) {
	text := string(bytes.TrimSpace(raw))
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n, true
	}
	if raw.Kind() != '0' {
		return 0, false
	}
	sign := ""
	if text[0] == '-' {
		sign, text = "-", text[1:]
	}
	mant, exp := text, 0
	if i := strings.IndexAny(text, "eE"); i >= 0 {
		e, err := strconv.Atoi(text[i+1:])
		if err != nil {
			return 0, false
		}
		mant, exp = text[:i], e
	}
	digits := mant
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		digits = mant[:i] + mant[i+1:]
		exp -= len(mant) - i - 1
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return 0, true
	}
	significant := strings.TrimRight(digits, "0")
	exp += len(digits) - len(significant)
	if exp < 0 || len(significant)+exp > 19 {
		return 0, false
	}
	n, err := strconv.ParseInt(sign+significant+strings.Repeat("0", exp), 10, 64)
	return n, err == nil
}

func (d *decoder) Float64(name string, v **float64, _ ...Option) {
	*v = nil
	raw, ok := d.lookup(name)
	if !ok {
		return
	}
	f, ok := parseFloat(raw)
	if !ok {
		d.st.fail(d.prefix+name, "expected number")
		return
	}
	*v = &f
}

// parseFloat accepts a JSON number or one of the strings "NaN", "Infinity"
// and "-Infinity" that MarshalJSON writes for non-finite values.
func parseFloat(raw jsontext.Value) (float64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	switch s {
	case "NaN":
		return math.NaN(), true
	case "Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	return 0, false
}

func (d *decoder) Bool(name string, v **bool, _ ...Option) {
	*v = nil
	raw, ok := d.lookup(name)
	if !ok {
		return
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		d.st.fail(d.prefix+name, "expected boolean")
		return
	}
	*v = &b
}

func (d *decoder) Time(name string, v **time.Time, _ ...Option) {
	*v = nil
	raw, ok := d.lookup(name)
	if !ok {
		return
	}
	t, err := parseWireTime(raw)
	if err != nil {
		d.st.fail(d.prefix+name, "%v", err)
		return
	}
	*v = &t
}

func parseWireTime(raw jsontext.Value) (time.Time, error) {
	raw = bytes.TrimSpace(raw)
	switch raw.Kind() {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, err
		}
		return ParseTimestamp(s)
	case '0':
		return ParseEpoch(string(raw))
	default:
		return time.Time{}, fmt.Errorf("expected timestamp, got %s", raw.Kind())
	}
}

func (d *decoder) Enum(name string, v EnumRef, _ ...Option) {
	v.Set("")
	raw, ok := d.lookup(name)
	if !ok {
		return
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		d.st.fail(d.prefix+name, "expected string")
		return
	}
	if d.st.mode == Strict && !v.Known(s) {
		d.st.fail(d.prefix+name, "unknown enum value %q", s)
		return
	}
	v.Set(s)
}

func (d *decoder) EnumList(name string, v EnumListRef, _ ...Option) {
	v.Set(nil)
	list, ok := d.strings(name)
	if !ok {
		return
	}
	if d.st.mode == Strict {
		for i, s := range list {
			if !v.Known(s) {
				d.st.fail(fmt.Sprintf("%s%s[%d]", d.prefix, name, i), "unknown enum value %q", s)
				return
			}
		}
	}
	v.Set(list)
}

func (d *decoder) StringList(name string, v *[]string, _ ...Option) {
	*v = nil
	if list, ok := d.strings(name); ok {
		*v = list
	}
}

func (d *decoder) strings(name string) ([]string, bool) {
	raw, ok := d.lookup(name)
	if !ok {
		return nil, false
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		d.st.fail(d.prefix+name, "expected array of strings")
		return nil, false
	}
	if list == nil {
		list = []string{}
	}
	return list, true
}

func (d *decoder) StringMap(name string, v *map[string]string, _ ...Option) {
	*v = nil
	raw, ok := d.lookup(name)
	if !ok {
		return
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		d.st.fail(d.prefix+name, "expected object of strings")
		return
	}
	if m == nil {
		m = map[string]string{}
	}
	*v = m
}

func (d *decoder) Struct(name string, v StructRef, _ ...Option) {
	v.Clear()
	raw, ok := d.lookup(name)
	if !ok {
		return
	}
	d.st.object(raw, v.Ensure(), d.prefix+name)
}

func (d *decoder) StructList(name string, v ListRef, _ ...Option) {
	v.Reset(-1)
	raw, ok := d.lookup(name)
	if !ok {
		return
	}
	var elems []jsontext.Value
	if err := json.Unmarshal(raw, &elems); err != nil {
		d.st.fail(d.prefix+name, "expected array of objects")
		return
	}
	v.Reset(len(elems))
	for i, elem := range elems {
		if isNull(elem) {
			continue
		}
		d.st.object(elem, v.At(i), fmt.Sprintf("%s%s[%d]", d.prefix, name, i))
	}
}
