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
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// record is a snapshot of the fields of one shape, in declared order. It is
// the common input of Equal, Hash, Render, IsZero and Copy.
type record struct {
	typ    string
	fields []field
}

type fieldKind uint8

const (
	kindString fieldKind = iota + 1
	kindInt
	kindFloat
	kindBool
	kindTime
	kindEnum
	kindStrings
	kindMap
	kindStruct
	kindStructs
)

type field struct {
	name      string
	kind      fieldKind
	set       bool
	sensitive bool

	s    string
	i    int64
	f    float64
	b    bool
	t    time.Time
	list []string
	m    map[string]string
	obj  *record
	objs []*record
}

func snapshot(s Shape) *record {
	c := &collector{}
	s.Walk(c)
	return &record{typ: s.TypeName(), fields: c.fields}
}

type collector struct {
	fields []field
}

func (c *collector) add(f field, opts []Option) {
	f.sensitive = hasOption(opts, optSensitive)
	c.fields = append(c.fields, f)
}

func (c *collector) String(name string, v **string, opts ...Option) {
	f := field{name: name, kind: kindString}
	if *v != nil {
		f.set, f.s = true, **v
	}
	c.add(f, opts)
}

func (c *collector) Int64(name string, v **int64, opts ...Option) {
	f := field{name: name, kind: kindInt}
	if *v != nil {
		f.set, f.i = true, **v
	}
	c.add(f, opts)
}

func (c *collector) Float64(name string, v **float64, opts ...Option) {
	f := field{name: name, kind: kindFloat}
	if *v != nil {
		f.set, f.f = true, **v
	}
	c.add(f, opts)
}

func (c *collector) Bool(name string, v **bool, opts ...Option) {
	f := field{name: name, kind: kindBool}
	if *v != nil {
		f.set, f.b = true, **v
	}
	c.add(f, opts)
}

func (c *collector) Time(name string, v **time.Time, opts ...Option) {
	f := field{name: name, kind: kindTime}
	if *v != nil {
		f.set, f.t = true, **v
	}
	c.add(f, opts)
}

func (c *collector) Enum(name string, v EnumRef, opts ...Option) {
	s := v.Get()
	c.add(field{name: name, kind: kindEnum, set: s != "", s: s}, opts)
}

func (c *collector) EnumList(name string, v EnumListRef, opts ...Option) {
	list := v.Get()
	c.add(field{name: name, kind: kindStrings, set: list != nil, list: list}, opts)
}

func (c *collector) StringList(name string, v *[]string, opts ...Option) {
	c.add(field{name: name, kind: kindStrings, set: *v != nil, list: *v}, opts)
}

func (c *collector) StringMap(name string, v *map[string]string, opts ...Option) {
	c.add(field{name: name, kind: kindMap, set: *v != nil, m: *v}, opts)
}

func (c *collector) Struct(name string, v StructRef, opts ...Option) {
	f := field{name: name, kind: kindStruct}
	if s := v.Get(); s != nil {
		f.set, f.obj = true, snapshot(s)
	}
	c.add(f, opts)
}

func (c *collector) StructList(name string, v ListRef, opts ...Option) {
	f := field{name: name, kind: kindStructs, set: !v.IsNil()}
	if f.set {
		f.objs = make([]*record, v.Len())
		for i := range f.objs {
			f.objs[i] = snapshot(v.At(i))
		}
	}
	c.add(f, opts)
}

// Equal reports whether a and b are structurally equal. Two nil pointers are
// equal; a nil and a non-nil pointer are not.
//
// Fields are equal when both are unset, or both are set with equal values:
// timestamps compare as instants, lists element-wise in order, maps by their
// entries and nested shapes recursively. An unset list never equals an empty
// one.
func Equal[T any, P interface {
	*T
	Shape
}](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return EqualShapes(P(a), P(b))
}

// EqualShapes is Equal for shapes held as interfaces. Shapes of different
// types are never equal.
func EqualShapes(a, b Shape) bool {
	return equalRecords(snapshot(a), snapshot(b))
}

func equalRecords(a, b *record) bool {
	if a.typ != b.typ || len(a.fields) != len(b.fields) {
		return false
	}
	for i := range a.fields {
		if !equalFields(&a.fields[i], &b.fields[i]) {
			return false
		}
	}
	return true
}

func equalFields(a, b *field) bool {
	if a.set != b.set {
		return false
	}
	if !a.set {
		return true
	}
	switch a.kind {
	case kindString, kindEnum:
		return a.s == b.s
	case kindInt:
		return a.i == b.i
	case kindFloat:
		return a.f == b.f || (math.IsNaN(a.f) && math.IsNaN(b.f))
	case kindBool:
		return a.b == b.b
	case kindTime:
		return a.t.Equal(b.t)
	case kindStrings:
		return slices.Equal(a.list, b.list)
	case kindMap:
		return maps.Equal(a.m, b.m)
	case kindStruct:
		return equalRecords(a.obj, b.obj)
	case kindStructs:
		return slices.EqualFunc(a.objs, b.objs, equalRecords)
	}
	return false
}

const (
	hashPrime = 31
	hashTrue  = 1231
	hashFalse = 1237
)

// Hash returns a structural hash of s consistent with Equal. Starting from 1,
// each field in declared order is folded in as h = h*31 + fieldHash, where an
// unset field contributes 0.
func Hash(s Shape) uint64 {
	return hashRecord(snapshot(s))
}

func hashRecord(r *record) uint64 {
	h := uint64(1)
	for i := range r.fields {
		h = h*hashPrime + hashField(&r.fields[i])
	}
	return h
}

func hashField(f *field) uint64 {
	if !f.set {
		return 0
	}
	switch f.kind {
	case kindString, kindEnum:
		return xxhash.Sum64String(f.s)
	case kindInt:
		return uint64(f.i)
	case kindFloat:
		return hashFloat(f.f)
	case kindBool:
		if f.b {
			return hashTrue
		}
		return hashFalse
	case kindTime:
		return uint64(f.t.Unix())*hashPrime + uint64(f.t.Nanosecond())
	case kindStrings:
		h := uint64(1)
		for _, s := range f.list {
			h = h*hashPrime + xxhash.Sum64String(s)
		}
		return h
	case kindMap:
		// Entries are summed so that iteration order does not matter.
		h := uint64(1)
		for k, v := range f.m {
			h += xxhash.Sum64String(k) ^ xxhash.Sum64String(v)
		}
		return h
	case kindStruct:
		return hashRecord(f.obj)
	case kindStructs:
		h := uint64(1)
		for _, o := range f.objs {
			h = h*hashPrime + hashRecord(o)
		}
		return h
	}
	return 0
}

func hashFloat(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return math.Float64bits(math.NaN())
	default:
		return math.Float64bits(f)
	}
}

// IsZero reports whether every field of s is unset.
func IsZero(s Shape) bool {
	for _, f := range snapshot(s).fields {
		if f.set {
			return false
		}
	}
	return true
}

const redacted = "[REDACTED]"

// Render returns a single-line dump of s: "{Name: value,Other: value}" with
// fields in declared order and unset fields omitted. Timestamps are rendered
// in RFC 3339 UTC, lists as "[a, b]", maps as "{k=v, k2=v2}" sorted by key
// and nested shapes recursively. The format is meant for diagnostics only.
func Render(s Shape) string {
	var sb strings.Builder
	renderRecord(&sb, snapshot(s), false)
	return sb.String()
}

// RenderRedacted is Render with the values of Sensitive fields replaced by
// "[REDACTED]".
func RenderRedacted(s Shape) string {
	var sb strings.Builder
	renderRecord(&sb, snapshot(s), true)
	return sb.String()
}

func renderRecord(sb *strings.Builder, r *record, redact bool) {
	sb.WriteByte('{')
	first := true
	for i := range r.fields {
		f := &r.fields[i]
		if !f.set {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(f.name)
		sb.WriteString(": ")
		if redact && f.sensitive {
			sb.WriteString(redacted)
			continue
		}
		renderValue(sb, f, redact)
	}
	sb.WriteByte('}')
}

func renderValue(sb *strings.Builder, f *field, redact bool) {
	switch f.kind {
	case kindString, kindEnum:
		sb.WriteString(f.s)
	case kindInt:
		sb.WriteString(strconv.FormatInt(f.i, 10))
	case kindFloat:
		sb.WriteString(strconv.FormatFloat(f.f, 'g', -1, 64))
	case kindBool:
		sb.WriteString(strconv.FormatBool(f.b))
	case kindTime:
		sb.WriteString(FormatTimestamp(f.t))
	case kindStrings:
		sb.WriteByte('[')
		sb.WriteString(strings.Join(f.list, ", "))
		sb.WriteByte(']')
	case kindMap:
		sb.WriteByte('{')
		for i, k := range sortedKeys(f.m) {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteByte('=')
			sb.WriteString(f.m[k])
		}
		sb.WriteByte('}')
	case kindStruct:
		renderRecord(sb, f.obj, redact)
	case kindStructs:
		sb.WriteByte('[')
		for i, o := range f.objs {
			if i > 0 {
				sb.WriteString(", ")
			}
			renderRecord(sb, o, redact)
		}
		sb.WriteByte(']')
	}
}
