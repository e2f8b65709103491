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
	"slices"
	"time"
)

// Clone returns a deep copy of s, or nil when s is nil. The copy shares no
// mutable state with s and keeps unset and empty lists apart.
func Clone[T any, P interface {
	*T
	Shape
}](s *T) *T {
	if s == nil {
		return nil
	}
	out := new(T)
	Copy(P(out), P(s))
	return out
}

// Copy overwrites every field of dst with a deep copy of the corresponding
// field of src. dst and src must be the same shape type.
func Copy(dst, src Shape) {
	dst.Walk(&assigner{fields: snapshot(src).fields})
}

// assigner writes a record back into a shape. It relies on Walk presenting
// the fields in the same order for every instance of a type.
type assigner struct {
	fields []field
	next   int
}

func (a *assigner) take() *field {
	f := &a.fields[a.next]
	a.next++
	return f
}

func (a *assigner) String(_ string, v **string, _ ...Option) {
	f := a.take()
	*v = nil
	if f.set {
		s := f.s
		*v = &s
	}
}

func (a *assigner) Int64(_ string, v **int64, _ ...Option) {
	f := a.take()
	*v = nil
	if f.set {
		n := f.i
		*v = &n
	}
}

func (a *assigner) Float64(_ string, v **float64, _ ...Option) {
	f := a.take()
	*v = nil
	if f.set {
		x := f.f
		*v = &x
	}
}

func (a *assigner) Bool(_ string, v **bool, _ ...Option) {
	f := a.take()
	*v = nil
	if f.set {
		b := f.b
		*v = &b
	}
}

func (a *assigner) Time(_ string, v **time.Time, _ ...Option) {
	f := a.take()
	*v = nil
	if f.set {
		t := f.t
		*v = &t
	}
}

func (a *assigner) Enum(_ string, v EnumRef, _ ...Option) {
	v.Set(a.take().s)
}

func (a *assigner) EnumList(_ string, v EnumListRef, _ ...Option) {
	v.Set(a.take().list)
}

func (a *assigner) StringList(_ string, v *[]string, _ ...Option) {
	*v = slices.Clone(a.take().list)
}

func (a *assigner) StringMap(_ string, v *map[string]string, _ ...Option) {
	*v = maps.Clone(a.take().m)
}

func (a *assigner) Struct(_ string, v StructRef, _ ...Option) {
	f := a.take()
	v.Clear()
	if !f.set {
		return
	}
	v.Ensure().Walk(&assigner{fields: f.obj.fields})
}

func (a *assigner) StructList(_ string, v ListRef, _ ...Option) {
	f := a.take()
	if !f.set {
		v.Reset(-1)
		return
	}
	v.Reset(len(f.objs))
	for i, o := range f.objs {
		v.At(i).Walk(&assigner{fields: o.fields})
	}
}
