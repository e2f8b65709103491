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

// Package shapetest populates shapes with random data for property tests.
package shapetest

import (
	"math/rand/v2"
	"strconv"
	"time"

	"dirpx.dev/dxsage/dxcore/model/shape"
)

// MaxDepth bounds how deep Populate descends into nested structures.
const MaxDepth = 3

// Populate fills s with random values drawn from r. Roughly a quarter of the
// fields stay unset, lists and maps are sometimes present but empty, and enum
// fields sometimes receive a literal this client does not know. The values do
// not respect field constraints.
func Populate(s shape.Shape, r *rand.Rand) {
	s.Walk(&populator{r: r})
}

// New allocates a T and populates it.
func New[T any, P interface {
	*T
	shape.Shape
}](r *rand.Rand) *T {
	out := new(T)
	Populate(P(out), r)
	return out
}

type populator struct {
	r     *rand.Rand
	depth int
}

func (p *populator) skip() bool { return p.r.IntN(4) == 0 }

var alphabet = []rune("abcXYZ019-_. /:éß日本")

func (p *populator) str() string {
	n := p.r.IntN(12)
	out := make([]rune, n)
	for i := range out {
		out[i] = alphabet[p.r.IntN(len(alphabet))]
	}
	return string(out)
}

func (p *populator) count() int {
	// -1 stands for unset.
	return p.r.IntN(5) - 1
}

func (p *populator) String(_ string, v **string, _ ...shape.Option) {
	*v = nil
	if !p.skip() {
		s := p.str()
		*v = &s
	}
}

func (p *populator) Int64(_ string, v **int64, _ ...shape.Option) {
	*v = nil
	if !p.skip() {
		n := p.r.Int64() - p.r.Int64()
		*v = &n
	}
}

func (p *populator) Float64(_ string, v **float64, _ ...shape.Option) {
	*v = nil
	if !p.skip() {
		f := p.r.NormFloat64() * 1e6
		*v = &f
	}
}

func (p *populator) Bool(_ string, v **bool, _ ...shape.Option) {
	*v = nil
	if !p.skip() {
		b := p.r.IntN(2) == 0
		*v = &b
	}
}

func (p *populator) Time(_ string, v **time.Time, _ ...shape.Option) {
	*v = nil
	if p.skip() {
		return
	}
	var nsec int64
	if p.r.IntN(2) == 0 {
		nsec = p.r.Int64N(int64(time.Second))
	}
	t := time.Unix(p.r.Int64N(4_000_000_000)-1_000_000_000, nsec).UTC()
	*v = &t
}

func (p *populator) enum(values []string) string {
	if len(values) == 0 || p.r.IntN(5) == 0 {
		return "Future" + strconv.Itoa(p.r.IntN(100))
	}
	return values[p.r.IntN(len(values))]
}

func (p *populator) Enum(_ string, v shape.EnumRef, _ ...shape.Option) {
	v.Set("")
	if !p.skip() {
		v.Set(p.enum(v.Values()))
	}
}

func (p *populator) EnumList(_ string, v shape.EnumListRef, _ ...shape.Option) {
	n := p.count()
	if n < 0 {
		v.Set(nil)
		return
	}
	list := make([]string, n)
	for i := range list {
		list[i] = p.enum(v.Values())
	}
	v.Set(list)
}

func (p *populator) StringList(_ string, v *[]string, _ ...shape.Option) {
	n := p.count()
	if n < 0 {
		*v = nil
		return
	}
	list := make([]string, n)
	for i := range list {
		list[i] = p.str()
	}
	*v = list
}

func (p *populator) StringMap(_ string, v *map[string]string, _ ...shape.Option) {
	n := p.count()
	if n < 0 {
		*v = nil
		return
	}
	m := make(map[string]string, n)
	for range n {
		m[p.str()] = p.str()
	}
	*v = m
}

func (p *populator) Struct(_ string, v shape.StructRef, _ ...shape.Option) {
	v.Clear()
	if p.depth >= MaxDepth || p.skip() {
		return
	}
	v.Ensure().Walk(&populator{r: p.r, depth: p.depth + 1})
}

func (p *populator) StructList(_ string, v shape.ListRef, _ ...shape.Option) {
	n := p.count()
	if p.depth >= MaxDepth && n > 0 {
		n = 0
	}
	v.Reset(n)
	for i := range max(n, 0) {
		v.At(i).Walk(&populator{r: p.r, depth: p.depth + 1})
	}
}
