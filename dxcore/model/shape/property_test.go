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

package shape_test

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxsage/dxcore/model/shape"
	"dirpx.dev/dxsage/dxcore/model/shape/shapetest"
)

const propertyRounds = 200

func TestProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for i := range propertyRounds {
		a := shapetest.New[request](r)

		require.True(t, a.Equal(a), "round %d: not reflexive: %s", i, a)

		c := a.Clone()
		require.True(t, c.Equal(a), "round %d: clone differs", i)
		require.True(t, a.Equal(c), "round %d: not symmetric", i)
		require.Equal(t, shape.Hash(a), shape.Hash(c), "round %d: hash differs", i)
		require.Equal(t, a.String(), c.String(), "round %d", i)

		data, err := a.MarshalJSON()
		require.NoError(t, err, "round %d", i)
		var fromJSON request
		require.NoError(t, fromJSON.UnmarshalJSON(data), "round %d: %s", i, data)
		require.True(t, fromJSON.Equal(a), "round %d: JSON\n got %s\nwant %s", i, &fromJSON, a)

		var members map[string]jsontext.Value
		require.NoError(t, json.Unmarshal(data, &members))
		require.Equal(t, setFields(a), memberNames(members), "round %d: %s", i, data)

		doc, err := yaml.Marshal(a)
		require.NoError(t, err, "round %d", i)
		var fromYAML request
		require.NoError(t, yaml.Unmarshal(doc, &fromYAML), "round %d: %s", i, doc)
		require.True(t, fromYAML.Equal(a), "round %d: YAML\n got %s\nwant %s", i, &fromYAML, a)

		b := shapetest.New[request](r)
		require.Equal(t, a.Equal(b), b.Equal(a), "round %d", i)
	}
}

func memberNames(m map[string]jsontext.Value) []string {
	var names []string
	for k := range m {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// setFields returns the sorted wire names of the fields of s that are set.
func setFields(s shape.Shape) []string {
	var c setCollector
	s.Walk(&c)
	slices.Sort(c.names)
	return c.names
}

type setCollector struct {
	names []string
}

func (c *setCollector) add(name string, set bool) {
	if set {
		c.names = append(c.names, name)
	}
}

func (c *setCollector) String(n string, v **string, _ ...shape.Option)    { c.add(n, *v != nil) }
func (c *setCollector) Int64(n string, v **int64, _ ...shape.Option)      { c.add(n, *v != nil) }
func (c *setCollector) Float64(n string, v **float64, _ ...shape.Option)  { c.add(n, *v != nil) }
func (c *setCollector) Bool(n string, v **bool, _ ...shape.Option)        { c.add(n, *v != nil) }
func (c *setCollector) Time(n string, v **time.Time, _ ...shape.Option)   { c.add(n, *v != nil) }
func (c *setCollector) Enum(n string, v shape.EnumRef, _ ...shape.Option) { c.add(n, v.Get() != "") }
func (c *setCollector) EnumList(n string, v shape.EnumListRef, _ ...shape.Option) {
	c.add(n, v.Get() != nil)
}
func (c *setCollector) StringList(n string, v *[]string, _ ...shape.Option) { c.add(n, *v != nil) }
func (c *setCollector) StringMap(n string, v *map[string]string, _ ...shape.Option) {
	c.add(n, *v != nil)
}
func (c *setCollector) Struct(n string, v shape.StructRef, _ ...shape.Option) {
	c.add(n, v.Get() != nil)
}
func (c *setCollector) StructList(n string, v shape.ListRef, _ ...shape.Option) {
	c.add(n, !v.IsNil())
}
