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
	"math"
	"strconv"
	"time"

	"github.com/go-json-experiment/json"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxsage/dxcore/errors"
)

// MarshalYAML returns a mapping node for s suitable for returning from a
// yaml.Marshaler. Fields keep their wire names and declared order; timestamps
// are written as RFC 3339 strings.
func MarshalYAML(s Shape) (any, error) {
	return yamlNode(s), nil
}

func yamlNode(s Shape) *yaml.Node {
	y := &yamlEncoder{node: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
	s.Walk(y)
	return y.node
}

// UnmarshalYAML decodes a YAML node into s. The node is converted to JSON and
// decoded with Decode in Lenient mode, so both formats share one set of
// decoding rules.
func UnmarshalYAML(node *yaml.Node, s Shape) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return &errors.UnmarshalError{Type: s.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	data, err := json.Marshal(nonFinite(v))
	if err != nil {
		return &errors.UnmarshalError{Type: s.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	return Decode(data, s, Lenient)
}

// nonFinite replaces NaN and infinite floats in a decoded YAML tree with the
// strings Decode accepts for them.
func nonFinite(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			v[k] = nonFinite(e)
		}
	case []any:
		for i, e := range v {
			v[i] = nonFinite(e)
		}
	case float64:
		switch {
		case math.IsNaN(v):
			return "NaN"
		case math.IsInf(v, 1):
			return "Infinity"
		case math.IsInf(v, -1):
			return "-Infinity"
		}
	}
	return v
}

type yamlEncoder struct {
	node *yaml.Node
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func (y *yamlEncoder) add(name string, value *yaml.Node) {
	y.node.Content = append(y.node.Content, scalar("!!str", name), value)
}

func (y *yamlEncoder) String(name string, v **string, _ ...Option) {
	if *v != nil {
		y.add(name, scalar("!!str", **v))
	}
}

func (y *yamlEncoder) Int64(name string, v **int64, _ ...Option) {
	if *v != nil {
		y.add(name, scalar("!!int", strconv.FormatInt(**v, 10)))
	}
}

func (y *yamlEncoder) Float64(name string, v **float64, _ ...Option) {
	if *v != nil {
		y.add(name, scalar("!!float", yamlFloat(**v)))
	}
}

func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (y *yamlEncoder) Bool(name string, v **bool, _ ...Option) {
	if *v != nil {
		y.add(name, scalar("!!bool", strconv.FormatBool(**v)))
	}
}

func (y *yamlEncoder) Time(name string, v **time.Time, _ ...Option) {
	if *v != nil {
		y.add(name, scalar("!!str", FormatTimestamp(**v)))
	}
}

func (y *yamlEncoder) Enum(name string, v EnumRef, _ ...Option) {
	if s := v.Get(); s != "" {
		y.add(name, scalar("!!str", s))
	}
}

func (y *yamlEncoder) EnumList(name string, v EnumListRef, _ ...Option) {
	y.strings(name, v.Get())
}

func (y *yamlEncoder) StringList(name string, v *[]string, _ ...Option) {
	y.strings(name, *v)
}

func (y *yamlEncoder) strings(name string, list []string) {
	if list == nil {
		return
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, s := range list {
		seq.Content = append(seq.Content, scalar("!!str", s))
	}
	y.add(name, seq)
}

func (y *yamlEncoder) StringMap(name string, v *map[string]string, _ ...Option) {
	m := *v
	if m == nil {
		return
	}
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range sortedKeys(m) {
		mapping.Content = append(mapping.Content, scalar("!!str", k), scalar("!!str", m[k]))
	}
	y.add(name, mapping)
}

func (y *yamlEncoder) Struct(name string, v StructRef, _ ...Option) {
	if s := v.Get(); s != nil {
		y.add(name, yamlNode(s))
	}
}

func (y *yamlEncoder) StructList(name string, v ListRef, _ ...Option) {
	if v.IsNil() {
		return
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for i := range v.Len() {
		seq.Content = append(seq.Content, yamlNode(v.At(i)))
	}
	y.add(name, seq)
}
