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
	"fmt"
	"go/token"
	"maps"
	"math"
	"regexp"
	"slices"
	"strings"

	"dirpx.dev/rxmerr"
	"golang.org/x/mod/module"

	"dirpx.dev/dxsage/dxcore/errors"
)

// Formats lists the string formats a field may name, mapped to the Go
// expression of the check function and the import path that provides it.
var Formats = map[string]struct {
	Func   string
	Import string
}{
	"arn": {Func: "arn.ValidateString", Import: arnImport},
}

// Validate reports every problem of the document: version, package name,
// imports, duplicate or unknown names, misplaced constraints and incomplete
// operations. Problems are *errors.ValidationError values combined with an
// rxmerr collector.
func (d *Document) Validate() error {
	v := &docValidator{doc: d}
	v.header()
	v.enums()
	v.shapes()
	v.operations()

	c := rxmerr.NewCollector()
	for _, err := range v.errs {
		c.Append(err)
	}
	return c.Err()
}

type docValidator struct {
	doc       *Document
	errs      []error
	enumNames map[string]bool
	kinds     map[string]ShapeKind
}

func (v *docValidator) fail(path, rule, format string, args ...any) {
	v.errs = append(v.errs, &errors.ValidationError{
		Type:   "Document",
		Field:  path,
		Rule:   rule,
		Reason: fmt.Sprintf(format, args...),
	})
}

func (v *docValidator) header() {
	d := v.doc
	switch {
	case d.SchemaVersion.IsZero():
		v.fail("SchemaVersion", "required", "must be set")
	case !SupportedVersion.Compatible(d.SchemaVersion):
		v.fail("SchemaVersion", "version", "%s is not readable by this generator (supports %s)",
			d.SchemaVersion, SupportedVersion)
	}

	if !token.IsIdentifier(d.Package) || strings.ToLower(d.Package) != d.Package {
		v.fail("Package", "identifier", "%q is not a lowercase Go identifier", d.Package)
	}

	for _, q := range slices.Sorted(maps.Keys(d.Imports)) {
		path := d.Imports[q]
		if !token.IsIdentifier(q) {
			v.fail("Imports["+q+"]", "identifier", "qualifier is not a Go identifier")
		}
		if err := module.CheckImportPath(path); err != nil {
			v.fail("Imports["+q+"]", "import", "%v", err)
		}
	}
}

func (v *docValidator) enums() {
	v.enumNames = map[string]bool{}
	for i, e := range v.doc.Enums {
		path := fmt.Sprintf("Enums[%d]", i)
		if !token.IsExported(e.Name) || !token.IsIdentifier(e.Name) {
			v.fail(path+".Name", "identifier", "%q is not an exported Go identifier", e.Name)
		}
		if v.enumNames[e.Name] {
			v.fail(path+".Name", "unique", "enum %s is declared twice", e.Name)
		}
		v.enumNames[e.Name] = true

		if len(e.Values) == 0 {
			v.fail(path+".Values", "required", "enum %s has no values", e.Name)
		}
		seen := map[string]bool{}
		consts := map[string]string{}
		for _, val := range e.Values {
			if val == "" {
				v.fail(path+".Values", "value", "enum %s has an empty value", e.Name)
				continue
			}
			if seen[val] {
				v.fail(path+".Values", "unique", "enum %s lists %q twice", e.Name, val)
			}
			seen[val] = true
			c := EnumConstName(e.Name, val)
			if prev, ok := consts[c]; ok && prev != val {
				v.fail(path+".Values", "unique", "values %q and %q of %s both map to %s", prev, val, e.Name, c)
			}
			consts[c] = val
		}
	}
}

func (v *docValidator) shapes() {
	v.kinds = map[string]ShapeKind{}
	for i, s := range v.doc.Shapes {
		path := fmt.Sprintf("Shapes[%s]", s.Name)
		if !token.IsExported(s.Name) || !token.IsIdentifier(s.Name) {
			v.fail(fmt.Sprintf("Shapes[%d].Name", i), "identifier", "%q is not an exported Go identifier", s.Name)
		}
		if _, dup := v.kinds[s.Name]; dup || v.enumNames[s.Name] {
			v.fail(path, "unique", "name %s is declared twice", s.Name)
		}
		v.kinds[s.Name] = s.Kind

		switch s.Kind {
		case ShapeStructure:
			if s.Operation != "" {
				v.fail(path+".Operation", "kind", "structures do not belong to an operation")
			}
		case ShapeInput, ShapeOutput:
			if !token.IsExported(s.Operation) || !token.IsIdentifier(s.Operation) {
				v.fail(path+".Operation", "identifier", "%q is not an exported Go identifier", s.Operation)
			}
		default:
			v.fail(path+".Kind", "kind", "%q is not one of structure, input, output", s.Kind)
		}
	}

	for _, s := range v.doc.Shapes {
		names := map[string]bool{}
		for _, f := range s.Fields {
			path := fmt.Sprintf("Shapes[%s].%s", s.Name, f.Name)
			if !token.IsExported(f.Name) || !token.IsIdentifier(f.Name) {
				v.fail(path, "identifier", "%q is not an exported Go identifier", f.Name)
			}
			if names[f.Name] {
				v.fail(path, "unique", "field is declared twice")
			}
			names[f.Name] = true
			v.field(path, f)
		}
	}
}

// elem returns the kind whose values are constrained by length, pattern and
// format: the field itself, or the elements of a list or map.
func elem(f Field) Kind {
	switch f.Kind {
	case KindList:
		return f.Member
	case KindMap:
		return KindString
	}
	return f.Kind
}

func (v *docValidator) field(path string, f Field) {
	if !f.Kind.Valid() {
		v.fail(path+".Kind", "kind", "missing or unknown kind")
		return
	}

	switch f.Kind {
	case KindList:
		switch f.Member {
		case KindString, KindEnum, KindStructure:
		default:
			v.fail(path+".Member", "kind", "list member must be string, enum or structure")
		}
	case KindMap:
		if f.Member != 0 && f.Member != KindString {
			v.fail(path+".Member", "kind", "map values must be strings")
		}
	default:
		if f.Member != 0 {
			v.fail(path+".Member", "kind", "only lists and maps have a member kind")
		}
	}

	switch e := elem(f); e {
	case KindEnum, KindStructure:
		v.ref(path, f.Ref, e)
	default:
		if f.Ref != "" {
			v.fail(path+".Ref", "ref", "%s fields do not take a ref", f.Kind)
		}
	}

	stringy := elem(f) == KindString
	if f.Length != nil {
		if !stringy {
			v.fail(path+".Length", "constraint", "length applies to strings only")
		}
		v.bounds(path+".Length", f.Length, true, 0)
	}
	if f.Pattern != "" {
		if !stringy {
			v.fail(path+".Pattern", "constraint", "pattern applies to strings only")
		}
		if _, err := regexp.Compile(f.Pattern); err != nil {
			v.fail(path+".Pattern", "pattern", "%v", err)
		}
	}
	if f.Format != "" {
		if _, ok := Formats[f.Format]; !ok {
			v.fail(path+".Format", "format", "unknown format %q", f.Format)
		}
		if !stringy {
			v.fail(path+".Format", "constraint", "format applies to strings only")
		}
	}
	if f.Range != nil {
		switch f.Kind {
		case KindLong:
			v.bounds(path+".Range", f.Range, true, math.Inf(-1))
		case KindDouble:
			v.bounds(path+".Range", f.Range, false, math.Inf(-1))
		default:
			v.fail(path+".Range", "constraint", "range applies to long and double fields only")
		}
	}
	if f.Items != nil {
		if f.Kind != KindList && f.Kind != KindMap {
			v.fail(path+".Items", "constraint", "items applies to lists and maps only")
		}
		v.bounds(path+".Items", f.Items, true, 0)
	}
	if f.IdempotencyToken && f.Kind != KindString {
		v.fail(path+".IdempotencyToken", "constraint", "idempotency tokens must be strings")
	}
}

func (v *docValidator) bounds(path string, b *Bounds, integral bool, floor float64) {
	for _, end := range []*float64{b.Min, b.Max} {
		if end == nil {
			continue
		}
		if integral && (*end != math.Trunc(*end) || math.Abs(*end) > math.MaxInt64) {
			v.fail(path, "constraint", "%g is not an integer", *end)
		}
		if *end < floor {
			v.fail(path, "constraint", "%g is below %g", *end, floor)
		}
	}
	if b.Min == nil && b.Max == nil {
		v.fail(path, "constraint", "needs min, max or both")
	}
	if b.Min != nil && b.Max != nil && *b.Min > *b.Max {
		v.fail(path, "constraint", "min %g exceeds max %g", *b.Min, *b.Max)
	}
}

func (v *docValidator) ref(path, ref string, want Kind) {
	if ref == "" {
		v.fail(path+".Ref", "required", "%s fields need a ref", want)
		return
	}
	if q, name, ok := strings.Cut(ref, "."); ok {
		if _, known := v.doc.Imports[q]; !known {
			v.fail(path+".Ref", "ref", "qualifier %q is not declared in imports", q)
		}
		if !token.IsExported(name) {
			v.fail(path+".Ref", "ref", "%q is not an exported name", name)
		}
		return
	}
	switch want {
	case KindEnum:
		if !v.enumNames[ref] {
			v.fail(path+".Ref", "ref", "unknown enum %s", ref)
		}
	case KindStructure:
		if kind, ok := v.kinds[ref]; !ok || kind != ShapeStructure {
			v.fail(path+".Ref", "ref", "unknown structure %s", ref)
		}
	}
}

func (v *docValidator) operations() {
	for _, op := range v.doc.Operations() {
		if op.Name == "" {
			continue
		}
		if op.Input == nil {
			v.fail("Operations["+op.Name+"]", "operation", "has no input shape")
		}
		if op.Output == nil {
			v.fail("Operations["+op.Name+"]", "operation", "has no output shape")
		}
	}
	seen := map[string]ShapeKind{}
	for _, s := range v.doc.Shapes {
		if s.Kind != ShapeInput && s.Kind != ShapeOutput {
			continue
		}
		key := s.Operation + "/" + string(s.Kind)
		if _, dup := seen[key]; dup {
			v.fail("Operations["+s.Operation+"]", "operation", "has more than one %s shape", s.Kind)
		}
		seen[key] = s.Kind
	}
	if len(v.doc.Operations()) > 0 && v.doc.TargetPrefix == "" {
		v.fail("TargetPrefix", "required", "documents with operations need a target prefix")
	}
}
