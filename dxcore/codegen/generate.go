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
	"bytes"
	"cmp"
	"fmt"
	"go/format"
	"maps"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/MakeNowJust/heredoc/v2"
)

const (
	modelImport = "dirpx.dev/dxsage/dxcore/model"
	shapeImport = "dirpx.dev/dxsage/dxcore/model/shape"
	arnImport   = "dirpx.dev/dxsage/dxcore/model/arn"
	yamlImport  = "gopkg.in/yaml.v3"

	// GeneratedMarker is the line that marks every generated file.
	GeneratedMarker = "// Code generated by shapegen. DO NOT EDIT."

	docWidth = 77

	// methodWidth bounds the one-line form of a generated method. Longer
	// methods are written over several lines, which go/format keeps.
	methodWidth = 96
)

// File is one generated source file.
type File struct {
	// Name is the file name relative to the output directory.
	Name    string
	Content []byte
}

// Generator turns schema documents into Go source.
type Generator struct {
	// Header is written verbatim at the top of every file, typically a
	// license block comment. It may be empty.
	Header string
}

// Generate returns the files for doc, sorted by name: enums.go when the
// document declares enums, types.go when it declares structures, one
// api_op_<Operation>.go per operation and api_operations.go with the
// operation table. doc must have passed Validate.
func (g *Generator) Generate(doc *Document) ([]File, error) {
	var files []File
	emit := func(name, tmpl string, v *fileView) error {
		v.Header = strings.TrimRight(g.Header, "\n")
		v.Package = doc.Package
		src, err := render(tmpl, v)
		if err != nil {
			return fmt.Errorf("generate %s: %w", name, err)
		}
		files = append(files, File{Name: name, Content: src})
		return nil
	}

	if len(doc.Enums) > 0 {
		v := &fileView{}
		for _, e := range doc.Enums {
			v.Enums = append(v.Enums, newEnumView(e))
		}
		if err := emit("enums.go", "enums", v); err != nil {
			return nil, err
		}
	}

	if structs := doc.Structures(); len(structs) > 0 {
		v := newShapesFile(doc, structs)
		if err := emit("types.go", "shapes", v); err != nil {
			return nil, err
		}
	}

	ops := doc.Operations()
	for _, op := range ops {
		v := newShapesFile(doc, []*Shape{op.Input, op.Output})
		if err := emit("api_op_"+op.Name+".go", "shapes", v); err != nil {
			return nil, err
		}
	}
	if len(ops) > 0 {
		v := &fileView{}
		for _, op := range ops {
			v.Operations = append(v.Operations, opView{
				Name:   op.Name,
				Target: doc.TargetPrefix + "." + op.Name,
				Input:  op.Input.Name,
				Output: op.Output.Name,
			})
		}
		if err := emit("api_operations.go", "operations", v); err != nil {
			return nil, err
		}
	}

	slices.SortFunc(files, func(a, b File) int { return strings.Compare(a.Name, b.Name) })
	return files, nil
}

type fileView struct {
	Header     string
	Package    string
	Imports    [][]string
	Enums      []enumView
	Shapes     []shapeView
	Operations []opView
}

type enumView struct {
	Name   string
	Doc    []string
	Consts []constView
}

type constView struct {
	Name  string
	Value string
}

type shapeView struct {
	Name   string
	Doc    []string
	Fields []fieldView
}

type fieldView struct {
	Name   string
	Doc    []string
	GoType string
	Param  string
	Assign string
	Walk   string
}

type opView struct {
	Name   string
	Target string
	Input  string
	Output string
}

func newEnumView(e Enum) enumView {
	v := enumView{Name: e.Name, Doc: wrap(cmp.Or(e.Doc, e.Name+" is an enumeration of string values."), docWidth)}
	for _, val := range e.Values {
		v.Consts = append(v.Consts, constView{Name: EnumConstName(e.Name, val), Value: strconv.Quote(val)})
	}
	return v
}

func newShapesFile(doc *Document, shapes []*Shape) *fileView {
	v := &fileView{}
	imports := map[string]bool{modelImport: true, shapeImport: true, yamlImport: true}
	for _, s := range shapes {
		sv := shapeView{Name: s.Name, Doc: wrap(cmp.Or(s.Doc, defaultDoc(s)), docWidth)}
		for _, f := range s.Fields {
			sv.Fields = append(sv.Fields, newFieldView(f))
			for _, path := range fieldImports(doc, f) {
				imports[path] = true
			}
		}
		v.Shapes = append(v.Shapes, sv)
	}
	v.Imports = groupImports(imports)
	return v
}

func defaultDoc(s *Shape) string {
	switch s.Kind {
	case ShapeInput:
		return s.Name + " is the request of the " + s.Operation + " operation."
	case ShapeOutput:
		return s.Name + " is the response of the " + s.Operation + " operation."
	}
	return s.Name + " is a structure of the service model."
}

func fieldImports(doc *Document, f Field) []string {
	var out []string
	switch f.Kind {
	case KindTimestamp:
		out = append(out, "time")
	case KindList:
		out = append(out, "slices")
	case KindMap:
		out = append(out, "maps")
	}
	if q := qualifier(f.Ref); q != "" {
		out = append(out, doc.Imports[q])
	}
	if ft, ok := Formats[f.Format]; ok {
		out = append(out, ft.Import)
	}
	return out
}

// groupImports splits paths into standard library, third party and
// project groups, each sorted.
func groupImports(paths map[string]bool) [][]string {
	groups := make([][]string, 3)
	for _, p := range slices.Sorted(maps.Keys(paths)) {
		switch {
		case !strings.Contains(strings.Split(p, "/")[0], "."):
			groups[0] = append(groups[0], p)
		case strings.HasPrefix(p, "dirpx.dev/"):
			groups[2] = append(groups[2], p)
		default:
			groups[1] = append(groups[1], p)
		}
	}
	return slices.DeleteFunc(groups, func(g []string) bool { return len(g) == 0 })
}

func newFieldView(f Field) fieldView {
	v := fieldView{Name: f.Name, Doc: wrap(f.Doc, docWidth-1)}
	switch f.Kind {
	case KindString, KindLong, KindDouble, KindBoolean, KindTimestamp:
		v.Param = scalarTypes[f.Kind]
		v.GoType = "*" + v.Param
		v.Assign = "s." + f.Name + " = &v"
	case KindEnum:
		v.Param, v.GoType = f.Ref, f.Ref
		v.Assign = "s." + f.Name + " = v"
	case KindStructure:
		v.Param, v.GoType = "*"+f.Ref, "*"+f.Ref
		v.Assign = "s." + f.Name + " = v"
	case KindList:
		elem := "string"
		if f.Member != KindString {
			elem = f.Ref
		}
		v.Param, v.GoType = "[]"+elem, "[]"+elem
		v.Assign = "s." + f.Name + " = slices.Clone(v)"
	case KindMap:
		v.Param, v.GoType = "map[string]string", "map[string]string"
		v.Assign = "s." + f.Name + " = maps.Clone(v)"
	}
	v.Walk = walkCall(f)
	return v
}

var scalarTypes = map[Kind]string{
	KindString:    "string",
	KindLong:      "int64",
	KindDouble:    "float64",
	KindBoolean:   "bool",
	KindTimestamp: "time.Time",
}

var scalarMethods = map[Kind]string{
	KindString:    "String",
	KindLong:      "Int64",
	KindDouble:    "Float64",
	KindBoolean:   "Bool",
	KindTimestamp: "Time",
}

// walkCall returns the Walker call that presents f.
func walkCall(f Field) string {
	name := strconv.Quote(f.Name)
	ref := "&s." + f.Name

	var call string
	switch f.Kind {
	case KindEnum:
		call = "w.Enum(" + name + ", shape.EnumOf(" + ref + ")"
	case KindStructure:
		call = "w.Struct(" + name + ", shape.StructOf(" + ref + ")"
	case KindList:
		switch f.Member {
		case KindEnum:
			call = "w.EnumList(" + name + ", shape.EnumsOf(" + ref + ")"
		case KindStructure:
			call = "w.StructList(" + name + ", shape.ListOf(" + ref + ")"
		default:
			call = "w.StringList(" + name + ", " + ref
		}
	case KindMap:
		call = "w.StringMap(" + name + ", " + ref
	default:
		call = "w." + scalarMethods[f.Kind] + "(" + name + ", " + ref
	}
	for _, opt := range fieldOptions(f) {
		call += ", " + opt
	}
	return call + ")"
}

// fieldOptions returns the shape options of f in a fixed order: markers
// first, then constraints.
func fieldOptions(f Field) []string {
	var opts []string
	if f.Required {
		opts = append(opts, "shape.Required")
	}
	if f.Sensitive {
		opts = append(opts, "shape.Sensitive")
	}
	if f.IdempotencyToken {
		opts = append(opts, "shape.IdempotencyToken")
	}
	if b := f.Length; b != nil {
		switch {
		case b.Min != nil && b.Max != nil:
			opts = append(opts, fmt.Sprintf("shape.Length(%d, %d)", int64(*b.Min), int64(*b.Max)))
		case b.Min != nil:
			opts = append(opts, fmt.Sprintf("shape.MinLength(%d)", int64(*b.Min)))
		case b.Max != nil:
			opts = append(opts, fmt.Sprintf("shape.MaxLength(%d)", int64(*b.Max)))
		}
	}
	if f.Pattern != "" {
		opts = append(opts, "shape.Pattern("+quoteRaw(f.Pattern)+")")
	}
	if b := f.Range; b != nil {
		opts = append(opts, rangeOption(f.Kind, b))
	}
	if b := f.Items; b != nil {
		lo, hi := int64(0), int64(-1)
		if b.Min != nil {
			lo = int64(*b.Min)
		}
		if b.Max != nil {
			hi = int64(*b.Max)
		}
		opts = append(opts, fmt.Sprintf("shape.Items(%d, %d)", lo, hi))
	}
	if ft, ok := Formats[f.Format]; ok {
		opts = append(opts, fmt.Sprintf("shape.Format(%q, %s)", f.Format, ft.Func))
	}
	return opts
}

func rangeOption(k Kind, b *Bounds) string {
	if k == KindDouble {
		num := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
		switch {
		case b.Min != nil && b.Max != nil:
			return "shape.FloatRange(" + num(*b.Min) + ", " + num(*b.Max) + ")"
		case b.Min != nil:
			return "shape.FloatMin(" + num(*b.Min) + ")"
		default:
			return "shape.FloatMax(" + num(*b.Max) + ")"
		}
	}
	switch {
	case b.Min != nil && b.Max != nil:
		return fmt.Sprintf("shape.Range(%d, %d)", int64(*b.Min), int64(*b.Max))
	case b.Min != nil:
		return fmt.Sprintf("shape.Min(%d)", int64(*b.Min))
	default:
		return fmt.Sprintf("shape.Max(%d)", int64(*b.Max))
	}
}

// quoteRaw returns s as a raw string literal when possible.
func quoteRaw(s string) string {
	if strings.Contains(s, "`") {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}

var templates = template.Must(template.New("").Funcs(template.FuncMap{"method": method}).Parse(heredoc.Doc(`
	{{define "prologue" -}}
	{{if .Header}}{{.Header}}

	{{end}}` + GeneratedMarker + `

	package {{.Package}}
	{{if .Imports}}
	import (
	{{- range $i, $group := .Imports}}{{if $i}}
	{{end}}
	{{- range $group}}
		"{{.}}"
	{{- end}}
	{{- end}}
	)
	{{end}}
	{{- end}}

	{{define "enums" -}}
	{{template "prologue" .}}
	{{- range .Enums}}
	{{range .Doc}}// {{.}}
	{{end}}type {{.Name}} string

	// Enum values for {{.Name}}.
	const (
	{{- $enum := .Name}}
	{{- range .Consts}}
		{{.Name}} {{$enum}} = {{.Value}}
	{{- end}}
	)

	// Values returns the values of {{.Name}} known to this client. The service
	// may return others.
	func ({{.Name}}) Values() []{{.Name}} {
		return []{{.Name}}{
	{{- range .Consts}}
			{{.Name}},
	{{- end}}
		}
	}
	{{end}}
	{{- end}}

	{{define "shapes" -}}
	{{template "prologue" .}}
	{{- range .Shapes}}
	{{range .Doc}}// {{.}}
	{{end}}type {{.Name}} struct {
	{{- range $i, $f := .Fields}}
	{{- if and $i $f.Doc}}
	{{end}}
	{{- range $f.Doc}}
		// {{.}}
	{{- end}}
		{{$f.Name}} {{$f.GoType}}
	{{- end}}
	}
	{{$s := .Name}}
	{{- range .Fields}}
	{{method (printf "func (s *%s) With%s(v %s) *%s" $s .Name .Param $s) .Assign "return s"}}
	{{- end}}

	// TypeName returns "{{.Name}}".
	{{method (printf "func (s *%s) TypeName() string" .Name) (printf "return %q" .Name)}}

	// Walk presents the fields of {{.Name}} to w in declared order.
	func (s *{{.Name}}) Walk(w shape.Walker) {
	{{- range .Fields}}
		{{.Walk}}
	{{- end}}
	}

	{{method (printf "func (s *%[1]s) String() string" .Name) "return shape.Render(s)"}}
	{{method (printf "func (s *%[1]s) Redacted() string" .Name) "return shape.RenderRedacted(s)"}}
	{{method (printf "func (s *%[1]s) IsZero() bool" .Name) "return shape.IsZero(s)"}}
	{{method (printf "func (s *%[1]s) Hash() uint64" .Name) "return shape.Hash(s)"}}
	{{method (printf "func (s *%[1]s) Validate() error" .Name) "return shape.Validate(s)"}}
	{{method (printf "func (s *%[1]s) Equal(o *%[1]s) bool" .Name) "return shape.Equal(s, o)"}}
	{{method (printf "func (s *%[1]s) Clone() *%[1]s" .Name) "return shape.Clone(s)"}}
	{{method (printf "func (s *%[1]s) MarshalJSON() ([]byte, error)" .Name) "return shape.MarshalJSON(s)"}}
	{{method (printf "func (s *%[1]s) UnmarshalJSON(b []byte) error" .Name) "return shape.UnmarshalJSON(b, s)"}}
	{{method (printf "func (s *%[1]s) MarshalYAML() (any, error)" .Name) "return shape.MarshalYAML(s)"}}
	{{method (printf "func (s *%[1]s) UnmarshalYAML(n *yaml.Node) error" .Name) "return shape.UnmarshalYAML(n, s)"}}
	{{end}}
	var (
	{{- range .Shapes}}
		_ model.Model = (*{{.Name}})(nil)
		_ model.Hashable = (*{{.Name}})(nil)
		_ shape.Shape = (*{{.Name}})(nil)
	{{- end}}
	)
	{{- end}}

	{{define "operations" -}}
	{{template "prologue" .}}
	var operationTable = []*Operation{
	{{- range .Operations}}
		{
			Name: "{{.Name}}",
			Target: "{{.Target}}",
			NewInput: func() Shape { return new({{.Input}}) },
			NewOutput: func() Shape { return new({{.Output}}) },
		},
	{{- end}}
	}
	{{- end}}
`)))

// method returns a function declaration with the given body statements,
// on one line when it fits methodWidth.
func method(header string, stmts ...string) string {
	if line := header + " { " + strings.Join(stmts, "; ") + " }"; len(line) <= methodWidth {
		return line
	}
	return header + " {\n\t" + strings.Join(stmts, "\n\t") + "\n}"
}

func render(name string, v *fileView) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, v); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}
