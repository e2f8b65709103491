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
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"regexp"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func generateJobs(t *testing.T, header string) map[string]string {
	t.Helper()
	doc, err := Load("testdata/jobs.yaml")
	require.NoError(t, err)

	files, err := (&Generator{Header: header}).Generate(doc)
	require.NoError(t, err)

	out := map[string]string{}
	var names []string
	for _, f := range files {
		names = append(names, f.Name)
		out[f.Name] = string(f.Content)
	}
	want := []string{"api_op_ListJobs.go", "api_op_StartJob.go", "api_operations.go", "enums.go", "types.go"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("file names mismatch (-want +got):\n%s", diff)
	}
	return out
}

func TestMethod_LayoutIsStableUnderFormat(t *testing.T) {
	// "func (s *T) " + name + "() int { return 0 }" is 31 columns plus the name.
	tests := []struct {
		name    string
		width   int
		oneLine bool
	}{
		{"short", 40, true},
		{"at width", methodWidth, true},
		{"one over width", methodWidth + 1, false},
		{"at gofmt limit", 100, false},
		{"long", 140, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := "M" + strings.Repeat("x", tt.width-32)
			decl := method("func (s *T) "+name+"() int", "return 0")
			require.Equal(t, tt.oneLine, !strings.Contains(decl, "\n"))
			if tt.oneLine {
				require.Len(t, decl, tt.width)
			}

			src := "package p\n\ntype T struct{}\n\n" + decl + "\n"
			formatted, err := format.Source([]byte(src))
			require.NoError(t, err)
			require.Equal(t, src, string(formatted))
		})
	}
}

func TestGenerate_ParsesAsGo(t *testing.T) {
	for name, src := range generateJobs(t, "") {
		t.Run(name, func(t *testing.T) {
			f, err := parser.ParseFile(token.NewFileSet(), name, src, parser.ParseComments)
			require.NoError(t, err)
			require.True(t, ast.IsGenerated(f), "missing generated marker")
			require.Equal(t, "jobs", f.Name.Name)
		})
	}
}

func TestGenerate_Header(t *testing.T) {
	header := "/*\n   Copyright 2025 The DIRPX Authors\n*/\n"
	for name, src := range generateJobs(t, header) {
		require.Regexp(t, `^/\*\n   Copyright 2025 The DIRPX Authors\n\*/\n\n`+regexp.QuoteMeta(GeneratedMarker)+"\n\npackage jobs\n", src, name)
	}
}

func TestGenerate_Content(t *testing.T) {
	files := generateJobs(t, "")

	tests := []struct {
		file string
		want []string
	}{
		{
			file: "enums.go",
			want: []string{
				"// JobStatus is the state of a job.\ntype JobStatus string\n",
				"// InstanceType is an enumeration of string values.\ntype InstanceType string\n",
				`InstanceTypeMlP32xlarge InstanceType = "ml.p3.2xlarge"`,
				"func (JobStatus) Values() []JobStatus {",
			},
		},
		{
			file: "types.go",
			want: []string{
				"\"time\"\n\n\t\"gopkg.in/yaml.v3\"\n\n\t\"dirpx.dev/dxsage/dxcore/model\"\n\t\"dirpx.dev/dxsage/dxcore/model/shape\"\n",
				"// Resources describes the compute of a job.\ntype Resources struct {",
				"// Job is a structure of the service model.\ntype Job struct {",
				`w.Enum("InstanceType", shape.EnumOf(&s.InstanceType), shape.Required)`,
				`w.Int64("InstanceCount", &s.InstanceCount, shape.Required, shape.Min(1))`,
				`w.Int64("VolumeSizeInGB", &s.VolumeSizeInGB, shape.Range(5, 16384))`,
				`w.Float64("Weight", &s.Weight, shape.FloatRange(0, 1.5))`,
				"w.String(\"Name\", &s.Name, shape.Required, shape.Length(1, 63), shape.Pattern(`^[a-zA-Z0-9](-*[a-zA-Z0-9])*`))",
				`w.Time("Started", &s.Started)`,
				`w.Struct("Resources", shape.StructOf(&s.Resources))`,
				`// TypeName returns "Job".`,
			},
		},
		{
			file: "api_op_StartJob.go",
			want: []string{
				`"example.com/common"`,
				`"dirpx.dev/dxsage/dxcore/model/arn"`,
				"// StartJobInput is the request of the StartJob operation.",
				"// StartJobOutput is the response of the StartJob operation.",
				`w.String("RoleArn", &s.RoleArn, shape.Length(20, 2048), shape.Format("arn", arn.ValidateString))`,
				`w.String("Token", &s.Token, shape.IdempotencyToken, shape.Length(32, 128))`,
				`w.String("Secret", &s.Secret, shape.Sensitive)`,
				"w.StringList(\"Subnets\", &s.Subnets, shape.Pattern(`[-0-9a-zA-Z]+`), shape.Items(0, 16))",
				`w.StructList("Owners", shape.ListOf(&s.Owners))`,
				`w.StringMap("Params", &s.Params, shape.MaxLength(2500), shape.Items(0, 100))`,
				`w.Struct("Job", shape.StructOf(&s.Job), shape.Required)`,
				`w.EnumList("History", shape.EnumsOf(&s.History))`,
				"s.Subnets = slices.Clone(v)",
				"s.Params = maps.Clone(v)",
			},
		},
		{
			file: "api_op_ListJobs.go",
			want: []string{
				"type ListJobsInput struct {\n}",
				`w.StructList("Jobs", shape.ListOf(&s.Jobs), shape.Required)`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			src := files[tt.file]
			for _, want := range tt.want {
				require.Contains(t, src, want)
			}
		})
	}

	require.NotContains(t, files["types.go"], `"slices"`)
	require.Regexp(t, `\t// The name of the job\.\n\tName\s+\*string\n`, files["types.go"])
	require.Regexp(t, `WithStarted\(v time\.Time\) \*Job\s+\{ s\.Started = &v; return s \}`, files["types.go"])
	require.Regexp(t, `WithResources\(v \*Resources\) \*Job\s+\{ s\.Resources = v; return s \}`, files["types.go"])
	require.Regexp(t, `_ shape\.Shape\s+= \(\*Job\)\(nil\)`, files["types.go"])
	require.Regexp(t, `Owners\s+\[\]common\.Owner\n`, files["api_op_StartJob.go"])
	require.Regexp(t, `Params\s+map\[string\]string\n`, files["api_op_StartJob.go"])
	require.Regexp(t, `(?s)Name:\s+"ListJobs",\s+Target:\s+"Jobs\.ListJobs",.*Name:\s+"StartJob",\s+Target:\s+"Jobs\.StartJob"`,
		files["api_operations.go"])
	require.Contains(t, files["api_operations.go"], "func() Shape { return new(StartJobOutput) }")
}

func TestGenerate_Golden(t *testing.T) {
	doc := &Document{
		Package: "colors",
		Enums: []Enum{
			{Name: "Color", Values: []string{"red", "dark-blue"}},
		},
	}

	files, err := (&Generator{}).Generate(doc)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "enums.go", files[0].Name)

	want := heredoc.Doc(`
		// Code generated by shapegen. DO NOT EDIT.

		package colors

		// Color is an enumeration of string values.
		type Color string

		// Enum values for Color.
		const (
			ColorRed      Color = "red"
			ColorDarkBlue Color = "dark-blue"
		)

		// Values returns the values of Color known to this client. The service
		// may return others.
		func (Color) Values() []Color {
			return []Color{
				ColorRed,
				ColorDarkBlue,
			}
		}
	`)
	if diff := cmp.Diff(want, string(files[0].Content)); diff != "" {
		t.Errorf("enums.go mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_Empty(t *testing.T) {
	files, err := (&Generator{}).Generate(&Document{Package: "empty"})
	require.NoError(t, err)
	require.Empty(t, files)
}
