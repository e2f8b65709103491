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
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dxsage/dxcore/model/semver"
)

func TestLoad(t *testing.T) {
	doc, err := Load("testdata/jobs.yaml")
	require.NoError(t, err)

	require.Equal(t, semver.Version{Major: 1}, doc.SchemaVersion)
	require.Equal(t, "jobs", doc.Package)
	require.Equal(t, "example.com/common", doc.Imports["common"])
	require.Len(t, doc.Enums, 2)
	require.Equal(t, []string{"ml.m5.large", "ml.p3.2xlarge"}, doc.Enums[1].Values)

	job, ok := doc.Lookup("Job")
	require.True(t, ok)
	require.Equal(t, ShapeStructure, job.Kind)
	name := job.Fields[0]
	require.Equal(t, KindString, name.Kind)
	require.True(t, name.Required)
	require.Equal(t, 1.0, *name.Length.Min)
	require.Equal(t, 63.0, *name.Length.Max)

	_, ok = doc.Lookup("Missing")
	require.False(t, ok)

	var structs []string
	for _, s := range doc.Structures() {
		structs = append(structs, s.Name)
	}
	require.Equal(t, []string{"Resources", "Job"}, structs)

	ops := doc.Operations()
	require.Len(t, ops, 2)
	require.Equal(t, "ListJobs", ops[0].Name)
	require.Equal(t, "ListJobsInput", ops[0].Input.Name)
	require.Equal(t, "StartJob", ops[1].Name)
	require.Equal(t, "StartJobOutput", ops[1].Output.Name)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	require.ErrorContains(t, err, "read schema")
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte(heredoc.Doc(`
		schemaVersion: 1.0.0
		package: jobs
		shapes:
		  - name: Tag
		    kind: structure
		    fields:
		      - {name: Key, kind: string, maxLength: 5}
	`)))
	require.ErrorContains(t, err, "decode schema")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
		rule  string
	}{
		{
			name:  "missing version",
			doc:   "package: jobs\n",
			field: "SchemaVersion",
			rule:  "required",
		},
		{
			name:  "newer major",
			doc:   "schemaVersion: 2.0.0\npackage: jobs\n",
			field: "SchemaVersion",
			rule:  "version",
		},
		{
			name:  "bad package",
			doc:   "schemaVersion: 1.0.0\npackage: Jobs\n",
			field: "Package",
			rule:  "identifier",
		},
		{
			name:  "bad import path",
			doc:   "schemaVersion: 1.0.0\npackage: jobs\nimports: {common: 'bad path'}\n",
			field: "Imports[common]",
			rule:  "import",
		},
		{
			name: "duplicate enum value",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				enums:
				  - {name: Status, values: [A, A]}
			`),
			field: "Enums[0].Values",
			rule:  "unique",
		},
		{
			name: "colliding constant names",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				enums:
				  - {name: Type, values: [ml.m5, ml-m5]}
			`),
			field: "Enums[0].Values",
			rule:  "unique",
		},
		{
			name: "unknown shape kind",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				shapes:
				  - {name: Tag, kind: union}
			`),
			field: "Shapes[Tag].Kind",
			rule:  "kind",
		},
		{
			name: "missing field kind",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				shapes:
				  - name: Tag
				    kind: structure
				    fields: [{name: Key}]
			`),
			field: "Shapes[Tag].Key.Kind",
			rule:  "kind",
		},
		{
			name: "unknown enum ref",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				shapes:
				  - name: Job
				    kind: structure
				    fields: [{name: Status, kind: enum, ref: Status}]
			`),
			field: "Shapes[Job].Status.Ref",
			rule:  "ref",
		},
		{
			name: "undeclared qualifier",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				shapes:
				  - name: Job
				    kind: structure
				    fields: [{name: Tags, kind: list, member: structure, ref: types.Tag}]
			`),
			field: "Shapes[Job].Tags.Ref",
			rule:  "ref",
		},
		{
			name: "structure ref to an input",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				targetPrefix: Jobs
				shapes:
				  - {name: RunInput, kind: input, operation: Run}
				  - {name: RunOutput, kind: output, operation: Run}
				  - name: Job
				    kind: structure
				    fields: [{name: Run, kind: structure, ref: RunInput}]
			`),
			field: "Shapes[Job].Run.Ref",
			rule:  "ref",
		},
		{
			name: "length on a long",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				shapes:
				  - name: Job
				    kind: structure
				    fields: [{name: Count, kind: long, length: {max: 3}}]
			`),
			field: "Shapes[Job].Count.Length",
			rule:  "constraint",
		},
		{
			name: "fractional long range",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				shapes:
				  - name: Job
				    kind: structure
				    fields: [{name: Count, kind: long, range: {min: 0.5}}]
			`),
			field: "Shapes[Job].Count.Range",
			rule:  "constraint",
		},
		{
			name: "inverted bounds",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				shapes:
				  - name: Job
				    kind: structure
				    fields: [{name: Name, kind: string, length: {min: 9, max: 3}}]
			`),
			field: "Shapes[Job].Name.Length",
			rule:  "constraint",
		},
		{
			name: "bad pattern",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				shapes:
				  - name: Job
				    kind: structure
				    fields: [{name: Name, kind: string, pattern: '(['}]
			`),
			field: "Shapes[Job].Name.Pattern",
			rule:  "pattern",
		},
		{
			name: "unknown format",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				shapes:
				  - name: Job
				    kind: structure
				    fields: [{name: Url, kind: string, format: uri}]
			`),
			field: "Shapes[Job].Url.Format",
			rule:  "format",
		},
		{
			name: "token on a long",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				shapes:
				  - name: Job
				    kind: structure
				    fields: [{name: Token, kind: long, idempotencyToken: true}]
			`),
			field: "Shapes[Job].Token.IdempotencyToken",
			rule:  "constraint",
		},
		{
			name: "duplicate field",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				shapes:
				  - name: Job
				    kind: structure
				    fields: [{name: Name, kind: string}, {name: Name, kind: string}]
			`),
			field: "Shapes[Job].Name",
			rule:  "unique",
		},
		{
			name: "operation without output",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				targetPrefix: Jobs
				shapes:
				  - {name: RunInput, kind: input, operation: Run}
			`),
			field: "Operations[Run]",
			rule:  "operation",
		},
		{
			name: "operations without target prefix",
			doc: heredoc.Doc(`
				schemaVersion: 1.0.0
				package: jobs
				shapes:
				  - {name: RunInput, kind: input, operation: Run}
				  - {name: RunOutput, kind: output, operation: Run}
			`),
			field: "TargetPrefix",
			rule:  "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			want := "Document." + tt.field + ":"
			require.True(t, strings.Contains(err.Error(), want), "error %q does not mention %s", err, want)
			require.Contains(t, err.Error(), "("+tt.rule+")")
		})
	}
}

func TestParse_ReportsEveryProblem(t *testing.T) {
	_, err := Parse([]byte(heredoc.Doc(`
		schemaVersion: 1.0.0
		package: jobs
		shapes:
		  - name: Job
		    kind: structure
		    fields:
		      - {name: Count, kind: long, length: {max: 3}}
		      - {name: Status, kind: enum}
	`)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Document.Shapes[Job].Count.Length")
	require.Contains(t, err.Error(), "Document.Shapes[Job].Status.Ref")
}

func TestEnumConstName(t *testing.T) {
	tests := []struct {
		enum  string
		value string
		want  string
	}{
		{"TrainingInstanceType", "ml.p3.2xlarge", "TrainingInstanceTypeMlP32xlarge"},
		{"SplitType", "RecordIO", "SplitTypeRecordIO"},
		{"S3DataDistribution", "FullyReplicated", "S3DataDistributionFullyReplicated"},
		{"DirectInternetAccess", "Enabled", "DirectInternetAccessEnabled"},
		{"SortBy", "creation-time", "SortByCreationTime"},
		{"NotebookInstanceAcceleratorType", "ml.eia1.medium", "NotebookInstanceAcceleratorTypeMlEia1Medium"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := EnumConstName(tt.enum, tt.value); got != tt.want {
				t.Errorf("EnumConstName(%q, %q) = %q, want %q", tt.enum, tt.value, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	got := wrap("The name of the training job. It must be unique within an account and region.\n\nSee also X.", 30)
	want := []string{
		"The name of the training job.",
		"It must be unique within an",
		"account and region.",
		"",
		"See also X.",
	}
	require.Equal(t, want, got)
	require.Nil(t, wrap("  ", 30))
}
