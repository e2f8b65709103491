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
	stderrors "errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxsage/dxcore/errors"
	"dirpx.dev/dxsage/dxcore/model/shape"
)

var epoch2024 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func workedExample() *jobSummary {
	return &jobSummary{
		Name:         ptr("my-job"),
		Status:       jobStatusInProgress,
		CreationTime: ptr(epoch2024),
	}
}

func TestRender_WorkedExample(t *testing.T) {
	got := workedExample().String()
	want := "{Name: my-job,Status: InProgress,CreationTime: 2024-01-01T00:00:00Z}"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestMarshalJSON_WorkedExample(t *testing.T) {
	data, err := workedExample().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"Name":"my-job","Status":"InProgress","CreationTime":1704067200}`, string(data))

	var members map[string]any
	require.NoError(t, json.Unmarshal(data, &members))
	want := map[string]any{
		"Name":         "my-job",
		"Status":       "InProgress",
		"CreationTime": float64(1704067200),
	}
	if diff := cmp.Diff(want, members); diff != "" {
		t.Errorf("encoded members mismatch (-want +got):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		in   *request
		want string
	}{
		{
			name: "empty",
			in:   &request{},
			want: "{}",
		},
		{
			name: "scalars",
			in: &request{
				Name:    ptr("a"),
				Count:   ptr(int64(3)),
				Ratio:   ptr(0.25),
				Enabled: ptr(false),
				Started: ptr(time.Date(2024, 1, 1, 1, 0, 0, 500, time.FixedZone("CET", 3600))),
			},
			want: "{Name: a,Count: 3,Ratio: 0.25,Enabled: false,Started: 2024-01-01T00:00:00.0000005Z}",
		},
		{
			name: "collections",
			in: &request{
				History: []jobStatus{jobStatusPending, "Paused"},
				Subnets: []string{},
				Params:  map[string]string{"lr": "0.1", "epochs": "10"},
			},
			want: "{History: [Pending, Paused],Subnets: [],Params: {epochs=10, lr=0.1}}",
		},
		{
			name: "nested",
			in: &request{
				Resources: &resources{InstanceCount: ptr(int64(2))},
				Channels:  []channel{{Name: ptr("train")}, {Name: ptr("test"), Status: jobStatusFailed}},
			},
			want: "{Resources: {InstanceCount: 2},Channels: [{Name: train}, {Name: test,Status: Failed}]}",
		},
		{
			name: "sensitive shown",
			in:   &request{Secret: ptr("hunter2")},
			want: "{Secret: hunter2}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shape.Render(tt.in); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderRedacted(t *testing.T) {
	in := &request{Name: ptr("a"), Secret: ptr("hunter2")}
	assert.Equal(t, "{Name: a,Secret: [REDACTED]}", shape.RenderRedacted(in))
	assert.NotContains(t, shape.RenderRedacted(in), "hunter2")
}

func TestAbsentVersusEmpty(t *testing.T) {
	unset := new(request).WithSubnets(nil)
	empty := new(request).WithSubnets([]string{})

	require.Nil(t, unset.Subnets)
	require.NotNil(t, empty.Subnets)

	assert.Equal(t, "{}", unset.String())
	assert.Equal(t, "{Subnets: []}", empty.String())
	assert.False(t, unset.Equal(empty))
	assert.False(t, empty.Equal(unset))

	unsetJSON, err := unset.MarshalJSON()
	require.NoError(t, err)
	emptyJSON, err := empty.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(unsetJSON))
	assert.Equal(t, `{"Subnets":[]}`, string(emptyJSON))

	var gotUnset, gotEmpty request
	require.NoError(t, gotUnset.UnmarshalJSON(unsetJSON))
	require.NoError(t, gotEmpty.UnmarshalJSON(emptyJSON))
	assert.Nil(t, gotUnset.Subnets)
	assert.NotNil(t, gotEmpty.Subnets)
	assert.Empty(t, gotEmpty.Subnets)

	clone := empty.Clone()
	assert.NotNil(t, clone.Subnets)
	assert.True(t, clone.Equal(empty))
}

func TestAbsentVersusEmpty_Maps(t *testing.T) {
	empty := new(request).WithParams(map[string]string{})
	data, err := empty.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"Params":{}}`, string(data))

	var got request
	require.NoError(t, got.UnmarshalJSON(data))
	assert.NotNil(t, got.Params)
	assert.True(t, got.Equal(empty))
	assert.False(t, got.Equal(&request{}))
}

func TestEnumPassThrough(t *testing.T) {
	in := []byte(`{"Name":"job","Status":"Paused","CreationTime":1704067200}`)

	var s jobSummary
	require.NoError(t, s.UnmarshalJSON(in))
	assert.Equal(t, jobStatus("Paused"), s.Status)
	assert.False(t, shape.Known(s.Status))

	out, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, string(in), string(out))

	assert.NoError(t, shape.Validate(&s))
	err = shape.Validate(&s, shape.StrictEnums())
	require.Error(t, err)
	verrs := errors.ValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "Status", verrs[0].Field)
	assert.Equal(t, "enum", verrs[0].Rule)
	assert.Equal(t, "Paused", verrs[0].Value)
}

func TestDecode_Strict(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"known values", `{"Name":"a","Status":"Failed"}`, ""},
		{"unknown enum", `{"Name":"a","Status":"Paused"}`, `field Status: unknown enum value "Paused"`},
		{"unknown member", `{"Name":"a","Color":"red"}`, "field Color: unknown member"},
		{"unknown nested enum", `{"Channels":[{"Name":"c","Status":"Paused"}]}`, `field Channels[0].Status: unknown enum value "Paused"`},
		{"unknown enum in list", `{"History":["Pending","Paused"]}`, `field History[1]: unknown enum value "Paused"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r request
			err := shape.Decode([]byte(tt.in), &r, shape.Strict)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			var ue *errors.UnmarshalError
			require.True(t, stderrors.As(err, &ue), "error %v is not an UnmarshalError", err)
			assert.Equal(t, "Request", ue.Type)
			assert.Equal(t, tt.wantErr, ue.Reason)

			// Lenient mode accepts the same payload.
			assert.NoError(t, shape.Decode([]byte(tt.in), &r, shape.Lenient))
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"not an object", `[1,2]`, ""},
		{"string as number", `{"Count":"3"}`, "field Count: expected 64-bit integer"},
		{"fractional integer", `{"Count":1.5}`, "field Count: expected 64-bit integer"},
		{"fractional exponent", `{"Count":15e-1}`, "field Count: expected 64-bit integer"},
		{"integer overflow", `{"Count":1e30}`, "field Count: expected 64-bit integer"},
		{"unknown float string", `{"Ratio":"Inf"}`, "field Ratio: expected number"},
		{"number as string", `{"Name":3}`, "field Name: expected string"},
		{"bad bool", `{"Enabled":"yes"}`, "field Enabled: expected boolean"},
		{"bad timestamp", `{"Started":"yesterday"}`, `field Started: invalid timestamp "yesterday"`},
		{"bool timestamp", `{"Started":true}`, "field Started: expected timestamp"},
		{"object as list", `{"Subnets":{"a":"b"}}`, "field Subnets: expected array of strings"},
		{"nested type error", `{"Resources":{"InstanceCount":"x"}}`, "field Resources.InstanceCount: expected 64-bit integer"},
		{"nested not object", `{"Resources":[]}`, "field Resources: expected object"},
		{"list element error", `{"Channels":[{"Name":"a"},{"Name":1}]}`, "field Channels[1].Name: expected string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r request
			err := r.UnmarshalJSON([]byte(tt.in))
			require.Error(t, err)
			var ue *errors.UnmarshalError
			require.True(t, stderrors.As(err, &ue))
			if tt.want != "" && !strings.HasPrefix(ue.Reason, tt.want) {
				t.Errorf("Reason = %q, want prefix %q", ue.Reason, tt.want)
			}
		})
	}
}

func TestDecode_IntegralNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{`1.0`, 1},
		{`1e2`, 100},
		{`1E+2`, 100},
		{`-2.50e1`, -25},
		{`0.0e5`, 0},
		{`-0`, 0},
		{`9223372036854775807`, math.MaxInt64},
		{`-9.223372036854775808e18`, math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var r request
			require.NoError(t, r.UnmarshalJSON([]byte(`{"Count":`+tt.in+`}`)))
			require.NotNil(t, r.Count)
			assert.Equal(t, tt.want, *r.Count)
		})
	}
}

func TestNonFiniteFloats_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		json string
	}{
		{"nan", math.NaN(), `{"Ratio":"NaN"}`},
		{"positive infinity", math.Inf(1), `{"Ratio":"Infinity"}`},
		{"negative infinity", math.Inf(-1), `{"Ratio":"-Infinity"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &request{Ratio: ptr(tt.in)}

			data, err := in.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.json, string(data))
			var fromJSON request
			require.NoError(t, fromJSON.UnmarshalJSON(data))
			assert.True(t, in.Equal(&fromJSON), "json: %s", &fromJSON)

			doc, err := yaml.Marshal(in)
			require.NoError(t, err)
			var fromYAML request
			require.NoError(t, yaml.Unmarshal(doc, &fromYAML))
			assert.True(t, in.Equal(&fromYAML), "yaml %q: %s", doc, &fromYAML)
		})
	}
}

func TestDecode_NullsAndOverwrite(t *testing.T) {
	r := (&request{}).WithName("old").WithCount(7).WithSubnets([]string{"a"})
	require.NoError(t, r.UnmarshalJSON([]byte(`{"Name":null,"Subnets":null,"Enabled":true,"Extra":1}`)))

	want := &request{Enabled: ptr(true)}
	assert.True(t, r.Equal(want), "got %s", r)

	var top request
	require.NoError(t, top.UnmarshalJSON([]byte(`null`)))
	assert.True(t, shape.IsZero(&top))
}

func TestDecode_Timestamps(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"integer epoch", `1704067200`, epoch2024},
		{"fractional epoch", `1704067200.5`, epoch2024.Add(500 * time.Millisecond)},
		{"exponent epoch", `1.7040672E9`, epoch2024},
		{"nanosecond epoch", `1704067200.000000001`, epoch2024.Add(time.Nanosecond)},
		{"negative epoch", `-0.5`, time.Unix(-1, 500_000_000)},
		{"rfc3339", `"2024-01-01T00:00:00Z"`, epoch2024},
		{"rfc3339 offset", `"2024-01-01T01:00:00+01:00"`, epoch2024},
		{"rfc3339 fraction", `"2024-01-01T00:00:00.123456789Z"`, epoch2024.Add(123456789)},
		{"no zone", `"2024-01-01T00:00:00"`, epoch2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s jobSummary
			require.NoError(t, s.UnmarshalJSON([]byte(`{"CreationTime":`+tt.in+`}`)))
			require.NotNil(t, s.CreationTime)
			if !s.CreationTime.Equal(tt.want) {
				t.Errorf("CreationTime = %v, want %v", s.CreationTime, tt.want)
			}
		})
	}
}

func TestFormatEpoch(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"whole seconds", epoch2024, "1704067200"},
		{"half second", epoch2024.Add(500 * time.Millisecond), "1704067200.5"},
		{"nanosecond", epoch2024.Add(time.Nanosecond), "1704067200.000000001"},
		{"epoch", time.Unix(0, 0), "0"},
		{"before epoch", time.Unix(-1, 500_000_000), "-0.5"},
		{"before epoch whole", time.Unix(-86400, 0), "-86400"},
		{"before epoch fraction", time.Unix(-2, 250_000_000), "-1.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shape.FormatEpoch(tt.in)
			if got != tt.want {
				t.Errorf("FormatEpoch() = %q, want %q", got, tt.want)
			}
			back, err := shape.ParseEpoch(got)
			require.NoError(t, err)
			if !back.Equal(tt.in) {
				t.Errorf("ParseEpoch(%q) = %v, want %v", got, back, tt.in)
			}
		})
	}
}

func TestParseEpoch_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1e999999999", "1.2.3", "1/0"} {
		t.Run(in, func(t *testing.T) {
			if _, err := shape.ParseEpoch(in); err == nil {
				t.Errorf("ParseEpoch(%q) error = nil, want error", in)
			}
		})
	}
}

func TestYAML_WorkedExample(t *testing.T) {
	data, err := yaml.Marshal(workedExample())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Name: my-job\n")
	assert.Contains(t, string(data), "Status: InProgress\n")
	assert.Contains(t, string(data), `CreationTime: "2024-01-01T00:00:00Z"`)
	assert.NotContains(t, string(data), "FailureReason")

	var back *jobSummary
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.True(t, back.Equal(workedExample()), "got %s", back)
}

func TestYAML_HandWritten(t *testing.T) {
	in := `
Name: train-1
Count: 4
Ratio: 0.5
Started: 2024-01-01T00:00:00Z
Subnets: []
Params:
  epochs: "10"
Resources:
  InstanceCount: 2
Channels:
  - Name: train
    Status: Completed
`
	var got request
	require.NoError(t, yaml.Unmarshal([]byte(in), &got))

	want := &request{
		Name:      ptr("train-1"),
		Count:     ptr(int64(4)),
		Ratio:     ptr(0.5),
		Started:   ptr(epoch2024),
		Subnets:   []string{},
		Params:    map[string]string{"epochs": "10"},
		Resources: &resources{InstanceCount: ptr(int64(2))},
		Channels:  []channel{{Name: ptr("train"), Status: jobStatusCompleted}},
	}
	assert.True(t, got.Equal(want), "got %s\nwant %s", &got, want)
}

func TestFluentChainEquivalence(t *testing.T) {
	started := epoch2024.Add(90 * time.Minute)

	var sequential request
	sequential.Name = ptr("job-1")
	sequential.Count = ptr(int64(12))
	sequential.Enabled = ptr(true)
	sequential.Started = &started
	sequential.Status = jobStatusCompleted
	sequential.Subnets = []string{"subnet-1", "subnet-2"}
	sequential.Params = map[string]string{"k": "v"}
	sequential.Resources = &resources{InstanceCount: ptr(int64(1))}
	sequential.Channels = []channel{{Name: ptr("train")}}

	chained := new(request).
		WithName("job-1").
		WithCount(12).
		WithEnabled(true).
		WithStarted(started).
		WithStatus(jobStatusCompleted).
		WithSubnets([]string{"subnet-1", "subnet-2"}).
		WithParams(map[string]string{"k": "v"}).
		WithResources(&resources{InstanceCount: ptr(int64(1))}).
		WithChannels([]channel{{Name: ptr("train")}})

	assert.True(t, chained.Equal(&sequential))
	assert.Equal(t, shape.Hash(&sequential), shape.Hash(chained))
	assert.Equal(t, sequential.String(), chained.String())
}

func TestFluentSetters_CopyCollections(t *testing.T) {
	subnets := []string{"a", "b"}
	r := new(request).WithSubnets(subnets)
	subnets[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, r.Subnets)
}

func TestEqual(t *testing.T) {
	base := func() *request {
		return &request{
			Name:      ptr("a"),
			Started:   ptr(epoch2024),
			Subnets:   []string{"x", "y"},
			Resources: &resources{InstanceCount: ptr(int64(1))},
		}
	}

	tests := []struct {
		name   string
		mutate func(r *request)
		want   bool
	}{
		{"identical", func(*request) {}, true},
		{"same instant other zone", func(r *request) { r.Started = ptr(epoch2024.In(time.FixedZone("X", 7200))) }, true},
		{"different name", func(r *request) { r.Name = ptr("b") }, false},
		{"unset name", func(r *request) { r.Name = nil }, false},
		{"empty name", func(r *request) { r.Name = ptr("") }, false},
		{"list order", func(r *request) { r.Subnets = []string{"y", "x"} }, false},
		{"nested field", func(r *request) { r.Resources.VolumeSizeInGB = ptr(int64(5)) }, false},
		{"nested unset", func(r *request) { r.Resources = nil }, false},
		{"nested empty", func(r *request) { r.Resources = &resources{} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := base(), base()
			tt.mutate(b)
			if got := a.Equal(b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := b.Equal(a); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
			if tt.want && shape.Hash(a) != shape.Hash(b) {
				t.Errorf("Hash() differs for equal values")
			}
		})
	}
}

func TestEqual_Nil(t *testing.T) {
	var a, b *request
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(&request{}))
	assert.False(t, (&request{}).Equal(nil))
	assert.False(t, shape.EqualShapes(&request{}, &jobSummary{}))
}

func TestHash(t *testing.T) {
	// Unset fields contribute 0 in declared order.
	assert.Equal(t, uint64(1)*31*31*31*31, shape.Hash(&jobSummary{}))

	a := &request{Params: map[string]string{"a": "1", "b": "2", "c": "3"}}
	b := &request{Params: map[string]string{"c": "3", "a": "1", "b": "2"}}
	assert.Equal(t, shape.Hash(a), shape.Hash(b))

	assert.Equal(t, shape.Hash(&request{Ratio: ptr(0.0)}), shape.Hash(&request{Ratio: ptr(math.Copysign(0, -1))}))
	assert.NotEqual(t, shape.Hash(&request{Name: ptr("a")}), shape.Hash(&request{Name: ptr("b")}))
}

func TestClone_Independent(t *testing.T) {
	orig := &request{
		Name:      ptr("a"),
		Subnets:   []string{"x"},
		Params:    map[string]string{"k": "v"},
		Resources: &resources{InstanceCount: ptr(int64(1))},
		Channels:  []channel{{Name: ptr("c")}},
	}
	clone := orig.Clone()
	require.True(t, clone.Equal(orig))

	*clone.Name = "b"
	clone.Subnets[0] = "y"
	clone.Params["k"] = "w"
	*clone.Resources.InstanceCount = 9
	*clone.Channels[0].Name = "d"

	assert.Equal(t, "a", *orig.Name)
	assert.Equal(t, []string{"x"}, orig.Subnets)
	assert.Equal(t, "v", orig.Params["k"])
	assert.Equal(t, int64(1), *orig.Resources.InstanceCount)
	assert.Equal(t, "c", *orig.Channels[0].Name)

	var nilReq *request
	assert.Nil(t, nilReq.Clone())
}

func TestIsZero(t *testing.T) {
	assert.True(t, shape.IsZero(&request{}))
	assert.False(t, shape.IsZero(&request{Subnets: []string{}}))
	assert.False(t, shape.IsZero(&request{Status: jobStatusPending}))
}

func TestFillIdempotencyTokens(t *testing.T) {
	r := &request{}
	shape.FillIdempotencyTokens(r)
	require.NotNil(t, r.Token)
	assert.Len(t, *r.Token, 36)
	assert.Nil(t, r.Name)

	first := *r.Token
	shape.FillIdempotencyTokens(r)
	assert.Equal(t, first, *r.Token)

	other := &request{}
	shape.FillIdempotencyTokens(other)
	assert.NotEqual(t, first, *other.Token)
}

func TestParseEnum(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    jobStatus
		wantErr bool
	}{
		{"known", "Completed", jobStatusCompleted, false},
		{"unknown", "Paused", "", true},
		{"case sensitive", "completed", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shape.ParseEnum[jobStatus](tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEnum() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEnum() = %q, want %q", got, tt.want)
			}
			if err != nil {
				var pe *errors.ParseError
				require.True(t, stderrors.As(err, &pe))
				assert.Equal(t, "jobStatus", pe.Type)
			}
		})
	}
}
