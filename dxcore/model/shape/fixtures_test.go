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
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dxsage/dxcore/model/shape"
)

type jobStatus string

const (
	jobStatusPending    jobStatus = "Pending"
	jobStatusInProgress jobStatus = "InProgress"
	jobStatusCompleted  jobStatus = "Completed"
	jobStatusFailed     jobStatus = "Failed"
	jobStatusDeleting   jobStatus = "Deleting"
)

func (jobStatus) Values() []jobStatus {
	return []jobStatus{
		jobStatusPending,
		jobStatusInProgress,
		jobStatusCompleted,
		jobStatusFailed,
		jobStatusDeleting,
	}
}

// jobSummary mirrors a generated summary shape.
type jobSummary struct {
	Name          *string
	Status        jobStatus
	CreationTime  *time.Time
	FailureReason *string
}

func (s *jobSummary) TypeName() string { return "JobSummary" }

func (s *jobSummary) Walk(w shape.Walker) {
	w.String("Name", &s.Name, shape.Required, shape.Length(1, 63), shape.Pattern(`^[a-zA-Z0-9](-*[a-zA-Z0-9])*$`))
	w.Enum("Status", shape.EnumOf(&s.Status), shape.Required)
	w.Time("CreationTime", &s.CreationTime, shape.Required)
	w.String("FailureReason", &s.FailureReason, shape.MaxLength(1024))
}

func (s *jobSummary) String() string                   { return shape.Render(s) }
func (s *jobSummary) Equal(o *jobSummary) bool         { return shape.Equal(s, o) }
func (s *jobSummary) MarshalJSON() ([]byte, error)     { return shape.MarshalJSON(s) }
func (s *jobSummary) UnmarshalJSON(b []byte) error     { return shape.UnmarshalJSON(b, s) }
func (s *jobSummary) MarshalYAML() (any, error)        { return shape.MarshalYAML(s) }
func (s *jobSummary) UnmarshalYAML(n *yaml.Node) error { return shape.UnmarshalYAML(n, s) }

type resources struct {
	InstanceCount  *int64
	VolumeSizeInGB *int64
	Weight         *float64
}

func (s *resources) TypeName() string { return "Resources" }

func (s *resources) Walk(w shape.Walker) {
	w.Int64("InstanceCount", &s.InstanceCount, shape.Required, shape.Min(1))
	w.Int64("VolumeSizeInGB", &s.VolumeSizeInGB, shape.Range(5, 16384))
	w.Float64("Weight", &s.Weight, shape.FloatMin(0))
}

type channel struct {
	Name   *string
	Status jobStatus
}

func (s *channel) TypeName() string { return "Channel" }

func (s *channel) Walk(w shape.Walker) {
	w.String("Name", &s.Name, shape.Required, shape.Length(1, 64))
	w.Enum("Status", shape.EnumOf(&s.Status))
}

// request exercises every field kind.
type request struct {
	Name      *string
	Token     *string
	Secret    *string
	RoleArn   *string
	Count     *int64
	Ratio     *float64
	Enabled   *bool
	Started   *time.Time
	Status    jobStatus
	History   []jobStatus
	Subnets   []string
	Params    map[string]string
	Resources *resources
	Channels  []channel
}

func (s *request) TypeName() string { return "Request" }

func (s *request) Walk(w shape.Walker) {
	w.String("Name", &s.Name, shape.Required, shape.Length(1, 63), shape.Pattern(`^[a-zA-Z0-9](-*[a-zA-Z0-9])*`))
	w.String("Token", &s.Token, shape.IdempotencyToken, shape.Length(32, 128))
	w.String("Secret", &s.Secret, shape.Sensitive, shape.MaxLength(8))
	w.String("RoleArn", &s.RoleArn, shape.Format("arn", checkARN))
	w.Int64("Count", &s.Count, shape.Range(0, 100))
	w.Float64("Ratio", &s.Ratio, shape.FloatRange(0, 1))
	w.Bool("Enabled", &s.Enabled)
	w.Time("Started", &s.Started)
	w.Enum("Status", shape.EnumOf(&s.Status))
	w.EnumList("History", shape.EnumsOf(&s.History), shape.Items(0, 3))
	w.StringList("Subnets", &s.Subnets, shape.Items(1, 16), shape.MaxLength(32), shape.Pattern(`[-0-9a-zA-Z]+`))
	w.StringMap("Params", &s.Params, shape.Items(0, 100), shape.MaxLength(2500), shape.Pattern(`.*`))
	w.Struct("Resources", shape.StructOf(&s.Resources), shape.Required)
	w.StructList("Channels", shape.ListOf(&s.Channels), shape.Items(0, 20))
}

func checkARN(s string) error {
	if !strings.HasPrefix(s, "arn:") {
		return fmt.Errorf("must start with %q", "arn:")
	}
	return nil
}

func (s *request) WithName(v string) *request              { s.Name = &v; return s }
func (s *request) WithToken(v string) *request             { s.Token = &v; return s }
func (s *request) WithSecret(v string) *request            { s.Secret = &v; return s }
func (s *request) WithCount(v int64) *request              { s.Count = &v; return s }
func (s *request) WithEnabled(v bool) *request             { s.Enabled = &v; return s }
func (s *request) WithStarted(v time.Time) *request        { s.Started = &v; return s }
func (s *request) WithStatus(v jobStatus) *request         { s.Status = v; return s }
func (s *request) WithSubnets(v []string) *request         { s.Subnets = slices.Clone(v); return s }
func (s *request) WithParams(v map[string]string) *request { s.Params = maps.Clone(v); return s }
func (s *request) WithResources(v *resources) *request     { s.Resources = v; return s }
func (s *request) WithChannels(v []channel) *request       { s.Channels = slices.Clone(v); return s }

func (s *request) String() string                   { return shape.Render(s) }
func (s *request) Equal(o *request) bool            { return shape.Equal(s, o) }
func (s *request) Clone() *request                  { return shape.Clone(s) }
func (s *request) MarshalJSON() ([]byte, error)     { return shape.MarshalJSON(s) }
func (s *request) UnmarshalJSON(b []byte) error     { return shape.UnmarshalJSON(b, s) }
func (s *request) MarshalYAML() (any, error)        { return shape.MarshalYAML(s) }
func (s *request) UnmarshalYAML(n *yaml.Node) error { return shape.UnmarshalYAML(n, s) }

func ptr[T any](v T) *T { return &v }

var (
	_ shape.Shape = (*jobSummary)(nil)
	_ shape.Shape = (*request)(nil)
)
