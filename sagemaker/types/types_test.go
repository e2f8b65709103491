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

package types_test

import (
	"testing"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxsage/dxcore/model"
	"dirpx.dev/dxsage/dxcore/model/shape"
	"dirpx.dev/dxsage/sagemaker/types"
)

var epoch2024 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func summary() *types.TrainingJobSummary {
	return new(types.TrainingJobSummary).
		WithTrainingJobName("my-job").
		WithTrainingJobStatus(types.TrainingJobStatusInProgress).
		WithCreationTime(epoch2024)
}

func TestTrainingJobSummary_WorkedExample(t *testing.T) {
	s := summary()

	assert.Equal(t, "{TrainingJobName: my-job,CreationTime: 2024-01-01T00:00:00Z,TrainingJobStatus: InProgress}", s.String())

	require.Error(t, s.Validate(), "TrainingJobArn is required")

	data, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"TrainingJobName":"my-job","CreationTime":1704067200,"TrainingJobStatus":"InProgress"}`, string(data))

	var back types.TrainingJobSummary
	require.NoError(t, back.UnmarshalJSON(data))
	assert.True(t, back.Equal(s))
	assert.Equal(t, s.Hash(), back.Hash())
}

func TestTrainingJobSummary_YAML(t *testing.T) {
	doc, err := yaml.Marshal(summary())
	require.NoError(t, err)
	want := heredoc.Doc(`
		TrainingJobName: my-job
		CreationTime: "2024-01-01T00:00:00Z"
		TrainingJobStatus: InProgress
	`)
	assert.Equal(t, want, string(doc))

	var back *types.TrainingJobSummary
	require.NoError(t, yaml.Unmarshal(doc, &back))
	assert.True(t, back.Equal(summary()), "got %s", back)
}

func TestVpcConfig_AbsentVersusEmpty(t *testing.T) {
	absent := new(types.VpcConfig)
	empty := new(types.VpcConfig).WithSubnets([]string{})

	assert.False(t, absent.Equal(empty))
	assert.True(t, absent.IsZero())
	assert.False(t, empty.IsZero())

	data, err := absent.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	data, err = empty.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"Subnets":[]}`, string(data))

	var back types.VpcConfig
	require.NoError(t, back.UnmarshalJSON(data))
	require.NotNil(t, back.Subnets)
	assert.Empty(t, back.Subnets)
	assert.Nil(t, back.SecurityGroupIds)
}

func TestChannel_FluentChainEquivalence(t *testing.T) {
	ds := new(types.DataSource).WithS3DataSource(
		new(types.S3DataSource).
			WithS3DataType(types.S3DataTypeS3Prefix).
			WithS3Uri("s3://bucket/train/"),
	)

	chained := new(types.Channel).
		WithChannelName("train").
		WithDataSource(ds).
		WithCompressionType(types.CompressionTypeGzip).
		WithInputMode(types.TrainingInputModeFile)

	var assigned types.Channel
	assigned.ChannelName = model.ToPtr("train")
	assigned.DataSource = ds
	assigned.CompressionType = types.CompressionTypeGzip
	assigned.InputMode = types.TrainingInputModeFile

	assert.True(t, chained.Equal(&assigned))
	assert.Equal(t, chained.Hash(), assigned.Hash())
	assert.Equal(t, chained.String(), assigned.String())
	assert.NoError(t, chained.Validate())
}

func TestChannel_CloneOwnsNestedValues(t *testing.T) {
	orig := new(types.Channel).
		WithChannelName("train").
		WithDataSource(new(types.DataSource).WithS3DataSource(
			new(types.S3DataSource).WithS3Uri("s3://bucket/a").WithAttributeNames([]string{"a", "b"}),
		))

	c := orig.Clone()
	require.True(t, c.Equal(orig))

	*c.DataSource.S3DataSource.S3Uri = "s3://bucket/b"
	c.DataSource.S3DataSource.AttributeNames[0] = "z"

	assert.Equal(t, "s3://bucket/a", *orig.DataSource.S3DataSource.S3Uri)
	assert.Equal(t, []string{"a", "b"}, orig.DataSource.S3DataSource.AttributeNames)
	assert.False(t, c.Equal(orig))
}

func TestEnums(t *testing.T) {
	tests := []struct {
		name  string
		got   []string
		want  []string
		known string
	}{
		{
			name:  "TrainingJobStatus",
			got:   strs(types.TrainingJobStatus("").Values()),
			want:  []string{"InProgress", "Completed", "Failed", "Stopping", "Stopped"},
			known: "Stopping",
		},
		{
			name:  "CompressionType",
			got:   strs(types.CompressionType("").Values()),
			want:  []string{"None", "Gzip"},
			known: "Gzip",
		},
		{
			name:  "DirectInternetAccess",
			got:   strs(types.DirectInternetAccess("").Values()),
			want:  []string{"Enabled", "Disabled"},
			known: "Disabled",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("Values() mismatch (-want +got):\n%s", diff)
			}
			assert.Contains(t, tt.got, tt.known)
		})
	}
}

func strs[E ~string](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func TestParseEnum(t *testing.T) {
	got, err := shape.ParseEnum[types.TrainingJobStatus]("Completed")
	require.NoError(t, err)
	assert.Equal(t, types.TrainingJobStatusCompleted, got)

	_, err = shape.ParseEnum[types.TrainingJobStatus]("Paused")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Paused")

	assert.True(t, shape.Known(types.S3DataTypeManifestFile))
	assert.False(t, shape.Known(types.S3DataType("Glacier")))
}

func TestTag_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tag     *types.Tag
		wantErr string
	}{
		{name: "valid", tag: new(types.Tag).WithKey("team").WithValue("ml-platform")},
		{name: "unicode", tag: new(types.Tag).WithKey("équipe").WithValue("日本")},
		{name: "empty value", tag: new(types.Tag).WithKey("team").WithValue("")},
		{
			name:    "missing value",
			tag:     new(types.Tag).WithKey("team"),
			wantErr: "dxsage: invalid Tag.Value: must be set (required)",
		},
		{
			name:    "bad key",
			tag:     new(types.Tag).WithKey("team#1").WithValue("x"),
			wantErr: "dxsage: invalid Tag.Key: must match",
		},
		{
			name:    "empty key",
			tag:     new(types.Tag).WithKey("").WithValue("x"),
			wantErr: "length 0 is below minimum 1 (length)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tag.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
