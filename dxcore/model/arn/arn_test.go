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

package arn

import (
	stderrors "errors"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxsage/dxcore/errors"
)

const roleARN = "arn:aws:iam::123456789012:role/SageMakerRole"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ARN
		wantErr bool
	}{
		{
			name:  "iam role",
			input: roleARN,
			want:  ARN{Partition: "aws", Service: "iam", AccountID: "123456789012", Resource: "role/SageMakerRole"},
		},
		{
			name:  "training job",
			input: "arn:aws:sagemaker:us-east-1:123456789012:training-job/my-job",
			want: ARN{
				Partition: "aws", Service: "sagemaker", Region: "us-east-1",
				AccountID: "123456789012", Resource: "training-job/my-job",
			},
		},
		{
			name:  "resource keeps colons",
			input: "arn:aws-cn:sagemaker:cn-north-1:123456789012:notebook-instance/nb:1",
			want: ARN{
				Partition: "aws-cn", Service: "sagemaker", Region: "cn-north-1",
				AccountID: "123456789012", Resource: "notebook-instance/nb:1",
			},
		},
		{
			name:  "s3 bucket without region or account",
			input: "arn:aws:s3:::my-bucket/prefix",
			want:  ARN{Partition: "aws", Service: "s3", Resource: "my-bucket/prefix"},
		},
		{name: "empty", input: "", wantErr: true},
		{name: "too few sections", input: "arn:aws:iam::123456789012", wantErr: true},
		{name: "wrong prefix", input: "urn:aws:iam::123456789012:role/x", wantErr: true},
		{name: "bad partition", input: "arn:gcp:iam::123456789012:role/x", wantErr: true},
		{name: "bad service", input: "arn:aws:IAM::123456789012:role/x", wantErr: true},
		{name: "bad region", input: "arn:aws:sagemaker:useast1:123456789012:training-job/x", wantErr: true},
		{name: "short account", input: "arn:aws:iam::1234:role/x", wantErr: true},
		{name: "empty resource", input: "arn:aws:iam::123456789012:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

func TestParse_ErrorTypes(t *testing.T) {
	_, err := Parse("not-an-arn")
	var pe *errors.ParseError
	require.True(t, stderrors.As(err, &pe))
	require.Equal(t, "ARN", pe.Type)

	_, err = Parse("arn:aws:iam::1234:role/x")
	var ve *errors.ValidationError
	require.True(t, stderrors.As(err, &ve))
	require.Equal(t, "AccountID", ve.Field)
	require.Equal(t, "arn", ve.Rule)
}

func TestValidateString(t *testing.T) {
	require.NoError(t, ValidateString(roleARN))
	require.Error(t, ValidateString("role/SageMakerRole"))
}

func TestARN_Resource(t *testing.T) {
	tests := []struct {
		resource string
		typ      string
		name     string
	}{
		{"training-job/my-job", "training-job", "my-job"},
		{"role/service-role/Exec", "role", "service-role/Exec"},
		{"function:my-fn", "function", "my-fn"},
		{"my-bucket", "", "my-bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			a := ARN{Resource: tt.resource}
			require.Equal(t, tt.typ, a.ResourceType())
			require.Equal(t, tt.name, a.ResourceName())
		})
	}
}

func TestARN_Redacted(t *testing.T) {
	a := MustParse(roleARN)
	require.Equal(t, "arn:aws:iam::********9012:role/SageMakerRole", a.Redacted())
	require.Equal(t, roleARN, a.String())
	require.Equal(t, "", ARN{}.Redacted())
}

func TestARN_Zero(t *testing.T) {
	var a ARN
	require.True(t, a.IsZero())
	require.NoError(t, a.Validate())
	require.Equal(t, "", a.String())
	require.Equal(t, "ARN", a.TypeName())
	require.False(t, MustParse(roleARN).IsZero())
}

func TestARN_Equal(t *testing.T) {
	a := MustParse(roleARN)
	require.True(t, a.Equal(MustParse(roleARN)))
	require.False(t, a.Equal(MustParse("arn:aws:iam::123456789012:role/Other")))
}

func TestARN_JSON(t *testing.T) {
	type doc struct {
		Role ARN `json:"role"`
	}

	data, err := json.Marshal(doc{Role: MustParse(roleARN)})
	require.NoError(t, err)
	require.Equal(t, `{"role":"`+roleARN+`"}`, string(data))

	var got doc
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, MustParse(roleARN), got.Role)

	require.NoError(t, json.Unmarshal([]byte(`{"role":""}`), &got))
	require.True(t, got.Role.IsZero())

	var a ARN
	err = a.UnmarshalJSON([]byte(`"arn:aws"`))
	var ue *errors.UnmarshalError
	require.True(t, stderrors.As(err, &ue))
	require.Error(t, a.UnmarshalJSON([]byte(`42`)))

	_, err = ARN{Partition: "x", Service: "s", Resource: "r"}.MarshalJSON()
	require.Error(t, err)
}

func TestARN_YAML(t *testing.T) {
	type doc struct {
		Role ARN `yaml:"role"`
	}

	data, err := yaml.Marshal(doc{Role: MustParse(roleARN)})
	require.NoError(t, err)
	require.Contains(t, string(data), roleARN)

	var got doc
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Equal(t, MustParse(roleARN), got.Role)

	require.Error(t, yaml.Unmarshal([]byte("role: nope\n"), &got))
}

func TestMustParse_Panics(t *testing.T) {
	require.Panics(t, func() { MustParse("nope") })
}
