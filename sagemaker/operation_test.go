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

package sagemaker_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxsage/dxcore/errors"
	"dirpx.dev/dxsage/dxcore/model/shape"
	"dirpx.dev/dxsage/dxcore/model/shape/shapetest"
	"dirpx.dev/dxsage/sagemaker"
	"dirpx.dev/dxsage/sagemaker/types"
)

func TestOperations(t *testing.T) {
	ops := sagemaker.Operations()

	var names []string
	for _, op := range ops {
		names = append(names, op.Name)
	}
	want := []string{
		"AddTags",
		"CreateNotebookInstance",
		"CreatePresignedNotebookInstanceUrl",
		"CreateTrainingJob",
		"CreateTransformJob",
		"DescribeNotebookInstance",
		"DescribeTrainingJob",
		"DescribeTransformJob",
		"ListNotebookInstances",
		"ListTags",
		"ListTrainingJobs",
		"ListTransformJobs",
		"StartPipelineExecution",
		"StopNotebookInstance",
		"StopTrainingJob",
		"UpdateNotebookInstance",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Operations() mismatch (-want +got):\n%s", diff)
	}

	for _, op := range ops {
		t.Run(op.Name, func(t *testing.T) {
			assert.Equal(t, sagemaker.TargetPrefix+"."+op.Name, op.Target)
			assert.Equal(t, op.Name+"Input", op.NewInput().TypeName())
			assert.Equal(t, op.Name+"Output", op.NewOutput().TypeName())
			assert.True(t, op.NewInput().IsZero())

			got, ok := sagemaker.Lookup(op.Name)
			require.True(t, ok)
			assert.Same(t, op, got)
		})
	}
}

func TestOperations_ReturnsCopy(t *testing.T) {
	ops := sagemaker.Operations()
	ops[0] = nil
	assert.NotNil(t, sagemaker.Operations()[0])
}

func TestLookup_Unknown(t *testing.T) {
	for _, name := range []string{"", "DeleteTrainingJob", "describeTrainingJob", "SageMaker.DescribeTrainingJob"} {
		op, ok := sagemaker.Lookup(name)
		assert.False(t, ok, name)
		assert.Nil(t, op, name)
	}
}

const propertyRounds = 25

func TestOperationShapes_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(2017, 724))

	for _, op := range sagemaker.Operations() {
		sides := []struct {
			dir   string
			alloc func() sagemaker.Shape
		}{
			{"input", op.NewInput},
			{"output", op.NewOutput},
		}
		for _, side := range sides {
			alloc := side.alloc
			t.Run(op.Name+"/"+side.dir, func(t *testing.T) {
				for i := range propertyRounds {
					a := alloc()
					shapetest.Populate(a, r)

					b := alloc()
					shape.Copy(b, a)
					require.True(t, shape.EqualShapes(a, b), "round %d: copy differs", i)
					require.Equal(t, a.Hash(), b.Hash(), "round %d: hash differs", i)
					require.Equal(t, a.String(), b.String(), "round %d", i)

					data, err := a.MarshalJSON()
					require.NoError(t, err, "round %d", i)
					fromJSON := alloc()
					require.NoError(t, fromJSON.UnmarshalJSON(data), "round %d: %s", i, data)
					require.True(t, shape.EqualShapes(a, fromJSON), "round %d: JSON\n got %s\nwant %s", i, fromJSON, a)

					doc, err := yaml.Marshal(a)
					require.NoError(t, err, "round %d", i)
					fromYAML := alloc()
					require.NoError(t, yaml.Unmarshal(doc, fromYAML), "round %d: %s", i, doc)
					require.True(t, shape.EqualShapes(a, fromYAML), "round %d: YAML\n got %s\nwant %s", i, fromYAML, a)
				}
			})
		}
	}
}

func validNotebookInput() *sagemaker.CreateNotebookInstanceInput {
	return new(sagemaker.CreateNotebookInstanceInput).
		WithNotebookInstanceName("nb-1").
		WithInstanceType(types.InstanceTypeMlT2Medium).
		WithRoleArn("arn:aws:iam::123456789012:role/SageMakerRole")
}

func TestEncodeRequest(t *testing.T) {
	data, err := sagemaker.EncodeRequest(validNotebookInput())
	require.NoError(t, err)
	assert.Equal(t,
		`{"NotebookInstanceName":"nb-1","InstanceType":"ml.t2.medium","RoleArn":"arn:aws:iam::123456789012:role/SageMakerRole"}`,
		string(data))
}

func TestEncodeRequest_FillsIdempotencyToken(t *testing.T) {
	in := new(sagemaker.StartPipelineExecutionInput).WithPipelineName("nightly")

	_, err := sagemaker.EncodeRequest(in)
	require.NoError(t, err)
	require.NotNil(t, in.ClientRequestToken)
	assert.Len(t, *in.ClientRequestToken, 36)

	token := *in.ClientRequestToken
	data, err := sagemaker.EncodeRequest(in)
	require.NoError(t, err)
	assert.Equal(t, token, *in.ClientRequestToken, "a set token must be kept")
	assert.Contains(t, string(data), `"ClientRequestToken":"`+token+`"`)
}

func TestEncodeRequest_Invalid(t *testing.T) {
	in := validNotebookInput().
		WithRoleArn("role/SageMakerRole-without-prefix").
		WithVolumeSizeInGB(4).
		WithSecurityGroupIds([]string{"sg-1", "!!"})
	in.NotebookInstanceName = nil

	data, err := sagemaker.EncodeRequest(in)
	require.Error(t, err)
	assert.Nil(t, data)

	type violation struct{ Field, Rule string }
	var got []violation
	for _, ve := range errors.ValidationErrors(err) {
		assert.Equal(t, "CreateNotebookInstanceInput", ve.Type)
		got = append(got, violation{ve.Field, ve.Rule})
	}
	want := []violation{
		{"NotebookInstanceName", "required"},
		{"SecurityGroupIds[1]", "pattern"},
		{"RoleArn", "arn"},
		{"VolumeSizeInGB", "range"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("violations mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, err.Error(), "dxsage: invalid CreateNotebookInstanceInput.VolumeSizeInGB: 4 is below minimum 5 (range)")
}

func TestEncodeRequest_StrictEnums(t *testing.T) {
	in := validNotebookInput().WithInstanceType("ml.future.large")

	_, err := sagemaker.EncodeRequest(in)
	require.NoError(t, err)

	_, err = sagemaker.EncodeRequest(in, shape.StrictEnums())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `InstanceType: unknown value "ml.future.large" (enum)`)
}

func TestDecodeResponse(t *testing.T) {
	op, ok := sagemaker.Lookup("DescribeTrainingJob")
	require.True(t, ok)

	body := []byte(`{
		"TrainingJobName": "my-job",
		"TrainingJobStatus": "Paused",
		"CreationTime": 1704067200,
		"SomethingNew": {"x": 1}
	}`)

	out, err := op.DecodeResponse(body, shape.Lenient)
	require.NoError(t, err)
	got, ok := out.(*sagemaker.DescribeTrainingJobOutput)
	require.True(t, ok, "%T", out)
	assert.Equal(t, "my-job", *got.TrainingJobName)
	assert.Equal(t, types.TrainingJobStatus("Paused"), got.TrainingJobStatus)
	assert.False(t, shape.Known(got.TrainingJobStatus))

	data, err := got.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"TrainingJobName":"my-job","TrainingJobStatus":"Paused","CreationTime":1704067200}`, string(data))
}

func TestDecodeResponse_Strict(t *testing.T) {
	op, _ := sagemaker.Lookup("DescribeTrainingJob")

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "unknown enum",
			body: `{"TrainingJobName":"my-job","TrainingJobStatus":"Paused"}`,
			want: `field TrainingJobStatus: unknown enum value "Paused"`,
		},
		{
			name: "unknown member",
			body: `{"TrainingJobName":"my-job","SomethingNew":true}`,
			want: "SomethingNew",
		},
		{
			name: "nested unknown enum",
			body: `{"ResourceConfig":{"InstanceType":"ml.future.large","InstanceCount":1,"VolumeSizeInGB":5}}`,
			want: `field ResourceConfig.InstanceType: unknown enum value "ml.future.large"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := op.DecodeResponse([]byte(tt.body), shape.Strict)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, strings.HasPrefix(err.Error(), "DescribeTrainingJob: "), err.Error())
			assert.Contains(t, err.Error(), tt.want)

			var ue *errors.UnmarshalError
			require.ErrorAs(t, err, &ue)
			assert.Equal(t, "DescribeTrainingJobOutput", ue.Type)

			_, err = op.DecodeResponse([]byte(tt.body), shape.Lenient)
			assert.NoError(t, err)
		})
	}
}

func TestDecodeRequest(t *testing.T) {
	op, _ := sagemaker.Lookup("CreateNotebookInstance")

	in, err := op.DecodeRequest([]byte(`{"NotebookInstanceName":"nb-1","Tags":[]}`), shape.Strict)
	require.NoError(t, err)
	got := in.(*sagemaker.CreateNotebookInstanceInput)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
	assert.Nil(t, got.SecurityGroupIds)

	_, err = op.DecodeRequest([]byte(`[]`), shape.Lenient)
	assert.Error(t, err)
}

func TestPresignedUrl_Redacted(t *testing.T) {
	out := new(sagemaker.CreatePresignedNotebookInstanceUrlOutput).
		WithAuthorizedUrl("https://nb-1.notebook.us-east-1.sagemaker.aws?authToken=secret")

	assert.Equal(t, "{AuthorizedUrl: [REDACTED]}", out.Redacted())
	assert.Contains(t, out.String(), "authToken=secret")

	data, err := out.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "authToken=secret")
}
