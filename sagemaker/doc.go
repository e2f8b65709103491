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

// Package sagemaker holds the request and response shapes of the SageMaker
// control-plane API together with a registry of its operations.
//
// Shape types and the operation table are generated from
// schema/sagemaker/operations.yaml; the structures they embed live in the
// types subpackage. Values are plain data: setters never validate, and
// EncodeRequest is the single place where a request is checked before it
// leaves the process.
//
//	in := new(sagemaker.DescribeTrainingJobInput).WithTrainingJobName("my-job")
//	body, err := sagemaker.EncodeRequest(in)
//
// Signing, transport, retries and pagination are not part of this package.
package sagemaker

//go:generate go run ../cmd/shapegen --config ../schema/sagemaker/shapegen.yaml
