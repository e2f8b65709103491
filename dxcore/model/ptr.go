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

package model

// ToPtr returns a pointer to a copy of v. It is the usual way to fill an
// optional scalar field in a struct literal:
//
//	in := &sagemaker.DescribeTrainingJobInput{TrainingJobName: model.ToPtr("my-job")}
func ToPtr[T any](v T) *T {
	return &v
}

// Deref returns *ptr, or def when ptr is nil.
func Deref[T any](ptr *T, def T) T {
	if ptr == nil {
		return def
	}
	return *ptr
}
