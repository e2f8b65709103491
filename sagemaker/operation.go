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

package sagemaker

import (
	"fmt"
	"slices"
	"strings"

	"dirpx.dev/dxsage/dxcore/model"
	"dirpx.dev/dxsage/dxcore/model/shape"
)

// Protocol identity of the service.
const (
	ServiceID    = "SageMaker"
	APIVersion   = "2017-07-24"
	TargetPrefix = "SageMaker"
	ContentType  = "application/x-amz-json-1.1"
)

// Shape is implemented by every request and response type of this package.
type Shape interface {
	shape.Shape
	model.Model
	model.Hashable
}

// Operation describes one API operation.
type Operation struct {
	// Name is the operation name, for example "DescribeTrainingJob".
	Name string

	// Target is the value of the X-Amz-Target header, TargetPrefix + "." + Name.
	Target string

	// NewInput and NewOutput allocate an empty request and response.
	NewInput  func() Shape
	NewOutput func() Shape
}

var operationIndex = func() map[string]*Operation {
	m := make(map[string]*Operation, len(operationTable))
	for _, op := range operationTable {
		m[op.Name] = op
	}
	return m
}()

// Lookup returns the operation with the given name.
func Lookup(name string) (*Operation, bool) {
	op, ok := operationIndex[name]
	return op, ok
}

// Operations returns every operation sorted by name.
func Operations() []*Operation {
	ops := slices.Clone(operationTable)
	slices.SortFunc(ops, func(a, b *Operation) int { return strings.Compare(a.Name, b.Name) })
	return ops
}

// EncodeRequest prepares in for sending: unset idempotency tokens are filled,
// the request is validated and its JSON body is returned. A request that fails
// validation is not encoded.
func EncodeRequest(in Shape, opts ...shape.ValidateOption) ([]byte, error) {
	shape.FillIdempotencyTokens(in)
	if err := shape.Validate(in, opts...); err != nil {
		return nil, err
	}
	return in.MarshalJSON()
}

// DecodeRequest decodes a request body of op.
func (op *Operation) DecodeRequest(data []byte, mode shape.DecodeMode) (Shape, error) {
	return op.decode(op.NewInput(), data, mode)
}

// DecodeResponse decodes a response body of op. Response values are not
// validated; callers that need it call Validate on the result.
func (op *Operation) DecodeResponse(data []byte, mode shape.DecodeMode) (Shape, error) {
	return op.decode(op.NewOutput(), data, mode)
}

func (op *Operation) decode(s Shape, data []byte, mode shape.DecodeMode) (Shape, error) {
	if err := shape.Decode(data, s, mode); err != nil {
		return nil, fmt.Errorf("%s: %w", op.Name, err)
	}
	return s, nil
}
