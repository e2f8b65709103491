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

package shape

import "github.com/google/uuid"

// FillIdempotencyTokens sets every unset IdempotencyToken field of s to a
// fresh random UUID. Fields that already hold a value are left alone, so a
// caller retrying a request can keep its own token.
func FillIdempotencyTokens(s Shape) {
	s.Walk(tokenFiller{})
}

type tokenFiller struct {
	NopWalker
}

func (tokenFiller) String(_ string, v **string, opts ...Option) {
	if *v == nil && hasOption(opts, optToken) {
		token := uuid.NewString()
		*v = &token
	}
}
