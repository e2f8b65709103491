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

import (
	"regexp"
	"sync"
)

type optionKind uint8

const (
	optRequired optionKind = iota + 1
	optSensitive
	optToken
	optLength
	optPattern
	optRange
	optFloatRange
	optItems
	optFormat
)

// Option attaches a constraint or a marker to a field. Options are plain
// values and are cheap to construct on every Walk.
type Option struct {
	kind   optionKind
	lo, hi int64
	hasLo  bool
	hasHi  bool
	flo    float64
	fhi    float64
	expr   string
	rule   string
	check  func(string) error
}

var (
	// Required marks a field that the service requires.
	Required = Option{kind: optRequired}

	// Sensitive marks a field whose value is masked by RenderRedacted and in
	// validation errors.
	Sensitive = Option{kind: optSensitive}

	// IdempotencyToken marks a string field that FillIdempotencyTokens
	// populates when unset.
	IdempotencyToken = Option{kind: optToken}
)

// Length constrains the length of a string, in characters, to [min, max].
// A negative max leaves the upper bound open. On list fields it applies to
// every element, on map fields to every value.
func Length(min, max int) Option {
	return Option{kind: optLength, lo: int64(min), hi: int64(max), hasLo: min > 0, hasHi: max >= 0}
}

// MinLength constrains the length of a string to at least min characters.
func MinLength(min int) Option { return Length(min, -1) }

// MaxLength constrains the length of a string to at most max characters.
func MaxLength(max int) Option { return Length(0, max) }

// Pattern constrains a string to match expr in full. The expression is
// compiled once per process with the s flag, so "." also matches newlines as
// it does in the service's own validation.
func Pattern(expr string) Option { return Option{kind: optPattern, expr: expr} }

// Range constrains an integer to [min, max].
func Range(min, max int64) Option {
	return Option{kind: optRange, lo: min, hi: max, hasLo: true, hasHi: true}
}

// Min constrains an integer to be at least min.
func Min(min int64) Option { return Option{kind: optRange, lo: min, hasLo: true} }

// Max constrains an integer to be at most max.
func Max(max int64) Option { return Option{kind: optRange, hi: max, hasHi: true} }

// FloatRange constrains a double to [min, max].
func FloatRange(min, max float64) Option {
	return Option{kind: optFloatRange, flo: min, fhi: max, hasLo: true, hasHi: true}
}

// FloatMin constrains a double to be at least min.
func FloatMin(min float64) Option { return Option{kind: optFloatRange, flo: min, hasLo: true} }

// FloatMax constrains a double to be at most max.
func FloatMax(max float64) Option { return Option{kind: optFloatRange, fhi: max, hasHi: true} }

// Items constrains the number of elements of a list or map to [min, max].
// A negative max leaves the upper bound open.
func Items(min, max int) Option {
	return Option{kind: optItems, lo: int64(min), hi: int64(max), hasLo: min > 0, hasHi: max >= 0}
}

// Format attaches a named check to a string field. The check returns a
// non-nil error describing why the value is malformed; rule names the check in
// validation errors (for example "arn").
func Format(rule string, check func(string) error) Option {
	return Option{kind: optFormat, rule: rule, check: check}
}

func hasOption(opts []Option, kind optionKind) bool {
	for _, o := range opts {
		if o.kind == kind {
			return true
		}
	}
	return false
}

var patterns sync.Map // map[string]*regexp.Regexp

// compiled returns the anchored regular expression for a Pattern option.
// Patterns come from the service model and are checked by the generator, so an
// invalid expression here is a programming error.
func (o Option) compiled() *regexp.Regexp {
	if re, ok := patterns.Load(o.expr); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?s)^(?:` + o.expr + `)$`)
	actual, _ := patterns.LoadOrStore(o.expr, re)
	return actual.(*regexp.Regexp)
}
