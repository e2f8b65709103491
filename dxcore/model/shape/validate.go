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
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"go.uber.org/multierr"

	"dirpx.dev/dxsage/dxcore/errors"
)

// ValidateOption adjusts Validate.
type ValidateOption func(*validateConfig)

type validateConfig struct {
	strictEnums bool
}

// StrictEnums makes Validate report enum literals unknown to this client.
// Without it such literals are accepted so that values added by the service
// later keep working.
func StrictEnums() ValidateOption {
	return func(c *validateConfig) { c.strictEnums = true }
}

// Validate checks every constraint of s and of the shapes nested in it and
// returns all violations combined with multierr, or nil. Each violation is an
// *errors.ValidationError whose Type is the name of s and whose Field is the
// path of the offending field, for example "InputDataConfig[0].ChannelName".
//
// Constraints only apply to fields that are set, except Required, which
// applies only to fields that are unset.
func Validate(s Shape, opts ...ValidateOption) error {
	cfg := validateConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	v := &validator{typ: s.TypeName(), cfg: &cfg, errs: new(error)}
	s.Walk(v)
	return *v.errs
}

type validator struct {
	typ    string
	prefix string
	cfg    *validateConfig
	errs   *error
}

func (v *validator) report(name, rule string, value any, opts []Option, format string, args ...any) {
	if hasOption(opts, optSensitive) && value != nil {
		value = redacted
	}
	*v.errs = multierr.Append(*v.errs, &errors.ValidationError{
		Type:   v.typ,
		Field:  v.prefix + name,
		Rule:   rule,
		Reason: fmt.Sprintf(format, args...),
		Value:  value,
	})
}

func (v *validator) required(name string, opts []Option) {
	if hasOption(opts, optRequired) {
		v.report(name, "required", nil, opts, "must be set")
	}
}

func (v *validator) child(prefix string) *validator {
	return &validator{typ: v.typ, prefix: prefix, cfg: v.cfg, errs: v.errs}
}

// checkString applies the string constraints to one value.
func (v *validator) checkString(name, s string, opts []Option) {
	for _, o := range opts {
		switch o.kind {
		case optLength:
			n := int64(utf8.RuneCountInString(s))
			if o.hasLo && n < o.lo {
				v.report(name, "length", s, opts, "length %d is below minimum %d", n, o.lo)
			}
			if o.hasHi && n > o.hi {
				v.report(name, "length", s, opts, "length %d exceeds maximum %d", n, o.hi)
			}
		case optPattern:
			if !o.compiled().MatchString(s) {
				v.report(name, "pattern", s, opts, "must match %s", o.expr)
			}
		case optFormat:
			if err := o.check(s); err != nil {
				v.report(name, o.rule, s, opts, "%v", err)
			}
		}
	}
}

func (v *validator) checkItems(name string, n int, opts []Option) {
	for _, o := range opts {
		if o.kind != optItems {
			continue
		}
		if o.hasLo && int64(n) < o.lo {
			v.report(name, "items", n, opts, "has %d items, minimum is %d", n, o.lo)
		}
		if o.hasHi && int64(n) > o.hi {
			v.report(name, "items", n, opts, "has %d items, maximum is %d", n, o.hi)
		}
	}
}

func (v *validator) String(name string, p **string, opts ...Option) {
	if *p == nil {
		v.required(name, opts)
		return
	}
	v.checkString(name, **p, opts)
}

func (v *validator) Int64(name string, p **int64, opts ...Option) {
	if *p == nil {
		v.required(name, opts)
		return
	}
	n := **p
	for _, o := range opts {
		if o.kind != optRange {
			continue
		}
		if o.hasLo && n < o.lo {
			v.report(name, "range", n, opts, "%d is below minimum %d", n, o.lo)
		}
		if o.hasHi && n > o.hi {
			v.report(name, "range", n, opts, "%d exceeds maximum %d", n, o.hi)
		}
	}
}

func (v *validator) Float64(name string, p **float64, opts ...Option) {
	if *p == nil {
		v.required(name, opts)
		return
	}
	f := **p
	for _, o := range opts {
		if o.kind != optFloatRange {
			continue
		}
		if o.hasLo && !(f >= o.flo) {
			v.report(name, "range", f, opts, "%s is below minimum %s", fmtFloat(f), fmtFloat(o.flo))
		}
		if o.hasHi && !(f <= o.fhi) {
			v.report(name, "range", f, opts, "%s exceeds maximum %s", fmtFloat(f), fmtFloat(o.fhi))
		}
	}
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (v *validator) Bool(name string, p **bool, opts ...Option) {
	if *p == nil {
		v.required(name, opts)
	}
}

func (v *validator) Time(name string, p **time.Time, opts ...Option) {
	if *p == nil {
		v.required(name, opts)
	}
}

func (v *validator) Enum(name string, r EnumRef, opts ...Option) {
	s := r.Get()
	if s == "" {
		v.required(name, opts)
		return
	}
	if v.cfg.strictEnums && !r.Known(s) {
		v.report(name, "enum", s, opts, "unknown value %q", s)
	}
}

func (v *validator) EnumList(name string, r EnumListRef, opts ...Option) {
	list := r.Get()
	if list == nil {
		v.required(name, opts)
		return
	}
	v.checkItems(name, len(list), opts)
	if !v.cfg.strictEnums {
		return
	}
	for i, s := range list {
		if !r.Known(s) {
			v.report(fmt.Sprintf("%s[%d]", name, i), "enum", s, opts, "unknown value %q", s)
		}
	}
}

func (v *validator) StringList(name string, p *[]string, opts ...Option) {
	if *p == nil {
		v.required(name, opts)
		return
	}
	v.checkItems(name, len(*p), opts)
	for i, s := range *p {
		v.checkString(fmt.Sprintf("%s[%d]", name, i), s, opts)
	}
}

func (v *validator) StringMap(name string, p *map[string]string, opts ...Option) {
	if *p == nil {
		v.required(name, opts)
		return
	}
	v.checkItems(name, len(*p), opts)
	for _, k := range sortedKeys(*p) {
		v.checkString(fmt.Sprintf("%s[%s]", name, k), (*p)[k], opts)
	}
}

func (v *validator) Struct(name string, r StructRef, opts ...Option) {
	s := r.Get()
	if s == nil {
		v.required(name, opts)
		return
	}
	s.Walk(v.child(v.prefix + name + "."))
}

func (v *validator) StructList(name string, r ListRef, opts ...Option) {
	if r.IsNil() {
		v.required(name, opts)
		return
	}
	v.checkItems(name, r.Len(), opts)
	for i := range r.Len() {
		r.At(i).Walk(v.child(fmt.Sprintf("%s%s[%d].", v.prefix, name, i)))
	}
}
