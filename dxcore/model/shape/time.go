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
	"math/big"
	"strconv"
	"strings"
	"time"
)

var nanosPerSecond = big.NewInt(int64(time.Second))

// maxEpochExponent bounds the exponent accepted by ParseEpoch so that a
// hostile payload cannot force a huge rational expansion.
const maxEpochExponent = 64

// FormatEpoch renders t as seconds since the Unix epoch with an exact
// fractional part, the timestamp form used on the wire. Trailing zeros of the
// fraction are dropped and whole seconds carry no fraction at all.
//
//	2024-01-01T00:00:00Z      -> 1704067200
//	2024-01-01T00:00:00.25Z   -> 1704067200.25
//	1969-12-31T23:59:59.5Z    -> -0.5
func FormatEpoch(t time.Time) string {
	sec, nsec := t.Unix(), int64(t.Nanosecond())
	if nsec == 0 {
		return strconv.FormatInt(sec, 10)
	}
	sign := ""
	if sec < 0 {
		sign = "-"
		sec = -sec - 1
		nsec = int64(time.Second) - nsec
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", nsec), "0")
	return sign + strconv.FormatInt(sec, 10) + "." + frac
}

// ParseEpoch parses a JSON number holding seconds since the Unix epoch.
// Fractions and exponents are accepted ("1.7040672E9"); the fraction is
// rounded to the nearest nanosecond. The result is in UTC.
func ParseEpoch(text string) (time.Time, error) {
	if i := strings.IndexAny(text, "eE"); i >= 0 {
		if exp, err := strconv.Atoi(text[i+1:]); err != nil || exp > maxEpochExponent || exp < -maxEpochExponent {
			return time.Time{}, fmt.Errorf("invalid epoch seconds %q", text)
		}
	}
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid epoch seconds %q", text)
	}

	// Floor division keeps the fractional remainder non-negative.
	sec := new(big.Int).Div(r.Num(), r.Denom())
	rem := new(big.Rat).Sub(r, new(big.Rat).SetInt(sec))
	rem.Mul(rem, new(big.Rat).SetInt(nanosPerSecond))

	nsec := new(big.Int).Quo(rem.Num(), rem.Denom())
	twice := new(big.Int).Mul(new(big.Int).Rem(rem.Num(), rem.Denom()), big.NewInt(2))
	if twice.Cmp(rem.Denom()) >= 0 {
		nsec.Add(nsec, big.NewInt(1))
	}

	if !sec.IsInt64() {
		return time.Time{}, fmt.Errorf("epoch seconds %q out of range", text)
	}
	return time.Unix(sec.Int64(), nsec.Int64()).UTC(), nil
}

// ParseTimestamp parses an ISO-8601 timestamp string. RFC 3339 with or
// without fractional seconds is accepted, as is the form without a zone
// designator, which is read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// FormatTimestamp renders t as an RFC 3339 string in UTC with the shortest
// exact fractional part.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
