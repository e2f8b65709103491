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

package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EnumConstName returns the Go constant name for value of enum: the enum name
// followed by the value split on every character that is not a letter or a
// digit, with each part capitalized.
//
//	EnumConstName("TrainingInstanceType", "ml.p3.2xlarge") == "TrainingInstanceTypeMlP32xlarge"
//	EnumConstName("SplitType", "RecordIO")               == "SplitTypeRecordIO"
//	EnumConstName("S3DataType", "ManifestFile")          == "S3DataTypeManifestFile"
func EnumConstName(enum, value string) string {
	var sb strings.Builder
	sb.WriteString(enum)
	for _, part := range strings.FieldsFunc(value, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		r, n := utf8.DecodeRuneInString(part)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(part[n:])
	}
	return sb.String()
}

// qualifier returns the package qualifier of a ref such as "types.Tag", or
// "" for a local ref.
func qualifier(ref string) string {
	if q, _, ok := strings.Cut(ref, "."); ok {
		return q
	}
	return ""
}

// wrap splits text into comment lines of at most width characters, keeping
// paragraph breaks as empty lines.
func wrap(text string, width int) []string {
	var lines []string
	for i, para := range strings.Split(strings.TrimSpace(text), "\n\n") {
		if i > 0 {
			lines = append(lines, "")
		}
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) > width:
				lines = append(lines, line)
				line = word
			default:
				line += " " + word
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
