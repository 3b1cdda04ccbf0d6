// Copyright 2024 The gfmark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package markdown

// Span is a byte range. For a [Block], it is relative to the beginning of
// the [Document]'s Source. For an [Inline], it is relative to the
// beginning of the owning leaf block's cleaned text.
type Span struct {
	Start int
	End   int
}

// NullSpan returns a Span that does not refer to any text.
func NullSpan() Span {
	return Span{Start: -1, End: -1}
}

// IsValid reports whether the span refers to a real range of text.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.End >= 0 && s.Start <= s.End
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	if !s.IsValid() {
		return 0
	}
	return s.End - s.Start
}

// spanSlice returns the bytes of source that the span refers to,
// or nil if the span is invalid.
func spanSlice(source []byte, s Span) []byte {
	if !s.IsValid() {
		return nil
	}
	return source[s.Start:s.End]
}

// stringSpanSlice is the string counterpart to spanSlice,
// used for Inline text that has already been detached from the source bytes.
func stringSpanSlice(s string, sp Span) string {
	if !sp.IsValid() {
		return ""
	}
	return s[sp.Start:sp.End]
}
