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

import (
	"html"
	"strconv"
	"strings"
	"unicode/utf8"
)

// decodeEntity decodes a single HTML entity or numeric character
// reference at the start of s (s[0] must be '&') and reports how many
// bytes it consumed. It returns ok == false if s does not begin with a
// well-formed reference.
func decodeEntity(s string) (decoded string, n int, ok bool) {
	if len(s) < 2 || s[0] != '&' {
		return "", 0, false
	}
	end := strings.IndexByte(s, ';')
	if end < 0 || end > 64 {
		return "", 0, false
	}
	ref := s[:end+1]
	if s[1] == '#' {
		return decodeNumericReference(ref)
	}
	for i := 1; i < end; i++ {
		if c := s[i]; !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return "", 0, false
		}
	}
	// html.UnescapeString also decodes a known prefix of an unknown name
	// ("&notreal;" becomes "¬real;"); a real entity decodes to one or two
	// runes with nothing left over.
	unescaped := html.UnescapeString(ref)
	if unescaped == ref || utf8.RuneCountInString(unescaped) > 2 {
		return "", 0, false
	}
	return unescaped, len(ref), true
}

// decodeEntities decodes every HTML entity and numeric character
// reference in s, leaving any "&" that does not begin a well-formed
// reference untouched. Unlike decodeEntity, it processes the whole
// string rather than a single leading reference.
func decodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '&' {
			if decoded, n, ok := decodeEntity(s[i:]); ok {
				b.WriteString(decoded)
				i += n
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func decodeNumericReference(ref string) (string, int, bool) {
	body := ref[2 : len(ref)-1]
	var codepoint int64
	var err error
	if len(body) > 0 && (body[0] == 'x' || body[0] == 'X') {
		codepoint, err = strconv.ParseInt(body[1:], 16, 32)
	} else {
		codepoint, err = strconv.ParseInt(body, 10, 32)
	}
	if err != nil || body == "" {
		return "", 0, false
	}
	if codepoint == 0 || codepoint > 0x10FFFF || (codepoint >= 0xD800 && codepoint <= 0xDFFF) {
		codepoint = 0xFFFD
	}
	return string(rune(codepoint)), len(ref), true
}
