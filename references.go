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
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// labelFold performs full Unicode case folding on reference labels, per
// CommonMark's "Unicode case fold" requirement: ASCII-only lowercasing
// (strings.ToLower) misses multi-codepoint folds like German ß→ss.
var labelFold = cases.Fold()

// LinkDefinition is the destination and optional title of a link
// reference definition.
type LinkDefinition struct {
	Destination string
	Title       string
	TitlePresent bool
}

// ReferenceMap holds a document's link reference definitions, keyed by
// normalized label. The zero value is an empty map; use make(ReferenceMap)
// or a map literal to build one.
type ReferenceMap map[string]LinkDefinition

// MatchReference looks up label, which need not be normalized, and
// reports whether a matching definition exists.
func (m ReferenceMap) MatchReference(label string) (LinkDefinition, bool) {
	def, ok := m[normalizeLabel(label)]
	return def, ok
}

// normalizeLabel case-folds and collapses internal whitespace in a link
// label, so that "[Foo Bar]" and "[foo   bar]" refer to the same
// definition.
func normalizeLabel(label string) string {
	fields := strings.Fields(label)
	for i, f := range fields {
		f = strings.Map(func(r rune) rune {
			if r == 0 {
				return unicode.ReplacementChar
			}
			return r
		}, f)
		fields[i] = labelFold.String(f)
	}
	return strings.Join(fields, " ")
}

// tryReferenceDefinition attempts to parse a link reference definition
// beginning at lines[0]: "[label]: destination \"title\"", where the
// title may instead appear on a following line and destination may be
// wrapped in angle brackets. On success the definition is recorded in
// refs (first definition for a label wins) and a
// LinkReferenceDefinitionKind block is returned.
func tryReferenceDefinition(lines []mdLine, refs ReferenceMap) (*Block, int, bool) {
	if indentOf(lines[0].text) >= 4 {
		return nil, 0, false
	}
	first := trimUpTo3(lines[0].text)
	if len(first) == 0 || first[0] != '[' {
		return nil, 0, false
	}

	joined, lineOf := joinForLookahead(lines, 3)

	label, rest, ok := scanLinkLabel(joined)
	if !ok || label == "" {
		return nil, 0, false
	}
	if !strings.HasPrefix(rest, ":") {
		return nil, 0, false
	}
	rest = strings.TrimLeft(rest[1:], " \t\n")

	dest, rest, ok := scanLinkDestination(rest)
	if !ok {
		return nil, 0, false
	}

	beforeTitle := rest
	rest = strings.TrimLeft(rest, " \t\n")
	title, afterTitle, titlePresent := scanLinkTitle(rest)
	if !titlePresent {
		rest = beforeTitle
	} else {
		trailing := strings.TrimLeft(afterTitle, " \t")
		if trailing != "" && trailing[0] != '\n' {
			// Trailing garbage after the title on its own line means the
			// title doesn't belong to this definition; keep the
			// destination-only match instead.
			rest = beforeTitle
			title, titlePresent = "", false
		} else {
			rest = afterTitle
		}
	}
	rest = strings.TrimLeft(rest, " \t")

	consumedRunes := len(joined) - len(rest)
	n := lineOf(consumedRunes)
	if n == 0 {
		n = 1
	}

	norm := normalizeLabel(label)
	if _, exists := refs[norm]; !exists {
		refs[norm] = LinkDefinition{Destination: dest, Title: title, TitlePresent: titlePresent}
	}
	block := &Block{
		kind:  LinkReferenceDefinitionKind,
		span:  Span{Start: lines[0].start},
		label: norm,
		url:   dest,
		title: title,
	}
	return block, n, true
}

// joinForLookahead joins up to max lines with '\n' and returns a function
// mapping a byte offset within the joined text back to a 1-based count of
// how many of those lines it spans.
func joinForLookahead(lines []mdLine, max int) (string, func(int) int) {
	if max > len(lines) {
		max = len(lines)
	}
	parts := make([]string, max)
	offsets := make([]int, max+1)
	for i := 0; i < max; i++ {
		parts[i] = string(lines[i].text)
		offsets[i+1] = offsets[i] + len(parts[i]) + 1
	}
	joined := strings.Join(parts, "\n")
	return joined, func(pos int) int {
		for i := 0; i < max; i++ {
			if pos <= offsets[i+1] {
				return i + 1
			}
		}
		return max
	}
}

// scanLinkLabel parses a "[...]" link label from the start of s, allowing
// backslash escapes, and returns its interior along with the remainder of
// s after the closing bracket.
func scanLinkLabel(s string) (label, rest string, ok bool) {
	if len(s) == 0 || s[0] != '[' {
		return "", s, false
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			return "", s, false
		case ']':
			return s[1:i], s[i+1:], true
		}
	}
	return "", s, false
}

// scanLinkDestination parses either an angle-bracketed or a bare link
// destination from the start of s.
func scanLinkDestination(s string) (dest, rest string, ok bool) {
	if len(s) == 0 {
		return "", s, false
	}
	if s[0] == '<' {
		for i := 1; i < len(s); i++ {
			switch s[i] {
			case '\\':
				i++
			case '\n', '<':
				return "", s, false
			case '>':
				return removeBackslashEscapes(s[1:i]), s[i+1:], true
			}
		}
		return "", s, false
	}
	depth := 0
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			i += 2
			continue
		}
		if c == ' ' || c == '\t' || c == '\n' {
			break
		}
		if c == '(' {
			depth++
		}
		if c == ')' {
			if depth == 0 {
				break
			}
			depth--
		}
		i++
	}
	if i == 0 || depth != 0 {
		return "", s, false
	}
	return removeBackslashEscapes(s[:i]), s[i:], true
}

// scanLinkTitle parses a quoted link title ('"..."', '\'...\'', or
// '(...)') from the start of s.
func scanLinkTitle(s string) (title, rest string, ok bool) {
	if len(s) == 0 {
		return "", s, false
	}
	open := s[0]
	var close byte
	switch open {
	case '"':
		close = '"'
	case '\'':
		close = '\''
	case '(':
		close = ')'
	default:
		return "", s, false
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case close:
			return removeBackslashEscapes(s[1:i]), s[i+1:], true
		}
	}
	return "", s, false
}
