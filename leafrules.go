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

import "strings"

// parseThematicBreak reports whether line (already stripped of up to
// three leading spaces) is a thematic break: three or more of the same
// character among '-', '_', '*', optionally separated by spaces or tabs,
// with nothing else on the line.
func parseThematicBreak(line []byte) (n int, ok bool) {
	var ch byte
	count := 0
	for _, c := range line {
		switch c {
		case ' ', '\t':
			continue
		case '-', '_', '*':
			if ch == 0 {
				ch = c
			} else if c != ch {
				return 0, false
			}
			count++
		default:
			return 0, false
		}
	}
	if count < 3 {
		return 0, false
	}
	return count, true
}

// parseATXHeading reports whether line is an ATX heading: 1-6 '#'
// characters, then a space or end of line, then the trimmed heading
// content with any trailing run of '#' characters (a "closing sequence")
// removed.
func parseATXHeading(line []byte) (level int, content []byte, ok bool) {
	i := 0
	for i < len(line) && line[i] == '#' {
		i++
	}
	if i == 0 || i > 6 {
		return 0, nil, false
	}
	if i < len(line) && line[i] != ' ' && line[i] != '\t' {
		return 0, nil, false
	}
	rest := strings.Trim(string(line[i:]), " \t")
	rest = strings.TrimRight(rest, " \t")
	trimmed := strings.TrimRight(rest, "#")
	if trimmed != rest {
		if trimmed == "" || trimmed[len(trimmed)-1] == ' ' || trimmed[len(trimmed)-1] == '\t' {
			rest = strings.TrimRight(trimmed, " \t")
		}
	}
	return i, []byte(rest), true
}

// parseSetextUnderline reports whether line is a setext heading
// underline: a run of only '=' characters (level 1) or only '-'
// characters (level 2), optionally followed by trailing spaces.
func parseSetextUnderline(line []byte) (level int, ok bool) {
	trimmed := strings.TrimRight(string(line), " \t")
	if trimmed == "" {
		return 0, false
	}
	var ch byte
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if c != '=' && c != '-' {
			return 0, false
		}
		if ch == 0 {
			ch = c
		} else if c != ch {
			return 0, false
		}
	}
	if ch == '=' {
		return 1, true
	}
	return 2, true
}

// parseCodeFence reports whether line opens a fenced code block: a run
// of three or more '`' or '~' characters, followed by an info string
// that (for backtick fences) must not itself contain a backtick.
func parseCodeFence(line []byte) (ch byte, count int, info []byte, ok bool) {
	if len(line) == 0 {
		return 0, 0, nil, false
	}
	ch = line[0]
	if ch != '`' && ch != '~' {
		return 0, 0, nil, false
	}
	i := 0
	for i < len(line) && line[i] == ch {
		i++
	}
	if i < 3 {
		return 0, 0, nil, false
	}
	rest := line[i:]
	if ch == '`' {
		for _, c := range rest {
			if c == '`' {
				return 0, 0, nil, false
			}
		}
	}
	return ch, i, []byte(strings.TrimSpace(string(rest))), true
}

// listMarker describes a parsed list item marker.
type listMarker struct {
	end     int // length of the marker text, e.g. len("3.")
	ordered bool
	delim   byte // bullet character, or the ordered delimiter '.' or ')'
	num     int  // ordered list start number
}

// parseListMarker reports whether line begins with a list item marker.
func parseListMarker(line []byte) (listMarker, bool) {
	if len(line) == 0 {
		return listMarker{}, false
	}
	switch line[0] {
	case '-', '*', '+':
		if len(line) == 1 || line[1] == ' ' || line[1] == '\t' {
			return listMarker{end: 1, ordered: false, delim: line[0]}, true
		}
		return listMarker{}, false
	}
	i := 0
	for i < len(line) && i < 9 && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(line) {
		return listMarker{}, false
	}
	if line[i] != '.' && line[i] != ')' {
		return listMarker{}, false
	}
	delim := line[i]
	end := i + 1
	if end < len(line) && line[end] != ' ' && line[end] != '\t' {
		return listMarker{}, false
	}
	num := 0
	for _, c := range line[:i] {
		num = num*10 + int(c-'0')
	}
	return listMarker{end: end, ordered: true, delim: delim, num: num}, true
}
