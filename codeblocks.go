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

// tryIndentedCode consumes a run of lines indented at least four spaces,
// plus any interior blank lines, stopping before any trailing blank run.
func tryIndentedCode(lines []mdLine) (*Block, int, bool) {
	if indentOf(lines[0].text) < 4 {
		return nil, 0, false
	}
	var content []string
	n := 0
	trailingBlanks := 0
	for n < len(lines) {
		line := lines[n].text
		if isBlankBytes(line) {
			content = append(content, "")
			trailingBlanks++
			n++
			continue
		}
		if indentOf(line) < 4 {
			break
		}
		content = append(content, string(line[4:]))
		trailingBlanks = 0
		n++
	}
	n -= trailingBlanks
	content = content[:len(content)-trailingBlanks]
	block := &Block{
		kind: IndentedCodeBlockKind,
		span: Span{Start: lines[0].start},
		code: content,
	}
	return block, n, true
}

// tryFencedCode consumes a fenced code block: an opening fence line, the
// lines up to a matching closing fence (or end of input), with the
// opening fence's indentation stripped from each content line.
func tryFencedCode(lines []mdLine) (*Block, int, bool) {
	indent := indentOf(lines[0].text)
	if indent >= 4 {
		return nil, 0, false
	}
	ch, count, info, ok := parseCodeFence(trimUpTo3(lines[0].text))
	if !ok {
		return nil, 0, false
	}
	var content []string
	n := 1
	for n < len(lines) {
		line := lines[n].text
		if closeCh, closeCount, closeInfo, closeOK := parseCodeFence(trimUpTo3(line)); closeOK &&
			closeCh == ch && closeCount >= count && len(closeInfo) == 0 && indentOf(line) < 4 {
			n++
			break
		}
		stripped := line
		for i := 0; i < indent && len(stripped) > 0 && stripped[0] == ' '; i++ {
			stripped = stripped[1:]
		}
		content = append(content, string(stripped))
		n++
	}
	block := &Block{
		kind:      FencedCodeBlockKind,
		span:      Span{Start: lines[0].start},
		text:      string(info),
		code:      content,
		fenceChar: ch,
		fenceLen:  count,
		indent:    indent,
	}
	return block, n, true
}
