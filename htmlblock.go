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
	"regexp"
	"strings"
)

// htmlBlockCondition is one of the seven CommonMark HTML block start/end
// rules: a start test on the first line and an end test applied to every
// line from there on.
type htmlBlockCondition struct {
	start                 func([]byte) bool
	end                   func([]byte) bool
	// inclusive reports whether the line satisfying end belongs to the
	// block. Conditions 1-5 close on the line containing their closing
	// token; conditions 6-7 close on the next blank line, which is not
	// part of the block.
	inclusive             bool
	canInterruptParagraph bool
}

var htmlTagNameRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*`)

// htmlBlockTagNames is the CommonMark type-6 list of tag names whose
// presence alone opens an HTML block.
var htmlBlockTagNames = map[string]bool{
	"address": true, "article": true, "aside": true, "base": true,
	"basefont": true, "blockquote": true, "body": true, "caption": true,
	"center": true, "col": true, "colgroup": true, "dd": true,
	"details": true, "dialog": true, "dir": true, "div": true, "dl": true,
	"dt": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "frame": true, "frameset": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"head": true, "header": true, "hr": true, "html": true, "iframe": true,
	"legend": true, "li": true, "link": true, "main": true, "menu": true,
	"menuitem": true, "nav": true, "noframes": true, "ol": true,
	"optgroup": true, "option": true, "p": true, "param": true,
	"section": true, "summary": true, "table": true, "tbody": true,
	"td": true, "tfoot": true, "th": true, "thead": true, "title": true,
	"tr": true, "track": true, "ul": true,
}

var htmlOpenOrCloseTagOnlyRE = regexp.MustCompile(
	`^</?[A-Za-z][A-Za-z0-9-]*(\s+[a-zA-Z_:][a-zA-Z0-9_.:-]*(\s*=\s*([^\s"'=<>`+"`"+`]+|'[^']*'|"[^"]*"))?)*\s*/?>\s*$`)

var htmlBlockConditions = []htmlBlockCondition{
	{
		start: func(line []byte) bool {
			return hasCITagPrefix(line, "<script") || hasCITagPrefix(line, "<pre") || hasCITagPrefix(line, "<style")
		},
		end: func(line []byte) bool {
			s := strings.ToLower(string(line))
			return strings.Contains(s, "</script>") || strings.Contains(s, "</pre>") || strings.Contains(s, "</style>")
		},
		inclusive:             true,
		canInterruptParagraph: true,
	},
	{
		start:                 func(line []byte) bool { return hasBytePrefix(line, "<!--") },
		end:                   func(line []byte) bool { return strings.Contains(string(line), "-->") },
		inclusive:             true,
		canInterruptParagraph: true,
	},
	{
		start:                 func(line []byte) bool { return hasBytePrefix(line, "<?") },
		end:                   func(line []byte) bool { return strings.Contains(string(line), "?>") },
		inclusive:             true,
		canInterruptParagraph: true,
	},
	{
		start: func(line []byte) bool {
			return len(line) > 2 && line[0] == '<' && line[1] == '!' && isASCIIUpper(line[2])
		},
		end:                   func(line []byte) bool { return strings.Contains(string(line), ">") },
		inclusive:             true,
		canInterruptParagraph: true,
	},
	{
		start:                 func(line []byte) bool { return hasBytePrefix(line, "<![CDATA[") },
		end:                   func(line []byte) bool { return strings.Contains(string(line), "]]>") },
		inclusive:             true,
		canInterruptParagraph: true,
	},
	{
		start:                 htmlBlockType6Start,
		end:                   isBlankBytes,
		inclusive:             false,
		canInterruptParagraph: true,
	},
	{
		start: func(line []byte) bool {
			if !htmlOpenOrCloseTagOnlyRE.Match(line) {
				return false
			}
			name := strings.ToLower(htmlTagNameRE.FindString(strings.TrimLeft(string(line), "</")))
			return !htmlTagNameIsRaw(name)
		},
		end:                   isBlankBytes,
		inclusive:             false,
		canInterruptParagraph: false,
	},
}

func hasCITagPrefix(line []byte, tag string) bool {
	if len(line) < len(tag) {
		return false
	}
	if !strings.EqualFold(string(line[:len(tag)]), tag) {
		return false
	}
	if len(line) == len(tag) {
		return true
	}
	c := line[len(tag)]
	return c == ' ' || c == '\t' || c == '>' || c == '/'
}

func htmlTagNameIsRaw(name string) bool {
	return name == "script" || name == "pre" || name == "style"
}

func isASCIIUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func htmlBlockType6Start(line []byte) bool {
	rest := line
	closing := false
	if hasBytePrefix(rest, "</") {
		rest = rest[2:]
		closing = true
	} else if hasBytePrefix(rest, "<") {
		rest = rest[1:]
	} else {
		return false
	}
	name := htmlTagNameRE.FindString(string(rest))
	if name == "" || !htmlBlockTagNames[strings.ToLower(name)] {
		return false
	}
	after := rest[len(name):]
	if len(after) == 0 {
		return true
	}
	switch after[0] {
	case ' ', '\t', '>':
		return true
	case '/':
		return closing && len(after) >= 1
	default:
		return false
	}
}

// tryHTMLBlock consumes an HTML block: a start-condition line plus every
// following line up to and including the one that satisfies that
// condition's end test (conditions 1-5), or up to but not including the
// next blank line (conditions 6-7). A block whose end test never matches
// runs through end of input.
func tryHTMLBlock(lines []mdLine) (*Block, int, bool) {
	if indentOf(lines[0].text) >= 4 {
		return nil, 0, false
	}
	line := trimUpTo3(lines[0].text)
	var cond *htmlBlockCondition
	for i := range htmlBlockConditions {
		if htmlBlockConditions[i].start(line) {
			cond = &htmlBlockConditions[i]
			break
		}
	}
	if cond == nil {
		return nil, 0, false
	}
	var content []string
	n := 0
	for n < len(lines) {
		if n > 0 && !cond.inclusive && cond.end(lines[n].text) {
			break
		}
		content = append(content, string(lines[n].text))
		inclusiveDone := cond.inclusive && cond.end(lines[n].text)
		n++
		if inclusiveDone {
			break
		}
	}
	block := &Block{
		kind: HTMLBlockKind,
		span: Span{Start: lines[0].start},
		text: joinLinesNL(content),
	}
	return block, n, true
}
