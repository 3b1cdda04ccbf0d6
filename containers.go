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

// tryBlockQuote consumes a block quote: every line prefixed (after up to
// three leading spaces) with '>', plus any lazily continued paragraph
// lines that follow without their own prefix.
func tryBlockQuote(lines []mdLine, refs ReferenceMap) (*Block, int, bool) {
	first := trimUpTo3(lines[0].text)
	if !hasBytePrefix(first, ">") {
		return nil, 0, false
	}
	var sub []mdLine
	lastParaLike := false
	n := 0
	for n < len(lines) {
		line := lines[n]
		indent := indentOf(line.text)
		rest := trimUpTo3(line.text)
		if indent < 4 && hasBytePrefix(rest, ">") {
			content := rest[1:]
			if len(content) > 0 && content[0] == ' ' {
				content = content[1:]
			} else {
				content = stripTab(content)
			}
			sub = append(sub, mdLine{
				start: line.start + (len(line.text) - len(content)),
				text:  content,
			})
			lastParaLike = !isBlankBytes(content)
			n++
			continue
		}
		if isBlankBytes(line.text) {
			break
		}
		if lastParaLike && !canInterruptParagraph(line.text) {
			sub = append(sub, line)
			n++
			continue
		}
		break
	}
	block := &Block{
		kind:          BlockQuoteKind,
		span:          Span{Start: lines[0].start},
		blockChildren: parseBlockChildren(sub, refs),
	}
	return block, n, true
}

// tryList consumes a run of one or more list items sharing the same
// marker delimiter, separated by at most two blank lines.
func tryList(lines []mdLine, refs ReferenceMap, ordered bool) (*Block, int, bool) {
	indent := indentOf(lines[0].text)
	if indent >= 4 {
		return nil, 0, false
	}
	marker, ok := parseListMarker(trimUpTo3(lines[0].text))
	if !ok || marker.ordered != ordered {
		return nil, 0, false
	}

	var items []*Block
	n := 0
	for n < len(lines) {
		gap := 0
		for n+gap < len(lines) && isBlankBytes(lines[n+gap].text) {
			gap++
		}
		if gap >= 2 {
			break
		}
		if n+gap >= len(lines) {
			break
		}
		item, consumed, ok := consumeListItem(lines[n+gap:], marker.delim, ordered, refs)
		if !ok {
			break
		}
		if gap > 0 && len(items) > 0 {
			items[len(items)-1].lastLineBlank = true
		}
		// consumeListItem keeps one trailing blank line as the item's last
		// child; it still separates this item from the next one.
		if last := item.lastChild(); last != nil && last.kind == BlankLineKind {
			item.lastLineBlank = true
		}
		items = append(items, item)
		n += gap + consumed
	}

	kind := UnorderedListKind
	if ordered {
		kind = OrderedListKind
	}
	loose := false
	for i, item := range items {
		if item.lastLineBlank && i != len(items)-1 {
			loose = true
		}
		if containsInteriorBlank(item.blockChildren) {
			loose = true
		}
		item.loose = loose
	}
	if loose {
		for _, item := range items {
			item.loose = true
		}
	}
	block := &Block{
		kind:          kind,
		span:          Span{Start: lines[0].start},
		blockChildren: items,
		loose:         loose,
	}
	if ordered {
		block.start = marker.num
	}
	return block, n, true
}

// consumeListItem gathers the lines belonging to a single list item,
// recursively parsing its content after stripping the marker and its
// continuation indentation.
func consumeListItem(lines []mdLine, wantDelim byte, wantOrdered bool, refs ReferenceMap) (*Block, int, bool) {
	indent := indentOf(lines[0].text)
	if indent >= 4 {
		return nil, 0, false
	}
	rest := trimUpTo3(lines[0].text)
	m, ok := parseListMarker(rest)
	if !ok || m.ordered != wantOrdered || m.delim != wantDelim {
		return nil, 0, false
	}
	markerLen := (len(lines[0].text) - len(rest)) + m.end
	markerText := string(lines[0].text[len(lines[0].text)-len(rest) : len(lines[0].text)-len(rest)+m.end])
	afterMarker := lines[0].text[markerLen:]

	var sub []mdLine
	var contentCol int
	switch {
	case isBlankBytes(afterMarker):
		contentCol = markerLen + 1
	default:
		pad := indentOf(afterMarker)
		if pad == 0 || pad > 4 {
			pad = 1
		}
		contentCol = markerLen + pad
		firstContent := stripTab(lines[0].text[min(contentCol, len(lines[0].text)):])
		sub = append(sub, mdLine{start: lines[0].start + min(contentCol, len(lines[0].text)), text: firstContent})
	}

	n := 1
	lastParaLike := len(sub) > 0 && !isBlankBytes(sub[0].text)
	blanks := 0
	for n < len(lines) {
		line := lines[n]
		if isBlankBytes(line.text) {
			if blanks >= 1 {
				break
			}
			blanks++
			sub = append(sub, mdLine{start: line.start})
			n++
			continue
		}
		lindent := indentOf(line.text)
		if lindent >= contentCol {
			blanks = 0
			content := stripTab(line.text[contentCol:])
			sub = append(sub, mdLine{start: line.start + contentCol, text: content})
			lastParaLike = true
			n++
			continue
		}
		// A marker of this same list starts the next item, even an ordered
		// one that could not interrupt a paragraph on its own.
		if m, ok := parseListMarker(trimUpTo3(line.text)); ok && lindent < 4 && m.ordered == wantOrdered && m.delim == wantDelim {
			break
		}
		if blanks == 0 && lastParaLike && !canInterruptParagraph(line.text) {
			sub = append(sub, line)
			n++
			continue
		}
		break
	}

	item := &Block{
		kind:          ListItemKind,
		marker:        markerText,
		span:          Span{Start: lines[0].start},
		blockChildren: parseBlockChildren(sub, refs),
	}
	return item, n, true
}

func containsInteriorBlank(children []*Block) bool {
	for i, c := range children {
		if c.kind == BlankLineKind && i != len(children)-1 {
			return true
		}
	}
	return false
}

// finalizeLists is a hook for any cross-item adjustment that needs the
// completed sibling list; currently looseness is computed entirely
// within tryList, so it does nothing.
func finalizeLists(blocks []*Block) {
	_ = blocks
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
