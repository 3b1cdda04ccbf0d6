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
	"bytes"
	"strings"
)

// tryTable consumes a GFM pipe table: a header row, a delimiter row
// whose cell count matches the header, and zero or more body rows
// ending at the first blank line, or at a line that has no '|' and
// could interrupt a paragraph.
func tryTable(lines []mdLine) (*Block, int, bool) {
	if len(lines) < 2 || indentOf(lines[0].text) >= 4 {
		return nil, 0, false
	}
	header := trimUpTo3(lines[0].text)
	if !bytes.Contains(header, []byte("|")) {
		return nil, 0, false
	}
	if indentOf(lines[1].text) >= 4 {
		return nil, 0, false
	}
	aligns, ok := parseDelimiterRow(string(trimUpTo3(lines[1].text)))
	if !ok {
		return nil, 0, false
	}
	headerCells := splitTableRow(string(header))
	if len(headerCells) != len(aligns) {
		return nil, 0, false
	}

	headRow := &Block{
		kind:          TableRowKind,
		blockChildren: tableCells(headerCells, aligns, TableHeadCellKind),
	}
	head := &Block{kind: TableHeadKind, blockChildren: []*Block{headRow}}
	children := []*Block{head}

	n := 2
	var bodyRows []*Block
	for n < len(lines) {
		line := lines[n].text
		if isBlankBytes(line) {
			break
		}
		trimmed := trimUpTo3(line)
		if indentOf(line) < 4 && !bytes.Contains(trimmed, []byte("|")) && canInterruptParagraph(line) {
			break
		}
		cells := padCells(splitTableRow(string(trimmed)), len(aligns))
		bodyRows = append(bodyRows, &Block{
			kind:          TableRowKind,
			blockChildren: tableCells(cells, aligns, TableBodyCellKind),
		})
		n++
	}
	if len(bodyRows) > 0 {
		children = append(children, &Block{kind: TableBodyKind, blockChildren: bodyRows})
	}

	block := &Block{
		kind:          TableKind,
		span:          Span{Start: lines[0].start},
		aligns:        aligns,
		blockChildren: children,
	}
	return block, n, true
}

func tableCells(cells []string, aligns []Align, kind BlockKind) []*Block {
	out := make([]*Block, len(aligns))
	for i := range aligns {
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		out[i] = &Block{kind: kind, text: text, align: aligns[i]}
	}
	return out
}

func padCells(cells []string, n int) []string {
	if len(cells) >= n {
		return cells[:n]
	}
	out := make([]string, n)
	copy(out, cells)
	return out
}

// splitTableRow splits a pipe table row into cells, honoring a leading
// or trailing unescaped '|' as a delimiter rather than content, and
// treating "\|" as a literal pipe.
func splitTableRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	if strings.HasSuffix(line, "|") && !strings.HasSuffix(line, `\|`) {
		line = line[:len(line)-1]
	}
	var cells []string
	var cur strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' && i+1 < len(line) {
			cur.WriteByte(c)
			cur.WriteByte(line[i+1])
			i++
			continue
		}
		if c == '|' {
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	cells = append(cells, strings.TrimSpace(cur.String()))
	return cells
}

// parseDelimiterRow reports whether line is a GFM table delimiter row,
// returning the alignment inferred for each column.
func parseDelimiterRow(line string) ([]Align, bool) {
	cells := splitTableRow(line)
	if len(cells) == 0 {
		return nil, false
	}
	aligns := make([]Align, len(cells))
	for i, cell := range cells {
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		dashes := cell
		if left {
			dashes = dashes[1:]
		}
		if right {
			dashes = strings.TrimSuffix(dashes, ":")
		}
		if dashes == "" || strings.Trim(dashes, "-") != "" {
			return nil, false
		}
		switch {
		case left && right:
			aligns[i] = AlignCenter
		case left:
			aligns[i] = AlignLeft
		case right:
			aligns[i] = AlignRight
		default:
			aligns[i] = AlignNone
		}
	}
	return aligns, true
}
