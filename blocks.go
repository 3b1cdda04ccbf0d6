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
	"unsafe"
)

// joinLinesNL joins lines with "\n" and appends a final "\n", the form
// CommonMark code block content is rendered in.
func joinLinesNL(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

// A Block is a structural element of a Markdown document: a heading, a
// paragraph, a list, and so on. Blocks form a tree rooted at a
// [Document]'s root. Container blocks (lists, list items, block quotes,
// tables and their rows) hold block children; leaf blocks (paragraphs,
// headings, table cells) hold a text payload that [ParseInlines] later
// turns into Inline children. Code and HTML blocks keep their raw content
// and get no Inline children.
type Block struct {
	kind BlockKind
	span Span

	blockChildren  []*Block
	inlineChildren []*Inline

	// text is the block's cleaned textual payload prior to inline parsing:
	// a paragraph's or heading's content, a fenced code block's info
	// string, or an HTML block's raw lines joined by "\n".
	text string

	// code holds a code block's body, one entry per source line, with
	// indentation already stripped.
	code []string

	level int // heading level, 1-6

	fenceChar byte
	fenceLen  int
	indent    int // fenced code: columns to strip from each content line

	marker string // list item's marker text, e.g. "-" or "3."
	start  int    // ordered list's starting number
	loose  bool   // list or list item looseness

	label string // link reference definition: normalized label
	url   string
	title string

	aligns []Align // TableKind: per-column alignment
	align  Align   // table cell: this cell's alignment

	lastLineBlank bool
}

// Kind returns the type of the block, or zero if the block is nil.
func (b *Block) Kind() BlockKind {
	if b == nil {
		return 0
	}
	return b.kind
}

// Span returns the block's byte range within the owning [Document]'s
// Source, or an invalid span if the block is nil.
func (b *Block) Span() Span {
	if b == nil {
		return NullSpan()
	}
	return b.span
}

// ChildCount returns the number of children the block has.
func (b *Block) ChildCount() int {
	switch {
	case b == nil:
		return 0
	case len(b.blockChildren) > 0:
		return len(b.blockChildren)
	default:
		return len(b.inlineChildren)
	}
}

// Child returns the i'th child of the block as a [Node].
func (b *Block) Child(i int) Node {
	if len(b.blockChildren) > 0 {
		return b.blockChildren[i].AsNode()
	}
	return b.inlineChildren[i].AsNode()
}

// BlockChildren returns the block's block-level children.
func (b *Block) BlockChildren() []*Block {
	if b == nil {
		return nil
	}
	return b.blockChildren
}

// InlineChildren returns the block's inline children, populated after
// [ParseInlines] has run.
func (b *Block) InlineChildren() []*Inline {
	if b == nil {
		return nil
	}
	return b.inlineChildren
}

// Text returns the block's raw text payload prior to inline parsing.
func (b *Block) Text() string {
	if b == nil {
		return ""
	}
	return b.text
}

// HeadingLevel returns the 1-based level of an ATXHeadingKind or
// SetextHeadingKind block, or zero otherwise.
func (b *Block) HeadingLevel() int {
	switch b.Kind() {
	case ATXHeadingKind, SetextHeadingKind:
		return b.level
	default:
		return 0
	}
}

// InfoString returns the raw (still escaped) info string of a
// FencedCodeBlockKind block.
func (b *Block) InfoString() string {
	if b.Kind() != FencedCodeBlockKind {
		return ""
	}
	return b.text
}

// CodeText returns the body of an IndentedCodeBlockKind or
// FencedCodeBlockKind block, or an HTMLBlockKind block's raw source, with
// a trailing newline as CommonMark requires for non-empty code blocks.
func (b *Block) CodeText() string {
	switch b.Kind() {
	case IndentedCodeBlockKind, FencedCodeBlockKind:
		if len(b.code) == 0 {
			return ""
		}
		return joinLinesNL(b.code)
	case HTMLBlockKind:
		return b.text
	default:
		return ""
	}
}

// IsOrdered reports whether the block is an ordered list.
func (b *Block) IsOrdered() bool {
	return b != nil && b.kind == OrderedListKind
}

// Start returns the starting number of an OrderedListKind block.
func (b *Block) Start() int {
	if b == nil || b.kind != OrderedListKind {
		return 1
	}
	return b.start
}

// IsLoose reports whether a list or list item is loose.
func (b *Block) IsLoose() bool {
	return b != nil && b.loose
}

// Marker returns the list item marker text of a ListItemKind block.
func (b *Block) Marker() string {
	if b == nil {
		return ""
	}
	return b.marker
}

// Label returns the normalized label of a LinkReferenceDefinitionKind
// block.
func (b *Block) Label() string {
	if b == nil {
		return ""
	}
	return b.label
}

// URL returns the destination of a LinkReferenceDefinitionKind block.
func (b *Block) URL() string {
	if b == nil {
		return ""
	}
	return b.url
}

// Title returns the title of a LinkReferenceDefinitionKind block.
func (b *Block) Title() string {
	if b == nil {
		return ""
	}
	return b.title
}

// Aligns returns the column alignments of a TableKind block.
func (b *Block) Aligns() []Align {
	if b == nil {
		return nil
	}
	return b.aligns
}

// Align returns the alignment of a table cell.
func (b *Block) Align() Align {
	if b == nil {
		return AlignNone
	}
	return b.align
}

func (b *Block) firstChild() *Block {
	if len(b.blockChildren) == 0 {
		return nil
	}
	return b.blockChildren[0]
}

func (b *Block) lastChild() *Block {
	if len(b.blockChildren) == 0 {
		return nil
	}
	return b.blockChildren[len(b.blockChildren)-1]
}

// AsNode converts the block to a [Node].
func (b *Block) AsNode() Node {
	if b == nil {
		return Node{}
	}
	return Node{typ: nodeTypeBlock, ptr: unsafe.Pointer(b)}
}

// BlockKind is an enumeration of values returned by [*Block.Kind].
type BlockKind uint16

const (
	// ParagraphKind is a run of text.
	ParagraphKind BlockKind = 1 + iota
	// ThematicBreakKind is a horizontal rule. It has no children.
	ThematicBreakKind
	// ATXHeadingKind is a heading introduced by one or more '#' characters.
	ATXHeadingKind
	// SetextHeadingKind is a heading underlined with '=' or '-'.
	SetextHeadingKind
	// IndentedCodeBlockKind is a code block delimited by indentation.
	IndentedCodeBlockKind
	// FencedCodeBlockKind is a code block delimited by a fence of backticks or tildes.
	FencedCodeBlockKind
	// HTMLBlockKind is a run of raw HTML, rendered verbatim.
	HTMLBlockKind
	// LinkReferenceDefinitionKind is a link reference definition. It renders as nothing.
	LinkReferenceDefinitionKind
	// BlockQuoteKind is a block quote.
	BlockQuoteKind
	// UnorderedListKind is a bulleted list.
	UnorderedListKind
	// OrderedListKind is a numbered list.
	OrderedListKind
	// ListItemKind is an item of an UnorderedListKind or OrderedListKind.
	ListItemKind
	// BlankLineKind is one or more blank lines. It renders as nothing.
	BlankLineKind
	// TableKind is a GFM pipe table.
	TableKind
	// TableHeadKind holds a TableKind's single header TableRowKind.
	TableHeadKind
	// TableBodyKind holds a TableKind's body TableRowKind children, if any.
	TableBodyKind
	// TableRowKind is a row of a TableHeadKind or TableBodyKind.
	TableRowKind
	// TableHeadCellKind is a header cell of a TableRowKind.
	TableHeadCellKind
	// TableBodyCellKind is a body cell of a TableRowKind.
	TableBodyCellKind

	// documentKind is the Kind of the root of the block tree ([Document.Root]).
	documentKind
)

// IsCode reports whether the kind is IndentedCodeBlockKind or FencedCodeBlockKind.
func (k BlockKind) IsCode() bool {
	return k == IndentedCodeBlockKind || k == FencedCodeBlockKind
}

// IsHeading reports whether the kind is ATXHeadingKind or SetextHeadingKind.
func (k BlockKind) IsHeading() bool {
	return k == ATXHeadingKind || k == SetextHeadingKind
}

// IsList reports whether the kind is UnorderedListKind or OrderedListKind.
func (k BlockKind) IsList() bool {
	return k == UnorderedListKind || k == OrderedListKind
}

// Align is a table column's alignment, inferred from its delimiter row.
type Align uint8

const (
	AlignNone Align = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// String returns the alignment's HTML attribute value, or "" for AlignNone.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return ""
	}
}

// Document is the root of a parsed Markdown document.
type Document struct {
	// Source is the normalized document text that all [Span]s in the
	// block tree are relative to.
	Source []byte
	// References holds every link reference definition collected while
	// parsing the document, keyed by normalized label.
	References ReferenceMap

	root *Block
}

// Root returns the document's root block. Its Kind is not meaningful;
// only its children matter.
func (d *Document) Root() *Block {
	if d == nil {
		return nil
	}
	return d.root
}

// Blocks returns the document's top-level block children.
func (d *Document) Blocks() []*Block {
	return d.Root().BlockChildren()
}
