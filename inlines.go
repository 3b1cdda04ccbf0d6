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

import "unsafe"

// Inline represents a Markdown inline content element: text, an emphasis
// run, a link, and so on. Inline trees are rooted at a leaf [Block] and are
// produced by [ParseInlines].
type Inline struct {
	kind InlineKind
	span Span

	text  string // TextKind, EscapeKind, EntityKind, InlineHTMLKind, CodeSpanKind, AutoLinkKind (link text)
	url   string // LinkKind, ImageKind, AutoLinkKind
	title string // LinkKind, ImageKind

	children []*Inline
}

// Kind returns the type of the inline node, or zero if the node is nil.
func (in *Inline) Kind() InlineKind {
	if in == nil {
		return 0
	}
	return in.kind
}

// Span returns the node's byte range within the owning leaf block's text,
// or an invalid span if the node is nil. Nodes built while resolving
// links and delimiter runs (LinkKind, ImageKind, EmphasisKind, StrongKind,
// StrikethroughKind, the text left from a partly used delimiter run, and
// the text of an unmatched '[') carry a zero Span, not their source range.
func (in *Inline) Span() Span {
	if in == nil {
		return NullSpan()
	}
	return in.span
}

// Text returns the kind-specific text payload of the node: the literal
// text of a TextKind node, the decoded character of an EscapeKind or
// EntityKind node, the raw markup of an InlineHTMLKind node, the
// normalized content of a CodeSpanKind node, or the link text of an
// AutoLinkKind node.
func (in *Inline) Text() string {
	if in == nil {
		return ""
	}
	return in.text
}

// URL returns the destination of a LinkKind, ImageKind, or AutoLinkKind
// node.
func (in *Inline) URL() string {
	if in == nil {
		return ""
	}
	return in.url
}

// Title returns the title of a LinkKind or ImageKind node.
func (in *Inline) Title() string {
	if in == nil {
		return ""
	}
	return in.title
}

// ChildCount returns the number of children the node has.
func (in *Inline) ChildCount() int {
	if in == nil {
		return 0
	}
	return len(in.children)
}

// Child returns the i'th child of the node.
func (in *Inline) Child(i int) *Inline {
	return in.children[i]
}

// Children returns the node's children. The returned slice must not be
// modified.
func (in *Inline) Children() []*Inline {
	if in == nil {
		return nil
	}
	return in.children
}

// AsNode converts the inline node to a [Node].
func (in *Inline) AsNode() Node {
	if in == nil {
		return Node{}
	}
	return Node{typ: nodeTypeInline, ptr: unsafe.Pointer(in)}
}

// InlineKind is an enumeration of values returned by [*Inline.Kind].
type InlineKind uint16

const (
	// TextKind is plain text. Text returns the literal content.
	TextKind InlineKind = 1 + iota
	// SoftLineBreakKind is a line break inside a paragraph that is not a HardLineBreakKind.
	SoftLineBreakKind
	// HardLineBreakKind is a line break rendered as <br />.
	HardLineBreakKind
	// EscapeKind is a backslash-escaped punctuation character. Text returns the escaped character.
	EscapeKind
	// EntityKind is a decoded HTML entity or numeric character reference. Text returns the decoded text.
	EntityKind
	// InlineHTMLKind is raw inline HTML. Text returns the raw markup.
	InlineHTMLKind
	// CodeSpanKind is a code span. Text returns its normalized content.
	CodeSpanKind
	// LinkKind is a link. Children holds the link text, URL returns the destination, Title returns the title.
	LinkKind
	// ImageKind is an image. Children holds the alt-text source, URL returns the destination, Title returns the title.
	ImageKind
	// AutoLinkKind is an autolink. Text returns the link text, URL returns the destination.
	AutoLinkKind
	// EmphasisKind wraps emphasized content (<em>).
	EmphasisKind
	// StrongKind wraps strongly emphasized content (<strong>).
	StrongKind
	// StrikethroughKind wraps struck-through content (<del>), a GFM extension.
	StrikethroughKind
)
