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
	"fmt"
	"strings"
)

// Config controls how [Render] turns a parsed [Document] into HTML.
type Config struct {
	// KeepHTML passes raw HTML blocks and inline HTML tags through to
	// the output unchanged (aside from GFM's fixed tag filter), matching
	// CommonMark's default behavior. When false, raw HTML is rendered as
	// escaped text instead.
	KeepHTML bool
}

func (c Config) keepHTML() bool {
	return c.KeepHTML
}

type renderer struct {
	cfg Config
}

// Render serializes doc to HTML per cfg. Callers typically run
// [ParseInlines] on doc first; any leaf block whose InlineChildren are
// still empty renders as an empty element.
func Render(doc *Document, cfg Config) string {
	r := &renderer{cfg: cfg}
	var buf []byte
	buf = r.appendBlocks(buf, doc.Blocks(), true)
	return string(buf)
}

func (r *renderer) appendBlocks(dst []byte, blocks []*Block, wrapParagraphs bool) []byte {
	for _, b := range blocks {
		dst = r.appendBlock(dst, b, wrapParagraphs)
	}
	return dst
}

func (r *renderer) appendBlock(dst []byte, b *Block, wrapParagraphs bool) []byte {
	switch b.Kind() {
	case ParagraphKind:
		if !wrapParagraphs {
			dst = r.appendInlines(dst, b.InlineChildren())
			dst = append(dst, '\n')
			return dst
		}
		dst = append(dst, "<p>"...)
		dst = r.appendInlines(dst, b.InlineChildren())
		dst = append(dst, "</p>\n"...)
	case ATXHeadingKind, SetextHeadingKind:
		dst = append(dst, fmt.Sprintf("<h%d>", b.HeadingLevel())...)
		dst = r.appendInlines(dst, b.InlineChildren())
		dst = append(dst, fmt.Sprintf("</h%d>\n", b.HeadingLevel())...)
	case ThematicBreakKind:
		dst = append(dst, "<hr />\n"...)
	case IndentedCodeBlockKind:
		dst = append(dst, "<pre><code>"...)
		dst = appendEscapedHTML(dst, b.CodeText())
		dst = append(dst, "</code></pre>\n"...)
	case FencedCodeBlockKind:
		dst = append(dst, "<pre><code"...)
		if lang := fenceLanguage(b.InfoString()); lang != "" {
			dst = append(dst, ` class="language-`...)
			dst = appendEscapedHTML(dst, lang)
			dst = append(dst, '"')
		}
		dst = append(dst, '>')
		dst = appendEscapedHTML(dst, b.CodeText())
		dst = append(dst, "</code></pre>\n"...)
	case HTMLBlockKind:
		if r.cfg.keepHTML() {
			dst = append(dst, b.CodeText()...)
		} else {
			dst = appendEscapedHTML(dst, b.CodeText())
		}
	case LinkReferenceDefinitionKind, BlankLineKind:
		// Renders as nothing.
	case BlockQuoteKind:
		dst = append(dst, "<blockquote>\n"...)
		dst = r.appendBlocks(dst, b.BlockChildren(), true)
		dst = append(dst, "</blockquote>\n"...)
	case UnorderedListKind:
		dst = append(dst, "<ul>\n"...)
		dst = r.appendListItems(dst, b)
		dst = append(dst, "</ul>\n"...)
	case OrderedListKind:
		if b.Start() == 1 {
			dst = append(dst, "<ol>\n"...)
		} else {
			dst = append(dst, fmt.Sprintf(`<ol start="%d">`, b.Start())...)
			dst = append(dst, '\n')
		}
		dst = r.appendListItems(dst, b)
		dst = append(dst, "</ol>\n"...)
	case TableKind:
		dst = append(dst, "<table>\n"...)
		dst = r.appendBlocks(dst, b.BlockChildren(), true)
		dst = append(dst, "</table>\n"...)
	case TableHeadKind:
		dst = append(dst, "<thead>\n"...)
		dst = r.appendBlocks(dst, b.BlockChildren(), true)
		// A row never ends in '\n' (see TableRowKind below); thead supplies it.
		if len(dst) == 0 || dst[len(dst)-1] != '\n' {
			dst = append(dst, '\n')
		}
		dst = append(dst, "</thead>\n"...)
	case TableBodyKind:
		dst = append(dst, "<tbody>\n"...)
		dst = r.appendBlocks(dst, b.BlockChildren(), true)
		dst = append(dst, "</tbody>"...)
	case TableRowKind:
		dst = append(dst, "<tr>\n"...)
		dst = r.appendBlocks(dst, b.BlockChildren(), true)
		dst = append(dst, "</tr>"...)
	case TableHeadCellKind:
		dst = r.appendTableCell(dst, b, "th")
	case TableBodyCellKind:
		dst = r.appendTableCell(dst, b, "td")
	}
	return dst
}

func (r *renderer) appendTableCell(dst []byte, b *Block, tag string) []byte {
	dst = append(dst, '<')
	dst = append(dst, tag...)
	if align := b.Align().String(); align != "" {
		dst = append(dst, fmt.Sprintf(` align="%s"`, align)...)
	}
	dst = append(dst, '>')
	dst = r.appendInlines(dst, b.InlineChildren())
	dst = append(dst, '<', '/')
	dst = append(dst, tag...)
	dst = append(dst, ">\n"...)
	return dst
}

// appendListItems renders a list's items, switching each paragraph child
// between wrapped and unwrapped rendering based on the list's looseness.
func (r *renderer) appendListItems(dst []byte, list *Block) []byte {
	for _, item := range list.BlockChildren() {
		dst = append(dst, "<li>"...)
		children := item.BlockChildren()
		wrap := item.IsLoose()
		for _, child := range children {
			if !wrap && child.Kind() != ParagraphKind {
				dst = append(dst, '\n')
			}
			dst = r.appendBlock(dst, child, wrap)
		}
		dst = append(dst, "</li>\n"...)
	}
	return dst
}

func fenceLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return decodeEntities(removeBackslashEscapes(fields[0]))
}

func (r *renderer) appendInlines(dst []byte, inlines []*Inline) []byte {
	for _, in := range inlines {
		dst = r.appendInline(dst, in)
	}
	return dst
}

func (r *renderer) appendInline(dst []byte, in *Inline) []byte {
	switch in.Kind() {
	case TextKind:
		dst = appendEscapedHTML(dst, in.Text())
	case SoftLineBreakKind:
		dst = append(dst, '\n')
	case HardLineBreakKind:
		dst = append(dst, "<br />\n"...)
	case EscapeKind:
		dst = appendEscapedHTML(dst, in.Text())
	case EntityKind:
		dst = appendEscapedHTML(dst, in.Text())
	case InlineHTMLKind:
		if r.cfg.keepHTML() {
			dst = append(dst, filterDangerousTag(in.Text())...)
		} else {
			dst = appendEscapedHTML(dst, in.Text())
		}
	case CodeSpanKind:
		dst = append(dst, "<code>"...)
		dst = appendEscapedHTML(dst, in.Text())
		dst = append(dst, "</code>"...)
	case LinkKind:
		dst = append(dst, `<a href="`...)
		dst = appendEscapedHTML(dst, normalizeURI(in.URL()))
		dst = append(dst, '"')
		if in.Title() != "" {
			dst = append(dst, ` title="`...)
			dst = appendEscapedHTML(dst, decodeEntities(in.Title()))
			dst = append(dst, '"')
		}
		dst = append(dst, '>')
		dst = r.appendInlines(dst, in.Children())
		dst = append(dst, "</a>"...)
	case ImageKind:
		dst = append(dst, `<img src="`...)
		dst = appendEscapedHTML(dst, normalizeURI(in.URL()))
		dst = append(dst, `" alt="`...)
		dst = appendEscapedHTML(dst, altText(in.Children()))
		dst = append(dst, '"')
		if in.Title() != "" {
			dst = append(dst, ` title="`...)
			dst = appendEscapedHTML(dst, decodeEntities(in.Title()))
			dst = append(dst, '"')
		}
		dst = append(dst, " />"...)
	case AutoLinkKind:
		dst = append(dst, `<a href="`...)
		dst = appendEscapedHTML(dst, normalizeURI(in.URL()))
		dst = append(dst, `">`...)
		dst = appendEscapedHTML(dst, in.Text())
		dst = append(dst, "</a>"...)
	case EmphasisKind:
		dst = append(dst, "<em>"...)
		dst = r.appendInlines(dst, in.Children())
		dst = append(dst, "</em>"...)
	case StrongKind:
		dst = append(dst, "<strong>"...)
		dst = r.appendInlines(dst, in.Children())
		dst = append(dst, "</strong>"...)
	case StrikethroughKind:
		dst = append(dst, "<del>"...)
		dst = r.appendInlines(dst, in.Children())
		dst = append(dst, "</del>"...)
	}
	return dst
}

// altText flattens an image's children into plain text for the alt
// attribute, dropping all markup recursively.
func altText(inlines []*Inline) string {
	var b strings.Builder
	var walk func([]*Inline)
	walk = func(ins []*Inline) {
		for _, in := range ins {
			switch in.Kind() {
			case TextKind, EscapeKind, EntityKind, CodeSpanKind, AutoLinkKind:
				b.WriteString(in.Text())
			case SoftLineBreakKind:
				b.WriteByte('\n')
			case HardLineBreakKind:
				b.WriteByte('\n')
			default:
				walk(in.Children())
			}
		}
	}
	walk(inlines)
	return b.String()
}
