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

func (k BlockKind) String() string {
	switch k {
	case ParagraphKind:
		return "Paragraph"
	case ThematicBreakKind:
		return "ThematicBreak"
	case ATXHeadingKind:
		return "ATXHeading"
	case SetextHeadingKind:
		return "SetextHeading"
	case IndentedCodeBlockKind:
		return "IndentedCodeBlock"
	case FencedCodeBlockKind:
		return "FencedCodeBlock"
	case HTMLBlockKind:
		return "HTMLBlock"
	case LinkReferenceDefinitionKind:
		return "LinkReferenceDefinition"
	case BlockQuoteKind:
		return "BlockQuote"
	case UnorderedListKind:
		return "UnorderedList"
	case OrderedListKind:
		return "OrderedList"
	case ListItemKind:
		return "ListItem"
	case BlankLineKind:
		return "BlankLine"
	case TableKind:
		return "Table"
	case TableHeadKind:
		return "TableHead"
	case TableBodyKind:
		return "TableBody"
	case TableRowKind:
		return "TableRow"
	case TableHeadCellKind:
		return "TableHeadCell"
	case TableBodyCellKind:
		return "TableBodyCell"
	case documentKind:
		return "document"
	default:
		return "BlockKind(0)"
	}
}

func (k InlineKind) String() string {
	switch k {
	case TextKind:
		return "Text"
	case SoftLineBreakKind:
		return "SoftLineBreak"
	case HardLineBreakKind:
		return "HardLineBreak"
	case EscapeKind:
		return "Escape"
	case EntityKind:
		return "Entity"
	case InlineHTMLKind:
		return "InlineHTML"
	case CodeSpanKind:
		return "CodeSpan"
	case LinkKind:
		return "Link"
	case ImageKind:
		return "Image"
	case AutoLinkKind:
		return "AutoLink"
	case EmphasisKind:
		return "Emphasis"
	case StrongKind:
		return "Strong"
	case StrikethroughKind:
		return "Strikethrough"
	default:
		return "InlineKind(0)"
	}
}
