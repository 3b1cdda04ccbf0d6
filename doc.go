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

// Package markdown converts Markdown source text into HTML.
//
// It implements CommonMark block and inline structure together with two
// GitHub Flavored Markdown extensions, pipe tables and strikethrough.
// Parsing proceeds in two phases: [Parse] partitions a document into a tree
// of [Block] nodes (and collects link reference definitions along the way),
// and [ParseInlines] walks each leaf block's text to populate [Inline]
// children such as emphasis, links, and code spans. [Render] serializes the
// resulting tree to HTML. [Markdown] ties the three stages together behind a
// single call.
package markdown
