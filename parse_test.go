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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cmarkgo/gfmark/internal/normhtml"
)

func renderString(t *testing.T, source string) string {
	t.Helper()
	doc := Parse([]byte(source))
	ParseInlines(doc)
	return Render(doc, Config{KeepHTML: true})
}

func TestParseBlocks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Paragraph",
			input: "Hello, World!\n",
			want:  "<p>Hello, World!</p>\n",
		},
		{
			name:  "ATXHeading",
			input: "# Title\n",
			want:  "<h1>Title</h1>\n",
		},
		{
			name:  "SetextHeading",
			input: "Title\n=====\n",
			want:  "<h1>Title</h1>\n",
		},
		{
			name:  "ThematicBreak",
			input: "---\n",
			want:  "<hr />\n",
		},
		{
			name:  "IndentedCodeBlock",
			input: "    code line\n",
			want:  "<pre><code>code line\n</code></pre>\n",
		},
		{
			name:  "FencedCodeBlock",
			input: "```go\nfunc main() {}\n```\n",
			want:  `<pre><code class="language-go">func main() {}` + "\n</code></pre>\n",
		},
		{
			name:  "FencedCodeBlockNoLang",
			input: "```\nplain\n```\n",
			want:  "<pre><code>plain\n</code></pre>\n",
		},
		{
			name:  "BlockQuote",
			input: "> quoted text\n",
			want:  "<blockquote>\n<p>quoted text</p>\n</blockquote>\n",
		},
		{
			name:  "BlockQuoteLazyContinuation",
			input: "> first line\nsecond line\n",
			want:  "<blockquote>\n<p>first line\nsecond line</p>\n</blockquote>\n",
		},
		{
			name:  "TightUnorderedList",
			input: "- one\n- two\n- three\n",
			want:  "<ul>\n<li>one</li>\n<li>two</li>\n<li>three</li>\n</ul>\n",
		},
		{
			name:  "LooseUnorderedList",
			input: "- one\n\n- two\n",
			want:  "<ul>\n<li>\n<p>one</p>\n</li>\n<li>\n<p>two</p>\n</li>\n</ul>\n",
		},
		{
			name:  "OrderedListCustomStart",
			input: "3. three\n4. four\n",
			want:  `<ol start="3">` + "\n<li>three</li>\n<li>four</li>\n</ol>\n",
		},
		{
			name:  "ParagraphInterruptedByHeading",
			input: "para text\n# heading\n",
			want:  "<p>para text</p>\n<h1>heading</h1>\n",
		},
		{
			name:  "HTMLBlockType6",
			input: "<div>\ncontent\n</div>\n\npara\n",
			want:  "<div>\ncontent\n</div>\n<p>para</p>\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := renderString(t, test.input)
			gotNorm := normhtml.NormalizeHTML([]byte(got))
			wantNorm := normhtml.NormalizeHTML([]byte(test.want))
			if diff := cmp.Diff(string(wantNorm), string(gotNorm), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("render(%q) mismatch (-want +got):\n%s\nfull output: %q", test.input, diff, got)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"CRLF", "a\r\nb\r\n", "a\nb"},
		{"CR", "a\rb\r", "a\nb"},
		{"NUL", "a\x00b\n", "a�b"},
		{"LeadingTab", "\tfoo\n", "    foo"},
		{"BlankWhitespaceLine", "a\n   \nb\n", "a\n\nb"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := string(normalize([]byte(test.input)))
			if got != test.want {
				t.Errorf("normalize(%q) = %q; want %q", test.input, got, test.want)
			}
		})
	}
}
