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

func TestContainersEndToEnd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "NestedBlockQuote",
			input: "> outer\n> > inner\n",
			want:  "<blockquote>\n<p>outer</p>\n<blockquote>\n<p>inner</p>\n</blockquote>\n</blockquote>\n",
		},
		{
			name:  "OrderedListStartOneInterrupts",
			input: "para\n1. item\n",
			want:  "<p>para</p>\n<ol>\n<li>item</li>\n</ol>\n",
		},
		{
			name:  "OrderedListStartNotOneDoesNotInterrupt",
			input: "para\n2. item\n",
			want:  "<p>para\n2. item</p>\n",
		},
		{
			name:  "ListItemWithMultipleParagraphs",
			input: "- one\n\n  still one\n- two\n",
			want: "<ul>\n<li>\n<p>one</p>\n<p>still one</p>\n</li>\n<li>\n<p>two</p>\n</li>\n</ul>\n",
		},
		{
			name:  "NestedList",
			input: "- outer\n  - inner\n",
			want:  "<ul>\n<li>outer\n<ul>\n<li>inner</li>\n</ul>\n</li>\n</ul>\n",
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
