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

import "testing"

func TestHTMLBlockEndToEnd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "ScriptBlock",
			input: "<script>\nvar x = 1;\n</script>\n\npara\n",
			want:  "<script>\nvar x = 1;\n</script>\n<p>para</p>\n",
		},
		{
			name:  "Comment",
			input: "<!-- a\ncomment -->\n\npara\n",
			want:  "<!-- a\ncomment -->\n<p>para</p>\n",
		},
		{
			name:  "Type6DoesNotConsumeBlankLine",
			input: "<div>\nfoo\n</div>\n\npara\n",
			want:  "<div>\nfoo\n</div>\n<p>para</p>\n",
		},
		{
			name:  "Type7GenericTag",
			input: "<a href=\"foo\">\n\npara\n",
			want:  "<a href=\"foo\">\n<p>para</p>\n",
		},
		{
			name:  "Type7DoesNotInterruptParagraph",
			input: "para text\n<a href=\"foo\">\n",
			want:  "<p>para text\n<a href=\"foo\"></p>\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := renderString(t, test.input); got != test.want {
				t.Errorf("render(%q) = %q; want %q", test.input, got, test.want)
			}
		})
	}
}
