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

func TestNormalizeURI(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/foo", "/foo"},
		{"/foo bar", "/foo%20bar"},
		{"https://example.com/a?b=c&d=e", "https://example.com/a?b=c&d=e"},
		{"/foo%20bar", "/foo%20bar"},
	}
	for _, test := range tests {
		if got := normalizeURI(test.input); got != test.want {
			t.Errorf("normalizeURI(%q) = %q; want %q", test.input, got, test.want)
		}
	}
}

func TestNormalizeURIIdempotent(t *testing.T) {
	inputs := []string{"/foo bar/baz", "/a+b=c", "héllo/wörld"}
	for _, in := range inputs {
		once := normalizeURI(in)
		twice := normalizeURI(once)
		if once != twice {
			t.Errorf("normalizeURI(normalizeURI(%q)) = %q; want %q (idempotent)", in, twice, once)
		}
	}
}

func TestFilterDangerousTag(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<title>", "&lt;title>"},
		{"<TITLE>", "&lt;TITLE>"},
		{"</script>", "&lt;/script>"},
		{"<strong>", "<strong>"},
		{"<em>", "<em>"},
	}
	for _, test := range tests {
		if got := filterDangerousTag(test.input); got != test.want {
			t.Errorf("filterDangerousTag(%q) = %q; want %q", test.input, got, test.want)
		}
	}
}
