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

func TestParseThematicBreak(t *testing.T) {
	tests := []struct {
		line   string
		wantN  int
		wantOK bool
	}{
		{"", 0, false},
		{"---", 3, true},
		{"***", 3, true},
		{"___", 3, true},
		{"+++", 0, false},
		{"===", 0, false},
		{"--", 0, false},
		{"**", 0, false},
		{"__", 0, false},
		{"- - -", 3, true},
		{"**  * ** * ** * **", 11, true},
		{"_ _ _ _ a", 0, false},
		{"a------", 0, false},
		{"---a---", 0, false},
		{"*-*", 0, false},
	}
	for _, test := range tests {
		n, ok := parseThematicBreak([]byte(test.line))
		if n != test.wantN || ok != test.wantOK {
			t.Errorf("parseThematicBreak(%q) = %d, %v; want %d, %v", test.line, n, ok, test.wantN, test.wantOK)
		}
	}
}

func TestParseATXHeading(t *testing.T) {
	tests := []struct {
		line        string
		wantLevel   int
		wantContent string
		wantOK      bool
	}{
		{"# foo", 1, "foo", true},
		{"## foo", 2, "foo", true},
		{"### foo", 3, "foo", true},
		{"###### foo", 6, "foo", true},
		{"####### foo", 0, "", false},
		{"#5 bolt", 0, "", false},
		{"#hashtag", 0, "", false},
		{"# foo ##", 1, "foo", true},
		{"# foo ##################################", 1, "foo", true},
		{"###   ", 3, "", true},
		{"#", 1, "", true},
	}
	for _, test := range tests {
		level, content, ok := parseATXHeading([]byte(test.line))
		if level != test.wantLevel || string(content) != test.wantContent || ok != test.wantOK {
			t.Errorf("parseATXHeading(%q) = %d, %q, %v; want %d, %q, %v",
				test.line, level, content, ok, test.wantLevel, test.wantContent, test.wantOK)
		}
	}
}

func TestParseSetextUnderline(t *testing.T) {
	tests := []struct {
		line      string
		wantLevel int
		wantOK    bool
	}{
		{"===", 1, true},
		{"---", 2, true},
		{"- - -", 0, false},
		{"====", 1, true},
		{"  ", 0, false},
		{"=-", 0, false},
	}
	for _, test := range tests {
		level, ok := parseSetextUnderline([]byte(test.line))
		if level != test.wantLevel || ok != test.wantOK {
			t.Errorf("parseSetextUnderline(%q) = %d, %v; want %d, %v", test.line, level, ok, test.wantLevel, test.wantOK)
		}
	}
}

func TestParseCodeFence(t *testing.T) {
	tests := []struct {
		line     string
		wantCh   byte
		wantN    int
		wantInfo string
		wantOK   bool
	}{
		{"```", '`', 3, "", true},
		{"````go", '`', 4, "go", true},
		{"~~~", '~', 3, "", true},
		{"``` go ", '`', 3, "go", true},
		{"``", 0, 0, "", false},
		{"``` go ` bar", 0, 0, "", false},
	}
	for _, test := range tests {
		ch, n, info, ok := parseCodeFence([]byte(test.line))
		if ch != test.wantCh || n != test.wantN || string(info) != test.wantInfo || ok != test.wantOK {
			t.Errorf("parseCodeFence(%q) = %q, %d, %q, %v; want %q, %d, %q, %v",
				test.line, ch, n, info, ok, test.wantCh, test.wantN, test.wantInfo, test.wantOK)
		}
	}
}

func TestParseListMarker(t *testing.T) {
	tests := []struct {
		line        string
		wantEnd     int
		wantOrdered bool
		wantDelim   byte
		wantNum     int
		wantOK      bool
	}{
		{"- foo", 1, false, '-', 0, true},
		{"* foo", 1, false, '*', 0, true},
		{"+ foo", 1, false, '+', 0, true},
		{"-foo", 0, false, 0, 0, false},
		{"1. foo", 2, true, '.', 1, true},
		{"10) foo", 3, true, ')', 10, true},
		{"1.foo", 0, false, 0, 0, false},
		{"foo", 0, false, 0, 0, false},
	}
	for _, test := range tests {
		m, ok := parseListMarker([]byte(test.line))
		if ok != test.wantOK {
			t.Errorf("parseListMarker(%q) ok = %v; want %v", test.line, ok, test.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if m.end != test.wantEnd || m.ordered != test.wantOrdered || m.delim != test.wantDelim || m.num != test.wantNum {
			t.Errorf("parseListMarker(%q) = %+v; want end=%d ordered=%v delim=%c num=%d",
				test.line, m, test.wantEnd, test.wantOrdered, test.wantDelim, test.wantNum)
		}
	}
}
