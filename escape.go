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

	"go4.org/bytereplacer"
	"golang.org/x/net/html/atom"
)

// htmlEscaper replaces the five characters that must never appear
// unescaped in HTML text or attribute content.
var htmlEscaper = bytereplacer.New(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&#34;",
	`'`, "&#39;",
)

func appendEscapedHTML(dst []byte, s string) []byte {
	return htmlEscaper.AppendString(dst, s)
}

// uriUnescapedBytes holds the characters normalizeURI never percent-encodes:
// those already meaningful in a URI (reserved and unreserved characters),
// so that re-encoding an already-encoded URL is idempotent.
const uriUnescapedBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789" +
	"-._~:/?#[]@!$&'()*+,;=%"

var uriHex = "0123456789ABCDEF"

// normalizeURI percent-encodes bytes of s that may not appear literally in
// an HTML attribute or that are outside the ASCII printable range, while
// leaving already-percent-encoded sequences and reserved/unreserved URI
// characters untouched.
func normalizeURI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(uriUnescapedBytes, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(uriHex[c>>4])
		b.WriteByte(uriHex[c&0xF])
	}
	return b.String()
}

// removeBackslashEscapes drops the backslash from every backslash-escaped
// ASCII punctuation character in s, per CommonMark's backslash escape
// rule. It is applied to link destinations, link titles, and fenced
// code info strings before they are otherwise encoded or HTML-escaped.
func removeBackslashEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isASCIIPunct(s[i+1]) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// rawHTMLTagFilterNames is GFM's fixed list of tag names whose raw
// opening "<" is escaped even when raw HTML is otherwise passed through,
// closing off the most common script-injection vectors.
var rawHTMLTagFilterNames = map[atom.Atom]bool{
	atom.Title:    true,
	atom.Textarea: true,
	atom.Style:    true,
	atom.Xmp:      true,
	atom.Iframe:   true,
	atom.Noembed:  true,
	atom.Noframes: true,
	atom.Script:   true,
	atom.Plaintext: true,
}

// filterDangerousTag escapes the leading "<" of raw inline HTML whose tag
// name is in rawHTMLTagFilterNames, and leaves everything else untouched.
func filterDangerousTag(raw string) string {
	rest := strings.TrimPrefix(raw, "</")
	rest = strings.TrimPrefix(rest, "<")
	name := htmlTagNameRE.FindString(rest)
	if name == "" {
		return raw
	}
	if rawHTMLTagFilterNames[atom.Lookup([]byte(strings.ToLower(name)))] {
		return "&lt;" + raw[1:]
	}
	return raw
}
