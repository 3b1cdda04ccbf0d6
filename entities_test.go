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

func TestDecodeEntity(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantDecoded string
		wantN       int
		wantOK      bool
	}{
		{"NamedAmp", "&amp;", "&", 5, true},
		{"NamedCopy", "&copy;", "©", 6, true},
		{"DecimalA", "&#65;", "A", 5, true},
		{"HexLowerA", "&#x41;", "A", 6, true},
		{"HexUpperA", "&#X41;", "A", 6, true},
		{"NullCodepoint", "&#0;", "�", 4, true},
		{"OutOfRange", "&#x110000;", "�", 10, true},
		{"Surrogate", "&#xD800;", "�", 8, true},
		{"Unknown", "&notreal;", "", 0, false},
		{"NoSemicolon", "&amp", "", 0, false},
		{"NotAnEntity", "plain", "", 0, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			decoded, n, ok := decodeEntity(test.input)
			if decoded != test.wantDecoded || n != test.wantN || ok != test.wantOK {
				t.Errorf("decodeEntity(%q) = %q, %d, %v; want %q, %d, %v",
					test.input, decoded, n, ok, test.wantDecoded, test.wantN, test.wantOK)
			}
		})
	}
}
