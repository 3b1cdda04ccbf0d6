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

// Markdown converts Markdown source into HTML in a single call: it runs
// [Parse], then [ParseInlines], then [Render] with cfg.
func Markdown(source []byte, cfg Config) string {
	doc := Parse(source)
	ParseInlines(doc)
	return Render(doc, cfg)
}

// DefaultConfig is the Config used by the command line tool when no
// flags are given: raw HTML is passed through, matching CommonMark's
// reference behavior.
var DefaultConfig = Config{KeepHTML: true}
