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

// The markdown command renders a CommonMark/GFM document to HTML.
//
// Usage:
//
//	markdown [-k=false] [file ...]
//
// With no file arguments, markdown reads from stdin. With one or more
// file arguments, it concatenates their rendered output to stdout in
// the order given.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/google/renameio"
	"github.com/spf13/pflag"

	"github.com/cmarkgo/gfmark"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("markdown", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	keepHTML := fs.BoolP("keep-html", "k", true, "pass raw HTML through instead of escaping it")
	output := fs.StringP("output", "o", "", "write HTML to this file atomically instead of stdout")
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg := markdown.Config{KeepHTML: *keepHTML}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	if *output == "" {
		for _, path := range paths {
			if err := renderPath(path, stdin, stdout, cfg); err != nil {
				fmt.Fprintf(stderr, "markdown: %v\n", err)
				return 1
			}
		}
		return 0
	}

	var buf bytes.Buffer
	for _, path := range paths {
		if err := renderPath(path, stdin, &buf, cfg); err != nil {
			fmt.Fprintf(stderr, "markdown: %v\n", err)
			return 1
		}
	}
	if err := writeFileAtomically(*output, buf.Bytes()); err != nil {
		fmt.Fprintf(stderr, "markdown: %v\n", err)
		return 1
	}
	return 0
}

func renderPath(path string, stdin io.Reader, stdout io.Writer, cfg markdown.Config) error {
	var source []byte
	var err error
	if path == "-" {
		source, err = io.ReadAll(stdin)
	} else {
		source, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, markdown.Markdown(source, cfg))
	return err
}

// writeFileAtomically writes data to path via a temporary file in the same
// directory, so a reader never observes a partially written file and a
// crash mid-write never clobbers an existing one.
func writeFileAtomically(path string, data []byte) (rerr error) {
	pf, err := renameio.TempFile("", path)
	if err != nil {
		return err
	}
	defer pf.Cleanup()
	if _, err := pf.Write(data); err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}
