// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

package source

import (
	"bytes"

	"github.com/hashicorp/hcl/v2"
)

// Line is one line of a document, including any trailing end-of-line
// marker, with its byte/column range within the whole document.
type Line struct {
	Bytes []byte
	Range hcl.Range
}

func (l Line) Copy() Line {
	return Line{
		Bytes: l.Bytes,
		Range: l.Range,
	}
}

type Lines []Line

func (ls Lines) Copy() Lines {
	newLines := make(Lines, len(ls))
	for i, l := range ls {
		newLines[i] = l.Copy()
	}
	return newLines
}

// MakeSourceLines splits s into lines. Ranges carry filename so they
// can be surfaced in diagnostics verbatim. The result always contains
// at least one line; a trailing newline yields a final empty line, as
// an editor would display it.
func MakeSourceLines(filename string, s []byte) Lines {
	var ret Lines

	lastRng := hcl.Range{
		Filename: filename,
		Start:    hcl.InitialPos,
		End:      hcl.InitialPos,
	}
	sc := hcl.NewRangeScanner(s, filename, scanLines)
	for sc.Scan() {
		ret = append(ret, Line{
			Bytes: sc.Bytes(),
			Range: sc.Range(),
		})
		lastRng = sc.Range()
	}

	// the user-perceived line after the last newline
	ret = append(ret, Line{
		Bytes: []byte{},
		Range: hcl.Range{
			Filename: lastRng.Filename,
			Start:    lastRng.End,
			End:      lastRng.End,
		},
	})

	return ret
}

// scanLines is a bufio.SplitFunc returning each line INCLUDING its
// trailing newline, so that consecutive line ranges tile the document
// without gaps.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[0 : i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// StringLines converts lines to plain strings, mostly for test diffs.
func StringLines(lines Lines) []string {
	strLines := make([]string, len(lines))
	for i, l := range lines {
		strLines[i] = string(l.Bytes)
	}
	return strLines
}
