// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

package syntax

import "fmt"

// Span delimits a text range as a byte offset and length.
type Span struct {
	Start, Length int
}

func (s Span) End() int {
	return s.Start + s.Length
}

func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.Start, s.End())
}

// SpanFromBounds builds a Span from start/end offsets.
func SpanFromBounds(start, end int) Span {
	return Span{Start: start, Length: end - start}
}
