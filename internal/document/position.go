// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

package document

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/apparentlymart/go-textseg/textseg"

	"github.com/svelte-tools/svelte-ls/internal/source"
)

// ByteOffsetForPos translates an LSP-style position into a byte offset
// within the document the lines were produced from.
func ByteOffsetForPos(lines source.Lines, pos Pos) (int, error) {
	if pos.Line+1 > len(lines) {
		return 0, &InvalidPosErr{Pos: pos}
	}

	return byteOffsetForLSPColumn(lines[pos.Line], pos.Column), nil
}

// byteOffsetForLSPColumn finds the byte offset of the start of the
// UTF-8 sequence representing the given LSP column of the line within
// the overall source buffer. LSP columns count UTF-16 code units, so
// the line is walked sequence by sequence while counting how many
// UTF-16 units each one would occupy. A column pointing at the second
// unit of a surrogate pair rounds down to the first, since UTF-8
// sequences are not divisible the same way.
func byteOffsetForLSPColumn(l source.Line, lspCol int) int {
	if lspCol < 0 {
		return l.Range.Start.Byte
	}

	byteCt := 0
	utf16Ct := 0
	remain := l.Bytes
	for {
		if len(remain) == 0 { // ran out of characters on the line, so given column is invalid
			return l.Range.End.Byte
		}
		if utf16Ct >= lspCol { // found it
			return l.Range.Start.Byte + byteCt
		}

		// Intentionally individual UTF-8 sequences rather than grapheme
		// clusters; an LSP position may point into the middle of a cluster.
		adv, chBytes, _ := textseg.ScanUTF8Sequences(remain, true)
		remain = remain[adv:]
		byteCt += adv
		for len(chBytes) > 0 {
			r, rl := utf8.DecodeRune(chBytes)
			chBytes = chBytes[rl:]
			c1, c2 := utf16.EncodeRune(r)
			if c1 == 0xfffd && c2 == 0xfffd {
				utf16Ct++ // codepoint fits in one 16-bit unit
			} else {
				utf16Ct += 2 // codepoint requires a surrogate pair
			}
		}
	}
}
