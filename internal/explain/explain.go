// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzutf8

// Package explain prints an LZUTF8 stream (compressed or not) token by token at the
// bit level, with the running decompressed size.
package explain

import (
	"fmt"
	"io"
	"strings"

	"github.com/woozymasta/lzutf8"
)

// Kind classifies a token.
type Kind int

// Token kinds.
const (
	KindLiteral  Kind = iota // a complete UTF-8 code point, 1 to 4 bytes
	KindPointer              // a 2- or 3-byte sized pointer
	KindFragment             // a byte that fits neither, assumed part of a sequence
)

// Token is one classified run of bytes in a stream.
type Token struct {
	Pos        int    // byte offset in the stream
	Raw        []byte // bytes of the token, aliasing the input
	Kind       Kind
	Length     int // pointer length, pointers only
	Distance   int // pointer distance, pointers only
	OutputSize int // decompressed size after this token
}

// Meaning describes the token the way Dump prints it.
func (t Token) Meaning() string {
	switch t.Kind {
	case KindLiteral:
		return "literal - " + string(t.Raw)
	case KindPointer:
		return fmt.Sprintf("pointer l=%d d=%d", t.Length, t.Distance)
	default:
		return "Assumed part of a sequence"
	}
}

// Bits renders the raw bytes as 0bXXXXXXXX_XXXXXXXX.
func (t Token) Bits() string {
	var b strings.Builder
	b.WriteString("0b")
	for i, c := range t.Raw {
		if i > 0 {
			b.WriteByte('_')
		}
		fmt.Fprintf(&b, "%08b", c)
	}

	return b.String()
}

// Walk classifies src and calls fn for every token in order. A UTF-8 code point is
// preferred over a pointer when both could match. Walk stops at the first error from fn.
func Walk(src []byte, fn func(Token) error) error {
	outSize := 0

	for pos := 0; pos < len(src); {
		tok := Token{Pos: pos}
		rest := src[pos:]

		if n := codePointLen(rest); n > 0 {
			tok.Kind = KindLiteral
			tok.Raw = rest[:n]
			outSize += n
		} else if n := pointerLen(rest); n > 0 {
			length, distance, _, err := lzutf8.DecodePointer(rest[:n])
			if err != nil {
				return err
			}

			tok.Kind = KindPointer
			tok.Raw = rest[:n]
			tok.Length = length
			tok.Distance = distance
			outSize += length
		} else {
			tok.Kind = KindFragment
			tok.Raw = rest[:1]
			outSize++
		}

		tok.OutputSize = outSize
		if err := fn(tok); err != nil {
			return err
		}

		pos += len(tok.Raw)
	}

	return nil
}

// Dump writes one line per token of src to w:
//
//	0042 0b11000100_00000110 pointer l=4 d=6 OS=48
func Dump(w io.Writer, src []byte) error {
	return Walk(src, func(t Token) error {
		_, err := fmt.Fprintf(w, "%04d %s %s OS=%d\n", t.Pos, t.Bits(), t.Meaning(), t.OutputSize)
		return err
	})
}

// isCont reports whether b is a UTF-8 continuation byte.
func isCont(b byte) bool {
	return b&0b1100_0000 == 0b1000_0000
}

// codePointLen returns the size of the well-formed UTF-8 sequence shape at the start of
// b, or 0. Only lead and continuation bit patterns are checked.
func codePointLen(b []byte) int {
	c1 := b[0]
	switch {
	case c1&0b1000_0000 == 0:
		return 1
	case c1&0b1110_0000 == 0b1100_0000 && len(b) >= 2 && isCont(b[1]):
		return 2
	case c1&0b1111_0000 == 0b1110_0000 && len(b) >= 3 && isCont(b[1]) && isCont(b[2]):
		return 3
	case c1&0b1111_1000 == 0b1111_0000 && len(b) >= 4 && isCont(b[1]) && isCont(b[2]) && isCont(b[3]):
		return 4
	}

	return 0
}

// pointerLen returns the size of the complete pointer at the start of b, or 0.
func pointerLen(b []byte) int {
	if len(b) < 2 || b[1]&0b1000_0000 != 0 {
		return 0
	}

	switch b[0] & 0b1110_0000 {
	case 0b1100_0000:
		return 2
	case 0b1110_0000:
		if len(b) >= 3 {
			return 3
		}
	}

	return 0
}
