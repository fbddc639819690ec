// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzutf8

/*
Package lzutf8 implements LZUTF8 compression and decompression of UTF-8 text.

Repeated byte runs are replaced with back-references (pointers) to earlier output.
A pointer is 2 or 3 bytes:

	110lllll 0ddddddd            length 4..31, distance 1..127
	111lllll 0ddddddd dddddddd   length 4..31, distance 128..32767

The pair "11xxxxxx 0xxxxxxx" never occurs in valid UTF-8, so literals need no escape
and the stream has no header. As a consequence, decompressing plain UTF-8 text that was
never compressed returns it unchanged.

# Compress

	out := lzutf8.Compress(text)
	s := lzutf8.CompressString("text text text text")

From an io.Reader:

	out, err := lzutf8.CompressFromReader(r)

# Decompress

Options may be nil (no limits):

	text, err := lzutf8.Decompress(compressed, nil)
	text, err := lzutf8.Decompress(compressed, &lzutf8.DecompressOptions{MaxOutputSize: 1 << 20})

To append to caller-managed memory:

	buf, err = lzutf8.AppendDecompress(buf, compressed)

From an io.Reader:

	text, err := lzutf8.DecompressFromReader(r, &lzutf8.DecompressOptions{MaxInputSize: 1 << 20})

A pointer that reaches before the start of the output, or a 3-byte pointer truncated by
the end of input, returns ErrCorruptStream. The format carries no checksum.
*/
package lzutf8
