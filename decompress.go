// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzutf8

package lzutf8

import "fmt"

// Decompress expands src. Any byte that does not start a pointer is copied through, so
// plain UTF-8 text comes back unchanged. opts may be nil.
// Returns ErrCorruptStream for a pointer that reaches before the start of the output
// or is truncated, and ErrOutputTooLarge if opts.MaxOutputSize is exceeded.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	return decompressCore(make([]byte, 0, len(src)), src, opts.maxOutput())
}

// DecompressString is Decompress for strings, without limits.
func DecompressString(s string) (string, error) {
	out, err := Decompress([]byte(s), nil)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// AppendDecompress appends the expansion of src to dst and returns the extended slice.
// Pointers may only reach back into the bytes this call produces, never into the
// existing contents of dst. On error dst is returned unchanged.
func AppendDecompress(dst, src []byte) ([]byte, error) {
	out, err := decompressCore(dst[len(dst):], src, 0)
	if err != nil {
		return dst, err
	}

	return append(dst, out...), nil
}

// decompressCore decodes src, appending to dst, which must be empty. Zero maxOut means
// unlimited. On error it returns (nil, err).
func decompressCore(dst, src []byte, maxOut int) ([]byte, error) {
	for inPos := 0; inPos < len(src); {
		if !IsPointer(src[inPos:]) {
			dst = append(dst, src[inPos])
			inPos++
			if maxOut > 0 && len(dst) > maxOut {
				return nil, ErrOutputTooLarge
			}

			continue
		}

		length, dist, size, err := DecodePointer(src[inPos:])
		if err != nil {
			return nil, fmt.Errorf("%w at offset %d", err, inPos)
		}

		if dist == 0 || dist > len(dst) {
			return nil, fmt.Errorf("%w: pointer at offset %d reaches %d bytes back, only %d produced",
				ErrCorruptStream, inPos, dist, len(dst))
		}

		if maxOut > 0 && len(dst)+length > maxOut {
			return nil, ErrOutputTooLarge
		}

		dst = appendBackRef(dst, dist, length)
		inPos += size
	}

	return dst, nil
}
