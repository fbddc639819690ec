// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzutf8

package lzutf8

// appendBackRef appends length bytes copied from dist bytes behind the end of dst.
// If dist < length, the copy reads bytes it has just written, so it must run byte by
// byte to repeat the window (RLE). The caller checks 1 <= dist <= len(dst).
func appendBackRef(dst []byte, dist, length int) []byte {
	mPos := len(dst) - dist

	if dist >= length {
		return append(dst, dst[mPos:mPos+length]...)
	}

	for i := 0; i < length; i++ {
		dst = append(dst, dst[mPos+i])
	}

	return dst
}
