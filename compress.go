// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzutf8

package lzutf8

// Compress compresses UTF-8 text in src. The result is deterministic and never longer
// than src. Bytes that are not valid UTF-8 are not rejected, but such input may not
// survive a round trip.
func Compress(src []byte) []byte {
	return AppendCompress(make([]byte, 0, len(src)), src)
}

// CompressString is Compress for strings.
func CompressString(s string) string {
	return string(Compress([]byte(s)))
}

// AppendCompress appends the compressed form of src to dst and returns the extended slice.
func AppendCompress(dst, src []byte) []byte {
	idx := acquireMatchIndex()
	defer releaseMatchIndex(idx)

	inputLen := len(src)
	for inputPos := 0; inputPos < inputLen; {
		// Too close to the end for a key; the tail is always literal.
		if inputLen-inputPos < keyLen {
			dst = append(dst, src[inputPos])
			inputPos++
			continue
		}

		key := matchKey(src[inputPos:])
		m, ok := findBestMatch(src, inputPos, idx.candidates(key))

		// Only the position a token starts at is indexed, not the bytes a match skips.
		idx.insert(key, inputPos)

		if !ok {
			dst = append(dst, src[inputPos])
			inputPos++
			continue
		}

		dst = appendPointer(dst, m.length, m.distance)
		inputPos += m.length
	}

	return dst
}
