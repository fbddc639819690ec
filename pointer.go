// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzutf8

package lzutf8

import "fmt"

// pointerByte packs a pointer fragment to one byte. Callers pass values whose low 8 bits
// are the serialized representation.
func pointerByte(v int) byte {
	// #nosec G115 -- pointer fields intentionally encode only low 8 bits.
	return byte(v & 0xff)
}

// appendPointer appends the sized pointer for (length, distance) to dst.
// Callers guarantee MinSequenceLength <= length <= MaxSequenceLength and
// 1 <= distance <= MaxMatchDistance.
func appendPointer(dst []byte, length, distance int) []byte {
	if distance < shortDistanceLimit {
		// 110lllll 0ddddddd
		return append(dst, pointerByte(tagShort2|length), pointerByte(distance))
	}

	// 111lllll 0ddddddd dddddddd
	return append(dst,
		pointerByte(tagLong3|length),
		pointerByte((distance>>8)&distanceMask),
		pointerByte(distance),
	)
}

// EncodePointer returns the 2- or 3-byte sized pointer for a back-reference of length
// bytes, distance bytes behind the output end. The 2-byte form is used for distances
// below 128.
func EncodePointer(length, distance int) ([]byte, error) {
	if length < MinSequenceLength || length > MaxSequenceLength ||
		distance < 1 || distance > MaxMatchDistance {
		return nil, fmt.Errorf("%w: length=%d distance=%d", ErrPointerRange, length, distance)
	}

	return appendPointer(make([]byte, 0, 3), length, distance), nil
}

// IsPointer reports whether src starts with a pointer: a byte 11xxxxxx followed by a
// byte 0xxxxxxx. Valid UTF-8 never contains that pair, since bytes after a lead byte
// are continuation bytes 10xxxxxx.
func IsPointer(src []byte) bool {
	return len(src) >= 2 && src[0]&tagMask == tagMask && src[1]&highBit == 0
}

// DecodePointer decodes the sized pointer at the start of src and returns its length,
// distance and encoded size in bytes. The caller must have checked IsPointer; a 3-byte
// pointer without its third byte returns ErrCorruptStream.
func DecodePointer(src []byte) (length, distance, size int, err error) {
	if !IsPointer(src) {
		return 0, 0, 0, fmt.Errorf("%w: not a pointer", ErrCorruptStream)
	}

	c1 := src[0]
	length = int(c1 & lengthMask)
	distance = int(src[1] & distanceMask)
	if c1&tagLong == 0 {
		return length, distance, 2, nil
	}

	if len(src) < 3 {
		return 0, 0, 0, fmt.Errorf("%w: truncated 3-byte pointer", ErrCorruptStream)
	}

	distance = distance<<8 | int(src[2])
	return length, distance, 3, nil
}
