// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzutf8

package lzutf8

// Sequence and window bounds. The ceilings are the widths of the pointer fields:
// 5 bits of length, 15 bits of distance.
const (
	MinSequenceLength = 4
	MaxSequenceLength = 31
	MaxMatchDistance  = 32767
)

// Pointer tag bits in the first byte.
const (
	tagMask      = 0b1100_0000 // 11xxxxxx marks a pointer when followed by 0xxxxxxx
	tagLong      = 0b0010_0000 // set: 3-byte pointer, clear: 2-byte pointer
	tagShort2    = 0b1100_0000 // 110lllll
	tagLong3     = 0b1110_0000 // 111lllll
	lengthMask   = 0b0001_1111
	distanceMask = 0b0111_1111 // top bit of the second byte is always 0
	highBit      = 0b1000_0000
)

// shortDistanceLimit is the first distance that needs the 3-byte form.
const shortDistanceLimit = 128

// keyLen is the prefix size hashed into the match index.
const keyLen = 4
