// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzutf8

package lzutf8

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrInvalidInput is returned when an entry point is given no input at all (a nil reader).
	ErrInvalidInput = errors.New("invalid input")
	// ErrPointerRange is returned when EncodePointer is asked for a length or distance
	// the sized pointer format cannot express.
	ErrPointerRange = errors.New("pointer length or distance out of range")
	// ErrCorruptStream is returned when a pointer reaches before the start of the output
	// or a 3-byte pointer is cut off by the end of input.
	ErrCorruptStream = errors.New("corrupt stream")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrOutputTooLarge is returned when decompressed output would exceed MaxOutputSize bytes.
	ErrOutputTooLarge = errors.New("output exceeds MaxOutputSize")
)
