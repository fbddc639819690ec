// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzutf8

package lzutf8

// DecompressOptions configures decompression. A nil *DecompressOptions means no limits.
type DecompressOptions struct {
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
	// MaxOutputSize limits the decompressed size (0 = no limit).
	MaxOutputSize int
}

// DefaultDecompressOptions returns options with no input or output limit.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

// maxOutput returns the output limit, or 0 for none.
func (o *DecompressOptions) maxOutput() int {
	if o == nil || o.MaxOutputSize < 0 {
		return 0
	}

	return o.MaxOutputSize
}

// maxInput returns the reader input limit, or 0 for none.
func (o *DecompressOptions) maxInput() int {
	if o == nil || o.MaxInputSize < 0 {
		return 0
	}

	return o.MaxInputSize
}
