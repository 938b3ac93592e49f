// SPDX-License-Identifier: MIT
// Copyright (c) 2026 archivekit
// Source: github.com/archivekit/zpak

package zpak

// DefaultMaxRatio and DefaultMaxOutputSize are reasonable ceilings for
// GuardHeader callers that don't need a tighter bound; a well-formed
// deflate-class container rarely exceeds a few hundred:1.
const (
	DefaultMaxRatio      = 1024.0
	DefaultMaxOutputSize = 1 << 32 // 4 GiB
)

// GuardHeader rejects a header whose claimed sizes describe a decompression
// bomb before any payload byte is decoded: either the ratio of uncompressed
// to compressed size exceeds maxRatio, or the uncompressed size alone
// exceeds maxOutputSize. A maxRatio <= 0 disables the ratio check; a
// maxOutputSize of 0 disables the absolute-size check.
func GuardHeader(h Header, maxRatio float64, maxOutputSize uint64) error {
	if maxOutputSize > 0 && h.UncompressedSize > maxOutputSize {
		return ErrOutOfMemory
	}

	if maxRatio > 0 {
		if h.CompressedSize == 0 {
			if h.UncompressedSize > 0 {
				return ErrOutOfMemory
			}
		} else if ratio := float64(h.UncompressedSize) / float64(h.CompressedSize); ratio > maxRatio {
			return ErrOutOfMemory
		}
	}

	return nil
}
