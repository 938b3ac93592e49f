// SPDX-License-Identifier: MIT
// Copyright (c) 2026 archivekit
// Source: github.com/archivekit/zpak

package zpak

// Container header layout: 32 bytes, little-endian multi-byte fields.
const (
	headerSize = 32

	offMagic            = 0  // [4]byte, "ZPAK"
	offVersion          = 4  // uint8
	offAlgorithm        = 5  // uint8
	offLevel            = 6  // uint8
	offFlags            = 7  // uint8, reserved, must be 0
	offUncompressedSize = 8  // uint64 LE
	offCompressedSize   = 16 // uint64 LE
	offChecksum         = 24 // uint32 LE
	offPadding          = 28 // [4]byte, reserved, don't-care on read
)

// containerMagic is the fixed 4-byte magic at the start of every container.
var containerMagic = [4]byte{'Z', 'P', 'A', 'K'}

// containerVersion is the only version this build understands.
const containerVersion = 1

// Algorithm identifies the one-shot codec a container payload was encoded
// with.
type Algorithm uint8

// Algorithm tags, as stored in the header's algorithm byte.
const (
	AlgorithmLZ77 Algorithm = 0
	AlgorithmRLE  Algorithm = 1
)

// Canonical level tags for the three presets (fast/balanced/best); other
// values are accepted and stored purely as informational metadata.
const (
	LevelFast     = 1
	LevelBalanced = 2
	LevelBest     = 3
)
