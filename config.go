// SPDX-License-Identifier: MIT
// Copyright (c) 2026 archivekit
// Source: github.com/archivekit/zpak

package zpak

// Config holds the encoder parameters for the LZ77 codec: window size, match
// length bounds, hash table size, and chain-walk depth. Decoders never
// consult a Config; they derive window size from the container header (file
// mode) or from the caller (raw streaming), so a mis-specified decoder
// window only bounds memory, never correctness.
type Config struct {
	// WindowSize is the sliding-window size in bytes, 1..1048576 (2^20).
	WindowSize int
	// MinMatch is the minimum back-reference length, 3..MaxMatch.
	MinMatch int
	// MaxMatch is the maximum back-reference length, MinMatch..255.
	MaxMatch int
	// HashBits sizes the hash index to 2^HashBits entries, 8..20.
	HashBits int
	// MaxChainLength bounds how many candidates the encoder probes per
	// hash bucket before settling on a match.
	MaxChainLength int
}

// Validate enforces: MinMatch >= 3 && MinMatch <= MaxMatch <= 255 &&
// 1 <= WindowSize <= 2^20 && 8 <= HashBits <= 20 && MaxChainLength >= 1.
func (c Config) Validate() error {
	switch {
	case c.MinMatch < 3:
		return ErrInvalidConfiguration
	case c.MinMatch > c.MaxMatch:
		return ErrInvalidConfiguration
	case c.MaxMatch > 255:
		return ErrInvalidConfiguration
	case c.WindowSize < 1 || c.WindowSize > 1<<20:
		return ErrInvalidConfiguration
	case c.HashBits < 8 || c.HashBits > 20:
		return ErrInvalidConfiguration
	case c.MaxChainLength < 1:
		return ErrInvalidConfiguration
	default:
		return nil
	}
}

// FastConfig returns the "fast" preset: 32 KiB window, chain length 16.
func FastConfig() Config {
	return Config{WindowSize: 32 << 10, MinMatch: 3, MaxMatch: 255, HashBits: 15, MaxChainLength: 16}
}

// BalancedConfig returns the "balanced" preset: 64 KiB window, chain length 32.
func BalancedConfig() Config {
	return Config{WindowSize: 64 << 10, MinMatch: 3, MaxMatch: 255, HashBits: 16, MaxChainLength: 32}
}

// BestConfig returns the "best" preset: 256 KiB window, chain length 128.
func BestConfig() Config {
	return Config{WindowSize: 256 << 10, MinMatch: 3, MaxMatch: 255, HashBits: 18, MaxChainLength: 128}
}

// presetByLevel maps the broader 1-9 quality scale to a Config, in order of
// increasing window size and chain effort. Level 5 is the canonical
// balanced preset.
var presetByLevel = [9]Config{
	{WindowSize: 8 << 10, MinMatch: 3, MaxMatch: 255, HashBits: 12, MaxChainLength: 4},    // 1
	{WindowSize: 16 << 10, MinMatch: 3, MaxMatch: 255, HashBits: 13, MaxChainLength: 8},    // 2
	{WindowSize: 32 << 10, MinMatch: 3, MaxMatch: 255, HashBits: 14, MaxChainLength: 16},   // 3 (fast window and chain)
	{WindowSize: 32 << 10, MinMatch: 3, MaxMatch: 255, HashBits: 15, MaxChainLength: 24},   // 4
	{WindowSize: 64 << 10, MinMatch: 3, MaxMatch: 255, HashBits: 16, MaxChainLength: 32},   // 5 (balanced)
	{WindowSize: 128 << 10, MinMatch: 3, MaxMatch: 255, HashBits: 17, MaxChainLength: 48},  // 6
	{WindowSize: 128 << 10, MinMatch: 3, MaxMatch: 255, HashBits: 17, MaxChainLength: 64},  // 7
	{WindowSize: 256 << 10, MinMatch: 3, MaxMatch: 255, HashBits: 18, MaxChainLength: 96},  // 8
	{WindowSize: 256 << 10, MinMatch: 3, MaxMatch: 255, HashBits: 18, MaxChainLength: 128}, // 9 (best)
}

// ConfigForLevel maps the 1-9 quality scale to a Config. Levels below 1 are
// clamped to 1; levels above 9 are clamped to 9. Higher levels never
// decrease window size or chain effort relative to a lower level.
func ConfigForLevel(level int) Config {
	level = max(level, 1)
	level = min(level, 9)
	return presetByLevel[level-1]
}

// LevelForName returns the canonical level tag (1, 2, or 3) for a preset
// name, and the preset's Config. ok is false for an unrecognized name.
func LevelForName(name string) (level int, cfg Config, ok bool) {
	switch name {
	case "fast":
		return 1, FastConfig(), true
	case "balanced":
		return 2, BalancedConfig(), true
	case "best":
		return 3, BestConfig(), true
	default:
		return 0, Config{}, false
	}
}
