// SPDX-License-Identifier: MIT
// Copyright (c) 2026 archivekit
// Source: github.com/archivekit/zpak

package zpak

// CompressFile produces a container: a 32-byte header (magic, version,
// algorithm tag, level, sizes, CRC32 of the uncompressed bytes) followed
// by the payload from the chosen one-shot codec. For LZ77, level tags
// LevelFast, LevelBalanced and LevelBest select FastConfig, BalancedConfig
// and BestConfig; any other level selects ConfigForLevel(level).
func CompressFile(src []byte, algo Algorithm, level int) ([]byte, error) {
	var payload []byte
	var err error

	switch algo {
	case AlgorithmLZ77:
		cfg := ConfigForLevel(level)
		switch level {
		case LevelFast:
			cfg = FastConfig()
		case LevelBalanced:
			cfg = BalancedConfig()
		case LevelBest:
			cfg = BestConfig()
		}
		payload, err = Compress(src, cfg)
	case AlgorithmRLE:
		payload, err = CompressRLE(src)
	default:
		return nil, ErrInvalidData
	}
	if err != nil {
		return nil, err
	}

	checksum := crc32IEEE(src)
	header := encodeHeader(algo, levelTag(level), uint64(len(src)), uint64(len(payload)), checksum) //nolint:gosec // G115: len() non-negative

	out := make([]byte, 0, len(header)+len(payload))
	out = append(out, header...)
	out = append(out, payload...)
	return out, nil
}

// levelTag clamps a level to the byte range the header's level
// field stores; values outside 1-3 are still accepted and stored purely
// as informational metadata.
func levelTag(level int) uint8 {
	if level < 0 {
		level = 0
	}
	if level > 255 {
		level = 255
	}
	return uint8(level)
}

// DecompressFile runs the full container validation pipeline: cheap
// structural checks first (length, magic, version, algorithm), then a
// bomb-guard check against the header's declared sizes, then the payload
// length against the declared compressed size, then decompression, then
// the expensive checks (declared vs. actual uncompressed size, CRC32). The bomb guard runs before any payload byte is decoded so a
// header claiming an enormous uncompressed size from a tiny payload is
// rejected before the allocation it would otherwise force.
func DecompressFile(container []byte) ([]byte, error) {
	header, payload, err := decodeAndValidateHeader(container)
	if err != nil {
		return nil, err
	}

	if err := GuardHeader(header, DefaultMaxRatio, DefaultMaxOutputSize); err != nil {
		return nil, err
	}

	if uint64(len(payload)) != header.CompressedSize { //nolint:gosec // G115: len() non-negative
		return nil, ErrCorruptedData
	}

	var out []byte
	switch header.Algorithm {
	case AlgorithmLZ77:
		out, err = Decompress(payload, int(header.UncompressedSize)) //nolint:gosec // G115: validated below
	case AlgorithmRLE:
		out, err = DecompressRLE(payload)
	default:
		return nil, ErrInvalidData
	}
	if err != nil {
		return nil, err
	}

	if uint64(len(out)) != header.UncompressedSize { //nolint:gosec // G115: len() non-negative
		return nil, ErrCorruptedData
	}

	if crc32IEEE(out) != header.Checksum {
		return nil, ErrChecksumMismatch
	}

	return out, nil
}
