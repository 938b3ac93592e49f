// SPDX-License-Identifier: MIT
// Copyright (c) 2026 archivekit
// Source: github.com/archivekit/zpak

package zpak

// Token kinds, byte-aligned:
//   - literal:       (0x00, byte)                      — 2 bytes
//   - back-reference: (length, offsetHi, offsetLo)      — 3 bytes, length != 0
const literalMarker = 0x00

// maxRawOffset is the hard ceiling a 16-bit big-endian offset field can
// express, independent of any configured window size.
const maxRawOffset = 0xFFFF

// Compress encodes src as an LZ77 token stream under cfg. The hash table is
// updated to the current position before the match decision is made (see
// DESIGN.md "Open questions"), so the current position can never match
// itself. Only positions within cfg.WindowSize (capped at 65535, since
// offsets are 16-bit) are eligible back-reference candidates.
func Compress(src []byte, cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := len(src)
	if n == 0 {
		return []byte{}, nil
	}

	maxOffset := cfg.WindowSize
	if maxOffset > maxRawOffset {
		maxOffset = maxRawOffset
	}

	idx := acquireHashIndex(cfg.HashBits, cfg.MaxChainLength)
	defer releaseHashIndex(idx)

	out := make([]byte, 0, n)
	i := 0

	for n-i >= cfg.MinMatch {
		prefixLen := min(4, n-i)
		bucket := idx.bucket(src[i : i+prefixLen])

		candidates := idx.candidates(bucket)
		idx.insert(bucket, int32(i)) //nolint:gosec // G115: i bounded by input length

		bestLen, bestPos := 0, -1
		maxLen := min(cfg.MaxMatch, n-i)
		for _, j32 := range candidates {
			j := int(j32)
			if j < 0 || j >= i {
				continue
			}
			if i-j > maxOffset {
				continue
			}

			l := 0
			for l < maxLen && src[j+l] == src[i+l] {
				l++
			}
			if l > bestLen {
				bestLen = l
				bestPos = j
			}
		}

		if bestLen >= cfg.MinMatch && bestPos >= 0 {
			offset := i - bestPos
			out = append(out, byte(bestLen), byte(offset>>8), byte(offset)) //nolint:gosec // G115: bestLen<=MaxMatch<=255
			i += bestLen
			continue
		}

		out = append(out, literalMarker, src[i])
		i++
	}

	for ; i < n; i++ {
		out = append(out, literalMarker, src[i])
	}

	return out, nil
}

// Decompress decodes an LZ77 token stream back into the original bytes.
// dstLen, if known, is used only to size the output buffer's initial
// capacity; the returned slice's actual length is whatever the token
// stream produces.
func Decompress(tokens []byte, dstLen int) ([]byte, error) {
	capHint := dstLen
	if capHint < 0 {
		capHint = 0
	}
	out := make([]byte, 0, capHint)

	n := len(tokens)
	i := 0
	for i < n {
		t := tokens[i]
		i++

		if t == literalMarker {
			if i >= n {
				return nil, ErrInvalidData
			}
			out = append(out, tokens[i])
			i++
			continue
		}

		length := int(t)
		if i+2 > n {
			return nil, ErrInvalidData
		}
		offset := int(tokens[i])<<8 | int(tokens[i+1])
		i += 2

		if offset == 0 || offset > len(out) {
			return nil, ErrCorruptedData
		}

		out = appendBackReference(out, offset, length)
	}

	return out, nil
}

// appendBackReference grows out by length bytes, copying from offset bytes
// behind the current end. Each appended byte is immediately visible to
// later bytes of the same copy, which is what makes overlapping runs
// (offset < length) reproduce correctly: seed one offset-sized chunk from
// the already-committed output, then double the copied region until the
// full length is filled. Equivalent to, and cheaper than, a byte-by-byte
// loop.
func appendBackReference(out []byte, offset, length int) []byte {
	outputPos := len(out)
	srcStart := outputPos - offset
	out = append(out, make([]byte, length)...)

	if offset >= length {
		copy(out[outputPos:outputPos+length], out[srcStart:srcStart+length])
		return out
	}

	copy(out[outputPos:outputPos+offset], out[srcStart:outputPos])
	copied := offset
	for copied < length {
		grew := copy(out[outputPos+copied:outputPos+length], out[outputPos:outputPos+copied])
		copied += grew
	}

	return out
}
