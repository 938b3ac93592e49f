// SPDX-License-Identifier: MIT
// Copyright (c) 2026 archivekit
// Source: github.com/archivekit/zpak

package zpak

import (
	"encoding/binary"
	"hash/fnv"
)

// Delta instruction opcodes: copy a run from base, insert literal bytes,
// or skip a run of base that contributes nothing to the target. Lengths
// and offsets use the canonical 7-bit continuation varint encoding
// (encoding/binary's Uvarint format is that encoding).
const (
	deltaOpCopy   byte = 0
	deltaOpInsert byte = 1
	deltaOpSkip   byte = 2

	deltaMinMatch  = 4
	deltaHashBytes = 8
)

// EncodeDelta produces a patch that, applied to base via ApplyDelta,
// reproduces target. The patch is prefixed by an 8-byte little-endian
// FNV-1a hash of base so ApplyDelta can detect a base mismatch before
// replaying any instruction.
//
// copy(offset, length) copies base[offset:offset+length] into the output.
// insert(bytes) appends literal bytes. skip(length) is a structural no-op
// at apply time — it exists only to record that length bytes of base were
// intentionally dropped, for tooling built on top of zpak; ApplyDelta
// ignores it (see DESIGN.md "Open questions" for why skip carries no
// cursor semantics here).
func EncodeDelta(base, target []byte) ([]byte, error) {
	out := make([]byte, 0, len(target)/2+deltaHashBytes)
	out = appendBaseHash(out, base)

	idx := newHashIndex(16, 32)
	n := len(base)
	for p := 0; p+3 <= n; p++ {
		end := min(p+4, n)
		b := idx.bucket(base[p:end])
		idx.insert(b, int32(p)) //nolint:gosec // G115: p bounded by len(base)
	}

	m := len(target)
	i := 0
	insertStart := -1

	flushInsert := func(upTo int) {
		if insertStart < 0 {
			return
		}
		out = append(out, deltaOpInsert)
		out = binary.AppendUvarint(out, uint64(upTo-insertStart)) //nolint:gosec // G115: length non-negative
		out = append(out, target[insertStart:upTo]...)
		insertStart = -1
	}

	for i < m {
		if m-i < 3 {
			if insertStart < 0 {
				insertStart = i
			}
			i++
			continue
		}

		end := min(i+4, m)
		bucket := idx.bucket(target[i:end])
		candidates := idx.candidates(bucket)

		bestLen, bestPos := 0, -1
		maxLen := m - i
		for _, j32 := range candidates {
			j := int(j32)
			if j < 0 || j >= n {
				continue
			}
			l := 0
			for j+l < n && l < maxLen && base[j+l] == target[i+l] {
				l++
			}
			if l > bestLen {
				bestLen = l
				bestPos = j
			}
		}

		if bestLen >= deltaMinMatch {
			flushInsert(i)
			out = append(out, deltaOpCopy)
			out = binary.AppendUvarint(out, uint64(bestPos)) //nolint:gosec // G115: bestPos bounded by len(base)
			out = binary.AppendUvarint(out, uint64(bestLen)) //nolint:gosec // G115: bestLen bounded by len(target)
			i += bestLen
			continue
		}

		if insertStart < 0 {
			insertStart = i
		}
		i++
	}
	flushInsert(i)

	return out, nil
}

// ApplyDelta replays a patch produced by EncodeDelta against base,
// returning the reconstructed target. Returns ErrVersionMismatch if the
// patch's embedded base hash does not match base.
func ApplyDelta(base, patch []byte) ([]byte, error) {
	if len(patch) < deltaHashBytes {
		return nil, ErrInvalidData
	}

	wantHash := binary.LittleEndian.Uint64(patch[:deltaHashBytes])
	if fnv1a64(base) != wantHash {
		return nil, ErrVersionMismatch
	}

	out := make([]byte, 0, len(base))
	p := patch[deltaHashBytes:]
	i := 0

	for i < len(p) {
		op := p[i]
		i++

		switch op {
		case deltaOpCopy:
			offset, n1, err := readUvarint(p[i:])
			if err != nil {
				return nil, err
			}
			i += n1
			length, n2, err := readUvarint(p[i:])
			if err != nil {
				return nil, err
			}
			i += n2

			if offset+length > uint64(len(base)) { //nolint:gosec // G115: len() non-negative
				return nil, ErrCorruptedData
			}
			out = append(out, base[offset:offset+length]...)

		case deltaOpInsert:
			length, n1, err := readUvarint(p[i:])
			if err != nil {
				return nil, err
			}
			i += n1
			if uint64(i)+length > uint64(len(p)) { //nolint:gosec // G115: len() non-negative
				return nil, ErrInvalidData
			}
			out = append(out, p[i:i+int(length)]...)
			i += int(length)

		case deltaOpSkip:
			_, n1, err := readUvarint(p[i:])
			if err != nil {
				return nil, err
			}
			i += n1

		default:
			return nil, ErrInvalidData
		}
	}

	return out, nil
}

func appendBaseHash(out []byte, base []byte) []byte {
	var buf [deltaHashBytes]byte
	binary.LittleEndian.PutUint64(buf[:], fnv1a64(base))
	return append(out, buf[:]...)
}

func fnv1a64(data []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(data) // hash.Hash64's Write never returns an error
	return h.Sum64()
}

func readUvarint(b []byte) (value uint64, n int, err error) {
	value, n = binary.Uvarint(b)
	if n <= 0 {
		return 0, 0, ErrInvalidData
	}
	return value, n, nil
}
