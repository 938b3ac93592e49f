// SPDX-License-Identifier: MIT
// Copyright (c) 2026 archivekit
// Source: github.com/archivekit/zpak

package zpak

// StreamCompressor incrementally encodes LZ77 tokens from a sequence of
// input chunks in bounded memory: a sliding window, a reserved lookahead
// so the last bytes of a chunk can still start a match once more input
// arrives, and hash-table aging on every window slide.
//
// A StreamCompressor is not safe for concurrent use; callers must
// externally serialize calls to Write and Finish.
type StreamCompressor struct {
	cfg       Config
	idx       *hashIndex
	buffer    []byte // buffer[k] holds the byte at absolute position basePos+k
	basePos   int
	cursor    int // next absolute position to emit a token for
	maxOffset int
	drained   bool
}

// NewStreamCompressor constructs a streaming encoder session for cfg.
func NewStreamCompressor(cfg Config) (*StreamCompressor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	maxOffset := cfg.WindowSize
	if maxOffset > maxRawOffset {
		maxOffset = maxRawOffset
	}

	return &StreamCompressor{
		cfg:       cfg,
		idx:       acquireHashIndex(cfg.HashBits, cfg.MaxChainLength),
		maxOffset: maxOffset,
	}, nil
}

// Close releases the session's pooled hash index. Safe to call more than
// once; safe to omit if the session is allowed to be garbage collected,
// but scoped acquisition means every long-lived caller should call it on
// every exit path once the session is done.
func (s *StreamCompressor) Close() {
	if s.idx != nil {
		releaseHashIndex(s.idx)
		s.idx = nil
	}
}

// Write appends chunk to the session's buffer and emits every token that
// becomes determined by it, reserving up to cfg.MinMatch-1 bytes of
// lookahead for the next Write or Finish. A match may reach back into
// bytes buffered by earlier calls (cross-chunk matches); its length is
// capped by the bytes buffered so far, so a match is not extended into
// bytes written by a later call.
func (s *StreamCompressor) Write(chunk []byte, out sink) error {
	s.buffer = append(s.buffer, chunk...)
	return s.drain(out)
}

// Finish drains the remaining lookahead as literals. Idempotent once the
// session is fully drained: calling Finish twice is a no-op.
func (s *StreamCompressor) Finish(out sink) error {
	if s.drained {
		return nil
	}

	end := s.basePos + len(s.buffer)
	for s.cursor < end {
		rel := s.cursor - s.basePos
		if err := out([]byte{literalMarker, s.buffer[rel]}); err != nil {
			return err
		}
		s.cursor++
	}

	s.drained = true
	return nil
}

// drain emits tokens for every position that has at least cfg.MinMatch
// buffered bytes starting at it, which is the same "enough bytes to attempt a
// match" condition the one-shot encoder uses.
func (s *StreamCompressor) drain(out sink) error {
	for {
		end := s.basePos + len(s.buffer)
		remaining := end - s.cursor
		if remaining < s.cfg.MinMatch {
			return nil
		}

		relStart := s.cursor - s.basePos
		prefixLen := min(4, remaining)
		bucket := s.idx.bucket(s.buffer[relStart : relStart+prefixLen])

		candidates := s.idx.candidates(bucket)
		s.idx.insert(bucket, int32(s.cursor)) //nolint:gosec // G115: cursor bounded by input size

		bestLen, bestPos := 0, -1
		maxLen := min(s.cfg.MaxMatch, remaining)
		for _, j32 := range candidates {
			j := int(j32)
			if j < s.basePos || j >= s.cursor {
				continue
			}
			if s.cursor-j > s.maxOffset {
				continue
			}

			jRel := j - s.basePos
			l := 0
			for l < maxLen && s.buffer[jRel+l] == s.buffer[relStart+l] {
				l++
			}
			if l > bestLen {
				bestLen = l
				bestPos = j
			}
		}

		if bestLen >= s.cfg.MinMatch && bestPos >= 0 {
			offset := s.cursor - bestPos
			if err := out([]byte{byte(bestLen), byte(offset >> 8), byte(offset)}); err != nil { //nolint:gosec // G115: bestLen<=MaxMatch<=255
				return err
			}
			s.cursor += bestLen
		} else {
			if err := out([]byte{literalMarker, s.buffer[relStart]}); err != nil {
				return err
			}
			s.cursor++
		}

		s.slideWindowIfNeeded()
	}
}

// slideWindowIfNeeded implements the window discipline: once the cursor
// has advanced more than cfg.WindowSize past basePos,
// advance basePos, drop the now-unreachable prefix of buffer, and sweep
// the hash table clearing any entry below the new basePos.
func (s *StreamCompressor) slideWindowIfNeeded() {
	if s.cursor-s.basePos <= s.cfg.WindowSize {
		return
	}

	newBase := s.cursor - s.cfg.WindowSize
	drop := newBase - s.basePos
	s.buffer = s.buffer[drop:]
	s.basePos = newBase
	s.idx.ageBelow(int32(s.basePos)) //nolint:gosec // G115: basePos bounded by input size
}
