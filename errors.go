// SPDX-License-Identifier: MIT
// Copyright (c) 2026 archivekit
// Source: github.com/archivekit/zpak

package zpak

import "errors"

// Sentinel errors for the error taxonomy at zpak's boundary. Callers should
// compare with errors.Is; internal code never wraps these into new types.
var (
	// ErrInvalidConfiguration is returned when a Config fails Validate.
	ErrInvalidConfiguration = errors.New("zpak: invalid configuration")

	// ErrInvalidData is returned for malformed token streams: premature end
	// of a token, or an unrecognized token/opcode type.
	ErrInvalidData = errors.New("zpak: invalid data")

	// ErrCorruptedData is returned when a token's shape is valid but its
	// semantics are not: an offset out of bounds, a length mismatch with
	// the declared size. Any bytes already emitted for the offending token
	// are discarded before this is returned.
	ErrCorruptedData = errors.New("zpak: corrupted data")

	// ErrInvalidHeader is returned when a container header is too short,
	// has the wrong magic, or fails structural validation.
	ErrInvalidHeader = errors.New("zpak: invalid header")

	// ErrUnsupportedVersion is returned when a container header declares a
	// version this build does not understand.
	ErrUnsupportedVersion = errors.New("zpak: unsupported version")

	// ErrChecksumMismatch is returned when decompressed bytes do not match
	// the header's stored CRC32.
	ErrChecksumMismatch = errors.New("zpak: checksum mismatch")

	// ErrBufferTooSmall is returned only by fixed-buffer façades that take
	// a caller-supplied destination; the owned-buffer API surface below
	// never returns it.
	ErrBufferTooSmall = errors.New("zpak: destination buffer too small")

	// ErrOutOfMemory is returned verbatim on allocator failure, and by
	// GuardHeader (and so DecompressFile) when a header's declared sizes
	// exceed the ratio or output-size limit; callers should treat it as
	// fatal to the current operation, not retryable.
	ErrOutOfMemory = errors.New("zpak: out of memory")

	// ErrVersionMismatch is returned by ApplyDelta when the patch's base
	// hash does not match the supplied base.
	ErrVersionMismatch = errors.New("zpak: delta base version mismatch")
)
