// SPDX-License-Identifier: MIT
// Copyright (c) 2026 archivekit
// Source: github.com/archivekit/zpak

package zpak

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// Header is the parsed form of a 32-byte container header.
type Header struct {
	Version          uint8
	Algorithm        Algorithm
	Level            uint8
	Flags            uint8
	UncompressedSize uint64
	CompressedSize   uint64
	Checksum         uint32
}

// String renders a Header for diagnostics (e.g. a CLI front-end built on
// top of zpak); zpak itself never logs this.
func (h Header) String() string {
	return fmt.Sprintf("zpak.Header{algo=%d level=%d uncompressed=%d compressed=%d crc32=%08x}",
		h.Algorithm, h.Level, h.UncompressedSize, h.CompressedSize, h.Checksum)
}

// crc32IEEE computes CRC32 over data using the IEEE 802.3 polynomial
// (0xEDB88320), standard init/xor-out.
func crc32IEEE(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// encodeHeader serializes a 32-byte container header. Bytes 28-31 (padding)
// are written as zero; decodeHeader ignores their value on read.
func encodeHeader(algo Algorithm, level uint8, uncompressedSize, compressedSize uint64, checksum uint32) []byte {
	buf := make([]byte, headerSize)
	copy(buf[offMagic:], containerMagic[:])
	buf[offVersion] = containerVersion
	buf[offAlgorithm] = byte(algo)
	buf[offLevel] = level
	buf[offFlags] = 0
	binary.LittleEndian.PutUint64(buf[offUncompressedSize:], uncompressedSize)
	binary.LittleEndian.PutUint64(buf[offCompressedSize:], compressedSize)
	binary.LittleEndian.PutUint32(buf[offChecksum:], checksum)
	// offPadding left zero.
	return buf
}

// decodeHeader parses a 32-byte container header without validating it
// against the trailing payload. decodeAndValidateHeader also returns the
// payload slice; DecompressFile runs the full pipeline.
func decodeHeader(buf []byte) (Header, error) {
	if len(buf) < headerSize {
		return Header{}, ErrInvalidHeader
	}

	var magic [4]byte
	copy(magic[:], buf[offMagic:offMagic+4])
	if magic != containerMagic {
		return Header{}, ErrInvalidHeader
	}

	version := buf[offVersion]
	if version != containerVersion {
		return Header{}, ErrUnsupportedVersion
	}

	algo := Algorithm(buf[offAlgorithm])
	if algo != AlgorithmLZ77 && algo != AlgorithmRLE {
		return Header{}, ErrInvalidData
	}

	return Header{
		Version:          version,
		Algorithm:        algo,
		Level:            buf[offLevel],
		Flags:            buf[offFlags],
		UncompressedSize: binary.LittleEndian.Uint64(buf[offUncompressedSize:]),
		CompressedSize:   binary.LittleEndian.Uint64(buf[offCompressedSize:]),
		Checksum:         binary.LittleEndian.Uint32(buf[offChecksum:]),
	}, nil
}

// decodeAndValidateHeader runs the cheap structural checks (length, magic,
// version, algorithm tag) and returns the parsed header plus the payload
// slice that follows it. It does not touch the payload's length or
// checksum; DecompressFile checks the payload length before decompressing
// and the decompressed size and checksum after, keeping the expensive
// checks staged behind the cheap ones.
func decodeAndValidateHeader(container []byte) (Header, []byte, error) {
	if len(container) < headerSize {
		return Header{}, nil, ErrInvalidHeader
	}

	h, err := decodeHeader(container)
	if err != nil {
		return Header{}, nil, err
	}

	return h, container[headerSize:], nil
}
