// SPDX-License-Identifier: MIT
// Copyright (c) 2026 archivekit
// Source: github.com/archivekit/zpak

/*
Package zpak implements a general-purpose lossless compression library: a
sliding-window LZ77 coder, a run-length coder, a versioned container format
with CRC32 integrity checking, and a streaming engine that compresses or
decompresses arbitrarily large byte streams in bounded memory.

# One-shot

	out, err := zpak.Compress(data, zpak.BalancedConfig())
	back, err := zpak.Decompress(out, len(data))

	out, err := zpak.CompressRLE(data)
	back, err := zpak.DecompressRLE(out)

# Container

CompressFile wraps a one-shot codec with a 32-byte header (magic, version,
algorithm, level, sizes, CRC32) so the payload is self-describing:

	out, err := zpak.CompressFile(data, zpak.AlgorithmLZ77, 2)
	back, err := zpak.DecompressFile(out)

# Streaming

StreamCompressor and StreamDecompressor feed arbitrarily large inputs in
bounded memory, sliding the window and aging the hash table as needed:

	enc, err := zpak.NewStreamCompressor(zpak.BalancedConfig())
	err = enc.Write(chunk, sink)
	err = enc.Finish(sink)
*/
package zpak
