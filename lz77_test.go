package zpak

import (
	"bytes"
	"fmt"
	"testing"
)

func lz77TestInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"single-byte", []byte{0xAB}},
		{"literal-fallthrough", []byte("ab")},
		{"short-text", []byte("hello world, hello world, hello compression")},
		{"overlapping-run", bytes.Repeat([]byte("A"), 10)},
		{"repeated-pattern", bytes.Repeat([]byte("abc123"), 2000)},
		{"byte-cycle", bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
	}
}

func TestLZ77CompressDecompress_RoundTrip(t *testing.T) {
	configs := map[string]Config{
		"fast":     FastConfig(),
		"balanced": BalancedConfig(),
		"best":     BestConfig(),
	}

	for _, in := range lz77TestInputSet() {
		for cfgName, cfg := range configs {
			name := fmt.Sprintf("%s/%s", in.name, cfgName)
			t.Run(name, func(t *testing.T) {
				tokens, err := Compress(in.data, cfg)
				if err != nil {
					t.Fatalf("Compress failed: %v", err)
				}

				out, err := Decompress(tokens, len(in.data))
				if err != nil {
					t.Fatalf("Decompress failed: %v", err)
				}
				if !bytes.Equal(out, in.data) {
					t.Fatalf("round-trip mismatch: got=%q want=%q", out, in.data)
				}
			})
		}
	}
}

func TestLZ77Compress_InvalidConfig(t *testing.T) {
	bad := Config{WindowSize: 1024, MinMatch: 1, MaxMatch: 8, HashBits: 10, MaxChainLength: 1}
	if _, err := Compress([]byte("data"), bad); err != ErrInvalidConfiguration {
		t.Fatalf("got %v, want ErrInvalidConfiguration", err)
	}
}

func TestLZ77Decompress_TruncatedLiteralToken(t *testing.T) {
	_, err := Decompress([]byte{literalMarker}, 1)
	if err != ErrInvalidData {
		t.Fatalf("got %v, want ErrInvalidData", err)
	}
}

func TestLZ77Decompress_TruncatedBackReferenceToken(t *testing.T) {
	_, err := Decompress([]byte{3, 0x00}, 1)
	if err != ErrInvalidData {
		t.Fatalf("got %v, want ErrInvalidData", err)
	}
}

func TestLZ77Decompress_OffsetBeyondOutput(t *testing.T) {
	// length=3, offset=5, but no output bytes have been produced yet.
	_, err := Decompress([]byte{3, 0x00, 0x05}, 3)
	if err != ErrCorruptedData {
		t.Fatalf("got %v, want ErrCorruptedData", err)
	}
}

func TestLZ77Decompress_ZeroOffsetRejected(t *testing.T) {
	_, err := Decompress([]byte{literalMarker, 'a', 3, 0x00, 0x00}, 4)
	if err != ErrCorruptedData {
		t.Fatalf("got %v, want ErrCorruptedData", err)
	}
}

func TestAppendBackReference_OverlappingCopy(t *testing.T) {
	out := []byte("A")
	out = appendBackReference(out, 1, 9)
	want := bytes.Repeat([]byte("A"), 10)
	if !bytes.Equal(out, want) {
		t.Fatalf("overlapping copy = %q, want %q", out, want)
	}
}

func TestAppendBackReference_NonOverlappingCopy(t *testing.T) {
	out := []byte("abXYZ")
	out = appendBackReference(out, 5, 3)
	if !bytes.Equal(out, []byte("abXYZabX")) {
		t.Fatalf("copy = %q, want %q", out, "abXYZabX")
	}
}

func FuzzLZ77RoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(0))
	f.Add([]byte("hello world"), uint8(1))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(2))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(1))

	f.Fuzz(func(t *testing.T, data []byte, cfgPick uint8) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		cfg := ConfigForLevel(int(cfgPick%9) + 1)
		tokens, err := Compress(data, cfg)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := Decompress(tokens, len(data))
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d bytes", len(out), len(data))
		}
	})
}
