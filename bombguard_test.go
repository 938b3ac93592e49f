package zpak

import "testing"

func TestGuardHeader_AcceptsReasonableRatio(t *testing.T) {
	h := Header{UncompressedSize: 1000, CompressedSize: 100}
	if err := GuardHeader(h, DefaultMaxRatio, DefaultMaxOutputSize); err != nil {
		t.Fatalf("GuardHeader rejected a 10:1 ratio: %v", err)
	}
}

func TestGuardHeader_RejectsExcessiveRatio(t *testing.T) {
	h := Header{UncompressedSize: 1 << 30, CompressedSize: 1}
	if err := GuardHeader(h, DefaultMaxRatio, DefaultMaxOutputSize); err != ErrOutOfMemory {
		t.Fatalf("got %v, want ErrOutOfMemory", err)
	}
}

func TestGuardHeader_RejectsExcessiveAbsoluteSize(t *testing.T) {
	h := Header{UncompressedSize: 1 << 40, CompressedSize: 1 << 38}
	if err := GuardHeader(h, DefaultMaxRatio, DefaultMaxOutputSize); err != ErrOutOfMemory {
		t.Fatalf("got %v, want ErrOutOfMemory", err)
	}
}

func TestGuardHeader_ZeroCompressedSizeWithNonZeroOutput(t *testing.T) {
	h := Header{UncompressedSize: 1000, CompressedSize: 0}
	if err := GuardHeader(h, DefaultMaxRatio, DefaultMaxOutputSize); err != ErrOutOfMemory {
		t.Fatalf("got %v, want ErrOutOfMemory", err)
	}
}

func TestGuardHeader_DisabledChecks(t *testing.T) {
	h := Header{UncompressedSize: 1 << 40, CompressedSize: 0}
	if err := GuardHeader(h, 0, 0); err != nil {
		t.Fatalf("GuardHeader with both checks disabled should always pass, got %v", err)
	}
}

func TestGuardHeader_EmptyContainerPasses(t *testing.T) {
	h := Header{UncompressedSize: 0, CompressedSize: 0}
	if err := GuardHeader(h, DefaultMaxRatio, DefaultMaxOutputSize); err != nil {
		t.Fatalf("GuardHeader rejected an empty container: %v", err)
	}
}
