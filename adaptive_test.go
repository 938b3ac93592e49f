package zpak

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestSelectAlgorithm_EmptySample(t *testing.T) {
	choice, _ := SelectAlgorithm(nil)
	if choice != AdaptiveStore {
		t.Fatalf("SelectAlgorithm(nil) = %v, want AdaptiveStore", choice)
	}
}

func TestSelectAlgorithm_RunDominatedPicksRLE(t *testing.T) {
	data := bytes.Repeat([]byte{0x7F}, 4096)
	choice, _ := SelectAlgorithm(data)
	if choice != AdaptiveRLE {
		t.Fatalf("SelectAlgorithm(run-dominated) = %v, want AdaptiveRLE", choice)
	}
}

func TestSelectAlgorithm_StructuredDataPicksLZ77(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 200)
	choice, cfg := SelectAlgorithm(data)
	if choice != AdaptiveLZ77 {
		t.Fatalf("SelectAlgorithm(structured) = %v, want AdaptiveLZ77", choice)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("returned Config invalid: %v", err)
	}
}

func TestSelectAlgorithm_RandomDataPicksStore(t *testing.T) {
	data := make([]byte, 8192)
	if _, err := rand.Read(data); err != nil {
		t.Fatalf("rand.Read failed: %v", err)
	}
	choice, _ := SelectAlgorithm(data)
	if choice != AdaptiveStore {
		t.Fatalf("SelectAlgorithm(random) = %v, want AdaptiveStore", choice)
	}
}

func TestSelectAlgorithm_SampleLargerThanLimitIsTruncated(t *testing.T) {
	data := bytes.Repeat([]byte{0x01}, adaptiveSampleLimit*2)
	choice, _ := SelectAlgorithm(data) // must not panic or scan unbounded input
	if choice != AdaptiveRLE {
		t.Fatalf("SelectAlgorithm(oversized run) = %v, want AdaptiveRLE", choice)
	}
}

func TestShannonEntropy_Bounds(t *testing.T) {
	constant := bytes.Repeat([]byte{0x00}, 1024)
	if e := shannonEntropy(constant); e != 0 {
		t.Fatalf("entropy of constant data = %v, want 0", e)
	}

	uniform := make([]byte, 256)
	for i := range uniform {
		uniform[i] = byte(i)
	}
	if e := shannonEntropy(uniform); e < 7.9 {
		t.Fatalf("entropy of a full byte alphabet = %v, want close to 8", e)
	}
}

func TestAlphabetUniqueness_Bounds(t *testing.T) {
	if u := alphabetUniqueness(bytes.Repeat([]byte{0x00}, 100)); u >= 0.01 {
		t.Fatalf("uniqueness of single-byte data = %v, want near 0", u)
	}

	full := make([]byte, 256)
	for i := range full {
		full[i] = byte(i)
	}
	if u := alphabetUniqueness(full); u != 1.0 {
		t.Fatalf("uniqueness of full alphabet = %v, want 1.0", u)
	}
}

func TestAdaptiveChoiceString(t *testing.T) {
	cases := map[AdaptiveChoice]string{
		AdaptiveRLE:        "rle",
		AdaptiveLZ77:       "lz77",
		AdaptiveStore:      "store",
		AdaptiveChoice(99): "unknown",
	}
	for choice, want := range cases {
		if got := choice.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", choice, got, want)
		}
	}
}
