// SPDX-License-Identifier: MIT
// Copyright (c) 2026 archivekit
// Source: github.com/archivekit/zpak

package zpak

import "math"

// AdaptiveChoice is the codec SelectAlgorithm recommends for a sample.
// It is distinct from the container's Algorithm tag: AdaptiveStore has no
// representation in the container format (the algorithm tag is LZ77 or
// RLE only) and tells the caller to skip compression entirely and store
// the bytes as-is.
type AdaptiveChoice int

const (
	AdaptiveRLE AdaptiveChoice = iota
	AdaptiveLZ77
	AdaptiveStore
)

func (c AdaptiveChoice) String() string {
	switch c {
	case AdaptiveRLE:
		return "rle"
	case AdaptiveLZ77:
		return "lz77"
	case AdaptiveStore:
		return "store"
	default:
		return "unknown"
	}
}

// adaptiveSampleLimit bounds how much of a large input SelectAlgorithm
// inspects; the three statistics it computes are all running sums so a
// prefix sample is representative without scanning the whole input.
const adaptiveSampleLimit = 64 * 1024

// Thresholds are tuned against CompressRLE's minimum run length (3) and
// a handful of representative inputs; they are reasonable defaults, not
// derived constants.
const (
	runRatioThreshold    = 0.20 // fraction of bytes inside runs >= rleMinRunLen
	entropyStoreBitsMax  = 7.5  // bits/byte at or above this: treat as incompressible
	uniquenessLZ77Cutoff = 0.60 // unique-byte fraction above this favors LZ77 over RLE
)

// SelectAlgorithm inspects a sample of data and recommends a codec: RLE
// when the data is dominated by repeated-byte runs, LZ77 when it has
// exploitable structure without being run-dominated, or Store when it
// looks close to random, based on run ratio, Shannon entropy, and
// alphabet uniqueness sampling. The returned Config is only meaningful
// alongside AdaptiveLZ77.
func SelectAlgorithm(sample []byte) (AdaptiveChoice, Config) {
	if len(sample) > adaptiveSampleLimit {
		sample = sample[:adaptiveSampleLimit]
	}
	if len(sample) == 0 {
		return AdaptiveStore, BalancedConfig()
	}

	runRatio := runRatioOf(sample)
	entropy := shannonEntropy(sample)
	uniqueness := alphabetUniqueness(sample)

	if runRatio >= runRatioThreshold && uniqueness < uniquenessLZ77Cutoff {
		return AdaptiveRLE, Config{}
	}
	if entropy >= entropyStoreBitsMax {
		return AdaptiveStore, Config{}
	}

	cfg := BalancedConfig()
	if uniqueness < 0.25 {
		cfg = BestConfig() // small alphabet, long-range matches pay off
	}
	return AdaptiveLZ77, cfg
}

// runRatioOf returns the fraction of sample's bytes that fall inside a run
// of at least rleMinRunLen identical bytes, the same run definition
// CompressRLE uses to decide when a repeat record beats literal bytes.
func runRatioOf(sample []byte) float64 {
	n := len(sample)
	runBytes := 0
	i := 0
	for i < n {
		j := i + 1
		for j < n && sample[j] == sample[i] {
			j++
		}
		runLen := j - i
		if runLen >= rleMinRunLen {
			runBytes += runLen
		}
		i = j
	}
	return float64(runBytes) / float64(n)
}

// shannonEntropy returns the zero-order entropy of sample in bits/byte.
func shannonEntropy(sample []byte) float64 {
	var counts [256]int
	for _, b := range sample {
		counts[b]++
	}

	n := float64(len(sample))
	entropy := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// alphabetUniqueness returns the fraction of the 256 possible byte values
// that appear at least once in sample.
func alphabetUniqueness(sample []byte) float64 {
	var seen [256]bool
	distinct := 0
	for _, b := range sample {
		if !seen[b] {
			seen[b] = true
			distinct++
		}
	}
	return float64(distinct) / 256.0
}
