// This file implements the choice of operand sizes to benchmark.

package calibration

import "strconv"

// ─────────────────────────────────────────────────────────────────────────────
// Candidate Sizes
// ─────────────────────────────────────────────────────────────────────────────

// GenerateCandidateSizes returns the operand sizes, in words, at which
// schoolbook and one-level Karatsuba multiplication are compared.
//
// The rationale:
// - Below 8 words the Karatsuba bookkeeping always dominates
// - The cutover usually lands between 16 and 64 words on 64-bit machines
// - 32-bit words double the word count of the same bit size, so the range
//   is stretched accordingly
func GenerateCandidateSizes() []int {
	sizes := []int{8, 12, 16, 20, 24, 28, 32, 40, 48, 56, 64, 80, 96, 128}
	if strconv.IntSize == 32 {
		sizes = append(sizes, 160, 192, 256)
	}
	return sizes
}

// GenerateQuickCandidateSizes returns a reduced set for a fast calibration.
func GenerateQuickCandidateSizes() []int {
	return []int{16, 24, 32, 48, 64, 96}
}

// ─────────────────────────────────────────────────────────────────────────────
// Threshold Selection
// ─────────────────────────────────────────────────────────────────────────────

// SelectThreshold picks the smallest measured size from which Karatsuba wins
// at every larger size too. A single noisy win below the real cutover is
// therefore ignored. If Karatsuba never wins the largest size plus one is
// returned; measurements with errors are skipped. Zero means nothing was
// measured.
func SelectThreshold(measurements []Measurement) int {
	threshold := 0
	largest := 0
	for _, m := range measurements {
		if m.Err != nil {
			continue
		}
		largest = max(largest, m.Words)
		if m.Karatsuba < m.Schoolbook {
			if threshold == 0 {
				threshold = m.Words
			}
		} else {
			threshold = 0
		}
	}
	if largest == 0 {
		return 0
	}
	if threshold == 0 {
		return largest + 1
	}
	return threshold
}
