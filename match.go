// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzutf8

package lzutf8

// match is a back-reference candidate.
type match struct {
	length   int
	distance int
}

// matchScore weighs a candidate so cheaper 2-byte pointers win over slightly longer
// 3-byte ones. It is length*1.5 for short distances and length otherwise, scaled by 2
// to stay in integers.
func matchScore(distance, length int) int {
	if distance < shortDistanceLimit {
		return length * 3
	}

	return length * 2
}

// longestMatch compares src[start:] with src[pos:] over at most maxLen bytes and returns
// the encodable match length, or 0 if the candidate is too short.
//
// A run that fills the whole window counts fully. Otherwise the length is one less than
// the mismatch offset, and a mismatch at offset MinSequenceLength or earlier rejects
// the candidate.
func longestMatch(src []byte, start, pos, maxLen int) int {
	for k := 0; k < maxLen; k++ {
		if src[start+k] == src[pos+k] {
			continue
		}

		if k <= MinSequenceLength {
			return 0
		}

		return k - 1
	}

	return maxLen
}

// findBestMatch scans the candidate positions for pos and returns the highest scoring
// match. Ties keep the earliest candidate.
func findBestMatch(src []byte, pos int, candidates []int) (best match, ok bool) {
	maxLen := min(len(src)-pos, MaxSequenceLength)
	bestScore := 0

	for _, start := range candidates {
		distance := pos - start
		if distance < 1 || distance > MaxMatchDistance {
			continue
		}

		length := longestMatch(src, start, pos, maxLen)
		if length == 0 {
			continue
		}

		if score := matchScore(distance, length); !ok || score > bestScore {
			best = match{length: length, distance: distance}
			bestScore = score
			ok = true
		}
	}

	return best, ok
}
