// Package testutil provides testing utilities for Tabular
package testutil

import (
	"math/rand"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// TestLogger creates a test logger that writes to the test output.
// The logger is automatically cleaned up when the test completes.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// Rand returns a seeded random source so randomized property tests are
// reproducible from the logged seed.
func Rand(t *testing.T) *rand.Rand {
	t.Helper()
	seed := rand.Int63()
	t.Logf("random seed: %d", seed)
	return rand.New(rand.NewSource(seed))
}

// RandomPositions generates a position list of length n over rows 1..rows,
// with duplicates and arbitrary order.
func RandomPositions(rng *rand.Rand, n, rows int) []int {
	positions := make([]int, n)
	for i := range positions {
		positions[i] = rng.Intn(rows) + 1
	}
	return positions
}

// ContiguousPositions generates the fully contiguous position list 1..rows.
func ContiguousPositions(rows int) []int {
	positions := make([]int, rows)
	for i := range positions {
		positions[i] = i + 1
	}
	return positions
}

// FragmentedPositions generates a maximally fragmented position list over
// 1..rows: no two consecutive entries are adjacent row numbers.
func FragmentedPositions(rows int) []int {
	positions := make([]int, 0, rows)
	for i := 1; i <= rows; i += 2 {
		positions = append(positions, i)
	}
	for i := 2; i <= rows; i += 2 {
		positions = append(positions, i)
	}
	return positions
}
