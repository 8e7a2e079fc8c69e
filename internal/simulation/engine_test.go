package simulation

import (
	"errors"
	"math/rand"
	"testing"
)

var history = []int{3, 5, 4, 2, 6, 4, 5, 3, 7, 4, 5, 6, 3, 4, 5}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestEngine_FixedHorizonBounds(t *testing.T) {
	e := NewEngine(history, seeded(1))

	outcomes, err := e.Run(FixedHorizon, 20, 500)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(outcomes) != 500 {
		t.Fatalf("expected 500 outcomes, got %d", len(outcomes))
	}

	// Every total must lie within [horizon*min, horizon*max].
	for _, v := range outcomes {
		if v < 20*2 || v > 20*7 {
			t.Fatalf("outcome %d outside [40, 140]", v)
		}
	}
}

func TestEngine_FixedHorizonConstantHistory(t *testing.T) {
	constant := []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4}
	e := NewEngine(constant, seeded(7))

	outcomes, err := e.Run(FixedHorizon, 10, 50)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for _, v := range outcomes {
		if v != 40 {
			t.Fatalf("constant history: expected every outcome 40, got %d", v)
		}
	}
}

func TestEngine_FixedWorkConstantHistory(t *testing.T) {
	constant := []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5}
	e := NewEngine(constant, seeded(7))

	// 12 items at 5/day completes on day 3.
	outcomes, err := e.Run(FixedWork, 12, 50)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for _, v := range outcomes {
		if v != 3 {
			t.Fatalf("constant history: expected every outcome 3, got %d", v)
		}
	}
}

func TestEngine_FixedWorkPositiveOutcomes(t *testing.T) {
	e := NewEngine(history, seeded(3))

	outcomes, err := e.Run(FixedWork, 100, 500)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for _, v := range outcomes {
		if v <= 0 {
			t.Fatalf("days outcome must be positive, got %d", v)
		}
	}
}

func TestEngine_OutcomesSorted(t *testing.T) {
	e := NewEngine(history, seeded(11))

	outcomes, err := e.Run(FixedHorizon, 30, 200)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for i := 1; i < len(outcomes); i++ {
		if outcomes[i] < outcomes[i-1] {
			t.Fatalf("outcomes not sorted at index %d", i)
		}
	}
}

func TestEngine_SeededReproducibility(t *testing.T) {
	first, err := NewEngine(history, seeded(42)).Run(FixedHorizon, 65, 1000)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := NewEngine(history, seeded(42)).Run(FixedHorizon, 65, 1000)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("outcome %d differs between identically seeded runs: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestEngine_AllZeroHistoryFixedWork(t *testing.T) {
	zeros := []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	e := NewEngine(zeros, seeded(1))

	_, err := e.Run(FixedWork, 5, 100)
	if !errors.Is(err, ErrAllZeroThroughput) {
		t.Fatalf("expected ErrAllZeroThroughput, got %v", err)
	}
}

func TestEngine_AllZeroHistoryFixedHorizon(t *testing.T) {
	// A zero history is degenerate only for fixed-work; fixed-horizon just
	// sums to zero.
	zeros := []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	e := NewEngine(zeros, seeded(1))

	outcomes, err := e.Run(FixedHorizon, 10, 10)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for _, v := range outcomes {
		if v != 0 {
			t.Fatalf("expected all-zero outcomes, got %d", v)
		}
	}
}

func TestEngine_EmptyHistory(t *testing.T) {
	e := NewEngine(nil, seeded(1))
	if _, err := e.Run(FixedHorizon, 10, 10); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}
}
