package mocks

import (
	"testing"
)

func TestPathGenerator_RandomWalk(t *testing.T) {
	gen := NewPathGenerator(42) // Fixed seed for reproducibility
	config := DefaultConfig()
	config.Length = 100

	path := gen.RandomWalk(config)

	if len(path) != 100 {
		t.Errorf("expected 100 points, got %d", len(path))
	}

	if path[0] != config.InitialPrice {
		t.Errorf("expected initial price %f, got %f", config.InitialPrice, path[0])
	}

	for i, p := range path {
		if p <= 0 {
			t.Errorf("non-positive price at index %d: %f", i, p)
		}
	}
}

func TestPathGenerator_Reproducibility(t *testing.T) {
	gen1 := NewPathGenerator(42)
	gen2 := NewPathGenerator(42)

	config := DefaultConfig()
	config.Length = 10

	path1 := gen1.RandomWalk(config)
	path2 := gen2.RandomWalk(config)

	for i := range path1 {
		if path1[i] != path2[i] {
			t.Errorf("path not reproducible at index %d: got %f and %f", i, path1[i], path2[i])
		}
	}
}

func TestPathGenerator_Different_Seeds(t *testing.T) {
	config := DefaultConfig()
	config.Length = 10

	path1 := NewPathGenerator(42).RandomWalk(config)
	path2 := NewPathGenerator(123).RandomWalk(config)

	sameCount := 0
	for i := range path1 {
		if path1[i] == path2[i] {
			sameCount++
		}
	}

	// Index 0 is the shared initial price.
	if sameCount == len(path1) {
		t.Error("different seeds produced identical paths")
	}
}

func TestPathGenerator_Ensemble(t *testing.T) {
	ensemble := NewPathGenerator(7).Ensemble(5, DefaultConfig())

	if ensemble.Len() != 5 {
		t.Errorf("expected 5 paths, got %d", ensemble.Len())
	}

	if err := ensemble.Validate(); err != nil {
		t.Errorf("expected a valid ensemble, got %v", err)
	}

	if ensemble.Params.StepSize != 1 {
		t.Errorf("expected per-step annualization, got step size %f", ensemble.Params.StepSize)
	}
}

func TestLinear(t *testing.T) {
	path := Linear(4, 10, 2)
	expected := []float64{10, 12, 14, 16}

	for i := range expected {
		if path[i] != expected[i] {
			t.Errorf("index %d: expected %f, got %f", i, expected[i], path[i])
		}
	}
}

func TestOscillating(t *testing.T) {
	path := Oscillating(9, 100, 10, 8)

	if path[0] != 100 {
		t.Errorf("expected center at index 0, got %f", path[0])
	}

	if path[2] != 110 {
		t.Errorf("expected peak at index 2, got %f", path[2])
	}
}

func TestEnsembleOf_Empty(t *testing.T) {
	ensemble := EnsembleOf()

	if ensemble.Validate() == nil {
		t.Error("expected an empty ensemble to be rejected")
	}
}
