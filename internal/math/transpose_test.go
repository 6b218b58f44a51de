package math

import "testing"

func TestComputeSquareTransposePairs(t *testing.T) {
	t.Parallel()

	n := 4

	pairs := ComputeSquareTransposePairs(n)
	if len(pairs) != n*(n-1)/2 {
		t.Fatalf("pairs length = %d, want %d", len(pairs), n*(n-1)/2)
	}

	data := make([]int, n*n)
	for i := range data {
		data[i] = i + 1
	}

	ApplyTransposePairs(data, pairs)

	for i := range n {
		for j := range n {
			got := data[i*n+j]

			want := j*n + i + 1
			if got != want {
				t.Fatalf("data[%d,%d] = %d, want %d", i, j, got, want)
			}
		}
	}
}

func TestComputeSquareTransposePairsEdgeCases(t *testing.T) {
	t.Parallel()

	if pairs := ComputeSquareTransposePairs(0); pairs != nil {
		t.Errorf("ComputeSquareTransposePairs(0) should return nil, got %v", pairs)
	}

	if pairs := ComputeSquareTransposePairs(-1); pairs != nil {
		t.Errorf("ComputeSquareTransposePairs(-1) should return nil, got %v", pairs)
	}

	if pairs := ComputeSquareTransposePairs(1); len(pairs) != 0 {
		t.Errorf("ComputeSquareTransposePairs(1) should be empty, got %v", pairs)
	}
}

func TestComputeSquareTransposePairsCaching(t *testing.T) {
	t.Parallel()

	n := 8

	pairs1 := ComputeSquareTransposePairs(n)
	pairs2 := ComputeSquareTransposePairs(n)

	if len(pairs1) != len(pairs2) {
		t.Fatalf("cached pairs length mismatch: %d vs %d", len(pairs1), len(pairs2))
	}

	for i := range pairs1 {
		if pairs1[i] != pairs2[i] {
			t.Errorf("pairs mismatch at index %d: %v vs %v", i, pairs1[i], pairs2[i])
		}
	}
}

func TestApplyTransposePairsFloat32(t *testing.T) {
	t.Parallel()

	n := 3
	pairs := ComputeSquareTransposePairs(n)

	data := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	ApplyTransposePairs(data, pairs)

	expected := []float32{1, 4, 7, 2, 5, 8, 3, 6, 9}
	for i := range data {
		if data[i] != expected[i] {
			t.Errorf("data[%d] = %v, want %v", i, data[i], expected[i])
		}
	}
}
