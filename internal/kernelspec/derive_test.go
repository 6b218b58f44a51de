package kernelspec

import "testing"

func TestDeriveLength64(t *testing.T) {
	t.Parallel()

	spec, err := Derive(Options{Length: 64, ElementBytes: 4, Tiling: TilingRow, DirectionSign: -1, Scale: 1})
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	if spec.ThreadsPerTransform*spec.CnPerWI != 64 {
		t.Errorf("threads*cnPerWI = %d, want 64", spec.ThreadsPerTransform*spec.CnPerWI)
	}

	for _, f := range spec.FactorSequence {
		if spec.ThreadsPerTransform%f != 0 {
			t.Errorf("factor %d does not divide threads_per_transform %d", f, spec.ThreadsPerTransform)
		}
	}

	if !spec.HalfLDS {
		t.Errorf("HalfLDS = false, want true for a non-block-compute leaf")
	}
}

func TestDeriveBlockComputeDisablesHalfLDS(t *testing.T) {
	t.Parallel()

	spec, err := Derive(Options{Length: 64, ElementBytes: 4, Tiling: TilingColumnSBCC, BlockCompute: true, LargeTwiddle: true})
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	if spec.HalfLDS {
		t.Errorf("HalfLDS = true, want false when block_compute is active")
	}

	if !spec.LargeTwiddle {
		t.Errorf("LargeTwiddle = false, want true")
	}
}

func TestDeriveTransformsPerBlockRespectsLDSBudget(t *testing.T) {
	t.Parallel()

	spec, err := Derive(Options{Length: 2048, ElementBytes: 8, Tiling: TilingRow})
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	bytesPerElement := 8 * 2
	if spec.TransformsPerBlock*2048*bytesPerElement > LDSByteLimit {
		t.Errorf("transforms_per_block=%d exceeds LDS budget", spec.TransformsPerBlock)
	}
}

func TestDeriveUnsupportedLength(t *testing.T) {
	t.Parallel()

	_, err := Derive(Options{Length: 131, ElementBytes: 4})
	if err == nil {
		t.Fatal("expected ErrUnsupportedLength for a prime beyond the small-radix set")
	}
}

func TestDerive2DSingleBoundedByPairedLength(t *testing.T) {
	t.Parallel()

	unpaired, err := Derive(Options{Length: 16, ElementBytes: 4, Tiling: Tiling2DSingle})
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	paired, err := Derive(Options{Length: 16, ElementBytes: 4, Tiling: Tiling2DSingle, PairedLength: 2048})
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	if paired.TransformsPerBlock > unpaired.TransformsPerBlock {
		t.Errorf("paired transforms_per_block=%d should not exceed unpaired=%d", paired.TransformsPerBlock, unpaired.TransformsPerBlock)
	}
}
