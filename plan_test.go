package rocfft

import (
	"testing"

	"github.com/LxyIsMyself/Copy-rocFFT/internal/rtccache"

	"github.com/LxyIsMyself/Copy-rocFFT/gpu"
)

func TestPlanCreateScenario1SingleLeaf64(t *testing.T) {
	t.Parallel()

	p, err := PlanCreate(RawDescriptor{
		Rank: 1, Length: [3]int{64}, Batch: 1,
		Precision: PrecisionSingle, Direction: DirectionForward, Placement: PlacementInPlace,
		InputLayout: LayoutComplexInterleaved, OutputLayout: LayoutComplexInterleaved,
	}, nil)
	if err != nil {
		t.Fatalf("PlanCreate: %v", err)
	}

	records := p.Schedule()
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}

	if records[0].GridDim[0] != 1 || records[0].BlockDim[0] != 64 {
		t.Errorf("grid/block = %v/%v, want [1]/[64]", records[0].GridDim, records[0].BlockDim)
	}
}

func TestPlanCreateScenario2FourThousandNinetySixTwoRecords(t *testing.T) {
	t.Parallel()

	p, err := PlanCreate(RawDescriptor{
		Rank: 1, Length: [3]int{4096}, Batch: 1,
		Precision: PrecisionSingle, Direction: DirectionForward, Placement: PlacementInPlace,
		InputLayout: LayoutComplexInterleaved, OutputLayout: LayoutComplexInterleaved,
	}, nil)
	if err != nil {
		t.Fatalf("PlanCreate: %v", err)
	}

	if len(p.Schedule()) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(p.Schedule()))
	}

	if p.ScratchBytes() <= 0 {
		t.Errorf("ScratchBytes = %d, want > 0", p.ScratchBytes())
	}
}

func TestPlanCreateScenario3ThreeDSixRecords(t *testing.T) {
	t.Parallel()

	p, err := PlanCreate(RawDescriptor{
		Rank: 3, Length: [3]int{192, 84, 84}, Batch: 1,
		Precision: PrecisionSingle, Direction: DirectionForward, Placement: PlacementOutOfPlace,
		InputLayout: LayoutComplexInterleaved, OutputLayout: LayoutComplexInterleaved,
	}, nil)
	if err != nil {
		t.Fatalf("PlanCreate: %v", err)
	}

	if len(p.Schedule()) != 6 {
		t.Fatalf("len(records) = %d, want 6", len(p.Schedule()))
	}
}

func TestPlanCreateScenario4Length35Double(t *testing.T) {
	t.Parallel()

	p, err := PlanCreate(RawDescriptor{
		Rank: 1, Length: [3]int{35}, Batch: 1,
		Precision: PrecisionDouble, Direction: DirectionForward, Placement: PlacementInPlace,
		InputLayout: LayoutComplexInterleaved, OutputLayout: LayoutComplexInterleaved,
	}, nil)
	if err != nil {
		t.Fatalf("PlanCreate: %v", err)
	}

	if len(p.Schedule()) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(p.Schedule()))
	}
}

func TestPlanCreateScenario5RealForwardBatch3(t *testing.T) {
	t.Parallel()

	p, err := PlanCreate(RawDescriptor{
		Rank: 1, Length: [3]int{8}, Batch: 3,
		Precision: PrecisionSingle, Direction: DirectionForward, Placement: PlacementInPlace,
		InputLayout: LayoutReal, OutputLayout: LayoutHermitianInterleaved,
	}, nil)
	if err != nil {
		t.Fatalf("PlanCreate: %v", err)
	}

	records := p.Schedule()
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}

	if records[0].BatchCount != 3 {
		t.Errorf("BatchCount = %d, want 3", records[0].BatchCount)
	}
}

func TestPlanCreateRejectsInvalidDescriptor(t *testing.T) {
	t.Parallel()

	_, err := PlanCreate(RawDescriptor{Rank: 0}, nil)
	if !asErrorKind(err, ErrKindInvalidConfig) {
		t.Fatalf("err = %v, want ErrKindInvalidConfig", err)
	}
}

func TestPlanCreateSameIdentityHitsCacheOnSecondCompile(t *testing.T) {
	t.Parallel()

	cache := rtccache.New(0)

	raw := RawDescriptor{
		Rank: 1, Length: [3]int{64}, Batch: 1,
		Precision: PrecisionSingle, Direction: DirectionForward, Placement: PlacementInPlace,
		InputLayout: LayoutComplexInterleaved, OutputLayout: LayoutComplexInterleaved,
	}

	if _, err := PlanCreate(raw, cache); err != nil {
		t.Fatalf("first PlanCreate: %v", err)
	}

	firstLen := cache.Len()

	if _, err := PlanCreate(raw, cache); err != nil {
		t.Fatalf("second PlanCreate: %v", err)
	}

	if cache.Len() != firstLen {
		t.Errorf("Len() = %d after second compile, want unchanged at %d (cache hit, not a new insert)", cache.Len(), firstLen)
	}
}

func TestPlanCreateSameIdentitySurvivesSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	cache := rtccache.New(0)

	raw := RawDescriptor{
		Rank: 1, Length: [3]int{64}, Batch: 1,
		Precision: PrecisionSingle, Direction: DirectionForward, Placement: PlacementInPlace,
		InputLayout: LayoutComplexInterleaved, OutputLayout: LayoutComplexInterleaved,
	}

	if _, err := PlanCreate(raw, cache); err != nil {
		t.Fatalf("PlanCreate: %v", err)
	}

	blob, err := cache.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	fresh := rtccache.New(0)
	if err := fresh.Deserialize(blob); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if fresh.Len() != cache.Len() {
		t.Errorf("fresh.Len() = %d, want %d", fresh.Len(), cache.Len())
	}
}

type recordingLauncher struct {
	launched []LaunchRecord
}

func (l *recordingLauncher) Launch(_ gpu.Stream, record LaunchRecord, _ string) error {
	l.launched = append(l.launched, record)

	return nil
}

func TestPlanExecuteDrivesLauncherInScheduleOrder(t *testing.T) {
	t.Parallel()

	p, err := PlanCreate(RawDescriptor{
		Rank: 1, Length: [3]int{4096}, Batch: 1,
		Precision: PrecisionSingle, Direction: DirectionForward, Placement: PlacementInPlace,
		InputLayout: LayoutComplexInterleaved, OutputLayout: LayoutComplexInterleaved,
	}, nil)
	if err != nil {
		t.Fatalf("PlanCreate: %v", err)
	}

	launcher := &recordingLauncher{}
	if err := p.Execute(launcher, nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(launcher.launched) != len(p.Schedule()) {
		t.Fatalf("launched %d records, want %d", len(launcher.launched), len(p.Schedule()))
	}
}

func TestPlanExecuteRejectsNilLauncher(t *testing.T) {
	t.Parallel()

	p, err := PlanCreate(RawDescriptor{
		Rank: 1, Length: [3]int{64}, Batch: 1,
		Precision: PrecisionSingle, Direction: DirectionForward, Placement: PlacementInPlace,
		InputLayout: LayoutComplexInterleaved, OutputLayout: LayoutComplexInterleaved,
	}, nil)
	if err != nil {
		t.Fatalf("PlanCreate: %v", err)
	}

	if err := p.Execute(nil, nil); !asErrorKind(err, ErrKindInvalidConfig) {
		t.Fatalf("err = %v, want ErrKindInvalidConfig", err)
	}
}

func asErrorKind(err error, kind ErrKind) bool {
	var e *Error
	if !asError(err, &e) {
		return false
	}

	return e.Kind == kind
}
