package rocfft

import "testing"

func TestParseTokenComplexForward64(t *testing.T) {
	t.Parallel()

	raw, err := ParseToken("complex_forward_len_64_single_ip_batch_1_istride_1_CI_ostride_1_CI_idist_64_odist_64_ioffset_0_ooffset_0")
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if raw.Rank != 1 || raw.Length[0] != 64 {
		t.Errorf("rank/length = %d/%v, want 1/[64]", raw.Rank, raw.Length)
	}
	if raw.Batch != 1 || raw.Precision != PrecisionSingle || raw.Direction != DirectionForward || raw.Placement != PlacementInPlace {
		t.Errorf("unexpected scalar fields: %+v", raw)
	}
	if raw.InputLayout != LayoutComplexInterleaved || raw.OutputLayout != LayoutComplexInterleaved {
		t.Errorf("layouts = %v/%v, want complex interleaved both sides", raw.InputLayout, raw.OutputLayout)
	}

	if _, err := Normalize(raw); err != nil {
		t.Errorf("Normalize(parsed token): %v", err)
	}
}

func TestParseTokenRealForwardScenario5(t *testing.T) {
	t.Parallel()

	raw, err := ParseToken("real_forward_len_8_single_ip_batch_3_istride_1_R_ostride_1_HI_idist_10_odist_5_ioffset_0_ooffset_0")
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if raw.InputLayout != LayoutReal || raw.OutputLayout != LayoutHermitianInterleaved {
		t.Errorf("layouts = %v/%v, want real/hermitian_interleaved", raw.InputLayout, raw.OutputLayout)
	}
	if raw.IDist != 10 || raw.ODist != 5 {
		t.Errorf("idist/odist = %d/%d, want 10/5", raw.IDist, raw.ODist)
	}

	d, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got := d.MemoryLength(LayoutHermitianInterleaved)[0]; got != 5 {
		t.Errorf("hermitian memory length = %d, want 5", got)
	}
}

func TestParseToken3DRank(t *testing.T) {
	t.Parallel()

	raw, err := ParseToken("complex_inverse_len_192_84_84_single_op_batch_1_istride_1_192_16128_CI_ostride_1_192_16128_CI_idist_1354752_odist_1354752_ioffset_0_ooffset_0")
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if raw.Rank != 3 || raw.Length != [3]int{192, 84, 84} {
		t.Errorf("rank/length = %d/%v, want 3/[192 84 84]", raw.Rank, raw.Length)
	}
	if raw.Direction != DirectionInverse || raw.Placement != PlacementOutOfPlace {
		t.Errorf("direction/placement = %v/%v, want inverse/out_of_place", raw.Direction, raw.Placement)
	}
}

func TestParseTokenRejectsUnknownLayoutCode(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("complex_forward_len_64_single_ip_batch_1_istride_1_ZZ_ostride_1_CI_idist_64_odist_64_ioffset_0_ooffset_0")
	if !asErrorKind(err, ErrKindInvalidConfig) {
		t.Fatalf("err = %v, want ErrKindInvalidConfig", err)
	}
}

func TestParseTokenRejectsMissingBatchKeyword(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("complex_forward_len_64_single_ip_3_istride_1_CI_ostride_1_CI_idist_64_odist_64_ioffset_0_ooffset_0")
	if !asErrorKind(err, ErrKindInvalidConfig) {
		t.Fatalf("err = %v, want ErrKindInvalidConfig", err)
	}
}

func TestParseTokenRejectsTrailingGarbage(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("complex_forward_len_64_single_ip_batch_1_istride_1_CI_ostride_1_CI_idist_64_odist_64_ioffset_0_ooffset_0_extra")
	if !asErrorKind(err, ErrKindInvalidConfig) {
		t.Fatalf("err = %v, want ErrKindInvalidConfig", err)
	}
}

func TestFormatTokenRoundTripsThroughNormalize(t *testing.T) {
	t.Parallel()

	raw := RawDescriptor{
		Rank: 1, Length: [3]int{64}, Batch: 1,
		Precision: PrecisionSingle, Direction: DirectionForward, Placement: PlacementInPlace,
		InputLayout: LayoutComplexInterleaved, OutputLayout: LayoutComplexInterleaved,
	}

	d, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	token := FormatToken(d)

	reparsed, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken(FormatToken(d)) = %v; token = %q", err, token)
	}

	d2, err := Normalize(reparsed)
	if err != nil {
		t.Fatalf("Normalize(reparsed): %v", err)
	}

	if d2 != d {
		t.Errorf("round-tripped descriptor = %+v, want %+v (token %q)", d2, d, token)
	}
}
