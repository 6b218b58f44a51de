package rocfft

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseToken parses a kernel token in the grammar from spec.md §6:
//
//	<type>_len_<L0>[_<L1>...]_<precision>_<ip|op>_batch_<N>
//	  _istride_<S0>[_<Si>...]_<ITYPE>
//	  _ostride_<S0>[_<Si>...]_<OTYPE>
//	  _idist_<D>_odist_<D>_ioffset_<O>[_<Oj>]_ooffset_<O>[_<Oj>]
//
// where <type> is one of complex_forward, complex_inverse, real_forward,
// real_inverse and ITYPE/OTYPE are one of CI, CP, R, HI, HP. It is the
// grammar the test harness uses to request a specific plan shape; a
// canonical token can be recovered from a Descriptor with FormatToken.
func ParseToken(token string) (RawDescriptor, error) {
	parts := strings.Split(token, "_")
	pos := 0

	next := func() (string, bool) {
		if pos >= len(parts) {
			return "", false
		}
		v := parts[pos]
		pos++
		return v, true
	}

	expect := func(want string) error {
		v, ok := next()
		if !ok {
			return tokenError("expected %q, token ended early", want)
		}
		if v != want {
			return tokenError("expected %q, got %q", want, v)
		}
		return nil
	}

	readInts := func() ([]int, error) {
		var out []int
		for pos < len(parts) {
			n, err := strconv.Atoi(parts[pos])
			if err != nil {
				break
			}
			out = append(out, n)
			pos++
		}
		if len(out) == 0 {
			return nil, tokenError("expected at least one integer at %q", strings.Join(parts[pos:], "_"))
		}
		return out, nil
	}

	direction, err := parseTokenType(&pos, parts)
	if err != nil {
		return RawDescriptor{}, err
	}

	if err := expect("len"); err != nil {
		return RawDescriptor{}, err
	}

	lengths, err := readInts()
	if err != nil {
		return RawDescriptor{}, err
	}
	if len(lengths) > 3 {
		return RawDescriptor{}, tokenError("rank %d exceeds 3", len(lengths))
	}

	precisionTok, ok := next()
	if !ok {
		return RawDescriptor{}, tokenError("missing precision")
	}
	precision, err := parseTokenPrecision(precisionTok)
	if err != nil {
		return RawDescriptor{}, err
	}

	placementTok, ok := next()
	if !ok {
		return RawDescriptor{}, tokenError("missing placement")
	}
	placement, err := parseTokenPlacement(placementTok)
	if err != nil {
		return RawDescriptor{}, err
	}

	if err := expect("batch"); err != nil {
		return RawDescriptor{}, err
	}
	batchTok, ok := next()
	if !ok {
		return RawDescriptor{}, tokenError("missing batch count")
	}
	batch, err := strconv.Atoi(batchTok)
	if err != nil {
		return RawDescriptor{}, tokenError("invalid batch count %q", batchTok)
	}

	if err := expect("istride"); err != nil {
		return RawDescriptor{}, err
	}
	istride, err := readInts()
	if err != nil {
		return RawDescriptor{}, err
	}
	itypeTok, ok := next()
	if !ok {
		return RawDescriptor{}, tokenError("missing ITYPE")
	}
	inputLayout, err := parseTokenLayoutCode(itypeTok)
	if err != nil {
		return RawDescriptor{}, err
	}

	if err := expect("ostride"); err != nil {
		return RawDescriptor{}, err
	}
	ostride, err := readInts()
	if err != nil {
		return RawDescriptor{}, err
	}
	otypeTok, ok := next()
	if !ok {
		return RawDescriptor{}, tokenError("missing OTYPE")
	}
	outputLayout, err := parseTokenLayoutCode(otypeTok)
	if err != nil {
		return RawDescriptor{}, err
	}

	if err := expect("idist"); err != nil {
		return RawDescriptor{}, err
	}
	idistTok, ok := next()
	if !ok {
		return RawDescriptor{}, tokenError("missing idist")
	}
	idist, err := strconv.Atoi(idistTok)
	if err != nil {
		return RawDescriptor{}, tokenError("invalid idist %q", idistTok)
	}

	if err := expect("odist"); err != nil {
		return RawDescriptor{}, err
	}
	odistTok, ok := next()
	if !ok {
		return RawDescriptor{}, tokenError("missing odist")
	}
	odist, err := strconv.Atoi(odistTok)
	if err != nil {
		return RawDescriptor{}, tokenError("invalid odist %q", odistTok)
	}

	if err := expect("ioffset"); err != nil {
		return RawDescriptor{}, err
	}
	ioffset, err := readInts()
	if err != nil {
		return RawDescriptor{}, err
	}

	if err := expect("ooffset"); err != nil {
		return RawDescriptor{}, err
	}
	ooffset, err := readInts()
	if err != nil {
		return RawDescriptor{}, err
	}

	if pos != len(parts) {
		return RawDescriptor{}, tokenError("trailing tokens: %q", strings.Join(parts[pos:], "_"))
	}

	raw := RawDescriptor{
		Rank:        len(lengths),
		Batch:       batch,
		Precision:   precision,
		Direction:   direction,
		Placement:   placement,
		InputLayout: inputLayout, OutputLayout: outputLayout,
		IDist: idist, ODist: odist,
		IOffset: ioffset[0], OOffset: ooffset[0],
	}
	copy(raw.Length[:], lengths)
	copy(raw.IStride[:len(istride)], istride)
	copy(raw.OStride[:len(ostride)], ostride)

	return raw, nil
}

func parseTokenType(pos *int, parts []string) (Direction, error) {
	if *pos+1 >= len(parts) {
		return 0, tokenError("token too short to contain a type")
	}
	tok := parts[*pos] + "_" + parts[*pos+1]
	*pos += 2

	switch tok {
	case "complex_forward", "real_forward":
		return DirectionForward, nil
	case "complex_inverse", "real_inverse":
		return DirectionInverse, nil
	default:
		return 0, tokenError("unknown transform type %q", tok)
	}
}

func parseTokenPrecision(tok string) (Precision, error) {
	switch tok {
	case "single":
		return PrecisionSingle, nil
	case "double":
		return PrecisionDouble, nil
	default:
		return 0, tokenError("unknown precision %q", tok)
	}
}

func parseTokenPlacement(tok string) (Placement, error) {
	switch tok {
	case "ip":
		return PlacementInPlace, nil
	case "op":
		return PlacementOutOfPlace, nil
	default:
		return 0, tokenError("unknown placement %q", tok)
	}
}

func parseTokenLayoutCode(tok string) (Layout, error) {
	switch tok {
	case "CI":
		return LayoutComplexInterleaved, nil
	case "CP":
		return LayoutComplexPlanar, nil
	case "R":
		return LayoutReal, nil
	case "HI":
		return LayoutHermitianInterleaved, nil
	case "HP":
		return LayoutHermitianPlanar, nil
	default:
		return 0, tokenError("unknown buffer type code %q", tok)
	}
}

func layoutCode(l Layout) string {
	switch l {
	case LayoutComplexInterleaved:
		return "CI"
	case LayoutComplexPlanar:
		return "CP"
	case LayoutReal:
		return "R"
	case LayoutHermitianInterleaved:
		return "HI"
	case LayoutHermitianPlanar:
		return "HP"
	default:
		return "?"
	}
}

// FormatToken renders d in the same grammar ParseToken accepts. Two
// descriptors that normalize identically produce the same token, which
// is the plan-determinism property from spec.md §8 expressed as a string.
func FormatToken(d Descriptor) string {
	var b strings.Builder

	domain := "complex"
	if d.InputLayout == LayoutReal || d.OutputLayout == LayoutReal {
		domain = "real"
	}
	b.WriteString(domain)
	b.WriteByte('_')
	b.WriteString(d.Direction.String())
	b.WriteString("_len")

	for i := range d.Rank {
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(d.Length[i]))
	}

	b.WriteByte('_')
	b.WriteString(d.Precision.String())

	if d.Placement == PlacementInPlace {
		b.WriteString("_ip")
	} else {
		b.WriteString("_op")
	}

	b.WriteString("_batch_")
	b.WriteString(strconv.Itoa(d.Batch))

	b.WriteString("_istride")
	for i := range d.Rank {
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(d.IStride[i]))
	}
	b.WriteByte('_')
	b.WriteString(layoutCode(d.InputLayout))

	b.WriteString("_ostride")
	for i := range d.Rank {
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(d.OStride[i]))
	}
	b.WriteByte('_')
	b.WriteString(layoutCode(d.OutputLayout))

	b.WriteString("_idist_")
	b.WriteString(strconv.Itoa(d.IDist))
	b.WriteString("_odist_")
	b.WriteString(strconv.Itoa(d.ODist))
	b.WriteString("_ioffset_")
	b.WriteString(strconv.Itoa(d.IOffset))
	b.WriteString("_ooffset_")
	b.WriteString(strconv.Itoa(d.OOffset))

	return b.String()
}

func tokenError(format string, args ...any) error {
	return newError(ErrKindInvalidConfig, fmt.Sprintf(format, args...), nil)
}
