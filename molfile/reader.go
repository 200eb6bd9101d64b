// File: reader.go
// Role: Parse, ParseString, ParseSDF and the per-record V2000 decoder.
// Determinism:
//   - Atoms and bonds are added in file order, so atom i of the file is atom
//     i-1 of the molecule and bond j is bond j-1.
//   - Bond Begin/End follow the file's first/second atom columns, which keeps
//     wedge anchoring intact.

package molfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/stereo"
)

// Sentinel errors. Returned errors wrap these with line context.
var (
	// ErrNoCountsLine is returned when the record ends before, or garbles, its counts line.
	ErrNoCountsLine = errors.New("molfile: counts line missing or malformed")

	// ErrUnsupportedVersion is returned for V3000 records.
	ErrUnsupportedVersion = errors.New("molfile: only V2000 records are supported")

	// ErrTruncated is returned when the atom or bond block is shorter than the counts line says.
	ErrTruncated = errors.New("molfile: record truncated")

	// ErrBadAtomLine is returned for an atom line that cannot be decoded.
	ErrBadAtomLine = errors.New("molfile: bad atom line")

	// ErrBadBondLine is returned for a bond line that cannot be decoded.
	ErrBadBondLine = errors.New("molfile: bad bond line")

	// ErrBadPropertyLine is returned for a malformed "M  CHG" line.
	ErrBadPropertyLine = errors.New("molfile: bad property line")
)

const (
	recordEnd   = "$$$$"
	propertyEnd = "M  END"
	maxLineLen  = 1 << 20
)

// atomRecord is one decoded atom line.
type atomRecord struct {
	symbol      string
	x, y, z     float64
	charge      int
	unspecified bool
}

// bondRecord is one decoded bond line with 0-based atom indices.
type bondRecord struct {
	begin, end int
	order      core.Order
	stereo     core.BondStereo
}

// Parse reads the first record of a molfile or SD file.
func Parse(r io.Reader) (*core.Molecule, error) {
	records, err := readRecords(r, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.Wrap(ErrNoCountsLine, "empty input")
	}

	return parseRecord(records[0].lines, records[0].first)
}

// ParseString is Parse over a string.
func ParseString(text string) (*core.Molecule, error) {
	return Parse(strings.NewReader(text))
}

// ParseSDF reads every record of an SD file. Blank records (for example after
// a trailing "$$$$") are skipped. The first bad record stops the read.
func ParseSDF(r io.Reader) ([]*core.Molecule, error) {
	records, err := readRecords(r, -1)
	if err != nil {
		return nil, err
	}

	out := make([]*core.Molecule, 0, len(records))
	for i, rec := range records {
		m, err := parseRecord(rec.lines, rec.first)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i+1)
		}
		out = append(out, m)
	}
	klog.V(2).Infof("molfile: read %d records", len(out))

	return out, nil
}

// Dimension reports which coordinate set a molecule carries: Dim3D when the
// first atom with coordinates has only 3D ones, Dim2D otherwise.
func Dimension(m *core.Molecule) stereo.Dimension {
	if m == nil {
		return stereo.Dim2D
	}
	s := m.Snapshot()
	for i := 0; i < s.AtomCount(); i++ {
		a := s.Atom(i)
		if a.Point2 != nil {
			return stereo.Dim2D
		}
		if a.Point3 != nil {
			return stereo.Dim3D
		}
	}

	return stereo.Dim2D
}

// record is the raw text of one molecule and the 1-based line number of its
// first line in the input.
type record struct {
	lines []string
	first int
}

// readRecords splits the input at "$$$$" lines. limit < 0 reads everything.
func readRecords(r io.Reader, limit int) ([]record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLen)

	var (
		out  []record
		cur  = record{first: 1}
		line int
	)
	flush := func(next int) {
		if !blank(cur.lines) {
			out = append(out, cur)
		}
		cur = record{first: next}
	}
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == recordEnd {
			flush(line + 1)
			if limit > 0 && len(out) >= limit {
				return out, nil
			}
			continue
		}
		cur.lines = append(cur.lines, text)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "line %d", line+1)
	}
	flush(line + 1)

	return out, nil
}

func blank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}

	return true
}

// parseRecord decodes one V2000 record into a molecule.
//
// Implementation:
//   - Stage 1: Counts line (line 4), version check.
//   - Stage 2: Atom block, bond block.
//   - Stage 3: Property block up to "M  END" (charges only).
//   - Stage 4: Choose 2D or 3D points, build the molecule, fill hydrogens.
func parseRecord(lines []string, first int) (*core.Molecule, error) {
	lineNo := func(i int) int { return first + i }

	// 1) Counts line.
	if len(lines) < 4 {
		return nil, errors.Wrapf(ErrNoCountsLine, "line %d", lineNo(len(lines)))
	}
	counts := lines[3]
	if strings.Contains(counts, "V3000") {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "line %d", lineNo(3))
	}
	nAtoms, err1 := intField(counts, 0, 3)
	nBonds, err2 := intField(counts, 3, 6)
	if err1 != nil || err2 != nil || nAtoms < 0 || nBonds < 0 {
		return nil, errors.Wrapf(ErrNoCountsLine, "line %d: %q", lineNo(3), counts)
	}
	if len(lines) < 4+nAtoms+nBonds {
		return nil, errors.Wrapf(ErrTruncated, "line %d: want %d atoms and %d bonds",
			lineNo(len(lines)), nAtoms, nBonds)
	}

	// 2) Atom and bond blocks.
	atoms := make([]atomRecord, nAtoms)
	for i := range atoms {
		at := 4 + i
		a, err := parseAtomLine(lines[at])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo(at))
		}
		atoms[i] = a
	}
	bonds := make([]bondRecord, nBonds)
	for i := range bonds {
		at := 4 + nAtoms + i
		b, err := parseBondLine(lines[at], nAtoms)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo(at))
		}
		bonds[i] = b
	}

	// 3) Properties. The first CHG line supersedes the atom block charges.
	charged := false
	for i := 4 + nAtoms + nBonds; i < len(lines); i++ {
		l := lines[i]
		if strings.HasPrefix(l, propertyEnd) {
			break
		}
		if !strings.HasPrefix(l, "M  CHG") {
			continue
		}
		if !charged {
			for k := range atoms {
				atoms[k].charge = 0
			}
			charged = true
		}
		if err := applyCharges(l, atoms); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo(i))
		}
	}

	// 4) Build.
	spatial := len(lines[1]) >= 22 && lines[1][20:22] == "3D"
	for _, a := range atoms {
		spatial = spatial || a.z != 0
	}
	m := core.NewMolecule()
	for i, a := range atoms {
		opts := []core.AtomOption{core.WithCharge(a.charge)}
		if spatial {
			opts = append(opts, core.WithPoint3(a.x, a.y, a.z))
		} else {
			opts = append(opts, core.WithPoint2(a.x, a.y))
		}
		if a.unspecified {
			opts = append(opts, core.WithUnspecifiedParity())
		}
		if _, err := m.AddAtom(a.symbol, opts...); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo(4+i))
		}
	}
	for i, b := range bonds {
		if _, err := m.AddBond(b.begin, b.end, b.order, core.WithStereo(b.stereo)); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo(4+nAtoms+i))
		}
	}
	m.FillImplicitHydrogens()

	return m, nil
}

// parseAtomLine decodes "xxxxx.xxxxyyyyy.yyyyzzzzz.zzzz aaaddcccssshhh...".
func parseAtomLine(l string) (atomRecord, error) {
	if len(l) < 34 {
		return atomRecord{}, errors.Wrapf(ErrBadAtomLine, "too short: %q", l)
	}
	var (
		a   atomRecord
		err error
	)
	if a.x, err = floatField(l, 0, 10); err != nil {
		return a, errors.Wrap(ErrBadAtomLine, "x")
	}
	if a.y, err = floatField(l, 10, 20); err != nil {
		return a, errors.Wrap(ErrBadAtomLine, "y")
	}
	if a.z, err = floatField(l, 20, 30); err != nil {
		return a, errors.Wrap(ErrBadAtomLine, "z")
	}
	a.symbol = strings.TrimSpace(l[31:34])
	if a.symbol == "" {
		return a, errors.Wrap(ErrBadAtomLine, "empty symbol")
	}

	code, err := optionalIntField(l, 36, 39)
	if err != nil {
		return a, errors.Wrap(ErrBadAtomLine, "charge")
	}
	a.charge = chargeFromCode(code)

	parity, err := optionalIntField(l, 39, 42)
	if err != nil {
		return a, errors.Wrap(ErrBadAtomLine, "parity")
	}
	a.unspecified = parity == 3

	return a, nil
}

// parseBondLine decodes "111222tttsss...". Atom numbers are 1-based in the file.
func parseBondLine(l string, nAtoms int) (bondRecord, error) {
	if len(l) < 9 {
		return bondRecord{}, errors.Wrapf(ErrBadBondLine, "too short: %q", l)
	}
	a1, err1 := intField(l, 0, 3)
	a2, err2 := intField(l, 3, 6)
	kind, err3 := intField(l, 6, 9)
	if err1 != nil || err2 != nil || err3 != nil {
		return bondRecord{}, errors.Wrapf(ErrBadBondLine, "%q", l)
	}
	if a1 < 1 || a1 > nAtoms || a2 < 1 || a2 > nAtoms {
		return bondRecord{}, errors.Wrapf(ErrBadBondLine, "atom out of range: %d-%d", a1, a2)
	}
	code, err := optionalIntField(l, 9, 12)
	if err != nil {
		return bondRecord{}, errors.Wrap(ErrBadBondLine, "stereo")
	}

	b := bondRecord{begin: a1 - 1, end: a2 - 1, order: orderFromType(kind)}
	switch {
	case b.order == core.OrderSingle && code == 1:
		b.stereo = core.StereoUp
	case b.order == core.OrderSingle && code == 6:
		b.stereo = core.StereoDown
	case b.order == core.OrderSingle && code == 4:
		b.stereo = core.StereoUpOrDown
	case b.order == core.OrderDouble && code == 3:
		b.stereo = core.StereoEOrZ
	}

	return b, nil
}

// applyCharges reads "M  CHGnn8 aaa vvv ...".
func applyCharges(l string, atoms []atomRecord) error {
	fields := strings.Fields(l[len("M  CHG"):])
	if len(fields) == 0 {
		return errors.Wrap(ErrBadPropertyLine, "no entry count")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || len(fields) < 1+2*n {
		return errors.Wrapf(ErrBadPropertyLine, "%q", l)
	}
	for k := 0; k < n; k++ {
		at, err1 := strconv.Atoi(fields[1+2*k])
		q, err2 := strconv.Atoi(fields[2+2*k])
		if err1 != nil || err2 != nil || at < 1 || at > len(atoms) {
			return errors.Wrapf(ErrBadPropertyLine, "entry %d", k+1)
		}
		atoms[at-1].charge = q
	}

	return nil
}

// orderFromType maps the V2000 bond type column. Query types (5-8) have no
// definite order.
func orderFromType(t int) core.Order {
	switch t {
	case 1:
		return core.OrderSingle
	case 2:
		return core.OrderDouble
	case 3:
		return core.OrderTriple
	case 4:
		return core.OrderAromatic
	default:
		return core.OrderUnset
	}
}

// chargeFromCode maps the atom block charge column (4 is a doublet radical).
func chargeFromCode(c int) int {
	switch c {
	case 1, 2, 3, 5, 6, 7:
		return 4 - c
	default:
		return 0
	}
}

// field returns l[from:to] clipped to the line length and trimmed.
func field(l string, from, to int) string {
	if from >= len(l) {
		return ""
	}

	return strings.TrimSpace(l[from:min(to, len(l))])
}

func intField(l string, from, to int) (int, error) {
	return strconv.Atoi(field(l, from, to))
}

// optionalIntField is intField where a blank or missing column reads as 0.
func optionalIntField(l string, from, to int) (int, error) {
	f := field(l, from, to)
	if f == "" {
		return 0, nil
	}

	return strconv.Atoi(f)
}

func floatField(l string, from, to int) (float64, error) {
	return strconv.ParseFloat(field(l, from, to), 64)
}
