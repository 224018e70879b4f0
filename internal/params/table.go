package params

//go:generate go run ../../cmd/poseidon-constants -out constants.go

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/logger"
)

// Table is a width-indexed source of base-10 constant literals.
type Table struct {
	// RoundConstants maps a width to its round constants, round-major.
	RoundConstants map[int][]string
	// MDS maps a width to its row-major matrix.
	MDS map[int][][]string
}

// Builtin is the process-wide constant table. It must not be modified.
var Builtin = &Table{
	RoundConstants: builtinRoundConstants,
	MDS:            builtinMDS,
}

// Widths returns the widths tbl has both tables for, in increasing order.
func (tbl *Table) Widths() []int {
	var out []int
	for _, w := range slices.Sorted(maps.Keys(tbl.RoundConstants)) {
		if _, ok := tbl.MDS[w]; ok {
			out = append(out, w)
		}
	}
	return out
}

// New parses a fresh parameter set for width from the builtin table.
func New(width int) (*Parameters, error) {
	return Load(Builtin, width)
}

// Load parses the parameter set for width from tbl and validates it.
// A malformed literal in tbl is a configuration defect and panics.
func Load(tbl *Table, width int) (*Parameters, error) {
	p, err := load(tbl, width, width*(FullRounds+PartialRounds))
	if err != nil {
		return nil, err
	}
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadTruncated reproduces the historical loader, which parsed only the first
// width round constants. The result fails Validate for every width; the
// permutation reports the exhausted constants as an error at the first round
// that needs more of them.
func LoadTruncated(tbl *Table, width int) (*Parameters, error) {
	p, err := load(tbl, width, width)
	if err != nil {
		return nil, err
	}
	if err := validateShape(p); err != nil {
		return nil, err
	}
	return p, nil
}

func load(tbl *Table, width, nbConstants int) (*Parameters, error) {
	if width < 1 {
		return nil, fmt.Errorf("poseidon: width must be positive, got %d", width)
	}
	rc, ok := tbl.RoundConstants[width]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnsupportedWidth, width)
	}
	mds, ok := tbl.MDS[width]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnsupportedWidth, width)
	}
	if len(rc) < nbConstants {
		return nil, fmt.Errorf("%w: width %d table has %d, want %d", ErrRoundConstantsLength, width, len(rc), nbConstants)
	}

	p := &Parameters{
		Width:          width,
		Alpha:          Alpha,
		FullRounds:     FullRounds,
		PartialRounds:  PartialRounds,
		MDS:            make([][]fr.Element, len(mds)),
		RoundConstants: make([]fr.Element, nbConstants),
	}
	for i := range p.RoundConstants {
		p.RoundConstants[i] = mustParse(rc[i])
	}
	for i, row := range mds {
		p.MDS[i] = make([]fr.Element, len(row))
		for j := range row {
			p.MDS[i][j] = mustParse(row[j])
		}
	}
	return p, nil
}

func mustParse(s string) fr.Element {
	var e fr.Element
	if _, err := e.SetString(s); err != nil {
		panic(fmt.Sprintf("poseidon: malformed constant %q: %v", s, err))
	}
	return e
}

var cache struct {
	sync.Mutex
	byWidth map[int]*Parameters
}

// ForWidth returns the builtin parameter set for width, parsing it on first
// use. The returned value is shared and must be treated as read-only.
func ForWidth(width int) (*Parameters, error) {
	cache.Lock()
	defer cache.Unlock()
	if p, ok := cache.byWidth[width]; ok {
		return p, nil
	}
	p, err := New(width)
	if err != nil {
		return nil, err
	}
	if cache.byWidth == nil {
		cache.byWidth = make(map[int]*Parameters)
	}
	cache.byWidth[width] = p

	log := logger.Logger().With().Str("component", "poseidon").Logger()
	log.Debug().Int("width", width).Int("rounds", p.Rounds()).Int("roundConstants", len(p.RoundConstants)).Msg("parameters loaded")
	return p, nil
}
