package params

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedWidth is returned when the constant table has no entry for a width.
	ErrUnsupportedWidth = errors.New("poseidon: unsupported width")
	// ErrRoundConstantsLength is returned when a parameter set does not carry
	// exactly one round constant per state slot per round.
	ErrRoundConstantsLength = errors.New("poseidon: round constant length mismatch")
)

// Validate checks basic shape and sizes of the parameter set.
func Validate(p *Parameters) error {
	if err := validateShape(p); err != nil {
		return err
	}
	expected := p.Width * p.Rounds()
	if len(p.RoundConstants) != expected {
		return fmt.Errorf("%w: width %d has %d, want %d", ErrRoundConstantsLength, p.Width, len(p.RoundConstants), expected)
	}
	return nil
}

// validateShape checks everything but the round constant count.
func validateShape(p *Parameters) error {
	if p.Alpha != Alpha {
		return fmt.Errorf("poseidon: unsupported alpha %d", p.Alpha)
	}
	if p.Width < 1 {
		return fmt.Errorf("poseidon: width must be positive, got %d", p.Width)
	}
	if p.FullRounds < 0 || p.PartialRounds < 0 {
		return fmt.Errorf("poseidon: negative round count (full %d, partial %d)", p.FullRounds, p.PartialRounds)
	}
	if len(p.MDS) != p.Width {
		return fmt.Errorf("poseidon: mds has %d rows, want %d", len(p.MDS), p.Width)
	}
	for i, row := range p.MDS {
		if len(row) != p.Width {
			return fmt.Errorf("poseidon: mds row %d has %d columns, want %d", i, len(row), p.Width)
		}
	}
	return nil
}
