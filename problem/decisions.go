package problem

import "fmt"

// BinaryDecision allocates each (unit, zone) pair entirely or not at all.
// This is the default when no decision modifier is attached.
type BinaryDecision struct{}

func (BinaryDecision) Validate(*Problem) error { return nil }
func (BinaryDecision) isDecision()             {}

// ProportionDecision allocates a continuous share in [0,1] of each unit to a
// zone.
type ProportionDecision struct{}

func (ProportionDecision) Validate(*Problem) error { return nil }
func (ProportionDecision) isDecision()             {}

// BoundedIntegerDecision allocates an integer number of parcels in [0, Cap]
// of each unit to a zone.
type BoundedIntegerDecision struct {
	Cap int
}

func (d BoundedIntegerDecision) Validate(*Problem) error {
	if d.Cap < 1 {
		return fmt.Errorf("%w: allocation cap must be positive", ErrInvalidParameterRange)
	}
	return nil
}
func (BoundedIntegerDecision) isDecision() {}
