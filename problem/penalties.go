package problem

import (
	"fmt"

	"github.com/diogosbr/prioritizr/boundary"
)

// BoundaryPenalty penalizes the total exposed boundary of the solution:
// Weight × (shared boundaries between units in different states, plus
// EdgeFactor × the exposed boundary of selected edge units). Higher weights
// buy more compact, less fragmented reserves.
type BoundaryPenalty struct {
	Weight float64
	// EdgeFactor scales the study-area-edge correction in [0,1]: 1 charges
	// the full outer boundary of selected border units, 0 waives it.
	EdgeFactor float64
	Boundary   *boundary.Matrix
}

func (pe BoundaryPenalty) Validate(p *Problem) error {
	if !isFinite(pe.Weight) {
		return fmt.Errorf("%w: boundary penalty weight", ErrNonFinite)
	}
	if pe.Weight < 0 {
		return fmt.Errorf("%w: negative boundary penalty weight", ErrInvalidParameterRange)
	}
	if !isFinite(pe.EdgeFactor) {
		return fmt.Errorf("%w: edge factor", ErrNonFinite)
	}
	if pe.EdgeFactor < 0 || pe.EdgeFactor > 1 {
		return fmt.Errorf("%w: edge factor outside [0,1]", ErrInvalidParameterRange)
	}
	return validateRelationMatrix(p, pe.Boundary)
}
func (BoundaryPenalty) isPenalty() {}

// ConnectivityPenalty rewards co-selecting units with high connectivity
// strength: the objective is worsened by Weight × the connectivity lost by
// not selecting both endpoints of each relation. Diagonal entries reward the
// unit's own selection.
type ConnectivityPenalty struct {
	Weight       float64
	Connectivity *boundary.Matrix
}

func (pe ConnectivityPenalty) Validate(p *Problem) error {
	if !isFinite(pe.Weight) {
		return fmt.Errorf("%w: connectivity penalty weight", ErrNonFinite)
	}
	if pe.Weight < 0 {
		return fmt.Errorf("%w: negative connectivity penalty weight", ErrInvalidParameterRange)
	}
	return validateRelationMatrix(p, pe.Connectivity)
}
func (ConnectivityPenalty) isPenalty() {}
