package problem

// Modifier is the capability shared by every stack entry: shape validation
// against the Problem it is being attached to. Attachment fails immediately
// on a validation error; compilation never sees a malformed modifier.
type Modifier interface {
	Validate(p *Problem) error
}

// Objective selects the optimization goal. Exactly one per Problem.
// The variant set is closed: minimum set, maximum features, maximum utility,
// maximum phylogenetic diversity.
type Objective interface {
	Modifier
	isObjective()
}

// Targets supplies required representation amounts. Resolve turns the
// specification into absolute per-(feature, zone) amounts against the
// Problem's abundances. Several Targets modifiers may be attached; later
// ones override earlier ones feature by feature.
type Targets interface {
	Modifier
	Resolve(p *Problem) ([]ResolvedTarget, error)
}

// ResolvedTarget is one absolute target: zone z must hold at least Amount of
// feature f in the selected units.
type ResolvedTarget struct {
	Feature int
	Zone    int
	Amount  float64
}

// Constraint restricts the feasible region (locks, neighbourhood,
// contiguity, manual linear rows).
type Constraint interface {
	Modifier
	isConstraint()
}

// Penalty contributes objective terms that worsen undesirable spatial
// configurations.
type Penalty interface {
	Modifier
	isPenalty()
}

// Decision fixes the decision-variable domain: binary, proportion, or
// bounded integer. At most one per Problem; binary is the default.
type Decision interface {
	Modifier
	isDecision()
}

// SetObjective attaches the objective. A second call fails with
// ErrModifierConflict.
func (p *Problem) SetObjective(o Objective) error {
	if p.objective != nil {
		return ErrModifierConflict
	}
	if err := o.Validate(p); err != nil {
		return err
	}
	p.objective = o
	return nil
}

// SetDecision attaches the decision type. A second call fails with
// ErrModifierConflict.
func (p *Problem) SetDecision(d Decision) error {
	if p.decision != nil {
		return ErrModifierConflict
	}
	if err := d.Validate(p); err != nil {
		return err
	}
	p.decision = d
	return nil
}

// AddTargets attaches a target specification.
func (p *Problem) AddTargets(t Targets) error {
	if err := t.Validate(p); err != nil {
		return err
	}
	p.targets = append(p.targets, t)
	return nil
}

// AddConstraint attaches a constraint.
func (p *Problem) AddConstraint(c Constraint) error {
	if err := c.Validate(p); err != nil {
		return err
	}
	p.constraints = append(p.constraints, c)
	return nil
}

// AddPenalty attaches a penalty.
func (p *Problem) AddPenalty(pe Penalty) error {
	if err := pe.Validate(p); err != nil {
		return err
	}
	p.penalties = append(p.penalties, pe)
	return nil
}

// Objective returns the attached objective, or nil.
func (p *Problem) Objective() Objective { return p.objective }

// Decision returns the attached decision type, or nil (binary by default).
func (p *Problem) Decision() Decision { return p.decision }

// TargetSets returns the attached target specifications in attach order.
func (p *Problem) TargetSets() []Targets { return p.targets }

// Constraints returns the attached constraints in attach order.
func (p *Problem) Constraints() []Constraint { return p.constraints }

// Penalties returns the attached penalties in attach order.
func (p *Problem) Penalties() []Penalty { return p.penalties }
