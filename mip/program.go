package mip

import (
	"errors"
	"sort"
)

// Sentinel errors for program assembly.
var (
	// ErrVarRange indicates a coefficient referencing a variable outside the program.
	ErrVarRange = errors.New("mip: variable index out of range")
	// ErrBadBounds indicates a lower bound above an upper bound.
	ErrBadBounds = errors.New("mip: lower bound exceeds upper bound")
)

// VarType is the domain of a decision variable.
type VarType uint8

const (
	// Continuous variables take any value within their bounds.
	Continuous VarType = iota
	// Binary variables take values in {0, 1}.
	Binary
	// Integer variables take integer values within their bounds.
	Integer
)

// Sense is the optimization direction.
type Sense uint8

const (
	// Minimize seeks the smallest objective value.
	Minimize Sense = iota
	// Maximize seeks the largest objective value.
	Maximize
)

// Op is a row's relational operator.
type Op uint8

const (
	// LE constrains a row to ≤ RHS.
	LE Op = iota
	// GE constrains a row to ≥ RHS.
	GE
	// EQ constrains a row to = RHS.
	EQ
)

// Nonzero is one sparse coefficient of a constraint row.
type Nonzero struct {
	Col int
	Val float64
}

// Row is one constraint: sum of Coefs · x Op RHS. Coefs are kept sorted by
// column and free of duplicates.
type Row struct {
	Coefs []Nonzero
	Op    Op
	RHS   float64
}

// Block names a contiguous range of variables inside the program.
type Block struct {
	Name   string
	Offset int
	Len    int
}

// Program is a compiled linear/integer program. The compile package builds
// it once; afterwards it is read-only by convention.
type Program struct {
	Sense     Sense
	Objective []float64
	Types     []VarType
	Lower     []float64
	Upper     []float64
	Rows      []Row
	Blocks    []Block
}

// NumVars returns the number of decision variables.
func (p *Program) NumVars() int { return len(p.Objective) }

// NumRows returns the number of constraint rows.
func (p *Program) NumRows() int { return len(p.Rows) }

// AddVars appends n variables of the given type and bounds, registering them
// as a named block. It returns the offset of the first new variable.
func (p *Program) AddVars(name string, n int, t VarType, lower, upper float64) int {
	offset := len(p.Objective)
	for i := 0; i < n; i++ {
		p.Objective = append(p.Objective, 0)
		p.Types = append(p.Types, t)
		p.Lower = append(p.Lower, lower)
		p.Upper = append(p.Upper, upper)
	}
	p.Blocks = append(p.Blocks, Block{Name: name, Offset: offset, Len: n})
	return offset
}

// Block returns the named block and whether it exists.
func (p *Program) Block(name string) (Block, bool) {
	for _, b := range p.Blocks {
		if b.Name == name {
			return b, true
		}
	}
	return Block{}, false
}

// AddRow appends a constraint row. Coefficients are copied, merged by column
// and sorted, so identical logical rows always produce identical storage.
func (p *Program) AddRow(op Op, rhs float64, coefs ...Nonzero) error {
	merged := make(map[int]float64, len(coefs))
	for _, c := range coefs {
		if c.Col < 0 || c.Col >= len(p.Objective) {
			return ErrVarRange
		}
		merged[c.Col] += c.Val
	}
	cols := make([]int, 0, len(merged))
	for col := range merged {
		cols = append(cols, col)
	}
	sort.Ints(cols)
	row := Row{Op: op, RHS: rhs, Coefs: make([]Nonzero, 0, len(cols))}
	for _, col := range cols {
		if v := merged[col]; v != 0 {
			row.Coefs = append(row.Coefs, Nonzero{Col: col, Val: v})
		}
	}
	p.Rows = append(p.Rows, row)
	return nil
}

// SetBounds tightens the bounds of a single variable.
func (p *Program) SetBounds(col int, lower, upper float64) error {
	if col < 0 || col >= len(p.Objective) {
		return ErrVarRange
	}
	if lower > upper {
		return ErrBadBounds
	}
	p.Lower[col] = lower
	p.Upper[col] = upper
	return nil
}

// AddObjective adds v to the objective coefficient of col.
func (p *Program) AddObjective(col int, v float64) error {
	if col < 0 || col >= len(p.Objective) {
		return ErrVarRange
	}
	p.Objective[col] += v
	return nil
}

// Clone returns an independent deep copy of the program.
func (p *Program) Clone() *Program {
	out := &Program{
		Sense:     p.Sense,
		Objective: append([]float64(nil), p.Objective...),
		Types:     append([]VarType(nil), p.Types...),
		Lower:     append([]float64(nil), p.Lower...),
		Upper:     append([]float64(nil), p.Upper...),
		Rows:      make([]Row, len(p.Rows)),
		Blocks:    append([]Block(nil), p.Blocks...),
	}
	for i, r := range p.Rows {
		out.Rows[i] = Row{
			Coefs: append([]Nonzero(nil), r.Coefs...),
			Op:    r.Op,
			RHS:   r.RHS,
		}
	}
	return out
}

// ToCSR exports the constraint matrix in compressed sparse row form:
// start[i] is the offset of row i's coefficients in index/value, with a
// trailing sentinel start[NumRows] = len(value).
func (p *Program) ToCSR() (start, index []int, value []float64) {
	start = make([]int, 0, len(p.Rows)+1)
	for _, r := range p.Rows {
		start = append(start, len(index))
		for _, c := range r.Coefs {
			index = append(index, c.Col)
			value = append(value, c.Val)
		}
	}
	start = append(start, len(index))
	return start, index, value
}

// Evaluate reports whether the assignment x satisfies row r within eps.
func (r Row) Evaluate(x []float64, eps float64) bool {
	var sum float64
	for _, c := range r.Coefs {
		sum += c.Val * x[c.Col]
	}
	switch r.Op {
	case LE:
		return sum <= r.RHS+eps
	case GE:
		return sum >= r.RHS-eps
	default:
		return sum >= r.RHS-eps && sum <= r.RHS+eps
	}
}
