package mip_test

import (
	"reflect"
	"testing"

	"github.com/diogosbr/prioritizr/mip"
)

// TestAddRow_MergeAndOrder verifies duplicate-column merging and sorted storage.
func TestAddRow_MergeAndOrder(t *testing.T) {
	var p mip.Program
	p.AddVars("x", 3, mip.Binary, 0, 1)

	err := p.AddRow(mip.GE, 2,
		mip.Nonzero{Col: 2, Val: 1},
		mip.Nonzero{Col: 0, Val: 3},
		mip.Nonzero{Col: 2, Val: 4},
	)
	if err != nil {
		t.Fatalf("AddRow error: %v", err)
	}
	want := []mip.Nonzero{{Col: 0, Val: 3}, {Col: 2, Val: 5}}
	if !reflect.DeepEqual(p.Rows[0].Coefs, want) {
		t.Errorf("Coefs = %v; want %v", p.Rows[0].Coefs, want)
	}

	if err := p.AddRow(mip.LE, 1, mip.Nonzero{Col: 7, Val: 1}); err != mip.ErrVarRange {
		t.Errorf("out-of-range column error = %v; want ErrVarRange", err)
	}
}

// TestBlocks checks block registration and lookup.
func TestBlocks(t *testing.T) {
	var p mip.Program
	first := p.AddVars("primary", 4, mip.Binary, 0, 1)
	second := p.AddVars("aux", 2, mip.Continuous, 0, 1)
	if first != 0 || second != 4 {
		t.Fatalf("offsets = %d,%d; want 0,4", first, second)
	}
	b, ok := p.Block("aux")
	if !ok || b.Offset != 4 || b.Len != 2 {
		t.Errorf("Block(aux) = %+v,%v; want offset 4 len 2", b, ok)
	}
	if _, ok := p.Block("missing"); ok {
		t.Error("Block(missing) found; want absent")
	}
}

// TestToCSR verifies compressed-row export with the trailing sentinel.
func TestToCSR(t *testing.T) {
	var p mip.Program
	p.AddVars("x", 3, mip.Continuous, 0, 1)
	_ = p.AddRow(mip.LE, 5, mip.Nonzero{Col: 0, Val: 1}, mip.Nonzero{Col: 2, Val: 2})
	_ = p.AddRow(mip.EQ, 1, mip.Nonzero{Col: 1, Val: 3})

	start, index, value := p.ToCSR()
	if !reflect.DeepEqual(start, []int{0, 2, 3}) {
		t.Errorf("start = %v; want [0 2 3]", start)
	}
	if !reflect.DeepEqual(index, []int{0, 2, 1}) {
		t.Errorf("index = %v; want [0 2 1]", index)
	}
	if !reflect.DeepEqual(value, []float64{1, 2, 3}) {
		t.Errorf("value = %v; want [1 2 3]", value)
	}
}

// TestClone_Independence: mutating a clone must not leak into the original.
func TestClone_Independence(t *testing.T) {
	var p mip.Program
	p.AddVars("x", 2, mip.Binary, 0, 1)
	_ = p.AddRow(mip.GE, 1, mip.Nonzero{Col: 0, Val: 1})

	c := p.Clone()
	c.Objective[0] = 99
	c.Rows[0].Coefs[0].Val = 99
	_ = c.SetBounds(1, 0, 0)

	if p.Objective[0] != 0 || p.Rows[0].Coefs[0].Val != 1 || p.Upper[1] != 1 {
		t.Error("Clone shares storage with the original")
	}
}

// TestRowEvaluate covers the three relational operators.
func TestRowEvaluate(t *testing.T) {
	row := mip.Row{Coefs: []mip.Nonzero{{Col: 0, Val: 2}, {Col: 1, Val: 1}}, Op: mip.GE, RHS: 3}
	if !row.Evaluate([]float64{1, 1}, 1e-9) {
		t.Error("GE row should hold at 3 ≥ 3")
	}
	row.Op = mip.LE
	if row.Evaluate([]float64{2, 1}, 1e-9) {
		t.Error("LE row should fail at 5 ≤ 3")
	}
	row.Op = mip.EQ
	if !row.Evaluate([]float64{1, 1}, 1e-9) || row.Evaluate([]float64{0, 1}, 1e-9) {
		t.Error("EQ row evaluation mismatch")
	}
}

// TestStatusString pins the external status labels.
func TestStatusString(t *testing.T) {
	labels := map[mip.Status]string{
		mip.StatusOptimal:    "OPTIMAL",
		mip.StatusSuboptimal: "SUBOPTIMAL",
		mip.StatusInfeasible: "INFEASIBLE",
		mip.StatusUnbounded:  "UNBOUNDED",
		mip.StatusUnknown:    "UNKNOWN",
	}
	for s, want := range labels {
		if s.String() != want {
			t.Errorf("Status(%d).String() = %q; want %q", s, s.String(), want)
		}
	}
}
