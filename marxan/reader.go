package marxan

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// table is a parsed delimiter-separated file: lower-cased header names
// mapped to column positions, plus the data records.
type table struct {
	cols    map[string]int
	records [][]string
}

// readTable sniffs the delimiter from the header line (tab wins over comma)
// and parses the whole input.
func readTable(r io.Reader) (*table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	header := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		header = data[:i]
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = ','
	if bytes.IndexByte(header, '\t') >= 0 {
		cr.Comma = '\t'
	}
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadValue, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrMissingColumn)
	}
	t := &table{cols: make(map[string]int), records: records[1:]}
	for i, name := range records[0] {
		t.cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return t, nil
}

func (t *table) require(names ...string) error {
	for _, name := range names {
		if _, ok := t.cols[name]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	return nil
}

// intAt parses the named column of record rec.
func (t *table) intAt(rec []string, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(rec[t.cols[name]]))
	if err != nil {
		return 0, fmt.Errorf("%w: column %q: %q", ErrBadValue, name, rec[t.cols[name]])
	}
	return v, nil
}

func (t *table) floatAt(rec []string, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[t.cols[name]]), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q: %q", ErrBadValue, name, rec[t.cols[name]])
	}
	return v, nil
}

// optionalFloatAt parses the named column when it exists and is non-empty.
func (t *table) optionalFloatAt(rec []string, name string) (float64, bool, error) {
	col, ok := t.cols[name]
	if !ok || strings.TrimSpace(rec[col]) == "" {
		return 0, false, nil
	}
	v, err := t.floatAt(rec, name)
	return v, err == nil, err
}

// ReadPlanningUnits parses a pu.dat table: id, cost, status (optional,
// defaults to available).
func ReadPlanningUnits(r io.Reader) ([]PlanningUnit, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if err := t.require("id", "cost"); err != nil {
		return nil, err
	}
	_, hasStatus := t.cols["status"]

	units := make([]PlanningUnit, 0, len(t.records))
	for _, rec := range t.records {
		u := PlanningUnit{Status: StatusAvailable}
		if u.ID, err = t.intAt(rec, "id"); err != nil {
			return nil, err
		}
		if u.Cost, err = t.floatAt(rec, "cost"); err != nil {
			return nil, err
		}
		if hasStatus {
			if u.Status, err = t.intAt(rec, "status"); err != nil {
				return nil, err
			}
			if u.Status < StatusAvailable || u.Status > StatusLockedOut {
				return nil, fmt.Errorf("%w: unit %d has status %d", ErrBadStatus, u.ID, u.Status)
			}
		}
		units = append(units, u)
	}
	return units, nil
}

// ReadFeatures parses a spec.dat table: id, then prop or target, optionally
// spf and name.
func ReadFeatures(r io.Reader) ([]Feature, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if err := t.require("id"); err != nil {
		return nil, err
	}
	_, hasName := t.cols["name"]

	features := make([]Feature, 0, len(t.records))
	for _, rec := range t.records {
		var f Feature
		if f.ID, err = t.intAt(rec, "id"); err != nil {
			return nil, err
		}
		if f.Prop, f.HasProp, err = t.optionalFloatAt(rec, "prop"); err != nil {
			return nil, err
		}
		if f.Target, f.HasTarget, err = t.optionalFloatAt(rec, "target"); err != nil {
			return nil, err
		}
		if f.HasProp && f.HasTarget {
			return nil, fmt.Errorf("%w: feature %d", ErrConflictingTarget, f.ID)
		}
		if f.SPF, _, err = t.optionalFloatAt(rec, "spf"); err != nil {
			return nil, err
		}
		if hasName {
			f.Name = strings.TrimSpace(rec[t.cols["name"]])
		}
		features = append(features, f)
	}
	return features, nil
}

// ReadAmounts parses a puvspr.dat table: species, pu, amount.
func ReadAmounts(r io.Reader) ([]Amount, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if err := t.require("species", "pu", "amount"); err != nil {
		return nil, err
	}
	amounts := make([]Amount, 0, len(t.records))
	for _, rec := range t.records {
		var a Amount
		if a.FeatureID, err = t.intAt(rec, "species"); err != nil {
			return nil, err
		}
		if a.UnitID, err = t.intAt(rec, "pu"); err != nil {
			return nil, err
		}
		if a.Amount, err = t.floatAt(rec, "amount"); err != nil {
			return nil, err
		}
		amounts = append(amounts, a)
	}
	return amounts, nil
}

// ReadBoundaries parses a bound.dat table: id1, id2, boundary.
func ReadBoundaries(r io.Reader) ([]BoundaryRecord, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if err := t.require("id1", "id2", "boundary"); err != nil {
		return nil, err
	}
	records := make([]BoundaryRecord, 0, len(t.records))
	for _, rec := range t.records {
		var b BoundaryRecord
		if b.ID1, err = t.intAt(rec, "id1"); err != nil {
			return nil, err
		}
		if b.ID2, err = t.intAt(rec, "id2"); err != nil {
			return nil, err
		}
		if b.Length, err = t.floatAt(rec, "boundary"); err != nil {
			return nil, err
		}
		records = append(records, b)
	}
	return records, nil
}

// Read parses all four tables into a Scenario. bound may be nil when the
// dataset carries no boundary file.
func Read(pu, spec, puvspr, bound io.Reader) (*Scenario, error) {
	s := &Scenario{}
	var err error
	if s.Units, err = ReadPlanningUnits(pu); err != nil {
		return nil, fmt.Errorf("pu.dat: %w", err)
	}
	if s.Features, err = ReadFeatures(spec); err != nil {
		return nil, fmt.Errorf("spec.dat: %w", err)
	}
	if s.Amounts, err = ReadAmounts(puvspr); err != nil {
		return nil, fmt.Errorf("puvspr.dat: %w", err)
	}
	if bound != nil {
		if s.Boundaries, err = ReadBoundaries(bound); err != nil {
			return nil, fmt.Errorf("bound.dat: %w", err)
		}
	}
	return s, nil
}
