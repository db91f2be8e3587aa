package boundary

import "sort"

// ConnectedComponents groups the selected planning units into contiguous
// blocks under the matrix's adjacency. Two selected units belong to the same
// component when a path of stored off-diagonal entries connects them; entry
// values are irrelevant here, only their presence. A nil selection selects
// every unit. Each component is an ascending slice of unit indices and
// components are ordered by their smallest member.
//
// Time: O(n + E), Memory: O(n).
func (m *Matrix) ConnectedComponents(selected []bool) ([][]int, error) {
	if selected != nil && len(selected) != m.n {
		return nil, ErrSelectionLength
	}
	in := func(u int) bool { return selected == nil || selected[u] }

	seen := make([]bool, m.n)
	var comps [][]int
	for start := 0; start < m.n; start++ {
		if seen[start] || !in(start) {
			continue
		}
		// BFS from start over selected units only.
		queue := []int{start}
		seen[start] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range m.Neighbors(u) {
				if !seen[v] && in(v) {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		// BFS discovery order may interleave; normalise to ascending indices.
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps, nil
}

// IsContiguous reports whether the selected units form at most one connected
// component. An empty selection is contiguous.
func (m *Matrix) IsContiguous(selected []bool) (bool, error) {
	comps, err := m.ConnectedComponents(selected)
	if err != nil {
		return false, err
	}
	return len(comps) <= 1, nil
}

