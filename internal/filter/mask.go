package filter

import "corpusdash/internal/corpus"

// Mask is a per-row boolean selection over a table.
type Mask []bool

// NewMask returns a mask of length n with every entry set to v.
func NewMask(n int, v bool) Mask {
	m := make(Mask, n)
	if v {
		for i := range m {
			m[i] = true
		}
	}
	return m
}

// Apply returns a new table with the rows the mask keeps. The input table is
// unchanged.
func (m Mask) Apply(t *corpus.Table) *corpus.Table {
	indices := make([]int, 0, len(m))
	for i, keep := range m {
		if keep {
			indices = append(indices, i)
		}
	}
	return t.Select(indices)
}

// AllTrue reports whether the mask keeps every row.
func (m Mask) AllTrue() bool {
	for _, keep := range m {
		if !keep {
			return false
		}
	}
	return true
}

// Count returns the number of kept rows.
func (m Mask) Count() int {
	n := 0
	for _, keep := range m {
		if keep {
			n++
		}
	}
	return n
}
