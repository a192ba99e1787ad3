package eccp

// Scalar multiplication uses left-to-right width-w NAF with a table of
// precomputed odd multiples [P, 3P, 5P, ..., (2^w - 1)P]. The table costs
// 2^(w-1) - 1 additions and one doubling; the NAF walk averages one
// addition per w+1 doublings, so wider windows pay off as scalars grow.

// PrecomputeNAFPoints returns the odd-multiple table for this point at
// the given width: table[i] = (2i+1)·p. Callers amortize repeated
// multiplications of the same base across different scalars by reusing
// the table with MultiplyPrecomputed.
func (p *Point) PrecomputeNAFPoints(width int) ([]*Point, error) {
	if width < 2 || width > 6 {
		return nil, ErrInvalidNAFWidth
	}
	table := make([]*Point, 1<<uint(width-1))
	table[0] = p.clone()
	twice := p.Double()
	for i := 1; i < len(table); i++ {
		table[i] = table[i-1].Add(twice)
	}
	return table, nil
}

// Multiply returns k·p, choosing the NAF width from the scalar size.
func (p *Point) Multiply(k *FieldElement) *Point {
	r, _ := p.MultiplyWindow(k, nafWidth(k.NumBits()))
	return r
}

// MultiplyWindow returns k·p using an explicit NAF width in [2, 6].
func (p *Point) MultiplyWindow(k *FieldElement, width int) (*Point, error) {
	table, err := p.PrecomputeNAFPoints(width)
	if err != nil {
		return nil, err
	}
	return p.MultiplyPrecomputed(k, width, table)
}

// MultiplyPrecomputed returns k·p given the odd-multiple table built by
// PrecomputeNAFPoints at the same width.
func (p *Point) MultiplyPrecomputed(k *FieldElement, width int, table []*Point) (*Point, error) {
	naf, err := k.ToNAF(width)
	if err != nil {
		return nil, err
	}
	r := p.curve.Infinity()
	for i := len(naf) - 1; i >= 0; i-- {
		r = r.Double()
		if d := naf[i]; d > 0 {
			r = r.Add(table[(d-1)/2])
		} else if d < 0 {
			r = r.Sub(table[(-d-1)/2])
		}
	}
	return r, nil
}

// nafWidth estimates the cheapest window width for a scalar of the given
// bit size with the cost model (2^(w-2) - 1) + bits/(w+1): a per-width
// precompute charge (smaller than the 2^(w-1) - 1 additions the table
// actually takes) plus one NAF addition per w+1 bits. Widens while the
// estimate strictly improves.
func nafWidth(bitSize int) int {
	w := 2
	for w < 6 {
		cur := float64(int(1)<<uint(w-2)-1) + float64(bitSize)/float64(w+1)
		next := float64(int(1)<<uint(w-1)-1) + float64(bitSize)/float64(w+2)
		if next >= cur {
			break
		}
		w++
	}
	return w
}
