package eccp

// ToNAF decomposes the element into width-w non-adjacent form: a signed
// digit sequence, least significant first, where every nonzero digit is
// odd with |d| < 2^w and no two consecutive digits are nonzero. The result
// is zero-padded to NumBits()+1 digits. Widths outside [2, 6] are
// rejected.
func (a *FieldElement) ToNAF(width int) ([]int8, error) {
	if width < 2 || width > 6 {
		return nil, ErrInvalidNAFWidth
	}
	bitLen := a.NumBits()
	naf := make([]int8, 0, bitLen+1)
	k := append([]uint32(nil), a.mag...)
	mask := uint32(1)<<uint(width+1) - 1
	half := uint32(1) << uint(width)

	for !magIsZero(k) {
		if magIsOdd(k) {
			d := k[0] & mask
			var digit int8
			if d >= half {
				// d - 2^(w+1), a negative odd digit
				digit = int8(int32(d) - int32(mask) - 1)
				k = magAdd(k, []uint32{uint32(-int32(digit))})
			} else {
				digit = int8(d)
				k = magSub(k, []uint32{d})
			}
			naf = append(naf, digit)
		} else {
			naf = append(naf, 0)
		}
		k = magShr1(k)
	}
	for len(naf) < bitLen+1 {
		naf = append(naf, 0)
	}
	return naf, nil
}
