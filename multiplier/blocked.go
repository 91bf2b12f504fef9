package multiplier

// blockedMultiply reproduces original_source/src/base_series_multiplier.hpp's
// blocked_multiplication line for line: the index ranges [start1,end1) x
// [start2,end2) are split into full blocks of bsize plus a remainder, and
// the four quadrants (regular x regular, regular x remainder, remainder x
// regular, remainder x remainder) are each walked in row-major i-within-
// block-before-j order.
//
// sf, when non-nil, is checked before every mf call; a true result breaks
// only the innermost j-loop for the current i. Because that break happens
// per block rather than across the whole remaining j range, a monotone sf
// triggered early in a regulars x regulars row will still be re-evaluated
// (and re-triggered) at the start of every later j-block for that same i,
// rather than skipping them outright. This mirrors the original's behaviour
// exactly; the corresponding REDESIGN FLAG in SPEC_FULL.md calls for
// preserving it rather than fixing it, since existing callers have been
// tuned around the actual (not the ideal) cost of a truncated multiplication.
func blockedMultiply(mf func(i, j int) error, start1, end1, start2, end2, bsize int, sf func(i, j int) bool) error {
	if start1 > end1 || start2 > end2 {
		panic("multiplier: invalid bounds in blockedMultiply")
	}
	nblocks1 := (end1 - start1) / bsize
	nblocks2 := (end2 - start2) / bsize
	iIrStart, iIrEnd := nblocks1*bsize+start1, end1
	jIrStart, jIrEnd := nblocks2*bsize+start2, end2

	for n1 := 0; n1 < nblocks1; n1++ {
		iStart, iEnd := n1*bsize+start1, n1*bsize+start1+bsize
		// regulars1 x regulars2
		for n2 := 0; n2 < nblocks2; n2++ {
			jStart, jEnd := n2*bsize+start2, n2*bsize+start2+bsize
			for i := iStart; i < iEnd; i++ {
				for j := jStart; j < jEnd; j++ {
					if sf != nil && sf(i, j) {
						break
					}
					if err := mf(i, j); err != nil {
						return err
					}
				}
			}
		}
		// regulars1 x rem2
		for i := iStart; i < iEnd; i++ {
			for j := jIrStart; j < jIrEnd; j++ {
				if sf != nil && sf(i, j) {
					break
				}
				if err := mf(i, j); err != nil {
					return err
				}
			}
		}
	}
	// rem1 x regulars2
	for n2 := 0; n2 < nblocks2; n2++ {
		jStart, jEnd := n2*bsize+start2, n2*bsize+start2+bsize
		for i := iIrStart; i < iIrEnd; i++ {
			for j := jStart; j < jEnd; j++ {
				if sf != nil && sf(i, j) {
					break
				}
				if err := mf(i, j); err != nil {
					return err
				}
			}
		}
	}
	// rem1 x rem2
	for i := iIrStart; i < iIrEnd; i++ {
		for j := jIrStart; j < jIrEnd; j++ {
			if sf != nil && sf(i, j) {
				break
			}
			if err := mf(i, j); err != nil {
				return err
			}
		}
	}
	return nil
}
