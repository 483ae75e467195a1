package quad

// Decode4 returns four selection signals for addr. The signal at index addr
// carries enable, the others are 0.
func Decode4(addr, enable Quad) (sel [4]Quad) {
	for n := range sel {
		sel[n] = Min(Eq(Quad(n), addr), enable)
	}

	return
}

// Decode16 cascades two Decode4 stages. The first stage selects a group
// of four by addr0, the second selects within the group by addr1, so the
// active signal is at index addr0*4 + addr1.
func Decode16(addr0, addr1, enable Quad) (sel [16]Quad) {
	group := Decode4(addr0, enable)
	for g, group_enable := range group {
		line := Decode4(addr1, group_enable)
		copy(sel[g*4:g*4+4], line[:])
	}

	return
}

// Multiplex masks each value by its selector and returns the Max of the
// masked values. At most one selector may be non-zero.
func Multiplex(values []Quad, selectors []Quad) (out Quad) {
	for n, value := range values {
		out = Max(out, Min(value, selectors[n]))
	}

	return
}

// Select4 multiplexes four values by the digit addr.
func Select4(addr Quad, values [4]Quad) Quad {
	sel := Decode4(addr, THREE)
	return Multiplex(values[:], sel[:])
}
