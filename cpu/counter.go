package cpu

import (
	"github.com/ezrec/quadcpu/memory"
	"github.com/ezrec/quadcpu/quad"
)

// Counter is a single digit counter.
type Counter struct {
	Cell quad.Cell
}

// Run adds add to the counter, and returns the carry and the new value.
func (c *Counter) Run(add quad.Quad) (carry, value quad.Quad) {
	current := c.Cell.Run(quad.ZERO, quad.ZERO)
	carry, next := HalfAdder(current, add)
	value = c.Cell.Run(next, quad.THREE)
	return
}

// Counter3 is three chained Counters forming a memory address. Carry out of
// the high digit is dropped, so the counter wraps past the last address.
type Counter3 struct {
	Digit [3]Counter
}

// Run adds (add0, add1, add2) with ripple carry, and returns the new digits.
func (c *Counter3) Run(add0, add1, add2 quad.Quad) (addr0, addr1, addr2 quad.Quad) {
	carry1, addr0 := c.Digit[0].Run(add0)
	carry2, addr1 := c.Digit[1].Run(quad.Max(carry1, add1))
	_, addr2 = c.Digit[2].Run(quad.Max(carry2, add2))
	return
}

// Linear returns the counter as a linear memory address.
func (c *Counter3) Linear() int {
	return memory.Join(c.Run(quad.ZERO, quad.ZERO, quad.ZERO))
}

// Reset the counter to zero.
func (c *Counter3) Reset() {
	*c = Counter3{}
}
