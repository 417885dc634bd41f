package dice

import "strconv"

// Die represents a single die producing uniformly distributed integer
// results in an inclusive range, such as a d6 or a d13.
//
// A Die whose range does not start at 1 is equivalent to a standard die
// plus a constant: rolling it is the same as rolling a die numbered
// 1 through Size() and adding Offset(). Die(2, 14) rolls like 1d13 + 1.
//
// A Die is an immutable value; all arithmetic produces new values.
type Die struct {
	low  int
	high int
}

// NewDie creates a standard die numbered 1 through sides
func NewDie(sides int) (Die, error) {
	return NewDieRange(1, sides)
}

// NewDieRange creates a die covering an arbitrary inclusive range
func NewDieRange(low, high int) (Die, error) {
	if high < low {
		return Die{}, ErrInvalidRange
	}
	return Die{low: low, high: high}, nil
}

// Low returns the inclusive lower bound
func (d Die) Low() int {
	return d.low
}

// High returns the inclusive upper bound
func (d Die) High() int {
	return d.high
}

// Size returns the number of distinct faces
func (d Die) Size() int {
	return d.high - d.low + 1
}

// Offset returns the constant implied by a non-standard lower bound
func (d Die) Offset() int {
	return d.low - 1
}

// Roll produces one uniform result in [Low, High], drawing entropy
// from the given roller
func (d Die) Roll(r Roller) int {
	return r.Roll(d.Size()) + d.Offset()
}

// Average returns the exact mean result
func (d Die) Average() float64 {
	return float64(d.low+d.high) / 2
}

// RGE returns the exact chance of a result greater than or equal to
// the threshold. Thresholds outside the die's range clamp to 1 or 0.
func (d Die) RGE(threshold int) float64 {
	if threshold <= d.low {
		return 1.0
	}
	if threshold > d.high {
		return 0.0
	}
	return float64(d.high-threshold+1) / float64(d.Size())
}

// RGT returns the exact chance of a result greater than the threshold
func (d Die) RGT(threshold int) float64 {
	return d.RGE(threshold + 1)
}

// RLE returns the exact chance of a result less than or equal to the
// threshold
func (d Die) RLE(threshold int) float64 {
	return 1 - d.RGE(threshold+1)
}

// RLT returns the exact chance of a result less than the threshold
func (d Die) RLT(threshold int) float64 {
	return 1 - d.RGE(threshold)
}

// Less reports whether the die's average result is below the other's
func (d Die) Less(other Die) bool {
	return d.Average() < other.Average()
}

// Add combines the die with an int, a Die, or a Pool into a Pool.
// Any other operand type fails with ErrUnsupportedOperand.
func (d Die) Add(operand any) (Pool, error) {
	return PoolOf(d).Add(operand)
}

// Sub combines the die with an int, a Die, or a Pool into a Pool,
// subtracting the operand's contribution from the rolled total
func (d Die) Sub(operand any) (Pool, error) {
	return PoolOf(d).Sub(operand)
}

// Times returns a pool of n copies of the die. n of zero yields the
// empty pool; negative n fails with ErrNegativeCount.
func (d Die) Times(n int) (Pool, error) {
	return PoolOf(d).Scale(n)
}

// String renders the canonical form: "1d6", "1d13 + 1", or the bare
// constant "1" for the degenerate single-faced die
func (d Die) String() string {
	size := d.Size()
	offset := d.Offset()

	if size == 1 && offset == 0 {
		return "1"
	}

	expr := "1d" + strconv.Itoa(size)
	if offset > 0 {
		expr += " + " + strconv.Itoa(offset)
	} else if offset < 0 {
		expr += " - " + strconv.Itoa(-offset)
	}
	return expr
}
