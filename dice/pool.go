package dice

import "strconv"

// Entry is a single signed die within a Pool
type Entry struct {
	// Die is the die rolled for this entry
	Die Die

	// Sign is +1 when the die's result is added to the pool total and
	// -1 when it is subtracted
	Sign int
}

// Pool represents an ordered collection of dice plus a constant
// modifier, such as 1d6 + 1d13 - 4.
//
// Pools are built by combining Die and Pool values; the modifier
// absorbs every constant term, so the dice sequence never contains a
// constant pseudo-die. The empty pool is valid and always rolls 0.
//
// A Pool is an immutable value: every combination returns a new Pool
// with its own entry sequence, so a pool can be reused safely after
// being combined.
type Pool struct {
	entries  []Entry
	modifier int
}

// NewPool creates an empty pool
func NewPool() Pool {
	return Pool{}
}

// PoolOf creates a pool containing the given dice and no modifier
func PoolOf(dice ...Die) Pool {
	entries := make([]Entry, 0, len(dice))
	for _, d := range dice {
		entries = append(entries, Entry{Die: d, Sign: 1})
	}
	return Pool{entries: entries}
}

// Entries returns a copy of the pool's dice in insertion order
func (p Pool) Entries() []Entry {
	entries := make([]Entry, len(p.entries))
	copy(entries, p.entries)
	return entries
}

// Modifier returns the pool's constant term
func (p Pool) Modifier() int {
	return p.modifier
}

// Roll rolls every die in the pool and returns the signed sum of the
// results plus the modifier, drawing entropy once per die
func (p Pool) Roll(r Roller) int {
	total := p.modifier
	for _, e := range p.entries {
		total += e.Sign * e.Die.Roll(r)
	}
	return total
}

// Add combines the pool with an int, a Die, or a Pool into a new Pool.
// Any other operand type fails with ErrUnsupportedOperand, leaving
// both operands untouched.
func (p Pool) Add(operand any) (Pool, error) {
	switch v := operand.(type) {
	case int:
		return Pool{entries: p.Entries(), modifier: p.modifier + v}, nil
	case Die:
		entries := append(p.Entries(), Entry{Die: v, Sign: 1})
		return Pool{entries: entries, modifier: p.modifier}, nil
	case Pool:
		entries := append(p.Entries(), v.entries...)
		return Pool{entries: entries, modifier: p.modifier + v.modifier}, nil
	default:
		return Pool{}, ErrUnsupportedOperand
	}
}

// Sub combines the pool with an int, a Die, or a Pool into a new Pool.
// A subtracted die still rolls its own range; its sampled value is
// subtracted from the total instead of added.
func (p Pool) Sub(operand any) (Pool, error) {
	switch v := operand.(type) {
	case int:
		return p.Add(-v)
	case Die:
		entries := append(p.Entries(), Entry{Die: v, Sign: -1})
		return Pool{entries: entries, modifier: p.modifier}, nil
	case Pool:
		entries := p.Entries()
		for _, e := range v.entries {
			entries = append(entries, Entry{Die: e.Die, Sign: -e.Sign})
		}
		return Pool{entries: entries, modifier: p.modifier - v.modifier}, nil
	default:
		return Pool{}, ErrUnsupportedOperand
	}
}

// Scale duplicates every die n times in place and multiplies the
// modifier by n. n of zero yields the empty pool; negative n fails
// with ErrNegativeCount.
func (p Pool) Scale(n int) (Pool, error) {
	if n < 0 {
		return Pool{}, ErrNegativeCount
	}
	if n == 0 {
		return Pool{}, nil
	}

	entries := make([]Entry, 0, len(p.entries)*n)
	for _, e := range p.entries {
		for i := 0; i < n; i++ {
			entries = append(entries, e)
		}
	}
	return Pool{entries: entries, modifier: p.modifier * n}, nil
}

// Average returns the exact mean total: the signed sum of each die's
// average plus the modifier
func (p Pool) Average() float64 {
	avg := float64(p.modifier)
	for _, e := range p.entries {
		avg += float64(e.Sign) * e.Die.Average()
	}
	return avg
}

// Min returns the lowest total the pool can roll
func (p Pool) Min() int {
	min := p.modifier
	for _, e := range p.entries {
		if e.Sign > 0 {
			min += e.Die.Low()
		} else {
			min -= e.Die.High()
		}
	}
	return min
}

// Max returns the highest total the pool can roll
func (p Pool) Max() int {
	max := p.modifier
	for _, e := range p.entries {
		if e.Sign > 0 {
			max += e.Die.High()
		} else {
			max -= e.Die.Low()
		}
	}
	return max
}

// String renders the canonical form, such as "1d6 + 1d13 - 4".
//
// Same-sized dice are grouped and their signed counts netted, so
// subtracting a d6 from 5d6 renders "4d6". Every die's offset folds
// into the displayed modifier. A pool with no printable dice terms
// renders its modifier as a bare integer.
func (p Pool) String() string {
	type group struct {
		size  int
		count int
	}

	// Group by die size in first-appearance order
	var groups []*group
	bySize := make(map[int]*group)
	modifier := p.modifier
	for _, e := range p.entries {
		modifier += e.Sign * e.Die.Offset()

		size := e.Die.Size()
		g, ok := bySize[size]
		if !ok {
			g = &group{size: size}
			bySize[size] = g
			groups = append(groups, g)
		}
		g.count += e.Sign
	}

	expr := ""
	for _, g := range groups {
		if g.count == 0 {
			continue
		}

		count := g.count
		if count < 0 {
			count = -count
		}
		term := strconv.Itoa(count) + "d" + strconv.Itoa(g.size)

		switch {
		case expr == "" && g.count < 0:
			expr = "-" + term
		case expr == "":
			expr = term
		case g.count < 0:
			expr += " - " + term
		default:
			expr += " + " + term
		}
	}

	if expr == "" {
		return strconv.Itoa(modifier)
	}
	if modifier > 0 {
		expr += " + " + strconv.Itoa(modifier)
	} else if modifier < 0 {
		expr += " - " + strconv.Itoa(-modifier)
	}
	return expr
}
