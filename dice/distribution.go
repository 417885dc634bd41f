package dice

import (
	"strconv"
	"strings"
)

// distribution holds the exact discrete distribution of a pool total
// as outcome counts over a total number of equally likely combinations
type distribution struct {
	counts map[int]int64
	total  int64
}

// distribution convolves each die's uniform outcomes in turn. Cost is
// proportional to the pool's outcome span per die, never sampled.
func (p Pool) distribution() distribution {
	counts := map[int]int64{p.modifier: 1}
	total := int64(1)

	for _, e := range p.entries {
		next := make(map[int]int64, len(counts)+e.Die.Size())
		for value, count := range counts {
			for face := e.Die.Low(); face <= e.Die.High(); face++ {
				next[value+e.Sign*face] += count
			}
		}
		counts = next
		total *= int64(e.Die.Size())
	}

	return distribution{counts: counts, total: total}
}

// chances returns the share of combinations whose total satisfies the
// comparator against the threshold
func (d distribution) chances(threshold int, comparator func(result, threshold int) bool) float64 {
	var pass int64
	for value, count := range d.counts {
		if comparator(value, threshold) {
			pass += count
		}
	}
	return float64(pass) / float64(d.total)
}

// Distribution returns the pool's exact outcome probabilities, keyed
// by total
func (p Pool) Distribution() map[int]float64 {
	dist := p.distribution()
	probabilities := make(map[int]float64, len(dist.counts))
	for value, count := range dist.counts {
		probabilities[value] = float64(count) / float64(dist.total)
	}
	return probabilities
}

// RGE returns the exact chance that the pool total is greater than or
// equal to the threshold, computed on the full convolved distribution
func (p Pool) RGE(threshold int) float64 {
	return p.distribution().chances(threshold, func(result, threshold int) bool {
		return result >= threshold
	})
}

// RGT returns the exact chance of a total greater than the threshold
func (p Pool) RGT(threshold int) float64 {
	return p.RGE(threshold + 1)
}

// RLE returns the exact chance of a total less than or equal to the
// threshold
func (p Pool) RLE(threshold int) float64 {
	return 1 - p.RGE(threshold+1)
}

// RLT returns the exact chance of a total less than the threshold
func (p Pool) RLT(threshold int) float64 {
	return 1 - p.RGE(threshold)
}

// Equal reports whether two pools produce the same exact outcome
// distribution. Counts are compared cross-multiplied so no floating
// point tolerance is involved.
func (p Pool) Equal(other Pool) bool {
	a := p.distribution()
	b := other.distribution()

	if len(a.counts) != len(b.counts) {
		return false
	}
	for value, count := range a.counts {
		if count*b.total != b.counts[value]*a.total {
			return false
		}
	}
	return true
}

// Histogram renders the distribution one outcome per line, with a dot
// per combination producing it. Useful for eyeballing small pools.
func (p Pool) Histogram() string {
	dist := p.distribution()

	var b strings.Builder
	for value := p.Min(); value <= p.Max(); value++ {
		count, ok := dist.counts[value]
		if !ok {
			continue
		}
		b.WriteString(strconv.Itoa(value))
		b.WriteString("\t")
		b.WriteString(strings.Repeat(". ", int(count)))
		b.WriteString("\n")
	}
	return b.String()
}
