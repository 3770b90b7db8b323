package mask

import (
	"fmt"
	"math"
)

// branchesPerSlot is the fan-out of one digit slot.
const branchesPerSlot = 10

// DefaultMaxBranches caps the pre-pruning branch bound of a single mask.
const DefaultMaxBranches = 1_000_000

// Limits bounds what one mask may cost before expansion starts. The zero
// value means built-in defaults.
type Limits struct {
	MaxDepth    int
	MaxBranches uint64
}

func (l Limits) maxBranches() uint64 {
	if l.MaxBranches > 0 {
		return l.MaxBranches
	}
	return DefaultMaxBranches
}

// ParseOptions returns the parser options implied by the limits.
func (l Limits) ParseOptions() Options {
	return Options{MaxDepth: l.MaxDepth}
}

// CountDigitSlots returns the number of digit slots in elems, descending
// into groups. Every slot multiplies the branch count by ten.
func CountDigitSlots(elems []Element) int {
	n := 0
	for _, el := range elems {
		switch el := el.(type) {
		case DigitSlot:
			n++
		case Group:
			n += CountDigitSlots(el.Elems)
		}
	}
	return n
}

// EstimateBranches returns the upper bound on the branches expansion will
// visit: ten to the power of the digit-slot count. Back-references only
// prune, so the bound is exact before pruning. Counts that do not fit a
// uint64 are an error.
func EstimateBranches(elems []Element) (uint64, error) {
	slots := CountDigitSlots(elems)
	est := uint64(1)
	for i := 0; i < slots; i++ {
		if est > math.MaxUint64/branchesPerSlot {
			return 0, fmt.Errorf("branch estimate for %d digit slots overflows uint64", slots)
		}
		est *= branchesPerSlot
	}
	return est, nil
}

// CheckBudget rejects element sequences whose branch bound exceeds the
// configured ceiling, so callers fail before expansion instead of during.
func CheckBudget(elems []Element, limits Limits) error {
	est, err := EstimateBranches(elems)
	if err != nil {
		return err
	}
	if ceiling := limits.maxBranches(); est > ceiling {
		return fmt.Errorf("expansion would visit %d branches, above the limit of %d", est, ceiling)
	}
	return nil
}
