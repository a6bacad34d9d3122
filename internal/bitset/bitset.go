// Package bitset provides the 9-bit candidate mask shared by the grid,
// solver, generator and hint engine.
//
// For cell/board state, see package grid.
package bitset

import "math/bits"

// Mask is a bitmask of possible digits 1-9 for a Sudoku cell. Bit
// positions 1-9 correspond to digits 1-9; bit 0 is unused.
type Mask uint16

// Full is a Mask with every digit 1-9 set.
const Full Mask = 0b1111111110

// FromDigits builds a Mask from a slice of digits.
func FromDigits(digits []int) Mask {
	var m Mask
	for _, d := range digits {
		m = m.Set(d)
	}
	return m
}

// IndexToMask returns the single-bit mask for digit index i (0 ≤ i < 9),
// where index 0 is digit 1.
func IndexToMask(i int) Mask {
	if i < 0 || i > 8 {
		return 0
	}
	return 1 << uint(i+1)
}

// MaskToIndex returns the bit index (0..8) of a single-bit mask. The
// second return value is false unless popcount(m) == 1.
func MaskToIndex(m Mask) (int, bool) {
	if PopCount(m) != 1 {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(m)) - 1, true
}

// Has reports whether digit is set in m.
func (m Mask) Has(digit int) bool {
	if digit < 1 || digit > 9 {
		return false
	}
	return m&(1<<uint(digit)) != 0
}

// Set returns m with digit added.
func (m Mask) Set(digit int) Mask {
	if digit < 1 || digit > 9 {
		return m
	}
	return m | (1 << uint(digit))
}

// Clear returns m with digit removed.
func (m Mask) Clear(digit int) Mask {
	if digit < 1 || digit > 9 {
		return m
	}
	return m &^ (1 << uint(digit))
}

// Union returns the set union of m and other.
func (m Mask) Union(other Mask) Mask { return m | other }

// Intersect returns the set intersection of m and other.
func (m Mask) Intersect(other Mask) Mask { return m & other }

// Subtract returns m with every digit in other removed.
func (m Mask) Subtract(other Mask) Mask { return m &^ other }

// PopCount returns the number of digits set in m (0..9).
func PopCount(m Mask) int {
	return bits.OnesCount16(uint16(m))
}

// ExtractLowest returns the index of the least significant set digit
// and the mask with that bit cleared. ok is false if m is empty.
// Iterating by repeated ExtractLowest visits digits in ascending order,
// which the solver relies on for deterministic enumeration.
func ExtractLowest(m Mask) (index int, rest Mask, ok bool) {
	if m == 0 {
		return 0, m, false
	}
	tz := bits.TrailingZeros16(uint16(m))
	return tz - 1, m &^ (1 << uint(tz)), true
}

// Only returns the single digit in m, if popcount(m) == 1.
func (m Mask) Only() (int, bool) {
	idx, ok := MaskToIndex(m)
	if !ok {
		return 0, false
	}
	return idx + 1, true
}

// ToSlice returns the set digits of m in ascending order.
func (m Mask) ToSlice() []int {
	var out []int
	rest := m
	for {
		idx, next, ok := ExtractLowest(rest)
		if !ok {
			break
		}
		out = append(out, idx+1)
		rest = next
	}
	return out
}

// IsEmpty reports whether m has no digits set.
func (m Mask) IsEmpty() bool { return m == 0 }

// Combinations returns every k-element combination of digits, in
// lexicographic order. Used by the hint engine's naked/hidden subset
// and fish searches.
func Combinations(digits []int, k int) [][]int {
	if k <= 0 || k > len(digits) {
		return nil
	}
	var result [][]int
	var rec func(start int, cur []int)
	rec = func(start int, cur []int) {
		if len(cur) == k {
			out := make([]int, k)
			copy(out, cur)
			result = append(result, out)
			return
		}
		for i := start; i <= len(digits)-(k-len(cur)); i++ {
			rec(i+1, append(cur, digits[i]))
		}
	}
	rec(0, nil)
	return result
}
