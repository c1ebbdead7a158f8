// SPDX-License-Identifier: MIT

package halftone

// Levels is the number of halftone intensity levels.
const Levels = 10

// Mask is a 3×3 dot pattern, indexed [row][col]; 1 means "on".
type Mask [3][3]uint8

// order lists the cell turned on at each level 1..9.
var order = [Levels - 1][2]int{
	{0, 1}, {2, 2}, {0, 0}, {2, 0}, {0, 2}, {1, 2}, {2, 1}, {1, 0}, {1, 1},
}

// masks is computed once at package load.
var masks = buildMasks()

func buildMasks() [Levels]Mask {
	var ms [Levels]Mask
	for k := 1; k < Levels; k++ {
		ms[k] = ms[k-1]
		cell := order[k-1]
		ms[k][cell[0]][cell[1]] = 1
	}
	return ms
}

// Masks returns the ten dot patterns, level 0 (all off) to 9 (all on).
// The returned array is a copy.
func Masks() [Levels]Mask { return masks }

// On returns the number of "on" dots in m.
func (m Mask) On() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			n += int(v)
		}
	}
	return n
}

// Contains reports whether every dot on in o is also on in m.
func (m Mask) Contains(o Mask) bool {
	for r := range m {
		for c := range m[r] {
			if o[r][c] == 1 && m[r][c] == 0 {
				return false
			}
		}
	}
	return true
}
