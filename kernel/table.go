// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Names of the built-in kernels.
const (
	Mean      = "mean"
	Gaussian  = "gaussian"
	Sharpen   = "sharpen"
	Laplacian = "laplacian"
	Emboss    = "emboss"
	Motion    = "motion"
	XEdge     = "x_edge"
	YEdge     = "y_edge"
	Brighten  = "brighten"
	Darken    = "darken"
	Identity  = "identity"
)

// table is initialized once at package load and never written afterwards.
var table = buildTable()

func motionWeights() [][]float64 {
	const n = 9
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1.0 / 9
	}
	return rows
}

func buildTable() map[string]Kernel {
	const ninth, sixteenth = 1.0 / 9, 1.0 / 16
	ks := []Kernel{
		mustNew(Mean, [][]float64{
			{ninth, ninth, ninth},
			{ninth, ninth, ninth},
			{ninth, ninth, ninth},
		}),
		mustNew(Gaussian, [][]float64{
			{1 * sixteenth, 2 * sixteenth, 1 * sixteenth},
			{2 * sixteenth, 4 * sixteenth, 2 * sixteenth},
			{1 * sixteenth, 2 * sixteenth, 1 * sixteenth},
		}),
		mustNew(Sharpen, [][]float64{
			{0, -1, 0},
			{-1, 5, -1},
			{0, -1, 0},
		}),
		mustNew(Laplacian, [][]float64{
			{-1, -1, -1},
			{-1, 8, -1},
			{-1, -1, -1},
		}),
		mustNew(Emboss, [][]float64{
			{-2, -1, 0},
			{-1, 1, 1},
			{0, 1, 2},
		}),
		mustNew(Motion, motionWeights()),
		mustNew(YEdge, [][]float64{
			{1, 2, 1},
			{0, 0, 0},
			{-1, -2, -1},
		}),
		mustNew(XEdge, [][]float64{
			{1, 0, -1},
			{2, 0, -2},
			{1, 0, -1},
		}),
		mustNew(Brighten, [][]float64{
			{0, 0, 0},
			{0, 1.25, 0},
			{0, 0, 0},
		}),
		mustNew(Darken, [][]float64{
			{0, 0, 0},
			{0, 0.75, 0},
			{0, 0, 0},
		}),
		mustNew(Identity, [][]float64{
			{0, 0, 0},
			{0, 1, 0},
			{0, 0, 0},
		}),
	}

	m := make(map[string]Kernel, len(ks))
	for _, k := range ks {
		m[k.name] = k
	}
	return m
}

// Lookup returns the built-in kernel called name, or ErrUnknownKernel.
func Lookup(name string) (Kernel, error) {
	k, ok := table[name]
	if !ok {
		return Kernel{}, fmt.Errorf("kernel.Lookup(%q): %w", name, ErrUnknownKernel)
	}
	return k, nil
}

// Has reports whether name is a built-in kernel.
func Has(name string) bool {
	_, ok := table[name]
	return ok
}

// Names returns the built-in kernel names in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
