// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Kernel is an immutable dim×dim weight matrix with odd dim.
type Kernel struct {
	name string
	dim  int
	w    []float64 // row-major, len == dim*dim
}

// New validates weights and returns a Kernel holding a private copy of them.
// Stage 1 (Validate): non-empty, square, odd dimension, finite weights.
// Stage 2 (Finalize): flatten into row-major storage.
// Returns ErrBadKernel on any violation.
func New(name string, weights [][]float64) (Kernel, error) {
	n := len(weights)
	if n == 0 || n%2 == 0 {
		return Kernel{}, fmt.Errorf("kernel.New(%q): dim %d: %w", name, n, ErrBadKernel)
	}
	flat := make([]float64, 0, n*n)
	for i, row := range weights {
		if len(row) != n {
			return Kernel{}, fmt.Errorf("kernel.New(%q): row %d has %d cells: %w", name, i, len(row), ErrBadKernel)
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Kernel{}, fmt.Errorf("kernel.New(%q): %w", name, ErrBadKernel)
			}
			flat = append(flat, v)
		}
	}

	return Kernel{name: name, dim: n, w: flat}, nil
}

// mustNew is used for the built-in table only.
func mustNew(name string, weights [][]float64) Kernel {
	k, err := New(name, weights)
	if err != nil {
		panic(err)
	}
	return k
}

// Name returns the kernel's name.
func (k Kernel) Name() string { return k.name }

// Dim returns the side length of the kernel.
func (k Kernel) Dim() int { return k.dim }

// Center returns the index of the center cell, (Dim-1)/2.
func (k Kernel) Center() int { return (k.dim - 1) / 2 }

// At returns weight (i, j). Panics on out-of-range indices like a slice would.
func (k Kernel) At(i, j int) float64 {
	if i < 0 || i >= k.dim || j < 0 || j >= k.dim {
		panic(fmt.Sprintf("kernel: At(%d,%d) out of range for dim %d", i, j, k.dim))
	}
	return k.w[i*k.dim+j]
}

// Weights returns a copy of the weights as rows.
func (k Kernel) Weights() [][]float64 {
	rows := make([][]float64, k.dim)
	for i := range rows {
		rows[i] = slices.Clone(k.w[i*k.dim : (i+1)*k.dim])
	}
	return rows
}

// Sum returns the sum of all weights (1 for normalized smoothing kernels).
func (k Kernel) Sum() float64 {
	var s float64
	for _, v := range k.w {
		s += v
	}
	return s
}
