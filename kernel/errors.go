// SPDX-License-Identifier: MIT

package kernel

import "errors"

var (
	// ErrUnknownKernel indicates a kernel name that is not in the table.
	ErrUnknownKernel = errors.New("kernel: unknown kernel")

	// ErrBadKernel indicates weights that are not a non-empty, square,
	// odd-dimension matrix of finite values.
	ErrBadKernel = errors.New("kernel: kernel must be square with odd dimension and finite weights")
)
