// SPDX-License-Identifier: MIT

package matrix

// NewDenseWithPolicy exposes newDenseWithPolicy to matrix_test.
var NewDenseWithPolicy = newDenseWithPolicy
