// SPDX-License-Identifier: MIT

package matrix

// ParallelRanges exposes the range partitioner to matrix_test.
var ParallelRanges = parallelRanges
