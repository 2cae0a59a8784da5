// Copyright (c) 2026 the mpmc authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package simd4 provides the wide sequence comparison behind the queue's
// adaptive batch-of-four send/receive path.
//
// There is no portable SIMD intrinsic available through any dependency in
// this module's stack, so Eq is a branchless scalar stand-in: four
// independent equality checks folded through XOR/OR instead of four
// short-circuiting comparisons. It is the four-wide "vector compare"
// referenced by the adaptive multi-element operations; the compiler is
// free to lower it with real vector instructions, but correctness never
// depends on it doing so.
package simd4

// Eq reports whether seqs equals the four consecutive values
// [base, base+1, base+2, base+3].
func Eq(seqs [4]uint64, base uint64) bool {
	return (seqs[0]^base)|
		(seqs[1]^(base+1))|
		(seqs[2]^(base+2))|
		(seqs[3]^(base+3)) == 0
}
