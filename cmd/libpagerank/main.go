// SPDX-License-Identifier: MIT

// Command libpagerank exports the solver to C. Build with
//
//	go build -buildmode=c-shared -o libpagerank.so ./cmd/libpagerank
//
// and call
//
//	int pagerank_c(const double *adjm, unsigned long n, const double *rank,
//	               unsigned long max_iter, double q, double eps, double *out);
//
// adjm holds n*n doubles in row-major order, rank and out hold n doubles.
// out receives the ranks only when the call returns 0.
package main

import "C"

import (
	"math"
	"unsafe"

	"github.com/katalvlaran/pagerank/pagerank"
)

//export pagerank_c
func pagerank_c(adjm *C.double, n C.ulong, rank *C.double, maxIter C.ulong, q, eps C.double, out *C.double) C.int {
	if adjm == nil || rank == nil || out == nil || n == 0 || uint64(n) > math.MaxInt32 || uint64(n)*uint64(n) > math.MaxInt {
		return C.int(StatusInvalidShape)
	}
	size := int(n)
	adj := unsafe.Slice((*float64)(unsafe.Pointer(adjm)), size*size)
	initial := unsafe.Slice((*float64)(unsafe.Pointer(rank)), size)
	dst := unsafe.Slice((*float64)(unsafe.Pointer(out)), size)

	_, err := pagerank.RankFlat(adj, size, initial, uint64(maxIter), float64(q), float64(eps), dst)

	return C.int(statusOf(err))
}

func main() {}
