// Package einplan is your in-memory toolkit for planning and executing
// multi-operand Einstein-summation contractions — from cost-aware path
// search to GEMM-accelerated evaluation.
//
// 🚀 What is einplan?
//
//	A small, deterministic library that brings together:
//		• Path planning: exhaustive-optimal and greedy-opportunistic search
//		  over pairwise contraction orders, bounded by a memory ceiling
//		• Cost modeling: element-count estimation over label bitsets
//		• Materialization: abstract paths turned into executable
//		  pairwise/groupwise contraction instructions
//		• Execution: dense tensors, a gonum-backed tensordot fast path,
//		  and a general indexed-summation loop
//		• Reporting: per-step scaling tables for chosen paths
//
// ✨ Why choose einplan?
//
//   - Deterministic – stable tie-breaking, no time-based randomness
//   - Rock-solid guarantees – strict sentinel errors, in-code docs
//   - Lean Go – no cgo; gonum for BLAS-grade matrix multiplies
//   - Extensible – bring your own execution backend via instructions
//
// Under the hood, everything is organized under two subpackages:
//
//	path/   — contraction-plan search engine: cost estimator, reducer,
//	          optimal & opportunistic searches, plan materializer
//	einsum/ — subscript parsing, shape inference, dense tensors,
//	          contraction execution and path reports
//
// Quick example:
//
//	    ea,fb,abcd,gc,hd->efgh
//
//	naively scales with 8 distinct labels; a well-ordered sequence of
//	pairwise contractions evaluates the same expression at rank-5 cost.
//
// Dive into examples/ for runnable scenarios, and each package's doc.go
// for contracts, invariants and complexity notes.
//
//	go get github.com/katalvlaran/einplan
package einplan
