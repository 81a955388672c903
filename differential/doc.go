// Package differential ranks a universe of reference populations by which of
// two targets each population is relatively closer to.
//
// 🚀 What is differential ranking?
//
//	For two targets a and b, every population x gets the signed difference
//	Distance(x,a) − Distance(x,b). Negative means x sits closer to a,
//	positive closer to b, exactly zero belongs to neither side. The result
//	is two independently sorted lists: closer-to-a ascending by difference
//	(most strongly a-leaning first) and closer-to-b descending, each
//	truncated to a configured top-N.
//
// This is a simple O(n log n) sort with no combinatorial cost; it lives in
// the core because it shares the coords metric contract and rounds out the
// ranking story next to the model search.
//
// ⚙️ Usage:
//
//	res := differential.Rank(a, b, universe, differential.DefaultOptions())
//	for _, e := range res.CloserToA {
//	  fmt.Println(e.Name, e.Diff) // Diff < 0 on this side
//	}
//
// Complexity: O(n·Dim + n log n) time, O(n) space.
package differential
