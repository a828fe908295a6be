// Package dlx implements Knuth's Algorithm X over a toroidal doubly-linked
// node table (Dancing Links), in three progressively richer variants:
//
//   - DLX: primary and secondary items. An option is satisfied once every
//     primary item it names is covered exactly once; secondary items may
//     be covered at most once but need not be covered at all.
//   - DLXC: DLX plus colored secondary items. A secondary item may be
//     covered by several options as long as every option that covers it
//     agrees on the color.
//   - MCC-DLXC: DLXC plus a nonnegative integer cost per option, solved by
//     branch-and-bound to the minimum total cost instead of the first
//     exact cover found.
//
// All three share one Table representation and one search driver: DLX and
// DLXC are the special case of MCC-DLXC where every option costs 0 and the
// cost ceiling never tightens, so none of its branch-and-bound pruning
// ever triggers.
//
// The search is exposed both as a pull iterator (Iter, DLXCIter,
// MinCostDLXCIter) and as one-shot convenience functions (First, DLXCFirst,
// DLXCAll, MinCostDLXC, MinCostDLXCFirst) built on top of it. The engine is
// single-threaded, deterministic unless one of the *Randomized entry
// points is used, and holds no state beyond one Table and one search stack.
// cover/uncover only rewrite slice elements already present, so the Table
// is never reallocated during search; the search stack does allocate as it
// grows by append, the *Randomized choosers build a candidate slice at each
// branching step, and every returned solution is a newly allocated value.
//
// A minimal plain-DLX example, covering {1,2,3} with two disjoint options:
//
//	cover, ok, _, err := dlx.First([][]int{{1, 2}, {3}}, []int{1, 2, 3}, nil)
//	if err != nil {
//		panic(err)
//	}
//	fmt.Println(ok, cover)
//	// Output: true [[1 2] [3]]
package dlx
