// Package index provides an ordered index of product records backed by an
// unbalanced binary search tree keyed by Product.ID.
//
// Ordering:
//
//	Keys compare lexicographically (strings.Compare). For every node all keys
//	in the left subtree are strictly smaller and all keys in the right subtree
//	strictly greater, so no two nodes share a key.
//
// Duplicate keys:
//
//	Inserting a record whose ID is already present never creates a second
//	node. What happens to the stored record is governed by DuplicatePolicy:
//
//	  - DiscardDuplicates (default): the stored record survives unchanged and
//	    the new record is dropped. Insert reports stored == false.
//	  - OverwriteDuplicates: the stored record is replaced in place.
//
//	Discarding is the historical behaviour of this index and is kept as the
//	default for compatibility; callers that expect upsert semantics must opt
//	in. WithOnDuplicate observes every collision under either policy.
//
// Known limitation:
//
//	The tree is never rebalanced. Inserting strictly increasing IDs yields a
//	chain of height n, making Search O(n) in the worst case.
//
// Complexity:
//
//   - Insert, Search: O(h), h = tree height (log n on random input, n worst case).
//   - InOrder: O(n) over the full sequence.
//
// Thread safety:
//
//	A Tree is not safe for concurrent use.
package index
