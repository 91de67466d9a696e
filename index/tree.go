package index

import (
	"iter"
	"strings"

	"github.com/katalvlaran/warehouse/product"
)

// nilHandle marks an absent child.
const nilHandle = -1

// node is one arena slot holding a record and the handles of its children.
type node struct {
	rec   *product.Product
	left  int
	right int
}

// Tree is an ordered index of products keyed by ID.
// Nodes are owned by the tree's arena and addressed by handle; nothing
// outside the tree can reference them.
type Tree struct {
	opts  Options
	nodes []node
	root  int
}

// New creates an empty Tree.
func New(opts ...Option) *Tree {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Tree{opts: o, root: nilHandle}
}

// Insert adds p keyed by p.ID().
// It reports whether p is now the stored record for its key: false means p was
// discarded because the key already existed under DiscardDuplicates.
// Returns ErrNilProduct for a nil p.
func (t *Tree) Insert(p *product.Product) (bool, error) {
	if p == nil {
		return false, ErrNilProduct
	}
	var stored bool
	t.root = t.insert(t.root, p, &stored)

	return stored, nil
}

// insert descends from h and returns the (possibly new) root of that subtree.
func (t *Tree) insert(h int, p *product.Product, stored *bool) int {
	if h == nilHandle {
		t.nodes = append(t.nodes, node{rec: p, left: nilHandle, right: nilHandle})
		*stored = true
		return len(t.nodes) - 1
	}

	switch c := strings.Compare(p.ID(), t.nodes[h].rec.ID()); {
	case c < 0:
		child := t.insert(t.nodes[h].left, p, stored)
		t.nodes[h].left = child
	case c > 0:
		child := t.insert(t.nodes[h].right, p, stored)
		t.nodes[h].right = child
	default:
		t.opts.OnDuplicate(t.nodes[h].rec, p)
		if t.opts.Duplicates == OverwriteDuplicates {
			t.nodes[h].rec = p
			*stored = true
		}
	}

	return h
}

// Search returns the record stored under id, or (nil, false) if absent.
func (t *Tree) Search(id string) (*product.Product, bool) {
	h := t.root
	for h != nilHandle {
		n := &t.nodes[h]
		switch c := strings.Compare(id, n.rec.ID()); {
		case c < 0:
			h = n.left
		case c > 0:
			h = n.right
		default:
			return n.rec, true
		}
	}

	return nil, false
}

// InOrder returns the records in ascending ID order.
// The sequence is lazy and may be ranged over any number of times;
// stopping early ends the traversal.
func (t *Tree) InOrder() iter.Seq[*product.Product] {
	return func(yield func(*product.Product) bool) {
		t.walk(t.root, yield)
	}
}

// walk visits left subtree, node, right subtree; it returns false once yield asks to stop.
func (t *Tree) walk(h int, yield func(*product.Product) bool) bool {
	if h == nilHandle {
		return true
	}
	n := t.nodes[h]

	return t.walk(n.left, yield) && yield(n.rec) && t.walk(n.right, yield)
}

// Policy returns the duplicate-key policy the tree was built with.
func (t *Tree) Policy() DuplicatePolicy { return t.opts.Duplicates }

// Len returns the number of stored records.
func (t *Tree) Len() int { return len(t.nodes) }

// Height returns the number of nodes on the longest root-to-leaf path (0 when empty).
func (t *Tree) Height() int { return t.height(t.root) }

func (t *Tree) height(h int) int {
	if h == nilHandle {
		return 0
	}

	return 1 + max(t.height(t.nodes[h].left), t.height(t.nodes[h].right))
}

// Min returns the record with the smallest ID.
func (t *Tree) Min() (*product.Product, bool) {
	return t.extreme(func(n node) int { return n.left })
}

// Max returns the record with the largest ID.
func (t *Tree) Max() (*product.Product, bool) {
	return t.extreme(func(n node) int { return n.right })
}

func (t *Tree) extreme(next func(node) int) (*product.Product, bool) {
	if t.root == nilHandle {
		return nil, false
	}
	h := t.root
	for next(t.nodes[h]) != nilHandle {
		h = next(t.nodes[h])
	}

	return t.nodes[h].rec, true
}
