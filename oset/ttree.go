package oset

import (
	"fmt"
)

// TTree maintains independent ternary search trees over non-empty strings
// with integer counts, one tree per bucket k in [0, maxK].
type TTree struct {
	maxK  int
	roots []*ttreeNode
}

type ttreeNode struct {
	c     byte
	count int

	left  *ttreeNode
	eq    *ttreeNode
	right *ttreeNode
}

// NewTTree creates a trie set with buckets 0 through maxK inclusive.
func NewTTree(maxK int) (*TTree, error) {
	if maxK < 0 {
		return nil, fmt.Errorf("oset: invalid bucket count %d", maxK)
	}
	return &TTree{
		maxK:  maxK,
		roots: make([]*ttreeNode, maxK+1),
	}, nil
}

// Insert adds incr to the count stored for s in bucket k, creating the
// path if needed. The empty string is not a valid key.
func (t *TTree) Insert(k int, s string, incr int) error {
	if k < 0 || k > t.maxK {
		return fmt.Errorf("oset: bucket out of range %d", k)
	}
	if s == "" {
		return fmt.Errorf("oset: empty string")
	}
	t.roots[k] = ttreeInsert(t.roots[k], s, incr)
	return nil
}

// Get returns the count stored for s in bucket k. A string with no node
// path in the trie is an error; a proper prefix of a stored string has a
// path and reports a count of zero without an error.
func (t *TTree) Get(k int, s string) (int, error) {
	if k < 0 || k > t.maxK {
		return 0, fmt.Errorf("oset: bucket out of range %d", k)
	}
	if s == "" {
		return 0, fmt.Errorf("oset: empty string")
	}
	count, ok := ttreeGet(t.roots[k], s)
	if !ok {
		return 0, fmt.Errorf("oset: string not present")
	}
	return count, nil
}

// Iterate walks bucket k in trie order (left subtree, equal subtree
// extending the string, right subtree) and calls fn for every stored
// string with a count greater than zero. A non-nil error from fn stops
// the walk and is returned.
func (t *TTree) Iterate(k int, fn func(s string, count int) error) error {
	if k < 0 || k > t.maxK {
		return fmt.Errorf("oset: bucket out of range %d", k)
	}
	return ttreeIterate(t.roots[k], fn, make([]byte, 0, 64))
}

func ttreeInsert(n *ttreeNode, s string, incr int) *ttreeNode {
	if n == nil {
		n = &ttreeNode{c: s[0]}
	}

	switch {
	case n.c < s[0]:
		n.left = ttreeInsert(n.left, s, incr)
	case n.c > s[0]:
		n.right = ttreeInsert(n.right, s, incr)
	default:
		if len(s) == 1 {
			n.count += incr
		} else {
			n.eq = ttreeInsert(n.eq, s[1:], incr)
		}
	}
	return n
}

func ttreeGet(n *ttreeNode, s string) (int, bool) {
	if n == nil {
		return 0, false
	}

	switch {
	case n.c < s[0]:
		return ttreeGet(n.left, s)
	case n.c > s[0]:
		return ttreeGet(n.right, s)
	default:
		if len(s) == 1 {
			return n.count, true
		}
		return ttreeGet(n.eq, s[1:])
	}
}

func ttreeIterate(n *ttreeNode, fn func(s string, count int) error, prefix []byte) error {
	if n == nil {
		return nil
	}

	if err := ttreeIterate(n.left, fn, prefix); err != nil {
		return err
	}

	prefix = append(prefix, n.c)
	if n.count > 0 {
		if err := fn(string(prefix), n.count); err != nil {
			return err
		}
	}
	if err := ttreeIterate(n.eq, fn, prefix); err != nil {
		return err
	}
	prefix = prefix[:len(prefix)-1]

	return ttreeIterate(n.right, fn, prefix)
}
