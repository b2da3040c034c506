// Package dsu implements a wait-free parallel disjoint-set structure
// (union-find) with union-by-minimum-root and path halving, optionally
// seeded with external community ids.
//
// Grounded on the DisjointSetStruct trait from rust-gds
// (core/utils/paged/dss/disjoint_set_struct.rs): Union, SetIDOf, SameSet,
// Size.
package dsu

import "github.com/vanderheijden86/hugegraph/internal/pagedarray"

const unseeded = int64(-1)

// DisjointSetStruct is a wait-free parallel union-find over n nodes.
//
// Union uses union-by-minimum-root: the smaller root always wins, so the
// final partition of any edge multiset is identical regardless of thread
// interleaving. Find uses path halving — parent[x] is set to
// parent[parent[x]] on every step — which is lock-free and safe under
// concurrent finds and unions.
type DisjointSetStruct struct {
	parent    *pagedarray.AtomicLongArray
	community *pagedarray.AtomicLongArray // nil unless seeded
}

// New returns a DisjointSetStruct over n nodes, each its own singleton set.
func New(n int) *DisjointSetStruct {
	d := &DisjointSetStruct{
		parent: pagedarray.NewAtomicLongArrayWithDefault(n, func(i int) int64 { return int64(i) }),
	}
	return d
}

// NewSeeded returns a DisjointSetStruct over n nodes, where seed(i) assigns
// an external community id to node i. A negative return value means node i
// is unseeded. Within a seeded community, SetIDOf returns the seed instead
// of the root.
func NewSeeded(n int, seed func(i int) int64) *DisjointSetStruct {
	d := &DisjointSetStruct{
		parent:    pagedarray.NewAtomicLongArrayWithDefault(n, func(i int) int64 { return int64(i) }),
		community: pagedarray.NewAtomicLongArrayWithDefault(n, func(i int) int64 { return unseeded }),
	}
	for i := 0; i < n; i++ {
		s := seed(i)
		if s >= 0 {
			d.community.Set(i, s)
		}
	}
	return d
}

// Size returns the total number of elements (not the number of disjoint
// sets).
func (d *DisjointSetStruct) Size() int {
	return d.parent.Size()
}

// find returns the root of x's set, flattening the path via halving as it
// walks: each step attempts to replace parent[x] with parent[parent[x]].
// The attempt need not succeed for correctness — termination only requires
// the chain to shrink or stay the same length each step, which it does
// because parent pointers only ever move toward smaller ids.
func (d *DisjointSetStruct) find(x int) int {
	for {
		p := int(d.parent.Get(x))
		if p == x {
			return x
		}
		gp := int(d.parent.Get(p))
		if gp != p {
			d.parent.CompareAndSet(x, int64(p), int64(gp))
		}
		x = gp
	}
}

// Union merges the sets containing p and q. Deterministic regardless of
// thread interleaving: the smaller root always becomes the parent of the
// larger.
func (d *DisjointSetStruct) Union(p, q int) {
	for {
		rp := d.find(p)
		rq := d.find(q)
		if rp == rq {
			return
		}
		lo, hi := rp, rq
		if hi < lo {
			lo, hi = hi, lo
		}
		if !d.parent.CompareAndSet(hi, int64(hi), int64(lo)) {
			continue // another union already moved hi's parent; retry
		}
		if d.community != nil {
			d.mergeSeed(lo, hi)
		}
		return
	}
}

// mergeSeed promotes a seed to the winning root lo when hi merges into it.
// If both lo and hi carry a seed, lo's seed wins (lo is already the new
// root, so this is a no-op unless lo was unseeded and hi was seeded).
func (d *DisjointSetStruct) mergeSeed(lo, hi int) {
	loSeed := d.community.Get(lo)
	if loSeed != unseeded {
		return
	}
	hiSeed := d.community.Get(hi)
	if hiSeed != unseeded {
		d.community.Set(lo, hiSeed)
	}
}

// SetIDOf returns the id of the set containing x: the seed id if x's
// component was seeded, otherwise the root node id.
func (d *DisjointSetStruct) SetIDOf(x int) int {
	root := d.find(x)
	if d.community == nil {
		return root
	}
	if seed := d.community.Get(root); seed != unseeded {
		return int(seed)
	}
	return root
}

// SameSet reports whether p and q belong to the same set.
func (d *DisjointSetStruct) SameSet(p, q int) bool {
	return d.find(p) == d.find(q)
}
