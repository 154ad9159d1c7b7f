package search

import "github.com/katalvlaran/burrow/placement"

// item is one frontier entry.
type item struct {
	p   *placement.Placement
	sig string
	fp  uint64 // xxhash of sig
	seq uint64 // push order
}

// frontier is a min-heap of *item ordered by cost, then fingerprint, then push order.
type frontier []*item

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.p.Cost() != b.p.Cost() {
		return a.p.Cost() < b.p.Cost()
	}
	if a.fp != b.fp {
		return a.fp < b.fp
	}
	return a.seq < b.seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*item)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return it
}
