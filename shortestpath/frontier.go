package shortestpath

import "container/heap"

// frontierEntry is a vertex that has been reached but not yet finalized,
// along with the distance it was queued with.
type frontierEntry struct {
	id       string
	distance int
}

// frontier is a min-priority queue of reached vertices ordered by distance.
// Ties are broken by the lowest vertex ID so that calculations are
// reproducible.
//
// A vertex whose distance improves is pushed again instead of being updated
// in place; callers skip entries that are stale or already visited.
type frontier []frontierEntry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].distance != f[j].distance {
		return f[i].distance < f[j].distance
	}

	return f[i].id < f[j].id
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push is used by heap.Interface methods and should not be called directly.
func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(frontierEntry))
}

// Pop is used by heap.Interface methods and should not be called directly.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	entry := old[n-1]
	*f = old[:n-1]

	return entry
}

func (f *frontier) add(id string, distance int) {
	heap.Push(f, frontierEntry{id: id, distance: distance})
}

func (f *frontier) next() frontierEntry {
	return heap.Pop(f).(frontierEntry)
}
