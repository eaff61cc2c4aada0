package arc

import "github.com/raniellyferreira/adaptive-cache/internal/list"

// recencyHalf is the LRU-biased half. Entries carry an access counter;
// crossing promoteAfter signals the caller to copy the entry into the
// frequency half. Evicted keys are remembered in a ghost list whose
// capacity stays fixed at the construction-time value. Not locked; the
// owning Cache serializes access.
type recencyHalf[K comparable, V any] struct {
	capacity      int
	ghostCapacity int
	promoteAfter  int

	entries *list.List[K, V]
	index   map[K]*list.Element[K, V]

	ghost      *list.List[K, struct{}]
	ghostIndex map[K]*list.Element[K, struct{}]
}

func newRecencyHalf[K comparable, V any](capacity, promoteAfter int) *recencyHalf[K, V] {
	return &recencyHalf[K, V]{
		capacity:      capacity,
		ghostCapacity: capacity,
		promoteAfter:  promoteAfter,
		entries:       list.New[K, V](),
		index:         make(map[K]*list.Element[K, V]),
		ghost:         list.New[K, struct{}](),
		ghostIndex:    make(map[K]*list.Element[K, struct{}]),
	}
}

// put inserts or updates a key at the most-recent end.
func (h *recencyHalf[K, V]) put(key K, value V) {
	if h.capacity <= 0 {
		return
	}
	if e, ok := h.index[key]; ok {
		e.Value = value
		h.entries.MoveToBack(e)
		return
	}
	if len(h.index) >= h.capacity {
		h.evictOldest()
	}
	e := &list.Element[K, V]{Key: key, Value: value, Count: 1}
	h.entries.PushBack(e)
	h.index[key] = e
}

// get refreshes recency, bumps the access counter and reports whether the
// entry crossed the promotion threshold.
func (h *recencyHalf[K, V]) get(key K) (value V, promote, ok bool) {
	e, ok := h.index[key]
	if !ok {
		return value, false, false
	}
	h.entries.MoveToBack(e)
	e.Count++
	return e.Value, e.Count >= h.promoteAfter, true
}

// checkGhost consumes a ghost record for the key, reporting whether one
// existed.
func (h *recencyHalf[K, V]) checkGhost(key K) bool {
	g, ok := h.ghostIndex[key]
	if !ok {
		return false
	}
	h.ghost.Remove(g)
	delete(h.ghostIndex, key)
	return true
}

func (h *recencyHalf[K, V]) increaseCapacity() { h.capacity++ }

// decreaseCapacity gives up one unit of capacity, evicting first when the
// half is full. It refuses when already at zero.
func (h *recencyHalf[K, V]) decreaseCapacity() bool {
	if h.capacity <= 0 {
		return false
	}
	if len(h.index) == h.capacity {
		h.evictOldest()
	}
	h.capacity--
	return true
}

func (h *recencyHalf[K, V]) remove(key K) bool {
	h.checkGhost(key)
	e, ok := h.index[key]
	if !ok {
		return false
	}
	h.entries.Remove(e)
	delete(h.index, key)
	return true
}

func (h *recencyHalf[K, V]) size() int { return len(h.index) }

// evictOldest moves the least-recent entry into the ghost list.
func (h *recencyHalf[K, V]) evictOldest() {
	e := h.entries.PopFront()
	if e == nil {
		return
	}
	delete(h.index, e.Key)
	h.addGhost(e.Key)
}

func (h *recencyHalf[K, V]) addGhost(key K) {
	if h.ghostCapacity <= 0 {
		return
	}
	// Refresh rather than duplicate a record for a key that bounced back
	// into the half and out again.
	if g, ok := h.ghostIndex[key]; ok {
		h.ghost.Remove(g)
		delete(h.ghostIndex, key)
	}
	if h.ghost.Len() >= h.ghostCapacity {
		if old := h.ghost.PopFront(); old != nil {
			delete(h.ghostIndex, old.Key)
		}
	}
	g := &list.Element[K, struct{}]{Key: key}
	h.ghost.PushBack(g)
	h.ghostIndex[key] = g
}
