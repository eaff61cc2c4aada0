package tinylfu

import (
	"hash/maphash"
	"sync"
)

const defaultDepth = 4

// Sketch is a Count-Min frequency estimator over comparable keys. Each of
// depth rows owns an independent hash seed; counters are 8-bit and
// saturate at 255, so an estimate is monotone between two decays. It is
// safe for concurrent use and never calls back into its owner.
type Sketch[K comparable] struct {
	mu         sync.Mutex
	width      int
	rows       [][]uint8
	seeds      []maphash.Seed
	sampleSize int
}

// NewSketch creates a sketch of the given width and depth. Width is
// clamped to at least 1; depth of zero or less falls back to 4. The
// sample size is carried for observability only.
func NewSketch[K comparable](width, depth, sampleSize int) *Sketch[K] {
	if width < 1 {
		width = 1
	}
	if depth < 1 {
		depth = defaultDepth
	}
	s := &Sketch[K]{
		width:      width,
		rows:       make([][]uint8, depth),
		seeds:      make([]maphash.Seed, depth),
		sampleSize: sampleSize,
	}
	for i := range s.rows {
		s.rows[i] = make([]uint8, width)
		s.seeds[i] = maphash.MakeSeed()
	}
	return s
}

// Increment adds one to the key's counter in every row, saturating at 255.
func (s *Sketch[K]) Increment(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, row := range s.rows {
		idx := maphash.Comparable(s.seeds[i], key) % uint64(s.width)
		if row[idx] < 255 {
			row[idx]++
		}
	}
}

// Estimate returns the minimum counter for the key across all rows. The
// error is one-sided: the estimate never undercounts.
func (s *Sketch[K]) Estimate(key K) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	min := uint32(256)
	for i, row := range s.rows {
		idx := maphash.Comparable(s.seeds[i], key) % uint64(s.width)
		if c := uint32(row[idx]); c < min {
			min = c
		}
	}
	return min
}

// Decay halves every counter.
func (s *Sketch[K]) Decay() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		for i := range row {
			row[i] /= 2
		}
	}
}

// Reset zeroes every counter.
func (s *Sketch[K]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		clear(row)
	}
}

// Width returns the number of counters per row.
func (s *Sketch[K]) Width() int { return s.width }

// Depth returns the number of rows.
func (s *Sketch[K]) Depth() int { return len(s.rows) }

// SampleSize returns the sample size the sketch was built for.
func (s *Sketch[K]) SampleSize() int { return s.sampleSize }
