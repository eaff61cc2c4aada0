// Package arc provides the adaptive replacement cache engine.
//
// The cache is built from two cooperating halves: a recency-biased LRU
// half and a frequency-biased LFU half, each with its own ghost list of
// recently evicted keys. A request that hits a ghost proves the other
// bias would have kept the key, so one unit of capacity shifts toward
// the half that lost it. Entries promoted from the recency half are
// copied into the frequency half once their access count reaches the
// promotion threshold.
//
// Basic usage:
//
//	c := arc.New[string, int](128)
//	c.Put("answer", 42)
//	v, ok := c.Get("answer")
//
// The cache is safe for concurrent use.
package arc
