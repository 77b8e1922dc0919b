package state

import "time"

// Options configures a memory store.
type Options struct {
	// Size bounds the number of keys; the least recently used key is evicted
	// first. Zero means unbounded.
	Size int
	// TTL expires an entry that long after it was last set. Zero disables
	// expiry.
	TTL time.Duration
}
