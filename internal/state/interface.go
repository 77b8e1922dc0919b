package state

// Store holds one value per key. Every operation reads or replaces the whole
// value; callers never mutate a stored value in place.
type Store[V any] interface {
	Get(key string) (V, bool)
	Set(key string, v V)
	Delete(key string)
	// Take removes and returns the value for key.
	Take(key string) (V, bool)
	// TakeIf removes and returns the value for key only when match accepts it.
	// A rejected value stays in place.
	TakeIf(key string, match func(V) bool) (V, bool)
	Len() int
}
