package games

import "math/rand"

// Sample draws k distinct indices from [0, n) without replacement. When the
// pool is smaller than k it returns all n indices in random order together
// with ErrInsufficientPool.
func Sample(rng *rand.Rand, n, k int) ([]int, error) {
	if n < 0 {
		n = 0
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	var err error
	if k > n {
		k = n
		err = ErrInsufficientPool
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k], err
}

// Shuffle returns a shuffled copy of items.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
