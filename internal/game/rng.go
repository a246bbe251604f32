package game

// RNG is a simple deterministic linear congruential generator.
// The same seed always produces the same sequence, which keeps runs
// reproducible for testing and replays.
type RNG struct {
	state uint64
}

// NewRNG creates a generator from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{state: uint64(seed)}
}

func (r *RNG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n). Returns 0 for n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.next() >> 33) % uint64(n))
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// Shuffle permutes n elements using the provided swap function.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}
