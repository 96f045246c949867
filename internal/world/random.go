package world

import "math/rand/v2"

// Chooser is the only source of nondeterminism in the world: entity placement,
// teleport destinations and creature wandering all draw from it.
type Chooser interface {
	// Intn returns a non-negative int in [0, n). n > 0.
	Intn(n int) int
}

// RandSource is a Chooser backed by a seeded PCG generator.
type RandSource struct {
	r *rand.Rand
}

func NewRandSource(seed int64) *RandSource {
	return &RandSource{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

func (s *RandSource) Intn(n int) int {
	return s.r.IntN(n)
}

// SequenceSource replays a fixed sequence of choices, wrapping around when it runs
// out. Each value is reduced modulo n. An empty sequence always chooses 0.
type SequenceSource struct {
	values []int
	next   int
}

func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

func choose[T any](c Chooser, from []T) T {
	return from[c.Intn(len(from))]
}
