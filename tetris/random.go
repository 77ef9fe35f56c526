package tetris

import "math/rand/v2"

// RandomSource draws uniform integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a seeded PCG source.
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SequenceSource replays a fixed list of draws, cycling when exhausted. Each value is
// reduced modulo n.
type SequenceSource struct {
	Values []int
	pos    int
}

// NewSequenceSource creates a SequenceSource over values.
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{Values: values}
}

func (s *SequenceSource) IntN(n int) int {
	if len(s.Values) == 0 || n <= 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return ((v % n) + n) % n
}
