package core

// SequenceRandom replays fixed draws in order, cycling when exhausted.
// Empty sequences yield zero. Intn results are clamped into [0, n).
type SequenceRandom struct {
	Floats []float64
	Ints   []int
	fi, ii int
}

func (s *SequenceRandom) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

func (s *SequenceRandom) Intn(n int) int {
	if n <= 0 || len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
