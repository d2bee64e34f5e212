package generator

// scriptedRand replays fixed IntN results, each taken modulo n, then counts
// upward once the script runs out. Shuffle leaves the slice untouched.
type scriptedRand struct {
	ints []int
	pos  int
}

func (s *scriptedRand) IntN(n int) int {
	v := s.pos
	if s.pos < len(s.ints) {
		v = s.ints[s.pos]
	}
	s.pos++
	return v % n
}

func (s *scriptedRand) Shuffle(int, func(i, j int)) {}

// zeroRand always draws the lowest value.
type zeroRand struct{}

func (zeroRand) IntN(int) int                { return 0 }
func (zeroRand) Shuffle(int, func(i, j int)) {}
