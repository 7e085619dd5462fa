package picman

// Sampler picks uniformly from [0, n). *rand.Rand satisfies it.
type Sampler interface {
	Intn(n int) int
}

// MoveEnemies moves every enemy one random step.
// Each enemy samples a direction independently; a step into a wall leaves
// it in place. Enemies ignore items and each other.
func MoveEnemies(s *State, rng Sampler) {
	for i := range s.Enemies {
		d := Directions[rng.Intn(len(Directions))]
		s.Enemies[i].Pos = AttemptMove(s.Maze, s.Enemies[i].Pos, d)
	}
}
