package picman

// Tick advances a Running state by one simulation tick and returns the
// resulting phase. Terminal states are left untouched.
//
// Order: player moves (one step per entry of moves), the enemy counter and
// possibly an enemy move, the catch check, then the clear check. A catch
// wins over a clear in the same tick.
func (s *State) Tick(moves []Direction, rng Sampler) Phase {
	if s.Phase.Terminal() {
		return s.Phase
	}

	for _, d := range moves {
		MovePlayer(s, d)
	}

	s.enemyTicks++
	if s.enemyTicks >= s.Rules.EnemyMoveInterval {
		MoveEnemies(s, rng)
		s.enemyTicks = 0
	}

	if IsPlayerCaught(s.Player, s.Enemies) {
		s.Phase = Lost
		return s.Phase
	}
	if IsLevelCleared(s.Maze) {
		s.Phase = Won
	}
	return s.Phase
}
