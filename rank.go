package exactle

// OpeningCost evaluates one fixed opening: the total number of guesses
// needed when g is played first against every secret in words, with the
// rest of the game played optimally by BestGuess. The opening itself is not
// re-optimized; this exists to compare openings against each other.
//
// g does not have to be a member of words.
func OpeningCost(words []Word, g Word) (GuessResult, error) {
	total := 1
	for _, w := range words {
		r, err := BestGuess(words, Check(w, g))
		if err != nil {
			return GuessResult{}, err
		}
		total += r.Guesses
	}
	return GuessResult{Guess: g, Guesses: total, NumCandidates: len(words)}, nil
}

// RankOpenings scores every opening in guesses against every secret in
// words, returning one GuessResult per opening in input order. Sort by
// Guesses to rank them.
func RankOpenings(words, guesses []Word) ([]GuessResult, error) {
	return mapConcurrent(guesses, func(g Word) (GuessResult, error) {
		return OpeningCost(words, g)
	})
}
