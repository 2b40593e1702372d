package exactle

import (
	"fmt"
	"slices"
)

// GuessResult is a chosen guess together with the total number of guesses
// that choice costs, summed across every secret still consistent with the
// facts. The sum, not an average or worst case, is what the solver minimizes.
type GuessResult struct {
	Guess Word
	// Guesses is the total guess count: one for playing Guess itself, plus
	// the recursively computed guesses needed afterwards for each possible
	// secret.
	Guesses int
	// NumCandidates is the size of the candidate set the result was
	// computed over.
	NumCandidates int
}

func (r GuessResult) String() string {
	return fmt.Sprintf("Word: %q Guesses: %d Num: %d", string(r.Guess), r.Guesses, r.NumCandidates)
}

// InconsistentFactsError reports a fact set that no word in the dictionary
// satisfies. Facts produced by real play always leave at least the secret
// itself as a candidate, so this only arises from hand-built or wrongly
// merged fact sets. It is a defect in the caller, not a game state.
type InconsistentFactsError struct {
	Facts Facts
}

func (e *InconsistentFactsError) Error() string {
	return fmt.Sprintf("no candidates satisfy the facts: [%s]", e.Facts)
}

// BestGuess exhaustively searches for the guess minimizing the total number
// of further guesses across every secret still consistent with facts.
//
// Every candidate is tried as the next guess. For each hypothetical secret,
// the feedback that guess would receive is simulated, merged into the facts,
// and the narrowed position is solved recursively over the already-filtered
// candidates. A candidate's cost is one plus the sum of the recursive guess
// counts over all secrets. Ties go to the candidate earliest in dictionary
// order, regardless of which goroutine finishes first, so repeated runs
// always return the same result.
//
// The search is exact, with no pruning and no memoization, and its cost
// grows super-exponentially with the candidate count. Keep the word list to
// tens of words, not a full dictionary.
//
// TODO: memoize subtrees on a canonical candidate-set key (sorted dictionary
// indexes) so repeated positions are solved once.
func BestGuess(words []Word, facts Facts) (GuessResult, error) {
	candidates := Filter(words, facts)
	switch len(candidates) {
	case 0:
		return GuessResult{}, &InconsistentFactsError{Facts: facts}
	case 1:
		return GuessResult{Guess: candidates[0], Guesses: 1, NumCandidates: 1}, nil
	}

	// Candidate costs are independent pure computations, so fan out across
	// the CPUs. The minimum is then taken sequentially by index: a
	// concurrent keep-if-smaller reduction would break ties by completion
	// order and equal-cost results would flap between runs.
	costs, err := mapConcurrent(candidates, func(g Word) (int, error) {
		return guessCost(candidates, facts, g)
	})
	if err != nil {
		return GuessResult{}, err
	}

	best := minIndex(costs)
	return GuessResult{Guess: candidates[best], Guesses: costs[best], NumCandidates: len(candidates)}, nil
}

// guessCost totals the guesses needed when g is played next: one for g
// itself, plus the optimal-play cost after g's simulated feedback, summed
// over every candidate as the hypothetical secret.
func guessCost(candidates []Word, facts Facts, g Word) (int, error) {
	total := 1
	for _, w := range candidates {
		merged := append(slices.Clone(facts), Check(w, g)...)
		r, err := bestGuess(candidates, merged)
		if err != nil {
			return 0, err
		}
		total += r.Guesses
	}
	return total, nil
}

// bestGuess is the sequential core of the search, used below the top-level
// fan-out. Same contract as BestGuess.
func bestGuess(words []Word, facts Facts) (GuessResult, error) {
	candidates := Filter(words, facts)
	switch len(candidates) {
	case 0:
		return GuessResult{}, &InconsistentFactsError{Facts: facts}
	case 1:
		return GuessResult{Guess: candidates[0], Guesses: 1, NumCandidates: 1}, nil
	}

	best := GuessResult{Guesses: -1}
	for _, g := range candidates {
		cost, err := guessCost(candidates, facts, g)
		if err != nil {
			return GuessResult{}, err
		}
		// Strict less-than keeps the earliest candidate on ties.
		if best.Guesses < 0 || cost < best.Guesses {
			best = GuessResult{Guess: g, Guesses: cost, NumCandidates: len(candidates)}
		}
	}
	return best, nil
}
