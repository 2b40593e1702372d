package exactle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBestGuessSingleton(t *testing.T) {
	words := []Word{"apple", "angle", "adobe"}
	facts := Facts{{Letter: 'd', Position: 1, Feedback: Exact}}

	res, err := BestGuess(words, facts)
	require.NoError(t, err)
	assert.Equal(t, GuessResult{Guess: "adobe", Guesses: 1, NumCandidates: 1}, res)
}

func TestBestGuessInconsistentFacts(t *testing.T) {
	words := []Word{"apple", "angle", "adobe"}
	facts := Facts{{Letter: 'z', Position: 0, Feedback: Exact}}

	_, err := BestGuess(words, facts)
	require.Error(t, err)

	var icf *InconsistentFactsError
	require.ErrorAs(t, err, &icf)
	assert.Equal(t, facts, icf.Facts)
	assert.Contains(t, err.Error(), "z@0:exact")
}

// Two candidates: whichever is guessed first, one of the two secrets is hit
// immediately and the other needs exactly one more guess, so the total is 3.
// Both candidates tie at 3 and the earlier one must win.
func TestBestGuessTwoWords(t *testing.T) {
	words := []Word{"angle", "adobe"}

	res, err := BestGuess(words, nil)
	require.NoError(t, err)
	assert.Equal(t, GuessResult{Guess: "angle", Guesses: 3, NumCandidates: 2}, res)
}

// All three candidates fully separate the field after one round of feedback,
// so each costs 1 + 1 + 1 + 1 = 4 and the tie goes to the first word.
func TestBestGuessThreeWords(t *testing.T) {
	words := []Word{"apple", "angle", "adobe"}
	facts := Facts{{Letter: 'a', Position: 0, Feedback: Exact}}

	res, err := BestGuess(words, facts)
	require.NoError(t, err)
	assert.Equal(t, GuessResult{Guess: "apple", Guesses: 4, NumCandidates: 3}, res)
}

// bunny tells the caddy/daddy/paddy group nothing apart from the shared y,
// leaving a three-way subgame after every non-bunny secret (8 guesses each).
// The other three openings split the field at once. The minimum must be
// found, and the caddy/daddy/paddy tie must resolve to caddy, the earliest.
func TestBestGuessMinimization(t *testing.T) {
	words := []Word{"bunny", "caddy", "daddy", "paddy"}

	res, err := BestGuess(words, nil)
	require.NoError(t, err)
	assert.Equal(t, GuessResult{Guess: "caddy", Guesses: 9, NumCandidates: 4}, res)
}

// Equal-cost candidates must not flap with goroutine scheduling.
func TestBestGuessReproducible(t *testing.T) {
	words := []Word{"bunny", "caddy", "daddy", "paddy"}

	first, err := BestGuess(words, nil)
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		res, err := BestGuess(words, nil)
		require.NoError(t, err)
		require.Equal(t, first, res, "run %d diverged", i)
	}
}

func TestBestGuessRecursesOverFilteredCandidates(t *testing.T) {
	// ladle is eliminated up front; the search over the survivors must
	// never resurrect it, so the winner is the first survivor.
	words := []Word{"ladle", "angle", "adobe"}
	facts := Facts{{Letter: 'a', Position: 0, Feedback: Exact}}

	res, err := BestGuess(words, facts)
	require.NoError(t, err)
	assert.Equal(t, GuessResult{Guess: "angle", Guesses: 3, NumCandidates: 2}, res)
}
