package exactle

import (
	"fmt"
	"strings"
)

// Feedback classifies one letter of a guess against the secret.
type Feedback uint8

const (
	// Absent means the letter does not occur in the secret.
	Absent Feedback = iota
	// Present means the letter occurs in the secret, but not at this position.
	Present
	// Exact means the letter matches the secret at this position.
	Exact
)

func (f Feedback) String() string {
	switch f {
	case Exact:
		return "exact"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// Fact is one unit of evidence about the secret: a letter, the position it
// was guessed at, and what the feedback said about it.
type Fact struct {
	Letter   byte
	Position int
	Feedback Feedback
}

func (f Fact) String() string {
	return fmt.Sprintf("%c@%d:%s", f.Letter, f.Position, f.Feedback)
}

// Facts is the evidence accumulated across guesses. Order is irrelevant to
// filtering (each fact is checked independently) and duplicates are harmless.
type Facts []Fact

func (fs Facts) String() string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}

// Check compares guess against secret and returns one fact per position:
// Exact on a positional match, Present when the secret contains the letter
// anywhere else, Absent otherwise.
//
// A letter guessed more times than it occurs in the secret is reported
// Present at every guessed position. Real Wordle would mark the surplus
// copies Absent; this solver keeps the simpler rule on both the checking and
// filtering side, so the two stay consistent with each other.
func Check(secret, guess Word) Facts {
	facts := make(Facts, 0, WordLen)
	for i := 0; i < WordLen; i++ {
		switch {
		case guess[i] == secret[i]:
			facts = append(facts, Fact{guess[i], i, Exact})
		case secret.contains(guess[i]):
			facts = append(facts, Fact{guess[i], i, Present})
		default:
			facts = append(facts, Fact{guess[i], i, Absent})
		}
	}
	return facts
}

func satisfies(w Word, f Fact) bool {
	switch f.Feedback {
	case Exact:
		return w[f.Position] == f.Letter
	case Present:
		return w[f.Position] != f.Letter && w.contains(f.Letter)
	default:
		return !w.contains(f.Letter)
	}
}

// Filter returns the subsequence of words consistent with every fact,
// preserving the original relative order. That order is what breaks cost
// ties in the solver, so it is part of the contract, not an accident.
func Filter(words []Word, facts Facts) []Word {
	filtered := make([]Word, 0, len(words))
	for _, w := range words {
		ok := true
		for _, f := range facts {
			if !satisfies(w, f) {
				ok = false
				break
			}
		}
		if ok {
			filtered = append(filtered, w)
		}
	}
	return filtered
}
