// Package exactle finds the Wordle guess that minimizes the total number of
// further guesses summed across every secret still consistent with the
// feedback seen so far. The search is exact: every candidate is tried as the
// next guess against every candidate as the hypothetical secret, recursively,
// with no pruning and no memoization.
package exactle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// WordLen is the number of letters in every word the solver handles.
const WordLen = 5

// alphabet is the set of letters words may be built from.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Word is an ordered sequence of exactly WordLen letters from the alphabet.
// Equality is positional letter equality.
type Word string

// ErrMalformedWord reports an input word that is not exactly WordLen
// lowercase letters.
var ErrMalformedWord = errors.New("malformed word")

// ParseWord validates s as a playable word.
func ParseWord(s string) (Word, error) {
	if len(s) != WordLen {
		return "", fmt.Errorf("%w: %q has %d letters, want %d", ErrMalformedWord, s, len(s), WordLen)
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return "", fmt.Errorf("%w: %q contains %q", ErrMalformedWord, s, s[i])
		}
	}
	return Word(s), nil
}

func (w Word) contains(letter byte) bool {
	return strings.IndexByte(string(w), letter) >= 0
}

// ReadWords reads a newline-delimited dictionary. Blank lines are skipped;
// any other line that fails ParseWord aborts the whole read with an error
// naming the line number. Words are never truncated or padded.
func ReadWords(r io.Reader) ([]Word, error) {
	sc := bufio.NewScanner(r)

	words := make([]Word, 0, 1024)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		w, err := ParseWord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}

	return words, nil
}

// ReadWordsFile reads a dictionary file with ReadWords.
func ReadWordsFile(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer f.Close()
	return ReadWords(f)
}
