package exactle

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Clue names one letter at one board position.
type Clue struct {
	Letter   string `yaml:"letter"`
	Position int    `yaml:"position"`
}

// Clues is the hand-written form of a fact set: letters known to sit at an
// exact position, letters known to be in the word but not at the given
// position, and letters known to be absent entirely.
type Clues struct {
	Exact   []Clue `yaml:"exact"`
	Present []Clue `yaml:"present"`
	Absent  string `yaml:"absent"`
}

// Facts expands the clues into the flat fact set the solver consumes.
// Absent letters carry no position, so they are pinned at position 0;
// filtering ignores the position for Absent facts anyway.
func (c Clues) Facts() (Facts, error) {
	facts := make(Facts, 0, len(c.Exact)+len(c.Present)+len(c.Absent))

	for _, cl := range c.Exact {
		f, err := cl.fact(Exact)
		if err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}
	for _, cl := range c.Present {
		f, err := cl.fact(Present)
		if err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}
	for i := 0; i < len(c.Absent); i++ {
		letter := c.Absent[i]
		if strings.IndexByte(alphabet, letter) < 0 {
			return nil, fmt.Errorf("absent letters %q: %q is not a lowercase letter", c.Absent, letter)
		}
		facts = append(facts, Fact{Letter: letter, Position: 0, Feedback: Absent})
	}

	return facts, nil
}

func (c Clue) fact(kind Feedback) (Fact, error) {
	if len(c.Letter) != 1 || strings.IndexByte(alphabet, c.Letter[0]) < 0 {
		return Fact{}, fmt.Errorf("clue letter %q must be a single lowercase letter", c.Letter)
	}
	if c.Position < 0 || c.Position >= WordLen {
		return Fact{}, fmt.Errorf("clue position %d for letter %q out of range [0,%d)", c.Position, c.Letter, WordLen)
	}
	return Fact{Letter: c.Letter[0], Position: c.Position, Feedback: kind}, nil
}

// LoadClues reads a YAML clue file and expands it into facts.
func LoadClues(path string) (Facts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read clue file: %w", err)
	}
	var c Clues
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse clue file %s: %w", path, err)
	}
	return c.Facts()
}
