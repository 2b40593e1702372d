package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mitchellh/colorstring"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"exactle"
)

var logger = zap.NewNop()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "exactle",
		Short:        "Exhaustive Wordle guess minimizer",
		Long:         "exactle finds the guess that minimizes the total number of further guesses\nsummed across every secret still consistent with the clues seen so far.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				cfg := zap.NewProductionConfig()
				cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
				logger, err = cfg.Build()
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solver progress")
	root.AddCommand(newSolveCmd(), newRankCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	var dictPath, cluesPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the guess that minimizes total remaining guesses",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := loadWords(dictPath, limit)
			if err != nil {
				return err
			}

			var facts exactle.Facts
			if cluesPath != "" {
				facts, err = exactle.LoadClues(cluesPath)
				if err != nil {
					return err
				}
				fmt.Printf("Clues: %s\n", formatFacts(facts))
			}

			start := time.Now()
			res, err := exactle.BestGuess(words, facts)
			if err != nil {
				return err
			}

			colorstring.Printf("Best guess: [green]%s[reset] (%d total guesses across %d candidates)\n",
				string(res.Guess), res.Guesses, res.NumCandidates)
			fmt.Printf("Elapsed: %v\n", time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dictPath, "dictionary", "d", "data/words.txt", "path to the dictionary file")
	cmd.Flags().StringVarP(&cluesPath, "clues", "c", "", "path to a YAML clue file")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "only consider the first n dictionary words")
	return cmd
}

func newRankCmd() *cobra.Command {
	var dictPath string
	var limit, top int

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Score every opening guess against every possible secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := loadWords(dictPath, limit)
			if err != nil {
				return err
			}

			start := time.Now()
			bar := progressbar.Default(int64(len(words)))

			results := make([]exactle.GuessResult, 0, len(words))
			for _, g := range words {
				r, err := exactle.OpeningCost(words, g)
				if err != nil {
					return err
				}
				results = append(results, r)
				bar.Add(1)
			}

			sort.SliceStable(results, func(i, j int) bool {
				return results[i].Guesses < results[j].Guesses
			})

			if top <= 0 || top > len(results) {
				top = len(results)
			}
			for _, r := range results[:top] {
				fmt.Println(r)
			}
			fmt.Printf("Elapsed: %v\n", time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dictPath, "dictionary", "d", "data/words.txt", "path to the dictionary file")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "only rank the first n dictionary words")
	cmd.Flags().IntVarP(&top, "top", "t", 10, "print only the best t openings (0 for all)")
	return cmd
}

func loadWords(path string, limit int) ([]exactle.Word, error) {
	words, err := exactle.ReadWordsFile(path)
	if err != nil {
		return nil, err
	}
	logger.Info("dictionary loaded", zap.String("path", path), zap.Int("words", len(words)))

	if limit > 0 && limit < len(words) {
		logger.Info("limiting dictionary", zap.Int("limit", limit))
		words = words[:limit]
	}
	return words, nil
}

// formatFacts renders facts the way the game board would: green for exact,
// yellow for present, gray for absent.
func formatFacts(facts exactle.Facts) string {
	var b strings.Builder
	for i, f := range facts {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch f.Feedback {
		case exactle.Exact:
			fmt.Fprintf(&b, "[green]%c@%d[reset]", f.Letter, f.Position)
		case exactle.Present:
			fmt.Fprintf(&b, "[yellow]%c@%d[reset]", f.Letter, f.Position)
		default:
			fmt.Fprintf(&b, "[dark_gray]%c[reset]", f.Letter)
		}
	}
	return colorstring.Color(b.String())
}
