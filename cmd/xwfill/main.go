package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"crosswarped.com/xwfill"
	"crosswarped.com/xwfill/internal/wordlist"
	"crosswarped.com/xwfill/pkg/structfile"
)

func main() {
	structurePath := flag.String("structure", "", "The structure definition file")
	wordsPath := flag.String("words", "", "The file to load words from")
	output := flag.String("output", "", "Optional PNG file to render the solved grid to")
	minWordLength := flag.Int("min_length", 2, "The minimum word length")

	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the solver")

	debug := flag.Bool("debug", false, "Enable debug logging")
	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *structurePath == "" || *wordsPath == "" {
		log.Fatal().Msg("both -structure and -words are required")
	}

	crossword, err := structfile.ParseFile(*structurePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *structurePath).Msg("parsing structure")
	}

	maxWordLength := max(crossword.Height(), crossword.Width())

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	words, err := wordlist.Load(ctx, *wordsPath, *minWordLength, maxWordLength)
	if err != nil {
		log.Fatal().Err(err).Str("path", *wordsPath).Msg("loading words")
	}
	log.Info().Int("words", len(words)).Int("slots", len(crossword.Variables())).Msg("loaded inputs")

	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating profile file")
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("starting CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	assignment, err := xwfill.NewSolver(crossword, words).Solve(ctx)
	switch {
	case errors.Is(err, xwfill.ErrNoSolution):
		fmt.Println("No solution.")
		os.Exit(1)
	case err != nil:
		log.Fatal().Err(err).Msg("solving")
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("solved")

	grid := crossword.LetterGrid(assignment)
	fmt.Println(grid.Repr())

	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal().Err(err).Str("path", *output).Msg("creating output file")
		}
		defer f.Close()

		if err := grid.WritePNG(f); err != nil {
			log.Fatal().Err(err).Msg("rendering PNG")
		}
		log.Info().Str("path", *output).Msg("wrote image")
	}
}
