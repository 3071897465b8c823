package xwfill

import (
	"cmp"
	"context"
	"errors"
	"slices"

	utilslices "github.com/spjmurray/go-util/pkg/slices"
)

// ErrNoSolution is returned by Solve when the vocabulary cannot fill the
// structure: either propagation emptied a domain, or the search exhausted
// every candidate.
var ErrNoSolution = errors.New("no solution")

// Assignment maps slot variables to the words chosen for them. A complete
// assignment binds every variable of the crossword.
type Assignment map[Variable]string

// Solver fills a crossword structure from a vocabulary. It owns one domain
// of candidate words per slot; domains only ever shrink while solving, and a
// Solver is good for a single Solve call.
type Solver struct {
	crossword *Crossword
	domains   map[Variable][]string
}

// NewSolver seeds every slot's domain with the full vocabulary, duplicates
// collapsed. Each domain is an independently owned, lexicographically sorted
// slice of words; the sorted order is what makes the search deterministic.
func NewSolver(crossword *Crossword, vocabulary []string) *Solver {
	seen := make(map[string]bool, len(vocabulary))
	words := make([]string, 0, len(vocabulary))
	for _, word := range vocabulary {
		if seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	slices.Sort(words)

	s := &Solver{
		crossword: crossword,
		domains:   make(map[Variable][]string, len(crossword.variables)),
	}
	for _, v := range crossword.variables {
		s.domains[v] = slices.Clone(words)
	}
	return s
}

// Domain returns a copy of v's current candidate words.
func (s *Solver) Domain(v Variable) []string {
	return slices.Clone(s.domains[v])
}

// Solve runs node consistency, AC-3 propagation, and backtracking search,
// and returns the first complete consistent assignment the search order
// finds. It returns ErrNoSolution when the structure cannot be filled from
// the vocabulary, and ctx.Err() if the context is cancelled mid-search. It
// never returns a partial assignment.
func (s *Solver) Solve(ctx context.Context) (Assignment, error) {
	s.enforceNodeConsistency()
	for _, v := range s.crossword.variables {
		if len(s.domains[v]) == 0 {
			return nil, ErrNoSolution
		}
	}
	if !s.ac3(nil) {
		return nil, ErrNoSolution
	}

	result := s.backtrack(ctx, Assignment{})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrNoSolution
	}
	return result, nil
}

// assignmentComplete reports whether every slot has a non-empty binding.
func (s *Solver) assignmentComplete(a Assignment) bool {
	for _, v := range s.crossword.variables {
		if a[v] == "" {
			return false
		}
	}
	return true
}

// consistent reports whether the bound words are pairwise distinct, fit
// their slots, and agree on the shared cell of every bound crossing pair.
// Unbound variables impose no constraint, and neither do pairs that do not
// cross.
func (s *Solver) consistent(a Assignment) bool {
	words := make(map[string]bool, len(a))
	for v, word := range a {
		if len(word) != v.Length {
			return false
		}
		if words[word] {
			return false
		}
		words[word] = true
	}

	for x, y := range utilslices.Permute(s.crossword.variables) {
		xWord, ok := a[x]
		if !ok {
			continue
		}
		yWord, ok := a[y]
		if !ok {
			continue
		}
		overlap, ok := s.crossword.Overlap(x, y)
		if !ok {
			continue
		}
		if xWord[overlap.X] != yWord[overlap.Y] {
			return false
		}
	}
	return true
}

// selectUnassignedVariable picks the unassigned slot with the fewest
// remaining candidates, breaking ties by the highest crossing degree and
// then by the fixed variable order.
func (s *Solver) selectUnassignedVariable(a Assignment) Variable {
	var best Variable
	found := false

	for _, v := range s.crossword.variables {
		if _, ok := a[v]; ok {
			continue
		}
		if !found {
			best, found = v, true
			continue
		}

		switch size, bestSize := len(s.domains[v]), len(s.domains[best]); {
		case size < bestSize:
			best = v
		case size == bestSize && s.crossword.Degree(v) > s.crossword.Degree(best):
			best = v
		}
	}
	return best
}

// orderDomainValues returns v's candidates in least-constraining order:
// words that conflict with the fewest candidates across v's unassigned
// neighbors come first. This is a counting pass only; no domain is mutated.
// The stable sort keeps the lexicographic domain order within equal counts.
func (s *Solver) orderDomainValues(v Variable, a Assignment) []string {
	type scored struct {
		word       string
		eliminated int
	}

	ordered := make([]scored, len(s.domains[v]))
	for i, word := range s.domains[v] {
		ordered[i] = scored{word: word}
	}

	for _, neighbor := range s.crossword.neighbors[v] {
		if _, ok := a[neighbor]; ok {
			continue
		}
		overlap := s.crossword.overlaps[varPair{v, neighbor}]

		for i := range ordered {
			for _, neighborWord := range s.domains[neighbor] {
				if ordered[i].word[overlap.X] != neighborWord[overlap.Y] {
					ordered[i].eliminated++
				}
			}
		}
	}

	slices.SortStableFunc(ordered, func(a, b scored) int {
		return cmp.Compare(a.eliminated, b.eliminated)
	})

	words := make([]string, len(ordered))
	for i, sc := range ordered {
		words[i] = sc.word
	}
	return words
}

// backtrack extends the assignment one slot at a time, undoing a binding
// whenever the subtree under it fails. The context is polled between
// candidate trials, so cancellation cannot corrupt the assignment or any
// domain.
func (s *Solver) backtrack(ctx context.Context, a Assignment) Assignment {
	if ctx.Err() != nil {
		return nil
	}
	if s.assignmentComplete(a) {
		return a
	}

	v := s.selectUnassignedVariable(a)
	for _, word := range s.orderDomainValues(v, a) {
		if ctx.Err() != nil {
			return nil
		}

		a[v] = word
		if s.consistent(a) {
			if result := s.backtrack(ctx, a); result != nil {
				return result
			}
		}
		delete(a, v)
	}
	return nil
}
