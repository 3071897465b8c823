package xwfill

import (
	utilslices "github.com/spjmurray/go-util/pkg/slices"

	"crosswarped.com/xwfill/pkg/primitives"
)

// arc is an ordered pair of crossing slots queued for revision.
type arc struct {
	x, y Variable
}

// enforceNodeConsistency removes from every domain the words whose length
// does not fit the slot. It runs once per solve, ahead of arc consistency;
// a word of the wrong length is invalid no matter what the other slots do.
func (s *Solver) enforceNodeConsistency() {
	for v, words := range s.domains {
		fitting := make([]string, 0, len(words))
		for _, word := range words {
			if len(word) == v.Length {
				fitting = append(fitting, word)
			}
		}
		s.domains[v] = fitting
	}
}

// revise makes x arc consistent with y: a word stays in x's domain only if
// at least one word in y's domain agrees with it at the shared cell. It
// reports whether anything was removed. A pair with no overlap has no
// constraint to enforce, so neither domain is touched.
func (s *Solver) revise(x, y Variable) bool {
	overlap, ok := s.crossword.Overlap(x, y)
	if !ok {
		return false
	}

	// The characters y's domain offers at the shared cell.
	support := primitives.NewCharSet()
	for _, yWord := range s.domains[y] {
		support.Add(yWord[overlap.Y])
	}

	kept := make([]string, 0, len(s.domains[x]))
	for _, xWord := range s.domains[x] {
		if support.Contains(xWord[overlap.X]) {
			kept = append(kept, xWord)
		}
	}

	if len(kept) == len(s.domains[x]) {
		return false
	}
	s.domains[x] = kept
	return true
}

// ac3 revises arcs to a fixed point, seeding the worklist with every ordered
// pair of crossing slots when none is supplied. Whenever a revision prunes
// x, the arcs (z, x) for every other neighbor z of x are re-enqueued, since
// the pruning may have invalidated their consistency. Returns false as soon
// as any domain empties; true once the worklist drains.
//
// Termination is guaranteed: every successful revision strictly shrinks a
// finite domain.
func (s *Solver) ac3(arcs []arc) bool {
	if arcs == nil {
		for x, y := range utilslices.Permute(s.crossword.variables) {
			if _, ok := s.crossword.Overlap(x, y); !ok {
				continue
			}
			arcs = append(arcs, arc{x, y}, arc{y, x})
		}
	}

	for len(arcs) > 0 {
		next := arcs[0]
		arcs = arcs[1:]

		if !s.revise(next.x, next.y) {
			continue
		}
		if len(s.domains[next.x]) == 0 {
			return false
		}
		for _, z := range s.crossword.neighbors[next.x] {
			if z == next.y {
				continue
			}
			arcs = append(arcs, arc{z, next.x})
		}
	}
	return true
}
