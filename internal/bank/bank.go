package bank

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotFound is returned when an assessment id is unknown or has no questions.
var ErrNotFound = errors.New("assessment not found")

// Bank maps assessment ids to their question sequences.
// A Bank is read-only after construction and safe for concurrent use.
type Bank struct {
	assessments []Assessment
	byID        map[string]int
}

// New builds a Bank from assessments in catalogue order. A later entry with
// an id already present replaces the earlier one in place.
func New(assessments []Assessment) *Bank {
	b := &Bank{byID: make(map[string]int, len(assessments))}
	for _, a := range assessments {
		if i, ok := b.byID[a.ID]; ok {
			b.assessments[i] = a
			continue
		}
		b.byID[a.ID] = len(b.assessments)
		b.assessments = append(b.assessments, a)
	}
	return b
}

// Default returns a Bank holding the built-in assessments.
func Default() *Bank {
	return New(builtinAssessments())
}

// With returns a new Bank with more layered on top of b.
func (b *Bank) With(more []Assessment) *Bank {
	all := make([]Assessment, 0, len(b.assessments)+len(more))
	all = append(all, b.assessments...)
	all = append(all, more...)
	return New(all)
}

// Questions returns a copy of the question sequence for id.
// Returns ErrNotFound if id is unknown or its sequence is empty.
func (b *Bank) Questions(id string) ([]Question, error) {
	a, err := b.Assessment(id)
	if err != nil {
		return nil, err
	}
	if len(a.Questions) == 0 {
		return nil, fmt.Errorf("%w: %q has no questions", ErrNotFound, id)
	}
	return slices.Clone(a.Questions), nil
}

// Assessment returns the catalogue entry for id.
func (b *Bank) Assessment(id string) (Assessment, error) {
	i, ok := b.byID[id]
	if !ok {
		return Assessment{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return b.assessments[i], nil
}

// List returns all assessments in catalogue order.
func (b *Bank) List() []Assessment {
	return slices.Clone(b.assessments)
}

// Title returns the display title for id, or a generic title if unknown.
func (b *Bank) Title(id string) string {
	if a, err := b.Assessment(id); err == nil && a.Title != "" {
		return a.Title
	}
	return "Assessment"
}
