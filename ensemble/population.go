// Package ensemble describes the two samples of models being compared and
// loads their names, scores and coordinates.
//
// The full population is always sample A followed by sample B. Every index
// used by the analysis is an index into that ordering.
package ensemble

import "fmt"

// Sample identifies which of the two independent runs a model came from.
type Sample int

const (
	SampleA Sample = iota
	SampleB
)

func (s Sample) String() string {
	switch s {
	case SampleA:
		return "A"
	case SampleB:
		return "B"
	}
	return fmt.Sprintf("Sample(%d)", int(s))
}

// Identity is a model's place in the population.
type Identity struct {
	Sample Sample
	Index  int
	Name   string
}

func (id Identity) String() string {
	if len(id.Name) > 0 {
		return id.Name
	}
	return fmt.Sprintf("%s:%d", id.Sample, id.Index)
}

// Population is the ordered concatenation of the models of sample A and the
// models of sample B.
type Population struct {
	names []string
	numA  int
}

// NewPopulation creates a population from the model names of each sample.
// The slices are copied.
func NewPopulation(namesA, namesB []string) *Population {
	names := make([]string, 0, len(namesA)+len(namesB))
	names = append(names, namesA...)
	names = append(names, namesB...)
	return &Population{names: names, numA: len(namesA)}
}

// NewAnonymousPopulation creates a population of numA + numB unnamed models.
func NewAnonymousPopulation(numA, numB int) *Population {
	return &Population{names: make([]string, numA+numB), numA: numA}
}

// Len returns the total number of models.
func (p *Population) Len() int {
	return len(p.names)
}

// Count returns the number of models in the given sample.
func (p *Population) Count(s Sample) int {
	if s == SampleA {
		return p.numA
	}
	return len(p.names) - p.numA
}

// SampleOf returns the sample of the model at index i.
func (p *Population) SampleOf(i int) Sample {
	if i < p.numA {
		return SampleA
	}
	return SampleB
}

// Identity returns the identity of the model at index i.
func (p *Population) Identity(i int) Identity {
	return Identity{Sample: p.SampleOf(i), Index: i, Name: p.names[i]}
}

// Indices returns the population indices of every model in a sample.
func (p *Population) Indices(s Sample) []int {
	start, end := 0, p.numA
	if s == SampleB {
		start, end = p.numA, len(p.names)
	}
	idxs := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		idxs = append(idxs, i)
	}
	return idxs
}

// Names returns a copy of every model name in population order.
func (p *Population) Names() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

func (p *Population) String() string {
	return fmt.Sprintf("%d models (%d in A, %d in B)",
		p.Len(), p.Count(SampleA), p.Count(SampleB))
}
