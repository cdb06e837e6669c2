// Package modelfile reads HMM definitions written in YAML.
//
//	states: [F, L]            # tie-break order, optional
//	start: {F: 0.5, L: 0.5}   # optional, uniform when absent
//	emission:
//	  F: {"1": 0.1667, "6": 0.1667}
//	  L: {"1": 0.125, "6": 0.375}
//	transition:
//	  - {from: F, to: L, p: 0.1}
//
// States and symbols are read as strings. Probability checks are left to
// hmm.Model.Validate; this package rejects only structural problems.
package modelfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dmtk/hmm"
)

// ErrFormat indicates a document that does not describe a model.
var ErrFormat = errors.New("modelfile: malformed model")

type document struct {
	States     []string                      `yaml:"states"`
	Start      map[string]float64            `yaml:"start"`
	Emission   map[string]map[string]float64 `yaml:"emission"`
	Transition []transition                  `yaml:"transition"`
}

type transition struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	P    float64 `yaml:"p"`
}

// Decode parses a single YAML document from r.
func Decode(r io.Reader) (hmm.Model[string, string], error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return hmm.Model[string, string]{}, fmt.Errorf("%w: empty document", ErrFormat)
		}

		return hmm.Model[string, string]{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return doc.model()
}

// Load opens path and decodes it.
func Load(path string) (hmm.Model[string, string], error) {
	f, err := os.Open(path)
	if err != nil {
		return hmm.Model[string, string]{}, err
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return m, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

func (d document) model() (hmm.Model[string, string], error) {
	m := hmm.Model[string, string]{
		Emission:   hmm.EmissionTable[string, string](d.Emission),
		Transition: make(hmm.TransitionTable[string], len(d.Transition)),
	}
	for i, t := range d.Transition {
		if t.From == "" || t.To == "" {
			return hmm.Model[string, string]{}, fmt.Errorf("%w: transition %d needs from and to", ErrFormat, i)
		}
		key := hmm.Transition[string]{From: t.From, To: t.To}
		if _, dup := m.Transition[key]; dup {
			return hmm.Model[string, string]{}, fmt.Errorf("%w: duplicate transition %s→%s", ErrFormat, t.From, t.To)
		}
		m.Transition[key] = t.P
	}
	if len(d.Start) > 0 {
		m.Start = hmm.StartTable[string](d.Start)
	}
	if len(d.States) > 0 {
		m.Order = d.States
	}

	return m, nil
}
