// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package trialgen generates the summer model's training trials: sparse random
feature patterns over the 5x5 input / output layers, presented in equal thirds
under negative, positive, and neutral valence unit activations.

Each trial draws NFeats Bernoulli feature bits, active with probability
1 - Sparsity, and the draw is accepted only if at least MinAct bits are active
and the pattern has not occurred earlier in the run -- otherwise the whole
vector is discarded and redrawn, up to MaxTries attempts.  Accepted trials are
labeled evt_<n> in row order and written as tab-separated rows with the
feature block repeated for the input and output sides and the valence block
repeated at the start and end of the row.
*/
package trialgen

import (
	"fmt"

	"github.com/emer/emergent/v2/erand"
)

// Trial is one generated training trial.
type Trial struct {

	// evt_<n> label of this trial, by row index
	Name string

	// valence band this trial falls in
	Band Valence

	// the six valence slot values, Ne x3 then Po x3, presented identically
	// before and after the feature blocks
	Vals [NValence]int

	// feature bits, true = active -- presented to both input and output
	Feats []bool
}

// NOn returns the number of active feature bits.
func (tr *Trial) NOn() int {
	n := 0
	for _, ft := range tr.Feats {
		if ft {
			n++
		}
	}
	return n
}

// FeatKey returns the feature bits as a compact '0' / '1' digit string,
// which is the identity used for duplicate detection.
func (tr *Trial) FeatKey() string {
	key := make([]byte, len(tr.Feats))
	for i, ft := range tr.Feats {
		if ft {
			key[i] = '1'
		} else {
			key[i] = '0'
		}
	}
	return string(key)
}

// Generator generates a full set of trials according to its Params.
type Generator struct {

	// generation parameters
	Params Params

	// random source for all feature draws -- a seeded system source is
	// installed by Init when nil.  every random number comes from here,
	// so a fixed seed reproduces the output byte-for-byte
	Rnd erand.Rand `display:"-"`

	// sampling attempts consumed by the most recent Generate call
	Tries int `edit:"-"`

	// patterns accepted so far in the current Generate call
	seen map[string]bool
}

// Defaults sets standard parameters.
func (gg *Generator) Defaults() {
	gg.Params.Defaults()
}

// Init seeds the random source, installing a system source seeded with seed
// if none has been set, and clears the duplicate-detection state.
func (gg *Generator) Init(seed int64) {
	if gg.Rnd == nil {
		gg.Rnd = erand.NewSysRand(seed)
	} else {
		gg.Rnd.Seed(seed)
	}
	gg.seen = make(map[string]bool)
}

// drawFeats samples one candidate feature vector into feats, returning the
// number of active bits.  A bit is active iff the uniform draw is strictly
// greater than Sparsity.
func (gg *Generator) drawFeats(feats []bool) int {
	non := 0
	for i := range feats {
		feats[i] = gg.Rnd.Float64(-1) > gg.Params.Sparsity
		if feats[i] {
			non++
		}
	}
	return non
}

// Generate generates the full set of NTrials trials.  The duplicate set is
// reset at the start, so every call is an independently deduplicated run.
// Returns an error if the parameters are invalid, or if any trial fails to
// find an acceptable pattern within MaxTries attempts.
func (gg *Generator) Generate() ([]Trial, error) {
	pr := &gg.Params
	if err := pr.Validate(); err != nil {
		return nil, err
	}
	if gg.Rnd == nil {
		gg.Rnd = erand.NewGlobalRand()
	}
	gg.seen = make(map[string]bool, pr.NTrials)
	gg.Tries = 0
	trials := make([]Trial, pr.NTrials)
	for ti := range trials {
		tr := &trials[ti]
		tr.Name = fmt.Sprintf("evt_%d", ti)
		tr.Band = Band(ti, pr.NTrials)
		tr.Vals = ValenceRow(tr.Band, pr.NegVal, pr.PosVal)
		tr.Feats = make([]bool, pr.NFeats)
		ok := false
		for try := 0; try < pr.MaxTries; try++ {
			gg.Tries++
			if gg.drawFeats(tr.Feats) < pr.MinAct {
				continue
			}
			key := tr.FeatKey()
			if gg.seen[key] {
				continue
			}
			gg.seen[key] = true
			ok = true
			break
		}
		if !ok {
			return nil, fmt.Errorf("trialgen.Generator: trial %d: no acceptable pattern in %d tries -- with NFeats: %d, Sparsity: %g, MinAct: %d the space of novel patterns with enough active bits may be too small", ti, pr.MaxTries, pr.NFeats, pr.Sparsity, pr.MinAct)
		}
	}
	return trials, nil
}
