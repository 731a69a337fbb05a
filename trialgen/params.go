// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trialgen

import "fmt"

// NValence is the number of valence slots on each side of a trial row:
// three negative (Ne) units followed by three positive (Po) units.
const NValence = 6

// slot of the one unit driven in each non-neutral band
const (
	negSlot = 0
	posSlot = 3
)

// Valence is the affective band of a trial.
type Valence int32

const (
	// Neutral trials have all-zero valence slots.
	Neutral Valence = iota

	// Negative trials drive the first Ne unit.
	Negative

	// Positive trials drive the first Po unit.
	Positive

	ValenceN
)

func (vl Valence) String() string {
	switch vl {
	case Neutral:
		return "Neutral"
	case Negative:
		return "Negative"
	case Positive:
		return "Positive"
	}
	return fmt.Sprintf("Valence(%d)", int32(vl))
}

// Band returns the valence band for the given trial index out of ntrials
// total: the first third of trials is Negative, the second third Positive,
// and the rest Neutral.  Thresholds use integer division, so when ntrials
// is not a multiple of 3 the Neutral band absorbs the extra trial(s).
func Band(trial, ntrials int) Valence {
	switch {
	case trial < ntrials/3:
		return Negative
	case trial < 2*ntrials/3:
		return Positive
	}
	return Neutral
}

// ValenceRow returns the six valence slot values for the given band:
// all zeros for Neutral, negVal in the first Ne slot for Negative,
// posVal in the first Po slot for Positive.
func ValenceRow(vl Valence, negVal, posVal int) [NValence]int {
	var row [NValence]int
	switch vl {
	case Negative:
		row[negSlot] = negVal
	case Positive:
		row[posSlot] = posVal
	}
	return row
}

// Params are the parameters governing trial generation.
type Params struct {

	// number of trials to generate
	NTrials int `default:"180" min:"1"`

	// number of feature bits per pattern -- the units of the 5x5 input layer
	NFeats int `default:"25" min:"1"`

	// sparsity threshold: a feature bit is active iff a uniform random draw
	// is strictly greater than this, so P(active) = 1 - Sparsity
	Sparsity float64 `default:"0.85" min:"0" max:"1"`

	// minimum number of active feature bits for a pattern to be accepted
	MinAct int `default:"2" min:"0"`

	// value driven into the first negative valence unit on Negative trials
	NegVal int `default:"1"`

	// value driven into the first positive valence unit on Positive trials
	PosVal int `default:"1"`

	// maximum sampling attempts for any one trial before giving up --
	// bounds the resampling loop when acceptable patterns are rare or
	// the distinct-pattern space is exhausted
	MaxTries int `default:"1000" min:"1"`
}

// Defaults sets standard generation parameters.
func (pr *Params) Defaults() {
	pr.NTrials = 180
	pr.NFeats = 25
	pr.Sparsity = 0.85
	pr.MinAct = 2
	pr.NegVal = 1
	pr.PosVal = 1
	pr.MaxTries = 1000
}

// Validate checks the parameters, returning the first problem found.
func (pr *Params) Validate() error {
	switch {
	case pr.NTrials < 1:
		return fmt.Errorf("trialgen.Params: NTrials must be at least 1, is: %d", pr.NTrials)
	case pr.NFeats < 1:
		return fmt.Errorf("trialgen.Params: NFeats must be at least 1, is: %d", pr.NFeats)
	case pr.Sparsity < 0 || pr.Sparsity > 1:
		return fmt.Errorf("trialgen.Params: Sparsity must be in [0,1], is: %g", pr.Sparsity)
	case pr.MinAct < 0:
		return fmt.Errorf("trialgen.Params: MinAct must be non-negative, is: %d", pr.MinAct)
	case pr.MinAct > pr.NFeats:
		return fmt.Errorf("trialgen.Params: MinAct (%d) cannot exceed NFeats (%d)", pr.MinAct, pr.NFeats)
	case pr.MaxTries < 1:
		return fmt.Errorf("trialgen.Params: MaxTries must be at least 1, is: %d", pr.MaxTries)
	}
	return nil
}
