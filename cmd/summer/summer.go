// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// summer generates the summer valence model's training patterns: equal
// thirds of negative, positive, and neutral trials pairing valence unit
// activations with sparse random feature bits over the 5x5 input / output
// layers.  It writes the tab-separated trial rows (output.txt by default)
// and optionally the headered pattern table file the simulations load,
// then reports per-band statistics.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/v2/econfig"
	"github.com/emer/summer/trialgen"
)

// RunConfig has config parameters related to running the generator.
type RunConfig struct {

	// random seed -- a fixed seed reproduces the trial rows byte for byte;
	// 0 seeds from the current time
	Seed int64 `default:"1"`

	// draw the feature bits as permuted binary patterns with exactly
	// PermutedOn units active per row, instead of Bernoulli sampling
	Permuted bool

	// number of active units per row when Permuted
	PermutedOn int `default:"6"`
}

// LogConfig has config parameters related to the files written.
type LogConfig struct {

	// trial row output file, truncated if it exists
	Output string `default:"output.txt"`

	// if non-empty, also save the patterns as a headered tab-separated
	// table file, e.g. summer_5x5_25.dat
	Table string

	// print the per-band summary after generating
	Report bool `default:"true"`
}

// Config is the generator configuration.
type Config struct {

	// config files to include before this one -- filled in with the
	// files actually processed
	Includes []string

	// log debugging information
	Debug bool

	// trial generation parameters
	Gen trialgen.Params `display:"add-fields"`

	// running related configuration options
	Run RunConfig `display:"add-fields"`

	// file output related configuration options
	Log LogConfig `display:"add-fields"`
}

func (cfg *Config) IncludesPtr() *[]string { return &cfg.Includes }

func main() {
	cfg := &Config{}
	econfig.Config(cfg, "config.toml")

	seed := cfg.Run.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var trials []trialgen.Trial
	var err error
	if cfg.Run.Permuted {
		rand.Seed(seed)
		trials, err = trialgen.PermutedTrials(cfg.Gen.NTrials, cfg.Gen.NFeats, cfg.Run.PermutedOn, cfg.Gen.NegVal, cfg.Gen.PosVal)
	} else {
		gen := &trialgen.Generator{Params: cfg.Gen}
		gen.Init(seed)
		trials, err = gen.Generate()
		if err == nil && cfg.Debug {
			log.Printf("generated %d trials in %d tries, seed: %d\n", len(trials), gen.Tries, seed)
		}
	}
	if err != nil {
		log.Fatal(err)
	}

	if err = trialgen.SaveDat(cfg.Log.Output, trials); err != nil {
		log.Fatal(err)
	}
	if fi, err := os.Stat(cfg.Log.Output); err == nil {
		fmt.Printf("wrote %d trials to %s (%v)\n", len(trials), cfg.Log.Output, (datasize.ByteSize)(fi.Size()).HumanReadable())
	} else {
		log.Println(err)
	}

	if cfg.Log.Table != "" {
		dt := trialgen.ToTable(trials)
		if err := trialgen.SaveTable(dt, cfg.Log.Table); err != nil {
			log.Println(err)
		} else {
			fmt.Printf("wrote patterns table to %s\n", cfg.Log.Table)
		}
	}

	if cfg.Log.Report {
		fmt.Print(trialgen.Report(trials))
	}
}
