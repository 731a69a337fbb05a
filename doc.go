// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package summer is the repository for the summer valence model's training
pattern generation code, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* trialgen: the core generator producing valence-banded trial patterns:
sparse random feature vectors over a 5x5 input / output layer, paired with
negative / positive / neutral valence unit activations, deduplicated and
written in the tab-separated trial-row format that the pattern tables load.
It also builds the patterns as tables, feeds them through a fixed-table
environment, and summarizes the bands.

* cmd/summer: compiles into the runnable generator program -- writes the
trial rows (output.txt by default) and optionally the headered pattern
table file, then reports per-band statistics.
*/
package summer
