// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trialgen

import (
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/emergent/v2/env"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

func testTrials() []Trial {
	return []Trial{
		mkTrial("evt_0", Negative, 25, 0, 3, 24),
		mkTrial("evt_1", Positive, 25, 1, 2, 5, 13),
		mkTrial("evt_2", Neutral, 25, 4, 7),
	}
}

func TestFeatShape(t *testing.T) {
	sh := FeatShape(25)
	if sh[0] != 5 || sh[1] != 5 {
		t.Errorf("shape err for 25: %v\n", sh)
	}
	sh = FeatShape(10)
	if sh[0] != 1 || sh[1] != 10 {
		t.Errorf("shape err for 10: %v\n", sh)
	}
}

func TestToTable(t *testing.T) {
	trials := testTrials()
	dt := ToTable(trials)
	if dt.Rows != 3 {
		t.Fatalf("rows err: %v, trg: 3\n", dt.Rows)
	}
	shapes := map[string][]int{"Ne": {3, 1}, "Po": {3, 1}, "Input": {5, 5}, "Output": {5, 5}, "Ne_Out": {3, 1}, "Po_Out": {3, 1}}
	for cnm, shp := range shapes {
		cl := dt.CellTensor(cnm, 0)
		if cl == nil {
			t.Errorf("missing column: %v\n", cnm)
			continue
		}
		if cl.NumDims() != 2 || cl.Dim(0) != shp[0] || cl.Dim(1) != shp[1] {
			t.Errorf("cell shape err: %v: [%v, %v], trg: %v\n", cnm, cl.Dim(0), cl.Dim(1), shp)
		}
	}
	for ri := range trials {
		tr := &trials[ri]
		if nm := dt.CellString("Name", ri); nm != tr.Name {
			t.Errorf("name cell err: row: %v, got: %v\n", ri, nm)
		}
		in := dt.CellTensor("Input", ri)
		out := dt.CellTensor("Output", ri)
		for fi := range tr.Feats {
			trg := float32(0)
			if tr.Feats[fi] {
				trg = 1
			}
			dif := math32.Abs(float32(in.FloatVal1D(fi)) - trg)
			if dif > difTol {
				t.Errorf("input cell err: row: %v, idx: %v, got: %v, trg: %v\n", ri, fi, in.FloatVal1D(fi), trg)
			}
			difio := math32.Abs(float32(in.FloatVal1D(fi)) - float32(out.FloatVal1D(fi)))
			if difio > difTol {
				t.Errorf("input / output differ: row: %v, idx: %v\n", ri, fi)
			}
		}
		ne := dt.CellTensor("Ne", ri)
		po := dt.CellTensor("Po", ri)
		neOut := dt.CellTensor("Ne_Out", ri)
		poOut := dt.CellTensor("Po_Out", ri)
		for vi := 0; vi < NValence/2; vi++ {
			if float32(ne.FloatVal1D(vi)) != float32(tr.Vals[vi]) {
				t.Errorf("Ne cell err: row: %v, slot: %v, got: %v, trg: %v\n", ri, vi, ne.FloatVal1D(vi), tr.Vals[vi])
			}
			if float32(po.FloatVal1D(vi)) != float32(tr.Vals[NValence/2+vi]) {
				t.Errorf("Po cell err: row: %v, slot: %v, got: %v, trg: %v\n", ri, vi, po.FloatVal1D(vi), tr.Vals[NValence/2+vi])
			}
			if ne.FloatVal1D(vi) != neOut.FloatVal1D(vi) || po.FloatVal1D(vi) != poOut.FloatVal1D(vi) {
				t.Errorf("valence out cells must mirror inputs: row: %v, slot: %v\n", ri, vi)
			}
		}
	}
	// negative trial drives the first Ne unit, positive the first Po unit
	if dt.CellTensor("Ne", 0).FloatVal1D(0) != 1 || dt.CellTensor("Po", 0).FloatVal1D(0) != 0 {
		t.Errorf("negative row valence err\n")
	}
	if dt.CellTensor("Po", 1).FloatVal1D(0) != 1 || dt.CellTensor("Ne", 1).FloatVal1D(0) != 0 {
		t.Errorf("positive row valence err\n")
	}
}

func TestSaveOpenTable(t *testing.T) {
	dt := ToTable(testTrials())
	fnm := filepath.Join(t.TempDir(), "summer_5x5_25.dat")
	if err := SaveTable(dt, fnm); err != nil {
		t.Fatal(err)
	}
	got, err := OpenTable(fnm)
	if err != nil {
		t.Fatal(err)
	}
	if got.Rows != dt.Rows {
		t.Fatalf("rows err: %v, trg: %v\n", got.Rows, dt.Rows)
	}
	for ri := 0; ri < dt.Rows; ri++ {
		if got.CellString("Name", ri) != dt.CellString("Name", ri) {
			t.Errorf("name err: row: %v\n", ri)
		}
		in := dt.CellTensor("Input", ri)
		gin := got.CellTensor("Input", ri)
		for fi := 0; fi < 25; fi++ {
			dif := math32.Abs(float32(in.FloatVal1D(fi)) - float32(gin.FloatVal1D(fi)))
			if dif > difTol {
				t.Errorf("input cell err: row: %v, idx: %v, dif: %v\n", ri, fi, dif)
			}
		}
	}
}

func TestPermutedTrials(t *testing.T) {
	trials, err := PermutedTrials(9, 25, 6, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(trials) != 9 {
		t.Fatalf("count err: %v, trg: 9\n", len(trials))
	}
	for i := range trials {
		tr := &trials[i]
		if tr.NOn() != 6 {
			t.Errorf("permuted rows must have exactly 6 on: idx: %v, non: %v\n", i, tr.NOn())
		}
		if tr.Band != Band(i, 9) {
			t.Errorf("band err: idx: %v, band: %v\n", i, tr.Band)
		}
	}
	if _, err = PermutedTrials(9, 25, 26, 1, 1); err == nil {
		t.Errorf("non > nfeats should fail\n")
	}
	if _, err = PermutedTrials(0, 25, 6, 1, 1); err == nil {
		t.Errorf("zero rows should fail\n")
	}
}

func TestNewEnv(t *testing.T) {
	dt := ToTable(testTrials())
	ev := NewEnv("TrainEnv", dt, true)
	if err := ev.Validate(); err != nil {
		t.Fatal(err)
	}
	ev.Init(0)
	names := []string{"evt_0", "evt_1", "evt_2"}
	for i := 0; i < 3; i++ {
		ev.Step()
		if ev.TrialName.Cur != names[i] {
			t.Errorf("trial name err: step: %v, got: %v, trg: %v\n", i, ev.TrialName.Cur, names[i])
		}
	}
	ev.Step() // wraps back to the first row, new epoch
	if ev.TrialName.Cur != "evt_0" {
		t.Errorf("wrap err: got: %v, trg: evt_0\n", ev.TrialName.Cur)
	}
	epc, _, chg := ev.Counter(env.Epoch)
	if !chg || epc != 1 {
		t.Errorf("epoch counter err: epc: %v, chg: %v\n", epc, chg)
	}
}
