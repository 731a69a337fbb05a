// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trialgen

import (
	"fmt"
	"math"

	"cogentcore.org/core/gi"
	"github.com/emer/emergent/v2/env"
	"github.com/emer/emergent/v2/patgen"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
)

// FeatShape returns the tensor shape of the feature columns: square
// [side, side] when nfeats is a perfect square (5x5 for the standard 25),
// otherwise a single [1, nfeats] row.
func FeatShape(nfeats int) []int {
	side := int(math.Sqrt(float64(nfeats)))
	if side*side == nfeats {
		return []int{side, side}
	}
	return []int{1, nfeats}
}

// PatsSchema returns the patterns table schema matching the summer network
// layers: Name, the Ne and Po valence inputs (3x1 each), the Input and
// Output feature layers, and the Ne_Out / Po_Out valence targets.
func PatsSchema(nfeats int) etable.Schema {
	fsh := FeatShape(nfeats)
	vsh := []int{NValence / 2, 1}
	return etable.Schema{
		{Name: "Name", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Ne", Type: etensor.FLOAT32, CellShape: vsh, DimNames: []string{"Y", "X"}},
		{Name: "Po", Type: etensor.FLOAT32, CellShape: vsh, DimNames: []string{"Y", "X"}},
		{Name: "Input", Type: etensor.FLOAT32, CellShape: fsh, DimNames: []string{"Y", "X"}},
		{Name: "Output", Type: etensor.FLOAT32, CellShape: fsh, DimNames: []string{"Y", "X"}},
		{Name: "Ne_Out", Type: etensor.FLOAT32, CellShape: vsh, DimNames: []string{"Y", "X"}},
		{Name: "Po_Out", Type: etensor.FLOAT32, CellShape: vsh, DimNames: []string{"Y", "X"}},
	}
}

// ToTable returns the trials as a patterns table.  The Input and Output
// columns carry the same feature bits, and the Ne_Out / Po_Out targets
// mirror the Ne / Po inputs, as the trial rows present them.
func ToTable(trials []Trial) *etable.Table {
	nft := 0
	if len(trials) > 0 {
		nft = len(trials[0].Feats)
	}
	dt := &etable.Table{}
	dt.SetMetaData("name", "TrainPats")
	dt.SetMetaData("desc", "Training patterns")
	dt.SetFromSchema(PatsSchema(nft), len(trials))
	for ti := range trials {
		SetTableRow(dt, ti, &trials[ti])
	}
	return dt
}

// SetTableRow writes one trial into the given row of a table with the
// PatsSchema columns.
func SetTableRow(dt *etable.Table, row int, tr *Trial) {
	nv := NValence / 2
	ne := etensor.NewFloat32([]int{nv, 1}, nil, []string{"Y", "X"})
	po := etensor.NewFloat32([]int{nv, 1}, nil, []string{"Y", "X"})
	for vi := 0; vi < nv; vi++ {
		ne.SetFloat1D(vi, float64(tr.Vals[vi]))
		po.SetFloat1D(vi, float64(tr.Vals[nv+vi]))
	}
	ft := etensor.NewFloat32(FeatShape(len(tr.Feats)), nil, []string{"Y", "X"})
	for fi, on := range tr.Feats {
		if on {
			ft.SetFloat1D(fi, 1)
		}
	}
	dt.SetCellString("Name", row, tr.Name)
	dt.SetCellTensor("Ne", row, ne)
	dt.SetCellTensor("Po", row, po)
	dt.SetCellTensor("Input", row, ft)
	dt.SetCellTensor("Output", row, ft)
	dt.SetCellTensor("Ne_Out", row, ne)
	dt.SetCellTensor("Po_Out", row, po)
}

// PermutedTrials returns n trials whose feature bits are permuted binary
// patterns with exactly non of nfeats units active per row, instead of
// Bernoulli samples -- the random_5x5_25_gen style source.  Valence banding
// and evt_<n> labeling follow the trial index as usual.  Draws from the
// global random source and does not deduplicate rows.
func PermutedTrials(n, nfeats, non, negVal, posVal int) ([]Trial, error) {
	if n < 1 || nfeats < 1 {
		return nil, fmt.Errorf("trialgen.PermutedTrials: n and nfeats must be at least 1, are: %d, %d", n, nfeats)
	}
	if non < 1 || non > nfeats {
		return nil, fmt.Errorf("trialgen.PermutedTrials: non must be in [1, %d], is: %d", nfeats, non)
	}
	bits := etensor.NewFloat32([]int{n, nfeats}, nil, []string{"Row", "F"})
	patgen.PermutedBinaryRows(bits, non, 1, 0)
	trials := make([]Trial, n)
	for ti := range trials {
		tr := &trials[ti]
		tr.Name = fmt.Sprintf("evt_%d", ti)
		tr.Band = Band(ti, n)
		tr.Vals = ValenceRow(tr.Band, negVal, posVal)
		tr.Feats = make([]bool, nfeats)
		for fi := 0; fi < nfeats; fi++ {
			tr.Feats[fi] = bits.FloatVal1D(ti*nfeats+fi) > 0.5
		}
	}
	return trials, nil
}

// SaveTable saves the patterns table in headered tab-separated form, which
// is the summer_5x5_25.dat style file the simulations load.
func SaveTable(dt *etable.Table, fnm string) error {
	return dt.SaveCSV(gi.Filename(fnm), etable.Tab, etable.Headers)
}

// OpenTable loads a headered tab-separated patterns table.
func OpenTable(fnm string) (*etable.Table, error) {
	dt := &etable.Table{}
	err := dt.OpenCSV(gi.Filename(fnm), etable.Tab)
	if err != nil {
		return nil, err
	}
	return dt, nil
}

// NewEnv returns a fixed-table environment presenting the patterns table,
// for feeding the trials to a simulation.  Sequential presents rows in
// order; otherwise order is permuted each epoch.  Callers Init and Step it.
func NewEnv(nm string, dt *etable.Table, sequential bool) *env.FixedTable {
	ev := &env.FixedTable{}
	ev.Nm = nm
	ev.Table = etable.NewIdxView(dt)
	ev.Sequential = sequential
	ev.Validate()
	return ev
}
