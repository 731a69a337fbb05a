// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trialgen

import (
	"fmt"
	"strings"

	"github.com/emer/etable/v2/agg"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/split"
)

// TrialLog returns a per-trial record of the generated patterns with the
// scalar columns used for analysis: Trial index, Name, Band, and NOn (the
// number of active feature bits).
func TrialLog(trials []Trial) *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "TrlLog")
	dt.SetMetaData("desc", "Per-trial record of generated patterns")
	sch := etable.Schema{
		{Name: "Trial", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "Name", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Band", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "NOn", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, len(trials))
	for ti := range trials {
		tr := &trials[ti]
		dt.SetCellFloat("Trial", ti, float64(ti))
		dt.SetCellString("Name", ti, tr.Name)
		dt.SetCellString("Band", ti, tr.Band.String())
		dt.SetCellFloat("NOn", ti, float64(tr.NOn()))
	}
	return dt
}

// BandStats groups the trial log by band and aggregates the mean number of
// active bits, returning one row per band present.
func BandStats(trials []Trial) *etable.Table {
	ix := etable.NewIdxView(TrialLog(trials))
	spl := split.GroupBy(ix, []string{"Band"})
	split.Agg(spl, "NOn", agg.AggMean)
	return spl.AggsToTable(etable.AddAggName)
}

// Report summarizes a trial set for printing: per-band trial counts and
// mean active bits, then the overall mean.
func Report(trials []Trial) string {
	if len(trials) == 0 {
		return "no trials\n"
	}
	counts := make([]int, ValenceN)
	onsum := make([]int, ValenceN)
	for ti := range trials {
		tr := &trials[ti]
		counts[tr.Band]++
		onsum[tr.Band] += tr.NOn()
	}
	var sb strings.Builder
	for _, vl := range []Valence{Negative, Positive, Neutral} {
		mean := 0.0
		if counts[vl] > 0 {
			mean = float64(onsum[vl]) / float64(counts[vl])
		}
		fmt.Fprintf(&sb, "%s:\t%d trials\tmean on: %.4g\n", vl, counts[vl], mean)
	}
	ix := etable.NewIdxView(TrialLog(trials))
	fmt.Fprintf(&sb, "Total:\t%d trials\tmean on: %.4g\n", len(trials), agg.Mean(ix, "NOn")[0])
	return sb.String()
}
