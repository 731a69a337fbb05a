// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trialgen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// row markers in the tab-separated trial files
const (
	// DataMark starts each trial data row.
	DataMark = "_D:"

	// HeaderMark starts table header rows, which ReadTrials skips.
	HeaderMark = "_H:"
)

// NFields returns the number of tab-separated fields in a trial row with
// nfeats features: the marker and name, the valence block before and after,
// and the feature block presented to both the input and output sides.
func NFields(nfeats int) int {
	return 2 + 2*NValence + 2*nfeats
}

// WriteTrial writes one trial as a single tab-separated row: the _D: marker,
// the evt_<n> name, the six valence values, the feature bits for the input
// side, the same bits again for the output side, and the valence values
// again.  No trailing tab, newline terminated.
func WriteTrial(w io.Writer, tr *Trial) error {
	flds := make([]string, 0, NFields(len(tr.Feats)))
	flds = append(flds, DataMark, tr.Name)
	for _, vl := range tr.Vals {
		flds = append(flds, strconv.Itoa(vl))
	}
	fb := make([]string, len(tr.Feats))
	for i, ft := range tr.Feats {
		if ft {
			fb[i] = "1"
		} else {
			fb[i] = "0"
		}
	}
	flds = append(flds, fb...)
	flds = append(flds, fb...)
	for _, vl := range tr.Vals {
		flds = append(flds, strconv.Itoa(vl))
	}
	_, err := io.WriteString(w, strings.Join(flds, "\t")+"\n")
	return err
}

// WriteTrials writes all trials, one row each, through a buffered writer.
func WriteTrials(w io.Writer, trials []Trial) error {
	bw := bufio.NewWriter(w)
	for ti := range trials {
		if err := WriteTrial(bw, &trials[ti]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveDat writes all trials to the given file, truncating any existing
// contents.
func SaveDat(fnm string, trials []Trial) error {
	fp, err := os.Create(fnm)
	if err != nil {
		return err
	}
	defer fp.Close()
	return WriteTrials(fp, trials)
}

// ReadTrials reads trial rows as written by WriteTrials.  Empty lines and
// rows with other markers (e.g. _H: headers) are skipped.  The trailing
// feature and valence blocks must match their leading copies, and the Band
// is classified from the valence row.
func ReadTrials(r io.Reader) ([]Trial, error) {
	var trials []Trial
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		txt := sc.Text()
		if txt == "" {
			continue
		}
		flds := strings.Split(txt, "\t")
		if flds[0] != DataMark {
			continue
		}
		tr, err := parseTrial(flds)
		if err != nil {
			return nil, fmt.Errorf("trialgen: line %d: %v", ln, err)
		}
		trials = append(trials, tr)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return trials, nil
}

// OpenDat reads trials from the given file.
func OpenDat(fnm string) ([]Trial, error) {
	fp, err := os.Open(fnm)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadTrials(fp)
}

// parseTrial parses the fields of one _D: row.
func parseTrial(flds []string) (Trial, error) {
	var tr Trial
	nft := len(flds) - 2 - 2*NValence
	if nft < 2 || nft%2 != 0 {
		return tr, fmt.Errorf("row has %d fields -- need marker, name, %d valence fields twice, and an even number of feature fields", len(flds), NValence)
	}
	nft /= 2
	tr.Name = flds[1]
	fi := 2
	for i := 0; i < NValence; i++ {
		vl, err := strconv.Atoi(flds[fi+i])
		if err != nil {
			return tr, fmt.Errorf("valence field %d: %v", i, err)
		}
		tr.Vals[i] = vl
	}
	fi += NValence
	tr.Feats = make([]bool, nft)
	for i := 0; i < nft; i++ {
		ft, err := parseBit(flds[fi+i])
		if err != nil {
			return tr, fmt.Errorf("input feature %d: %v", i, err)
		}
		tr.Feats[i] = ft
	}
	fi += nft
	for i := 0; i < nft; i++ {
		ft, err := parseBit(flds[fi+i])
		if err != nil {
			return tr, fmt.Errorf("output feature %d: %v", i, err)
		}
		if ft != tr.Feats[i] {
			return tr, fmt.Errorf("output feature %d does not match input copy", i)
		}
	}
	fi += nft
	for i := 0; i < NValence; i++ {
		vl, err := strconv.Atoi(flds[fi+i])
		if err != nil {
			return tr, fmt.Errorf("trailing valence field %d: %v", i, err)
		}
		if vl != tr.Vals[i] {
			return tr, fmt.Errorf("trailing valence field %d does not match leading copy", i)
		}
	}
	band, err := bandOf(tr.Vals)
	if err != nil {
		return tr, err
	}
	tr.Band = band
	return tr, nil
}

func parseBit(fld string) (bool, error) {
	switch fld {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("feature field must be 0 or 1, is: %q", fld)
}

// bandOf classifies a valence row: all zeros is Neutral, and a single
// nonzero value in the first Ne or first Po slot is Negative or Positive.
func bandOf(vals [NValence]int) (Valence, error) {
	nz := -1
	for i, vl := range vals {
		if vl == 0 {
			continue
		}
		if nz >= 0 {
			return Neutral, fmt.Errorf("valence row has multiple active slots: %v", vals)
		}
		nz = i
	}
	switch nz {
	case -1:
		return Neutral, nil
	case negSlot:
		return Negative, nil
	case posSlot:
		return Positive, nil
	}
	return Neutral, fmt.Errorf("valence row has unrecognized active slot %d: %v", nz, vals)
}
