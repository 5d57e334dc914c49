// internal/barcode/loader.go
package barcode

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shenwei356/xopen"
)

// LoadCSV reads a comma-separated matrix
//
//	<index>,<mut1>,<mut2>,...
//	<lineage>,<v11>,<v12>,...
//
// path may be gzip/bzip2/xz compressed, or "-" for STDIN.
func LoadCSV(path string) (*IndicatorMatrix, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, &ParseError{Path: path, Msg: "cannot open input", Err: err}
	}
	defer fh.Close()
	return ReadCSV(fh, path)
}

// ReadCSV parses a matrix from r; name is only used in errors.
func ReadCSV(r io.Reader, name string) (*IndicatorMatrix, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Path: name, Msg: "empty input: missing header row"}
	}
	if err != nil {
		return nil, csvError(name, err)
	}
	if len(header) < 2 {
		return nil, &ParseError{Path: name, Line: 1, Msg: "header has no mutation columns"}
	}
	mutations := make([]string, 0, len(header)-1)
	for _, h := range header[1:] {
		label := strings.TrimSpace(h)
		if label == "" {
			return nil, &ParseError{Path: name, Line: 1, Msg: "empty mutation label in header"}
		}
		mutations = append(mutations, label)
	}

	var (
		lineages []string
		values   [][]float64
		lines    []int
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(name, err)
		}
		ln, _ := cr.FieldPos(0)

		lineage := strings.TrimSpace(rec[0])
		if lineage == "" {
			return nil, &ParseError{Path: name, Line: ln, Msg: "empty lineage identifier"}
		}

		row := make([]float64, len(mutations))
		for i, cell := range rec[1:] {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ParseError{
					Path: name, Line: ln,
					Msg: "non-numeric indicator " + strconv.Quote(cell) + " for " + strconv.Quote(mutations[i]),
				}
			}
			row[i] = v
		}
		lineages = append(lineages, lineage)
		values = append(values, row)
		lines = append(lines, ln)
	}

	m, err := NewIndicatorMatrix(lineages, mutations, values)
	if err != nil {
		line := 1
		var de *DuplicateLabelError
		if errors.As(err, &de) && de.Lineage {
			line = lines[de.Index]
		}
		return nil, &ParseError{Path: name, Line: line, Msg: "invalid matrix", Err: err}
	}
	return m, nil
}

func csvError(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Path: name, Line: pe.Line, Msg: "malformed CSV", Err: pe.Err}
	}
	return &ParseError{Path: name, Msg: "read failed", Err: err}
}
