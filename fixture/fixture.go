// Package fixture loads the whitespace-delimited text input format used by
// FMM_Main.py: one row per particle, column 0 the location, columns 1..m the
// m sets of charges.
//
// Grounded on FMM_Main.py's np.loadtxt/column-slicing
// (location = Data[:, 0:1], charges = Data[:, 1:]). No library in the pack
// does whitespace-delimited numeric text parsing (the pack's parsers are
// JSON-specific); stdlib bufio.Scanner + strconv.ParseFloat is the right
// tool here, the same way the teacher's own test-vector readers use it.
package fixture

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bbfmm/fmm1d/internal/ferrors"
	"github.com/bbfmm/fmm1d/internal/matrix"
)

// Load reads path and returns the N point locations and the N×m charge
// matrix. Every row must carry exactly 1+m whitespace-separated fields.
func Load(path string, m int) ([]float64, matrix.Dense[float64], error) {
	if m < 1 {
		return nil, nil, ferrors.New(ferrors.InvalidShape, "fixture.Load")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, ferrors.Wrap(ferrors.EmptyInput, "fixture.Load", err)
	}
	defer f.Close()

	var points []float64
	var rows [][]float64

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != m+1 {
			return nil, nil, ferrors.Wrap(ferrors.InvalidShape, "fixture.Load",
				fmt.Errorf("line %d: expected %d fields, got %d", lineNo, m+1, len(fields)))
		}

		vals := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, nil, ferrors.Wrap(ferrors.NonFiniteInput, "fixture.Load", err)
			}
			vals[i] = v
		}

		points = append(points, vals[0])
		rows = append(rows, vals[1:])
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return nil, nil, ferrors.Wrap(ferrors.InvalidShape, "fixture.Load", err)
	}
	if len(points) == 0 {
		return nil, nil, ferrors.New(ferrors.EmptyInput, "fixture.Load")
	}

	charges := matrix.New[float64](len(rows), m)
	for i, row := range rows {
		copy(charges[i], row)
	}

	return points, charges, nil
}
