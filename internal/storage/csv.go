package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/trajsim/internal/ballistics"
)

var csvHeader = []string{"t", "x", "y"}

// WriteTrajectoryCSV writes a t,x,y header and one row per sample.
func WriteTrajectoryCSV(w io.Writer, traj ballistics.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range traj {
		row := []string{
			strconv.FormatFloat(s.T, 'g', -1, 64),
			strconv.FormatFloat(s.X, 'g', -1, 64),
			strconv.FormatFloat(s.Y, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadTrajectoryCSV parses the output of WriteTrajectoryCSV.
func ReadTrajectoryCSV(r io.Reader) (ballistics.Trajectory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("storage: missing csv header")
	}

	traj := make(ballistics.Trajectory, 0, len(records)-1)
	for i, record := range records[1:] {
		var vals [3]float64
		for j := range vals {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("storage: row %d column %s: %w", i+1, csvHeader[j], err)
			}
			vals[j] = v
		}
		traj = append(traj, ballistics.Sample{T: vals[0], X: vals[1], Y: vals[2]})
	}
	return traj, nil
}
