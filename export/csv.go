package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alexozer/nurbs"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 8, 64)
}

// WriteSamplesCSV writes one "u,x,y,z" row per sample. There is no header
// row so the table loads directly with numpy.loadtxt.
func WriteSamplesCSV(w io.Writer, samples []nurbs.CurvePoint) error {
	cw := csv.NewWriter(w)

	for _, s := range samples {
		row := []string{formatFloat(s.U), formatFloat(s.Pt[0]), formatFloat(s.Pt[1]), formatFloat(s.Pt[2])}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteLawCSV writes one "u,value" row per sample, without a header.
func WriteLawCSV(w io.Writer, samples []nurbs.LawSample) error {
	cw := csv.NewWriter(w)

	for _, s := range samples {
		if err := cw.Write([]string{formatFloat(s.U), formatFloat(s.Value)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// createFile opens path for writing and hands it to write. The file is closed
// and its close error reported.
func createFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	slog.Info("wrote file", "path", path)
	return nil
}

// SaveSamplesCSV is WriteSamplesCSV into a new file at path.
func SaveSamplesCSV(path string, samples []nurbs.CurvePoint) error {
	return createFile(path, func(w io.Writer) error {
		return WriteSamplesCSV(w, samples)
	})
}

// SaveLawCSV is WriteLawCSV into a new file at path.
func SaveLawCSV(path string, samples []nurbs.LawSample) error {
	return createFile(path, func(w io.Writer) error {
		return WriteLawCSV(w, samples)
	})
}
