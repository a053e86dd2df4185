package main

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// impedanceRecord is one exported (profile, frequency) row.
type impedanceRecord struct {
	Profile             string  `parquet:"profile"`
	Site                string  `parquet:"site"`
	Layer               int32   `parquet:"layer"`
	LayerName           string  `parquet:"layer_name"`
	Frequency           float64 `parquet:"frequency"`
	ZReal               float64 `parquet:"z_real"`
	ZImag               float64 `parquet:"z_imag"`
	Magnitude           float64 `parquet:"magnitude"`
	ApparentResistivity float64 `parquet:"apparent_resistivity"`
	Phase               float64 `parquet:"phase"`
}

func records(reports []report) ([]impedanceRecord, error) {
	var out []impedanceRecord
	for _, r := range reports {
		layer, err := r.site.Layer(r.result.Layer)
		if err != nil {
			return nil, err
		}
		z := r.result.Z()
		mag := r.result.Magnitude()
		rho := r.result.ApparentResistivity()
		phase := r.result.Phase()
		for j, f := range r.result.Freqs {
			out = append(out, impedanceRecord{
				Profile:             r.code,
				Site:                r.site.Name(),
				Layer:               int32(r.result.Layer),
				LayerName:           layer.Name(),
				Frequency:           f,
				ZReal:               real(z[j]),
				ZImag:               imag(z[j]),
				Magnitude:           mag[j],
				ApparentResistivity: rho[j],
				Phase:               phase[j],
			})
		}
	}
	return out, nil
}

func writeParquet(w io.Writer, rows []impedanceRecord) error {
	pw := parquet.NewGenericWriter[impedanceRecord](w)
	if _, err := pw.Write(rows); err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}

func exportParquetFile(path string, reports []report) (err error) {
	rows, err := records(reports)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return writeParquet(f, rows)
}
