package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-geomag/earth"
	"github.com/cwbudde/algo-geomag/impedance"
)

type report struct {
	code   string
	site   *earth.Site
	result *impedance.Result
}

func printList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, code := range earth.ProfileCodes() {
		site := earth.MustProfile(code)
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d layers\t%s\n", code, site.Name(), site.Len(), site.Description()); err != nil {
			return fmt.Errorf("write profile list: %w", err)
		}
	}
	return tw.Flush()
}

func printReports(w io.Writer, reports []report) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
		if err := printReport(w, r); err != nil {
			return err
		}
	}
	return nil
}

func printReport(w io.Writer, r report) error {
	layer, err := r.site.Layer(r.result.Layer)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s  %s  (layer %d: %s)\n", r.code, r.site.Name(), r.result.Layer, layer.Name()); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tRe Z\tIm Z\t|Z| [mV/km/nT]\tRho_a [Ohm·m]\tPhase [deg]\t\n"); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}

	z := r.result.Z()
	mag := r.result.Magnitude()
	rho := r.result.ApparentResistivity()
	phase := r.result.Phase()
	for j, f := range r.result.Freqs {
		if _, err := fmt.Fprintf(tw, "%.4g\t%.6f\t%.6f\t%.6f\t%.4f\t%.2f\t\n",
			f, real(z[j]), imag(z[j]), mag[j], rho[j], phase[j]); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
