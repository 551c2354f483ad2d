package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-safe/dsp/filter/onepole"
)

func runResponse(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("response", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	tau := fs.Float64("tau", math.NaN(), "time constant in seconds")
	dt := fs.Float64("dt", math.NaN(), "sample interval in seconds")
	n := fs.Int("n", 64, "FFT size (power of two)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if math.IsNaN(*tau) || math.IsNaN(*dt) {
		return errors.New("response: -tau and -dt are required")
	}

	mag, err := onepole.Response(*tau, *dt, *n)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	if fc, err := onepole.CutoffHz(*tau); err == nil {
		if _, err := fmt.Fprintf(tw, "# cutoff %.4g Hz\n", fc); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tMagnitude\tGain [dB]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for k, m := range mag {
		db := math.Inf(-1)
		if m > 0 {
			db = 20 * math.Log10(m)
		}
		if _, err := fmt.Fprintf(tw, "%.4g\t%.6f\t%.2f\n", onepole.BinFrequency(k, *n, *dt), m, db); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
