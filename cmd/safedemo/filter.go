package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/cwbudde/algo-safe/dsp/core"
	"github.com/cwbudde/algo-safe/dsp/filter/onepole"
)

func runFilter(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("filter", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	tau := fs.Float64("tau", math.NaN(), "time constant in seconds")
	dt := fs.Float64("dt", math.NaN(), "sample interval in seconds")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if math.IsNaN(*tau) || math.IsNaN(*dt) {
		return errors.New("filter: -tau and -dt are required")
	}

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	x, err := readSamples(in)
	if err != nil {
		return err
	}

	if !core.AllFinite(x) {
		return errors.New("filter: input contains NaN or Inf")
	}

	y, err := onepole.Filter(x, *tau, *dt)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(stdout)
	for _, v := range y {
		if _, err := fmt.Fprintln(bw, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return fmt.Errorf("write sample: %w", err)
		}
	}
	return bw.Flush()
}

// readSamples parses whitespace-separated floating point samples.
func readSamples(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	var out []float64
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}
	return out, nil
}
