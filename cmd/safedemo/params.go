package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-safe/safe"
)

func runParams(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("params", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	seedFlag := fs.String("seed", "", "non-negative integer seed (empty: non-reproducible)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts []safe.Option
	if *seedFlag != "" {
		seed, err := safe.ParseSeed(*seedFlag)
		if err != nil {
			return err
		}
		opts = append(opts, safe.WithSeed(seed))
	}

	general, cardiac, err := safe.Sample(opts...)
	if err != nil {
		return err
	}

	return printSets(stdout, general, cardiac)
}

func printSets(w io.Writer, general, cardiac safe.Set) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Model\tKey\tCh 0\tCh 1\tCh 2\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t---\t----\t----\t----\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, set := range []struct {
		name string
		m    map[string][]float64
	}{
		{"safe", general.Map()},
		{"safe_cardiac", cardiac.Map()},
	} {
		for _, k := range safe.Keys {
			v := set.m[k]
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%.6g\t%.6g\t%.6g\n", set.name, k, v[0], v[1], v[2]); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
