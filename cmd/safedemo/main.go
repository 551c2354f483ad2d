// Command safedemo samples SAFE parameter sets and runs the exponential
// low-pass filter on text signals.
//
// Usage:
//
//	safedemo params [-seed N]
//	safedemo filter -tau T -dt D [file]
//	safedemo response -tau T -dt D [-n N]
//
// Examples:
//
//	safedemo params -seed 42
//	safedemo filter -tau 0.01 -dt 0.0001 signal.txt
//	printf '1 1 1 1' | safedemo filter -tau 0.001 -dt 0.001
//	safedemo response -tau 0.002 -dt 0.0001 -n 64
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "params":
		err = runParams(os.Args[2:], os.Stdout)
	case "filter":
		err = runFilter(os.Args[2:], os.Stdin, os.Stdout)
	case "response":
		err = runResponse(os.Args[2:], os.Stdout)
	case "-h", "-help", "--help", "help":
		usage(os.Stdout)
		return
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n\n", os.Args[1])
		usage(os.Stderr)
		os.Exit(2)
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Usage: safedemo <command> [flags]\n\n")
	fmt.Fprintf(bw, "Commands:\n")
	fmt.Fprintf(bw, "  params    sample SAFE and SAFE-cardiac parameter sets\n")
	fmt.Fprintf(bw, "  filter    apply the exponential low-pass filter to a signal\n")
	fmt.Fprintf(bw, "  response  print the filter's magnitude response\n\n")
	fmt.Fprintf(bw, "Run 'safedemo <command> -h' for command flags.\n")
	_ = bw.Flush()
}
