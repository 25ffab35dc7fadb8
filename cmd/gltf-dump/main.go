// The gltf-dump command writes a readable representation of a GLB file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vrmkit/gltf/glb"
)

const usage = `usage: gltf-dump [-strict] [INPUT] [OUTPUT]

Reads a GLB file from INPUT, and writes to OUTPUT a readable representation of
its header and chunks. The JSON chunk is written indented, and other chunks are
written as a hex dump.

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then stdin
is used. If OUTPUT is "-" or unspecified, then stdout is used. Warnings and
errors are written to stderr.
`

func main() {
	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout

	strict := flag.Bool("strict", false, "fail on warnings")
	flag.Usage = func() { fmt.Fprintf(flag.CommandLine.Output(), usage) }
	flag.Parse()
	args := flag.Args()
	if len(args) >= 1 && args[0] != "-" {
		in, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("open input: %w", err))
			return
		}
		input = in
		defer in.Close()
	}
	if len(args) >= 2 && args[1] != "-" {
		out, err := os.Create(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("create output: %w", err))
			return
		}
		defer out.Close()
		defer func() {
			err := out.Sync()
			if err != nil {
				fmt.Fprintln(os.Stderr, fmt.Errorf("sync output: %w", err))
				return
			}
		}()
		output = out
	}

	warn, err := glb.Decoder{Strict: *strict}.Dump(output, input)
	if warn != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("warning: %w", warn))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("error: %w", err))
	}
}
