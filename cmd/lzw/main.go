// Command lzw compresses or expands a byte stream with adaptive-width LZW.
//
//	lzw [-v] [-i in] [-o out] - <r|m|n>   compress
//	lzw [-v] [-i in] [-o out] +           expand
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/lzw"
)

var (
	dashv bool
	dashh bool
	dashi string
	dasho string
)

// errUsage marks an invalid command line.
var errUsage = errors.New("usage")

func init() {
	flag.BoolVar(&dashv, "v", false, "verbose")
	flag.BoolVar(&dashh, "h", false, "show usage help")
	flag.StringVar(&dashi, "i", "-", "input file (or - for stdin)")
	flag.StringVar(&dasho, "o", "-", "output file (or - for stdout)")
}

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f, args...)
	os.Exit(1)
}

func logf(f string, args ...interface{}) {
	if f[len(f)-1] != '\n' {
		f += "\n"
	}
	fmt.Fprintf(os.Stderr, f, args...)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "    %s [-v] [-i <input>] [-o <output>] - <r|m|n>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        compress; r resets a full codebook, m resets it when the ratio degrades, n never resets\n")
	fmt.Fprintf(os.Stderr, "    %s [-v] [-i <input>] [-o <output>] +\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        expand\n")
	fmt.Fprintf(os.Stderr, "flag usage:\n")
	flag.PrintDefaults()
}

// run executes one command, reading all of in before producing any output.
func run(args []string, in io.Reader, out io.Writer) (lzw.Stats, error) {
	if len(args) == 0 {
		return lzw.Stats{}, fmt.Errorf("%w: missing command", errUsage)
	}

	switch args[0] {
	case "-", "compress":
		if len(args) != 2 {
			return lzw.Stats{}, fmt.Errorf("%w: compress takes one mode argument", errUsage)
		}
		mode, err := lzw.ParseMode(args[1])
		if err != nil {
			return lzw.Stats{}, err
		}
		src, err := io.ReadAll(in)
		if err != nil {
			return lzw.Stats{}, fmt.Errorf("reading input: %w", err)
		}
		return lzw.CompressToWriter(out, src, &lzw.CompressOptions{Mode: mode})
	case "+", "expand":
		if len(args) != 1 {
			return lzw.Stats{}, fmt.Errorf("%w: expand takes no arguments", errUsage)
		}
		src, err := io.ReadAll(in)
		if err != nil {
			return lzw.Stats{}, fmt.Errorf("reading input: %w", err)
		}
		// decode fully before writing so that a corrupt stream produces no output
		var buf bytes.Buffer
		st, err := lzw.DecompressFromReader(bytes.NewReader(src), &buf)
		if err != nil {
			return st, err
		}
		if _, err := buf.WriteTo(out); err != nil {
			return st, err
		}
		return st, nil
	}

	return lzw.Stats{}, fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 || dashh {
		usage()
		os.Exit(1)
	}

	in := os.Stdin
	if dashi != "-" {
		f, err := os.Open(dashi)
		if err != nil {
			exitf("can't open %q: %s\n", dashi, err)
		}
		defer f.Close()
		in = f
	}
	out := os.Stdout
	if dasho != "-" {
		f, err := os.Create(dasho)
		if err != nil {
			exitf("can't create %q: %s\n", dasho, err)
		}
		out = f
	}

	st, err := run(args, in, out)
	if err != nil {
		if errors.Is(err, errUsage) {
			usage()
		}
		exitf("%s: %s\n", args[0], err)
	}
	if out != os.Stdout {
		if err := out.Close(); err != nil {
			exitf("closing output: %s\n", err)
		}
	}
	if dashv {
		logf("mode %s: %d bytes, %d codewords, %d bits, ratio %.3f, width %d (peak %d), %d resets",
			st.Mode, st.RawBytes, st.Codes, st.PackedBits, st.Ratio(), st.Width, st.PeakWidth, st.Resets)
	}
}
