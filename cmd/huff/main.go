// Command huff compresses and decompresses files with static Huffman coding.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"github.com/chronos-tachyon/huffpack"
	"github.com/chronos-tachyon/huffpack/internal/logsetup"
)

const (
	progName = "huff"
	suffix   = ".huff"
)

const usageMessage = `usage: huff [-d] [-j N] compress [-o OUT] FILE...
       huff [-d] [-j N] decompress [-o OUT] FILE...
       huff [-d] codes FILE

  -d, -debug   enable debug logging
  -j N         process up to N files at once (default 4)
  -o OUT       output path (only with a single FILE)

compress writes FILE.huff; decompress strips .huff (or appends .out).
codes prints the code assigned to every byte value that occurs in FILE.
`

var log = logging.MustGetLogger("huff")

type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...interface{}) error {
	return usageError{fmt.Sprintf(format, args...)}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	leveled := logsetup.Start(stderr, progName)

	flags := flag.NewFlagSet(progName, flag.ContinueOnError)
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)

	var debugLogging bool
	var jobs int
	flags.BoolVar(&debugLogging, "debug", false, "")
	flags.BoolVar(&debugLogging, "d", false, "")
	flags.IntVar(&jobs, "j", 4, "")

	err := flags.Parse(args)
	if err == flag.ErrHelp {
		io.WriteString(stdout, usageMessage)
		return 0
	}
	if err != nil {
		err = usageErrorf("%v", err)
	}
	if err == nil && jobs < 1 {
		err = usageErrorf("-j must be at least 1, got %d", jobs)
	}
	if err == nil && flags.NArg() == 0 {
		err = usageErrorf("missing command")
	}

	if err == nil {
		if debugLogging {
			leveled.SetLevel(logging.DEBUG, "")
		}
		err = dispatch(flags.Arg(0), flags.Args()[1:], jobs, stdout)
	}

	var ue usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ue):
		fmt.Fprintf(stderr, "%s: %s\n%s", progName, ue.msg, usageMessage)
		return 2
	default:
		log.Errorf("%v", err)
		return 1
	}
}

func dispatch(command string, args []string, jobs int, stdout io.Writer) error {
	switch command {
	case "compress":
		return runFiles(args, jobs, compressFile)
	case "decompress":
		return runFiles(args, jobs, decompressFile)
	case "codes":
		if len(args) != 1 {
			return usageErrorf("codes takes exactly one FILE")
		}
		return printCodes(args[0], stdout)
	default:
		return usageErrorf("unknown command %q", command)
	}
}

type fileFunc func(inPath, outPath string) error

func runFiles(args []string, jobs int, fn fileFunc) error {
	flags := flag.NewFlagSet(progName, flag.ContinueOnError)
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)

	var outPath string
	flags.StringVar(&outPath, "o", "", "")
	if err := flags.Parse(args); err != nil {
		return usageErrorf("%v", err)
	}

	files := flags.Args()
	if len(files) == 0 {
		return usageErrorf("missing FILE")
	}
	if outPath != "" && len(files) != 1 {
		return usageErrorf("-o requires exactly one FILE, got %d", len(files))
	}

	// Each file is an independent compress or decompress call, so they can
	// run side by side.
	var g errgroup.Group
	g.SetLimit(jobs)
	for _, inPath := range files {
		inPath := inPath
		g.Go(func() error {
			return fn(inPath, outPath)
		})
	}
	return g.Wait()
}

func compressFile(inPath, outPath string) error {
	if outPath == "" {
		outPath = inPath + suffix
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	artifact, err := huffpack.Compress(data)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	if err := writeFileAtomic(outPath, artifact); err != nil {
		return err
	}
	log.Infof("%s: %d -> %d bytes (%s)", inPath, len(data), len(artifact), ratio(len(artifact), len(data)))
	return nil
}

func decompressFile(inPath, outPath string) error {
	if outPath == "" {
		if strings.HasSuffix(inPath, suffix) && len(inPath) > len(suffix) {
			outPath = strings.TrimSuffix(inPath, suffix)
		} else {
			outPath = inPath + ".out"
		}
	}

	artifact, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	data, err := huffpack.Decompress(artifact)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	if err := writeFileAtomic(outPath, data); err != nil {
		return err
	}
	log.Infof("%s: %d -> %d bytes", inPath, len(artifact), len(data))
	return nil
}

func printCodes(inPath string, w io.Writer) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	table, cb, err := huffpack.Analyze(data)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	fmt.Fprintf(w, "%-6s %-6s %10s  %s\n", "symbol", "char", "count", "code")
	for _, symbol := range table.Symbols() {
		hc, _ := cb.Lookup(symbol)
		bits := strings.Trim(hc.String(), `"`)
		fmt.Fprintf(w, "%-6d %-6s %10d  %s\n", symbol, printable(byte(symbol)), table[symbol], bits)
	}
	fmt.Fprintf(w, "%d symbols, %d bytes, %d payload bits\n", cb.Len(), table.Total(), cb.EncodedBits(table))
	return nil
}

func printable(b byte) string {
	if b >= 0x21 && b < 0x7f {
		return string(rune(b))
	}
	q := strconv.QuoteRune(rune(b))
	return q[1 : len(q)-1]
}

func ratio(out, in int) string {
	return strconv.FormatFloat(100*float64(out)/float64(in), 'f', 1, 64) + "%"
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// into place, so a failed run never leaves a partial output behind.
func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpPath := f.Name()

	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpPath, path)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
