// Command lzutf8 compresses, decompresses and inspects LZUTF8 streams.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/woozymasta/lzutf8"
	"github.com/woozymasta/lzutf8/internal/explain"
	"github.com/woozymasta/lzutf8/internal/report"
)

var errUsage = errors.New("usage error")

// cliCommand is one subcommand.
type cliCommand struct {
	run      func(c *cli, args []string) error
	argsDesc string
	desc     string
}

// cli carries the process streams so commands can be run from tests.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
}

var commands = map[string]cliCommand{
	"compress":   {runCompress, "[-o output] [input]", "compress UTF-8 text"},
	"decompress": {runDecompress, "[-o output] [-max-output n] [input]", "decompress a stream (plain text passes through)"},
	"explain":    {runExplain, "[input]", "print the stream token by token"},
	"stats":      {runStats, "[-svg file] [-distance-svg file] [input]", "report compression statistics for UTF-8 text"},
}

func main() {
	c := &cli{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := c.main(os.Args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func (c *cli) main(args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(c.stderr, "error: expected a command")
		c.printUsage()
		return errUsage
	}

	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		c.printUsage()
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(c.stderr, "error: unknown command %q\n", args[0])
		c.printUsage()
		return errUsage
	}

	return cmd.run(c, args[1:])
}

func (c *cli) printUsage() {
	fmt.Fprintln(c.stderr, "Usage: lzutf8 <command> [arguments]")
	fmt.Fprintln(c.stderr, "Commands available:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(c.stderr, "    %-10s %-40s %s\n", name, cmd.argsDesc, cmd.desc)
	}
}

// newFlagSet returns a flag set with the shared -v flag bound to c's logger.
func (c *cli) newFlagSet(name string) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	verbose := fs.Bool("v", false, "verbose output")
	return fs, verbose
}

// parse parses args and sets up logging. It returns the positional arguments.
func (c *cli) parse(fs *flag.FlagSet, verbose *bool, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	c.log = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))

	if fs.NArg() > 1 {
		fmt.Fprintf(c.stderr, "'%s' command: expected at most one input argument\n", fs.Name())
		return nil, errUsage
	}

	return fs.Args(), nil
}

// readInput reads the named file, or stdin when no name is given or the name is "-".
func (c *cli) readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(c.stdin)
	}

	return os.ReadFile(args[0])
}

// writeOutput writes data to path, or stdout when path is empty or "-".
func (c *cli) writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := c.stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func runCompress(c *cli, args []string) error {
	fs, verbose := c.newFlagSet("compress")
	output := fs.String("o", "", "output file (default stdout)")

	files, err := c.parse(fs, verbose, args)
	if err != nil {
		return err
	}

	src, err := c.readInput(files)
	if err != nil {
		return err
	}

	out := lzutf8.Compress(src)
	c.log.Debug("compressed", "in", len(src), "out", len(out))

	return c.writeOutput(*output, out)
}

func runDecompress(c *cli, args []string) error {
	fs, verbose := c.newFlagSet("decompress")
	output := fs.String("o", "", "output file (default stdout)")
	maxOutput := fs.Int("max-output", 0, "fail if output would exceed this many bytes (0 = no limit)")

	files, err := c.parse(fs, verbose, args)
	if err != nil {
		return err
	}

	src, err := c.readInput(files)
	if err != nil {
		return err
	}

	out, err := lzutf8.Decompress(src, &lzutf8.DecompressOptions{MaxOutputSize: *maxOutput})
	if err != nil {
		return err
	}
	c.log.Debug("decompressed", "in", len(src), "out", len(out))

	return c.writeOutput(*output, out)
}

func runExplain(c *cli, args []string) error {
	fs, verbose := c.newFlagSet("explain")

	files, err := c.parse(fs, verbose, args)
	if err != nil {
		return err
	}

	src, err := c.readInput(files)
	if err != nil {
		return err
	}

	return explain.Dump(c.stdout, src)
}

func runStats(c *cli, args []string) error {
	fs, verbose := c.newFlagSet("stats")
	svgPath := fs.String("svg", "", "write a pointer length histogram to this SVG file")
	distSVGPath := fs.String("distance-svg", "", "write a pointer distance histogram to this SVG file")

	files, err := c.parse(fs, verbose, args)
	if err != nil {
		return err
	}

	src, err := c.readInput(files)
	if err != nil {
		return err
	}

	s, err := report.Analyze(src)
	if err != nil {
		return err
	}

	if err := s.WriteText(c.stdout); err != nil {
		return err
	}

	if *svgPath == "" && *distSVGPath == "" {
		return nil
	}

	if s.Pointers() == 0 {
		c.log.Warn("no pointers, histograms not written")
		return nil
	}

	if err := writeChart(*svgPath, s.RenderSVG); err != nil {
		return err
	}

	if err := writeChart(*distSVGPath, s.RenderDistanceSVG); err != nil {
		return err
	}

	c.log.Debug("histograms written", "length", *svgPath, "distance", *distSVGPath)
	return nil
}

// writeChart renders into the file at path. An empty path is skipped; a failed
// render removes the partial file.
func writeChart(path string, render func(io.Writer) error) error {
	if path == "" {
		return nil
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := render(fh); err != nil {
		_ = fh.Close()
		_ = os.Remove(path)
		return err
	}

	return fh.Close()
}
