package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"wmlkit/pkg/wordml"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func usage() {
	fmt.Fprintln(os.Stderr, "wmlkit - WordprocessingML codec and slicer")
	fmt.Fprintln(os.Stderr, "\nUsage: wmlkit <command> [flags] <file.docx>")
	fmt.Fprintln(os.Stderr, "\nCommands:")
	fmt.Fprintln(os.Stderr, "  text [-config F] <file>              Extract plain text")
	fmt.Fprintln(os.Stderr, "  json [-config F] [-pretty] <file>    Dump the parsed document as JSON")
	fmt.Fprintln(os.Stderr, "  count [-config F] <file>             Count content units in the body")
	fmt.Fprintln(os.Stderr, "  slice [-config F] -n N [-o OUT] <file>")
	fmt.Fprintln(os.Stderr, "                                       Truncate to the first N content units")
	fmt.Fprintln(os.Stderr, "  stream [-config F] [-step K] [-o OUT] <file>")
	fmt.Fprintln(os.Stderr, "                                       Write framed, progressively larger slices")
	fmt.Fprintln(os.Stderr, "  version                              Show version information")
}

func run(args []string) int {
	if len(args) < 1 {
		usage()
		return 1
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "version":
		fmt.Println("wmlkit version " + version)
		return 0
	case "text":
		return cmdText(rest)
	case "json":
		return cmdJSON(rest)
	case "count":
		return cmdCount(rest)
	case "slice":
		return cmdSlice(rest)
	case "stream":
		return cmdStream(rest)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		return 1
	}
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "wmlkit: %v\n", err)
	return 1
}

// setup loads configuration, installs it globally and wires the console
// logger. Every subcommand goes through here.
func setup(configPath string) (*cliConfig, error) {
	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		return nil, err
	}
	wordml.SetGlobalConfig(cfg.Codec)
	wordml.InitConsoleLogger("wmlkit")
	return cfg, nil
}

func readInput(fs *flag.FlagSet) ([]byte, error) {
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one input file, got %d", fs.NArg())
	}
	return os.ReadFile(fs.Arg(0))
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

func cmdText(args []string) int {
	fs := flag.NewFlagSet("text", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML config file")
	fs.Parse(args)
	if _, err := setup(*configPath); err != nil {
		return fail(err)
	}
	pkg, err := readInput(fs)
	if err != nil {
		return fail(err)
	}
	doc, err := wordml.Parse(pkg)
	if err != nil {
		return fail(err)
	}
	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case *wordml.Paragraph:
			fmt.Println(b.Text)
		case *wordml.Table:
			for _, row := range b.Data {
				fmt.Println(strings.Join(row, "\t"))
			}
		}
	}
	return 0
}

func cmdJSON(args []string) int {
	fs := flag.NewFlagSet("json", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML config file")
	pretty := fs.Bool("pretty", false, "indent the output")
	fs.Parse(args)
	cfg, err := setup(*configPath)
	if err != nil {
		return fail(err)
	}
	pkg, err := readInput(fs)
	if err != nil {
		return fail(err)
	}
	doc, err := wordml.Parse(pkg)
	if err != nil {
		return fail(err)
	}
	var out []byte
	if *pretty || cfg.PrettyJSON {
		out, err = wordml.MarshalJSONIndent(doc)
	} else {
		out, err = wordml.MarshalJSON(doc)
	}
	if err != nil {
		return fail(err)
	}
	os.Stdout.Write(out)
	fmt.Println()
	return 0
}

func cmdCount(args []string) int {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML config file")
	fs.Parse(args)
	if _, err := setup(*configPath); err != nil {
		return fail(err)
	}
	pkg, err := readInput(fs)
	if err != nil {
		return fail(err)
	}
	total, err := wordml.CountUnits(pkg)
	if err != nil {
		return fail(err)
	}
	fmt.Println(total)
	return 0
}

func cmdSlice(args []string) int {
	fs := flag.NewFlagSet("slice", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML config file")
	n := fs.Int("n", 0, "number of content units to keep")
	outPath := fs.String("o", "", "output file (default stdout)")
	fs.Parse(args)
	cfg, err := setup(*configPath)
	if err != nil {
		return fail(err)
	}
	units := *n
	if units == 0 {
		units = cfg.SliceUnits
	}
	if units < 1 {
		return fail(fmt.Errorf("slice: -n must be positive, got %d", units))
	}
	pkg, err := readInput(fs)
	if err != nil {
		return fail(err)
	}
	sliced, err := wordml.Slice(pkg, units)
	if err != nil {
		return fail(err)
	}
	out, err := openOutput(*outPath)
	if err != nil {
		return fail(err)
	}
	if _, err := out.Write(sliced); err != nil {
		return fail(err)
	}
	if out != os.Stdout {
		if err := out.Close(); err != nil {
			return fail(err)
		}
	}
	return 0
}

func cmdStream(args []string) int {
	fs := flag.NewFlagSet("stream", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML config file")
	step := fs.Int("step", 0, "units added per frame")
	outPath := fs.String("o", "", "output file (default stdout)")
	fs.Parse(args)
	cfg, err := setup(*configPath)
	if err != nil {
		return fail(err)
	}
	k := *step
	if k == 0 {
		k = cfg.StreamStep
	}
	if k < 1 {
		return fail(fmt.Errorf("stream: -step must be positive, got %d", k))
	}
	pkg, err := readInput(fs)
	if err != nil {
		return fail(err)
	}
	out, err := openOutput(*outPath)
	if err != nil {
		return fail(err)
	}
	if err := wordml.StreamSlices(out, pkg, k); err != nil {
		return fail(err)
	}
	if out != os.Stdout {
		if err := out.Close(); err != nil {
			return fail(err)
		}
	}
	return 0
}
