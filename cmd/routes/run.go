package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/theoremus-urban-solutions/routes"
	"github.com/theoremus-urban-solutions/routes/config"
	"github.com/theoremus-urban-solutions/routes/formatter"
	"github.com/theoremus-urban-solutions/routes/gtfsrt"
	"github.com/theoremus-urban-solutions/routes/internal"
	"github.com/theoremus-urban-solutions/routes/metrics"
	"github.com/theoremus-urban-solutions/routes/store"
)

const version = "routes 0.1.0"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usage = `usage: routes [--version] <command> [flags]

commands:
  add      Add a new route
  display  Display all routes
  select   Select routes departing after a given time
  import   Append departures from a GTFS-Realtime TripUpdates feed

Run "routes <command> -h" for the flags of a command.
`

// errUsage marks errors caused by bad command line arguments.
var errUsage = errors.New("usage")

// request is one parsed invocation.
type request struct {
	common
	command     string
	destination string
	number      numberFlag
	time        string
	format      string
	pdf         string
	pdfFont     string
	feed        string
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}
	switch args[0] {
	case "--version", "-version":
		fmt.Fprintln(stdout, version)
		return exitOK
	case "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	}

	req, err := parse(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		// the flag package has already reported its own parse errors
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "routes: %v\n", err)
		}
		return exitUsage
	}

	internal.InitLogging(stderr, req.verbose)
	if err := execute(req, stdout); err != nil {
		fmt.Fprintf(stderr, "routes: %v\n", err)
		return exitError
	}
	return exitOK
}

func parse(args []string, stderr io.Writer) (*request, error) {
	req := &request{command: args[0]}
	fs := flag.NewFlagSet("routes "+req.command, flag.ContinueOnError)
	fs.SetOutput(stderr)
	req.common.register(fs)

	var required []string
	switch req.command {
	case "add":
		stringFlag(fs, &req.destination, "d", "destination", "", "The route's destination")
		fs.Var(&req.number, "n", "The route's number")
		fs.Var(&req.number, "number", "The route's number")
		stringFlag(fs, &req.time, "t", "time", "", "Departure time (HH:MM)")
		required = []string{"destination", "time"}
	case "display":
		fs.StringVar(&req.format, "format", "", "Output format: table|json")
		fs.StringVar(&req.pdf, "pdf", "", "Also write the timetable to this PDF file")
		fs.StringVar(&req.pdfFont, "pdf-font", "", "TrueType font for non-Latin text in the PDF")
	case "select":
		stringFlag(fs, &req.time, "t", "time", "", "The reference time (HH:MM)")
		fs.StringVar(&req.format, "format", "", "Output format: table|json")
		required = []string{"time"}
	case "import":
		fs.StringVar(&req.feed, "feed", "", "GTFS-RT TripUpdates URL or file")
		required = []string{"feed"}
	default:
		return nil, fmt.Errorf("%w: unknown command %q", errUsage, req.command)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}
	values := map[string]string{"destination": req.destination, "time": req.time, "feed": req.feed}
	for _, name := range required {
		if values[name] == "" {
			return nil, fmt.Errorf("%w: the --%s flag is required", errUsage, name)
		}
	}
	if req.format != "" && req.format != "table" && req.format != "json" {
		return nil, fmt.Errorf("%w: unknown format %q", errUsage, req.format)
	}
	return req, nil
}

func execute(req *request, stdout io.Writer) error {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return err
	}
	path, err := config.ResolveDataPath(req.data, cfg)
	if err != nil {
		return err
	}

	loaded, err := store.LoadOrEmpty(path)
	if err != nil {
		return err
	}
	collection := routes.Collection(loaded)
	log.Printf("loaded %d routes from %s", len(collection), path)

	format := req.format
	if format == "" {
		format = cfg.Display.Format
	}

	dirty := false
	switch req.command {
	case "add":
		collection, dirty, err = routes.Append(collection, req.destination, req.number.n, req.time)
		if err != nil {
			return err
		}
	case "display":
		if err := render(stdout, format, collection); err != nil {
			return err
		}
		if req.pdf != "" {
			if err := writePDF(req.pdf, path, collection, formatter.PDFOptions{FontFile: req.pdfFont}); err != nil {
				return err
			}
		}
	case "select":
		selected, err := routes.Select(collection, req.time)
		if err != nil {
			return err
		}
		if err := render(stdout, format, selected); err != nil {
			return err
		}
	case "import":
		b, err := gtfsrt.NewClient().Fetch(req.feed)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		candidates, err := gtfsrt.Decode(b, time.Local)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		var n int
		collection, n, err = routes.Import(collection, candidates)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		dirty = n > 0
		fmt.Fprintf(stdout, "Imported routes: %d\n", n)
	}

	if dirty {
		if err := store.Save(path, collection); err != nil {
			return err
		}
		log.Printf("saved %d routes to %s", len(collection), path)
	}

	textfile := req.metrics
	if textfile == "" {
		textfile = cfg.Metrics.Textfile
	}
	if textfile != "" {
		if err := metrics.WriteTextfile(textfile, path, collection); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}
	return nil
}

func render(w io.Writer, format string, rs routes.Collection) error {
	if format == "json" {
		return formatter.RenderJSON(w, rs)
	}
	return formatter.RenderTable(w, rs)
}

func writePDF(out, source string, rs routes.Collection, opts formatter.PDFOptions) error {
	var buf bytes.Buffer
	if err := formatter.RenderPDF(&buf, formatter.Title(filepath.Base(source)), rs, opts); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}
