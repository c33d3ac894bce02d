package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bjaus/docprinter"
	"github.com/bjaus/docprinter/internal/config"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

const version = "0.1.0"

var (
	sha1ver   string // sha1 revision used to build the program
	buildTime string // when the executable was built
)

var (
	errTerminalInput = errors.New("refusing to read a document from a terminal")
	errNotIdempotent = errors.New("rendering is not idempotent")
)

func init() {
	log.SetLevel(log.InfoLevel)
}

func main() {
	var (
		printVersion   bool
		envFilePath    string
		configFilePath string
		maxLineWidth   int
		layout         string
		opts           runOptions
	)

	// If we should just print the version number and exit
	flag.BoolVar(&printVersion, "version", false, "if true, print version and exit")

	// Allow configuration of envfile path
	// If not set, ParseConfig will not try to load variables to environment from a file
	flag.StringVar(&envFilePath, "envfile", "", "envfile path")
	flag.StringVar(&configFilePath, "config", "", "YAML config file path")

	flag.IntVar(&maxLineWidth, "max-line-width", 0, "render to fit this width (0 renders without a width)")
	flag.StringVar(&layout, "layout", "", `simple layout: "shortest" or "longest"`)
	flag.BoolVar(&opts.check, "check", false, "fail unless rendering the output again gives the same output")
	flag.BoolVar(&opts.dump, "dump", false, "print the decoded document as YAML instead of rendering it")
	flag.BoolVar(&opts.verbose, "verbose", false, "log each document")

	flag.Parse()

	if printVersion {
		fmt.Printf("v%s build on %s from sha1 %s\n", version, buildTime, sha1ver)
		os.Exit(0)
	}

	cfg, err := config.ParseConfig(&config.ConfigOptions{
		EnvFilePath:    envFilePath,
		ConfigFilePath: configFilePath,
	})
	if err != nil {
		log.Fatal(err)
	}

	// Flags win over the environment and the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max-line-width":
			cfg.MaxLineWidth = maxLineWidth
		case "layout":
			cfg.Layout = layout
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := log.New()
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	inputs, err := openInputs(flag.Args())
	if err != nil {
		logger.Fatal(err)
	}

	if err := run(logger, cfg, inputs, os.Stdout, opts); err != nil {
		logger.Fatal(err)
	}

	os.Exit(0)
}

type runOptions struct {
	check   bool
	dump    bool
	verbose bool
}

type input struct {
	name string
	data []byte
}

func openInputs(paths []string) ([]input, error) {
	if len(paths) == 0 {
		fd := os.Stdin.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return nil, errTerminalInput
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []input{{name: "<stdin>", data: data}}, nil
	}
	inputs := make([]input, len(paths))
	for i, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		inputs[i] = input{name: p, data: data}
	}
	return inputs, nil
}

func run(logger log.FieldLogger, cfg *config.Config, inputs []input, out io.Writer, opts runOptions) error {
	if cfg == nil {
		return fmt.Errorf("config not provided")
	}

	r, err := cfg.Renderer(logger)
	if err != nil {
		return err
	}
	dec := docprinter.Decoder{IndentSize: cfg.IndentSize}

	var decodeErr error
	docs := func(yield func(docprinter.Doc) bool) {
		for _, in := range inputs {
			entry := logger.WithField("input", in.name)
			doc, err := dec.Decode(bytes.NewReader(in.data))
			if err != nil {
				decodeErr = fmt.Errorf("%s: %w", in.name, err)
				return
			}
			if opts.check {
				if err := checkIdempotent(r, doc); err != nil {
					decodeErr = fmt.Errorf("%s: %w", in.name, err)
					return
				}
			}
			entry.Debug("Rendering document")
			if !yield(doc) {
				return
			}
		}
	}

	if opts.dump {
		for doc := range docs {
			if err := docprinter.EncodeYAML(out, doc); err != nil {
				return err
			}
		}
		return decodeErr
	}

	if err := docprinter.WriteIter(out, r, docs); err != nil {
		return err
	}
	return decodeErr
}

// checkIdempotent renders doc, then renders the output again, once as
// plain lines and once from its own YAML description, and compares.
func checkIdempotent(r docprinter.Renderer, doc docprinter.Doc) error {
	first, err := docprinter.ToString(r, doc)
	if err != nil {
		return err
	}
	again, err := docprinter.ToString(r, docprinter.Lines(first))
	if err != nil {
		return err
	}
	if again != first {
		return fmt.Errorf("%w: output changes when rendered as lines", errNotIdempotent)
	}
	data, err := docprinter.MarshalYAML(doc)
	if err != nil {
		return err
	}
	decoded, err := docprinter.UnmarshalYAML(data)
	if err != nil {
		return err
	}
	again, err = docprinter.ToString(r, decoded)
	if err != nil {
		return err
	}
	if again != first {
		return fmt.Errorf("%w: output changes after a YAML round trip", errNotIdempotent)
	}
	return nil
}
