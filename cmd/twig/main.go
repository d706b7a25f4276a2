package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/deosjr/twig/config"
	"github.com/deosjr/twig/lisp"
	"github.com/deosjr/twig/prelude"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("twig: ")

	fs := flag.NewFlagSet("twig", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: twig [flags] [file.lisp]\n")
		fs.PrintDefaults()
	}
	cfg, args, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	l := lisp.New(cfg.Options(os.Stderr)...)
	if cfg.Prelude {
		if err := prelude.Load(l); err != nil {
			log.Fatal(err)
		}
	}

	if len(args) > 0 {
		os.Exit(runFile(l, args[0]))
	}
	os.Exit(startREPL(l, cfg))
}

// parseFlags loads the config file, if any, and lets explicitly set flags
// override it. It returns the remaining arguments.
func parseFlags(fs *flag.FlagSet, args []string) (config.Config, []string, error) {
	configPath := fs.String("config", "", "path to a YAML config file")
	strict := fs.Bool("strict", false, "return errors for malformed forms instead of ()")
	literal := fs.Bool("literal", false, "do not split text blocks on whitespace (disables the prelude)")
	noPrelude := fs.Bool("no-prelude", false, "do not load the prelude functions")
	trace := fs.Bool("trace", false, "log defun registrations and soft failures to stderr")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, nil, err
	}

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			return config.Config{}, nil, err
		}
		cfg = c
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			cfg.Strict = *strict
		case "literal":
			cfg.LiteralTextBlocks = *literal
		case "no-prelude":
			cfg.Prelude = !*noPrelude
		case "trace":
			cfg.Trace = *trace
		}
	})
	// the prelude cannot be read literally, whatever order the flags came in
	if cfg.LiteralTextBlocks {
		cfg.Prelude = false
	}
	return cfg, fs.Args(), nil
}

// runFile evaluates every form in filename, stopping at the first error.
func runFile(l lisp.Lisp, filename string) int {
	b, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := l.Load(string(b)); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		return 1
	}
	return 0
}
