// Package config reads the twig configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deosjr/twig/lisp"
)

// Config represents the parsed contents of a twig.yml file.
type Config struct {
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	HistoryFile        string `yaml:"history_file"`
	Strict             bool   `yaml:"strict"`
	LiteralTextBlocks  bool   `yaml:"literal_text_blocks"`
	MaxDepth           int    `yaml:"max_depth"`
	Prelude            bool   `yaml:"prelude"`
	Trace              bool   `yaml:"trace"`
}

func Default() Config {
	return Config{
		Prompt:             ">>> ",
		ContinuationPrompt: "... ",
		HistoryFile:        ".twig_history",
		MaxDepth:           10000,
		Prelude:            true,
	}
}

// Load reads path on top of the defaults. An empty file yields the defaults.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer file.Close()
	return Decode(file, path)
}

func Decode(r io.Reader, name string) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: parse %s: %w", name, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Prelude && c.LiteralTextBlocks {
		return errors.New("prelude cannot be read with literal_text_blocks")
	}
	return nil
}

// Options translates the configuration into interpreter options.
// Trace output goes to logw.
func (c Config) Options(logw io.Writer) []lisp.Option {
	opts := []lisp.Option{lisp.WithMaxDepth(c.MaxDepth)}
	if c.Strict {
		opts = append(opts, lisp.WithStrict())
	}
	if c.LiteralTextBlocks {
		opts = append(opts, lisp.WithLiteralTextBlocks())
	}
	if c.Trace {
		opts = append(opts, lisp.WithLogger(log.New(logw, "twig: ", 0)))
	}
	return opts
}
