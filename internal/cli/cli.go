package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/flowgrid/search"
)

// Exit codes.
const (
	ExitAborted = 1
	ExitUsage   = 2
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the parsed command line.
type Config struct {
	PuzzlePath string
	Width      int
	Height     int
	Pairs      int
	Seed       int64

	// Method is applied only when MethodSet is true; otherwise the puzzle
	// file's method (or BFS) is used.
	Method    search.Method
	MethodSet bool

	LogLevel  logrus.Level
	LogFormat string
	Serve     string
}

// Parse processes command-line arguments. It returns the Config, whether the
// program should exit cleanly (help was requested), or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	fs := flag.NewFlagSet("flowgrid", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
flowgrid - route colored pairs across a grid, one pair at a time.

Usage:
  flowgrid [options] [PUZZLE.hcl]
  flowgrid -serve :8080

Without a puzzle file a random board is generated from -width, -height,
-pairs and -seed.

Options:
`)
		fs.PrintDefaults()
	}

	puzzleFlag := fs.String("puzzle", "", "Path to an HCL puzzle file.")
	widthFlag := fs.Int("width", 5, "Board width for a generated puzzle.")
	heightFlag := fs.Int("height", 5, "Board height for a generated puzzle.")
	pairsFlag := fs.Int("pairs", 3, "Number of pairs in a generated puzzle.")
	seedFlag := fs.Int64("seed", 0, "Random seed for a generated puzzle. 0 picks one from the clock.")
	methodFlag := fs.String("method", "bfs", "Search method. Options: 'dfs', 'bfs', 'astar'.")
	logLevelFlag := fs.String("log-level", "warn", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := fs.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	serveFlag := fs.String("serve", "", "Serve the websocket API on this address instead of solving once.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	cfg := &Config{
		PuzzlePath: *puzzleFlag,
		Width:      *widthFlag,
		Height:     *heightFlag,
		Pairs:      *pairsFlag,
		Seed:       *seedFlag,
		Serve:      *serveFlag,
	}
	if cfg.PuzzlePath == "" && fs.NArg() > 0 {
		cfg.PuzzlePath = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		return nil, false, &ExitError{Code: ExitUsage, Message: "at most one puzzle file may be given"}
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m, err := search.ParseMethod(*methodFlag)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	cfg.Method = m
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "method" {
			cfg.MethodSet = true
		}
	})

	switch strings.ToLower(*logLevelFlag) {
	case "debug", "info", "warn", "error":
		cfg.LogLevel, _ = logrus.ParseLevel(*logLevelFlag)
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg.LogFormat = strings.ToLower(*logFormatFlag)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	return cfg, false, nil
}

// NewLogger returns a logrus logger writing to w at the configured level and
// format.
func (c *Config) NewLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	return log
}
