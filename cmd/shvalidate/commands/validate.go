package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/connectedhome/validation-go/internal/config"
	"github.com/connectedhome/validation-go/pkg/core"
	"github.com/connectedhome/validation-go/pkg/encoding"
	"github.com/connectedhome/validation-go/pkg/smarthome"
	"github.com/connectedhome/validation-go/pkg/validation"
	"github.com/connectedhome/validation-go/pkg/validation/schema"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	ConfigPath string
	JSON       bool
	Schema     bool
	Workers    int
	LogLevel   string
	Request    string
	Response   string
	Files      []string

	// set records the flags given on the command line.
	set map[string]bool
}

// RunValidate runs the validate command.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printValidateUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	pairMode := opts.Request != "" || opts.Response != ""
	switch {
	case pairMode && (opts.Request == "" || opts.Response == ""):
		fmt.Fprintln(stderr, "Error: --request and --response must be given together")
		return exitCommandError
	case pairMode && len(opts.Files) > 0:
		fmt.Fprintln(stderr, "Error: pair files cannot be combined with --request/--response")
		return exitCommandError
	case !pairMode && len(opts.Files) == 0:
		fmt.Fprintln(stderr, "Error: no files specified")
		printValidateUsage(stderr)
		return exitCommandError
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	logger := cfg.NewLogger(stderr)

	validatorOpts := []validation.Option{validation.WithLogger(logger)}
	if cfg.Schema {
		envelope, err := schema.Default()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		validatorOpts = append(validatorOpts, validation.WithEnvelopeSchema(envelope))
	}
	validator := validation.NewValidator(validatorOpts...)

	var loaders []func() (encoding.Pair, error)
	if pairMode {
		loaders = append(loaders, func() (encoding.Pair, error) {
			return encoding.DecodePairFiles(opts.Request, opts.Response)
		})
	} else {
		for _, file := range opts.Files {
			file := file
			loaders = append(loaders, func() (encoding.Pair, error) {
				return encoding.DecodePair(file)
			})
		}
	}
	names := opts.Files
	if pairMode {
		names = []string{opts.Response}
	}

	results := make([]*FileResult, len(loaders))
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, load := range loaders {
		i, load := i, load
		g.Go(func() error {
			results[i] = validatePair(names[i], load, validator, logger)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, result := range results {
		if !result.Valid {
			failed++
		}
	}

	if cfg.Output == "json" {
		report := Report{Valid: failed == 0, Checked: len(results), Failed: failed, Files: results}
		if err := encoding.Encode(stdout, report, encoding.FormatJSON); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
	} else {
		for _, result := range results {
			printFileResult(stdout, result)
		}
		if len(results) > 1 {
			fmt.Fprintf(stdout, "\n%d checked, %d failed\n", len(results), failed)
		}
	}

	if failed > 0 {
		return exitValidation
	}
	return exitSuccess
}

// Report is the JSON output of the validate command.
type Report struct {
	Valid   bool          `json:"valid"`
	Checked int           `json:"checked"`
	Failed  int           `json:"failed"`
	Files   []*FileResult `json:"files"`
}

// FileResult is the outcome for one pair.
type FileResult struct {
	File     string     `json:"file"`
	Valid    bool       `json:"valid"`
	Request  string     `json:"request,omitempty"`
	Response string     `json:"response,omitempty"`
	Error    string     `json:"error,omitempty"`
	Issue    *IssueInfo `json:"violation,omitempty"`
}

// IssueInfo describes the violation that failed a pair.
type IssueInfo struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func validatePair(name string, load func() (encoding.Pair, error), validator *validation.Validator, logger logrus.FieldLogger) *FileResult {
	result := &FileResult{File: name}
	log := logger.WithField("file", name)

	pair, err := load()
	if err != nil {
		log.WithError(err).Warn("could not read pair")
		result.Error = err.Error()
		return result
	}
	result.Request, _ = core.HeaderString(pair.Request, smarthome.HeaderName)
	result.Response, _ = core.HeaderString(pair.Response, smarthome.HeaderName)

	err = validator.Validate(pair.Request, pair.Response)
	if err == nil {
		log.Debug("pair is valid")
		result.Valid = true
		return result
	}

	var violation *validation.ValidationError
	if errors.As(err, &violation) {
		result.Issue = &IssueInfo{Subject: violation.Subject, Message: violation.Message, Data: violation.Data}
	} else {
		result.Error = err.Error()
	}
	log.WithError(err).Info("pair is invalid")
	return result
}

func printFileResult(w io.Writer, result *FileResult) {
	switch {
	case result.Valid:
		fmt.Fprintf(w, "%s: OK\n", result.File)
	case result.Issue != nil:
		fmt.Fprintf(w, "%s: FAILED\n", result.File)
		fmt.Fprintf(w, "  %s :: %s\n", result.Issue.Subject, result.Issue.Message)
	default:
		fmt.Fprintf(w, "%s: ERROR\n", result.File)
		fmt.Fprintf(w, "  %s\n", result.Error)
	}
}

func loadConfig(opts ValidateOptions) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.set["json"] {
		cfg.Output = "text"
		if opts.JSON {
			cfg.Output = "json"
		}
	}
	if opts.set["schema"] {
		cfg.Schema = opts.Schema
	}
	if opts.set["workers"] {
		cfg.Workers = opts.Workers
	}
	if opts.set["log-level"] {
		cfg.LogLevel = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func parseValidateArgs(args []string) (ValidateOptions, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := ValidateOptions{}

	fs.StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	fs.BoolVar(&opts.JSON, "json", false, "Output results as JSON")
	fs.BoolVar(&opts.Schema, "schema", false, "Also check the envelope JSON Schema")
	fs.IntVar(&opts.Workers, "workers", 0, "Documents validated at once")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&opts.Request, "request", "", "Request document")
	fs.StringVar(&opts.Response, "response", "", "Response document")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	opts.Files = fs.Args()
	return opts, nil
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: shvalidate validate [options] <pair files...>
       shvalidate validate [options] --request <file> --response <file>

A pair file is a JSON or YAML document with "request" and "response" keys.

Options:
  --json           Output results as JSON
  --schema         Also check the envelope JSON Schema
  --workers N      Documents validated at once
  --log-level L    Log level (debug, info, warn, error)
  --config FILE    YAML config file

Examples:
  shvalidate validate pairs/*.json
  shvalidate validate --json --schema pairs/*.yaml`)
}
