package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rsilva/zxcvbn"
)

// Exit codes returned by [run].
const (
	exitOK         = 0 // success
	exitError      = 1 // runtime or check error
	exitUsageError = 2 // invalid arguments
)

// outputFormat selects how a Result is rendered.
type outputFormat int

const (
	formatHuman outputFormat = iota
	formatJSON
	formatYAML
)

// options holds the parsed CLI flags and arguments.
type options struct {
	password  string
	format    outputFormat
	verbose   bool
	noColor   bool
	help      bool
	showVer   bool
	maxLength int // 0 = use default
}

// parseArgs parses command-line arguments into options.
//
// Flags (--flag or -f) can appear anywhere; the first non-flag
// argument is treated as the password. Use "--" to stop flag
// parsing (useful for passwords starting with a dash).
func parseArgs(args []string) (options, error) {
	var opts options
	flagsDone := false

	for _, arg := range args {
		// "--" separator: everything after is a positional argument.
		if arg == "--" && !flagsDone {
			flagsDone = true
			continue
		}

		// Parse flags (unless we've seen "--").
		if !flagsDone && strings.HasPrefix(arg, "-") {
			switch {
			case arg == "--json":
				opts.format = formatJSON
			case arg == "--format=yaml":
				opts.format = formatYAML
			case arg == "--format=json":
				opts.format = formatJSON
			case arg == "--verbose" || arg == "-v":
				opts.verbose = true
			case arg == "--no-color":
				opts.noColor = true
			case arg == "--help" || arg == "-h":
				opts.help = true
			case arg == "--version":
				opts.showVer = true
			case strings.HasPrefix(arg, "--max-length="):
				val := strings.TrimPrefix(arg, "--max-length=")
				n, err := strconv.Atoi(val)
				if err != nil || n < 1 {
					return opts, fmt.Errorf("invalid --max-length value: %q (must be a positive integer)", val)
				}
				opts.maxLength = n
			default:
				return opts, fmt.Errorf("unknown flag: %s\nRun 'zxcvbn --help' for usage", arg)
			}
			continue
		}

		// Positional argument (password).
		if opts.password != "" {
			return opts, fmt.Errorf("unexpected argument: %s (password already provided)", arg)
		}
		opts.password = arg
	}

	return opts, nil
}

// run executes the CLI logic and returns the exit code.
//
// stdout and stderr are the output writers; envNoColor reflects
// whether the NO_COLOR environment variable is set.
func run(stdout, stderr io.Writer, args []string, envNoColor bool) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsageError
	}

	if opts.help {
		printHelp(stdout)
		return exitOK
	}

	if opts.showVer {
		fmt.Fprintf(stdout, "zxcvbn %s\n", version)
		return exitOK
	}

	if opts.password == "" {
		fmt.Fprintln(stderr, "Error: password argument required")
		fmt.Fprintln(stderr, "Run 'zxcvbn --help' for usage")
		return exitError
	}

	cfg := zxcvbn.DefaultConfig()
	if opts.maxLength > 0 {
		cfg.MaxPasswordLength = opts.maxLength
	}

	result, err := zxcvbn.EvaluateWithConfig(opts.password, nil, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	switch opts.format {
	case formatJSON:
		return printJSON(stdout, stderr, result)
	case formatYAML:
		return printYAML(stdout, stderr, result)
	}

	useColor := !opts.noColor && !envNoColor
	printResult(stdout, result, opts, useColor)
	return exitOK
}

// printResult writes the formatted human-readable result.
func printResult(w io.Writer, r zxcvbn.Result, opts options, useColor bool) {
	fmt.Fprintf(w, "Score:   %s\n", scoreMeter(r.Score, useColor))
	fmt.Fprintf(w, "Guesses: %d (log10 %.2f)\n", r.Guesses, r.GuessesLog10)

	fmt.Fprintln(w, "\nCrack times:")
	fmt.Fprintln(w, r.CrackTimes.String())

	if r.Feedback.Advice != "" {
		marker := "  - "
		if useColor {
			marker = "  " + colorize("-", useColor, scoreColor(zxcvbn.Weak)) + " "
		}
		fmt.Fprintf(w, "\n%s%s\n", marker, r.Feedback.Advice)
	}
	if r.Feedback.Suggestions != "" {
		fmt.Fprintln(w, "\nSuggestions:")
		for _, line := range strings.Split(r.Feedback.Suggestions, "\n") {
			if line == "" {
				continue
			}
			marker := "  + "
			if useColor {
				marker = "  " + colorize("+", useColor, scoreColor(zxcvbn.Strong)) + " "
			}
			fmt.Fprintf(w, "%s%s\n", marker, line)
		}
	}

	if opts.verbose {
		fmt.Fprintln(w)
		printSequenceTable(w, r.Sequence)
	}
}

// printJSON encodes the result as indented JSON.
func printJSON(stdout, stderr io.Writer, r zxcvbn.Result) int {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		fmt.Fprintf(stderr, "Error encoding JSON: %v\n", err)
		return exitError
	}
	return exitOK
}

// printHelp writes the CLI usage information.
func printHelp(w io.Writer) {
	fmt.Fprintf(w, `zxcvbn %s - Password strength estimator

Usage:
  zxcvbn <password> [flags]

Flags:
  --json              Output result as JSON
  --format=yaml        Output result as YAML
  --verbose, -v       Show the matched pattern breakdown
  --no-color          Disable colored output
  --max-length=N      Truncate passwords longer than N runes (default: 1024)
  --version           Show version
  --help, -h          Show this help message

Environment:
  NO_COLOR            Set to any value to disable colored output

Examples:
  zxcvbn "MyP@ssw0rd123!"
  zxcvbn "qwerty" --json
  zxcvbn "correcthorsebatterystaple" --verbose
  zxcvbn -- "-dashpassword"
`, version)
}
