package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/rsilva/zxcvbn"
)

// printSequenceTable renders the winning match decomposition as a
// table, for --verbose output.
func printSequenceTable(w io.Writer, seq []zxcvbn.MatchSummary) {
	if len(seq) == 0 {
		fmt.Fprintln(w, "No matches: password was treated as brute-force guessing.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Pattern", "Token", "Start", "End", "Guesses"})
	for _, m := range seq {
		// nolint:errcheck // table rendering errors are not actionable here
		table.Append([]string{
			m.Pattern,
			m.Token,
			fmt.Sprintf("%d", m.Start),
			fmt.Sprintf("%d", m.End),
			fmt.Sprintf("%d", m.Guesses),
		})
	}
	// nolint:errcheck
	table.Render()
}

// printYAML encodes the result as YAML.
func printYAML(stdout, stderr io.Writer, r zxcvbn.Result) int {
	enc := yaml.NewEncoder(stdout)
	defer enc.Close()
	if err := enc.Encode(r); err != nil {
		fmt.Fprintf(stderr, "Error encoding YAML: %v\n", err)
		return exitError
	}
	return exitOK
}
