// Command aggregate-stats merges world library summary JSON files from
// multiple runs into one combined statistics document.
//
// Usage:
//
//	aggregate-stats -output combined.json summary_a.json summary_b.json
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/world-tile-stats/internal/aggregate"
)

func main() {
	output := flag.String("output", "", "output JSON path (required)")
	flag.Parse()

	inputs := flag.Args()
	if *output == "" || len(inputs) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(inputs, *output); code != 0 {
		os.Exit(code)
	}
}

func run(inputs []string, output string) int {
	var missing []string
	for _, path := range inputs {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "FATAL: missing inputs: %s\n", strings.Join(missing, ", "))
		return 1
	}

	summaries := make([]aggregate.Summary, 0, len(inputs))
	for _, path := range inputs {
		s, err := aggregate.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
			return 1
		}
		summaries = append(summaries, s)
	}

	merged := aggregate.Merge(summaries, filepath.Base(inputs[len(inputs)-1]))

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: create output directory: %v\n", err)
			return 1
		}
	}
	if err := merged.WriteFile(output); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	fmt.Printf("Written aggregated stats to %s\n", output)
	return 0
}
