package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JonMunkholm/rosterscan/internal/interpret"
	"github.com/JonMunkholm/rosterscan/internal/logging"
)

// applyCmd batch-writes results from a YAML file
var applyCmd = &cobra.Command{
	Use:   "apply FILE RESULTS",
	Short: "Apply a YAML results file to a roster file",
	Long: `Analyzes the roster file, then applies every entry of the results file
in order. Each entry names a row and the column values to store there:

  results:
    - row: 0
      values: {Grade: PASS, Reported: "2026-01-12"}
    - row: 3
      values: {Grade: FAIL}

Example:
  rosterscan apply roster.xlsx results.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runApply,
}

type resultsFile struct {
	Results []resultEntry `yaml:"results"`
}

type resultEntry struct {
	Row    int               `yaml:"row"`
	Values map[string]string `yaml:"values"`
}

func runApply(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read results file: %w", err)
	}

	var rf resultsFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return fmt.Errorf("parse results file %s: %w", args[1], err)
	}
	if len(rf.Results) == 0 {
		return fmt.Errorf("results file %s holds no entries", args[1])
	}
	for i, entry := range rf.Results {
		if len(entry.Values) == 0 {
			return fmt.Errorf("results entry %d (row %d) holds no values", i, entry.Row)
		}
	}

	ctx, cancel := analysisContext()
	defer cancel()

	a, err := interpret.AnalyzeFile(ctx, args[0], interpret.Options{
		MaxHeaderShift: cfg.Analyze.MaxHeaderShift,
		Serial:         cfg.Analyze.Serial,
	})
	if err != nil {
		return err
	}

	log := logging.WithFields("file", a.Path, "results", args[1])
	for i, entry := range rf.Results {
		if err := a.Results.SetResults(entry.Row, entry.Values); err != nil {
			return fmt.Errorf("results entry %d: %w", i, err)
		}
	}
	log.Info("results applied", "rows", len(rf.Results))

	fmt.Printf("%d rows updated in %s\n", len(rf.Results), a.Path)
	return nil
}
